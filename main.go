package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/popcards/config"
	"github.com/automoto/popcards/fonts"
	"github.com/automoto/popcards/scenes"
	"github.com/automoto/popcards/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(saved *systems.SavedSettings) *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewDeckScene(g, saved)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	if f, ok := g.scene.(interface{ Finished() bool }); ok && f.Finished() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	flag.StringVar(&config.Debug.Theme, "theme", config.Debug.Theme, "start on the named theme")
	flag.BoolVar(&config.Debug.Enabled, "debug", config.Debug.Enabled, "draw hit areas and per-card readouts")
	flag.BoolVar(&config.Debug.ShowPanel, "panel", config.Debug.ShowPanel, "open the control panel on start")
	flag.Parse()

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	saved, err := systems.LoadSettings()
	if err != nil {
		saved = nil
	}

	if err := ebiten.RunGame(NewGame(saved)); err != nil {
		log.Fatal(err)
	}
}
