package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/popcards/assets"
	cfg "github.com/automoto/popcards/config"
	"github.com/automoto/popcards/systems"
	"github.com/automoto/popcards/systems/factory"
	"github.com/automoto/popcards/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type SceneChanger interface {
	ChangeScene(scene interface{})
}

// DeckScene shows the row of tilting cards and the optional control panel.
type DeckScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	saved        *systems.SavedSettings
	handles      []*systems.TiltHandle
	panel        *ui.PanelUI
	once         sync.Once
	finished     bool
}

// NewDeckScene creates the deck scene, restoring saved settings if any
func NewDeckScene(sc SceneChanger, saved *systems.SavedSettings) *DeckScene {
	return &DeckScene{sceneChanger: sc, saved: saved}
}

func (ds *DeckScene) Update() {
	ds.once.Do(ds.configure)
	if ds.finished {
		return
	}
	ds.ecs.Update()

	if systems.IsActionJustPressed(ds.ecs, cfg.ActionQuit) {
		ds.Close()
		return
	}

	if systems.GetOrCreateSettings(ds.ecs).PanelOpen {
		ds.panel.UpdateUI()
		ds.panel.UI.Update()
	}
}

func (ds *DeckScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ds.ecs == nil {
		return
	}
	ds.ecs.Draw(screen)

	if systems.GetOrCreateSettings(ds.ecs).PanelOpen {
		ds.panel.UI.Draw(screen)
	}
}

// Finished reports whether the scene was closed and the app should exit.
func (ds *DeckScene) Finished() bool {
	return ds.finished
}

// Close detaches every card so no easing step outlives the scene.
func (ds *DeckScene) Close() {
	for _, h := range ds.handles {
		h.Detach()
	}
	ds.handles = nil
	ds.finished = true
}

func (ds *DeckScene) configure() {
	if err := assets.LoadShaders(); err != nil {
		log.Printf("Warning: Could not load shaders, using flat lighting: %v", err)
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	// Pointer dispatch must precede the frame tick so a new target is
	// eased toward on the same tick it arrives.
	ecs.AddSystem(systems.UpdatePointer)
	ecs.AddSystem(systems.UpdateFrames)
	ecs.AddSystem(systems.UpdateGlowFade)

	ecs.AddRenderer(cfg.Default, systems.DrawBackdrop)
	ecs.AddRenderer(cfg.Default, systems.DrawCards)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	ds.ecs = ecs

	systems.ApplySavedSettings(ds.ecs, ds.saved)
	ds.handles = factory.CreateDeck(ds.ecs)
	ds.panel = ui.NewPanelUI(ds.ecs)
}
