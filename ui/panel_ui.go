package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"strconv"

	cfg "github.com/automoto/popcards/config"
	"github.com/automoto/popcards/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/gofont/goregular"
)

// PanelUI is the control panel for choosing a theme and overriding the
// tilt bounds of the whole deck.
type PanelUI struct {
	UI *ebitenui.UI

	ecs *ecs.ECS

	// Widget references for updates
	themeLabel  *widget.Label
	boundLabels []*widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewPanelUI creates the control panel for the given world
func NewPanelUI(e *ecs.ECS) *PanelUI {
	pui := &PanelUI{ecs: e}
	pui.loadFonts()
	pui.buildUI()
	return pui
}

func (pui *PanelUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	pui.titleFace = &text.GoTextFace{Source: fontSource, Size: 16}
	pui.normalFace = &text.GoTextFace{Source: fontSource, Size: 13}
	pui.smallFace = &text.GoTextFace{Source: fontSource, Size: 11}
}

func (pui *PanelUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.Insets{Top: 8, Bottom: 8, Left: 10, Right: 10}
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 220})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.Panel.Width, 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("CARDS", &pui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	))

	panel.AddChild(pui.buildThemeRow())
	for _, step := range cfg.Panel.Bounds {
		panel.AddChild(pui.buildBoundRow(step))
	}

	resetButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(80, 22)),
		widget.ButtonOpts.Image(pui.buttonImage()),
		widget.ButtonOpts.Text("Reset", &pui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 200, 200, 255},
			Pressed: color.RGBA{200, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			systems.ResetOverrides(pui.ecs)
			pui.UpdateUI()
		}),
	)
	panel.AddChild(resetButton)

	rootContainer.AddChild(panel)

	pui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
	// Note: Don't call UpdateUI() here - widgets aren't validated yet
}

func (pui *PanelUI) buildThemeRow() *widget.Container {
	row := pui.newRow()

	row.AddChild(pui.smallButton("<", func() {
		systems.CycleTheme(pui.ecs, -1)
	}))

	pui.themeLabel = widget.NewLabel(
		widget.LabelOpts.Text(systems.GetOrCreateSettings(pui.ecs).Theme().Name, &pui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 100, 255},
		}),
	)
	row.AddChild(pui.themeLabel)

	row.AddChild(pui.smallButton(">", func() {
		systems.CycleTheme(pui.ecs, 1)
	}))
	return row
}

func (pui *PanelUI) buildBoundRow(step cfg.BoundStep) *widget.Container {
	row := pui.newRow()

	row.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(fmt.Sprintf("%s:", step.Label), &pui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	))

	row.AddChild(pui.smallButton("-", func() {
		systems.AdjustBound(pui.ecs, step, -1)
	}))

	valueLabel := widget.NewLabel(
		widget.LabelOpts.Text(formatBound(systems.BoundValue(pui.ecs, step), step), &pui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 100, 255},
		}),
	)
	pui.boundLabels = append(pui.boundLabels, valueLabel)
	row.AddChild(valueLabel)

	row.AddChild(pui.smallButton("+", func() {
		systems.AdjustBound(pui.ecs, step, 1)
	}))
	return row
}

func (pui *PanelUI) newRow() *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)
}

func (pui *PanelUI) smallButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(22, 18)),
		widget.ButtonOpts.Image(pui.buttonImage()),
		widget.ButtonOpts.Text(label, &pui.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{200, 200, 200, 255},
			Hover:   color.RGBA{255, 255, 255, 255},
			Pressed: color.RGBA{150, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
			pui.UpdateUI()
		}),
	)
}

func (pui *PanelUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// UpdateUI refreshes the labels from the current settings, which may have
// changed through key bindings as well as through the panel.
func (pui *PanelUI) UpdateUI() {
	if pui.themeLabel != nil {
		pui.themeLabel.Label = systems.GetOrCreateSettings(pui.ecs).Theme().Name
	}
	for i, step := range cfg.Panel.Bounds {
		if i < len(pui.boundLabels) && pui.boundLabels[i] != nil {
			pui.boundLabels[i].Label = formatBound(systems.BoundValue(pui.ecs, step), step)
		}
	}
}

func formatBound(v float64, step cfg.BoundStep) string {
	return strconv.FormatFloat(v, 'f', step.Decimals, 64)
}
