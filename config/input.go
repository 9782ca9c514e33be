package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical app action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionNextTheme
	ActionPrevTheme
	ActionTogglePanel
	ActionToggleDebug
	ActionResetBounds
	ActionQuit
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionNextTheme: {
				Keys: []ebiten.Key{ebiten.KeyBracketRight, ebiten.KeyT},
				// Right shoulder
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontTopRight,
				},
			},
			ActionPrevTheme: {
				Keys: []ebiten.Key{ebiten.KeyBracketLeft},
				// Left shoulder
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontTopLeft,
				},
			},
			ActionTogglePanel: {
				Keys: []ebiten.Key{ebiten.KeyTab},
				// Start / Options button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
			ActionToggleDebug: {
				Keys: []ebiten.Key{ebiten.KeyF3},
				// Back / Share button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterLeft,
				},
			},
			ActionResetBounds: {
				Keys: []ebiten.Key{ebiten.KeyR},
			},
			ActionQuit: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
			},
		},
	}
}
