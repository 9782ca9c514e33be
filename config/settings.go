package config

// BoundStep describes how one panel adjuster changes a presentation variable
type BoundStep struct {
	Key      string
	Label    string
	Step     float64
	Min      float64
	Max      float64
	Decimals int
}

// PanelConfig contains control panel configuration
type PanelConfig struct {
	Width  int
	Bounds []BoundStep
}

// Panel is the global control panel configuration
var Panel PanelConfig

func init() {
	Panel = PanelConfig{
		Width: 230,
		Bounds: []BoundStep{
			{Key: VarTiltBound, Label: "Tilt", Step: 2, Min: 0, Max: 60, Decimals: 0},
			{Key: VarTranslateBound, Label: "Shift", Step: 1, Min: 0, Max: 40, Decimals: 0},
			{Key: VarPeakScale, Label: "Scale", Step: 0.005, Min: 1, Max: 1.2, Decimals: 3},
		},
	}
}
