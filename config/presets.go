package config

// Presets are ready-made run definitions keyed by model, then preset
// name.
var Presets = map[string]map[string]*Config{
	"linear": {
		"classic": {
			Model: "linear", Order: 3, StepSize: 0.2,
			XInitials: []float64{0, 0.2, 0.4},
			YInitials: []float64{0, 0.2, 1},
			XFinal:    1,
		},
		"fine": {
			Model: "linear", Order: 4, StepSize: 0.05,
			XInitials: []float64{0, 0.05, 0.1, 0.15000000000000002},
			XFinal:    2,
		},
	},
	"decay": {
		"coarse": {
			Model: "decay", Order: 2, StepSize: 0.25,
			XInitials: []float64{0, 0.25},
			XFinal:    3,
		},
		"fine": {
			Model: "decay", Order: 5, StepSize: 0.05,
			XInitials: []float64{0, 0.05, 0.1, 0.15000000000000002, 0.2},
			XFinal:    2,
		},
	},
	"logistic": {
		"default": {
			Model: "logistic", Order: 3, StepSize: 0.1,
			XInitials: []float64{0, 0.1, 0.2},
			XFinal:    4,
		},
	},
	"cosine": {
		"default": {
			Model: "cosine", Order: 4, StepSize: 0.1,
			XInitials: []float64{0, 0.1, 0.2, 0.30000000000000004},
			XFinal:    6.2,
		},
	},
}

// GetPreset returns the named preset, or nil when the model or preset
// is not known.
func GetPreset(model, name string) *Config {
	group, ok := Presets[model]
	if !ok {
		return nil
	}
	return group[name]
}

// ListPresets returns the preset names available for a model, or nil
// for an unknown model.
func ListPresets(model string) []string {
	group, ok := Presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(group))
	for name := range group {
		names = append(names, name)
	}
	return names
}
