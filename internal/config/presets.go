package config

// Presets are named scenarios selectable from the CLI.
var Presets = map[string]*Config{
	"hangar": {
		FrameRate: DefaultFrameRate,
		Tug: TugConfig{
			Weight: 3000, Incline: 0, Surface: "Clean Concrete",
			HandleArm: 3.0, AircraftArm: 1.5,
		},
		Lever: LeverConfig{Effort: 200, Arm1: 3.0, Arm2: 1.5, Dt: DefaultDt, Duration: DefaultDuration},
	},
	"grass-heavy": {
		FrameRate: DefaultFrameRate,
		Tug: TugConfig{
			Weight: 8000, Incline: 0, Surface: "Grass",
			HandleArm: 3.0, AircraftArm: 1.5,
		},
		Lever: LeverConfig{Effort: 200, Arm1: 3.0, Arm2: 1.5, Dt: DefaultDt, Duration: DefaultDuration},
	},
	"uphill": {
		FrameRate: DefaultFrameRate,
		Tug: TugConfig{
			Weight: 5000, Incline: 2.0, Surface: "Asphalt",
			HandleArm: 3.0, AircraftArm: 1.5,
		},
		Lever: LeverConfig{Effort: 250, Arm1: 3.0, Arm2: 1.5, Dt: DefaultDt, Duration: DefaultDuration},
	},
	"downhill": {
		FrameRate: DefaultFrameRate,
		Tug: TugConfig{
			Weight: 5000, Incline: -2.0, Surface: "Asphalt",
			HandleArm: 3.0, AircraftArm: 1.5,
		},
		Lever: LeverConfig{Effort: 100, Arm1: 3.0, Arm2: 1.5, Dt: DefaultDt, Duration: DefaultDuration},
	},
	"short-arm": {
		FrameRate: DefaultFrameRate,
		Tug: TugConfig{
			Weight: 3000, Incline: 0, Surface: "Clean Concrete",
			HandleArm: 1.5, AircraftArm: 1.0,
		},
		Lever: LeverConfig{Effort: 150, Arm1: 1.5, Arm2: 1.0, Dt: DefaultDt, Duration: DefaultDuration},
	},
	"overload": {
		FrameRate: DefaultFrameRate,
		Tug: TugConfig{
			Weight: 10000, Incline: 1.0, Surface: "Dirt Road",
			HandleArm: 3.0, AircraftArm: 1.5,
		},
		Lever: LeverConfig{Effort: 300, Arm1: 6.0, Arm2: 0.5, Dt: DefaultDt, Duration: DefaultDuration},
	},
}

// ListPresets returns the preset names in no particular order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}

// GetPreset returns the named preset or nil.
func GetPreset(name string) *Config {
	return Presets[name]
}
