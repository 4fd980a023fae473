// Package units holds the physical constants and unit conversions shared by
// both lever engines. All conversions are pure and stateless.
package units

// Torque and power conversion factors.
const (
	// PoundFootToNewtonMetre converts lb·ft to N·m.
	PoundFootToNewtonMetre = 1.35582
	// NewtonMetreToKgfCm converts N·m to kgf·cm.
	NewtonMetreToKgfCm = 10.1972
	// HorsepowerToWatt converts HP to W.
	HorsepowerToWatt = 745.7
	// FootPoundsPerSecondPerHP is the mechanical horsepower definition.
	FootPoundsPerSecondPerHP = 550.0
)

// Tug drivetrain constants.
const (
	// TireDiameterIn is the tug wheel diameter in inches.
	TireDiameterIn = 10.0
	// TireRadiusFt is the tug wheel radius in feet.
	TireRadiusFt = (TireDiameterIn / 2) / 12
	// TargetSpeedMph is the design towing speed.
	TargetSpeedMph = 3.0
)

// MphToFeetPerSecond converts miles per hour to feet per second.
func MphToFeetPerSecond(mph float64) float64 {
	return mph * 5280.0 / 3600.0
}

// TargetSpeedFps returns the design towing speed in feet per second.
func TargetSpeedFps() float64 {
	return MphToFeetPerSecond(TargetSpeedMph)
}
