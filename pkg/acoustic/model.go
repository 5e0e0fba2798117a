package acoustic

import "github.com/ja7ad/sonar/pkg/types"

// Config holds model-wide coefficients.
// Units:
//   - Absorption: dB per meter (seawater acoustic absorption)
//   - AmbientNoise: dB (background level used when a Scenario leaves it unset)
type Config struct {
	Absorption   float64
	AmbientNoise float64
}

// _defaultConfig returns a Config pre-filled with the standard seawater
// coefficients.
func _defaultConfig() *Config {
	return &Config{
		Absorption:   0.00004, // dB/m, ~0.04 dB/km in seawater
		AmbientNoise: 50,      // dB, open-ocean background
	}
}

// Scenario describes one detectability query: the vessel speed, the
// listener range, and the ambient noise at the listener. It is a
// transient value owned by the caller; AmbientNoise of zero means "use
// the model default".
type Scenario struct {
	SpeedKnots   float64
	RangeMeters  float64
	AmbientNoise float64
}

// Result is the evaluated breakdown for one class under one scenario.
type Result struct {
	Profile          string
	NoiseLevel       types.Decibel
	TransmissionLoss types.Decibel
	SNR              types.Decibel
}
