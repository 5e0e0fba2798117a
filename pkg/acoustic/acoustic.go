package acoustic

import (
	"fmt"
	"math"

	"github.com/ja7ad/sonar/pkg/profile"
	"github.com/ja7ad/sonar/pkg/types"
)

// Model evaluates the noise equations for submarine profiles. It is
// immutable after New and safe for concurrent use.
type Model struct {
	cfg *Config
}

// New creates a model with the given config. Fields > 0 in cfg override
// defaults; a nil cfg uses the defaults as-is.
func New(cfg *Config) *Model {
	base := _defaultConfig()

	if cfg == nil {
		return &Model{cfg: base}
	}

	merged := *base
	if cfg.Absorption > 0 {
		merged.Absorption = cfg.Absorption
	}
	if cfg.AmbientNoise > 0 {
		merged.AmbientNoise = cfg.AmbientNoise
	}

	return &Model{cfg: &merged}
}

// Absorption returns the seawater absorption coefficient in dB/m the
// model was constructed with.
func (m *Model) Absorption() float64 { return m.cfg.Absorption }

// AmbientNoise returns the default ambient noise level in dB applied
// when a Scenario leaves it unset.
func (m *Model) AmbientNoise() float64 { return m.cfg.AmbientNoise }

// CavitationGain returns the extra noise in dB from propeller cavitation
// at speedKnots. At or below the onset speed the gain is exactly zero;
// above it the fitted polynomial A*(v-v0)^p applies, so the function is
// continuous at the onset.
func (m *Model) CavitationGain(p profile.Profile, speedKnots float64) float64 {
	if speedKnots <= p.CavitationOnset {
		return 0
	}
	return p.CavitationScale * math.Pow(speedKnots-p.CavitationOnset, p.CavitationExponent)
}

// NoiseLevel returns the source level L_p in dB for the class at
// speedKnots:
//
//	L_p = L0 + 10*log10(1 + (v/v0)^n) + ΔL_cav(v)
//
// The growth argument 1+(v/v0)^n is >= 1 once the guards hold, so the
// logarithm itself cannot fail.
func (m *Model) NoiseLevel(p profile.Profile, speedKnots float64) (float64, error) {
	if p.CavitationOnset <= 0 {
		return 0, fmt.Errorf("%w: class %q has v0=%g kn", ErrCavitationOnset, p.Name, p.CavitationOnset)
	}
	if speedKnots < 0 {
		return 0, fmt.Errorf("%w: %g kn", ErrNegativeSpeed, speedKnots)
	}

	x := 1 + math.Pow(speedKnots/p.CavitationOnset, p.NoiseGrowth)
	return p.BaseNoise + 10*math.Log10(x) + m.CavitationGain(p, speedKnots), nil
}

// TransmissionLoss returns the energy lost between source and listener
// over rangeMeters: spherical spreading plus absorption,
// 20*log10(r) + alpha*r.
func (m *Model) TransmissionLoss(rangeMeters float64) (float64, error) {
	if rangeMeters <= 0 {
		return 0, fmt.Errorf("%w: %g m", ErrRange, rangeMeters)
	}
	return 20*math.Log10(rangeMeters) + m.cfg.Absorption*rangeMeters, nil
}

// SNR evaluates the full scenario for one class and returns the
// breakdown. It is a pure composition of NoiseLevel and TransmissionLoss
// and adds no failure modes of its own.
func (m *Model) SNR(p profile.Profile, sc Scenario) (Result, error) {
	lp, err := m.NoiseLevel(p, sc.SpeedKnots)
	if err != nil {
		return Result{}, err
	}

	tl, err := m.TransmissionLoss(sc.RangeMeters)
	if err != nil {
		return Result{}, err
	}

	nl := sc.AmbientNoise
	if nl == 0 {
		nl = m.cfg.AmbientNoise
	}

	return Result{
		Profile:          p.Name,
		NoiseLevel:       types.Decibel(lp),
		TransmissionLoss: types.Decibel(tl),
		SNR:              types.Decibel(lp - tl - nl),
	}, nil
}
