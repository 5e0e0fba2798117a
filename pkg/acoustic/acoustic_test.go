package acoustic

import (
	"math"
	"testing"

	"github.com/ja7ad/sonar/pkg/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// refClass is a representative fit used across the tests: quiet enough
// that cavitation dominates once it kicks in.
var refClass = profile.Profile{
	Name:               "Reference",
	BaseNoise:          80,
	CavitationOnset:    21,
	NoiseGrowth:        2,
	CavitationScale:    0.3125,
	CavitationExponent: 2.5,
}

func expectNoise(p profile.Profile, v float64) float64 {
	lp := p.BaseNoise + 10*math.Log10(1+math.Pow(v/p.CavitationOnset, p.NoiseGrowth))
	if v > p.CavitationOnset {
		lp += p.CavitationScale * math.Pow(v-p.CavitationOnset, p.CavitationExponent)
	}
	return lp
}

func expectTL(alpha, r float64) float64 {
	return 20*math.Log10(r) + alpha*r
}

func TestNoiseLevel_ReferenceScenario(t *testing.T) {
	m := New(nil)

	got, err := m.NoiseLevel(refClass, 15)
	require.NoError(t, err)
	require.InDelta(t, expectNoise(refClass, 15), got, 1e-9)

	// At rest the growth term is log10(1)=0: exactly the base level.
	atRest, err := m.NoiseLevel(refClass, 0)
	require.NoError(t, err)
	assert.Equal(t, refClass.BaseNoise, atRest)

	t.Logf("L_p(15 kn) = %.4f dB", got)
}

func TestSNR_Breakdown(t *testing.T) {
	m := New(nil)
	sc := Scenario{SpeedKnots: 15, RangeMeters: 5000, AmbientNoise: 50}

	res, err := m.SNR(refClass, sc)
	require.NoError(t, err)

	lp := expectNoise(refClass, 15)
	tl := expectTL(0.00004, 5000)
	require.InDelta(t, lp, float64(res.NoiseLevel), 1e-9)
	require.InDelta(t, tl, float64(res.TransmissionLoss), 1e-9)
	require.InDelta(t, lp-tl-50, float64(res.SNR), 1e-9)
	assert.Equal(t, "Reference", res.Profile)

	t.Logf("L_p=%s TL=%s SNR=%s", res.NoiseLevel, res.TransmissionLoss, res.SNR)
}

func TestSNR_AmbientDefault(t *testing.T) {
	m := New(nil)

	// Leaving AmbientNoise unset falls back to the model default (50 dB).
	unset, err := m.SNR(refClass, Scenario{SpeedKnots: 10, RangeMeters: 2000})
	require.NoError(t, err)
	explicit, err := m.SNR(refClass, Scenario{SpeedKnots: 10, RangeMeters: 2000, AmbientNoise: 50})
	require.NoError(t, err)

	assert.Equal(t, explicit.SNR, unset.SNR)
}

func TestCavitationGain_ContinuousAtOnset(t *testing.T) {
	m := New(nil)

	// Equality belongs to the quiet branch.
	assert.Equal(t, 0.0, m.CavitationGain(refClass, refClass.CavitationOnset))
	assert.Equal(t, 0.0, m.CavitationGain(refClass, refClass.CavitationOnset-0.1))

	// Just above the onset the polynomial vanishes: A*eps^2.5 for small eps.
	for _, eps := range []float64{1e-3, 1e-6, 1e-9} {
		gain := m.CavitationGain(refClass, refClass.CavitationOnset+eps)
		assert.Greater(t, gain, 0.0)
		assert.Less(t, gain, 0.3125*math.Pow(1e-3, 2.5)+1e-12, "eps=%g", eps)
	}
}

func TestCavitationGain_KickIn(t *testing.T) {
	m := New(nil)

	// 9 kn over the onset: A*(9)^2.5 = 0.3125*243 dB.
	gain := m.CavitationGain(refClass, 30)
	require.InDelta(t, 0.3125*math.Pow(9, 2.5), gain, 1e-9)

	quiet, err := m.NoiseLevel(refClass, 15)
	require.NoError(t, err)
	loud, err := m.NoiseLevel(refClass, 30)
	require.NoError(t, err)
	assert.Greater(t, loud-quiet, gain, "cavitation plus growth term must dominate the jump")

	t.Logf("L_p(15)=%.2f dB, L_p(30)=%.2f dB, ΔL_cav(30)=%.2f dB", quiet, loud, gain)
}

func TestNoiseLevel_MonotoneInSpeed(t *testing.T) {
	m := New(nil)

	prev := math.Inf(-1)
	for v := 0.0; v <= 35; v += 0.25 {
		lp, err := m.NoiseLevel(refClass, v)
		require.NoError(t, err, "v=%g", v)
		require.GreaterOrEqual(t, lp, prev, "v=%g", v)
		prev = lp
	}
}

func TestTransmissionLoss_StrictlyIncreasing(t *testing.T) {
	m := New(nil)

	ranges := []float64{1, 10, 100, 1000, 5000, 10000, 100000}
	prev := math.Inf(-1)
	for _, r := range ranges {
		tl, err := m.TransmissionLoss(r)
		require.NoError(t, err, "r=%g", r)
		require.Greater(t, tl, prev, "r=%g", r)
		prev = tl
	}
}

func TestDomainRejection(t *testing.T) {
	m := New(nil)

	_, err := m.NoiseLevel(refClass, -1)
	require.ErrorIs(t, err, ErrNegativeSpeed)
	require.ErrorIs(t, err, ErrDomain)

	_, err = m.TransmissionLoss(0)
	require.ErrorIs(t, err, ErrRange)
	_, err = m.TransmissionLoss(-500)
	require.ErrorIs(t, err, ErrRange)

	bad := refClass
	bad.CavitationOnset = 0
	_, err = m.NoiseLevel(bad, 10)
	require.ErrorIs(t, err, ErrCavitationOnset)

	// SNR propagates its components' failures unchanged.
	_, err = m.SNR(refClass, Scenario{SpeedKnots: -1, RangeMeters: 5000})
	require.ErrorIs(t, err, ErrNegativeSpeed)
	_, err = m.SNR(refClass, Scenario{SpeedKnots: 10, RangeMeters: 0})
	require.ErrorIs(t, err, ErrRange)
	_, err = m.SNR(bad, Scenario{SpeedKnots: 10, RangeMeters: 5000})
	require.ErrorIs(t, err, ErrDomain)
}

func TestDeterminism(t *testing.T) {
	m := New(nil)
	sc := Scenario{SpeedKnots: 23.7, RangeMeters: 8421.5, AmbientNoise: 47}

	first, err := m.SNR(refClass, sc)
	require.NoError(t, err)
	second, err := m.SNR(refClass, sc)
	require.NoError(t, err)

	// Bit-identical, not merely close.
	assert.Equal(t, first, second)
}

func TestNew_Overrides(t *testing.T) {
	// Defaults: alpha=0.00004 dB/m, ambient=50 dB.
	def := New(nil)
	assert.Equal(t, 0.00004, def.Absorption())
	assert.Equal(t, 50.0, def.AmbientNoise())

	tl, err := def.TransmissionLoss(1000)
	require.NoError(t, err)
	require.InDelta(t, 60.04, tl, 1e-9) // 20*3 + 0.04

	// A positive override replaces the absorption coefficient.
	brackish := New(&Config{Absorption: 0.0001})
	tl2, err := brackish.TransmissionLoss(1000)
	require.NoError(t, err)
	require.InDelta(t, 60.1, tl2, 1e-9)
	assert.Equal(t, 50.0, brackish.AmbientNoise(), "unset fields keep defaults")

	// Zero-valued cfg fields never zero out coefficients.
	same := New(&Config{})
	assert.Equal(t, def.Absorption(), same.Absorption())
	assert.Equal(t, def.AmbientNoise(), same.AmbientNoise())
}
