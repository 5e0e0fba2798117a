package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecibelString(t *testing.T) {
	assert.Equal(t, "83.98 dB", Decibel(83.98).String())
	assert.Equal(t, "-34.21 dB", Decibel(-34.21).String())
	assert.Equal(t, "0.00 dB", Decibel(0).String())
}

func TestKnotsString(t *testing.T) {
	assert.Equal(t, "15.0 kn", Knots(15).String())
	assert.Equal(t, "21.5 kn", Knots(21.5).String())
}

func TestMetersString(t *testing.T) {
	assert.Equal(t, "800 m", Meters(800).String())
	assert.Equal(t, "1.00 km", Meters(1000).String())
	assert.Equal(t, "5.00 km", Meters(5000).String())
	assert.Equal(t, "12.34 km", Meters(12340).String())
}

func TestMetersKm(t *testing.T) {
	assert.InDelta(t, 5.0, Meters(5000).Km(), 1e-12)
}
