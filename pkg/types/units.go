package types

import "fmt"

// Decibel is a float64 wrapper representing a level or level difference in dB.
type Decibel float64

// String formats the level with two decimals and a dB suffix.
func (d Decibel) String() string { return fmt.Sprintf("%.2f dB", float64(d)) }

// Knots is a speed in knots.
type Knots float64

// String formats the speed with one decimal and a kn suffix.
func (k Knots) String() string { return fmt.Sprintf("%.1f kn", float64(k)) }

// Meters is a distance in meters.
type Meters float64

// String returns a human-readable distance, switching to kilometers at 1 km.
func (m Meters) String() string {
	if m >= 1000 {
		return fmt.Sprintf("%.2f km", float64(m)/1000)
	}
	return fmt.Sprintf("%.0f m", float64(m))
}

// Km returns the distance in kilometers.
func (m Meters) Km() float64 { return float64(m) / 1000 }
