// Package acoustic implements the passive-sonar detectability model: how
// loud a submarine class is at a given speed, how much of that energy is
// lost over range, and what signal-to-noise ratio reaches a passive
// listener against ambient ocean noise.
//
// The model evaluates, for a class profile (see pkg/profile) and a
// Scenario:
//
//	L_p  = L0 + 10*log10(1 + (v/v0)^n) + ΔL_cav(v)
//	ΔL_cav(v) = 0 for v <= v0, else A*(v-v0)^p
//	TL   = 20*log10(r) + alpha*r
//	SNR  = L_p - TL - NL
//
// where v is speed in knots, r is range in meters, NL is the ambient
// noise level in dB, and alpha is the seawater absorption coefficient
// carried by the model Config (not a package global, so tests can
// substitute alternate media).
//
// Every function is deterministic and side-effect-free: identical inputs
// produce bit-identical outputs, and a Model is safe for concurrent use.
// Inputs that would push log10 or a real-valued power outside its domain
// (negative speed, non-positive range, a profile with a non-positive
// cavitation onset) are rejected up front with an error wrapping
// ErrDomain instead of flowing through as NaN.
package acoustic
