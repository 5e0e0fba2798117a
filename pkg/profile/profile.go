// Package profile holds the static acoustic catalog of submarine classes
// that feeds the model in pkg/acoustic. The registry is built once at
// startup from hand-tuned constants, is read-only afterwards, and is safe
// for concurrent use.
package profile

import (
	"fmt"
	"strings"
)

// Profile is the fixed set of acoustic constants characterizing one
// submarine class. A Profile is a value and is never mutated after
// construction.
type Profile struct {
	// Name identifies the class ("Ohio", "Seawolf", ...).
	Name string

	// BaseNoise is L0, the broadband source level in dB at quiet cruise.
	BaseNoise float64

	// CavitationOnset is v0 in knots, the speed above which propeller
	// cavitation adds noise. Must be positive for the model to apply.
	CavitationOnset float64

	// NoiseGrowth is the exponent n of the sub-cavitation growth term.
	// Fits in this catalog keep n in [2,3], but the value is curve-fit
	// metadata, not a validated constraint.
	NoiseGrowth float64

	// CavitationScale (A) and CavitationExponent (p) are the fitted
	// coefficients of the cavitation polynomial A*(v-v0)^p.
	CavitationScale    float64
	CavitationExponent float64
}

// Registry is an ordered catalog of profiles. Lookup is case-insensitive;
// iteration order is registration order.
type Registry struct {
	order []Profile
	index map[string]int
}

// NewRegistry builds a registry from the given profiles, keeping input
// order. A duplicate name (case-insensitive) keeps the first entry.
func NewRegistry(profiles ...Profile) *Registry {
	r := &Registry{index: make(map[string]int, len(profiles))}
	for _, p := range profiles {
		key := strings.ToLower(p.Name)
		if _, ok := r.index[key]; ok {
			continue
		}
		r.index[key] = len(r.order)
		r.order = append(r.order, p)
	}
	return r
}

// Builtin returns the hand-tuned class catalog. Ohio carries the original
// fit (A solved from an estimated 25 kn flank speed, p ≈ 2.5); the other
// classes are fitted relative to it.
func Builtin() *Registry {
	return NewRegistry(
		Profile{Name: "Ohio", BaseNoise: 100, CavitationOnset: 21, NoiseGrowth: 2.5, CavitationScale: 0.3125, CavitationExponent: 2.5},
		Profile{Name: "Seawolf", BaseNoise: 95, CavitationOnset: 25, NoiseGrowth: 2.2, CavitationScale: 0.25, CavitationExponent: 2.5},
		Profile{Name: "Virginia", BaseNoise: 93, CavitationOnset: 25, NoiseGrowth: 2.0, CavitationScale: 0.22, CavitationExponent: 2.5},
		Profile{Name: "Los Angeles", BaseNoise: 105, CavitationOnset: 20, NoiseGrowth: 2.6, CavitationScale: 0.35, CavitationExponent: 2.5},
		Profile{Name: "Lafayette", BaseNoise: 110, CavitationOnset: 18, NoiseGrowth: 2.8, CavitationScale: 0.4, CavitationExponent: 2.5},
		Profile{Name: "Typhoon", BaseNoise: 108, CavitationOnset: 19, NoiseGrowth: 2.7, CavitationScale: 0.38, CavitationExponent: 2.5},
	)
}

// Resolve returns the profile registered under name. The match is
// case-insensitive since lookups come from CLI input.
func (r *Registry) Resolve(name string) (Profile, error) {
	i, ok := r.index[strings.ToLower(name)]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return r.order[i], nil
}

// All returns the profiles in registration order. The slice is a copy;
// callers may reorder it freely.
func (r *Registry) All() []Profile {
	out := make([]Profile, len(r.order))
	copy(out, r.order)
	return out
}

// Names returns the registered class names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	for i, p := range r.order {
		names[i] = p.Name
	}
	return names
}

// Len reports the number of registered profiles.
func (r *Registry) Len() int { return len(r.order) }
