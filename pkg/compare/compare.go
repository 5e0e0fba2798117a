// Package compare evaluates the acoustic model across multiple submarine
// classes for a shared scenario and ranks the outcomes.
package compare

import (
	"fmt"

	"github.com/ja7ad/sonar/pkg/acoustic"
	"github.com/ja7ad/sonar/pkg/profile"
)

// Engine runs batch evaluations and reductions over them. It holds only
// read-only collaborators and is safe for concurrent use.
type Engine struct {
	model    *acoustic.Model
	registry *profile.Registry
}

// New creates an engine over the given model and class registry.
func New(model *acoustic.Model, registry *profile.Registry) *Engine {
	return &Engine{model: model, registry: registry}
}

// EvaluateAll computes one result per profile, in input order. The batch
// is all-or-nothing: the first computation error aborts it and no partial
// results are returned.
func (e *Engine) EvaluateAll(profiles []profile.Profile, sc acoustic.Scenario) ([]acoustic.Result, error) {
	results := make([]acoustic.Result, 0, len(profiles))
	for _, p := range profiles {
		res, err := e.model.SNR(p, sc)
		if err != nil {
			return nil, fmt.Errorf("evaluate %q: %w", p.Name, err)
		}
		results = append(results, res)
	}
	return results, nil
}

// Quietest returns the class hardest to detect under the scenario: the
// minimum SNR. Exact ties resolve to the earliest profile in the input.
func (e *Engine) Quietest(profiles []profile.Profile, sc acoustic.Scenario) (acoustic.Result, error) {
	return e.selectBy(profiles, sc, func(candidate, best acoustic.Result) bool {
		return candidate.SNR < best.SNR
	})
}

// Loudest returns the class easiest to detect: the maximum SNR, with the
// same first-listed tie-break as Quietest.
func (e *Engine) Loudest(profiles []profile.Profile, sc acoustic.Scenario) (acoustic.Result, error) {
	return e.selectBy(profiles, sc, func(candidate, best acoustic.Result) bool {
		return candidate.SNR > best.SNR
	})
}

// selectBy reduces over EvaluateAll's output so selection and listing can
// never disagree on rounding. Strict comparison keeps the first of any
// exact tie.
func (e *Engine) selectBy(profiles []profile.Profile, sc acoustic.Scenario, better func(candidate, best acoustic.Result) bool) (acoustic.Result, error) {
	results, err := e.EvaluateAll(profiles, sc)
	if err != nil {
		return acoustic.Result{}, err
	}
	if len(results) == 0 {
		return acoustic.Result{}, ErrNoProfiles
	}

	best := results[0]
	for _, res := range results[1:] {
		if better(res, best) {
			best = res
		}
	}
	return best, nil
}

// ComputeSNR resolves name in the registry and evaluates the scenario for
// that single class.
func (e *Engine) ComputeSNR(name string, sc acoustic.Scenario) (acoustic.Result, error) {
	p, err := e.registry.Resolve(name)
	if err != nil {
		return acoustic.Result{}, err
	}
	return e.model.SNR(p, sc)
}

// CompareAll evaluates the named classes in the given order; with no
// names it evaluates the whole registry in registration order.
func (e *Engine) CompareAll(names []string, sc acoustic.Scenario) ([]acoustic.Result, error) {
	profiles, err := e.resolveAll(names)
	if err != nil {
		return nil, err
	}
	return e.EvaluateAll(profiles, sc)
}

// QuietestAt mirrors CompareAll but returns only the selected minimum.
func (e *Engine) QuietestAt(names []string, sc acoustic.Scenario) (acoustic.Result, error) {
	profiles, err := e.resolveAll(names)
	if err != nil {
		return acoustic.Result{}, err
	}
	return e.Quietest(profiles, sc)
}

// LoudestAt mirrors CompareAll but returns only the selected maximum.
func (e *Engine) LoudestAt(names []string, sc acoustic.Scenario) (acoustic.Result, error) {
	profiles, err := e.resolveAll(names)
	if err != nil {
		return acoustic.Result{}, err
	}
	return e.Loudest(profiles, sc)
}

func (e *Engine) resolveAll(names []string) ([]profile.Profile, error) {
	if len(names) == 0 {
		return e.registry.All(), nil
	}

	profiles := make([]profile.Profile, 0, len(names))
	for _, name := range names {
		p, err := e.registry.Resolve(name)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}
