package compare

import "errors"

// ErrNoProfiles indicates a quietest/loudest selection over an empty set;
// the reductions are only defined for non-empty input.
var ErrNoProfiles = errors.New("compare: no profiles to evaluate")
