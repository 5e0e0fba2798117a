package acoustic

import (
	"errors"
	"fmt"
)

var (
	// ErrDomain is the root of all model precondition failures. Callers
	// can errors.Is against it to separate bad inputs from lookup errors.
	ErrDomain = errors.New("acoustic: input outside model domain")

	// ErrNegativeSpeed indicates a negative speed; (v/v0)^n is undefined
	// over the reals for v < 0 and non-integer n.
	ErrNegativeSpeed = fmt.Errorf("%w: negative speed", ErrDomain)

	// ErrCavitationOnset indicates a profile whose cavitation onset speed
	// is not positive, which would divide by zero in the growth term.
	ErrCavitationOnset = fmt.Errorf("%w: cavitation onset speed must be positive", ErrDomain)

	// ErrRange indicates a non-positive range; log10 is undefined there.
	ErrRange = fmt.Errorf("%w: range must be positive", ErrDomain)
)
