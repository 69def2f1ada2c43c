package valuation

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidDiscountRate is returned when a discount rate at or below -100%
// is passed to NPV. The rate makes the discount factor zero or undefined, so
// it is treated as a caller contract violation rather than clamped.
var ErrInvalidDiscountRate = errors.New("discount rate must be greater than -1")

// NPV discounts a cash-flow sequence to present value with standard
// end-of-year discounting: the first cash flow is discounted one full
// period. A zero rate returns the undiscounted sum; a negative rate above
// -1 amplifies future value.
func NPV(cashflows []float64, rate float64) (float64, error) {
	if rate <= -1 {
		return 0, fmt.Errorf("%w: got %v", ErrInvalidDiscountRate, rate)
	}
	total := 0.0
	for t, cf := range cashflows {
		total += cf / math.Pow(1+rate, float64(t+1))
	}
	return total, nil
}
