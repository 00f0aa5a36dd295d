package exact

import "errors"

var (
	// ErrZeroDenominator is returned by New when den == 0.
	ErrZeroDenominator = errors.New("exact: zero denominator")

	// ErrDivisionByZero is returned by Ratio.Div when the divisor is zero.
	ErrDivisionByZero = errors.New("exact: division by zero")
)
