package money

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned when a provider-supplied amount is negative,
// non-finite, or unparseable.
var ErrInvalidAmount = errors.New("invalid amount")

// FromMinorUnits converts an integer amount of minor currency units
// (e.g. cents) into a two-decimal fixed-point amount.
func FromMinorUnits(v int64) (decimal.Decimal, error) {
	if v < 0 {
		return decimal.Zero, fmt.Errorf("%w: negative minor units %d", ErrInvalidAmount, v)
	}
	return decimal.New(v, -2), nil
}

// Parse converts a decimal string in major units (e.g. "10.00") into a
// two-decimal fixed-point amount.
func Parse(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: negative value %q", ErrInvalidAmount, s)
	}
	return d.Round(2), nil
}

// FromFloat converts a float amount in major units into a two-decimal
// fixed-point amount.
func FromFloat(f float64) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, fmt.Errorf("%w: non-finite value", ErrInvalidAmount)
	}
	if f < 0 {
		return decimal.Zero, fmt.Errorf("%w: negative value %f", ErrInvalidAmount, f)
	}
	return decimal.NewFromFloat(f).Round(2), nil
}

// Net computes the amount credited to the beneficiary: gross minus the
// processor fee.
func Net(gross, fee decimal.Decimal) (decimal.Decimal, error) {
	net := gross.Sub(fee)
	if net.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: fee %s exceeds gross %s", ErrInvalidAmount, fee, gross)
	}
	return net.Round(2), nil
}

// ToMinorUnits converts a fixed-point amount into integer minor units.
func ToMinorUnits(d decimal.Decimal) int64 {
	return d.Round(2).Shift(2).IntPart()
}
