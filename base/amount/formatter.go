// Package amount converts between base unit token amounts and the decimal
// strings people type and read.
package amount

import (
	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"

	"github.com/x-xyz/holderauction/domain"
)

type Formatter interface {
	// Display renders a base unit amount, e.g. 5e16 wei as "0.05"
	Display(a domain.Amount) decimal.Decimal
	// Parse reads a display string into base units. Negative values and
	// precision beyond the token decimals are rejected.
	Parse(display string) (domain.Amount, error)
}

type formatter struct {
	decimals int32
}

func NewFormatter(decimals int32) Formatter {
	return &formatter{decimals: decimals}
}

func (f *formatter) Display(a domain.Amount) decimal.Decimal {
	return decimal.NewFromBigInt(a.Big(), -f.decimals)
}

func (f *formatter) Parse(display string) (domain.Amount, error) {
	d, err := decimal.NewFromString(display)
	if err != nil {
		return domain.ZeroAmount, xerrors.Errorf("decimal.NewFromString %q: %w", display, domain.ErrBadParamInput)
	}
	if d.IsNegative() {
		return domain.ZeroAmount, xerrors.Errorf("negative amount %q: %w", display, domain.ErrBadParamInput)
	}
	shifted := d.Shift(f.decimals)
	if !shifted.Equal(shifted.Truncate(0)) {
		return domain.ZeroAmount, xerrors.Errorf("amount %q exceeds %d decimals: %w", display, f.decimals, domain.ErrBadParamInput)
	}
	return domain.AmountFromBig(shifted.BigInt())
}
