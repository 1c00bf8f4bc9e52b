package domain

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultDecimals is the fixed-point scale of the native coin and its wrapped token.
const DefaultDecimals = 18

// Amount is a token quantity in the contract's smallest integer unit.
// The zero value is zero.
type Amount struct {
	wei *big.Int
}

func NewAmount(v *big.Int) Amount {
	if v == nil {
		return Amount{}
	}
	return Amount{wei: new(big.Int).Set(v)}
}

func ZeroAmount() Amount {
	return Amount{}
}

// maxUint256Digits is the number of decimal digits in 2^256-1.
const maxUint256Digits = 78

// MaxUint256 is 2^256-1, the conventional sentinel for an unlimited allowance.
func MaxUint256() Amount {
	max := new(big.Int).Lsh(big.NewInt(1), 256)
	return Amount{wei: max.Sub(max, big.NewInt(1))}
}

// ParseAmount converts user input in display units to smallest units.
// Input with more fractional digits than decimals is rejected, never rounded.
func ParseAmount(input string, decimals int32) (Amount, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return Amount{}, fmt.Errorf("%w: empty input", ErrInvalidAmount)
	}

	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return Amount{}, fmt.Errorf("%w: %q", ErrInvalidAmount, input)
	}
	if d.IsNegative() {
		return Amount{}, fmt.Errorf("%w: %q is negative", ErrInvalidAmount, input)
	}
	if d.IsZero() {
		return Amount{}, nil
	}

	// Bound the exponent before scaling so inputs like 1e2000000000 fail fast.
	digits := int64(len(d.Coefficient().String()))
	exp := int64(d.Exponent())
	if digits+exp+int64(decimals) > maxUint256Digits {
		return Amount{}, fmt.Errorf("%w: %q exceeds uint256", ErrInvalidAmount, input)
	}
	if exp+digits < -int64(decimals) {
		return Amount{}, fmt.Errorf("%w: %q has more than %d decimal places", ErrInvalidAmount, input, decimals)
	}

	if !d.Equal(d.Truncate(decimals)) {
		return Amount{}, fmt.Errorf("%w: %q has more than %d decimal places", ErrInvalidAmount, input, decimals)
	}

	wei := d.Shift(decimals).BigInt()
	if wei.Cmp(MaxUint256().wei) > 0 {
		return Amount{}, fmt.Errorf("%w: %q exceeds uint256", ErrInvalidAmount, input)
	}

	return Amount{wei: wei}, nil
}

// ToSmallestUnit converts a display-unit decimal to smallest units.
func ToSmallestUnit(d decimal.Decimal, decimals int32) (Amount, error) {
	return ParseAmount(d.String(), decimals)
}

// FromSmallestUnit converts to a display-unit decimal.
func FromSmallestUnit(a Amount, decimals int32) decimal.Decimal {
	return decimal.NewFromBigInt(a.BigInt(), -decimals)
}

func (a Amount) BigInt() *big.Int {
	if a.wei == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(a.wei)
}

func (a Amount) Cmp(other Amount) int {
	return a.BigInt().Cmp(other.BigInt())
}

func (a Amount) IsZero() bool {
	return a.wei == nil || a.wei.Sign() == 0
}

func (a Amount) Add(other Amount) Amount {
	return Amount{wei: new(big.Int).Add(a.BigInt(), other.BigInt())}
}

// Sub may go negative; callers comparing shortfalls rely on the sign.
func (a Amount) Sub(other Amount) Amount {
	return Amount{wei: new(big.Int).Sub(a.BigInt(), other.BigInt())}
}

func (a Amount) Sign() int {
	if a.wei == nil {
		return 0
	}
	return a.wei.Sign()
}

// Display renders the amount in display units without trailing zeros.
func (a Amount) Display(decimals int32) string {
	return FromSmallestUnit(a, decimals).String()
}

func (a Amount) String() string {
	return a.BigInt().String()
}
