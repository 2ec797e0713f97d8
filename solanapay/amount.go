package solanapay

import (
	"fmt"
	"math/big"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// amountPattern matches unsigned decimal numbers with an optional
// fractional part. No sign, no exponent, no separators.
var amountPattern = regexp.MustCompile(`^\d+(\.\d+)?$`)

// ToAtomicUnits converts a decimal amount string to an integer count of
// atomic units at the given precision. "1.5" with decimals 9 becomes
// 1500000000. The conversion is exact: strings carrying more than
// decimals fractional digits fail with ErrAmountPrecision rather than
// being rounded.
func ToAtomicUnits(value string, decimals int) (*big.Int, error) {
	if strings.TrimSpace(value) == "" {
		return nil, ErrAmountEmpty
	}

	if !amountPattern.MatchString(value) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, value)
	}

	whole, frac, _ := strings.Cut(value, ".")
	if len(frac) > decimals {
		return nil, fmt.Errorf("%w: %d fractional digits, max %d", ErrAmountPrecision, len(frac), decimals)
	}

	digits := whole + frac + strings.Repeat("0", decimals-len(frac))
	n, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, value)
	}

	return n, nil
}

// ToDecimalString renders an atomic-unit amount as a decimal string at the
// given precision, with trailing fractional zeros stripped. Zero renders
// as "0". The conversion goes through exact decimal arithmetic, never
// binary floating point.
func ToDecimalString(amount *big.Int, decimals int) string {
	return decimal.NewFromBigInt(amount, -int32(decimals)).String()
}
