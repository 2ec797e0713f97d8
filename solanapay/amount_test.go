package solanapay

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToAtomicUnits(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		decimals int
		want     string
		wantErr  error
	}{
		{name: "whole sol", value: "1", decimals: 9, want: "1000000000"},
		{name: "fractional sol", value: "0.01", decimals: 9, want: "10000000"},
		{name: "full precision", value: "1.123456789", decimals: 9, want: "1123456789"},
		{name: "zero", value: "0", decimals: 9, want: "0"},
		{name: "zero with fraction", value: "0.000000001", decimals: 9, want: "1"},
		{name: "zero decimals", value: "42", decimals: 0, want: "42"},
		{name: "usdc style", value: "1.5", decimals: 6, want: "1500000"},
		{name: "larger than uint64", value: "98765432109876543210.123456789", decimals: 9, want: "98765432109876543210123456789"},
		{name: "leading zeros", value: "007", decimals: 2, want: "700"},
		{name: "empty", value: "", decimals: 9, wantErr: ErrAmountEmpty},
		{name: "whitespace only", value: "   ", decimals: 9, wantErr: ErrAmountEmpty},
		{name: "negative", value: "-1", decimals: 9, wantErr: ErrInvalidAmount},
		{name: "plus sign", value: "+1", decimals: 9, wantErr: ErrInvalidAmount},
		{name: "scientific notation", value: "1e9", decimals: 9, wantErr: ErrInvalidAmount},
		{name: "trailing dot", value: "1.", decimals: 9, wantErr: ErrInvalidAmount},
		{name: "leading dot", value: ".5", decimals: 9, wantErr: ErrInvalidAmount},
		{name: "thousands separator", value: "1,000", decimals: 9, wantErr: ErrInvalidAmount},
		{name: "embedded space", value: "1 0", decimals: 9, wantErr: ErrInvalidAmount},
		{name: "hex digits", value: "0x10", decimals: 9, wantErr: ErrInvalidAmount},
		{name: "too many fractional digits", value: "1.0123456789123", decimals: 9, wantErr: ErrAmountPrecision},
		{name: "one digit past the bound", value: "1.0000000001", decimals: 9, wantErr: ErrAmountPrecision},
		{name: "any fraction at zero decimals", value: "1.5", decimals: 0, wantErr: ErrAmountPrecision},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToAtomicUnits(tt.value, tt.decimals)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestToDecimalString(t *testing.T) {
	tests := []struct {
		name     string
		amount   int64
		decimals int
		want     string
	}{
		{name: "one sol", amount: 1_000_000_000, decimals: 9, want: "1"},
		{name: "one lamport", amount: 1, decimals: 9, want: "0.000000001"},
		{name: "trailing zeros stripped", amount: 1_500_000_000, decimals: 9, want: "1.5"},
		{name: "zero", amount: 0, decimals: 9, want: "0"},
		{name: "zero decimals", amount: 42, decimals: 0, want: "42"},
		{name: "negative renders signed", amount: -250, decimals: 2, want: "-2.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToDecimalString(big.NewInt(tt.amount), tt.decimals)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Rendering an amount and converting it back must reproduce the original
// integer for every decimals setting the wire format allows.
func TestAmountRoundTrip(t *testing.T) {
	values := []string{"0", "1", "7", "999999999", "1000000000", "123456789012345678901234567890"}

	for decimals := 0; decimals <= 9; decimals++ {
		for _, v := range values {
			n, ok := new(big.Int).SetString(v, 10)
			require.True(t, ok)

			back, err := ToAtomicUnits(ToDecimalString(n, decimals), decimals)
			require.NoError(t, err, "value %s decimals %d", v, decimals)
			assert.Zero(t, n.Cmp(back), "value %s decimals %d", v, decimals)
		}
	}
}
