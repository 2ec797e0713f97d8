package solanapay

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToAddress(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		valid   bool
	}{
		{name: "wallet address", input: "9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM", valid: true},
		{name: "usdc mint", input: "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v", valid: true},
		{name: "system program", input: "11111111111111111111111111111111", valid: true},
		{name: "wrapped sol", input: "So11111111111111111111111111111111111111112", valid: true},
		{name: "token program", input: "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA", valid: true},
		{name: "empty", input: "", valid: false},
		{name: "too short", input: "abc", valid: false},
		{name: "too long", input: strings.Repeat("1", 45), valid: false},
		{name: "hyphen outside alphabet", input: "invalid-address-invalid-address-invalid!", valid: false},
		{name: "zero outside alphabet", input: "0WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM", valid: false},
		{name: "uppercase o outside alphabet", input: "OWzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWW", valid: false},
		{name: "right alphabet wrong byte length", input: strings.Repeat("z", 44), valid: false},
		{name: "whitespace", input: " 9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := ToAddress(tt.input)
			if tt.valid {
				require.NoError(t, err)
				assert.Equal(t, tt.input, key.String())
			} else {
				require.ErrorIs(t, err, ErrInvalidAddress)
			}
		})
	}
}

// IsValidAddress must agree with ToAddress for every input.
func TestIsValidAddressAgreesWithToAddress(t *testing.T) {
	inputs := []string{
		"9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM",
		"EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v",
		"11111111111111111111111111111111",
		"",
		"abc",
		"invalid-address",
		strings.Repeat("z", 44),
		strings.Repeat("1", 45),
		"solana:9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM",
	}

	for _, input := range inputs {
		_, err := ToAddress(input)
		assert.Equal(t, err == nil, IsValidAddress(input), "input %q", input)
	}
}
