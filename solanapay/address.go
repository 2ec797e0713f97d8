package solanapay

import (
	"fmt"
	"regexp"

	"github.com/gagliardetto/solana-go"
)

// base58Pattern matches the Bitcoin base58 alphabet (no 0, O, I, l).
var base58Pattern = regexp.MustCompile(`^[1-9A-HJ-NP-Za-km-z]{32,44}$`)

// ToAddress parses a base58-encoded Solana public key. It validates
// format only: the string must use the base58 alphabet, fall in the
// 32-44 character range, and decode to exactly 32 bytes. It says nothing
// about whether the account exists on chain.
func ToAddress(s string) (solana.PublicKey, error) {
	if !base58Pattern.MatchString(s) {
		return solana.PublicKey{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}

	key, err := solana.PublicKeyFromBase58(s)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("%w: %q: %v", ErrInvalidAddress, s, err)
	}

	return key, nil
}

// IsValidAddress reports whether s is a well-formed Solana address. It
// agrees with ToAddress for every input: true exactly when ToAddress
// returns no error.
func IsValidAddress(s string) bool {
	_, err := ToAddress(s)
	return err == nil
}
