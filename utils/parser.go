// Package utils provides parsing and validation helpers for the
// configuration surface of the commerce kit.
package utils

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/solana-foundation/commerce-kit-sub002/solanapay"
	"github.com/solana-foundation/commerce-kit-sub002/types"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// "pubkey" validates base58 Solana addresses in struct tags.
	_ = validate.RegisterValidation("pubkey", func(fl validator.FieldLevel) bool {
		return solanapay.IsValidAddress(fl.Field().String())
	})
}

// ParseConfig parses and validates a Config from JSON.
func ParseConfig(data []byte) (*types.Config, error) {
	var config types.Config

	if err := json.Unmarshal(data, &config); err != nil {
		return nil, &types.KitError{
			Code:    types.ErrConfigError,
			Message: fmt.Sprintf("failed to parse config: %v", err),
		}
	}

	if err := validate.Struct(&config); err != nil {
		return nil, &types.KitError{
			Code:    types.ErrConfigError,
			Message: fmt.Sprintf("validation failed: %v", err),
		}
	}

	if err := config.Validate(); err != nil {
		return nil, &types.KitError{
			Code:    types.ErrConfigError,
			Message: err.Error(),
		}
	}

	return &config, nil
}

// ParseClientConfig parses and validates a ClientConfig from JSON.
func ParseClientConfig(data []byte) (*types.ClientConfig, error) {
	var config types.ClientConfig

	if err := json.Unmarshal(data, &config); err != nil {
		return nil, &types.KitError{
			Code:    types.ErrConfigError,
			Message: fmt.Sprintf("failed to parse client config: %v", err),
		}
	}

	if err := validate.Struct(&config); err != nil {
		return nil, &types.KitError{
			Code:    types.ErrConfigError,
			Message: fmt.Sprintf("validation failed: %v", err),
		}
	}

	return &config, nil
}

// ParseTokenInfo parses and validates a TokenInfo from JSON. A non-empty
// mint must be a well-formed address.
func ParseTokenInfo(data []byte) (*types.TokenInfo, error) {
	var info types.TokenInfo

	if err := json.Unmarshal(data, &info); err != nil {
		return nil, &types.KitError{
			Code:    types.ErrInvalidParams,
			Message: fmt.Sprintf("failed to parse token info: %v", err),
		}
	}

	if err := validate.Struct(&info); err != nil {
		return nil, &types.KitError{
			Code:    types.ErrInvalidParams,
			Message: fmt.Sprintf("validation failed: %v", err),
		}
	}

	if info.Mint != "" && !solanapay.IsValidAddress(info.Mint) {
		return nil, &types.KitError{
			Code:    types.ErrInvalidParams,
			Message: fmt.Sprintf("invalid mint address: %s", info.Mint),
		}
	}

	return &info, nil
}

// ValidateStruct runs tag validation on any struct, including the custom
// "pubkey" tag.
func ValidateStruct(v interface{}) error {
	return validate.Struct(v)
}

// NormalizeJSON formats JSON with consistent indentation.
func NormalizeJSON(data interface{}) ([]byte, error) {
	return json.MarshalIndent(data, "", "  ")
}

// CompactJSON removes whitespace from JSON.
func CompactJSON(data []byte) ([]byte, error) {
	var buffer bytes.Buffer
	if err := json.Compact(&buffer, data); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
