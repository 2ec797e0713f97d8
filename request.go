package commercekit

import (
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/go-playground/validator/v10"

	"github.com/solana-foundation/commerce-kit-sub002/metrics"
	"github.com/solana-foundation/commerce-kit-sub002/solanapay"
	"github.com/solana-foundation/commerce-kit-sub002/types"
)

var validate = validator.New()

// PaymentParams are the caller-supplied inputs for a payment request.
// Amount is a decimal string in principal units ("1.5" = 1.5 SOL); it is
// converted losslessly to atomic units, so more than 9 fractional digits
// is an error, not a rounding.
type PaymentParams struct {
	Recipient string `json:"recipient" validate:"required"`
	Amount    string `json:"amount,omitempty"`
	SPLToken  string `json:"splToken,omitempty"`
	Label     string `json:"label,omitempty" validate:"max=256"`
	Message   string `json:"message,omitempty" validate:"max=256"`
	Memo      string `json:"memo,omitempty" validate:"max=256"`
}

// CreatePaymentRequest assembles a transfer request with a freshly
// generated reference, encodes it as a Solana Pay URL, and returns the
// tracked record. The record's Reference is the correlation address to
// poll with FindReference once the URL has been presented to the payer.
func (k *CommerceKit) CreatePaymentRequest(params PaymentParams) (*types.PaymentRecord, error) {
	if err := validate.Struct(params); err != nil {
		return nil, &types.KitError{
			Code:    types.ErrInvalidParams,
			Message: fmt.Sprintf("invalid payment params: %v", err),
		}
	}

	req, err := buildTransferRequest(params)
	if err != nil {
		return nil, &types.KitError{
			Code:    types.ErrInvalidParams,
			Message: err.Error(),
		}
	}

	reference, err := k.NewReference()
	if err != nil {
		return nil, &types.KitError{
			Code:    types.ErrInvalidParams,
			Message: err.Error(),
		}
	}
	req.References = []solana.PublicKey{reference}

	url, err := solanapay.EncodeURL(req)
	if err != nil {
		return nil, err
	}

	record := &types.PaymentRecord{
		ID:        k.newID(),
		URL:       url,
		Recipient: params.Recipient,
		Amount:    req.Amount,
		SPLToken:  params.SPLToken,
		Reference: reference.String(),
		Label:     params.Label,
		Message:   params.Message,
		Memo:      params.Memo,
		Status:    types.PaymentStatusPending,
		CreatedAt: time.Now().UTC(),
	}

	k.metrics.IncCounter(metrics.EventPaymentCreated, k.labels())
	k.logger.Info("payment request created", map[string]any{
		"id":        record.ID,
		"reference": record.Reference,
	})

	return record, nil
}

// buildTransferRequest converts validated params into a codec request.
func buildTransferRequest(params PaymentParams) (*solanapay.TransferRequest, error) {
	recipient, err := solanapay.ToAddress(params.Recipient)
	if err != nil {
		return nil, fmt.Errorf("recipient: %w", err)
	}

	req := &solanapay.TransferRequest{
		Recipient: recipient,
		Label:     params.Label,
		Message:   params.Message,
		Memo:      params.Memo,
	}

	if params.Amount != "" {
		amount, err := solanapay.ToAtomicUnits(params.Amount, solanapay.SOLDecimals)
		if err != nil {
			return nil, fmt.Errorf("amount: %w", err)
		}
		req.Amount = amount
	}

	if params.SPLToken != "" {
		token, err := solanapay.ToAddress(params.SPLToken)
		if err != nil {
			return nil, fmt.Errorf("spl token: %w", err)
		}
		req.SPLToken = &token
	}

	return req, nil
}
