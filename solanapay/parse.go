package solanapay

import (
	"fmt"
	"net/url"
	"strings"
)

// ParseURL decodes a Solana Pay URL into a TransferRequest or
// TransactionRequest. Validation is fail-fast: the first malformed field
// aborts the parse, and no partial result is returned.
//
// A path segment containing ':' or '%' is an embedded (possibly
// percent-encoded) transaction-request link; base58 recipients can never
// contain either character.
func ParseURL(rawURL string) (Request, error) {
	if len(rawURL) > MaxURLLength {
		return nil, fmt.Errorf("%w: %d characters, max %d", ErrURLTooLong, len(rawURL), MaxURLLength)
	}

	if !strings.HasPrefix(rawURL, Protocol) {
		return nil, fmt.Errorf("%w: expected %q prefix", ErrInvalidProtocol, Protocol)
	}

	path, rawQuery, _ := strings.Cut(rawURL[len(Protocol):], "?")
	if path == "" {
		return nil, ErrMissingPath
	}

	// Best-effort query decode: pairs with broken percent escapes are
	// dropped rather than failing the whole parse.
	query, _ := url.ParseQuery(rawQuery)

	if strings.ContainsAny(path, ":%") {
		return parseTransactionRequest(path, query)
	}

	return parseTransferRequest(path, query)
}

func parseTransferRequest(path string, query url.Values) (*TransferRequest, error) {
	recipient, err := ToAddress(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRecipient, path)
	}

	req := &TransferRequest{Recipient: recipient}

	if values, ok := query["amount"]; ok {
		// First occurrence wins, per standard query-parameter semantics.
		raw := values[0]
		if !amountPattern.MatchString(raw) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
		}

		amount, err := ToAtomicUnits(raw, SOLDecimals)
		if err != nil {
			return nil, err
		}
		req.Amount = amount
	}

	if values, ok := query["spl-token"]; ok {
		token, err := ToAddress(values[0])
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidToken, values[0])
		}
		req.SPLToken = &token
	}

	for _, raw := range query["reference"] {
		ref, err := ToAddress(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidReference, raw)
		}
		req.References = append(req.References, ref)
	}

	req.Label = query.Get("label")
	req.Message = query.Get("message")
	req.Memo = query.Get("memo")

	return req, nil
}

func parseTransactionRequest(path string, query url.Values) (*TransactionRequest, error) {
	decoded, err := url.PathUnescape(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLink, err)
	}

	link, err := url.Parse(decoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLink, decoded)
	}

	if !link.IsAbs() || link.Scheme+":" != HTTPSProtocol {
		return nil, fmt.Errorf("%w: %q is not an absolute https url", ErrInvalidLink, decoded)
	}

	return &TransactionRequest{
		Link:    link,
		Label:   query.Get("label"),
		Message: query.Get("message"),
	}, nil
}
