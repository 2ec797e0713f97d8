package solanapay

import (
	"fmt"
	"net/url"
	"strings"
)

// EncodeURL serializes a payment request into a Solana Pay URL.
//
// Transfer requests encode as "solana:<recipient>" with query parameters
// appended in a fixed order: amount, spl-token, reference (repeated),
// label, message, memo. Transaction requests embed their https link in
// the path. Empty display strings are omitted entirely, never encoded as
// empty parameters.
func EncodeURL(req Request) (string, error) {
	switch r := req.(type) {
	case *TransferRequest:
		return encodeTransferRequest(r)
	case *TransactionRequest:
		return encodeTransactionRequest(r)
	default:
		return "", fmt.Errorf("solanapay: unsupported request type %T", req)
	}
}

func encodeTransferRequest(r *TransferRequest) (string, error) {
	var sb strings.Builder
	sb.WriteString(Protocol)
	sb.WriteString(r.Recipient.String())

	// url.Values.Encode sorts keys alphabetically, so the query string is
	// assembled by hand to keep the parameter order stable.
	params := make([]string, 0, 6+len(r.References))

	if r.Amount != nil {
		// The wire amount is always expressed at native SOL precision,
		// even when an spl-token parameter is present.
		params = append(params, "amount="+url.QueryEscape(ToDecimalString(r.Amount, SOLDecimals)))
	}

	if r.SPLToken != nil {
		params = append(params, "spl-token="+url.QueryEscape(r.SPLToken.String()))
	}

	for _, ref := range r.References {
		params = append(params, "reference="+url.QueryEscape(ref.String()))
	}

	if r.Label != "" {
		params = append(params, "label="+url.QueryEscape(r.Label))
	}

	if r.Message != "" {
		params = append(params, "message="+url.QueryEscape(r.Message))
	}

	if r.Memo != "" {
		params = append(params, "memo="+url.QueryEscape(r.Memo))
	}

	if len(params) > 0 {
		sb.WriteString("?")
		sb.WriteString(strings.Join(params, "&"))
	}

	return sb.String(), nil
}

func encodeTransactionRequest(r *TransactionRequest) (string, error) {
	if r.Link == nil {
		return "", fmt.Errorf("%w: link is required", ErrInvalidLink)
	}

	if r.Link.IsAbs() && r.Link.Scheme+":" != HTTPSProtocol {
		return "", fmt.Errorf("%w: scheme %q", ErrInvalidLink, r.Link.Scheme)
	}

	var sb strings.Builder
	sb.WriteString(Protocol)

	link := r.Link.String()
	if r.Link.RawQuery != "" {
		// A link that carries its own query string is percent-encoded
		// wholesale so its parameters cannot be confused with the payment
		// URL's own label/message parameters.
		link = strings.Replace(link, "/?", "?", 1)
		sb.WriteString(url.QueryEscape(link))
	} else {
		sb.WriteString(strings.TrimSuffix(link, "/"))
	}

	params := make([]string, 0, 2)

	if r.Label != "" {
		params = append(params, "label="+url.QueryEscape(r.Label))
	}

	if r.Message != "" {
		params = append(params, "message="+url.QueryEscape(r.Message))
	}

	if len(params) > 0 {
		sb.WriteString("?")
		sb.WriteString(strings.Join(params, "&"))
	}

	return sb.String(), nil
}
