package solanapay

import (
	"math/big"
	"net/url"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testRecipient = "9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM"
	testToken     = "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"
	testReference = "So11111111111111111111111111111111111111112"
)

func mustKey(t *testing.T, s string) solana.PublicKey {
	t.Helper()
	key, err := ToAddress(s)
	require.NoError(t, err)
	return key
}

func TestEncodeTransferRequest(t *testing.T) {
	recipient := mustKey(t, testRecipient)
	token := mustKey(t, testToken)
	reference := mustKey(t, testReference)
	program := mustKey(t, "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")

	tests := []struct {
		name string
		req  *TransferRequest
		want string
	}{
		{
			name: "recipient only",
			req:  &TransferRequest{Recipient: recipient},
			want: "solana:" + testRecipient,
		},
		{
			name: "one sol has no spl-token param",
			req:  &TransferRequest{Recipient: recipient, Amount: big.NewInt(1_000_000_000)},
			want: "solana:" + testRecipient + "?amount=1",
		},
		{
			name: "fractional amount",
			req:  &TransferRequest{Recipient: recipient, Amount: big.NewInt(10_000_000)},
			want: "solana:" + testRecipient + "?amount=0.01",
		},
		{
			name: "token transfer keeps native decimals",
			req: &TransferRequest{
				Recipient: recipient,
				Amount:    big.NewInt(1_500_000_000),
				SPLToken:  &token,
			},
			want: "solana:" + testRecipient + "?amount=1.5&spl-token=" + testToken,
		},
		{
			name: "references in order",
			req: &TransferRequest{
				Recipient:  recipient,
				References: []solana.PublicKey{reference, program},
			},
			want: "solana:" + testRecipient +
				"?reference=" + testReference +
				"&reference=TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA",
		},
		{
			name: "display strings are query escaped",
			req: &TransferRequest{
				Recipient: recipient,
				Label:     "Michael's Store",
				Message:   "Thanks for your order",
				Memo:      "OrderId#42",
			},
			want: "solana:" + testRecipient +
				"?label=Michael%27s+Store&message=Thanks+for+your+order&memo=OrderId%2342",
		},
		{
			name: "empty strings are omitted",
			req: &TransferRequest{
				Recipient: recipient,
				Amount:    big.NewInt(1),
				Label:     "",
				Message:   "",
				Memo:      "",
			},
			want: "solana:" + testRecipient + "?amount=0.000000001",
		},
		{
			name: "full parameter order",
			req: &TransferRequest{
				Recipient:  recipient,
				Amount:     big.NewInt(10_000_000),
				SPLToken:   &token,
				References: []solana.PublicKey{reference},
				Label:      "a",
				Message:    "b",
				Memo:       "c",
			},
			want: "solana:" + testRecipient +
				"?amount=0.01&spl-token=" + testToken +
				"&reference=" + testReference + "&label=a&message=b&memo=c",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeURL(tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeTransactionRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     *TransactionRequest
		want    string
		wantErr error
	}{
		{
			name: "plain link",
			req:  &TransactionRequest{Link: mustParseLink(t, "https://example.com/api/pay")},
			want: "solana:https://example.com/api/pay",
		},
		{
			name: "trailing slash stripped",
			req:  &TransactionRequest{Link: mustParseLink(t, "https://example.com/api/pay/")},
			want: "solana:https://example.com/api/pay",
		},
		{
			name: "link with query is percent encoded",
			req:  &TransactionRequest{Link: mustParseLink(t, "https://example.com/api/pay?order=42")},
			want: "solana:" + url.QueryEscape("https://example.com/api/pay?order=42"),
		},
		{
			name: "label and message appended",
			req: &TransactionRequest{
				Link:    mustParseLink(t, "https://example.com/api/pay"),
				Label:   "Shop",
				Message: "Order 42",
			},
			want: "solana:https://example.com/api/pay?label=Shop&message=Order+42",
		},
		{
			name:    "nil link",
			req:     &TransactionRequest{},
			wantErr: ErrInvalidLink,
		},
		{
			name:    "http scheme rejected",
			req:     &TransactionRequest{Link: mustParseLink(t, "http://example.com/api/pay")},
			wantErr: ErrInvalidLink,
		},
		{
			name:    "ftp scheme rejected",
			req:     &TransactionRequest{Link: mustParseLink(t, "ftp://example.com/pay")},
			wantErr: ErrInvalidLink,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeURL(tt.req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func mustParseLink(t *testing.T, s string) *url.URL {
	t.Helper()
	link, err := url.Parse(s)
	require.NoError(t, err)
	return link
}
