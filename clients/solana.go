package clients

import (
	"context"
	"fmt"
	"math/big"
	"time"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/token"
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/solana-foundation/commerce-kit-sub002/solanapay"
	kittypes "github.com/solana-foundation/commerce-kit-sub002/types"
)

// confirmPollInterval is how often SendAndConfirmTransaction polls for
// signature status.
const confirmPollInterval = 3 * time.Second

// SolanaClient implements Client over a JSON-RPC endpoint.
type SolanaClient struct {
	network kittypes.Network
	rpcURL  string
	client  *rpc.Client
}

var _ Client = (*SolanaClient)(nil)

// NewSolanaClient creates a client for the given cluster. An empty rpcURL
// falls back to the cluster's stock endpoint.
func NewSolanaClient(network kittypes.Network, rpcURL string) (*SolanaClient, error) {
	if rpcURL == "" {
		rpcURL = kittypes.DefaultRPCEndpoints[network]
	}
	if rpcURL == "" {
		return nil, &kittypes.KitError{
			Code:    kittypes.ErrUnsupportedCluster,
			Message: fmt.Sprintf("no RPC endpoint for network %q", network),
		}
	}

	return &SolanaClient{
		network: network,
		rpcURL:  rpcURL,
		client:  rpc.New(rpcURL),
	}, nil
}

// FindReference returns the oldest signature mentioning the reference
// address. Signatures come back from the RPC newest first, and the oldest
// one is the transaction that settled the payment request.
func (c *SolanaClient) FindReference(ctx context.Context, reference solana.PublicKey) (solana.Signature, error) {
	signatures, err := c.client.GetSignaturesForAddress(ctx, reference)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("get signatures for %s: %w", reference, err)
	}

	if len(signatures) == 0 {
		return solana.Signature{}, ErrNotFound
	}

	oldest := signatures[len(signatures)-1]
	if oldest.Err != nil {
		return solana.Signature{}, fmt.Errorf("%w: %v", ErrTransactionFailed, oldest.Err)
	}

	return oldest.Signature, nil
}

// ValidateTransfer fetches the transaction and checks it against the
// request: the recipient must have received at least the requested amount
// (in lamports for native SOL, token base units for SPL transfers), and
// every request reference must appear in the transaction's account keys.
func (c *SolanaClient) ValidateTransfer(ctx context.Context, signature solana.Signature, req *solanapay.TransferRequest) error {
	maxVersion := uint64(0)
	result, err := c.client.GetTransaction(ctx, signature, &rpc.GetTransactionOpts{
		Encoding:                       solana.EncodingBase64,
		Commitment:                     rpc.CommitmentConfirmed,
		MaxSupportedTransactionVersion: &maxVersion,
	})
	if err != nil {
		return fmt.Errorf("get transaction %s: %w", signature, err)
	}

	if result == nil || result.Meta == nil || result.Transaction == nil {
		return ErrMissingMeta
	}

	tx, err := result.Transaction.GetTransaction()
	if err != nil {
		return fmt.Errorf("decode transaction: %w", err)
	}

	return checkTransfer(tx, result.Meta, req)
}

// checkTransfer is the pure half of ValidateTransfer, split out so it can
// be exercised without an RPC endpoint.
func checkTransfer(tx *solana.Transaction, meta *rpc.TransactionMeta, req *solanapay.TransferRequest) error {
	if tx == nil || meta == nil {
		return ErrMissingMeta
	}

	if meta.Err != nil {
		return fmt.Errorf("%w: %v", ErrTransactionFailed, meta.Err)
	}

	keys := tx.Message.AccountKeys

	recipientIndex := -1
	for i, key := range keys {
		if key.Equals(req.Recipient) {
			recipientIndex = i
			break
		}
	}
	if recipientIndex < 0 {
		return ErrRecipientNotFound
	}

	if req.Amount != nil {
		var received *big.Int
		if req.SPLToken == nil {
			received = lamportDelta(meta, recipientIndex)
		} else {
			received = tokenDelta(meta, req.Recipient, *req.SPLToken)
		}

		if received.Cmp(req.Amount) < 0 {
			return fmt.Errorf("%w: received %s, requested %s", ErrAmountMismatch, received, req.Amount)
		}
	}

	for _, ref := range req.References {
		found := false
		for _, key := range keys {
			if key.Equals(ref) {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%w: %s", ErrReferenceNotFound, ref)
		}
	}

	return nil
}

// lamportDelta computes the recipient's native balance change.
func lamportDelta(meta *rpc.TransactionMeta, index int) *big.Int {
	if index >= len(meta.PreBalances) || index >= len(meta.PostBalances) {
		return big.NewInt(0)
	}

	pre := new(big.Int).SetUint64(meta.PreBalances[index])
	post := new(big.Int).SetUint64(meta.PostBalances[index])
	return post.Sub(post, pre)
}

// tokenDelta computes the change of the recipient-owned token account for
// the given mint, in base units.
func tokenDelta(meta *rpc.TransactionMeta, owner solana.PublicKey, mint solana.PublicKey) *big.Int {
	post := findTokenBalance(meta.PostTokenBalances, owner, mint)
	if post == nil {
		return big.NewInt(0)
	}

	postAmount, ok := new(big.Int).SetString(post.UiTokenAmount.Amount, 10)
	if !ok {
		return big.NewInt(0)
	}

	preAmount := big.NewInt(0)
	if pre := findTokenBalance(meta.PreTokenBalances, owner, mint); pre != nil {
		if n, ok := new(big.Int).SetString(pre.UiTokenAmount.Amount, 10); ok {
			preAmount = n
		}
	}

	return postAmount.Sub(postAmount, preAmount)
}

func findTokenBalance(balances []rpc.TokenBalance, owner solana.PublicKey, mint solana.PublicKey) *rpc.TokenBalance {
	for i := range balances {
		b := &balances[i]
		if b.Owner == nil || b.UiTokenAmount == nil {
			continue
		}
		if b.Owner.Equals(owner) && b.Mint.Equals(mint) {
			return b
		}
	}
	return nil
}

// SendAndConfirmTransaction broadcasts the signed transaction and polls
// until it is finalized or the context is done.
func (c *SolanaClient) SendAndConfirmTransaction(ctx context.Context, tx *solana.Transaction) (solana.Signature, error) {
	sig, err := c.client.SendTransaction(ctx, tx)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("broadcast: %w", err)
	}

	ticker := time.NewTicker(confirmPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return sig, fmt.Errorf("%w: %v", ErrNotConfirmed, ctx.Err())
		case <-ticker.C:
		}

		statuses, err := c.client.GetSignatureStatuses(ctx, false, sig)
		if err != nil || len(statuses.Value) == 0 || statuses.Value[0] == nil {
			continue
		}

		status := statuses.Value[0]
		if status.Err != nil {
			return sig, fmt.Errorf("%w: %v", ErrTransactionFailed, status.Err)
		}
		if status.ConfirmationStatus == rpc.ConfirmationStatusFinalized {
			return sig, nil
		}
	}
}

// TokenDecimals fetches the mint account and decodes its decimal
// precision.
func (c *SolanaClient) TokenDecimals(ctx context.Context, mint solana.PublicKey) (uint8, error) {
	info, err := c.client.GetAccountInfo(ctx, mint)
	if err != nil {
		return 0, fmt.Errorf("get mint %s: %w", mint, err)
	}
	if info.Value == nil {
		return 0, fmt.Errorf("mint %s not found", mint)
	}

	var m token.Mint
	if err := bin.NewBinDecoder(info.Value.Data.GetBinary()).Decode(&m); err != nil {
		return 0, fmt.Errorf("decode mint %s: %w", mint, err)
	}

	return m.Decimals, nil
}

func (c *SolanaClient) GetNetwork() kittypes.Network { return c.network }

func (c *SolanaClient) Close() {}
