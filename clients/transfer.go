package clients

import (
	"context"
	"fmt"
	"math/big"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/programs/token"
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/solana-foundation/commerce-kit-sub002/solanapay"
)

var memoProgramID = solana.MustPublicKeyFromBase58("MemoSq4gqABAXKb96qnH8TysNcWxMyWCqXgDLGmfcHr")

// BuildTransfer constructs an unsigned transaction that fulfills the
// transfer request. Native SOL requests become a system transfer; SPL
// requests become a TransferChecked between the payer's and recipient's
// associated token accounts. Request references are appended to the
// transfer instruction as read-only account metas so the settled
// transaction can later be located with FindReference.
func (c *SolanaClient) BuildTransfer(ctx context.Context, req *solanapay.TransferRequest, payer solana.PublicKey) (*solana.Transaction, error) {
	if req == nil || req.Amount == nil {
		return nil, fmt.Errorf("transfer request amount is required")
	}
	if req.Amount.Sign() < 0 {
		return nil, fmt.Errorf("transfer request amount is negative")
	}

	var transfer solana.Instruction

	if req.SPLToken == nil {
		if !req.Amount.IsUint64() {
			return nil, fmt.Errorf("amount %s overflows lamports", req.Amount)
		}
		transfer = system.NewTransferInstruction(req.Amount.Uint64(), payer, req.Recipient).Build()
	} else {
		decimals, err := c.TokenDecimals(ctx, *req.SPLToken)
		if err != nil {
			return nil, err
		}

		// Wire amounts are expressed at native SOL precision; rescale to
		// the mint's own precision before building the instruction.
		units, err := rescaleAmount(req.Amount, solanapay.SOLDecimals, int(decimals))
		if err != nil {
			return nil, err
		}
		if !units.IsUint64() {
			return nil, fmt.Errorf("amount %s overflows token units", units)
		}

		source, _, err := solana.FindAssociatedTokenAddress(payer, *req.SPLToken)
		if err != nil {
			return nil, fmt.Errorf("derive source token account: %w", err)
		}

		destination, _, err := solana.FindAssociatedTokenAddress(req.Recipient, *req.SPLToken)
		if err != nil {
			return nil, fmt.Errorf("derive destination token account: %w", err)
		}

		transfer = token.NewTransferCheckedInstruction(
			units.Uint64(),
			decimals,
			source,
			*req.SPLToken,
			destination,
			payer,
			nil,
		).Build()
	}

	transfer, err := withReferences(transfer, req.References)
	if err != nil {
		return nil, err
	}

	instructions := []solana.Instruction{transfer}
	if req.Memo != "" {
		instructions = append(instructions, memoInstruction(req.Memo, payer))
	}

	blockhash, err := c.client.GetLatestBlockhash(ctx, rpc.CommitmentFinalized)
	if err != nil {
		return nil, fmt.Errorf("get latest blockhash: %w", err)
	}

	tx, err := solana.NewTransaction(
		instructions,
		blockhash.Value.Blockhash,
		solana.TransactionPayer(payer),
	)
	if err != nil {
		return nil, fmt.Errorf("build transaction: %w", err)
	}

	return tx, nil
}

// withReferences rebuilds an instruction with the reference addresses
// appended as non-signing read-only accounts.
func withReferences(inst solana.Instruction, references []solana.PublicKey) (solana.Instruction, error) {
	if len(references) == 0 {
		return inst, nil
	}

	data, err := inst.Data()
	if err != nil {
		return nil, fmt.Errorf("instruction data: %w", err)
	}

	metas := inst.Accounts()
	for _, ref := range references {
		metas = append(metas, solana.Meta(ref))
	}

	return solana.NewInstruction(inst.ProgramID(), metas, data), nil
}

func memoInstruction(memo string, signer solana.PublicKey) solana.Instruction {
	return solana.NewInstruction(
		memoProgramID,
		solana.AccountMetaSlice{solana.Meta(signer).SIGNER()},
		[]byte(memo),
	)
}

// rescaleAmount converts an atomic amount between decimal precisions. The
// conversion must be exact: scaling down an amount that is not a multiple
// of the precision gap fails rather than truncating.
func rescaleAmount(amount *big.Int, fromDecimals, toDecimals int) (*big.Int, error) {
	if fromDecimals == toDecimals {
		return new(big.Int).Set(amount), nil
	}

	if fromDecimals < toDecimals {
		factor := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(toDecimals-fromDecimals)), nil)
		return new(big.Int).Mul(amount, factor), nil
	}

	factor := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(fromDecimals-toDecimals)), nil)
	quo, rem := new(big.Int).QuoRem(amount, factor, new(big.Int))
	if rem.Sign() != 0 {
		return nil, fmt.Errorf("%w: %s not representable at %d decimals",
			solanapay.ErrAmountPrecision, amount, toDecimals)
	}

	return quo, nil
}
