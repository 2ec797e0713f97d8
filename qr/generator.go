// Package qr renders payment URLs as QR codes for point-of-sale display.
package qr

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/mdp/qrterminal"

	"github.com/solana-foundation/commerce-kit-sub002/solanapay"
)

// Generator renders a payment URL as a QR code.
type Generator interface {
	Generate(ctx context.Context, url string) error
}

// TerminalGenerator writes a scannable ANSI QR code to a terminal.
type TerminalGenerator struct {
	writer io.Writer
}

func NewTerminalGenerator(w io.Writer) *TerminalGenerator {
	return &TerminalGenerator{writer: w}
}

// Generate renders the QR code. Only Solana Pay URLs are accepted: a QR
// code for any other content is almost certainly a caller bug.
func (g *TerminalGenerator) Generate(_ context.Context, url string) error {
	if !strings.HasPrefix(url, solanapay.Protocol) {
		return fmt.Errorf("qr: not a payment url: %q", url)
	}

	if len(url) > solanapay.MaxURLLength {
		return fmt.Errorf("qr: url exceeds %d characters", solanapay.MaxURLLength)
	}

	qrterminal.GenerateWithConfig(url, qrterminal.Config{
		Level:     qrterminal.M,
		Writer:    g.writer,
		BlackChar: qrterminal.BLACK,
		WhiteChar: qrterminal.WHITE,
		QuietZone: 1,
	})

	return nil
}
