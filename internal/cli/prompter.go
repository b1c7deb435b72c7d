package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jmhartley/utter/internal/model"
)

// Prompter implements the interactive confirmation flow for interpreted
// expense proposals.
type Prompter struct {
	reader *bufio.Reader
	writer io.Writer
}

// NewPrompter creates a prompter over the given reader and writer, defaulting
// to stdin/stdout.
func NewPrompter(reader io.Reader, writer io.Writer) *Prompter {
	if reader == nil {
		reader = os.Stdin
	}
	if writer == nil {
		writer = os.Stdout
	}
	return &Prompter{
		reader: bufio.NewReader(reader),
		writer: writer,
	}
}

// RenderProposal formats an interpreted expense for terminal display.
func RenderProposal(expense model.ExtractedExpense) string {
	var b strings.Builder

	if expense.Amount != nil {
		b.WriteString(fmt.Sprintf("Amount:     %s %s\n", expense.Amount.Value.String(), expense.CurrencyCode))
	} else {
		b.WriteString(fmt.Sprintf("Amount:     %s (%s)\n", SubtleStyle.Render("—"), expense.CurrencyCode))
	}
	b.WriteString(fmt.Sprintf("Category:   %s\n", expense.Category))
	if expense.Merchant != "" {
		b.WriteString(fmt.Sprintf("Merchant:   %s\n", expense.Merchant))
	}
	if expense.Note != "" {
		b.WriteString(fmt.Sprintf("Note:       %s\n", expense.Note))
	}
	b.WriteString(fmt.Sprintf("Confidence: %s\n", formatConfidence(expense.Confidence)))

	for _, flag := range expense.Flags {
		switch flag {
		case model.FlagMissingAmount:
			b.WriteString(FormatWarning("no amount detected") + "\n")
		case model.FlagInvalidAmount:
			b.WriteString(FormatWarning("invalid amount: "+expense.InvalidReason) + "\n")
		}
	}

	return RenderBox(MicIcon+" Expense Proposal", strings.TrimRight(b.String(), "\n"))
}

func formatConfidence(confidence float64) string {
	text := fmt.Sprintf("%.0f%%", confidence*100)
	switch {
	case confidence >= 0.8:
		return SuccessStyle.Render(text)
	case confidence >= 0.5:
		return WarningStyle.Render(text)
	default:
		return ErrorStyle.Render(text)
	}
}

// ConfirmProposal shows a proposal and asks the user to accept or discard it.
func (p *Prompter) ConfirmProposal(ctx context.Context, expense model.ExtractedExpense) (bool, error) {
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	default:
	}

	if _, err := fmt.Fprintln(p.writer, RenderProposal(expense)); err != nil {
		return false, fmt.Errorf("failed to write proposal: %w", err)
	}

	for {
		if _, err := fmt.Fprint(p.writer, FormatPrompt("Save this expense? [y/n]")); err != nil {
			return false, fmt.Errorf("failed to write prompt: %w", err)
		}

		line, err := p.reader.ReadString('\n')
		if err != nil && line == "" {
			return false, fmt.Errorf("failed to read response: %w", err)
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			if _, err := fmt.Fprintln(p.writer, SubtleStyle.Render("Please answer y or n.")); err != nil {
				return false, fmt.Errorf("failed to write retry hint: %w", err)
			}
		}
	}
}
