package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmhartley/utter/internal/cli"
	"github.com/jmhartley/utter/internal/model"
	"github.com/jmhartley/utter/internal/service"
)

func interpretCmd() *cobra.Command {
	var (
		save     bool
		fromFile string
	)

	cmd := &cobra.Command{
		Use:   "interpret [sentence]",
		Short: "Interpret a spoken or typed expense sentence",
		Long: `Interpret a free-form expense sentence into a structured proposal.

The sentence can be passed as an argument, read from a transcript file with
--from, or piped on stdin with --from -.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			transcript, err := readTranscript(cmd, args, fromFile)
			if err != nil {
				return err
			}

			interpreter := newInterpreter(loadCatalog())
			expense := interpreter.Interpret(transcript, defaultCurrencyCode())

			if !save {
				fmt.Fprintln(cmd.OutOrStdout(), cli.RenderProposal(expense))
				return nil
			}

			prompter := cli.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
			confirmed, err := prompter.ConfirmProposal(ctx, expense)
			if err != nil {
				return err
			}
			if !confirmed {
				fmt.Fprintln(cmd.OutOrStdout(), cli.FormatWarning("Discarded."))
				return nil
			}

			if expense.Amount == nil {
				return fmt.Errorf("cannot save an expense without a valid amount")
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			id, err := store.SaveExpense(ctx, model.Expense{
				CreatedAt:     time.Now().UTC(),
				Amount:        expense.Amount.Value,
				CurrencyCode:  expense.CurrencyCode,
				Category:      expense.Category,
				Merchant:      expense.Merchant,
				Note:          expense.Note,
				Confidence:    expense.Confidence,
				RawTranscript: expense.RawTranscript,
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Saved expense #%d", id)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "confirm interactively and save to the expense database")
	cmd.Flags().StringVar(&fromFile, "from", "", "read the transcript from a file (- for stdin)")

	return cmd
}

// readTranscript resolves the transcript from the argument or the --from
// source.
func readTranscript(cmd *cobra.Command, args []string, fromFile string) (string, error) {
	if len(args) == 1 && fromFile != "" {
		return "", fmt.Errorf("pass a sentence or --from, not both")
	}
	if len(args) == 1 {
		return args[0], nil
	}
	if fromFile == "" {
		return "", fmt.Errorf("no sentence given; pass one as an argument or use --from")
	}

	transcriber := &service.FileTranscriber{Stdin: cmd.InOrStdin()}
	return transcriber.Transcribe(cmd.Context(), fromFile)
}
