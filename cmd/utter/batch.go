package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/jmhartley/utter/internal/cli"
	"github.com/jmhartley/utter/internal/model"
)

func batchCmd() *cobra.Command {
	var showAll bool

	cmd := &cobra.Command{
		Use:   "batch <file>",
		Short: "Interpret a file of transcripts, one per line",
		Long: `Run the interpreter over every non-empty line of a transcript file and
report how many lines produced complete proposals. Useful for replaying
capture logs and for tuning keyword tables.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open transcript file: %w", err)
			}
			defer func() { _ = file.Close() }()

			var transcripts []string
			scanner := bufio.NewScanner(file)
			for scanner.Scan() {
				line := strings.TrimSpace(scanner.Text())
				if line != "" {
					transcripts = append(transcripts, line)
				}
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read transcript file: %w", err)
			}
			if len(transcripts) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), cli.FormatWarning("No transcripts found."))
				return nil
			}

			interpreter := newInterpreter(loadCatalog())
			defaultCode := defaultCurrencyCode()

			bar := progressbar.NewOptions(len(transcripts),
				progressbar.OptionSetDescription("Interpreting"),
				progressbar.OptionSetWriter(cmd.ErrOrStderr()),
				progressbar.OptionClearOnFinish(),
			)

			var complete, missing, invalid int
			for _, transcript := range transcripts {
				expense := interpreter.Interpret(transcript, defaultCode)
				switch {
				case expense.HasFlag(model.FlagInvalidAmount):
					invalid++
				case expense.HasFlag(model.FlagMissingAmount):
					missing++
				default:
					complete++
				}
				if showAll {
					fmt.Fprintln(cmd.OutOrStdout(), cli.RenderProposal(expense))
				}
				_ = bar.Add(1)
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf(
				"%d transcripts: %d complete, %d missing amount, %d invalid amount",
				len(transcripts), complete, missing, invalid)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&showAll, "show-all", false, "print every proposal, not just the summary")

	return cmd
}
