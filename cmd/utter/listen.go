package main

import (
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmhartley/utter/internal/cli"
	"github.com/jmhartley/utter/internal/model"
	"github.com/jmhartley/utter/internal/service"
	"github.com/jmhartley/utter/internal/storage"
	"github.com/jmhartley/utter/internal/trigger"
)

// cliLifecycle adapts the coordinator's host-application gates to a terminal
// session: the process is always foregrounded, permitted, and past first
// launch.
type cliLifecycle struct {
	scheduled atomic.Int64
}

func (l *cliLifecycle) IsForeground() bool        { return true }
func (l *cliLifecycle) PermissionsGranted() bool  { return true }
func (l *cliLifecycle) FirstLaunchComplete() bool { return true }

func (l *cliLifecycle) RecordScheduledCapture() {
	n := l.scheduled.Add(1)
	slog.Debug("capture trigger scheduled", "count", n)
}

func listenCmd() *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "listen <transcript>...",
		Short: "Replay transcript files through the auto-trigger capture flow",
		Long: `Run one debounced auto-trigger cycle per transcript file, the way the
capture flow runs in a host application: schedule, wait out the trigger delay,
begin the capture, interpret the transcript, and report completion before the
next cycle may start.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			coordinator := trigger.New(&cliLifecycle{}, viper.GetDuration("trigger.delay"))
			transcriber := &service.FileTranscriber{Stdin: cmd.InOrStdin()}
			interpreter := newInterpreter(loadCatalog())
			defaultCode := defaultCurrencyCode()

			var store *storage.SQLiteStorage
			if save {
				var err error
				store, err = initStorage(ctx)
				if err != nil {
					return err
				}
				defer func() { _ = store.Close() }()
			}

			for _, source := range args {
				coordinator.TriggerIfNeeded(false)

				select {
				case <-ctx.Done():
					coordinator.Cancel()
					return ctx.Err()
				case <-coordinator.BeginCapture():
				}

				transcript, err := transcriber.Transcribe(ctx, source)
				if err != nil {
					coordinator.OnCaptureCompleted()
					return err
				}

				expense := interpreter.Interpret(transcript, defaultCode)

				if !save {
					fmt.Fprintln(cmd.OutOrStdout(), cli.RenderProposal(expense))
					coordinator.OnCaptureCompleted()
					continue
				}

				prompter := cli.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
				confirmed, err := prompter.ConfirmProposal(ctx, expense)
				if err != nil {
					coordinator.OnCaptureCompleted()
					return err
				}

				switch {
				case !confirmed:
					fmt.Fprintln(cmd.OutOrStdout(), cli.FormatWarning("Discarded."))
				case expense.Amount == nil:
					fmt.Fprintln(cmd.OutOrStdout(), cli.FormatWarning("Not saved: no valid amount."))
				default:
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
						coordinator.OnCaptureCompleted()
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Saved expense #%d", id)))
				}

				coordinator.OnCaptureCompleted()
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "confirm each proposal interactively and save it")

	return cmd
}
