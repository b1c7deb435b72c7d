package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jmhartley/utter/internal/cli"
)

func historyCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List saved expenses",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			expenses, err := store.ListExpenses(ctx, limit)
			if err != nil {
				return err
			}

			if len(expenses) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), cli.SubtleStyle.Render("No expenses saved yet. Use 'utter interpret --save' to add one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				cli.TitleStyle.Render("Date"),
				cli.TitleStyle.Render("Amount"),
				cli.TitleStyle.Render("Category"),
				cli.TitleStyle.Render("Merchant"),
				cli.TitleStyle.Render("Transcript"))

			for _, expense := range expenses {
				merchant := expense.Merchant
				if merchant == "" {
					merchant = cli.SubtleStyle.Render("—")
				}
				fmt.Fprintf(w, "%s\t%s %s\t%s\t%s\t%s\n",
					expense.CreatedAt.Local().Format("2006-01-02"),
					expense.Amount.String(),
					expense.CurrencyCode,
					expense.Category,
					merchant,
					expense.RawTranscript)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of expenses to list (0 for all)")

	return cmd
}
