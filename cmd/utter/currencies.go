package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jmhartley/utter/internal/cli"
	"github.com/jmhartley/utter/internal/currency"
)

func currenciesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "currencies",
		Short: "Inspect the currency catalog",
	}

	cmd.AddCommand(listCurrenciesCmd())
	cmd.AddCommand(resolveCurrencyCmd())

	return cmd
}

func listCurrenciesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all catalog currencies",
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog := loadCatalog()
			common := map[string]bool{}
			for _, def := range catalog.Common() {
				common[def.Code] = true
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				cli.TitleStyle.Render("Code"),
				cli.TitleStyle.Render("Symbol"),
				cli.TitleStyle.Render("Name"),
				cli.TitleStyle.Render("Keywords"))

			for _, def := range catalog.All() {
				name := def.DisplayName
				if common[def.Code] {
					name += " " + cli.SubtleStyle.Render("(common)")
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					def.Code, def.Symbol, name, strings.Join(def.VoiceKeywords, ", "))
			}

			return nil
		},
	}
}

func resolveCurrencyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <text>",
		Short: "Resolve which currency a piece of text mentions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := loadCatalog()
			resolver := currency.NewResolver(catalog)

			def := resolver.Resolve(args[0])
			if def == nil {
				fmt.Fprintln(cmd.OutOrStdout(), cli.FormatWarning("No currency detected."))
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(
				fmt.Sprintf("%s — %s (%s)", def.Code, def.DisplayName, def.Symbol)))
			return nil
		},
	}
}
