package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/jmhartley/utter/internal/common"
	"github.com/jmhartley/utter/internal/currency"
	"github.com/jmhartley/utter/internal/parse"
	"github.com/jmhartley/utter/internal/storage"
)

// loadCatalog builds the currency catalog: an external JSON file when
// configured, the built-in table otherwise. A broken external file degrades
// to the built-in table; if even that fails the hardcoded single-currency
// fallback keeps the pipeline operational.
func loadCatalog() (catalog *currency.Catalog) {
	if path := viper.GetString("currency.catalog_file"); path != "" {
		loaded, err := currency.LoadFile(path)
		if err == nil {
			return loaded
		}
		slog.Warn("failed to load currency catalog file, using built-in catalog",
			"path", path,
			"error", err)
	}

	defer func() {
		if r := recover(); r != nil {
			slog.Error("built-in currency catalog invalid, using single-currency fallback", "panic", r)
			catalog = currency.Fallback()
		}
	}()
	return currency.Default()
}

// newInterpreter wires the interpreter from config.
func newInterpreter(catalog *currency.Catalog) *parse.Interpreter {
	ceiling, err := decimal.NewFromString(viper.GetString("amount.ceiling"))
	if err != nil || !ceiling.IsPositive() {
		ceiling = parse.DefaultAmountCeiling
	}
	extractor := parse.NewAmountExtractorWithCeiling(currency.NewResolver(catalog), ceiling)
	return parse.NewInterpreterWithExtractor(catalog, extractor)
}

// defaultCurrencyCode returns the configured default currency code.
func defaultCurrencyCode() string {
	return viper.GetString("currency.default")
}

// databasePath returns the configured expense database path.
func databasePath() (string, error) {
	if path := viper.GetString("database.path"); path != "" {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", "utter", "expenses.db"), nil
}

// initStorage opens the expense database and applies pending migrations.
func initStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	path, err := databasePath()
	if err != nil {
		return nil, err
	}

	store, err := storage.NewSQLiteStorage(path)
	if err != nil {
		return nil, common.NewUserError("could not open the expense database", err)
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, common.NewUserError("could not migrate the expense database", err)
	}

	return store, nil
}
