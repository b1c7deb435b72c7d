package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmhartley/utter/internal/model"
)

func newTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()

	store, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "expenses.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func testExpense(amount string, createdAt time.Time) model.Expense {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		panic(err)
	}
	return model.Expense{
		CreatedAt:     createdAt,
		CurrencyCode:  "AED",
		Category:      model.CategoryGrocery,
		Merchant:      "Carrefour",
		Note:          "weekly shop",
		RawTranscript: "I spent " + amount + " dirhams on groceries at Carrefour",
		Amount:        value,
		Confidence:    1.0,
	}
}

func TestSQLiteStorage_SaveAndList(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	older := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	newer := older.Add(24 * time.Hour)

	firstID, err := store.SaveExpense(ctx, testExpense("50", older))
	require.NoError(t, err)
	secondID, err := store.SaveExpense(ctx, testExpense("99.99", newer))
	require.NoError(t, err)
	assert.Greater(t, secondID, firstID)

	expenses, err := store.ListExpenses(ctx, 0)
	require.NoError(t, err)
	require.Len(t, expenses, 2)

	// Newest first.
	assert.Equal(t, secondID, expenses[0].ID)
	assert.True(t, expenses[0].Amount.Equal(decimal.RequireFromString("99.99")),
		"got %s", expenses[0].Amount)
	assert.Equal(t, "AED", expenses[0].CurrencyCode)
	assert.Equal(t, model.CategoryGrocery, expenses[0].Category)
	assert.Equal(t, "Carrefour", expenses[0].Merchant)
	assert.Equal(t, "weekly shop", expenses[0].Note)
	assert.InDelta(t, 1.0, expenses[0].Confidence, 1e-9)

	assert.Equal(t, firstID, expenses[1].ID)
	assert.True(t, expenses[1].Amount.Equal(decimal.NewFromInt(50)),
		"got %s", expenses[1].Amount)
}

func TestSQLiteStorage_SaveValidation(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	expense := testExpense("10", time.Time{})
	expense.CurrencyCode = ""
	_, err := store.SaveExpense(ctx, expense)
	assert.Error(t, err)

	expense = testExpense("10", time.Time{})
	expense.Amount = decimal.Zero
	_, err = store.SaveExpense(ctx, expense)
	assert.Error(t, err)
}

func TestSQLiteStorage_SaveFillsCreatedAt(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	_, err := store.SaveExpense(ctx, testExpense("10", time.Time{}))
	require.NoError(t, err)

	expenses, err := store.ListExpenses(ctx, 0)
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.False(t, expenses[0].CreatedAt.IsZero())
}

func TestSQLiteStorage_ListLimit(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		_, err := store.SaveExpense(ctx, testExpense("10", base.Add(time.Duration(i)*time.Hour)))
		require.NoError(t, err)
	}

	expenses, err := store.ListExpenses(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, expenses, 2)

	expenses, err = store.ListExpenses(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, expenses, 3)
}

func TestSQLiteStorage_Count(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	count, err := store.CountExpenses(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	_, err = store.SaveExpense(ctx, testExpense("10", time.Time{}))
	require.NoError(t, err)

	count, err = store.CountExpenses(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSQLiteStorage_MigrateIsIdempotent(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	// A second run applies nothing and changes nothing.
	require.NoError(t, store.Migrate(ctx))

	version, err := store.schemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, ExpectedSchemaVersion, version)
}

func TestNewSQLiteStorage_EmptyPath(t *testing.T) {
	_, err := NewSQLiteStorage("")
	assert.Error(t, err)
}
