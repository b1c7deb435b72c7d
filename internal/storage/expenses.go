package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jmhartley/utter/internal/model"
)

// SaveExpense inserts a confirmed expense and returns its row ID.
func (s *SQLiteStorage) SaveExpense(ctx context.Context, expense model.Expense) (int64, error) {
	if expense.CurrencyCode == "" {
		return 0, fmt.Errorf("expense currency code must not be empty")
	}
	if !expense.Amount.IsPositive() {
		return 0, fmt.Errorf("expense amount must be positive, got %s", expense.Amount)
	}

	createdAt := expense.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO expenses (created_at, amount, currency_code, category, merchant, note, confidence, raw_transcript)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		createdAt,
		expense.Amount.String(),
		expense.CurrencyCode,
		string(expense.Category),
		expense.Merchant,
		expense.Note,
		expense.Confidence,
		expense.RawTranscript,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to save expense: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read inserted expense id: %w", err)
	}
	return id, nil
}

// ListExpenses returns the most recent expenses, newest first. A limit of 0
// or less lists everything.
func (s *SQLiteStorage) ListExpenses(ctx context.Context, limit int) ([]model.Expense, error) {
	query := `
		SELECT id, created_at, amount, currency_code, category, merchant, note, confidence, raw_transcript
		FROM expenses
		ORDER BY created_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var expenses []model.Expense
	for rows.Next() {
		var (
			expense  model.Expense
			amount   string
			category string
		)
		if err := rows.Scan(
			&expense.ID,
			&expense.CreatedAt,
			&amount,
			&expense.CurrencyCode,
			&category,
			&expense.Merchant,
			&expense.Note,
			&expense.Confidence,
			&expense.RawTranscript,
		); err != nil {
			return nil, fmt.Errorf("failed to scan expense row: %w", err)
		}

		value, err := decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("corrupt amount %q for expense %d: %w", amount, expense.ID, err)
		}
		expense.Amount = value
		expense.Category = model.Category(category)
		expenses = append(expenses, expense)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating expense rows: %w", err)
	}
	return expenses, nil
}

// CountExpenses returns the number of stored expenses.
func (s *SQLiteStorage) CountExpenses(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM expenses`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count expenses: %w", err)
	}
	return count, nil
}
