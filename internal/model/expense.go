package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ValidationFlag marks a non-fatal problem detected during interpretation.
// Flags travel on the result so callers can render partial proposals instead
// of hard-failing.
type ValidationFlag string

// Validation flag constants.
const (
	// FlagMissingAmount means no numeric literal was found in the transcript.
	FlagMissingAmount ValidationFlag = "MISSING_AMOUNT"
	// FlagInvalidAmount means a numeric literal was found but failed
	// validation (non-positive or over the configured ceiling).
	FlagInvalidAmount ValidationFlag = "INVALID_AMOUNT"
)

// ExtractedAmount is a parsed monetary value and the text span it came from.
type ExtractedAmount struct {
	Value      decimal.Decimal
	SourceSpan string // matched literal, kept for debugging and tests
}

// ExtractedExpense is the interpreter's proposal for a single spoken or typed
// expense command. A fresh value is created per interpretation call and never
// mutated afterwards; ownership passes to the caller.
type ExtractedExpense struct {
	Amount        *ExtractedAmount
	CurrencyCode  string
	Category      Category
	Merchant      string
	Note          string
	RawTranscript string
	InvalidReason string // populated when FlagInvalidAmount is set
	Flags         []ValidationFlag
	Confidence    float64
}

// HasFlag reports whether the proposal carries the given validation flag.
func (e *ExtractedExpense) HasFlag(flag ValidationFlag) bool {
	for _, f := range e.Flags {
		if f == flag {
			return true
		}
	}
	return false
}

// Expense is a confirmed expense record as persisted to storage.
type Expense struct {
	CreatedAt     time.Time
	CurrencyCode  string
	Category      Category
	Merchant      string
	Note          string
	RawTranscript string
	Amount        decimal.Decimal
	Confidence    float64
	ID            int64
}
