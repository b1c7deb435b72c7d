// Package service defines the interfaces between the interpreter core and
// its external collaborators: persistence, lifecycle signals, and the
// speech-to-text layer that supplies transcripts.
package service

import (
	"context"

	"github.com/jmhartley/utter/internal/model"
)

// Storage persists confirmed expenses.
type Storage interface {
	SaveExpense(ctx context.Context, expense model.Expense) (int64, error)
	ListExpenses(ctx context.Context, limit int) ([]model.Expense, error)
	CountExpenses(ctx context.Context) (int, error)
	Migrate(ctx context.Context) error
	Close() error
}

// Lifecycle exposes the host-application signals the auto-trigger coordinator
// gates on. Implementations must be safe for concurrent use.
type Lifecycle interface {
	// IsForeground reports whether the application is currently foregrounded.
	IsForeground() bool
	// PermissionsGranted reports whether capture permissions are granted.
	PermissionsGranted() bool
	// FirstLaunchComplete reports whether first-launch onboarding finished.
	FirstLaunchComplete() bool
	// RecordScheduledCapture notes that a capture trigger has been scheduled.
	RecordScheduledCapture()
}

// Transcriber produces a transcript string from a capture source.
// Speech-to-text itself is an external concern; the interpreter core only
// consumes the resulting UTF-8 string.
type Transcriber interface {
	Transcribe(ctx context.Context, source string) (string, error)
}
