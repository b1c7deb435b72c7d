// Package model defines the core domain models used throughout the application.
package model

// CurrencyDefinition describes a single currency and the voice keywords used
// to detect it in free text. Definitions are immutable once the catalog is
// built; consumers hold references, never copies.
type CurrencyDefinition struct {
	Code              string   // unique 3-letter ISO-style identifier
	Symbol            string
	DisplayName       string
	DecimalSeparator  string
	GroupingSeparator string
	VoiceKeywords     []string // ordered, case-insensitive, may include symbols
	DecimalPlaces     int
	IsRightToLeft     bool
}
