package parse

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/jmhartley/utter/internal/classify"
	"github.com/jmhartley/utter/internal/common"
	"github.com/jmhartley/utter/internal/currency"
	"github.com/jmhartley/utter/internal/model"
)

// Confidence contributions. The score is a completeness heuristic, not a
// probability: each recognized facet of the command adds its weight, clamped
// to 1.0.
const (
	confidenceAmount   = 0.3
	confidenceCurrency = 0.2
	confidenceCategory = 0.3
	confidenceVerb     = 0.2
)

// actionVerbs are the spend verbs that signal an expense command.
var actionVerbs = []string{
	"spent", "spend", "paid", "pay", "bought", "buy", "purchased", "logged", "log",
}

// Interpreter turns a free-form transcript into a structured expense
// proposal. It is stateless per call beyond the read-only catalog and safe
// for concurrent use.
type Interpreter struct {
	catalog    *currency.Catalog
	resolver   *currency.Resolver
	amounts    *AmountExtractor
	classifier *classify.Classifier
}

// NewInterpreter wires the interpreter pipeline over the given catalog.
func NewInterpreter(catalog *currency.Catalog) *Interpreter {
	resolver := currency.NewResolver(catalog)
	return &Interpreter{
		catalog:    catalog,
		resolver:   resolver,
		amounts:    NewAmountExtractor(resolver),
		classifier: classify.NewClassifier(),
	}
}

// NewInterpreterWithExtractor allows a customized amount extractor, e.g. with
// a different amount ceiling.
func NewInterpreterWithExtractor(catalog *currency.Catalog, amounts *AmountExtractor) *Interpreter {
	return &Interpreter{
		catalog:    catalog,
		resolver:   currency.NewResolver(catalog),
		amounts:    amounts,
		classifier: classify.NewClassifier(),
	}
}

// Resolver exposes currency resolution for callers that only need that facet.
func (i *Interpreter) Resolver() *currency.Resolver {
	return i.resolver
}

// Classify exposes category classification for callers that only need that facet.
func (i *Interpreter) Classify(text string) model.Category {
	return i.classifier.Classify(text)
}

// Interpret runs the full pipeline over a transcript. It never fails for a
// well-formed string: missing or invalid amounts surface as validation flags
// on the result so callers can render partial proposals.
func (i *Interpreter) Interpret(transcript, defaultCurrencyCode string) model.ExtractedExpense {
	defaultCurrency := i.catalog.Lookup(defaultCurrencyCode)
	if defaultCurrency == nil {
		// The result's currency code must always be a valid catalog key.
		defaultCurrency = i.catalog.All()[0]
		slog.Warn("unknown default currency, substituting catalog first entry",
			"requested", defaultCurrencyCode,
			"substituted", defaultCurrency.Code)
	}

	expense := model.ExtractedExpense{
		RawTranscript: transcript,
	}

	result, err := i.amounts.Extract(transcript, defaultCurrency)
	var invalidErr *InvalidAmountError
	switch {
	case errors.As(err, &invalidErr):
		expense.Flags = append(expense.Flags, model.FlagInvalidAmount)
		expense.InvalidReason = invalidErr.Reason
	case result == nil:
		expense.Flags = append(expense.Flags, model.FlagMissingAmount)
	default:
		amount := result.Amount
		expense.Amount = &amount
	}

	// A failed amount never blocks category or merchant: the caller may still
	// want to show a partial confirmation.
	expense.Category = i.classifier.Classify(transcript)
	expense.Merchant = ExtractMerchant(transcript)

	mentioned := i.resolver.Resolve(transcript)
	switch {
	case result != nil:
		expense.CurrencyCode = result.Currency.Code
	case mentioned != nil:
		expense.CurrencyCode = mentioned.Code
	default:
		expense.CurrencyCode = defaultCurrency.Code
	}

	confidence := 0.0
	if expense.Amount != nil {
		confidence += confidenceAmount
	}
	if mentioned != nil {
		confidence += confidenceCurrency
	}
	if expense.Category != model.CategoryOther {
		confidence += confidenceCategory
	}
	if containsActionVerb(transcript) {
		confidence += confidenceVerb
	}
	if confidence > 1.0 {
		confidence = 1.0
	}
	expense.Confidence = confidence

	slog.Debug("interpreted transcript",
		"currency", expense.CurrencyCode,
		"category", expense.Category,
		"confidence", expense.Confidence,
		"flags", expense.Flags)

	return expense
}

func containsActionVerb(transcript string) bool {
	lowered := strings.ToLower(transcript)
	for _, verb := range actionVerbs {
		if common.ContainsWord(lowered, verb) {
			return true
		}
	}
	return false
}
