// Package parse implements the natural-language expense command interpreter:
// amount extraction, merchant extraction, and the orchestrator that combines
// them with currency resolution and category classification.
package parse

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jmhartley/utter/internal/currency"
	"github.com/jmhartley/utter/internal/model"
)

// numberLiteral matches Western numerals with optional thousands grouping and
// a single decimal point. Parsing is locale-neutral: "." is always the
// decimal separator and "," the grouping separator, whatever the currency.
const numberLiteral = `\d+(?:,\d{3})*(?:\.\d+)?`

// A currency-like token is a run of letters and currency-symbol runes;
// embedded dots cover symbols like "د.إ".
const currencyToken = `[\p{L}\p{Sc}][\p{L}\p{Sc}.]*`

var (
	numberThenTokenRe = regexp.MustCompile(`(` + numberLiteral + `)\s*(` + currencyToken + `)`)
	tokenThenNumberRe = regexp.MustCompile(`(` + currencyToken + `)\s*(` + numberLiteral + `)`)
	numberOnlyRe      = regexp.MustCompile(numberLiteral)
)

// DefaultAmountCeiling bounds how large a single extracted expense may be.
var DefaultAmountCeiling = decimal.NewFromInt(1_000_000)

// InvalidAmountError reports a numeric literal that was found but failed
// validation. It is a distinct outcome from "no amount present" (nil result,
// nil error).
type InvalidAmountError struct {
	Reason  string
	Literal string
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("invalid amount %q: %s", e.Literal, e.Reason)
}

// AmountResult is a successfully extracted amount together with the currency
// it was resolved against.
type AmountResult struct {
	Currency         *model.CurrencyDefinition
	Amount           model.ExtractedAmount
	CurrencyExplicit bool // currency came from the text, not the default
}

// AmountExtractor finds a numeric amount and, where possible, the currency
// token adjacent to it.
type AmountExtractor struct {
	resolver *currency.Resolver
	ceiling  decimal.Decimal
}

// NewAmountExtractor creates an extractor using the given resolver for
// adjacent-token and whole-text currency resolution.
func NewAmountExtractor(resolver *currency.Resolver) *AmountExtractor {
	return &AmountExtractor{resolver: resolver, ceiling: DefaultAmountCeiling}
}

// NewAmountExtractorWithCeiling overrides the maximum accepted amount.
func NewAmountExtractorWithCeiling(resolver *currency.Resolver, ceiling decimal.Decimal) *AmountExtractor {
	return &AmountExtractor{resolver: resolver, ceiling: ceiling}
}

// Extract locates the first amount in text. Attempts, in order: a number
// followed by a currency-like token, a token followed by a number, then a
// bare number with the currency resolved over the whole text. A directional
// attempt only commits when its adjacent token resolves to a catalog
// currency; otherwise the next attempt runs, and the default currency
// applies only after the whole-text scan finds nothing. A nil, nil return
// means no numeric literal is present. A literal that parses to a
// non-positive value or exceeds the ceiling returns *InvalidAmountError.
func (e *AmountExtractor) Extract(text string, defaultCurrency *model.CurrencyDefinition) (*AmountResult, error) {
	if m := numberThenTokenRe.FindStringSubmatch(text); m != nil {
		if def := e.resolver.Resolve(m[2]); def != nil {
			return e.commit(m[1], def, true)
		}
	}

	if m := tokenThenNumberRe.FindStringSubmatch(text); m != nil {
		if def := e.resolver.Resolve(m[1]); def != nil {
			return e.commit(m[2], def, true)
		}
	}

	literal := numberOnlyRe.FindString(text)
	if literal == "" {
		return nil, nil
	}
	// No resolvable adjacent token; scan the full text for a currency mention.
	if def := e.resolver.Resolve(text); def != nil {
		return e.commit(literal, def, true)
	}
	return e.commit(literal, defaultCurrency, false)
}

// commit validates the matched literal and assembles the result.
func (e *AmountExtractor) commit(literal string, def *model.CurrencyDefinition, explicit bool) (*AmountResult, error) {
	value, err := decimal.NewFromString(strings.ReplaceAll(literal, ",", ""))
	if err != nil {
		return nil, &InvalidAmountError{Reason: "not a parseable number", Literal: literal}
	}
	if !value.IsPositive() {
		return nil, &InvalidAmountError{Reason: "amount must be greater than zero", Literal: literal}
	}
	if value.GreaterThan(e.ceiling) {
		return nil, &InvalidAmountError{Reason: "amount exceeds the configured ceiling", Literal: literal}
	}

	return &AmountResult{
		Amount:           model.ExtractedAmount{Value: value, SourceSpan: literal},
		Currency:         def,
		CurrencyExplicit: explicit,
	}, nil
}
