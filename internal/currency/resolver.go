package currency

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jmhartley/utter/internal/common"
	"github.com/jmhartley/utter/internal/model"
)

// Resolver matches free text against the catalog's voice keywords. It is
// stateless beyond the read-only catalog and safe for concurrent use.
type Resolver struct {
	catalog *Catalog
}

// NewResolver creates a resolver over the given catalog.
func NewResolver(catalog *Catalog) *Resolver {
	return &Resolver{catalog: catalog}
}

// Resolve returns the currency mentioned in text, or nil when none is found.
// The common subset is scanned first; within a pass the longest matching
// keyword wins, with ties broken by catalog order (first definition wins).
func (r *Resolver) Resolve(text string) *model.CurrencyDefinition {
	lowered := strings.ToLower(text)

	if def := resolvePass(lowered, r.catalog.common); def != nil {
		return def
	}
	return resolvePass(lowered, r.catalog.uncommon)
}

// ContainsCurrency reports whether any catalog currency is mentioned in text.
func (r *Resolver) ContainsCurrency(text string) bool {
	return r.Resolve(text) != nil
}

// NormalizeSymbols replaces every occurrence of every catalog symbol with its
// currency code. Symbols made up entirely of letters or digits (e.g. "kr",
// "R") are skipped: codes themselves contain letters, so rewriting those
// would not be idempotent. Longer symbols are replaced first so composites
// like "R$" are never split by their "$" suffix.
func (r *Resolver) NormalizeSymbols(text string) string {
	type sym struct {
		symbol string
		code   string
	}

	syms := make([]sym, 0, len(r.catalog.ordered))
	for _, def := range r.catalog.ordered {
		if def.Symbol == "" || isWordOnly(def.Symbol) {
			continue
		}
		syms = append(syms, sym{symbol: def.Symbol, code: def.Code})
	}
	sort.SliceStable(syms, func(i, j int) bool {
		return len(syms[i].symbol) > len(syms[j].symbol)
	})

	for _, s := range syms {
		text = strings.ReplaceAll(text, s.symbol, s.code)
	}
	return text
}

func resolvePass(lowered string, defs []*model.CurrencyDefinition) *model.CurrencyDefinition {
	var best *model.CurrencyDefinition
	bestLen := 0

	for _, def := range defs {
		for _, keyword := range def.VoiceKeywords {
			kw := strings.ToLower(keyword)
			if !keywordMatches(lowered, kw) {
				continue
			}
			// Strictly longer only: on ties the earlier definition keeps the
			// match, which test fixtures depend on.
			if n := utf8.RuneCountInString(kw); n > bestLen {
				best = def
				bestLen = n
			}
		}
	}

	return best
}

// keywordMatches applies the two matching modes: short symbol tokens (e.g.
// "$", "€", "د.إ") match by plain containment, word-like keywords by
// whole-word boundary comparison.
func keywordMatches(lowered, keyword string) bool {
	if isSymbolKeyword(keyword) {
		return strings.Contains(lowered, keyword)
	}
	return common.ContainsWord(lowered, keyword)
}

// isSymbolKeyword reports whether a keyword is a symbol token: it contains a
// non-alphanumeric rune and at most two alphanumeric ones. Counting only the
// alphanumeric runes keeps multi-rune symbols like "د.إ" in the substring
// path alongside "$" and "€".
func isSymbolKeyword(keyword string) bool {
	alnum := 0
	hasSymbol := false
	for _, r := range keyword {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			alnum++
		} else if !unicode.IsSpace(r) {
			hasSymbol = true
		}
	}
	return hasSymbol && alnum <= 2
}

func isWordOnly(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
