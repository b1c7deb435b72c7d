// Package currency implements the currency catalog and free-text resolver
// used to detect currency mentions in spoken expense commands.
package currency

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jmhartley/utter/internal/common"
	"github.com/jmhartley/utter/internal/model"
)

// commonCodes is the small fixed subset of currencies checked first during
// resolution, biasing disambiguation toward frequent cases.
var commonCodes = []string{"USD", "EUR", "GBP", "AED", "SAR", "INR"}

// Catalog is an immutable table of currency definitions keyed by code. It is
// built once at startup and never mutated, so concurrent readers need no
// locking. Iteration order is the load order, which keyword tie-breaking
// depends on.
type Catalog struct {
	byCode   map[string]*model.CurrencyDefinition
	ordered  []*model.CurrencyDefinition
	common   []*model.CurrencyDefinition
	uncommon []*model.CurrencyDefinition
}

// NewCatalog builds a catalog from the given definitions. It returns
// common.ErrCatalogLoad when the definitions are empty or structurally
// invalid (missing code, duplicate code, no keywords).
func NewCatalog(defs []model.CurrencyDefinition) (*Catalog, error) {
	if len(defs) == 0 {
		return nil, fmt.Errorf("%w: no currency definitions", common.ErrCatalogLoad)
	}

	c := &Catalog{
		byCode:  make(map[string]*model.CurrencyDefinition, len(defs)),
		ordered: make([]*model.CurrencyDefinition, 0, len(defs)),
	}

	for i := range defs {
		def := defs[i]
		if len(def.Code) != 3 {
			return nil, fmt.Errorf("%w: invalid code %q", common.ErrCatalogLoad, def.Code)
		}
		if _, dup := c.byCode[def.Code]; dup {
			return nil, fmt.Errorf("%w: duplicate code %q", common.ErrCatalogLoad, def.Code)
		}
		if len(def.VoiceKeywords) == 0 {
			return nil, fmt.Errorf("%w: currency %q has no voice keywords", common.ErrCatalogLoad, def.Code)
		}
		if def.DecimalSeparator == "" {
			def.DecimalSeparator = "."
		}
		if def.GroupingSeparator == "" {
			def.GroupingSeparator = ","
		}

		stored := def
		c.byCode[def.Code] = &stored
		c.ordered = append(c.ordered, &stored)
	}

	// Derive the common subset in its fixed priority order; everything else
	// keeps catalog order for the second resolution pass.
	inCommon := make(map[string]bool, len(commonCodes))
	for _, code := range commonCodes {
		if def, ok := c.byCode[code]; ok {
			c.common = append(c.common, def)
			inCommon[code] = true
		}
	}
	for _, def := range c.ordered {
		if !inCommon[def.Code] {
			c.uncommon = append(c.uncommon, def)
		}
	}

	return c, nil
}

// Default returns a catalog built from the embedded default definitions.
func Default() *Catalog {
	c, err := NewCatalog(defaultDefinitions())
	if err != nil {
		// The embedded table is validated by tests; failing to build it is a
		// programming error, not a runtime condition.
		panic(fmt.Sprintf("built-in currency catalog invalid: %v", err))
	}
	return c
}

// Fallback returns the minimal single-currency catalog callers substitute
// when an external catalog source cannot be loaded.
func Fallback() *Catalog {
	c, err := NewCatalog([]model.CurrencyDefinition{{
		Code:          "USD",
		Symbol:        "$",
		DisplayName:   "US Dollar",
		DecimalPlaces: 2,
		VoiceKeywords: []string{"dollar", "dollars", "usd", "$", "buck", "bucks"},
	}})
	if err != nil {
		panic(fmt.Sprintf("fallback currency catalog invalid: %v", err))
	}
	return c
}

// currencyFile is the on-disk schema for catalog overrides.
type currencyFile struct {
	Currencies []struct {
		Code              string   `json:"code"`
		Symbol            string   `json:"symbol"`
		DisplayName       string   `json:"display_name"`
		DecimalSeparator  string   `json:"decimal_separator"`
		GroupingSeparator string   `json:"grouping_separator"`
		VoiceKeywords     []string `json:"voice_keywords"`
		DecimalPlaces     *int     `json:"decimal_places"`
		IsRightToLeft     bool     `json:"is_right_to_left"`
	} `json:"currencies"`
}

// LoadFile builds a catalog from a JSON definitions file. Unreadable or
// malformed files surface common.ErrCatalogLoad; callers should substitute
// Fallback() rather than operate without a catalog.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", common.ErrCatalogLoad, path, err)
	}

	var file currencyFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", common.ErrCatalogLoad, path, err)
	}

	defs := make([]model.CurrencyDefinition, 0, len(file.Currencies))
	for _, c := range file.Currencies {
		// An absent decimal_places means the usual two, but an explicit 0 is
		// legitimate (yen, won).
		decimalPlaces := 2
		if c.DecimalPlaces != nil {
			decimalPlaces = *c.DecimalPlaces
		}
		defs = append(defs, model.CurrencyDefinition{
			Code:              c.Code,
			Symbol:            c.Symbol,
			DisplayName:       c.DisplayName,
			DecimalSeparator:  c.DecimalSeparator,
			GroupingSeparator: c.GroupingSeparator,
			VoiceKeywords:     c.VoiceKeywords,
			DecimalPlaces:     decimalPlaces,
			IsRightToLeft:     c.IsRightToLeft,
		})
	}

	return NewCatalog(defs)
}

// Lookup returns the definition for code, or nil if the code is unknown.
func (c *Catalog) Lookup(code string) *model.CurrencyDefinition {
	return c.byCode[code]
}

// All returns every definition in catalog order.
func (c *Catalog) All() []*model.CurrencyDefinition {
	return c.ordered
}

// Common returns the prioritized common subset.
func (c *Catalog) Common() []*model.CurrencyDefinition {
	return c.common
}
