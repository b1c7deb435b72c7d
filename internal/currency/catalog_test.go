package currency

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmhartley/utter/internal/common"
	"github.com/jmhartley/utter/internal/model"
)

func TestNewCatalog(t *testing.T) {
	tests := []struct {
		name    string
		defs    []model.CurrencyDefinition
		wantErr bool
	}{
		{
			name:    "empty definitions",
			defs:    nil,
			wantErr: true,
		},
		{
			name: "invalid code length",
			defs: []model.CurrencyDefinition{
				{Code: "DOLLARS", VoiceKeywords: []string{"dollar"}},
			},
			wantErr: true,
		},
		{
			name: "duplicate code",
			defs: []model.CurrencyDefinition{
				{Code: "USD", VoiceKeywords: []string{"dollar"}},
				{Code: "USD", VoiceKeywords: []string{"buck"}},
			},
			wantErr: true,
		},
		{
			name: "no keywords",
			defs: []model.CurrencyDefinition{
				{Code: "USD"},
			},
			wantErr: true,
		},
		{
			name: "valid single currency",
			defs: []model.CurrencyDefinition{
				{Code: "USD", VoiceKeywords: []string{"dollar"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog, err := NewCatalog(tt.defs)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, common.ErrCatalogLoad)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, catalog)
		})
	}
}

func TestNewCatalogDefaults(t *testing.T) {
	catalog, err := NewCatalog([]model.CurrencyDefinition{
		{Code: "USD", VoiceKeywords: []string{"dollar"}},
	})
	require.NoError(t, err)

	def := catalog.Lookup("USD")
	require.NotNil(t, def)
	assert.Equal(t, ".", def.DecimalSeparator)
	assert.Equal(t, ",", def.GroupingSeparator)
}

func TestDefaultCatalog(t *testing.T) {
	catalog := Default()

	assert.NotEmpty(t, catalog.All())

	// The common subset is the fixed prioritized list.
	var codes []string
	for _, def := range catalog.Common() {
		codes = append(codes, def.Code)
	}
	assert.Equal(t, []string{"USD", "EUR", "GBP", "AED", "SAR", "INR"}, codes)

	// Every definition is reachable by code.
	for _, def := range catalog.All() {
		assert.Same(t, def, catalog.Lookup(def.Code))
	}

	assert.Nil(t, catalog.Lookup("XXX"))
}

func TestFallbackCatalog(t *testing.T) {
	catalog := Fallback()

	require.Len(t, catalog.All(), 1)
	require.NotNil(t, catalog.Lookup("USD"))

	resolver := NewResolver(catalog)
	def := resolver.Resolve("spent 5 bucks")
	require.NotNil(t, def)
	assert.Equal(t, "USD", def.Code)
}

func TestLoadFile(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "currencies.json")
		content := `{
			"currencies": [
				{"code": "USD", "symbol": "$", "display_name": "US Dollar", "voice_keywords": ["dollar", "$"]},
				{"code": "AED", "symbol": "د.إ", "display_name": "UAE Dirham", "is_right_to_left": true, "voice_keywords": ["dirham"]}
			]
		}`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		catalog, err := LoadFile(path)
		require.NoError(t, err)
		require.Len(t, catalog.All(), 2)

		aed := catalog.Lookup("AED")
		require.NotNil(t, aed)
		assert.True(t, aed.IsRightToLeft)
		// Omitted decimal_places defaults to 2.
		assert.Equal(t, 2, aed.DecimalPlaces)
	})

	t.Run("explicit zero decimal places kept", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "yen.json")
		content := `{
			"currencies": [
				{"code": "JPY", "symbol": "¥", "display_name": "Japanese Yen", "decimal_places": 0, "voice_keywords": ["yen"]}
			]
		}`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		catalog, err := LoadFile(path)
		require.NoError(t, err)

		jpy := catalog.Lookup("JPY")
		require.NotNil(t, jpy)
		assert.Equal(t, 0, jpy.DecimalPlaces)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "missing.json"))
		assert.ErrorIs(t, err, common.ErrCatalogLoad)
	})

	t.Run("malformed json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

		_, err := LoadFile(path)
		assert.ErrorIs(t, err, common.ErrCatalogLoad)
	})

	t.Run("empty catalog", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"currencies": []}`), 0o600))

		_, err := LoadFile(path)
		assert.ErrorIs(t, err, common.ErrCatalogLoad)
	})
}
