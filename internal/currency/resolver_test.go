package currency

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmhartley/utter/internal/model"
)

func TestResolver_Resolve(t *testing.T) {
	resolver := NewResolver(Default())

	tests := []struct {
		name     string
		text     string
		wantCode string
		wantNil  bool
	}{
		{
			name:     "keyword after amount",
			text:     "I spent 50 dirhams on groceries",
			wantCode: "AED",
		},
		{
			name:     "code before amount",
			text:     "25 AED for lunch",
			wantCode: "AED",
		},
		{
			name:     "dollar symbol",
			text:     "paid $12 for parking",
			wantCode: "USD",
		},
		{
			name:     "euro symbol",
			text:     "that coffee was 4€",
			wantCode: "EUR",
		},
		{
			name:     "arabic dirham symbol",
			text:     "دفعت 50 د.إ",
			wantCode: "AED",
		},
		{
			name:     "longest keyword wins over shorter",
			text:     "transferred 100 saudi riyal",
			wantCode: "SAR",
		},
		{
			name:     "common currency beats uncommon on shared families",
			text:     "sent 20 rupees home",
			wantCode: "INR",
		},
		{
			name:     "uncommon currency found on second pass",
			text:     "paid 300 yen for the train",
			wantCode: "JPY",
		},
		{
			name:    "keyword embedded in larger word does not match",
			text:    "watching eurovision",
			wantNil: true,
		},
		{
			name:    "no currency mention",
			text:    "bought three apples",
			wantNil: true,
		},
		{
			name:    "empty text",
			text:    "",
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := resolver.Resolve(tt.text)
			if tt.wantNil {
				assert.Nil(t, def)
				return
			}
			require.NotNil(t, def)
			assert.Equal(t, tt.wantCode, def.Code)
		})
	}
}

// Every keyword of every catalog currency must resolve back to that currency
// when spoken in a typical sentence.
func TestResolver_AllKeywordsRoundTrip(t *testing.T) {
	catalog := Default()
	resolver := NewResolver(catalog)

	for _, def := range catalog.All() {
		for _, keyword := range def.VoiceKeywords {
			got := resolver.Resolve("I spent 10 " + keyword)
			require.NotNil(t, got, "keyword %q of %s did not resolve", keyword, def.Code)
			assert.Equal(t, def.Code, got.Code, "keyword %q resolved to %s, want %s", keyword, got.Code, def.Code)
		}
	}
}

func TestResolver_CaseInsensitive(t *testing.T) {
	resolver := NewResolver(Default())

	texts := []string{
		"I spent 50 dirhams on groceries",
		"paid 10 Euros at the cafe",
		"SAUDI RIYAL transfer",
		"nothing to see here",
	}

	for _, text := range texts {
		lower := resolver.Resolve(text)
		upper := resolver.Resolve(strings.ToUpper(text))
		if lower == nil {
			assert.Nil(t, upper, "case mismatch for %q", text)
			continue
		}
		require.NotNil(t, upper, "case mismatch for %q", text)
		assert.Equal(t, lower.Code, upper.Code, "case mismatch for %q", text)
	}
}

func TestResolver_ContainsCurrency(t *testing.T) {
	resolver := NewResolver(Default())

	assert.True(t, resolver.ContainsCurrency("spent 5 bucks"))
	assert.False(t, resolver.ContainsCurrency("spent 5 somethings"))
}

func TestResolver_TieBreakByCatalogOrder(t *testing.T) {
	catalog, err := NewCatalog([]model.CurrencyDefinition{
		{Code: "AAA", VoiceKeywords: []string{"coin"}},
		{Code: "BBB", VoiceKeywords: []string{"cent"}},
	})
	require.NoError(t, err)
	resolver := NewResolver(catalog)

	// Both keywords are four runes; the earlier definition wins.
	def := resolver.Resolve("a coin and a cent")
	require.NotNil(t, def)
	assert.Equal(t, "AAA", def.Code)
}

func TestResolver_NormalizeSymbols(t *testing.T) {
	resolver := NewResolver(Default())

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "dollar symbol",
			in:   "paid $50 yesterday",
			want: "paid USD50 yesterday",
		},
		{
			name: "multiple symbols",
			in:   "$10 then €20",
			want: "USD10 then EUR20",
		},
		{
			name: "arabic symbol",
			in:   "50 د.إ exactly",
			want: "50 AED exactly",
		},
		{
			name: "no symbols",
			in:   "plain text",
			want: "plain text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolver.NormalizeSymbols(tt.in)
			assert.Equal(t, tt.want, got)

			// Normalization is idempotent.
			assert.Equal(t, got, resolver.NormalizeSymbols(got))
		})
	}
}

func TestResolver_NormalizeSymbolsIdempotent(t *testing.T) {
	resolver := NewResolver(Default())

	texts := []string{
		"paid $50 and €20 and 50 د.إ",
		"₹100 ₽200 ₩300 ¥400 ₺500",
		"R$ 12.50 at the kiosk",
		"no symbols at all",
		"",
	}

	for _, text := range texts {
		once := resolver.NormalizeSymbols(text)
		twice := resolver.NormalizeSymbols(once)
		assert.Equal(t, once, twice, "normalization not idempotent for %q", text)
	}
}
