package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsWord(t *testing.T) {
	tests := []struct {
		name string
		text string
		word string
		want bool
	}{
		{
			name: "word at start",
			text: "dollar amount",
			word: "dollar",
			want: true,
		},
		{
			name: "word at end",
			text: "ten dollars",
			word: "dollars",
			want: true,
		},
		{
			name: "word in middle",
			text: "spent 10 euro today",
			word: "euro",
			want: true,
		},
		{
			name: "embedded in larger word",
			text: "australian dollars",
			word: "dollar",
			want: false,
		},
		{
			name: "prefix of larger word",
			text: "eurovision contest",
			word: "euro",
			want: false,
		},
		{
			name: "bounded by punctuation",
			text: "lunch: 10 euro.",
			word: "euro",
			want: true,
		},
		{
			name: "bounded by digits is not a boundary",
			text: "10euro5",
			word: "euro",
			want: false,
		},
		{
			name: "multi word phrase",
			text: "paid 20 saudi riyal there",
			word: "saudi riyal",
			want: true,
		},
		{
			name: "empty word never matches",
			text: "anything",
			word: "",
			want: false,
		},
		{
			name: "missing word",
			text: "no currencies here",
			word: "euro",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ContainsWord(tt.text, tt.word))
		})
	}
}
