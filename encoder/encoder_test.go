package encoder

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	var testCases = []struct {
		description string
		text        string
		expect      map[rune]float64
	}{
		{
			description: "empty text",
			text:        "",
			expect:      map[rune]float64{},
		},
		{
			description: "letters only",
			text:        "abca",
			expect:      map[rune]float64{'a': 2, 'b': 1, 'c': 1},
		},
		{
			description: "mixed case and punctuation",
			text:        "I like apples!",
			expect:      map[rune]float64{'i': 2, 'l': 2, 'k': 1, 'e': 2, 'a': 1, 'p': 2, 's': 1},
		},
		{
			description: "digits and whitespace ignored",
			text:        "z 9 \t z",
			expect:      map[rune]float64{'z': 2},
		},
		{
			description: "non latin letters dropped",
			text:        "ñandú привет",
			expect:      map[rune]float64{'a': 1, 'n': 1, 'd': 1},
		},
	}

	for _, testCase := range testCases {
		actual := Encode(testCase.text)
		require.Len(t, actual, Dimension, testCase.description)
		for i, v := range actual {
			letter := rune('a' + i)
			assert.EqualValues(t, testCase.expect[letter], v, "%s: slot %c", testCase.description, letter)
		}
	}
}

func TestEncode_Deterministic(t *testing.T) {
	text := "The quick brown fox jumps over the lazy dog"
	assert.Equal(t, Encode(text), Encode(text))
	assert.Equal(t, make([]float64, Dimension), Encode(""))
}

func TestEncode_CaseInsensitive(t *testing.T) {
	for _, text := range []string{"apples", "Pears", "animal", "abcdefghijklmnopqrstuvwxyz"} {
		assert.Equal(t, Encode(text), Encode(strings.ToUpper(text)), text)
	}
}

func TestEmbed(t *testing.T) {
	vec, err := Embed(context.Background(), "dogs")
	require.NoError(t, err)
	assert.Equal(t, Encode("dogs"), vec)
}
