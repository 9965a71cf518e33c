package ocr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func draw(t *testing.T, word string) []string {
	t.Helper()
	rows := make([]string, GlyphHeight)
	for i, r := range word {
		g, ok := Glyph(r)
		require.True(t, ok, "no glyph for %q", r)
		for y, line := range strings.Split(g, "\n") {
			if i > 0 {
				rows[y] += "."
			}
			rows[y] += line
		}
	}
	return rows
}

func TestRecognize_RoundTrip(t *testing.T) {
	for _, word := range []string{"A", "HELLO", "RZKZLPGH", "EFBCGIJKLOPRSUZ"} {
		got, ok := Recognize(draw(t, word))
		require.True(t, ok, word)
		assert.Equal(t, word, got)
	}
}

func TestRecognize_TrailingColumnTrimmed(t *testing.T) {
	rows := draw(t, "HI")
	// a renderer that stops at the last lit column drops trailing dark cells
	for i := range rows {
		rows[i] = strings.TrimRight(rows[i], ".")
	}
	got, ok := Recognize(rows)
	require.True(t, ok)
	assert.Equal(t, "HI", got)
}

func TestRecognize_Unknown(t *testing.T) {
	rows := []string{"####", "####", "####", "####", "####", "####"}
	_, ok := Recognize(rows)
	assert.False(t, ok)

	_, ok = Recognize([]string{"#"})
	assert.False(t, ok)

	_, ok = Recognize(make([]string, GlyphHeight))
	assert.False(t, ok)
}
