// Package ocr recognises the 4x6 block letters that some puzzles draw with points.
package ocr

import "strings"

const (
	GlyphWidth  = 4
	GlyphHeight = 6

	// Lit and Dark are the cells used by Render and Recognize.
	Lit  = '#'
	Dark = '.'
)

var glyphs = map[string]rune{
	".##.\n#..#\n#..#\n####\n#..#\n#..#": 'A',
	"###.\n#..#\n###.\n#..#\n#..#\n###.": 'B',
	".##.\n#..#\n#...\n#...\n#..#\n.##.": 'C',
	"####\n#...\n###.\n#...\n#...\n####": 'E',
	"####\n#...\n###.\n#...\n#...\n#...": 'F',
	".##.\n#..#\n#...\n#.##\n#..#\n.###": 'G',
	"#..#\n#..#\n####\n#..#\n#..#\n#..#": 'H',
	".###\n..#.\n..#.\n..#.\n..#.\n.###": 'I',
	"..##\n...#\n...#\n...#\n#..#\n.##.": 'J',
	"#..#\n#.#.\n##..\n#.#.\n#.#.\n#..#": 'K',
	"#...\n#...\n#...\n#...\n#...\n####": 'L',
	".##.\n#..#\n#..#\n#..#\n#..#\n.##.": 'O',
	"###.\n#..#\n#..#\n###.\n#...\n#...": 'P',
	"###.\n#..#\n#..#\n###.\n#.#.\n#..#": 'R',
	".###\n#...\n#...\n.##.\n...#\n###.": 'S',
	"#..#\n#..#\n#..#\n#..#\n#..#\n.##.": 'U',
	"####\n...#\n..#.\n.#..\n#...\n####": 'Z',
}

// Glyph returns the drawing of r, if known.
func Glyph(r rune) (string, bool) {
	for k, v := range glyphs {
		if v == r {
			return k, true
		}
	}
	return "", false
}

// Recognize reads letters from rows drawn with Lit/Dark cells. Letters are
// GlyphWidth wide separated by one dark column. ok is false when any glyph is
// unknown or the drawing is not GlyphHeight rows tall.
func Recognize(rows []string) (string, bool) {
	if len(rows) != GlyphHeight {
		return "", false
	}
	width := 0
	for _, r := range rows {
		width = max(width, len(r))
	}
	padded := make([]string, len(rows))
	for i, r := range rows {
		padded[i] = r + strings.Repeat(string(Dark), width-len(r))
	}

	var out strings.Builder
	for x := 0; x < width; x += GlyphWidth + 1 {
		var cell strings.Builder
		for y, row := range padded {
			if y > 0 {
				cell.WriteByte('\n')
			}
			end := min(x+GlyphWidth, width)
			cell.WriteString(row[x:end])
			cell.WriteString(strings.Repeat(string(Dark), x+GlyphWidth-end))
		}
		r, ok := glyphs[cell.String()]
		if !ok {
			return "", false
		}
		out.WriteRune(r)
	}
	if out.Len() == 0 {
		return "", false
	}
	return out.String(), true
}
