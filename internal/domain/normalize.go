package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// NormalizeIngredientName maps a free-text ingredient name to the key used
// to merge shopping list lines:
//   - Unicode NFC composition, so "é" typed two ways compares equal
//   - leading/trailing whitespace trimmed
//   - inner whitespace runs collapsed into a single space
//   - full Unicode case folding
//
// Punctuation and diacritics are preserved. The function is pure.
func NormalizeIngredientName(name string) string {
	name = norm.NFC.String(name)
	name = collapseSpaces(name)
	if name == "" {
		return ""
	}
	return cases.Fold().String(name)
}

// CleanDisplayName trims and collapses whitespace but keeps the original case.
// The first contributor's spelling is what the shopping list shows.
func CleanDisplayName(name string) string {
	return collapseSpaces(norm.NFC.String(name))
}

func collapseSpaces(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	pendingSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			pendingSpace = b.Len() > 0
			continue
		}
		if pendingSpace {
			b.WriteByte(' ')
			pendingSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
