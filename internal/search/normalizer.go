// Package search produces the normalized search key stored on every item so
// that listings can be matched with a plain substring query regardless of
// kana form, character width, or letter case.
package search

import (
	"strings"

	"golang.org/x/text/width"
)

// Normalize converts text into its canonical search form: half-width and
// full-width variants are folded, katakana becomes hiragana, and latin
// letters are lowercased. "トマト", "ﾄﾏﾄ" and "とまと" all normalize to the
// same string.
func Normalize(text string) string {
	folded := width.Fold.String(text)
	folded = strings.ToLower(folded)
	return strings.Map(katakanaToHiragana, folded)
}

// Key builds the stored search key from an item's title and description.
func Key(title, description string) string {
	return Normalize(title + " " + description)
}

// katakanaToHiragana shifts katakana into the hiragana block. The two blocks
// are parallel, offset by 0x60.
func katakanaToHiragana(r rune) rune {
	if r >= 'ァ' && r <= 'ヶ' {
		return r - 0x60
	}
	return r
}
