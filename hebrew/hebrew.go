// Package hebrew filters OCR output down to usable Hebrew text. Recognition
// on aged scans emits decorative-symbol noise that pollutes downstream use,
// so words and characters outside the accepted Hebrew repertoire are dropped.
package hebrew

import (
	"strings"
	"unicode"
)

// ContainsHebrew reports whether s has at least one rune in the Hebrew
// Unicode block (U+0590–U+05FF).
func ContainsHebrew(s string) bool {
	for _, r := range s {
		if r >= 0x0590 && r <= 0x05FF {
			return true
		}
	}
	return false
}

// allowed reports whether a rune may appear in validated output: core Hebrew
// letters, vowels and cantillation marks, Hebrew punctuation, or common ASCII
// punctuation and whitespace.
func allowed(r rune) bool {
	switch {
	case r >= 0x05D0 && r <= 0x05EA: // letters
		return true
	case r >= 0x05B0 && r <= 0x05BD: // points and meteg
		return true
	case r >= 0x05BF && r <= 0x05C7: // rafe, dagesh, punctuation marks
		return true
	case r == 0x05BE || r == 0x05C0 || r == 0x05C3 || r == 0x05C6: // maqaf, paseq, sof pasuq, nun hafukha
		return true
	case r == 0x05F3 || r == 0x05F4: // geresh, gershayim
		return true
	case r < 128 && (unicode.IsPunct(r) || unicode.IsSpace(r)):
		return true
	}
	return false
}

// Validate cleans recognized text line by line: words with no Hebrew rune are
// dropped, disallowed runes are stripped from the remainder, and lines left
// empty are removed. Validate is idempotent; already-clean text passes
// through unchanged up to whitespace normalization.
func Validate(text string) string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		var kept []string
		for _, word := range strings.Fields(line) {
			if !ContainsHebrew(word) {
				continue
			}
			cleaned := strings.Map(func(r rune) rune {
				if allowed(r) {
					return r
				}
				return -1
			}, word)
			if !ContainsHebrew(cleaned) {
				continue
			}
			kept = append(kept, cleaned)
		}
		if len(kept) > 0 {
			out = append(out, strings.Join(kept, " "))
		}
	}
	return strings.Join(out, "\n")
}
