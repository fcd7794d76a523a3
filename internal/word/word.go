// Package word provides normalization and validation of candidate words:
// the five-letter shape check, letter signatures and letter masks.
package word

import (
	"regexp"
	"slices"
	"strings"
)

// Length is the number of letters in a valid word.
const Length = 5

// shapePattern matches exactly five lowercase ASCII letters.
var shapePattern = regexp.MustCompile(`^[a-z]{5}$`)

// lineBreaks removes every newline and carriage return, wherever they appear.
var lineBreaks = strings.NewReplacer("\n", "", "\r", "")

// Normalize lowercases a raw line and strips all '\n' and '\r' characters
// from it, including any in the middle of the string.
func Normalize(line string) string {
	return lineBreaks.Replace(strings.ToLower(line))
}

// HasShape reports whether w is exactly five lowercase letters a-z.
func HasShape(w string) bool {
	return shapePattern.MatchString(w)
}

// Signature returns the sorted, duplicate-free characters of w.
// Two words share a signature when they use the same set of letters.
func Signature(w string) string {
	letters := []rune(w)
	slices.Sort(letters)
	return string(slices.Compact(letters))
}

// HasDistinctLetters reports whether no letter appears more than once in w.
func HasDistinctLetters(w string) bool {
	return len([]rune(Signature(w))) == len([]rune(w))
}
