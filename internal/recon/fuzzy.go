/**
 * @description
 * Fuzzy similarity scoring between an extracted narration name and the
 * MetaBase first+last name. Scores are 0-100: empty or placeholder inputs
 * score 0, identical normalized forms score 100, everything else is the
 * normalized Levenshtein similarity rounded to the nearest integer.
 *
 * @dependencies
 * - math, strings: Standard Go libraries.
 * - github.com/agnivade/levenshtein: Edit distance computation.
 */

package recon

import (
	"math"
	"strings"

	"github.com/agnivade/levenshtein"
)

// FuzzyScore returns the 0-100 similarity between two names. Either input
// being empty or the display placeholder short-circuits to 0; case and
// surrounding/duplicate whitespace are ignored.
func FuzzyScore(nameA, nameB string) int {
	if nameA == "" || nameB == "" || nameA == NamePlaceholder || nameB == NamePlaceholder {
		return 0
	}

	a := normalizeName(nameA)
	b := normalizeName(nameB)
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 100
	}

	distance := levenshtein.ComputeDistance(a, b)
	maxLen := len([]rune(a))
	if l := len([]rune(b)); l > maxLen {
		maxLen = l
	}

	similarity := float64(maxLen-distance) / float64(maxLen) * 100
	score := int(math.Round(similarity))
	if score < 0 {
		return 0
	}
	return score
}

// normalizeName uppercases and collapses all whitespace runs to single
// spaces.
func normalizeName(s string) string {
	return strings.Join(strings.Fields(strings.ToUpper(s)), " ")
}
