// Package suggest proposes the closest known command name for a mistyped
// one. Suggestions are advisory only and never auto-executed.
package suggest

import (
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Closest returns the known name most similar to the attempted one, or the
// empty string when the set is empty or nothing scores above zero. Only a
// strictly higher ratio replaces the current best, so ties keep the
// earliest candidate and repeated calls are deterministic.
func Closest(name string, known []string) string {
	dmp := diffmatchpatch.New()
	var best string
	var bestRatio float64
	for _, candidate := range known {
		if ratio := similarity(dmp, name, candidate); ratio > bestRatio {
			bestRatio = ratio
			best = candidate
		}
	}
	return best
}

// similarity computes an edit-distance ratio normalized to [0, 1], where 1
// means identical strings.
func similarity(dmp *diffmatchpatch.DiffMatchPatch, a, b string) float64 {
	longest := utf8.RuneCountInString(a)
	if n := utf8.RuneCountInString(b); n > longest {
		longest = n
	}
	if longest == 0 {
		return 0
	}
	diffs := dmp.DiffMain(a, b, false)
	distance := dmp.DiffLevenshtein(diffs)
	return 1 - float64(distance)/float64(longest)
}
