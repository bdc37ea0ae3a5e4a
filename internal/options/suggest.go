package options

import (
	"strings"

	"github.com/agext/levenshtein"
)

// Suggest returns the catalog option closest to the given unknown name, or
// an empty string when nothing is close enough to be a plausible typo. The
// input may carry its dash prefix.
func Suggest(name string) string {
	name = strings.TrimLeft(name, "-")

	best := ""
	bestDistance := 3
	for _, candidate := range catalogNames {
		if d := levenshtein.Distance(name, candidate, nil); d < bestDistance {
			best = candidate
			bestDistance = d
		}
	}

	if best == "" {
		return ""
	}
	return "--" + best
}
