package analyzer

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// suggest returns the closest in-scope name to want, by Levenshtein rank,
// for the "did you mean" hint on undefined-symbol diagnostics. Purely
// advisory (see SPEC_FULL.md DOMAIN STACK): it never changes whether a
// diagnostic fires, only enriches its Hint field. Returns "" when nothing
// is close enough to be useful.
func suggest(want string, candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}
	ranked := fuzzy.RankFindFold(want, candidates)
	if len(ranked) == 0 {
		return ""
	}
	sort.Stable(ranked)
	return ranked[0].Target
}
