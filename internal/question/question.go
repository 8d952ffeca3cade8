// Package question pairs predicates from the predicate library with a
// display prompt and logical routing dependencies (spec §4.3).
package question

import "github.com/movieakinator/engine/internal/predicate"

// Question is an immutable record: a unique routing key, a display
// prompt, the predicate it tests, and the routing keys it depends on
// or conflicts with.
type Question struct {
	Key      string
	Prompt   string
	Category predicate.Category
	Evaluate predicate.Predicate

	// Requires must already be in Asked for this question to be
	// eligible; Excludes must not intersect Asked.
	Requires []string
	Excludes []string
}

// New builds a static Question entry.
func New(key, prompt string, p predicate.Predicate, requires, excludes []string) Question {
	return Question{
		Key:      key,
		Prompt:   prompt,
		Category: p.Category,
		Evaluate: p,
		Requires: requires,
		Excludes: excludes,
	}
}

// contradictionPairs are routing keys that mutually exclude each other
// once one has been asked (spec §4.4), beyond each question's own
// declared Excludes.
var contradictionPairs = [][2]string{
	{"finance_big_budget", "finance_small_budget"},
	{"runtime_lt_90", "runtime_ge_150"},
	{"format_is_animation", "format_is_live_action"},
	{"year_after_1980", "year_before_1970"},
}

// ContradictionExcludes returns the routing keys that key mutually
// excludes via the declared contradiction-pair table, plus the
// saga_is_standalone <-> every saga_* key exclusion. The franchise
// roster (franchiseSpecials) is data-driven rather than a fixed pair,
// so it can't live in contradictionPairs above.
func ContradictionExcludes(key string) []string {
	var out []string
	for _, pair := range contradictionPairs {
		if pair[0] == key {
			out = append(out, pair[1])
		}
		if pair[1] == key {
			out = append(out, pair[0])
		}
	}

	if key == "saga_is_standalone" {
		for _, special := range franchiseSpecials {
			out = append(out, special.key)
		}
	} else {
		for _, special := range franchiseSpecials {
			if special.key == key {
				out = append(out, "saga_is_standalone")
			}
		}
	}
	return out
}
