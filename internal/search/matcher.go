package search

import (
	"strings"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

const (
	MatcherTypeExact     = "exact"
	MatcherTypeExactCase = "exactcase"
	MatcherTypeFuzzy     = "fuzzy"
)

// Matcher decides whether a single line is selected.
type Matcher interface {
	Match(line string) bool
	Type() string
}

// NewMatcher returns the fuzzy matcher when fuzzy is set, the exact matcher otherwise.
func NewMatcher(query string, policy CasePolicy, fuzzy bool) Matcher {
	if fuzzy {
		return NewFuzzyMatcher(query, policy)
	}
	return NewExactMatcher(query, policy)
}

// ExactMatcher is plain substring containment.
type ExactMatcher struct {
	query         string
	caseSensitive bool
}

func NewExactMatcher(query string, policy CasePolicy) *ExactMatcher {
	caseSensitive := policy == Sensitive
	if !caseSensitive {
		query = strings.ToLower(query)
	}
	return &ExactMatcher{query: query, caseSensitive: caseSensitive}
}

func (m *ExactMatcher) Match(line string) bool {
	if !m.caseSensitive {
		line = strings.ToLower(line)
	}
	return strings.Contains(line, m.query)
}

func (m *ExactMatcher) Type() string {
	if m.caseSensitive {
		return MatcherTypeExactCase
	}
	return MatcherTypeExact
}

// FuzzyMatcher selects lines that contain the query's characters in order,
// scored by fzf. It reuses a scratch slab and must not be shared between goroutines.
type FuzzyMatcher struct {
	pattern       []rune
	caseSensitive bool
	slab          *util.Slab
}

func NewFuzzyMatcher(query string, policy CasePolicy) *FuzzyMatcher {
	caseSensitive := policy == Sensitive
	if !caseSensitive {
		query = strings.ToLower(query)
	}
	return &FuzzyMatcher{
		pattern:       []rune(query),
		caseSensitive: caseSensitive,
		slab:          util.MakeSlab(64, 4096),
	}
}

func (m *FuzzyMatcher) Match(line string) bool {
	// fzf scores an empty pattern as zero
	if len(m.pattern) == 0 {
		return true
	}
	if !m.caseSensitive {
		line = strings.ToLower(line)
	}
	chars := util.ToChars([]byte(line))
	result, _ := algo.FuzzyMatchV2(m.caseSensitive, false, true, &chars, m.pattern, false, m.slab)
	return result.Score > 0
}

func (m *FuzzyMatcher) Type() string { return MatcherTypeFuzzy }
