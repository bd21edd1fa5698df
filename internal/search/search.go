// Package search selects the lines of a text body that contain a query.
package search

import (
	"fmt"
	"strings"
)

type CasePolicy int

const (
	Sensitive CasePolicy = iota
	Insensitive
)

func (p CasePolicy) String() string {
	if p == Insensitive {
		return "insensitive"
	}
	return "sensitive"
}

// ParseCasePolicy maps a config value to a CasePolicy. The empty string is Sensitive.
func ParseCasePolicy(s string) (CasePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "sensitive":
		return Sensitive, nil
	case "insensitive":
		return Insensitive, nil
	default:
		return Sensitive, fmt.Errorf("unknown case policy: %q", s)
	}
}

// Match is a selected line and its 1-based position in the document.
type Match struct {
	LineNum int
	Line    string
}

// Lines splits document on "\n" and drops one trailing "\r" from each line.
// A trailing newline does not produce an empty final line.
func Lines(document string) []string {
	if document == "" {
		return nil
	}
	lines := strings.Split(document, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// Search returns the lines of document containing query, in document order.
// The returned strings share memory with document.
func Search(query, document string, policy CasePolicy) []string {
	m := NewExactMatcher(query, policy)
	var out []string
	for _, line := range Lines(document) {
		if m.Match(line) {
			out = append(out, line)
		}
	}
	return out
}

// SearchLines is Search with line numbers attached.
func SearchLines(query, document string, policy CasePolicy) []Match {
	return Filter(NewExactMatcher(query, policy), document)
}

// Filter applies m to every line of document.
func Filter(m Matcher, document string) []Match {
	var out []Match
	for i, line := range Lines(document) {
		if m.Match(line) {
			out = append(out, Match{LineNum: i + 1, Line: line})
		}
	}
	return out
}
