// Package style implements the C++ style checks and assembles the active
// rule set from configuration.
package style

import (
	"fmt"
	"strings"

	"github.com/crewcut/crewcut/src/rules"
)

// CheckKeywordOrder verifies that the keywords of sequence, when they all
// appear on line, appear contiguously and in the given order.
//
// Lines missing at least one keyword pass vacuously: the rule only fires
// once the full keyword set is present. When all keywords are present
// they must form the exact contiguous phrase; correct relative order
// with other tokens in between is still a failure. Tokenization is
// whitespace-delimited and case-sensitive, with no punctuation
// awareness.
func CheckKeywordOrder(sequence, line string) rules.Result {
	keys := strings.Fields(sequence)
	tokens := strings.Fields(line)

	if !allPresent(keys, tokens) {
		return rules.Passed()
	}

	for start, token := range tokens {
		if token != keys[0] {
			continue
		}
		if matchesAt(keys, tokens, start) {
			return rules.Passed()
		}
	}

	return rules.Failed("keyword sequence %q not ordered correctly in line %q", sequence, line)
}

func allPresent(keys, tokens []string) bool {
	tokenSet := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		tokenSet[t] = true
	}
	for _, k := range keys {
		if !tokenSet[k] {
			return false
		}
	}
	return true
}

func matchesAt(keys, tokens []string, start int) bool {
	if start+len(keys) > len(tokens) {
		return false
	}
	for i, k := range keys {
		if tokens[start+i] != k {
			return false
		}
	}
	return true
}

// NewKeywordOrderRule builds a line rule enforcing the canonical order of
// the given keyword sequence. The rule is named after the sequence.
func NewKeywordOrderRule(reg *rules.Registry, sequence string) (*rules.Rule, error) {
	return reg.New(rules.Spec{
		Name:        sequence,
		Description: fmt.Sprintf("Use %q only in this given order.", sequence),
		Category:    rules.CategoryCppStyle,
		Input:       rules.InputLine,
		Check: func(in rules.Input) (rules.Result, error) {
			line := in.(rules.LineInput)
			return CheckKeywordOrder(sequence, line.Text), nil
		},
	})
}
