// Package sentence defines the tagged-token sequence shared by the rule
// predicate families and the tag engine, kept in its own package so
// rule/lexical and rule/contextual don't need to import engine.
package sentence

import "github.com/nihei9/brilltag/tag"

// TaggedToken is a (word, tag) pair. A Sentence is an ordered sequence of
// these, mutated in place while rules fire (spec.md §3).
type TaggedToken struct {
	Word string
	Tag  tag.Tag
}

// Sentence is the mutable per-invocation tagging state.
type Sentence []TaggedToken

// Words returns the plain word sequence, e.g. for logging or output.
func (s Sentence) Words() []string {
	words := make([]string, len(s))
	for i, tt := range s {
		words[i] = tt.Word
	}
	return words
}
