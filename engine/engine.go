// Package engine drives the two-phase transformation-based tagging loop
// (spec.md §4.8): lexical rules sweep to guess tags for ambiguous words,
// then contextual rules sweep to fixpoint, rewriting tags based on
// surrounding context.
package engine

import (
	"github.com/nihei9/brilltag/contraction"
	"github.com/nihei9/brilltag/lexicon"
	ctxrule "github.com/nihei9/brilltag/rule/contextual"
	lexrule "github.com/nihei9/brilltag/rule/lexical"
	"github.com/nihei9/brilltag/sentence"
	"github.com/nihei9/brilltag/tag"
	"github.com/nihei9/brilltag/token"
)

// LexicalMaxSweeps and ContextualMaxSweeps are the iteration caps that
// stand in for a convergence guarantee neither pass actually has
// (spec.md §4.8's "fixpoint properties").
const (
	LexicalMaxSweeps    = 10
	ContextualMaxSweeps = 100
)

// TaggedToken is the engine's public vocabulary for a (word, tag) pair.
type TaggedToken = sentence.TaggedToken

// Result is the outcome of tagging one sentence: the tagged tokens plus
// enough of the engine's internal bookkeeping to let a caller judge
// whether the result should be trusted (spec.md §8's convergence
// property).
type Result struct {
	Tagged           []TaggedToken
	LexicalSweeps    int
	ContextualSweeps int
	Converged        bool
}

// TagSentence runs the full pipeline: tokenize, build per-word candidate
// sets from the lexicon, assign initial tags, then apply the lexical and
// contextual rulesets in turn (spec.md §4.8).
func TagSentence(text string, lex *lexicon.Lexicon, contractions *contraction.Table, lexRules lexrule.Ruleset, ctxRules ctxrule.Ruleset) Result {
	words := token.Tokenize(text, contractions)

	candidates := make([][]tag.Tag, len(words))
	s := make(sentence.Sentence, len(words))
	for i, w := range words {
		c := lex.Lookup(w)
		candidates[i] = c
		initial := tag.ANY
		if len(c) > 0 {
			initial = c[0]
		}
		s[i] = sentence.TaggedToken{Word: w, Tag: initial}
	}

	lexicalSweeps := runLexicalPass(s, lexRules, lex)
	contextualSweeps, converged := runContextualPass(s, candidates, ctxRules)

	return Result{
		Tagged:           s,
		LexicalSweeps:    lexicalSweeps,
		ContextualSweeps: contextualSweeps,
		Converged:        converged,
	}
}

// runLexicalPass is not candidate-gated: spec.md §8's candidate-gate
// invariant is explicit that the candidate set bounds only the
// contextual pass, not lexical-pass writes.
func runLexicalPass(s sentence.Sentence, rules lexrule.Ruleset, lex *lexicon.Lexicon) int {
	sweeps := 0
	for sweeps < LexicalMaxSweeps {
		sweeps++
		fired := 0
		for i := range s {
			for _, rule := range rules {
				if lexrule.Holds(rule, s, i, lex) {
					s[i].Tag = rule.TargetTag
					fired++
				}
			}
		}
		if fired == 0 {
			break
		}
	}
	return sweeps
}

func runContextualPass(s sentence.Sentence, candidates [][]tag.Tag, rules ctxrule.Ruleset) (int, bool) {
	sweeps := 0
	for sweeps < ContextualMaxSweeps {
		sweeps++
		fired := 0
		for i := range s {
			for _, rule := range rules[s[i].Tag] {
				if !candidateAllows(candidates[i], rule.TargetTag) {
					continue
				}
				if ctxrule.Holds(rule, s, i) {
					s[i].Tag = rule.TargetTag
					fired++
				}
			}
		}
		if fired == 0 {
			return sweeps, true
		}
	}
	return sweeps, false
}

// candidateAllows reports whether target is a legal tag for a word given
// its lexicon-derived candidate set. tag.ANY in the candidate set — the
// mark of an out-of-vocabulary word — is treated as unconstrained
// (spec.md §4.8's candidate-gate rationale).
func candidateAllows(candidates []tag.Tag, target tag.Tag) bool {
	for _, c := range candidates {
		if c == tag.ANY || c == target {
			return true
		}
	}
	return false
}
