// Package contextual implements the contextual rule predicate family
// (spec.md §4.6): rules that rewrite an already-assigned tag based on the
// surrounding words and tags, considered only when the token's current tag
// matches the rule's source tag.
package contextual

import "github.com/nihei9/brilltag/tag"

// PredicateID is the closed taxonomy of contextual rule predicates,
// dispatched through a single switch in Holds rather than one type per
// predicate — same reasoning as rule/lexical.PredicateID.
type PredicateID int

const (
	PREVTAG PredicateID = iota
	PREV2TAG
	PREV1OR2TAG
	PREV1OR2OR3TAG
	NEXTTAG
	NEXT2TAG
	NEXT1OR2TAG
	NEXT1OR2OR3TAG
	PREVWD
	PREV1OR2WD
	NEXTWD
	CURWD
	WDNEXTTAG
	WDPREVTAG
	WDAND2AFT
	WDAND2TAGAFT
	WDAND2TAGBFR
	SURROUNDTAG
	LBIGRAM
	RBIGRAM
	PREVBIGRAM
	NEXTBIGRAM
)

var predicateNames = map[string]PredicateID{
	"PREVTAG":        PREVTAG,
	"PREV2TAG":       PREV2TAG,
	"PREV1OR2TAG":    PREV1OR2TAG,
	"PREV1OR2OR3TAG": PREV1OR2OR3TAG,
	"NEXTTAG":        NEXTTAG,
	"NEXT2TAG":       NEXT2TAG,
	"NEXT1OR2TAG":    NEXT1OR2TAG,
	"NEXT1OR2OR3TAG": NEXT1OR2OR3TAG,
	"PREVWD":         PREVWD,
	"PREV1OR2WD":     PREV1OR2WD,
	"NEXTWD":         NEXTWD,
	"CURWD":          CURWD,
	"WDNEXTTAG":      WDNEXTTAG,
	"WDPREVTAG":      WDPREVTAG,
	"WDAND2AFT":      WDAND2AFT,
	"WDAND2TAGAFT":   WDAND2TAGAFT,
	"WDAND2TAGBFR":   WDAND2TAGBFR,
	"SURROUNDTAG":    SURROUNDTAG,
	"LBIGRAM":        LBIGRAM,
	"RBIGRAM":        RBIGRAM,
	"PREVBIGRAM":     PREVBIGRAM,
	"NEXTBIGRAM":     NEXTBIGRAM,
}

// ParsePredicateID maps a rule-file identifier to a PredicateID.
func ParsePredicateID(s string) (PredicateID, bool) {
	id, ok := predicateNames[s]
	return id, ok
}

// Spec is a parsed contextual rule: a source tag that gates whether the
// rule is even considered, a predicate over the surrounding window, and
// the tag it writes when the predicate holds (spec.md §3, §4.6).
type Spec struct {
	PredicateID PredicateID
	SourceTag   tag.Tag
	TargetTag   tag.Tag
	Parameters  []string
}

// Ruleset buckets parsed contextual rules by source tag, preserving
// file order within each bucket (spec.md §3: "bucket order = file
// order").
type Ruleset map[tag.Tag][]Spec
