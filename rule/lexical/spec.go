// Package lexical implements the lexical rule predicate family (spec.md
// §4.5): orthographic rules that guess a tag for an untagged (or, for the
// F-prefixed variants, already-tagged) word.
package lexical

import "github.com/nihei9/brilltag/tag"

// PredicateID is the closed taxonomy of lexical rule predicates. It's a
// plain enum dispatched through a single switch in Holds, not an interface
// with one type per predicate — the set is closed and known at parse time.
type PredicateID int

const (
	HASSUF PredicateID = iota
	FHASSUF
	FHASPREF
	CHAR
	FCHAR
	ADDSUF
	FADDSUF
	DELETESUF
	FDELETESUF
	DELETEPREF
	FDELETEPREF
	GOODLEFT
	FGOODLEFT
	GOODRIGHT
	FGOODRIGHT
)

var predicateNames = map[string]PredicateID{
	"HASSUF":      HASSUF,
	"FHASSUF":     FHASSUF,
	"FHASPREF":    FHASPREF,
	"CHAR":        CHAR,
	"FCHAR":       FCHAR,
	"ADDSUF":      ADDSUF,
	"FADDSUF":     FADDSUF,
	"DELETESUF":   DELETESUF,
	"FDELETESUF":  FDELETESUF,
	"DELETEPREF":  DELETEPREF,
	"FDELETEPREF": FDELETEPREF,
	"GOODLEFT":    GOODLEFT,
	"FGOODLEFT":   FGOODLEFT,
	"GOODRIGHT":   GOODRIGHT,
	"FGOODRIGHT":  FGOODRIGHT,
}

// ParsePredicateID maps a rule-file identifier to a PredicateID.
func ParsePredicateID(s string) (PredicateID, bool) {
	id, ok := predicateNames[s]
	return id, ok
}

// gated reports whether id is one of the F-prefixed, already-tagged
// variants, which require a matching Spec.SourceTag to fire.
func (id PredicateID) gated() bool {
	switch id {
	case FHASSUF, FHASPREF, FCHAR, FADDSUF, FDELETESUF, FDELETEPREF, FGOODLEFT, FGOODRIGHT:
		return true
	default:
		return false
	}
}

// Spec is a parsed lexical rule: a predicate, the tag it writes when the
// predicate holds, and the predicate's parameter list (spec.md §3). The
// source tag is its own field rather than Parameters[0] so that Parameters
// always starts with the cue, whether or not the rule is gated — a rule
// file's optional leading source-tag token (spec.md §4.7) is split off by
// the parser before it ever reaches Parameters.
type Spec struct {
	PredicateID  PredicateID
	SourceTag    tag.Tag
	HasSourceTag bool
	TargetTag    tag.Tag
	Parameters   []string
}

// Ruleset is the flat, file-ordered list of lexical rule specs (spec.md
// §3: "Lexical Ruleset").
type Ruleset []Spec
