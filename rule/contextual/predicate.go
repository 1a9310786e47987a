package contextual

import (
	"github.com/nihei9/brilltag/internal/window"
	"github.com/nihei9/brilltag/sentence"
	"github.com/nihei9/brilltag/tag"
)

// Holds reports whether spec's predicate fires at position i of s. A rule
// is only considered when the token's current tag equals spec.SourceTag
// (spec.md §4.6); out-of-range neighbor access and unparsable tag
// parameters make Holds return false, never panic or error (spec.md §7).
func Holds(spec Spec, s sentence.Sentence, i int) bool {
	cur, ok := window.At(s, i)
	if !ok || cur.Tag != spec.SourceTag {
		return false
	}

	switch spec.PredicateID {
	case PREVTAG:
		t, ok := tagParam(spec.Parameters, 0)
		return ok && tagEquals(s, i-1, t)

	case PREV2TAG:
		t, ok := tagParam(spec.Parameters, 0)
		return ok && tagEquals(s, i-2, t)

	case PREV1OR2TAG:
		t, ok := tagParam(spec.Parameters, 0)
		return ok && (tagEquals(s, i-1, t) || tagEquals(s, i-2, t))

	case PREV1OR2OR3TAG:
		t, ok := tagParam(spec.Parameters, 0)
		return ok && (tagEquals(s, i-1, t) || tagEquals(s, i-2, t) || tagEquals(s, i-3, t))

	case NEXTTAG:
		t, ok := tagParam(spec.Parameters, 0)
		return ok && tagEquals(s, i+1, t)

	case NEXT2TAG:
		t, ok := tagParam(spec.Parameters, 0)
		return ok && tagEquals(s, i+2, t)

	case NEXT1OR2TAG:
		t, ok := tagParam(spec.Parameters, 0)
		return ok && (tagEquals(s, i+1, t) || tagEquals(s, i+2, t))

	case NEXT1OR2OR3TAG:
		t, ok := tagParam(spec.Parameters, 0)
		return ok && (tagEquals(s, i+1, t) || tagEquals(s, i+2, t) || tagEquals(s, i+3, t))

	case PREVWD:
		w, ok := wordParam(spec.Parameters, 0)
		return ok && wordEquals(s, i-1, w)

	case PREV1OR2WD:
		w, ok := wordParam(spec.Parameters, 0)
		return ok && (wordEquals(s, i-1, w) || wordEquals(s, i-2, w))

	case NEXTWD:
		w, ok := wordParam(spec.Parameters, 0)
		return ok && wordEquals(s, i+1, w)

	case CURWD:
		w, ok := wordParam(spec.Parameters, 0)
		return ok && cur.Word == w

	case WDNEXTTAG:
		w, ok := wordParam(spec.Parameters, 0)
		t, ok2 := tagParam(spec.Parameters, 1)
		return ok && ok2 && cur.Word == w && tagEquals(s, i+1, t)

	case WDPREVTAG:
		w, ok := wordParam(spec.Parameters, 0)
		t, ok2 := tagParam(spec.Parameters, 1)
		return ok && ok2 && cur.Word == w && tagEquals(s, i-1, t)

	case WDAND2AFT:
		w, ok := wordParam(spec.Parameters, 0)
		w2, ok2 := wordParam(spec.Parameters, 1)
		return ok && ok2 && cur.Word == w && wordEquals(s, i+2, w2)

	case WDAND2TAGAFT:
		w, ok := wordParam(spec.Parameters, 0)
		t, ok2 := tagParam(spec.Parameters, 1)
		return ok && ok2 && cur.Word == w && tagEquals(s, i+2, t)

	case WDAND2TAGBFR:
		w, ok := wordParam(spec.Parameters, 0)
		t, ok2 := tagParam(spec.Parameters, 1)
		return ok && ok2 && cur.Word == w && tagEquals(s, i-2, t)

	case SURROUNDTAG:
		t1, ok := tagParam(spec.Parameters, 0)
		t2, ok2 := tagParam(spec.Parameters, 1)
		return ok && ok2 && tagEquals(s, i-1, t1) && tagEquals(s, i+1, t2)

	case LBIGRAM:
		w, ok := wordParam(spec.Parameters, 0)
		w2, ok2 := wordParam(spec.Parameters, 1)
		return ok && ok2 && cur.Word == w && wordEquals(s, i-1, w2)

	case RBIGRAM:
		w, ok := wordParam(spec.Parameters, 0)
		w2, ok2 := wordParam(spec.Parameters, 1)
		return ok && ok2 && cur.Word == w && wordEquals(s, i+1, w2)

	case PREVBIGRAM:
		t1, ok := tagParam(spec.Parameters, 0)
		t2, ok2 := tagParam(spec.Parameters, 1)
		return ok && ok2 && tagEquals(s, i-1, t1) && tagEquals(s, i-2, t2)

	case NEXTBIGRAM:
		t1, ok := tagParam(spec.Parameters, 0)
		t2, ok2 := tagParam(spec.Parameters, 1)
		return ok && ok2 && tagEquals(s, i+1, t1) && tagEquals(s, i+2, t2)

	default:
		return false
	}
}

func tagParam(params []string, idx int) (tag.Tag, bool) {
	if idx >= len(params) {
		return tag.ANY, false
	}
	return tag.Parse(params[idx])
}

func wordParam(params []string, idx int) (string, bool) {
	if idx >= len(params) {
		return "", false
	}
	return params[idx], true
}

// tagEquals and wordEquals report whether the neighbor at i exists and
// matches t/w. An out-of-range neighbor always compares false, even if t
// happens to be tag.ANY (spec.md §7: boundary accesses yield false, not a
// coincidental match against the wildcard sentinel).
func tagEquals(s sentence.Sentence, i int, t tag.Tag) bool {
	tok, ok := window.At(s, i)
	return ok && tok.Tag == t
}

func wordEquals(s sentence.Sentence, i int, w string) bool {
	tok, ok := window.At(s, i)
	return ok && tok.Word == w
}
