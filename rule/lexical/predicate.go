package lexical

import (
	"strings"

	"github.com/nihei9/brilltag/internal/window"
	"github.com/nihei9/brilltag/lexicon"
	"github.com/nihei9/brilltag/sentence"
	"github.com/nihei9/brilltag/tag"
)

// Holds reports whether spec's predicate fires at position i of s. Gated
// (F-prefixed) predicates additionally require the token's current tag to
// equal spec.SourceTag; ungated predicates require the token to still be
// untagged (tag.ANY). Out-of-range neighbor access and unparsable
// parameters make Holds return false, never panic or error (spec.md §4.5,
// §7).
func Holds(spec Spec, s sentence.Sentence, i int, lex *lexicon.Lexicon) bool {
	cur, ok := window.At(s, i)
	if !ok {
		return false
	}

	if spec.PredicateID.gated() {
		if !spec.HasSourceTag || cur.Tag != spec.SourceTag {
			return false
		}
	} else if cur.Tag != tag.ANY {
		return false
	}

	switch spec.PredicateID {
	case HASSUF, FHASSUF:
		suffix, ok := cueParam(spec)
		return ok && strings.HasSuffix(cur.Word, suffix)

	case FHASPREF:
		prefix, ok := cueParam(spec)
		return ok && strings.HasPrefix(cur.Word, prefix)

	case CHAR, FCHAR:
		c, ok := cueParam(spec)
		return ok && c != "" && strings.Contains(cur.Word, c)

	case ADDSUF, FADDSUF:
		suffix, ok := cueParam(spec)
		return ok && lex.Contains(cur.Word+suffix)

	case DELETESUF, FDELETESUF:
		suffix, ok := cueParam(spec)
		if !ok {
			return false
		}
		stripped, ok := strip(cur.Word, suffix, strings.TrimSuffix)
		return ok && lex.Contains(stripped)

	case DELETEPREF, FDELETEPREF:
		prefix, ok := cueParam(spec)
		if !ok {
			return false
		}
		stripped, ok := strip(cur.Word, prefix, strings.TrimPrefix)
		return ok && lex.Contains(stripped)

	case GOODLEFT, FGOODLEFT:
		word, ok := cueParam(spec)
		if !ok {
			return false
		}
		left, ok := window.At(s, i-1)
		return ok && left.Word == word

	case GOODRIGHT, FGOODRIGHT:
		word, ok := cueParam(spec)
		if !ok {
			return false
		}
		right, ok := window.At(s, i+1)
		return ok && right.Word == word

	default:
		return false
	}
}

// cueParam returns the predicate's cue parameter, always Parameters[0]:
// the source tag (when present) is split off into spec.SourceTag, not
// carried in Parameters.
func cueParam(spec Spec) (string, bool) {
	if len(spec.Parameters) == 0 {
		return "", false
	}
	return spec.Parameters[0], true
}

// strip removes affix from word via trim, reporting false if trim was a
// no-op (the affix wasn't actually present).
func strip(word, affix string, trim func(string, string) string) (string, bool) {
	stripped := trim(word, affix)
	if stripped == word && affix != "" {
		return "", false
	}
	return stripped, true
}
