// Package lexicon loads and queries the word-to-candidate-tags mapping
// described in spec.md §4.2.
package lexicon

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/nihei9/brilltag/brillerr"
	"github.com/nihei9/brilltag/tag"
)

// Lexicon maps a surface form to an ordered list of candidate tags, the
// first of which is that word's default initial tag. It is read-only once
// built and shared across tagging invocations (spec.md §5).
type Lexicon struct {
	entries map[string][]tag.Tag
}

// unknownWord is the conceptual candidate list for any word absent from the
// table. Lookup returns a fresh copy on every miss instead of inserting it,
// per spec.md §9's preferred pure-lookup reading of the lazy-insertion
// ambiguity.
var unknownWord = []tag.Tag{tag.ANY}

// Load reads a lexicon file: one `word TAG1 TAG2 ...` line per word,
// whitespace-delimited. A line whose tag tokens don't all parse yields an
// empty candidate list for that word rather than failing the load
// (spec.md §4.2, §7).
func Load(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &brillerr.LineError{Path: path, Cause: err}
	}
	defer f.Close()

	l := &Lexicon{entries: map[string][]tag.Tag{}}

	lineNo := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		word := fields[0]

		tags := make([]tag.Tag, 0, len(fields)-1)
		ok := true
		for _, f := range fields[1:] {
			t, valid := tag.Parse(f)
			if !valid {
				ok = false
				break
			}
			tags = append(tags, t)
		}
		if !ok {
			tags = nil
		}
		l.entries[word] = tags
	}
	if err := sc.Err(); err != nil {
		return nil, &brillerr.LineError{Path: path, Line: lineNo, Cause: err}
	}

	return l, nil
}

// Lookup returns the ordered candidate tags for word. An absent word
// returns []tag.Tag{tag.ANY}. Lookup never mutates the lexicon.
func (l *Lexicon) Lookup(word string) []tag.Tag {
	if tags, ok := l.entries[word]; ok {
		out := make([]tag.Tag, len(tags))
		copy(out, tags)
		return out
	}
	out := make([]tag.Tag, len(unknownWord))
	copy(out, unknownWord)
	return out
}

// Contains reports whether word has a lexicon entry at all, regardless of
// whether its candidate list is empty (spec.md's ADDSUF/DELETESUF family:
// "the modified word is in the lexicon" means present as a key).
func (l *Lexicon) Contains(word string) bool {
	_, ok := l.entries[word]
	return ok
}

// Size returns the number of distinct words held in the lexicon, chiefly
// useful for diagnostics.
func (l *Lexicon) Size() int {
	return len(l.entries)
}

func (l *Lexicon) String() string {
	return fmt.Sprintf("lexicon(%d words)", l.Size())
}
