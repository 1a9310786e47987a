// Package contraction loads and applies the contraction-expansion table
// described in spec.md §4.3 (e.g. "you're" -> ["you", "are"]).
package contraction

import (
	"encoding/json"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/nihei9/brilltag/brillerr"
)

// Table maps a lowercase contraction surface form to its expansion. It is
// read-only after Load and safe to share across tagging invocations.
type Table struct {
	expansions map[string][]string
}

// Load reads a JSON file mapping contraction strings to a single-element
// array containing the whitespace-joined expansion, as produced by
// data/contractions.json. It fails only if the file is unreadable or not
// valid JSON (spec.md §4.3).
func Load(path string) (*Table, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &brillerr.LineError{Path: path, Cause: err}
	}

	var raw map[string][]string
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, &brillerr.LineError{Path: path, Cause: err}
	}

	t := &Table{expansions: map[string][]string{}}
	for contraction, expansion := range raw {
		if len(expansion) == 0 {
			continue
		}
		t.expansions[strings.ToLower(contraction)] = strings.Fields(expansion[0])
	}
	return t, nil
}

// Expand returns the expansion of word. If word (lowercased) isn't a known
// contraction, it returns []string{word} unchanged. When word starts with
// an uppercase letter, the first character of the first expansion element
// is re-capitalized, preserving the input's original casing signal.
func (t *Table) Expand(word string) []string {
	expansion, ok := t.expansions[strings.ToLower(word)]
	if !ok {
		return []string{word}
	}

	out := make([]string, len(expansion))
	copy(out, expansion)

	first, _ := utf8.DecodeRuneInString(word)
	if first != utf8.RuneError && unicode.IsUpper(first) {
		out[0] = capitalizeFirst(out[0])
	}
	return out
}

func capitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
