// Package token implements the tokenizer described in spec.md §4.4: a
// whitespace split composed with contraction expansion.
package token

import (
	"strings"

	"github.com/nihei9/brilltag/contraction"
)

// Tokenize splits sentence on whitespace and expands each resulting field
// through table, flattening the expansions into a single token list. No
// punctuation splitting is performed beyond what whitespace provides.
func Tokenize(sentence string, table *contraction.Table) []string {
	fields := strings.Fields(sentence)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		tokens = append(tokens, table.Expand(f)...)
	}
	return tokens
}
