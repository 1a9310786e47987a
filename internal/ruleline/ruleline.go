// Package ruleline tokenizes a single rule-file line into its
// whitespace-delimited fields using a participle grammar, the way
// holomush-holomush's internal/access/policy/dsl builds a participle lexer
// for its own small line-oriented grammar. The lexical and contextual
// rule-file grammars (spec.md §4.7) differ in how they interpret the field
// list, but share this tokenization step.
package ruleline

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var ruleLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Token", Pattern: `\S+`},
	{Name: "whitespace", Pattern: `\s+`},
})

// Line is a single rule-file line reduced to its whitespace-delimited
// fields, in order.
type Line struct {
	Pos    lexer.Position `parser:""`
	Fields []string       `parser:"@Token*"`
}

var lineParser = participle.MustBuild[Line](
	participle.Lexer(ruleLexer),
	participle.UseLookahead(2),
)

// Parse tokenizes one line's text into its fields.
func Parse(text string) ([]string, error) {
	l, err := lineParser.ParseString("", text)
	if err != nil {
		return nil, err
	}
	return l.Fields, nil
}
