// Package tag defines the closed Penn-Treebank-style part-of-speech tag
// enumeration brilltag assigns to tokens.
package tag

import "strings"

// Tag is a member of the closed POS tag enumeration. The zero value is ANY.
type Tag int

const (
	// ANY is the sentinel meaning "not yet committed" (initial tag for an
	// unknown word) or "wildcard" (matches anything as a candidate).
	ANY Tag = iota
	CC
	CD
	DT
	EX
	FW
	IN
	JJ
	JJR
	JJS
	LS
	MD
	NN
	NNS
	NNP
	NNPS
	PDT
	POS
	PRPE
	PRPO
	RB
	RBR
	RBS
	RP
	SYM
	TO
	UH
	VB
	VBD
	VBG
	VBN
	VBP
	VBZ
	WDT
	WPR
	WPO
	WRB
	PUNC
)

var displayForms = map[Tag]string{
	ANY:  "ANY",
	CC:   "CC",
	CD:   "CD",
	DT:   "DT",
	EX:   "EX",
	FW:   "FW",
	IN:   "IN",
	JJ:   "JJ",
	JJR:  "JJR",
	JJS:  "JJS",
	LS:   "LS",
	MD:   "MD",
	NN:   "NN",
	NNS:  "NNS",
	NNP:  "NNP",
	NNPS: "NNPS",
	PDT:  "PDT",
	POS:  "POS",
	PRPE: "PRP",
	PRPO: "PRP$",
	RB:   "RB",
	RBR:  "RBR",
	RBS:  "RBS",
	RP:   "RP",
	SYM:  "SYM",
	TO:   "TO",
	UH:   "UH",
	VB:   "VB",
	VBD:  "VBD",
	VBG:  "VBG",
	VBN:  "VBN",
	VBP:  "VBP",
	VBZ:  "VBZ",
	WDT:  "WDT",
	WPR:  "WP",
	WPO:  "WP$",
	WRB:  "WRB",
	PUNC: "PUNC",
}

var longForms = map[Tag]string{
	ANY:  "Any",
	CC:   "Coordinating conjunction",
	CD:   "Cardinal number",
	DT:   "Determiner",
	EX:   "Existential there",
	FW:   "Foreign word",
	IN:   "Preposition or subordinating conjunction",
	JJ:   "Adjective",
	JJR:  "Adjective, comparative",
	JJS:  "Adjective, superlative",
	LS:   "List item marker",
	MD:   "Modal",
	NN:   "Noun, singular or mass",
	NNS:  "Noun, plural",
	NNP:  "Proper noun, singular",
	NNPS: "Proper noun, plural",
	PDT:  "Predeterminer",
	POS:  "Possessive ending",
	PRPE: "Personal pronoun",
	PRPO: "Possessive pronoun",
	RB:   "Adverb",
	RBR:  "Adverb, comparative",
	RBS:  "Adverb, superlative",
	RP:   "Particle",
	SYM:  "Symbol",
	TO:   "to",
	UH:   "Interjection",
	VB:   "Verb, base form",
	VBD:  "Verb, past tense",
	VBG:  "Verb, gerund or present participle",
	VBN:  "Verb, past participle",
	VBP:  "Verb, non-3rd person singular present",
	VBZ:  "Verb, 3rd person singular present",
	WDT:  "Wh-determiner",
	WPR:  "Wh-pronoun",
	WPO:  "Possessive wh-pronoun",
	WRB:  "Wh-adverb",
	PUNC: "Punctuation",
}

// punctuationTags maps the common punctuation characters called out in
// spec.md §4.1 to PUNC.
var punctuationTags = map[string]bool{
	".": true,
	",": true,
	"!": true,
	";": true,
}

// ptbAliases holds the PTB strings that don't map to themselves, either
// because Go can't name a field "PRP$" or because the source treebank uses
// a different string for the same tag brilltag already has under another
// name.
var ptbAliases = map[string]Tag{
	"PRP":  PRPE,
	"PRP$": PRPO,
	"WP":   WPR,
	"WP$":  WPO,
}

var fromDisplayForm = func() map[string]Tag {
	m := make(map[string]Tag, len(displayForms))
	for t, form := range displayForms {
		m[form] = t
	}
	return m
}()

// Parse maps a PTB tag string to a Tag. It returns false when the string
// isn't recognized as any tag, punctuation marker, or ambiguity marker.
func Parse(s string) (Tag, bool) {
	if strings.Contains(s, "|") {
		return ANY, true
	}
	if t, ok := ptbAliases[s]; ok {
		return t, true
	}
	if punctuationTags[s] {
		return PUNC, true
	}
	if t, ok := fromDisplayForm[s]; ok {
		return t, true
	}
	return ANY, false
}

// Display returns the canonical PTB string for t.
func (t Tag) Display() string {
	if s, ok := displayForms[t]; ok {
		return s
	}
	return "ANY"
}

// String implements fmt.Stringer with the long descriptive form, mirroring
// the original Rust prototype's Wordclass Display impl.
func (t Tag) String() string {
	if s, ok := longForms[t]; ok {
		return s
	}
	return "Any"
}
