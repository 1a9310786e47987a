package lexical_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nihei9/brilltag/lexicon"
	lexrule "github.com/nihei9/brilltag/rule/lexical"
	"github.com/nihei9/brilltag/sentence"
	"github.com/nihei9/brilltag/tag"
)

func newSentence(pairs ...interface{}) sentence.Sentence {
	s := make(sentence.Sentence, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		s = append(s, sentence.TaggedToken{Word: pairs[i].(string), Tag: pairs[i+1].(tag.Tag)})
	}
	return s
}

func TestHassuf(t *testing.T) {
	lex, err := lexicon.Load("../../lexicon/testdata/lexicon.txt")
	require.NoError(t, err)

	s := newSentence("running", tag.ANY)
	spec := lexrule.Spec{PredicateID: lexrule.HASSUF, TargetTag: tag.VBG, Parameters: []string{"ing"}}
	assert.True(t, lexrule.Holds(spec, s, 0, lex))

	s[0].Tag = tag.VB
	assert.False(t, lexrule.Holds(spec, s, 0, lex), "already tagged, HASSUF shouldn't fire")
}

func TestFhassufRequiresSourceTag(t *testing.T) {
	lex, err := lexicon.Load("../../lexicon/testdata/lexicon.txt")
	require.NoError(t, err)

	s := newSentence("running", tag.VB)
	spec := lexrule.Spec{PredicateID: lexrule.FHASSUF, SourceTag: tag.VB, HasSourceTag: true, TargetTag: tag.VBG, Parameters: []string{"ing"}}
	assert.True(t, lexrule.Holds(spec, s, 0, lex))

	s[0].Tag = tag.NN
	assert.False(t, lexrule.Holds(spec, s, 0, lex))

	// A gated rule with no parsed source tag (HasSourceTag false) is
	// silently inert, regardless of the token's current tag.
	s[0].Tag = tag.VB
	spec.HasSourceTag = false
	assert.False(t, lexrule.Holds(spec, s, 0, lex))
}

func TestAddsufLooksUpLexicon(t *testing.T) {
	lex, err := lexicon.Load("../../lexicon/testdata/lexicon.txt")
	require.NoError(t, err)

	// "run" + "s" = "runs", which is present in the test lexicon.
	s := newSentence("run", tag.ANY)
	spec := lexrule.Spec{PredicateID: lexrule.ADDSUF, TargetTag: tag.VBZ, Parameters: []string{"s"}}
	assert.True(t, lexrule.Holds(spec, s, 0, lex))

	spec.Parameters = []string{"zzz"}
	assert.False(t, lexrule.Holds(spec, s, 0, lex))
}

func TestDeletesufLooksUpLexicon(t *testing.T) {
	lex, err := lexicon.Load("../../lexicon/testdata/lexicon.txt")
	require.NoError(t, err)

	// "foxes" strip "es" = "fox", present in lexicon.
	s := newSentence("foxes", tag.ANY)
	spec := lexrule.Spec{PredicateID: lexrule.DELETESUF, TargetTag: tag.NNS, Parameters: []string{"es"}}
	assert.True(t, lexrule.Holds(spec, s, 0, lex))
}

func TestGoodleftAndGoodright(t *testing.T) {
	lex, err := lexicon.Load("../../lexicon/testdata/lexicon.txt")
	require.NoError(t, err)

	s := newSentence("the", tag.ANY, "fox", tag.ANY)
	spec := lexrule.Spec{PredicateID: lexrule.GOODLEFT, TargetTag: tag.NN, Parameters: []string{"the"}}
	assert.True(t, lexrule.Holds(spec, s, 1, lex))

	spec = lexrule.Spec{PredicateID: lexrule.GOODRIGHT, TargetTag: tag.DT, Parameters: []string{"fox"}}
	assert.True(t, lexrule.Holds(spec, s, 0, lex))
}

func TestOutOfRangeIndexIsFalse(t *testing.T) {
	lex, err := lexicon.Load("../../lexicon/testdata/lexicon.txt")
	require.NoError(t, err)

	s := newSentence("fox", tag.ANY)
	spec := lexrule.Spec{PredicateID: lexrule.HASSUF, TargetTag: tag.NN, Parameters: []string{"x"}}
	assert.False(t, lexrule.Holds(spec, s, 5, lex))
	assert.False(t, lexrule.Holds(spec, s, -1, lex))
}

func TestCharPredicate(t *testing.T) {
	lex, err := lexicon.Load("../../lexicon/testdata/lexicon.txt")
	require.NoError(t, err)

	s := newSentence("hyphen-ated", tag.ANY)
	spec := lexrule.Spec{PredicateID: lexrule.CHAR, TargetTag: tag.JJ, Parameters: []string{"-"}}
	assert.True(t, lexrule.Holds(spec, s, 0, lex))
}
