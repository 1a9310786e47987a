package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nihei9/brilltag/contraction"
	"github.com/nihei9/brilltag/token"
)

func TestTokenize(t *testing.T) {
	table, err := contraction.Load("../contraction/testdata/contractions.json")
	require.NoError(t, err)

	assert.Equal(t, []string{"you", "are"}, token.Tokenize("you're", table))
	assert.Equal(t, []string{"It", "is", "a", "test"}, token.Tokenize("It's a test", table))
	assert.Equal(t, []string{"chocolate"}, token.Tokenize("chocolate", table))
	assert.Equal(t, []string{"Chocolate"}, token.Tokenize("Chocolate", table))
	assert.Equal(t, []string{"I", "do", "not", "know"}, token.Tokenize("I don't know", table))
}
