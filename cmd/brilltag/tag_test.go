package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagCommandAgainstRealDataFiles(t *testing.T) {
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{
		"tag",
		"--lexicon", "../../data/lexicon.txt",
		"--contractions", "../../data/contractions.json",
		"--lexical-rules", "../../data/rulefile_lexical.txt",
		"--contextual-rules", "../../data/rulefile_contextual.txt",
		"The quick brown fox jumps",
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "The/DT")
	assert.Contains(t, out.String(), "fox/NN")
}
