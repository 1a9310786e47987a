package contextual_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ctxrule "github.com/nihei9/brilltag/rule/contextual"
	"github.com/nihei9/brilltag/tag"
)

func writeRuleFile(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.txt")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestParseFileBucketsBySourceTag(t *testing.T) {
	path := writeRuleFile(t, "NN VB PREVTAG TO\nNN JJ NEXTTAG NN\nVB NN PREVTAG DT\n")
	rules, err := ctxrule.ParseFile(path)
	require.NoError(t, err)

	require.Len(t, rules[tag.NN], 2)
	assert.Equal(t, ctxrule.PREVTAG, rules[tag.NN][0].PredicateID)
	assert.Equal(t, ctxrule.NEXTTAG, rules[tag.NN][1].PredicateID)
	require.Len(t, rules[tag.VB], 1)
	assert.Equal(t, tag.NN, rules[tag.VB][0].TargetTag)
}

func TestParseFileSkipsBadTagsSilently(t *testing.T) {
	path := writeRuleFile(t, "BOGUS VB PREVTAG TO\nNN BOGUS PREVTAG TO\nNN VB PREVTAG TO\n")
	rules, err := ctxrule.ParseFile(path)
	require.NoError(t, err)
	require.Len(t, rules[tag.NN], 1)
}

func TestParseFileUnresolvablePredicateIsFatal(t *testing.T) {
	path := writeRuleFile(t, "NN VB BOGUSPRED TO\n")
	_, err := ctxrule.ParseFile(path)
	require.Error(t, err)
}

func TestParseFileSkipsBlankLines(t *testing.T) {
	path := writeRuleFile(t, "NN VB PREVTAG TO\n\n   \nVB NN NEXTTAG DT\n")
	rules, err := ctxrule.ParseFile(path)
	require.NoError(t, err)
	assert.Len(t, rules[tag.NN], 1)
	assert.Len(t, rules[tag.VB], 1)
}

func TestParseFileTooShortLineIsSkipped(t *testing.T) {
	path := writeRuleFile(t, "NN VB\nNN VB PREVTAG TO\n")
	rules, err := ctxrule.ParseFile(path)
	require.NoError(t, err)
	assert.Len(t, rules[tag.NN], 1)
}

func TestParseFileUnreadableIsFatal(t *testing.T) {
	_, err := ctxrule.ParseFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}
