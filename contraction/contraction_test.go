package contraction_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nihei9/brilltag/contraction"
)

func TestExpand(t *testing.T) {
	table, err := contraction.Load("testdata/contractions.json")
	require.NoError(t, err)

	assert.Equal(t, []string{"you", "are"}, table.Expand("you're"))
	assert.Equal(t, []string{"it", "is"}, table.Expand("it's"))
	assert.Equal(t, []string{"It", "is"}, table.Expand("It's"))
	assert.Equal(t, []string{"chocolate"}, table.Expand("chocolate"))
	assert.Equal(t, []string{"Chocolate"}, table.Expand("Chocolate"))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := contraction.Load("testdata/does-not-exist.json")
	assert.Error(t, err)
}
