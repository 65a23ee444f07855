package symbolgraph

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraphRecordsMissingIDsOnce(t *testing.T) {
	crate, err := DecodeCrate(strings.NewReader(sampleDoc))
	require.NoError(t, err)

	graph := NewGraph(crate)

	assert.NotNil(t, graph.Item("0:1"))
	assert.Nil(t, graph.Item("9:9"))
	assert.Nil(t, graph.Item("9:9"))
	assert.Nil(t, graph.Item("8:8"))

	// First-seen order, each Id once regardless of lookup count.
	assert.Equal(t, []ID{"9:9", "8:8"}, graph.MissingIDs())
}

func TestGraphMissingIDsReturnsCopy(t *testing.T) {
	crate, err := DecodeCrate(strings.NewReader(sampleDoc))
	require.NoError(t, err)

	graph := NewGraph(crate)
	graph.Item("9:9")

	missing := graph.MissingIDs()
	missing[0] = "tampered"

	assert.Equal(t, []ID{"9:9"}, graph.MissingIDs())
}

func TestCratePathString(t *testing.T) {
	crate, err := DecodeCrate(strings.NewReader(sampleDoc))
	require.NoError(t, err)

	assert.Equal(t, "shared::Point", crate.PathString("0:1"))
	assert.Equal(t, "", crate.PathString("9:9"))
}

func TestGraphSummary(t *testing.T) {
	crate, err := DecodeCrate(strings.NewReader(sampleDoc))
	require.NoError(t, err)

	graph := NewGraph(crate)

	summary, ok := graph.Summary("0:1")
	require.True(t, ok)
	assert.Equal(t, []string{"shared", "Point"}, summary.Path)
	assert.Equal(t, "struct", summary.Kind)

	_, ok = graph.Summary("9:9")
	assert.False(t, ok)
}
