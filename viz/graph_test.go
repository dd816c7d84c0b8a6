package viz

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudlens/cloudlens/arch"
)

func TestGraphGenerateNodesAndLinks(t *testing.T) {
	topo := arch.Default()
	fig, err := NewGraphGenerator().Generate(topo)
	require.NoError(t, err)

	require.Len(t, fig.Nodes, len(topo.Components))
	require.Len(t, fig.Links, len(topo.Connections))

	labels := map[string]bool{}
	for _, c := range topo.Components {
		labels[c.Label] = true
	}

	seenNodes := map[string]int{}
	for _, n := range fig.Nodes {
		seenNodes[n.Name]++
		assert.True(t, labels[n.Name], "unexpected node %q", n.Name)
		require.NotNil(t, n.ItemStyle)
		assert.NotEmpty(t, n.ItemStyle.Color)
	}
	for label := range labels {
		// Both web servers share a role but not a label, so every
		// component maps to exactly one node.
		assert.Equal(t, 1, seenNodes[label], "node %q", label)
	}

	type pair struct{ from, to string }
	seenLinks := map[pair]int{}
	for _, l := range fig.Links {
		from, to := l.Source.(string), l.Target.(string)
		assert.True(t, labels[from], "link source %q", from)
		assert.True(t, labels[to], "link target %q", to)
		seenLinks[pair{from, to}]++
	}
	for _, conn := range topo.Connections {
		from, _ := topo.Lookup(conn.From)
		to, _ := topo.Lookup(conn.To)
		assert.Equal(t, 1, seenLinks[pair{from.Label, to.Label}],
			"link %s -> %s", conn.From, conn.To)
	}
}

func TestGraphGenerateRejectsUnknownEndpoint(t *testing.T) {
	topo := arch.Default()
	topo.Connections = append(topo.Connections, arch.Connection{From: "cdn", To: "mainframe"})

	_, err := NewGraphGenerator().Generate(topo)
	require.Error(t, err)

	var verr *arch.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Error(), "mainframe")
}

func TestGraphSnippet(t *testing.T) {
	fig, err := NewGraphGenerator().Generate(arch.Default())
	require.NoError(t, err)

	element, script := fig.Snippet()
	assert.Contains(t, element, "cloudlens-graph")
	assert.Contains(t, script, "echarts")
	assert.Contains(t, script, "Load Balancer")

	// Pinned chart ID keeps repeated renders byte-identical.
	element2, script2 := fig.Snippet()
	assert.Equal(t, element, element2)
	assert.Equal(t, script, script2)
}
