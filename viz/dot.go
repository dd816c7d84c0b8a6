package viz

import (
	"bytes"
	"fmt"

	"github.com/cloudlens/cloudlens/arch"
)

// DotGenerator renders the topology as a Graphviz digraph.
type DotGenerator struct{}

func (g *DotGenerator) Generate(topo arch.Topology) (string, error) {
	if err := topo.Validate(); err != nil {
		return "", err
	}
	var b bytes.Buffer
	b.WriteString(fmt.Sprintf("digraph %q {\n", topo.Name))
	b.WriteString("  rankdir=LR;\n")
	b.WriteString(fmt.Sprintf("  label=%q;\n", topo.Name))
	b.WriteString("  node [shape=box, style=filled, fontcolor=white];\n")

	for _, c := range topo.Components {
		b.WriteString(fmt.Sprintf("  %q [label=\"%s\\n(%s)\", fillcolor=%q];\n",
			c.ID, c.Label, c.Category, c.Category.Color()))
	}

	for _, conn := range topo.Connections {
		b.WriteString(fmt.Sprintf("  %q -> %q;\n", conn.From, conn.To))
	}
	b.WriteString("}\n")
	return b.String(), nil
}
