package viz

import (
	"bytes"
	"fmt"

	"github.com/cloudlens/cloudlens/arch"
)

// MermaidGenerator renders the topology as a Mermaid flowchart.
type MermaidGenerator struct{}

func (g *MermaidGenerator) Generate(topo arch.Topology) (string, error) {
	if err := topo.Validate(); err != nil {
		return "", err
	}
	var b bytes.Buffer
	b.WriteString("graph TD;\n")
	b.WriteString(fmt.Sprintf("  subgraph %s\n", topo.Name))

	for _, c := range topo.Components {
		b.WriteString(fmt.Sprintf("    %s[\"%s (%s)\"];\n", c.ID, c.Label, c.Category))
	}

	for _, conn := range topo.Connections {
		b.WriteString(fmt.Sprintf("    %s --> %s;\n", conn.From, conn.To))
	}
	b.WriteString("  end\n")
	return b.String(), nil
}
