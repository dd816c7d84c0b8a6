// Package viz renders the architecture topology through several
// backends: a static raster diagram, an interactive browser graph,
// and text diagram markups (DOT, Mermaid).
package viz

import "github.com/cloudlens/cloudlens/arch"

// TextDiagramGenerator renders a topology to a text diagram markup.
type TextDiagramGenerator interface {
	Generate(topo arch.Topology) (string, error)
}

var (
	_ TextDiagramGenerator = (*DotGenerator)(nil)
	_ TextDiagramGenerator = (*MermaidGenerator)(nil)
)
