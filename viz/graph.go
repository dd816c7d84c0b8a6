package viz

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/cloudlens/cloudlens/arch"
)

// graphMaxY flips the model's bottom-left origin onto the screen's
// top-left origin used by the chart coordinate space.
const graphMaxY = 7.0

// GraphFigure wraps the interactive graph chart together with the
// node and link tables it was built from.
type GraphFigure struct {
	Nodes []opts.GraphNode
	Links []opts.GraphLink

	chart *charts.Graph
}

// Snippet renders the embeddable markup: the chart container element
// and the init script. The page embedding it must load the echarts
// runtime.
func (f *GraphFigure) Snippet() (element, script string) {
	s := f.chart.RenderSnippet()
	return string(s.Element), string(s.Script)
}

// Render writes a standalone HTML page for the figure.
func (f *GraphFigure) Render(w io.Writer) error {
	return f.chart.Render(w)
}

// GraphGenerator builds the interactive architecture graph. Node
// positions come straight from the model; there is no computed layout.
type GraphGenerator struct {
	Width   string
	Height  string
	ChartID string
}

// NewGraphGenerator returns a generator with the fixed report dimensions.
// The chart ID is pinned so repeated runs emit identical markup.
func NewGraphGenerator() *GraphGenerator {
	return &GraphGenerator{Width: "960px", Height: "640px", ChartID: "cloudlens-graph"}
}

// Generate validates the topology and builds the figure: one marker
// per component (colored and sized from the model, hover label shown
// inside) and one directed edge per connection.
func (g *GraphGenerator) Generate(topo arch.Topology) (*GraphFigure, error) {
	if err := topo.Validate(); err != nil {
		return nil, err
	}

	nodes := make([]opts.GraphNode, 0, len(topo.Components))
	for _, c := range topo.Components {
		nodes = append(nodes, opts.GraphNode{
			Name:       c.Label,
			X:          float32(c.Pos.X * 100),
			Y:          float32((graphMaxY - c.Pos.Y) * 100),
			SymbolSize: c.Marker,
			ItemStyle:  &opts.ItemStyle{Color: c.Category.Color()},
		})
	}

	links := make([]opts.GraphLink, 0, len(topo.Connections))
	for _, conn := range topo.Connections {
		from, okFrom := topo.Lookup(conn.From)
		to, okTo := topo.Lookup(conn.To)
		if !okFrom || !okTo {
			// Unreachable after Validate; kept for callers that skip it.
			return nil, &arch.ValidationError{
				Subject: conn.From + " -> " + conn.To,
				Reason:  "connection endpoint is not a declared component",
			}
		}
		links = append(links, opts.GraphLink{Source: from.Label, Target: to.Label})
	}

	graph := charts.NewGraph()
	graph.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:   g.Width,
			Height:  g.Height,
			ChartID: g.ChartID,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Interactive Cloud Architecture Visualization",
			Subtitle: "Click and drag to explore the architecture",
			Left:     "center",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
	)
	graph.AddSeries("architecture", nodes, links,
		charts.WithGraphChartOpts(opts.GraphChart{
			Layout:         "none",
			Roam:           opts.Bool(true),
			EdgeSymbol:     []string{"none", "arrow"},
			EdgeSymbolSize: 8,
		}),
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "inside", Color: "#ffffff"}),
		charts.WithLineStyleOpts(opts.LineStyle{Color: "#888888", Width: 2}),
	)

	return &GraphFigure{Nodes: nodes, Links: links, chart: graph}, nil
}
