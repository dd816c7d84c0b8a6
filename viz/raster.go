package viz

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/cloudlens/cloudlens/arch"
)

// RasterConfig controls the static PNG export.
type RasterConfig struct {
	DPI       float64
	FontSize  float64 // component labels, in points
	TitleSize float64
}

// DefaultRasterConfig returns the settings used for print export.
func DefaultRasterConfig() RasterConfig {
	return RasterConfig{DPI: 150, FontSize: 8, TitleSize: 14}
}

// RasterGenerator renders the static architecture diagram to PNG.
type RasterGenerator struct {
	config RasterConfig
}

func NewRasterGenerator(config RasterConfig) *RasterGenerator {
	return &RasterGenerator{config: config}
}

// Generate validates the topology, computes the drawing plan and
// paints it. It returns the encoded PNG bytes; writing them anywhere
// is the caller's concern.
func (g *RasterGenerator) Generate(topo arch.Topology) ([]byte, error) {
	if err := topo.Validate(); err != nil {
		return nil, err
	}
	plan := Layout(topo)

	r, err := chart.PNG(plan.Width, plan.Height)
	if err != nil {
		return nil, fmt.Errorf("create raster renderer: %w", err)
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		return nil, fmt.Errorf("load default font: %w", err)
	}
	r.SetDPI(g.config.DPI)
	r.SetFont(font)

	// Background.
	fillRect(r, 0, 0, float64(plan.Width), float64(plan.Height), drawing.ColorWhite)

	g.paintFrame(r, plan.Frame)
	for _, a := range plan.Arrows {
		g.paintArrow(r, a)
	}
	for _, b := range plan.Boxes {
		g.paintBox(r, b)
	}
	g.paintTitle(r, plan)
	g.paintLegend(r, plan.Legend)

	var buf bytes.Buffer
	if err := r.Save(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func (g *RasterGenerator) paintFrame(r chart.Renderer, f Frame) {
	r.SetFillColor(hexColor("#E0FFFF").WithAlpha(80))
	r.SetStrokeColor(hexColor("#ADD8E6"))
	r.SetStrokeWidth(2)
	r.SetStrokeDashArray([]float64{8, 6})
	rectPath(r, f.X, f.Y, f.W, f.H)
	r.FillStroke()
	r.SetStrokeDashArray(nil)

	r.SetFontColor(hexColor("#00008B"))
	r.SetFontSize(g.config.FontSize + 4)
	drawCenteredText(r, f.Label, f.X+f.W/2, f.Y-0.35*unitPx)
}

func (g *RasterGenerator) paintBox(r chart.Renderer, b NodeBox) {
	r.SetFillColor(hexColor(b.Fill).WithAlpha(178))
	r.SetStrokeColor(drawing.ColorBlack)
	r.SetStrokeWidth(2)
	rectPath(r, b.X, b.Y, b.W, b.H)
	r.FillStroke()

	r.SetFontColor(drawing.ColorWhite)
	r.SetFontSize(g.config.FontSize)
	cx, cy := b.Center()
	drawCenteredText(r, b.Label, cx, cy)
}

// paintArrow draws the connection line plus a filled head at the
// target end, shortened so the head does not overrun the box border.
func (g *RasterGenerator) paintArrow(r chart.Renderer, a ArrowLine) {
	const headLen, headHalf = 12.0, 5.0

	dx, dy := a.X2-a.X1, a.Y2-a.Y1
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return
	}
	ux, uy := dx/dist, dy/dist
	baseX, baseY := a.X2-ux*headLen, a.Y2-uy*headLen

	gray := hexColor("#A9A9A9")
	r.SetStrokeColor(gray)
	r.SetStrokeWidth(2)
	r.MoveTo(int(a.X1), int(a.Y1))
	r.LineTo(int(baseX), int(baseY))
	r.Stroke()

	// Perpendicular for the head's base corners.
	px, py := -uy, ux
	r.SetFillColor(gray)
	r.MoveTo(int(a.X2), int(a.Y2))
	r.LineTo(int(baseX+px*headHalf), int(baseY+py*headHalf))
	r.LineTo(int(baseX-px*headHalf), int(baseY-py*headHalf))
	r.Close()
	r.Fill()
}

func (g *RasterGenerator) paintTitle(r chart.Renderer, plan Plan) {
	r.SetFontColor(drawing.ColorBlack)
	r.SetFontSize(g.config.TitleSize)
	drawCenteredText(r, plan.Title, float64(plan.Width)/2, marginTop/2)
}

func (g *RasterGenerator) paintLegend(r chart.Renderer, entries []LegendEntry) {
	const swatch = 14.0
	r.SetFontSize(g.config.FontSize)
	for _, e := range entries {
		r.SetFillColor(hexColor(e.Color))
		r.SetStrokeColor(drawing.ColorBlack)
		r.SetStrokeWidth(1)
		rectPath(r, e.X, e.Y, swatch, swatch)
		r.FillStroke()

		r.SetFontColor(drawing.ColorBlack)
		tb := r.MeasureText(e.Label)
		r.Text(e.Label, int(e.X+swatch+8), int(e.Y+swatch/2)+tb.Height()/2)
	}
}

func rectPath(r chart.Renderer, x, y, w, h float64) {
	r.MoveTo(int(x), int(y))
	r.LineTo(int(x+w), int(y))
	r.LineTo(int(x+w), int(y+h))
	r.LineTo(int(x), int(y+h))
	r.Close()
}

func fillRect(r chart.Renderer, x, y, w, h float64, c drawing.Color) {
	r.SetFillColor(c)
	rectPath(r, x, y, w, h)
	r.Fill()
}

// drawCenteredText draws text centered horizontally and vertically
// around the given point.
func drawCenteredText(r chart.Renderer, body string, cx, cy float64) {
	tb := r.MeasureText(body)
	r.Text(body, int(cx)-tb.Width()/2, int(cy)+tb.Height()/2)
}

func hexColor(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}
