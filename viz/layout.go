package viz

import (
	"math"

	"github.com/cloudlens/cloudlens/arch"
)

// Canvas constants for the static diagram. Component boxes are
// declared on a 10x8 canvas with the origin at the bottom-left; the
// raster output maps that onto pixels with the origin at the top-left.
const (
	canvasUnitsW = 10.0
	canvasUnitsH = 8.0
	unitPx       = 96.0

	marginLeft   = 20.0
	marginTop    = 60.0
	marginRight  = 180.0
	marginBottom = 30.0
)

// NodeBox is a component rectangle in pixel coordinates.
type NodeBox struct {
	ID    string
	Label string
	X     float64
	Y     float64
	W     float64
	H     float64
	Fill  string
}

// ArrowLine is a directed connection arrow in pixel coordinates. The
// endpoints are edge midpoints of the source and target boxes, not
// hand-maintained literals.
type ArrowLine struct {
	From string
	To   string
	X1   float64
	Y1   float64
	X2   float64
	Y2   float64
}

// LegendEntry is one category swatch in the diagram legend.
type LegendEntry struct {
	Label string
	Color string
	X     float64
	Y     float64
}

// Frame is the dashed cloud boundary rectangle.
type Frame struct {
	X     float64
	Y     float64
	W     float64
	H     float64
	Label string
}

// Plan is the fully computed drawing plan for the static diagram.
// It is pure data; a render backend only has to paint it.
type Plan struct {
	Width  int
	Height int
	Title  string
	Frame  Frame
	Boxes  []NodeBox
	Arrows []ArrowLine
	Legend []LegendEntry
}

// Center returns the box's center point.
func (b NodeBox) Center() (float64, float64) {
	return b.X + b.W/2, b.Y + b.H/2
}

// toPxX maps a canvas x coordinate to pixels.
func toPxX(x float64) float64 { return marginLeft + x*unitPx }

// toPxY maps a canvas y coordinate to pixels, flipping the axis.
func toPxY(y float64) float64 { return marginTop + (canvasUnitsH-y)*unitPx }

// edgeMidpoints returns the four edge midpoints of a rect in canvas units.
func edgeMidpoints(r arch.Rect) [4]arch.Point {
	return [4]arch.Point{
		{X: r.X + r.W/2, Y: r.Y},         // bottom
		{X: r.X + r.W/2, Y: r.Y + r.H},   // top
		{X: r.X, Y: r.Y + r.H/2},         // left
		{X: r.X + r.W, Y: r.Y + r.H/2},   // right
	}
}

// nearestAnchors picks the pair of edge midpoints (one on each rect)
// with minimal separation. This replaces the original hand-tuned
// arrow coordinates with geometry derived from the component boxes.
func nearestAnchors(from, to arch.Rect) (arch.Point, arch.Point) {
	fromPts := edgeMidpoints(from)
	toPts := edgeMidpoints(to)
	best := math.Inf(1)
	var bf, bt arch.Point
	for _, f := range fromPts {
		for _, t := range toPts {
			dx, dy := t.X-f.X, t.Y-f.Y
			if d := dx*dx + dy*dy; d < best {
				best = d
				bf, bt = f, t
			}
		}
	}
	return bf, bt
}

// Layout computes the drawing plan for a topology: one box per
// component, one arrow per connection and one legend entry per
// category. It assumes a validated topology; unknown connection
// endpoints are skipped (Validate catches them upstream).
func Layout(topo arch.Topology) Plan {
	plan := Plan{
		Width:  int(marginLeft + canvasUnitsW*unitPx + marginRight),
		Height: int(marginTop + canvasUnitsH*unitPx + marginBottom),
		Title:  "Simple Cloud Architecture Diagram",
		Frame: Frame{
			X:     toPxX(0.5),
			Y:     toPxY(7),
			W:     9 * unitPx,
			H:     6 * unitPx,
			Label: "Cloud Infrastructure",
		},
	}

	byID := make(map[string]arch.Component, len(topo.Components))
	for _, c := range topo.Components {
		byID[c.ID] = c
		plan.Boxes = append(plan.Boxes, NodeBox{
			ID:    c.ID,
			Label: c.Label,
			X:     toPxX(c.Box.X),
			Y:     toPxY(c.Box.Y + c.Box.H),
			W:     c.Box.W * unitPx,
			H:     c.Box.H * unitPx,
			Fill:  c.Category.Color(),
		})
	}

	for _, conn := range topo.Connections {
		from, okFrom := byID[conn.From]
		to, okTo := byID[conn.To]
		if !okFrom || !okTo {
			continue
		}
		f, t := nearestAnchors(from.Box, to.Box)
		plan.Arrows = append(plan.Arrows, ArrowLine{
			From: conn.From,
			To:   conn.To,
			X1:   toPxX(f.X),
			Y1:   toPxY(f.Y),
			X2:   toPxX(t.X),
			Y2:   toPxY(t.Y),
		})
	}

	legendX := marginLeft + canvasUnitsW*unitPx + 30
	for i, cat := range arch.Categories {
		plan.Legend = append(plan.Legend, LegendEntry{
			Label: cat.Title(),
			Color: cat.Color(),
			X:     legendX,
			Y:     marginTop + float64(i)*26,
		})
	}
	return plan
}
