package viz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudlens/cloudlens/arch"
)

const geomEps = 1e-6

// onBorder reports whether (x, y) lies on the perimeter of the box.
func onBorder(b NodeBox, x, y float64) bool {
	within := func(v, lo, hi float64) bool { return v >= lo-geomEps && v <= hi+geomEps }
	onVertical := (approx(x, b.X) || approx(x, b.X+b.W)) && within(y, b.Y, b.Y+b.H)
	onHorizontal := (approx(y, b.Y) || approx(y, b.Y+b.H)) && within(x, b.X, b.X+b.W)
	return onVertical || onHorizontal
}

func approx(a, b float64) bool {
	d := a - b
	return d > -geomEps && d < geomEps
}

func TestLayoutCounts(t *testing.T) {
	topo := arch.Default()
	plan := Layout(topo)

	assert.Len(t, plan.Boxes, len(topo.Components))
	assert.Len(t, plan.Arrows, len(topo.Connections))
	assert.Len(t, plan.Legend, len(arch.Categories))
	assert.Positive(t, plan.Width)
	assert.Positive(t, plan.Height)
}

func TestLayoutOneBoxPerComponent(t *testing.T) {
	topo := arch.Default()
	plan := Layout(topo)

	seen := map[string]int{}
	for _, b := range plan.Boxes {
		seen[b.ID]++
		c, ok := topo.Lookup(b.ID)
		require.True(t, ok, "box %q has no component", b.ID)
		assert.Equal(t, c.Label, b.Label)
		assert.Equal(t, c.Category.Color(), b.Fill)
	}
	for _, c := range topo.Components {
		assert.Equal(t, 1, seen[c.ID], "component %q", c.ID)
	}
}

func TestLayoutArrowEndpointsOnBoxBorders(t *testing.T) {
	topo := arch.Default()
	plan := Layout(topo)

	boxes := map[string]NodeBox{}
	for _, b := range plan.Boxes {
		boxes[b.ID] = b
	}

	for _, a := range plan.Arrows {
		from, ok := boxes[a.From]
		require.True(t, ok, "arrow source %q", a.From)
		to, ok := boxes[a.To]
		require.True(t, ok, "arrow target %q", a.To)

		assert.True(t, onBorder(from, a.X1, a.Y1),
			"arrow %s->%s start (%.1f,%.1f) off source border", a.From, a.To, a.X1, a.Y1)
		assert.True(t, onBorder(to, a.X2, a.Y2),
			"arrow %s->%s end (%.1f,%.1f) off target border", a.From, a.To, a.X2, a.Y2)
	}
}

func TestLayoutBoxesInsideCanvas(t *testing.T) {
	plan := Layout(arch.Default())
	for _, b := range plan.Boxes {
		assert.GreaterOrEqual(t, b.X, 0.0)
		assert.GreaterOrEqual(t, b.Y, 0.0)
		assert.LessOrEqual(t, b.X+b.W, float64(plan.Width))
		assert.LessOrEqual(t, b.Y+b.H, float64(plan.Height))
	}
}

func TestLayoutSkipsDanglingConnections(t *testing.T) {
	// Layout itself tolerates unknown endpoints; Validate rejects them
	// before any renderer gets this far.
	topo := arch.Default()
	topo.Connections = append(topo.Connections, arch.Connection{From: "users", To: "mainframe"})
	plan := Layout(topo)
	assert.Len(t, plan.Arrows, len(topo.Connections)-1)
}
