// Package report orchestrates the rendering pipeline: the static
// raster diagram, the interactive graph, and the HTML document that
// embeds it.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/pkg/browser"

	"github.com/cloudlens/cloudlens/arch"
	"github.com/cloudlens/cloudlens/viz"
)

const (
	// StaticImageName is the raster file written under the temp dir.
	StaticImageName = "cloud_architecture_static.png"
	// PageName is the HTML document written under the output dir.
	PageName = "index.html"
)

// Generator sequences both render branches and materializes the
// outputs. Zero values fall back to the defaults described on each
// field; the injection points exist for tests.
type Generator struct {
	Topology arch.Topology

	OutDir  string                  // HTML output dir; default "docs"
	TempDir string                  // raster output dir; default os.TempDir()
	Open    func(path string) error // browser launch; default browser.OpenFile
	Now     func() time.Time        // page timestamp; default time.Now
	Stdout  io.Writer               // status lines; default os.Stdout
}

func (g *Generator) outDir() string {
	if g.OutDir != "" {
		return g.OutDir
	}
	return "docs"
}

func (g *Generator) tempDir() string {
	if g.TempDir != "" {
		return g.TempDir
	}
	return os.TempDir()
}

func (g *Generator) open(path string) error {
	if g.Open != nil {
		return g.Open(path)
	}
	return browser.OpenFile(path)
}

func (g *Generator) now() time.Time {
	if g.Now != nil {
		return g.Now()
	}
	return time.Now()
}

func (g *Generator) stdout() io.Writer {
	if g.Stdout != nil {
		return g.Stdout
	}
	return os.Stdout
}

// Run executes the pipeline. Steps are sequential and fail-fast: the
// first error aborts the remaining steps and nothing already written
// is rolled back. Only the final browser launch is best-effort.
func (g *Generator) Run() error {
	out := g.stdout()
	step := color.New(color.FgCyan)
	done := color.New(color.FgGreen)
	warn := color.New(color.FgYellow)

	step.Fprintln(out, "Creating cloud architecture visualization...")

	if err := g.Topology.Validate(); err != nil {
		return err
	}

	step.Fprintln(out, "Generating static diagram...")
	cfg := viz.DefaultRasterConfig()
	png, err := viz.NewRasterGenerator(cfg).Generate(g.Topology)
	if err != nil {
		return &RenderError{Stage: "static diagram", Err: err}
	}
	staticPath := filepath.Join(g.tempDir(), StaticImageName)
	if err := os.WriteFile(staticPath, png, 0o644); err != nil {
		return &WriteError{Path: staticPath, Err: err}
	}
	done.Fprintf(out, "Static diagram saved to %s (PNG, %.0f DPI)\n", staticPath, cfg.DPI)

	step.Fprintln(out, "Generating interactive diagram...")
	fig, err := viz.NewGraphGenerator().Generate(g.Topology)
	if err != nil {
		return &RenderError{Stage: "interactive diagram", Err: err}
	}
	element, script := fig.Snippet()

	page, err := renderPage(g.Topology, element, script, g.now())
	if err != nil {
		return &RenderError{Stage: "html page", Err: err}
	}

	if err := os.MkdirAll(g.outDir(), 0o755); err != nil {
		return &WriteError{Path: g.outDir(), Err: err}
	}
	pagePath := filepath.Join(g.outDir(), PageName)
	if err := os.WriteFile(pagePath, []byte(page), 0o644); err != nil {
		return &WriteError{Path: pagePath, Err: err}
	}
	done.Fprintf(out, "Interactive diagram saved to %s\n", pagePath)

	step.Fprintln(out, "Opening visualization in browser...")
	if err := g.open(pagePath); err != nil {
		// Best-effort: a headless host must not fail the run.
		warn.Fprintf(out, "Could not open browser: %v\n", err)
	}

	done.Fprintln(out, "Visualization created successfully")
	fmt.Fprintf(out, "  static image: %s\n", staticPath)
	fmt.Fprintf(out, "  report page:  %s\n", pagePath)
	return nil
}
