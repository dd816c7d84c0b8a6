//go:build e2e

package report

import (
	"context"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/stretchr/testify/require"

	"github.com/cloudlens/cloudlens/arch"
)

// Requires a local Chrome/Chromium; run with -tags e2e.
func TestReportPageRendersInBrowser(t *testing.T) {
	g := &Generator{
		Topology: arch.Default(),
		OutDir:   t.TempDir(),
		TempDir:  t.TempDir(),
		Open:     func(string) error { return nil },
		Stdout:   io.Discard,
	}
	require.NoError(t, g.Run())

	pagePath, err := filepath.Abs(filepath.Join(g.OutDir, PageName))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
	)
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	var title string
	var canvasCount int
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("file://"+pagePath),
		chromedp.WaitReady("#cloudlens-graph", chromedp.ByID),
		chromedp.Sleep(2*time.Second),
		chromedp.Title(&title),
		chromedp.Evaluate(`document.querySelectorAll("#cloudlens-graph canvas, #cloudlens-graph div").length`, &canvasCount),
	)
	if err != nil {
		t.Fatalf("chromedp: %v", err)
	}

	require.Equal(t, "Cloud Architecture Visualization", title)
	require.Greater(t, canvasCount, 0, "echarts did not mount inside the chart container")
}
