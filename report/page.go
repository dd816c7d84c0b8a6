package report

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/cloudlens/cloudlens/arch"
)

// echartsAsset is the runtime loaded by the generated page; the chart
// snippet's init script expects the global echarts object.
const echartsAsset = "https://go-echarts.github.io/go-echarts-assets/assets/echarts.min.js"

// LegendItem is one entry in the generated component description list.
type LegendItem struct {
	Label string
	Role  string
}

// PageData feeds the HTML document template.
type PageData struct {
	Title        string
	GeneratedAt  string
	Legend       []LegendItem
	ChartElement template.HTML
	ChartScript  template.HTML
	AssetURL     string
}

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
    <title>{{.Title}}</title>
    <script src="{{.AssetURL}}"></script>
    <style>
        body {
            font-family: Arial, sans-serif;
            margin: 20px;
            background-color: #f5f5f5;
        }
        .header {
            text-align: center;
            color: #333;
            margin-bottom: 20px;
        }
        .info {
            background-color: white;
            padding: 15px;
            border-radius: 5px;
            margin-bottom: 20px;
            box-shadow: 0 2px 5px rgba(0,0,0,0.1);
        }
        .chart-container {
            background-color: white;
            border-radius: 5px;
            box-shadow: 0 2px 5px rgba(0,0,0,0.1);
            padding: 20px;
        }
    </style>
</head>
<body>
    <div class="header">
        <h1>{{.Title}}</h1>
        <p>Generated on {{.GeneratedAt}}</p>
    </div>

    <div class="info">
        <h3>Architecture Components:</h3>
        <ul>
{{- range .Legend}}
            <li><strong>{{.Label}}:</strong> {{.Role}}</li>
{{- end}}
        </ul>
    </div>

    <div class="chart-container">
        {{.ChartElement}}
        {{.ChartScript}}
    </div>
</body>
</html>
`))

// buildLegend derives the component description list from the model,
// collapsing components that share a role (the two web servers) into
// one pluralized entry.
func buildLegend(topo arch.Topology) []LegendItem {
	var items []LegendItem
	seenRole := map[string]int{}
	for _, c := range topo.Components {
		if i, ok := seenRole[c.Role]; ok {
			if !strings.HasSuffix(items[i].Label, "s") {
				items[i].Label = commonPrefix(items[i].Label, c.Label) + "s"
			}
			continue
		}
		seenRole[c.Role] = len(items)
		items = append(items, LegendItem{Label: c.Label, Role: c.Role})
	}
	return items
}

func commonPrefix(a, b string) string {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return strings.TrimSpace(a[:i])
}

// renderPage composes the full HTML document around the chart snippet.
func renderPage(topo arch.Topology, element, script string, now time.Time) (string, error) {
	var b strings.Builder
	err := pageTmpl.Execute(&b, PageData{
		Title:        "Cloud Architecture Visualization",
		GeneratedAt:  now.Format("2006-01-02 15:04:05"),
		Legend:       buildLegend(topo),
		ChartElement: template.HTML(element),
		ChartScript:  template.HTML(script),
		AssetURL:     echartsAsset,
	})
	if err != nil {
		return "", fmt.Errorf("execute page template: %w", err)
	}
	return b.String(), nil
}
