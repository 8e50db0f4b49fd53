package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/alexanderramin/ganttflow/internal/domain"
)

// HTMLOptions controls the HTML page wrapping the SVG chart.
type HTMLOptions struct {
	Title string
	SVG   SVGOptions
}

// DefaultHTMLOptions returns the standard export page settings.
func DefaultHTMLOptions() HTMLOptions {
	return HTMLOptions{
		Title: "Project Gantt Chart",
		SVG:   DefaultSVGOptions(),
	}
}

// HTML renders a self-contained page: title, the three aggregate stats, and
// the embedded SVG chart. The page needs no external assets, so it can be
// saved and shared as a single file.
func HTML(g *domain.ChartGeometry, opts HTMLOptions) string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	fmt.Fprintf(&b, "<meta charset=\"utf-8\">\n<title>%s</title>\n", html.EscapeString(opts.Title))
	b.WriteString("<style>body{font-family:Arial,sans-serif;margin:2em}h1{text-align:center}.stats{display:flex;gap:2em;justify-content:center;margin-bottom:1em}.stats div{text-align:center}.stats b{display:block;font-size:1.6em}</style>\n")
	b.WriteString("</head>\n<body>\n")

	fmt.Fprintf(&b, "<h1>%s</h1>\n", html.EscapeString(opts.Title))
	b.WriteString("<div class=\"stats\">\n")
	fmt.Fprintf(&b, "<div><b>%d</b>Tasks</div>\n", g.Stats.RegularCount)
	fmt.Fprintf(&b, "<div><b>%d</b>Milestones</div>\n", g.Stats.MilestoneCount)
	fmt.Fprintf(&b, "<div><b>%d</b>Days</div>\n", g.Stats.SpanDays)
	b.WriteString("</div>\n")

	b.WriteString(SVG(g, opts.SVG))

	b.WriteString("</body>\n</html>\n")
	return b.String()
}
