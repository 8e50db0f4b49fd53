// Package render turns a ChartGeometry into concrete output surfaces: a
// standalone SVG document, a self-contained HTML page, and a plain-terminal
// chart. Renderers only read the geometry; they never reach back into the
// pipeline.
package render

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/alexanderramin/ganttflow/internal/domain"
)

// SVGOptions controls the pixel layout of the SVG renderer. The zero value
// is not usable; start from DefaultSVGOptions.
type SVGOptions struct {
	Width       int
	RowHeight   int
	MarginLeft  int // label gutter
	MarginTop   int
	MarginBot   int
	MarginRight int
	FontFamily  string
	FontSize    int

	ConnectorColor string
	MilestoneColor string
	GridColor      string
}

// DefaultSVGOptions mirrors the reference chart: wide canvas, 25px rows,
// light gray grid, red milestone diamonds.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		Width:          1400,
		RowHeight:      25,
		MarginLeft:     320,
		MarginTop:      50,
		MarginBot:      40,
		MarginRight:    30,
		FontFamily:     "Arial, sans-serif",
		FontSize:       12,
		ConnectorColor: "grey",
		MilestoneColor: "red",
		GridColor:      "lightgray",
	}
}

// SVG renders the geometry as a standalone SVG document. Rows are drawn top
// to bottom in position order; the x axis is linear in time over the padded
// axis range.
func SVG(g *domain.ChartGeometry, opts SVGOptions) string {
	height := opts.MarginTop + len(g.Rows)*opts.RowHeight + opts.MarginBot
	if height < 200 {
		height = 200
	}
	plotWidth := opts.Width - opts.MarginLeft - opts.MarginRight

	span := g.Axis.End.Sub(g.Axis.Start)
	xOf := func(t time.Time) float64 {
		if span <= 0 {
			return float64(opts.MarginLeft)
		}
		frac := float64(t.Sub(g.Axis.Start)) / float64(span)
		return float64(opts.MarginLeft) + frac*float64(plotWidth)
	}
	yOf := func(position int) float64 {
		return float64(opts.MarginTop) + (float64(position)+0.5)*float64(opts.RowHeight)
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" font-family="%s" font-size="%d">`+"\n",
		opts.Width, height, opts.FontFamily, opts.FontSize)
	b.WriteString(`<defs><marker id="dep-arrow" markerWidth="8" markerHeight="8" refX="6" refY="3" orient="auto"><path d="M0,0 L6,3 L0,6 Z" fill="` + opts.ConnectorColor + `"/></marker></defs>` + "\n")
	fmt.Fprintf(&b, `<rect x="0" y="0" width="%d" height="%d" fill="white"/>`+"\n", opts.Width, height)

	writeGrid(&b, g, opts, height, xOf)
	writeRowLabels(&b, g, opts, yOf)

	for _, bar := range g.Bars {
		x0 := xOf(bar.Start)
		x1 := xOf(bar.Finish)
		h := bar.HalfHeight * 2 * float64(opts.RowHeight)
		y := yOf(bar.Position) - h/2
		fmt.Fprintf(&b, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"><title>%s</title></rect>`+"\n",
			x0, y, x1-x0, h, bar.Color, barTitle(bar))
	}

	for _, c := range g.Connectors {
		fmt.Fprintf(&b, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="1" stroke-dasharray="2,3" marker-end="url(#dep-arrow)"/>`+"\n",
			xOf(c.FromDate), yOf(c.FromPosition), xOf(c.ToDate), yOf(c.ToPosition), opts.ConnectorColor)
	}

	for _, m := range g.Milestones {
		writeDiamond(&b, xOf(m.Date), yOf(m.Position), 7, opts.MilestoneColor, m)
	}

	if len(g.Milestones) > 0 {
		writeLegend(&b, opts)
	}

	b.WriteString("</svg>\n")
	return b.String()
}

func writeGrid(b *strings.Builder, g *domain.ChartGeometry, opts SVGOptions, height int, xOf func(time.Time) float64) {
	if g.Axis.End.After(g.Axis.Start) {
		const ticks = 6
		span := g.Axis.End.Sub(g.Axis.Start)
		for i := 0; i <= ticks; i++ {
			t := g.Axis.Start.Add(span * time.Duration(i) / ticks)
			x := xOf(t)
			fmt.Fprintf(b, `<line x1="%.1f" y1="%d" x2="%.1f" y2="%d" stroke="%s" stroke-width="1"/>`+"\n",
				x, opts.MarginTop, x, height-opts.MarginBot, opts.GridColor)
			fmt.Fprintf(b, `<text x="%.1f" y="%d" text-anchor="middle">%s</text>`+"\n",
				x, height-opts.MarginBot+opts.FontSize+4, t.Format("2006-01-02"))
		}
	}
	for i := range g.Rows {
		y := opts.MarginTop + i*opts.RowHeight
		fmt.Fprintf(b, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-width="1"/>`+"\n",
			opts.MarginLeft, y, opts.Width-opts.MarginRight, y, opts.GridColor)
	}
}

func writeRowLabels(b *strings.Builder, g *domain.ChartGeometry, opts SVGOptions, yOf func(int) float64) {
	for _, r := range g.Rows {
		// xml:space keeps the leading indent that carries hierarchy depth.
		fmt.Fprintf(b, `<text x="%d" y="%.1f" text-anchor="end" dominant-baseline="middle" xml:space="preserve">%s</text>`+"\n",
			opts.MarginLeft-8, yOf(r.Position), html.EscapeString(r.Label))
	}
}

func writeDiamond(b *strings.Builder, x, y, r float64, color string, m domain.MilestoneMarker) {
	fmt.Fprintf(b, `<polygon points="%.1f,%.1f %.1f,%.1f %.1f,%.1f %.1f,%.1f" fill="%s" stroke="darkslategrey" stroke-width="1"><title>Milestone: %s (%s)</title></polygon>`+"\n",
		x, y-r, x+r, y, x, y+r, x-r, y, color,
		html.EscapeString(m.Name), m.Date.Format("2006-01-02"))
}

func writeLegend(b *strings.Builder, opts SVGOptions) {
	x := float64(opts.Width - opts.MarginRight - 110)
	y := float64(opts.MarginTop) / 2
	fmt.Fprintf(b, `<polygon points="%.1f,%.1f %.1f,%.1f %.1f,%.1f %.1f,%.1f" fill="%s" stroke="darkslategrey" stroke-width="1"/>`+"\n",
		x, y-6, x+6, y, x, y+6, x-6, y, opts.MilestoneColor)
	fmt.Fprintf(b, `<text x="%.1f" y="%.1f" dominant-baseline="middle">Milestones</text>`+"\n", x+12, y)
}

func barTitle(bar domain.Bar) string {
	return fmt.Sprintf("%s: %s → %s",
		html.EscapeString(bar.Name),
		bar.Start.Format("2006-01-02"),
		bar.Finish.Format("2006-01-02"))
}
