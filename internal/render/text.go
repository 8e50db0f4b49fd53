package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/ganttflow/internal/domain"
)

// Terminal styles for the text chart. Bar colors map the SVG palette onto
// terminal colors.
var (
	styleAxis      = lipgloss.NewStyle().Foreground(lipgloss.Color("#928374"))
	styleMilestone = lipgloss.NewStyle().Foreground(lipgloss.Color("#fb4934"))

	barStyles = map[string]lipgloss.Style{
		"black":     lipgloss.NewStyle().Foreground(lipgloss.Color("#ebdbb2")).Bold(true),
		"dimgray":   lipgloss.NewStyle().Foreground(lipgloss.Color("#a89984")),
		"darkgray":  lipgloss.NewStyle().Foreground(lipgloss.Color("#928374")),
		"steelblue": lipgloss.NewStyle().Foreground(lipgloss.Color("#83a598")),
	}
	barStyleDefault = lipgloss.NewStyle().Foreground(lipgloss.Color("#83a598"))
)

// laneCell is one painted character of a chart lane.
type laneCell struct {
	glyph string
	color string // bar color name, or "milestone"
}

// Text renders the geometry as a terminal chart: a label column followed by
// one scaled lane per display row. Dependency connectors are not drawn in
// the terminal view; use the SVG or HTML output for those.
func Text(g *domain.ChartGeometry, width int) string {
	if len(g.Rows) == 0 {
		return styleAxis.Render("(no visible tasks)") + "\n"
	}
	if width < 40 {
		width = 40
	}

	labelW := 0
	for _, r := range g.Rows {
		if w := lipgloss.Width(r.Label); w > labelW {
			labelW = w
		}
	}
	if half := width / 2; labelW > half {
		labelW = half
	}
	laneW := width - labelW - 3
	if laneW < 20 {
		laneW = 20
	}

	span := g.Axis.End.Sub(g.Axis.Start)
	cellOf := func(t time.Time) int {
		if span <= 0 {
			return 0
		}
		c := int(float64(t.Sub(g.Axis.Start)) / float64(span) * float64(laneW-1))
		if c < 0 {
			c = 0
		}
		if c > laneW-1 {
			c = laneW - 1
		}
		return c
	}

	// Paint each lane cell with whatever covers it; draw order matches the
	// SVG (bars first, milestones on top).
	lanes := make([][]laneCell, len(g.Rows))
	for i := range lanes {
		lanes[i] = make([]laneCell, laneW)
	}
	for _, bar := range g.Bars {
		from, to := cellOf(bar.Start), cellOf(bar.Finish)
		for c := from; c <= to; c++ {
			lanes[bar.Position][c] = laneCell{glyph: "█", color: bar.Color}
		}
	}
	for _, m := range g.Milestones {
		lanes[m.Position][cellOf(m.Date)] = laneCell{glyph: "◆", color: "milestone"}
	}

	var b strings.Builder
	writeTextAxis(&b, g, labelW, laneW)
	for i, r := range g.Rows {
		b.WriteString(padLabel(r.Label, labelW))
		b.WriteString(" │ ")
		writeLane(&b, lanes[i])
		b.WriteString("\n")
	}
	return b.String()
}

func writeTextAxis(b *strings.Builder, g *domain.ChartGeometry, labelW, laneW int) {
	if g.Axis.End.After(g.Axis.Start) {
		left := g.Axis.Start.Format("2006-01-02")
		right := g.Axis.End.Format("2006-01-02")
		gap := laneW - len(left) - len(right)
		if gap < 1 {
			gap = 1
		}
		fmt.Fprintf(b, "%s   %s\n", strings.Repeat(" ", labelW),
			styleAxis.Render(left+strings.Repeat(" ", gap)+right))
	}
	fmt.Fprintf(b, "%s─┼─%s\n", strings.Repeat("─", labelW), strings.Repeat("─", laneW))
}

func padLabel(label string, width int) string {
	w := lipgloss.Width(label)
	if w > width {
		runes := []rune(label)
		if len(runes) > width {
			runes = runes[:width]
		}
		return string(runes)
	}
	return label + strings.Repeat(" ", width-w)
}

// writeLane emits painted cells, grouping consecutive same-color cells into
// one styled run to keep escape sequences down.
func writeLane(b *strings.Builder, lane []laneCell) {
	var run strings.Builder
	var runColor string
	flush := func() {
		if run.Len() == 0 {
			return
		}
		if runColor == "" {
			b.WriteString(run.String())
		} else {
			b.WriteString(styleFor(runColor).Render(run.String()))
		}
		run.Reset()
	}
	for _, c := range lane {
		glyph := c.glyph
		if glyph == "" {
			glyph = " "
		}
		if c.color != runColor {
			flush()
			runColor = c.color
		}
		run.WriteString(glyph)
	}
	flush()
}

func styleFor(color string) lipgloss.Style {
	if color == "milestone" {
		return styleMilestone
	}
	if s, ok := barStyles[color]; ok {
		return s
	}
	return barStyleDefault
}
