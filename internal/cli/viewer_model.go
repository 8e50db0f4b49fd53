package cli

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/ganttflow/internal/cli/formatter"
	"github.com/alexanderramin/ganttflow/internal/domain"
	"github.com/alexanderramin/ganttflow/internal/render"
)

// viewerModel is the bubbletea model for the chart pager: a viewport over
// the terminal-rendered chart, re-rendered on every resize so the lane width
// tracks the window.
type viewerModel struct {
	source string
	geo    *domain.ChartGeometry

	vp       viewport.Model
	ready    bool
	quitting bool
}

func newViewerModel(source string, geo *domain.ChartGeometry) viewerModel {
	vp := viewport.New(0, 0)
	vp.KeyMap = viewerKeyMap()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3
	return viewerModel{source: source, geo: geo, vp: vp}
}

func viewerKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		Up:           key.NewBinding(key.WithKeys("up", "k")),
		Down:         key.NewBinding(key.WithKeys("down", "j")),
		PageUp:       key.NewBinding(key.WithKeys("pgup", "b")),
		PageDown:     key.NewBinding(key.WithKeys("pgdown", "f", " ")),
		HalfPageUp:   key.NewBinding(key.WithKeys("u")),
		HalfPageDown: key.NewBinding(key.WithKeys("d")),
	}
}

func (m viewerModel) Init() tea.Cmd {
	return nil
}

func (m viewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.vp.Width = msg.Width
		m.vp.Height = msg.Height - 2 // header + footer
		if m.vp.Height < 1 {
			m.vp.Height = 1
		}
		m.vp.SetContent(render.Text(m.geo, msg.Width-2))
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m viewerModel) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return formatter.Dim("loading…")
	}

	// Bold keeps the source filename verbatim; Header would uppercase it.
	header := formatter.Bold(fmt.Sprintf("Gantt — %s", m.source))
	footer := formatter.Dim(fmt.Sprintf(
		"%d tasks · %d milestones · %d days · ↑/↓ scroll · q quit",
		m.geo.Stats.RegularCount, m.geo.Stats.MilestoneCount, m.geo.Stats.SpanDays))
	return header + "\n" + m.vp.View() + "\n" + footer
}
