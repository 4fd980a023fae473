// Package tui is the terminal presentation layer for both engines. It owns
// rendering and key handling only; every state change goes through the
// engines' parameter-set calls, and display reads per-tick snapshots.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/levertools/leverlab/internal/lever"
)

const historyCapacity = 600

// TickMsg drives one engine step per frame.
type TickMsg time.Time

var leverParams = []string{"effort", "arm1", "arm2"}

// LeverModel is the bubbletea model for the dynamic lever simulator.
type LeverModel struct {
	rig    *lever.Rig
	fps    int
	dt     float64
	canvas *Canvas

	param        int
	rotHistory   []float64
	forceHistory []float64
	width        int
}

// NewLeverModel wraps a rig for interactive display at the given frame rate.
func NewLeverModel(rig *lever.Rig, fps int) LeverModel {
	if fps <= 0 {
		fps = 60
	}
	return LeverModel{
		rig:          rig,
		fps:          fps,
		dt:           1.0 / float64(fps),
		canvas:       NewCanvas(36, 13),
		rotHistory:   make([]float64, 0, historyCapacity),
		forceHistory: make([]float64, 0, historyCapacity),
		width:        120,
	}
}

func (m LeverModel) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m LeverModel) Init() tea.Cmd { return m.tick() }

// Update applies input events at tick boundaries and advances the engine
// exactly once per frame.
func (m LeverModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.rig.ToggleSimulation()
		case "r":
			m.rig.Reset()
			m.rotHistory = m.rotHistory[:0]
			m.forceHistory = m.forceHistory[:0]
		case "tab":
			m.param = (m.param + 1) % len(leverParams)
		case "up", "k":
			m.adjustParam(1)
		case "down", "j":
			m.adjustParam(-1)
		case "left", "h":
			m.rig.Select(m.rig.Selected - 1)
		case "right", "l":
			m.rig.Select(m.rig.Selected + 1)
		case "1", "2", "3", "4", "5":
			m.rig.Select(int(msg.String()[0] - '1'))
		}
		return m, nil
	case TickMsg:
		m.rig.Step(m.dt)
		sel := m.rig.Diagrams[m.rig.Selected]
		m.rotHistory = appendCapped(m.rotHistory, sel.Rotation)
		m.forceHistory = appendCapped(m.forceHistory, sel.Result)
		return m, m.tick()
	}
	return m, nil
}

func (m *LeverModel) adjustParam(dir int) {
	switch leverParams[m.param] {
	case "effort":
		m.rig.SetEffort(m.rig.Effort() + float64(dir)*5)
	case "arm1":
		m.rig.SetArms(m.rig.Arm1()+float64(dir)*0.1, m.rig.Arm2())
	case "arm2":
		m.rig.SetArms(m.rig.Arm1(), m.rig.Arm2()+float64(dir)*0.1)
	}
}

// View renders the diagram panels, the selected diagram's canvas, history
// plots, and the shared parameter sliders.
func (m LeverModel) View() string {
	snap := m.rig.Snapshot()

	var s strings.Builder
	s.WriteString(headerStyle.Render("LEVER PHYSICS  F2 = F1 x C / X1") + "\n")
	if snap.Simulating {
		s.WriteString(goodStyle.Render("SIMULATING") + "\n\n")
	} else {
		s.WriteString(dimStyle.Render("paused - space to simulate") + "\n\n")
	}

	panels := make([]string, len(snap.Diagrams))
	for i, d := range snap.Diagrams {
		panels[i] = groupStyle(snap.Groups[i], i == snap.Selected).Render(leverPanel(d))
	}
	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, panels...) + "\n")

	sel := snap.Diagrams[snap.Selected]
	drawLever(m.canvas, sel)
	canvasView := canvasStyle.Render(m.canvas.String())

	var stats strings.Builder
	stats.WriteString(headerStyle.Render(sel.Name) + "\n\n")
	stats.WriteString(labelStyle.Render("rotation   ") + valueStyle.Render(fmt.Sprintf("%7.2f deg", sel.Rotation)) + "\n")
	stats.WriteString(labelStyle.Render("omega      ") + valueStyle.Render(fmt.Sprintf("%7.2f deg/s", sel.AngularVelocity)) + "\n")
	stats.WriteString(labelStyle.Render("net torque ") + valueStyle.Render(fmt.Sprintf("%7.1f lb-ft", sel.NetTorque)) + "\n")
	stats.WriteString(labelStyle.Render("X1         ") + armStyle.Render(fmt.Sprintf("%7.2f ft", sel.X1Current)) + "\n")
	stats.WriteString(labelStyle.Render("F2         ") + loadStyle.Render(fmt.Sprintf("%7.1f lb", sel.Result)) + "\n")
	if sel.Geom.Elevation > 0 {
		stats.WriteString(labelStyle.Render("Y1         ") + valueStyle.Render(fmt.Sprintf("%7.2f ft", sel.Geom.Elevation)) + "\n")
	}
	stats.WriteString("\n" + labelStyle.Render("      Vx      Vy     |V|") + "\n")
	stats.WriteString(effortStyle.Render(fmt.Sprintf("V1 %+7.2f %+7.2f %7.2f", sel.V1.X, sel.V1.Y, sel.V1.Mag)) + "\n")
	stats.WriteString(loadStyle.Render(fmt.Sprintf("V2 %+7.2f %+7.2f %7.2f", sel.V2.X, sel.V2.Y, sel.V2.Mag)) + "\n")

	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, canvasView, "  ", stats.String()) + "\n")

	if len(m.rotHistory) > 1 {
		chart := asciigraph.Plot(m.rotHistory,
			asciigraph.Height(5),
			asciigraph.Width(70),
			asciigraph.Caption("rotation (deg)"),
		)
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	s.WriteString("\n" + m.paramBars(snap))
	s.WriteString(helpStyle.Render("space:simulate  r:reset  tab:param  up/down:tune  1-5:select  q:quit"))
	return s.String()
}

func (m LeverModel) paramBars(snap lever.Snapshot) string {
	var s strings.Builder
	rows := []struct {
		name        string
		val, lo, hi float64
		unit        string
	}{
		{"F1", snap.Effort, lever.MinEffort, lever.MaxEffort, "lb"},
		{"arm1", snap.Arm1, lever.MinArm1, lever.MaxArm1, "ft"},
		{"arm2/X1", snap.Arm2, lever.MinArm2, lever.MaxArm2, "ft"},
	}
	for i, r := range rows {
		line := fmt.Sprintf("%-8s %s %6.2f %s", r.name, bar(r.val, r.lo, r.hi, 20), r.val, r.unit)
		if i == m.param {
			s.WriteString(activeParamStyle.Render("> "+line) + "\n")
		} else {
			s.WriteString(labelStyle.Render("  "+line) + "\n")
		}
	}
	return s.String()
}

func leverPanel(d lever.Diagram) string {
	var s strings.Builder
	s.WriteString(valueStyle.Render(d.Name) + "\n")
	s.WriteString(armStyle.Render(fmt.Sprintf("X1 %6.2f ft", d.X1Current)) + "\n")
	s.WriteString(loadStyle.Render(fmt.Sprintf("F2 %6.1f lb", d.Result)) + "\n")
	s.WriteString(dimStyle.Render(fmt.Sprintf("rot %5.1f deg", d.Rotation)))
	return s.String()
}

func bar(val, lo, hi float64, width int) string {
	ratio := (val - lo) / (hi - lo)
	if ratio < 0 {
		ratio = 0
	} else if ratio > 1 {
		ratio = 1
	}
	filled := int(ratio * float64(width))
	return "[" + strings.Repeat("=", filled) + strings.Repeat("-", width-filled) + "]"
}

func appendCapped(hist []float64, v float64) []float64 {
	hist = append(hist, v)
	if len(hist) > historyCapacity {
		hist = hist[1:]
	}
	return hist
}

// RunLever starts the interactive lever simulator.
func RunLever(rig *lever.Rig, fps int) error {
	p := tea.NewProgram(NewLeverModel(rig, fps))
	_, err := p.Run()
	return err
}
