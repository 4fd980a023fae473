package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/levertools/leverlab/internal/tug"
	"github.com/levertools/leverlab/internal/units"
)

var tugParams = []string{"weight", "incline", "handle", "aircraft"}

// TugModel is the bubbletea model for the static tug calculator.
type TugModel struct {
	calc  *tug.Calculator
	param int
	width int
}

// NewTugModel wraps a calculator for interactive display.
func NewTugModel(calc *tug.Calculator) TugModel {
	return TugModel{calc: calc, width: 120}
}

func (m TugModel) Init() tea.Cmd { return nil }

// Update translates key events into calculator parameter calls.
func (m TugModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "r":
			m.calc.Reset()
		case "tab":
			m.param = (m.param + 1) % len(tugParams)
		case "up", "k":
			m.adjustParam(1)
		case "down", "j":
			m.adjustParam(-1)
		case "s":
			m.cycleSurface()
		case "left", "h":
			m.calc.Select(m.calc.Selected - 1)
		case "right", "l":
			m.calc.Select(m.calc.Selected + 1)
		case "1", "2", "3", "4", "5", "6":
			m.calc.Select(int(msg.String()[0] - '1'))
		}
	}
	return m, nil
}

func (m *TugModel) adjustParam(dir int) {
	d := float64(dir)
	switch tugParams[m.param] {
	case "weight":
		m.calc.SetWeight(m.calc.Load.Weight + d*100)
	case "incline":
		m.calc.SetIncline(m.calc.Load.InclineDeg + d*0.1)
	case "handle":
		m.calc.SetArms(m.calc.HandleArm()+d*0.1, m.calc.AircraftArm())
	case "aircraft":
		m.calc.SetArms(m.calc.HandleArm(), m.calc.AircraftArm()+d*0.1)
	}
}

func (m *TugModel) cycleSurface() {
	for i, s := range tug.Surfaces {
		if s.Name == m.calc.Load.Surface.Name {
			next := tug.Surfaces[(i+1)%len(tug.Surfaces)]
			m.calc.SelectSurface(next.Name)
			return
		}
	}
}

// View renders the controls, the diagram grid, and the selected diagram's
// detailed results.
func (m TugModel) View() string {
	snap := m.calc.Snapshot()

	var s strings.Builder
	s.WriteString(headerStyle.Render("AIRCRAFT TUG FORCE CALCULATOR") + "\n\n")

	controls := m.controlPanel(snap)
	grid := diagramGrid(snap)
	results := resultsPanel(snap)
	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, controls, "  ", grid, "  ", results))

	s.WriteString("\n" + helpStyle.Render("tab:param  up/down:tune  s:surface  1-6:select  r:reset  q:quit"))
	return s.String()
}

func (m TugModel) controlPanel(snap tug.Snapshot) string {
	var s strings.Builder
	s.WriteString(headerStyle.Render("Controls") + "\n\n")
	rows := []struct {
		name        string
		val, lo, hi float64
		unit        string
	}{
		{"weight", snap.Weight, tug.MinWeight, tug.MaxWeight, "lb"},
		{"incline", snap.InclineDeg, tug.MinIncline, tug.MaxIncline, "deg"},
		{"handle", snap.HandleArm, tug.MinHandleArm, tug.MaxHandleArm, "ft"},
		{"aircraft", snap.AircraftArm, tug.MinAircraftArm, tug.MaxAircraftArm, "ft"},
	}
	for i, r := range rows {
		line := fmt.Sprintf("%-9s %s %7.1f %s", r.name, bar(r.val, r.lo, r.hi, 14), r.val, r.unit)
		if i == m.param {
			s.WriteString(activeParamStyle.Render("> "+line) + "\n")
		} else {
			s.WriteString(labelStyle.Render("  "+line) + "\n")
		}
	}
	s.WriteString("\n" + labelStyle.Render("surface:") + "\n")
	for _, surf := range tug.Surfaces {
		marker := "  "
		style := dimStyle
		if surf.Name == snap.Surface.Name {
			marker = "* "
			style = goodStyle
		}
		s.WriteString(style.Render(fmt.Sprintf("%s%-14s mu=%.3f", marker, surf.Name, surf.Mu)) + "\n")
	}
	return panelBorder.Render(s.String())
}

func diagramGrid(snap tug.Snapshot) string {
	panels := make([]string, len(snap.Diagrams))
	for i, d := range snap.Diagrams {
		var s strings.Builder
		s.WriteString(valueStyle.Render(d.Name) + "\n")
		s.WriteString(armStyle.Render(fmt.Sprintf("X1 %5.2f ft", d.Geom.MomentArm)) + "\n")
		s.WriteString(effortStyle.Render(fmt.Sprintf("F  %5.1f lb", d.HandleForce)) + "\n")
		if ma, ok := d.MechanicalAdvantage(); ok {
			s.WriteString(dimStyle.Render(fmt.Sprintf("MA %5.2fx", ma)))
		} else {
			s.WriteString(dimStyle.Render("MA    --"))
		}
		style := panelBorder
		if i == snap.Selected {
			style = selectedPanelBorder
		}
		panels[i] = style.Render(s.String())
	}
	top := lipgloss.JoinHorizontal(lipgloss.Top, panels[:3]...)
	bottom := lipgloss.JoinHorizontal(lipgloss.Top, panels[3:]...)
	return lipgloss.JoinVertical(lipgloss.Left, top, bottom)
}

func resultsPanel(snap tug.Snapshot) string {
	d := snap.Diagrams[snap.Selected]

	var s strings.Builder
	s.WriteString(headerStyle.Render("Results") + "\n")
	s.WriteString(dimStyle.Render(d.Name) + "\n\n")

	s.WriteString(labelStyle.Render(snap.Surface.Name) + dimStyle.Render(fmt.Sprintf("  mu=%.3f", snap.Surface.Mu)) + "\n")
	s.WriteString(labelStyle.Render("rolling    ") + valueStyle.Render(fmt.Sprintf("%8.1f lb", snap.Rolling)) + "\n")
	gradeStyle := goodStyle
	if snap.Grade > 0 {
		gradeStyle = warnStyle
	}
	s.WriteString(labelStyle.Render("grade      ") + gradeStyle.Render(fmt.Sprintf("%+8.1f lb", snap.Grade)) + "\n")
	s.WriteString(labelStyle.Render("total pull ") + loadStyle.Render(fmt.Sprintf("%8.1f lb", snap.TotalPull)) + "\n\n")

	s.WriteString(labelStyle.Render("handle force") + "\n")
	s.WriteString(effortStyle.Render(fmt.Sprintf("%.1f lb", d.HandleForce)) + "\n")
	s.WriteString(assessStyle(d.HandleForce).Render(Assessment(d.HandleForce)) + "\n\n")

	s.WriteString(motorStyle.Render(fmt.Sprintf("Motor @ %.0f mph", units.TargetSpeedMph)) + "\n")
	s.WriteString(labelStyle.Render("torque ") + valueStyle.Render(fmt.Sprintf("%7.2f lb-ft", d.MotorTorque)) + "\n")
	s.WriteString(labelStyle.Render("       ") + valueStyle.Render(fmt.Sprintf("%7.2f Nm", d.TorqueNm())) + "\n")
	s.WriteString(labelStyle.Render("       ") + valueStyle.Render(fmt.Sprintf("%7.1f kgf-cm", d.TorqueKgfCm())) + "\n")
	s.WriteString(labelStyle.Render("power  ") + valueStyle.Render(fmt.Sprintf("%7.3f HP", d.PowerHP)) + "\n")
	s.WriteString(labelStyle.Render("       ") + valueStyle.Render(fmt.Sprintf("%7.1f W", d.PowerW)) + "\n\n")

	s.WriteString(labelStyle.Render("handle ") + armStyle.Render(fmt.Sprintf("%.1f ft", d.Geom.PrimaryArm)))
	s.WriteString(labelStyle.Render("  arm ") + armStyle.Render(fmt.Sprintf("%.2f ft", d.Geom.SecondaryArm)))
	s.WriteString(labelStyle.Render("  X1 ") + armStyle.Render(fmt.Sprintf("%.2f ft", d.Geom.MomentArm)))

	return panelBorder.Render(s.String())
}

// Assessment maps a handle force to the effort band shown to the user.
func Assessment(handleForce float64) string {
	switch {
	case handleForce <= 50:
		return "easy for most adults"
	case handleForce <= 100:
		return "moderate effort"
	case handleForce <= 150:
		return "significant effort"
	default:
		return "motor recommended"
	}
}

func assessStyle(handleForce float64) lipgloss.Style {
	switch {
	case handleForce <= 50:
		return goodStyle
	case handleForce <= 100:
		return valueStyle
	default:
		return warnStyle
	}
}

// RunTug starts the interactive tug calculator.
func RunTug(calc *tug.Calculator) error {
	p := tea.NewProgram(NewTugModel(calc))
	_, err := p.Run()
	return err
}
