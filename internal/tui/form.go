// Package tui implements the interactive coil-spring calculator form.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pkiran/springcalc/internal/config"
	"github.com/pkiran/springcalc/internal/material"
	"github.com/pkiran/springcalc/internal/spring"
	"github.com/pkiran/springcalc/internal/units"
)

const (
	fieldWire = iota
	fieldInner
	fieldCoils
	fieldModulus
	fieldDeflection
	numFields
)

var fieldLabels = [numFields]string{
	"wire Ø d [mm]",
	"inner Ø ID [mm]",
	"active coils n",
	"shear modulus G [GPa]",
	"deflection Δ [mm] (optional)",
}

// Form is the bubbletea model for the calculator. Five numeric fields in,
// rate and force out; every trigger recomputes from scratch.
type Form struct {
	inputs [numFields]textinput.Model
	focus  int
	rate   string
	force  string
	errMsg string
	matl   string
	width  int
}

func NewForm(cfg *config.Config) Form {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	f := Form{
		rate:  units.Placeholder,
		force: units.Placeholder,
	}

	for i := range f.inputs {
		ti := textinput.New()
		ti.CharLimit = 16
		ti.Width = 14
		ti.Prompt = ""
		f.inputs[i] = ti
	}

	modulus := cfg.ShearModulusGPa
	if cfg.Material != "" {
		if m, ok := material.Get(cfg.Material); ok {
			modulus = m.ShearModulusGPa
			f.matl = m.Name
		}
	}
	f.inputs[fieldModulus].SetValue(strconv.FormatFloat(modulus, 'f', -1, 64))
	if cfg.DeflectionMm != 0 {
		f.inputs[fieldDeflection].SetValue(strconv.FormatFloat(cfg.DeflectionMm, 'f', -1, 64))
	}

	f.inputs[fieldWire].Focus()
	return f
}

func (f Form) Init() tea.Cmd {
	return textinput.Blink
}

func (f Form) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return f, tea.Quit
		case "esc":
			f.errMsg = ""
			return f, nil
		case "tab", "down":
			return f.moveFocus(1), nil
		case "shift+tab", "up":
			return f.moveFocus(-1), nil
		case "enter":
			f.calculate()
			return f, nil
		}
	case tea.WindowSizeMsg:
		f.width = msg.Width
		return f, nil
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f Form) moveFocus(delta int) Form {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + numFields) % numFields
	f.inputs[f.focus].Focus()
	return f
}

// calculate parses the fields, converts to SI, and runs the physics.
// Field contents are retained on every failure so the user can retry.
func (f *Form) calculate() {
	parse := func(i int) (float64, bool) {
		v, err := strconv.ParseFloat(strings.TrimSpace(f.inputs[i].Value()), 64)
		return v, err == nil
	}

	d, ok := parse(fieldWire)
	if !ok {
		f.errMsg = "invalid numeric input: " + fieldLabels[fieldWire]
		return
	}
	id, ok := parse(fieldInner)
	if !ok {
		f.errMsg = "invalid numeric input: " + fieldLabels[fieldInner]
		return
	}
	n, ok := parse(fieldCoils)
	if !ok {
		f.errMsg = "invalid numeric input: " + fieldLabels[fieldCoils]
		return
	}
	g, ok := parse(fieldModulus)
	if !ok {
		f.errMsg = "invalid numeric input: " + fieldLabels[fieldModulus]
		return
	}

	defl := spring.Deflection{}
	if raw := strings.TrimSpace(f.inputs[fieldDeflection].Value()); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			f.errMsg = "invalid numeric input: " + fieldLabels[fieldDeflection]
			return
		}
		defl = spring.DeflectionOf(units.MillimetersToMeters(v))
	}

	res, err := spring.Compute(spring.Specification{
		WireDiameter:  units.MillimetersToMeters(d),
		InnerDiameter: units.MillimetersToMeters(id),
		ActiveCoils:   n,
		ShearModulus:  units.GigapascalsToPascals(g),
	}, defl)
	if err != nil {
		f.errMsg = err.Error()
		return
	}

	f.errMsg = ""
	f.rate = units.FormatRate(res.Rate)
	if res.HasForce {
		f.force = units.FormatForce(res.Force)
	} else {
		f.force = units.Placeholder
	}
}

func (f Form) View() string {
	var b strings.Builder

	b.WriteString("\n\n    " + titleStyle.Render("SPRINGCALC") + "\n")
	b.WriteString("    " + subStyle.Render("coil-spring calculator") + "\n")
	b.WriteString("    " + subStyle.Render("─────────────────────────") + "\n\n")

	for i, ti := range f.inputs {
		label := fmt.Sprintf("%-29s", fieldLabels[i])
		if i == f.focus {
			b.WriteString(fmt.Sprintf("    %s %s %s\n",
				cursorStyle.Render("▸"), labelStyle.Render(label), ti.View()))
		} else {
			b.WriteString(fmt.Sprintf("      %s %s\n",
				dimStyle.Render(label), ti.View()))
		}
	}

	b.WriteString("\n    " + subStyle.Render("─────────────────────────") + "\n")
	b.WriteString(fmt.Sprintf("    %s  %s\n",
		dimStyle.Render("spring rate k      "), valueStyle.Render(f.rate)))
	b.WriteString(fmt.Sprintf("    %s  %s\n",
		dimStyle.Render("force F (if Δ > 0) "), valueStyle.Render(f.force)))

	if f.matl != "" {
		b.WriteString("    " + subStyle.Render("material: "+f.matl) + "\n")
	}
	if f.errMsg != "" {
		b.WriteString("\n    " + errStyle.Render(f.errMsg) + "\n")
	}

	b.WriteString("\n    " +
		keyStyle.Render("tab/↓↑") + dimStyle.Render(" fields  ") +
		keyStyle.Render("enter") + dimStyle.Render(" calculate  ") +
		keyStyle.Render("esc") + dimStyle.Render(" clear error  ") +
		keyStyle.Render("ctrl+c") + dimStyle.Render(" quit") + "\n")

	return b.String()
}

// Run launches the form in the alternate screen.
func Run(cfg *config.Config) error {
	_, err := tea.NewProgram(NewForm(cfg), tea.WithAltScreen()).Run()
	return err
}
