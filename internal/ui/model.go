// Package ui is the interactive front-end: a state input field, mode and
// charset selectors, a wrap toggle, and the rendered verdict with its
// tile grid.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tessera/internal/charset"
	"tessera/internal/colorize"
	"tessera/internal/encode"
	"tessera/internal/eval"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	acceptStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	rejectStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	errStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	conflictMark = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render("!!")
)

// Model is the Bubble Tea model for the interactive evaluator.
type Model struct {
	input     textinput.Model
	evaluator *eval.Evaluator

	mode    encode.Mode
	scheme  encode.Scheme
	profile charset.Profile
	wrap    bool

	report  *eval.Report
	lastErr string
}

// NewModel returns the interactive model with decimal mode preselected.
func NewModel() *Model {
	ti := textinput.New()
	ti.Placeholder = "state value"
	ti.Prompt = "> "
	ti.CharLimit = 0
	ti.Focus()
	return &Model{
		input:     ti,
		evaluator: eval.New(),
		mode:      encode.ModeDecimal,
		scheme:    encode.SchemeBijective,
		profile:   charset.Lite,
	}
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.mode = nextMode(m.mode)
			m.report = nil
			m.lastErr = ""
			return m, nil
		case "ctrl+e":
			if m.scheme == encode.SchemeClassic {
				m.scheme = encode.SchemeBijective
			} else {
				m.scheme = encode.SchemeClassic
			}
			return m, nil
		case "ctrl+p":
			if m.profile.Name == charset.Lite.Name {
				m.profile = charset.Full
			} else {
				m.profile = charset.Lite
			}
			return m, nil
		case "ctrl+w":
			m.wrap = !m.wrap
			return m, nil
		case "enter":
			m.evaluate()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) evaluate() {
	value := m.input.Value()
	if m.mode == encode.ModeBinary {
		trimmed := strings.TrimSpace(value)
		if len(trimmed) > 2 && (strings.HasPrefix(trimmed, "0b") || strings.HasPrefix(trimmed, "0B")) {
			value = trimmed[2:]
		}
	}
	rep, err := m.evaluator.Run(eval.Request{
		Mode:    m.mode,
		Value:   value,
		Profile: m.profile,
		Scheme:  m.scheme,
		Wrap:    m.wrap,
	})
	if err != nil {
		m.report = nil
		m.lastErr = err.Error()
		return
	}
	m.report = &rep
	m.lastErr = ""
}

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("tessera — state acceptance"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	settings := fmt.Sprintf("mode %s  charset %s  encoding %s  wrap %v",
		m.mode, m.profile.Name, m.scheme, m.wrap)
	b.WriteString(labelStyle.Render(settings))
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("enter evaluate · tab mode · ^E encoding · ^P charset · ^W wrap · esc quit"))
	b.WriteString("\n\n")

	if m.lastErr != "" {
		b.WriteString(errStyle.Render("error: " + m.lastErr))
		b.WriteString("\n")
		return b.String()
	}
	if m.report == nil {
		return b.String()
	}

	rep := m.report
	if rep.Accepted {
		b.WriteString(acceptStyle.Render("ACCEPT"))
	} else {
		b.WriteString(rejectStyle.Render("REJECT"))
	}
	b.WriteString(": " + rep.Reason + "\n")
	fmt.Fprintf(&b, "%d digit(s), %d token(s)", len(rep.DecimalText), len(rep.Tokens))
	if rep.GridSide > 0 {
		fmt.Fprintf(&b, ", grid %dx%d", rep.GridSide, rep.GridSide)
	}
	b.WriteString("\n\n")
	b.WriteString(renderGrid(rep))
	return b.String()
}

// renderGrid draws the token grid as colored tiles; conflicting cells are
// marked instead of painted.
func renderGrid(rep *eval.Report) string {
	if rep.GridSide == 0 {
		return ""
	}
	conflict := make(map[int]bool, len(rep.ConflictCells))
	for _, c := range rep.ConflictCells {
		conflict[c] = true
	}
	m := rep.GridSide
	var b strings.Builder
	for r := 0; r < m; r++ {
		for c := 0; c < m; c++ {
			i := r*m + c
			hex := rep.Colors[i]
			switch {
			case conflict[i]:
				b.WriteString(conflictMark)
			case hex == colorize.Sentinel:
				b.WriteString("··")
			default:
				b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color("#" + hex)).Render("  "))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func nextMode(m encode.Mode) encode.Mode {
	switch m {
	case encode.ModeDecimal:
		return encode.ModeBinary
	case encode.ModeBinary:
		return encode.ModeText
	default:
		return encode.ModeDecimal
	}
}
