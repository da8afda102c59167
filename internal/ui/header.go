package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/dexter/internal/pipeline"
)

// renderMain renders the full catalog screen.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderControls())
	b.WriteString("\n\n")

	switch m.currentView {
	case ViewDiagnostics:
		b.WriteString(m.renderDiagnostics())
	default:
		b.WriteString(m.renderCard())
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// renderHeader renders the status bar: logo, bound state, position and activity.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	compact := m.width < LayoutCompactWidth

	parts := []string{bg.Render("dexter", styles.Logo)}

	switch {
	case !m.nav.Ready():
		parts = append(parts, bg.Render("● sizing catalog", styles.WarningText))
	case m.boundErr != nil:
		parts = append(parts, bg.Render("● offline bound", styles.WarningText))
	default:
		parts = append(parts, bg.Render("● ready", styles.SuccessText))
	}

	parts = append(parts,
		bg.Render("No.", styles.MutedText)+bg.Space()+
			bg.Render(fmt.Sprintf("%d / %d", m.nav.CurrentID(), m.nav.MaxID()), styles.Text),
	)

	if m.busy() {
		label := "fetching"
		if m.pipe.Phase() != pipeline.PhaseLoading {
			label = "rendering"
		}
		parts = append(parts, bg.Render(m.spinner.View(), styles.AccentText)+bg.Space()+bg.Render(label, styles.MutedText))
	} else if m.pipe.Phase() == pipeline.PhaseIdle && m.pipe.Display().Name == pipeline.NotFoundText {
		parts = append(parts, bg.Render("lookup failed", styles.DangerText))
	}

	if !compact {
		parts = append(parts, bg.Render("theme", styles.FaintText)+bg.Space()+bg.Render(m.theme.Name, styles.MutedText))
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
}

// renderControls renders the previous/next/random buttons and the search field.
// Disabled controls are drawn faint.
func (m Model) renderControls() string {
	styles := m.theme.Styles()
	c := m.nav.Controls()

	button := func(label string, enabled bool) string {
		if enabled {
			return styles.Button.Render(label)
		}
		return styles.DisabledButton.Render(label)
	}

	var field string
	switch {
	case m.searching:
		field = m.search.View()
	case !c.Search:
		field = styles.FaintText.Faint(true).Render("/ search unavailable")
	case m.search.Value() != "":
		field = styles.MutedText.Render("/ " + m.search.Value())
	default:
		field = styles.FaintText.Render("/ search")
	}
	fieldBorder := m.theme.BorderMuted
	if m.searching {
		fieldBorder = m.theme.BorderFocus
	}
	field = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color(fieldBorder)).
		Render(field)

	row := lipgloss.JoinHorizontal(lipgloss.Bottom,
		button("◀ prev", c.Previous), " ",
		button("next ▶", c.Next), " ",
		button("random", c.Random), "  ",
		field,
	)
	return lipgloss.NewStyle().Padding(0, 1).Render(row)
}

func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	return styles.Footer.Width(m.width).Render(m.help.View(m.keys))
}
