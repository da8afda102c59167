package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/dexter/internal/logtail"
)

type diagnosticsState struct {
	entries []logtail.Entry
	err     error
}

// renderDiagnostics renders the tail of the diagnostic log, newest last.
func (m Model) renderDiagnostics() string {
	styles := m.theme.Styles()

	var lines []string
	switch {
	case m.logFile == "":
		lines = append(lines, styles.MutedText.Render("Diagnostic logging is disabled (log_file is empty)."))
	case m.diag.err != nil:
		lines = append(lines, styles.DangerText.Render("Read log: "+m.diag.err.Error()))
	case len(m.diag.entries) == 0:
		lines = append(lines, styles.MutedText.Render("No log entries yet."))
	default:
		for _, e := range m.diag.entries {
			lines = append(lines, m.formatEntry(styles, e))
		}
	}

	// Header, controls, blank line, title and footer take six rows.
	if avail := m.height - 6; avail > 0 && len(lines) > avail {
		lines = lines[len(lines)-avail:]
	}

	title := styles.AccentText.Bold(true).Render("Diagnostics") + " " +
		styles.FaintText.Render(truncateMiddle(m.logFile, 60))
	body := lipgloss.NewStyle().Padding(0, 1).Render(strings.Join(lines, "\n"))
	return lipgloss.NewStyle().Padding(0, 1).Render(title) + "\n" + body
}

func (m Model) formatEntry(styles Styles, e logtail.Entry) string {
	if e.Raw != "" {
		return styles.FaintText.Render(truncate(e.Raw, m.width-2))
	}

	ts := "--:--:--"
	if !e.Time.IsZero() {
		ts = e.Time.Local().Format("15:04:05")
	}

	var fields []string
	for _, k := range e.FieldKeys() {
		fields = append(fields, fmt.Sprintf("%s=%s", k, e.Fields[k]))
	}

	line := styles.FaintText.Render(ts) + " " +
		levelStyle(styles, e.Level).Render(fmt.Sprintf("%-5s", levelLabel(e.Level))) + " " +
		styles.Text.Render(e.Message)
	if len(fields) > 0 {
		line += " " + styles.MutedText.Render(strings.Join(fields, " "))
	}
	return line
}

func levelLabel(level string) string {
	switch strings.ToLower(level) {
	case "warning":
		return "WARN"
	case "":
		return "-"
	default:
		return strings.ToUpper(level)
	}
}

func levelStyle(styles Styles, level string) lipgloss.Style {
	switch strings.ToLower(level) {
	case "error", "fatal", "panic":
		return styles.DangerText
	case "warning", "warn":
		return styles.WarningText
	case "debug", "trace":
		return styles.FaintText
	default:
		return styles.InfoText
	}
}
