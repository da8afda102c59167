package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/dexter/internal/pipeline"
)

// renderCard renders the record card. Elements in their exit phase are drawn
// faint until the render replaces them.
func (m Model) renderCard() string {
	styles := m.theme.Styles()
	d := m.pipe.Display()

	width := m.width - 4
	if width > CardMaxWidth {
		width = CardMaxWidth
	}
	if width < 20 {
		width = 20
	}
	inner := width - 4

	// Name and number share the first line.
	name := m.element(pipeline.ElementName, styles.Text.Bold(true)).Render(d.Name)
	id := m.element(pipeline.ElementID, styles.AccentText).Render(d.ID)
	gap := inner - lipgloss.Width(name) - lipgloss.Width(id)
	if gap < 1 {
		gap = 1
	}
	lines := []string{name + strings.Repeat(" ", gap) + id}

	if d.View != nil && len(d.View.Types) > 0 {
		chips := make([]string, 0, len(d.View.Types))
		for _, t := range d.View.Types {
			chip := styles.TypeChip(t)
			if m.pipe.Visual(pipeline.ElementTypes) == pipeline.VisualExiting {
				chip = chip.Faint(true)
			}
			chips = append(chips, chip.Render(t))
		}
		lines = append(lines, strings.Join(chips, " "))
	}
	if d.Types != "" {
		lines = append(lines, m.element(pipeline.ElementTypes, styles.MutedText).Render(d.Types))
	}

	lines = append(lines, "")
	lines = append(lines, m.renderImage(styles, d, inner)...)

	if d.View != nil {
		lines = append(lines, "", styles.MutedText.Render(vitals(d.View.Height, d.View.Weight)))
	}

	if backdrop := m.pipe.Backdrop(); backdrop != "" && !m.prefs.HideImageURL {
		lines = append(lines, "", styles.FaintText.Render("backdrop "+truncateMiddle(backdrop, inner-9)))
	}

	border := m.theme.Border
	if d.View != nil && len(d.View.Types) > 0 {
		border = m.theme.TypeColor(d.View.Types[0])
	}
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Padding(0, 1).
		Width(width).
		Render(strings.Join(lines, "\n"))
	return lipgloss.NewStyle().Padding(0, 1).Render(card)
}

// renderImage renders the image element: its source URL and alt text. With no
// image source only the alt text is shown.
func (m Model) renderImage(styles Styles, d pipeline.Display, inner int) []string {
	img := m.element(pipeline.ElementImage, styles.InfoText)
	alt := m.element(pipeline.ElementImage, styles.MutedText.Italic(true))

	var lines []string
	if d.ImageURL != "" && !m.prefs.HideImageURL {
		lines = append(lines, img.Render("image "+truncateMiddle(d.ImageURL, inner-6)))
	}
	if d.Alt != "" {
		lines = append(lines, alt.Render(truncate(d.Alt, inner)))
	}
	if len(lines) == 0 {
		lines = append(lines, styles.FaintText.Render("no image"))
	}
	return lines
}

func (m Model) element(e pipeline.Element, style lipgloss.Style) lipgloss.Style {
	if m.pipe.Visual(e) == pipeline.VisualExiting {
		return style.Faint(true)
	}
	return style
}

// vitals formats height in decimetres and weight in hectograms as metric units.
func vitals(height, weight int) string {
	return fmt.Sprintf("height %.1f m   weight %.1f kg", float64(height)/10, float64(weight)/10)
}
