package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/five82/dexter/internal/nav"
)

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Catalog
	Previous key.Binding
	Next     key.Binding
	Random   key.Binding
	Search   key.Binding

	// Search field
	Submit key.Binding
	Cancel key.Binding

	// Global
	ToggleImage key.Binding
	CycleTheme  key.Binding
	Diagnostics key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Previous: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "Previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "Next"),
		),
		Random: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Random"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Search"),
		),

		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Look up"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Leave search"),
		),

		ToggleImage: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "Toggle image URL"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Diagnostics: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "Diagnostics"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
	}
}

// syncControls enables exactly the catalog bindings whose controls are live,
// so disabled actions neither match nor show in the footer.
func (k *keyMap) syncControls(c nav.Controls) {
	k.Previous.SetEnabled(c.Previous)
	k.Next.SetEnabled(c.Next)
	k.Random.SetEnabled(c.Random)
	k.Search.SetEnabled(c.Search)
	k.Submit.SetEnabled(c.Search)
}

// ShortHelp returns key bindings for the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Previous, k.Next, k.Random, k.Search, k.Help, k.Quit}
}

// FullHelp returns key bindings grouped for the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Previous, k.Next, k.Random, k.Search},
		{k.Submit, k.Cancel},
		{k.ToggleImage, k.CycleTheme, k.Diagnostics, k.Help, k.Quit},
	}
}
