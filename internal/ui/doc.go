// Package ui is dexter's Bubble Tea interface.
//
// The Model owns one nav.Navigator and one pipeline.Pipeline. Key presses
// are gated by the navigator's control state and turn into fetch commands.
// Fetch results come back as messages. A successful result starts the exit
// phase and schedules a transition tick after the pipeline delay. The render
// and the current-id update happen when that tick arrives.
//
// Views:
//
//   - Catalog: header, control bar, record card and key footer
//   - Diagnostics: tail of the JSON diagnostic log (L)
//   - Help overlay (?)
package ui
