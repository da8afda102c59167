package ui

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which the header drops
	// secondary parts.
	LayoutCompactWidth = 80

	// CardMaxWidth caps the record card so it stays readable on wide terminals.
	CardMaxWidth = 72
)

// DiagnosticsLineLimit is the number of log lines the diagnostics view tails.
const DiagnosticsLineLimit = 200
