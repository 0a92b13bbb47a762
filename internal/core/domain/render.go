package domain

// RenderOptions carries the plot toggles that affect tabular output.
type RenderOptions struct {
	// ErrorBars shows the uncertainty column.
	ErrorBars bool
	// InvertDomain lists rows from the last time or phase to the first.
	InvertDomain bool
}
