// Package style holds the brand colours and icons shared by the logger and the renderer.
package style

import "github.com/charmbracelet/lipgloss"

// Brand colours.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Star    = "★"
	Bullet  = "•"
)

// Hex returns the colour as a hex string, the form termenv.RGBColor expects.
func Hex(c lipgloss.Color) string {
	return string(c)
}
