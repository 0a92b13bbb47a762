// Package render writes datasets, derived views and statistics as plain text tables.
package render

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/muesli/termenv"
	"go.trai.ch/starview/internal/core/domain"
	"go.trai.ch/starview/internal/core/ports"
	"go.trai.ch/starview/internal/ui/output"
	"go.trai.ch/starview/internal/ui/style"
)

var _ ports.Renderer = (*Renderer)(nil)

const indent = "  "

// Renderer implements ports.Renderer on a termenv output. Colour follows NO_COLOR.
type Renderer struct {
	mu  sync.Mutex
	out *termenv.Output
}

// NewRenderer creates a Renderer writing to w. A nil w writes to stderr.
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{out: output.New(w)}
}

// NewTerminalRenderer creates a Renderer writing to f. Styling is dropped when f is not a terminal.
func NewTerminalRenderer(f *os.File) *Renderer {
	return &Renderer{out: output.NewWithProfile(f, func() termenv.Profile { return output.TerminalProfile(f) })}
}

// Dataset writes a one-line heading for ds.
func (r *Renderer) Dataset(ds *domain.Dataset) error {
	star := ds.Star
	if star == "" {
		star = "(unnamed star)"
	}
	return r.write(r.title(fmt.Sprintf("%s %s: %d observations", style.Star, star, len(ds.Observations))) + "\n")
}

// View writes v as a table followed by its summary and a blank line.
func (r *Renderer) View(v *domain.DerivedView, opts domain.RenderOptions) error {
	var b strings.Builder
	b.WriteString(r.title(viewTitle(v)) + "\n")

	columns := v.Columns
	if !opts.ErrorBars {
		columns = columns[:len(columns)-1]
	}

	rows := make([][]string, v.Len())
	for i := range rows {
		rows[i] = v.Cells(i)[:len(columns)]
	}
	if opts.InvertDomain {
		slices.Reverse(rows)
	}

	if len(rows) == 0 {
		b.WriteString(indent + "(no rows)\n")
	} else {
		widths := columnWidths(columns, rows)
		b.WriteString(r.muted(formatRow(columns, widths)) + "\n")
		for _, row := range rows {
			b.WriteString(formatRow(row, widths) + "\n")
		}
	}

	if v.Summary != "" {
		for line := range strings.SplitSeq(v.Summary, "\n") {
			b.WriteString(r.muted(indent+line) + "\n")
		}
	}
	b.WriteString("\n")

	return r.write(b.String())
}

// Ledger writes the entries under a heading.
func (r *Renderer) Ledger(entries []domain.LedgerEntry) error {
	if len(entries) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString(r.title("Statistics") + "\n")
	for _, e := range entries {
		b.WriteString(indent + e.Key + ": " + e.Text + "\n")
	}
	return r.write(b.String())
}

func (r *Renderer) write(s string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, err := r.out.WriteString(s)
	return err
}

func (r *Renderer) title(s string) string {
	return r.out.String(s).Bold().Foreground(r.out.Color(style.Hex(style.Iris))).String()
}

func (r *Renderer) muted(s string) string {
	return r.out.String(s).Foreground(r.out.Color(style.Hex(style.Slate))).String()
}

func viewTitle(v *domain.DerivedView) string {
	role := "Model"
	if v.Role == domain.RoleResiduals {
		role = "Residuals"
	}

	title := fmt.Sprintf("%s (%s)", role, v.Projection)
	if v.Projection == domain.ProjectionPhaseFolded {
		title += " epoch=" + strconv.FormatFloat(v.Epoch, 'f', -1, 64) +
			" period=" + strconv.FormatFloat(v.Period, 'f', -1, 64)
	}
	return title
}

func columnWidths(header []string, rows [][]string) []int {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], len(cell))
		}
	}
	return widths
}

// formatRow left-aligns cells to widths. The last cell is not padded.
func formatRow(cells []string, widths []int) string {
	var b strings.Builder
	b.WriteString(indent)
	for i, cell := range cells {
		if i > 0 {
			b.WriteString(indent)
		}
		b.WriteString(cell)
		if i < len(cells)-1 {
			b.WriteString(strings.Repeat(" ", widths[i]-len(cell)))
		}
	}
	return b.String()
}
