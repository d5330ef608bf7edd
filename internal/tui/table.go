package tui

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/tapcraft-io/kdbg/pkg/types"
)

// Column widths of the pod table
const (
	nameWidth      = 40
	namespaceWidth = 15
	statusWidth    = 10
	restartsWidth  = 15
)

// TableOptions controls RenderPodTable
type TableOptions struct {
	// Verbose adds the RESTARTS and AGE columns
	Verbose bool
	Context string
	Now     time.Time
}

// RenderPodTable writes pods as an aligned table followed by a total line
func RenderPodTable(w io.Writer, pods []types.PodRecord, opts TableOptions) {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	fmt.Fprintln(w, RenderTitle("Pods:", opts.Context))
	fmt.Fprintln(w, RenderRule())

	if opts.Verbose {
		fmt.Fprintln(w, row("NAME", "NAMESPACE", "STATUS", "RESTARTS", "AGE"))
	} else {
		fmt.Fprintln(w, row("NAME", "NAMESPACE", "STATUS"))
	}
	fmt.Fprintln(w, RenderRule())

	for _, pod := range pods {
		name := RenderPodName(pod.Name)
		ns := RenderNamespace(pod.Namespace)
		phase := RenderPhase(pod.Phase)

		if opts.Verbose {
			age := UnknownAge
			if pod.HasAge() {
				age = FormatAge(now.Sub(pod.CreatedAt))
			}
			fmt.Fprintln(w, row(name, ns, phase, strconv.Itoa(int(pod.RestartCount)), age))
		} else {
			fmt.Fprintln(w, row(name, ns, phase))
		}
	}

	fmt.Fprintf(w, "\nTotal: %d pods\n", len(pods))
}

var columnWidths = []int{nameWidth, namespaceWidth, statusWidth, restartsWidth}

// row left-aligns cells to the column widths. Cells are never truncated and
// the last cell is not padded.
func row(cells ...string) string {
	var b strings.Builder
	for i, cell := range cells {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(cell)
		if i < len(cells)-1 && i < len(columnWidths) {
			b.WriteString(pad(cell, columnWidths[i]))
		}
	}
	return b.String()
}

// pad returns the spaces that fill s up to width visible cells
func pad(s string, width int) string {
	n := width - lipgloss.Width(s)
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
