// Package progress tracks chunk completion across all concurrently running
// language workers and renders a single-line console bar.
package progress

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
)

// DefaultBarWidth is the visual width of the console bar in characters.
const DefaultBarWidth = 40

var barFill = color.New(color.FgGreen).SprintFunc()

// Tracker counts processed chunks against a total fixed at submission time.
// Advance is safe for concurrent use; the counters live behind one mutex.
type Tracker struct {
	mu        sync.Mutex
	processed int
	total     int

	out   io.Writer
	width int
}

// NewTracker creates a tracker for a fixed chunk total. A nil writer
// disables rendering, which is what tests want.
func NewTracker(total int, out io.Writer) *Tracker {
	return &Tracker{
		total: total,
		out:   out,
		width: DefaultBarWidth,
	}
}

// TotalChunks computes the fixed chunk total for a run: word and description
// columns are separate chunk streams, hence the factor of two.
func TotalChunks(rows, chunkSize, languages int) int {
	if rows <= 0 || chunkSize <= 0 || languages <= 0 {
		return 0
	}
	perColumn := (rows + chunkSize - 1) / chunkSize
	return perColumn * 2 * languages
}

// Advance atomically increments the processed count, re-renders the bar, and
// returns the new (processed, total) pair.
func (t *Tracker) Advance() (int, int) {
	t.mu.Lock()
	t.processed++
	processed, total := t.processed, t.total
	t.mu.Unlock()

	t.render(processed, total, false)
	return processed, total
}

// Snapshot returns the current (processed, total) pair.
func (t *Tracker) Snapshot() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.processed, t.total
}

// Finish draws the bar at 100% and terminates the line.
func (t *Tracker) Finish() {
	t.mu.Lock()
	total := t.total
	t.mu.Unlock()
	t.render(total, total, true)
}

func (t *Tracker) render(processed, total int, done bool) {
	if t.out == nil {
		return
	}

	pct := 0.0
	fill := 0
	if total > 0 {
		pct = float64(processed) / float64(total) * 100
		fill = t.width * processed / total
	}
	if fill > t.width {
		fill = t.width
	}

	bar := barFill(strings.Repeat("=", fill)) + strings.Repeat("-", t.width-fill)
	fmt.Fprintf(t.out, "\rTranslation Progress: [%s] %.1f%%", bar, pct)
	if done {
		fmt.Fprintln(t.out)
	}
}
