// Package memory keeps exported summaries in memory, for tests and dry runs.
package memory

import (
	"context"
	"sync"

	"depenses/internal/core"
	"depenses/internal/sheets"
)

// Writer implements sheets.SummaryWriter by keeping the last values matrix.
type Writer struct {
	mu     sync.Mutex
	values [][]any
	writes int
}

var _ sheets.SummaryWriter = (*Writer)(nil)

func New() *Writer {
	return &Writer{}
}

// WriteSummaries replaces the stored matrix.
func (w *Writer) WriteSummaries(ctx context.Context, months []core.MonthlySummary) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	values := sheets.Values(months)
	w.mu.Lock()
	defer w.mu.Unlock()
	w.values = values
	w.writes++
	return len(months), nil
}

// Values returns a copy of the last written matrix, header included.
func (w *Writer) Values() [][]any {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([][]any, len(w.values))
	for i, row := range w.values {
		out[i] = append([]any(nil), row...)
	}
	return out
}

// Writes counts WriteSummaries calls that succeeded.
func (w *Writer) Writes() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.writes
}
