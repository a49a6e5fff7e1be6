package sheets

import (
	"context"

	"depenses/internal/core"
)

// Ports for outbound adapters.
type (
	// SummaryWriter publishes monthly summaries to a spreadsheet.
	SummaryWriter interface {
		// WriteSummaries replaces the target sheet with a header and one
		// row per month, returning the number of months written.
		WriteSummaries(ctx context.Context, months []core.MonthlySummary) (int, error)
	}
)
