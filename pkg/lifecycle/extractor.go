package lifecycle

import (
	"context"

	"github.com/egytrade/tradedb/pkg/dashboard"
)

// Extractor reads the star schema and writes the dashboard document.
type Extractor interface {
	// Extract builds the document and writes it to the configured path.
	// Nothing is written if any step fails.
	Extract(ctx context.Context) (*dashboard.Dashboard, error)
}
