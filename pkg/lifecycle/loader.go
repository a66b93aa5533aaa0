package lifecycle

import (
	"context"

	"github.com/egytrade/tradedb/pkg/star"
)

// Loader is an ETL task of one feed. A single call is one unit of work:
// either all dimension and fact rows of the batch are committed, or none.
type Loader interface {
	// Feed returns the feed name, "trade" or "economy".
	Feed() string

	// Load reads the feed input and loads it into the star schema.
	// The returned run describes the invocation, also on failure.
	Load(ctx context.Context) (star.LoadRun, error)
}
