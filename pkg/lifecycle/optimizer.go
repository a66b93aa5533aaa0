package lifecycle

import "context"

// Optimizer maintains the star schema after loads.
type Optimizer interface {
	// Optimize reclaims space of replaced facts and refreshes query
	// planner statistics of star schema tables.
	Optimize(ctx context.Context) error
}
