// Package lifecycle defines the stages of the trade database lifecycle:
// schema creation, feed loading and dashboard extraction.
package lifecycle

import (
	"context"
)

// SchemaManager defines the interface for database schema management.
// Schema creation is idempotent - safe to run multiple times.
type SchemaManager interface {
	// Create creates missing tables, indexes and foreign keys of the star
	// schema. Existing tables and their rows are kept.
	Create(ctx context.Context) error
}
