package star

import "time"

// RunStatus is the outcome of one ETL task invocation.
type RunStatus string

const (
	RunSuccess RunStatus = "success"
	RunFailed  RunStatus = "failed"
	RunSkipped RunStatus = "skipped"
)

// LoadRun is an audit record of one ETL task invocation. It is stored
// outside of the load transaction, so failed runs are recorded too.
type LoadRun struct {
	ID            string
	Feed          string
	Fingerprint   string
	Status        RunStatus
	RowsRead      int
	FactsInserted int64
	FactsReplaced int64
	Anomalies     Anomalies
	Error         string
	StartedAt     time.Time
	FinishedAt    time.Time
}
