package ports

// RunStat is one run-ledger entry: what happened when the pipeline
// processed (or skipped) a directory.
type RunStat struct {
	Dir          string `json:"dir"`
	Language     string `json:"language"`
	Files        int    `json:"files"`
	Records      int    `json:"records"`
	SkippedFiles int    `json:"skipped_files"`
	Skipped      bool   `json:"skipped"`
	DurationMs   int64  `json:"duration_ms"`
	Timestamp    int64  `json:"timestamp"`
}

// Storage persists the run ledger. The concrete implementation (bbolt)
// lives in internal/adapters/bbolt. When nil, runs are simply not recorded.
type Storage interface {
	// RecordRun appends one entry to the ledger.
	RecordRun(stat RunStat) error

	// ListRuns returns ledger entries for a language in insertion order.
	// An empty language returns entries for all languages.
	ListRuns(language string) ([]RunStat, error)

	// Close closes the underlying database.
	Close() error
}
