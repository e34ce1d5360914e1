package dto

// RecountJobResponse acknowledges an enqueued ledger recount.
type RecountJobResponse struct {
	JobID  string `json:"job_id"`
	Status string `json:"status"` // queued | running | done
}

// RecountDrift describes one item whose materialized quantity no longer
// matches the sum of its ledger deltas.
type RecountDrift struct {
	ItemID       string  `json:"item_id"`
	Name         string  `json:"name"`
	Materialized float64 `json:"materialized"`
	Replayed     float64 `json:"replayed"`
	Drift        float64 `json:"drift"`
}

// RecountReport is the stored result of a completed recount job.
type RecountReport struct {
	JobID        string         `json:"job_id"`
	Status       string         `json:"status"`
	StartedAt    string         `json:"started_at"`
	FinishedAt   string         `json:"finished_at,omitempty"`
	ItemsChecked int            `json:"items_checked"`
	Drifted      []RecountDrift `json:"drifted"`
}
