package model

import "time"

// BatchSummary accumulates the outcome of one batch run over a day range.
// Downloaded is append-only in processing order; Failures counts every
// attempt (primary or counterpart) that did not produce a file.
type BatchSummary struct {
	RunID      string
	Downloaded []string
	Failures   int
	StartedAt  time.Time
	FinishedAt time.Time
}

// Attempts returns the total number of fetch attempts recorded
func (s BatchSummary) Attempts() int {
	return len(s.Downloaded) + s.Failures
}
