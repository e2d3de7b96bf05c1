package fetch

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"

	"github.com/tklug26/modis-fetch/internal/model"
	"github.com/tklug26/modis-fetch/internal/modis"
)

// Run ID prefix
const (
	RunIDPrefix = "run-"
)

// Batch drives the transfer driver across a closed day-of-year range, one
// attempt per day plus an optional counterpart-platform attempt.
type Batch struct {
	fetcher     Fetcher
	counterpart bool
}

// NewBatch creates a batch driver. When counterpart is true each day gets a
// second, independent fetch for the counterpart-platform product.
func NewBatch(fetcher Fetcher, counterpart bool) *Batch {
	return &Batch{fetcher: fetcher, counterpart: counterpart}
}

// Run processes days [startDay, endDay] in ascending order. Every attempt
// contributes exactly one outcome to the summary: the resolved filename on
// success, or one failure increment otherwise. A failed attempt never stops
// the loop, and the primary and counterpart attempts for a day are
// independent of each other. The returned error aggregates all failure
// diagnostics and is nil when every attempt succeeded.
func (b *Batch) Run(product string, year, startDay, endDay, hGrid, vGrid int) (model.BatchSummary, error) {
	summary := model.BatchSummary{
		RunID:     generateRunID(),
		StartedAt: time.Now(),
	}

	counterpartProduct, haveCounterpart := modis.CounterpartProduct(product)
	if b.counterpart && !haveCounterpart {
		log.Printf("%s: product %s has no counterpart platform, fetching primary only",
			summary.RunID, product)
	}

	var errs *multierror.Error
	for day := startDay; day <= endDay; day++ {
		requests := []model.DownloadRequest{
			{Product: product, Year: year, DayOfYear: day, HGrid: hGrid, VGrid: vGrid},
		}
		if b.counterpart && haveCounterpart {
			requests = append(requests, model.DownloadRequest{
				Product: counterpartProduct, Year: year, DayOfYear: day, HGrid: hGrid, VGrid: vGrid,
			})
		}

		for _, req := range requests {
			res := b.fetcher.Fetch(req)
			if res.OK() {
				summary.Downloaded = append(summary.Downloaded, res.Filename)
				continue
			}
			summary.Failures++
			errs = multierror.Append(errs, fmt.Errorf("%s %s: %s: %s",
				req.Product, req.Date(), res.Status, res.LastError))
		}
	}

	summary.FinishedAt = time.Now()
	log.Printf("%s: %d downloaded, %d failed", summary.RunID, len(summary.Downloaded), summary.Failures)
	return summary, errs.ErrorOrNil()
}

// generateRunID generates a unique run ID using UUID v7 for better uniqueness and time ordering
func generateRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(RunIDPrefix+"%d", time.Now().UnixNano())
	}
	return RunIDPrefix + id.String()
}
