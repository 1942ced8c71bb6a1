// Package metrics times run phases and aggregates prediction stats.
package metrics

import (
	"fmt"
	"time"
)

// Timed runs fn and returns how long it took.
func Timed(fn func()) time.Duration {
	start := time.Now()
	fn()
	return time.Since(start)
}

// Report aggregates the outcome of one full run: how many predictions
// matched their labels and how long each phase took.
type Report struct {
	Matches int
	Total   int

	ParseTime time.Duration
	TrainTime time.Duration
	MatchTime time.Duration
}

// Accuracy returns the fraction of correct predictions in [0, 1].
func (r Report) Accuracy() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Matches) / float64(r.Total)
}

// String renders the stats block printed at the end of a run.
func (r Report) String() string {
	return fmt.Sprintf(
		"Neural Network Stats:\n"+
			"  Matches: %d / %d (%.2f%%)\n"+
			"  Parsing time: %dms\n"+
			"  Training time: %dms\n"+
			"  Matching time: %dms",
		r.Matches, r.Total, r.Accuracy()*100,
		r.ParseTime.Milliseconds(), r.TrainTime.Milliseconds(), r.MatchTime.Milliseconds(),
	)
}
