package textmatch

import (
	"fmt"
	"runtime"

	"streetmatch/internal/similarity"
	"streetmatch/internal/textutil"
)

// Options configures a Matcher.
type Options struct {
	Sensitivity Sensitivity
	// Keep is the maximum number of candidates returned. Zero returns none.
	Keep      int
	Algorithm similarity.Algorithm
	// FirstLetterFilter skips corpus entries whose first character differs
	// from the query's before scoring them.
	FirstLetterFilter bool
	// Workers bounds parallel searches. Zero uses runtime.NumCPU.
	Workers    int
	Normalizer textutil.Normalizer
}

// Validate reports options that cannot drive a search.
func (o Options) Validate() error {
	if o.Sensitivity.IsZero() {
		return fmt.Errorf("%w: sensitivity must be set", ErrInvalidSensitivity)
	}
	if o.Keep < 0 {
		return fmt.Errorf("%w: keep must be >= 0, got %d", ErrInvalidOptions, o.Keep)
	}
	if o.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0, got %d", ErrInvalidOptions, o.Workers)
	}
	if _, err := o.Algorithm.MarshalText(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}
	return nil
}

// workerCount returns how many partitions to use for items inputs.
func (o Options) workerCount(items int) int {
	workers := o.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return max(1, min(workers, items))
}
