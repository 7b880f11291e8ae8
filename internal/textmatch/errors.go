package textmatch

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSensitivity marks a threshold outside (0, 1].
	ErrInvalidSensitivity = errors.New("invalid sensitivity")
	// ErrInvalidOptions marks matcher options that cannot be used.
	ErrInvalidOptions = errors.New("invalid matcher options")
	// ErrSourceUnreadable wraps the I/O error of a corpus file or directory.
	ErrSourceUnreadable = errors.New("source unreadable")
	// ErrWorkerPanic reports a partition task that panicked. Results from the
	// other partitions are still returned alongside it.
	ErrWorkerPanic = errors.New("search worker panicked")
)

func sourceError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrSourceUnreadable, op, err)
}
