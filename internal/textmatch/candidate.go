package textmatch

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// Candidate is a corpus entry scored against a query.
type Candidate struct {
	Text       string  `json:"text"`
	Similarity float64 `json:"similarity"`
	// Source is the file the entry came from; empty for in-memory sources.
	Source string `json:"source,omitempty"`
}

// Sensitivity is a similarity threshold in (0, 1]. Only scores strictly
// above it are admitted.
type Sensitivity struct {
	value float64
}

// NewSensitivity validates value and returns the threshold.
func NewSensitivity(value float64) (Sensitivity, error) {
	if math.IsNaN(value) || value <= 0 || value > 1 {
		return Sensitivity{}, fmt.Errorf("%w: %v is not in (0, 1]", ErrInvalidSensitivity, value)
	}
	return Sensitivity{value: value}, nil
}

func (s Sensitivity) Value() float64 { return s.value }

// IsZero reports whether s was never constructed.
func (s Sensitivity) IsZero() bool { return s.value == 0 }

// Admits reports whether score clears the threshold.
func (s Sensitivity) Admits(score float64) bool { return score > s.value }

func (s Sensitivity) String() string {
	return fmt.Sprintf("%g", s.value)
}

// RankAndKeep keeps the candidates that clear sens, orders them by
// descending similarity and returns at most keep of them. Ties keep their
// input order. The input slice is not modified.
func RankAndKeep(candidates []Candidate, sens Sensitivity, keep int) []Candidate {
	if keep <= 0 {
		return []Candidate{}
	}
	ranked := make([]Candidate, 0, min(len(candidates), keep))
	for _, c := range candidates {
		if sens.Admits(c.Similarity) {
			ranked = append(ranked, c)
		}
	}
	slices.SortStableFunc(ranked, func(a, b Candidate) int {
		return cmp.Compare(b.Similarity, a.Similarity)
	})
	if len(ranked) > keep {
		ranked = ranked[:keep:keep]
	}
	return ranked
}

// Merge concatenates partial results in the given order and ranks the whole.
func Merge(parts [][]Candidate, sens Sensitivity, keep int) []Candidate {
	total := 0
	for _, part := range parts {
		total += len(part)
	}
	all := make([]Candidate, 0, total)
	for _, part := range parts {
		all = append(all, part...)
	}
	return RankAndKeep(all, sens, keep)
}
