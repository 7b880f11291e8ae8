package textmatch_test

import (
	"errors"
	"math"
	"slices"
	"testing"

	"streetmatch/internal/textmatch"
)

func mustSensitivity(t *testing.T, value float64) textmatch.Sensitivity {
	t.Helper()
	sens, err := textmatch.NewSensitivity(value)
	if err != nil {
		t.Fatalf("NewSensitivity(%v): %v", value, err)
	}
	return sens
}

func texts(candidates []textmatch.Candidate) []string {
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.Text
	}
	return out
}

func TestNewSensitivity(t *testing.T) {
	tests := []struct {
		value float64
		valid bool
	}{
		{0.5, true},
		{1, true},
		{0.0001, true},
		{0, false},
		{-0.1, false},
		{1.01, false},
		{math.NaN(), false},
	}
	for _, tt := range tests {
		sens, err := textmatch.NewSensitivity(tt.value)
		if tt.valid {
			if err != nil {
				t.Fatalf("NewSensitivity(%v) returned error: %v", tt.value, err)
			}
			if sens.Value() != tt.value {
				t.Fatalf("unexpected value: got %v want %v", sens.Value(), tt.value)
			}
			continue
		}
		if !errors.Is(err, textmatch.ErrInvalidSensitivity) {
			t.Fatalf("NewSensitivity(%v): expected ErrInvalidSensitivity, got %v", tt.value, err)
		}
	}
}

func TestSensitivityAdmitsStrictlyAbove(t *testing.T) {
	sens := mustSensitivity(t, 0.7)
	if sens.Admits(0.7) {
		t.Fatal("score equal to the threshold must be rejected")
	}
	if !sens.Admits(0.7000001) {
		t.Fatal("score above the threshold must be admitted")
	}
}

func TestRankAndKeep(t *testing.T) {
	input := []textmatch.Candidate{
		{Text: "low", Similarity: 0.5},
		{Text: "tie-first", Similarity: 0.8},
		{Text: "best", Similarity: 0.95},
		{Text: "edge", Similarity: 0.6},
		{Text: "tie-second", Similarity: 0.8},
		{Text: "mid", Similarity: 0.7},
	}
	original := slices.Clone(input)
	sens := mustSensitivity(t, 0.6)

	tests := []struct {
		keep int
		want []string
	}{
		{0, []string{}},
		{1, []string{"best"}},
		{3, []string{"best", "tie-first", "tie-second"}},
		{10, []string{"best", "tie-first", "tie-second", "mid"}},
	}
	for _, tt := range tests {
		got := textmatch.RankAndKeep(input, sens, tt.keep)
		if got == nil {
			t.Fatalf("keep=%d: expected empty slice, got nil", tt.keep)
		}
		if !slices.Equal(texts(got), tt.want) {
			t.Fatalf("keep=%d: unexpected ranking: got %q want %q", tt.keep, texts(got), tt.want)
		}
	}
	if !slices.Equal(input, original) {
		t.Fatalf("input was modified: %v", input)
	}
}

func TestRankAndKeepIdempotent(t *testing.T) {
	input := []textmatch.Candidate{
		{Text: "a", Similarity: 0.71},
		{Text: "b", Similarity: 0.9},
		{Text: "c", Similarity: 0.9},
		{Text: "d", Similarity: 0.75},
		{Text: "e", Similarity: 0.2},
	}
	sens := mustSensitivity(t, 0.7)
	for keep := 0; keep <= len(input)+1; keep++ {
		once := textmatch.RankAndKeep(input, sens, keep)
		twice := textmatch.RankAndKeep(once, sens, keep)
		if !slices.Equal(once, twice) {
			t.Fatalf("keep=%d: not idempotent: %v vs %v", keep, once, twice)
		}
	}
}

func TestAdmissionIsMonotonic(t *testing.T) {
	scores := []float64{0.05, 0.3, 0.5, 0.6, 0.61, 0.87, 0.9, 1}
	thresholds := []float64{0.1, 0.5, 0.6, 0.87, 0.99, 1}
	for _, high := range thresholds {
		strict := mustSensitivity(t, high)
		for _, low := range thresholds {
			if low >= high {
				continue
			}
			loose := mustSensitivity(t, low)
			for _, score := range scores {
				if strict.Admits(score) && !loose.Admits(score) {
					t.Fatalf("score %v admitted at %v but rejected at %v", score, high, low)
				}
			}
		}
	}
}

func TestMergeKeepsPartitionOrderForTies(t *testing.T) {
	parts := [][]textmatch.Candidate{
		{{Text: "x", Similarity: 0.8, Source: "a"}},
		nil,
		{{Text: "x", Similarity: 0.8, Source: "c"}, {Text: "y", Similarity: 0.9, Source: "c"}},
		{{Text: "x", Similarity: 0.8, Source: "d"}},
	}
	got := textmatch.Merge(parts, mustSensitivity(t, 0.5), 3)
	want := []textmatch.Candidate{
		{Text: "y", Similarity: 0.9, Source: "c"},
		{Text: "x", Similarity: 0.8, Source: "a"},
		{Text: "x", Similarity: 0.8, Source: "c"},
	}
	if !slices.Equal(got, want) {
		t.Fatalf("unexpected merge: got %v want %v", got, want)
	}
}
