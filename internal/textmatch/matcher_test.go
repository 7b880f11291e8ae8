package textmatch_test

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"slices"
	"testing"

	"streetmatch/internal/similarity"
	"streetmatch/internal/testsupport"
	"streetmatch/internal/textmatch"
)

func newMatcher(t *testing.T, opts textmatch.Options) *textmatch.Matcher {
	t.Helper()
	m, err := textmatch.NewMatcher(opts, nil)
	if err != nil {
		t.Fatalf("NewMatcher returned error: %v", err)
	}
	return m
}

func seujetCorpus(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "1201")
	testsupport.WriteLines(t, path, testsupport.PostalCodeStreets["1201"]...)
	return path
}

func TestSearchFileFindsSingleCandidate(t *testing.T) {
	path := seujetCorpus(t)
	m := newMatcher(t, textmatch.Options{
		Sensitivity: mustSensitivity(t, 0.7),
		Keep:        5,
		Algorithm:   similarity.Jaro,
	})

	got, err := m.SearchFile(context.Background(), m.Query("qu du seujet 36"), path)
	if err != nil {
		t.Fatalf("SearchFile returned error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected exactly one candidate, got %v", got)
	}
	if got[0].Text != "quai du seujet 36" {
		t.Fatalf("unexpected candidate: got %q want %q", got[0].Text, "quai du seujet 36")
	}
	if got[0].Similarity <= 0.7 {
		t.Fatalf("expected similarity above 0.7, got %v", got[0].Similarity)
	}
	if got[0].Source != path {
		t.Fatalf("unexpected source: got %q want %q", got[0].Source, path)
	}
}

func TestSearchFileHighSensitivityFindsNothing(t *testing.T) {
	path := seujetCorpus(t)
	m := newMatcher(t, textmatch.Options{
		Sensitivity: mustSensitivity(t, 0.99),
		Keep:        5,
		Algorithm:   similarity.Jaro,
	})

	got, err := m.SearchFile(context.Background(), m.Query("qu du seujet 36"), path)
	if err != nil {
		t.Fatalf("SearchFile returned error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no candidates, got %v", got)
	}
}

func TestSearchFileKeepZero(t *testing.T) {
	path := seujetCorpus(t)
	m := newMatcher(t, textmatch.Options{
		Sensitivity: mustSensitivity(t, 0.01),
		Keep:        0,
		Algorithm:   similarity.Levenshtein,
	})

	got, err := m.SearchFile(context.Background(), m.Query("quai du seujet 36"), path)
	if err != nil {
		t.Fatalf("SearchFile returned error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil result, got %#v", got)
	}
}

func TestSearchFileMissingIsUnreadable(t *testing.T) {
	m := newMatcher(t, textmatch.Options{Sensitivity: mustSensitivity(t, 0.5), Keep: 1})

	_, err := m.SearchFile(context.Background(), m.Query("x"), filepath.Join(t.TempDir(), "9999"))
	if !errors.Is(err, textmatch.ErrSourceUnreadable) {
		t.Fatalf("expected ErrSourceUnreadable, got %v", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected wrapped fs.ErrNotExist, got %v", err)
	}
}

func TestSearchFileRejectsDirectory(t *testing.T) {
	m := newMatcher(t, textmatch.Options{Sensitivity: mustSensitivity(t, 0.5), Keep: 1})

	_, err := m.SearchFile(context.Background(), m.Query("x"), t.TempDir())
	if !errors.Is(err, textmatch.ErrSourceUnreadable) {
		t.Fatalf("expected ErrSourceUnreadable for a directory, got %v", err)
	}
}

func TestSearchLinesFirstLetterFilter(t *testing.T) {
	lines := []string{"  quai du seujet 36  ", "", "u du seujet 36", "Quai-du-Seujet, 36"}
	opts := textmatch.Options{
		Sensitivity: mustSensitivity(t, 0.7),
		Keep:        10,
		Algorithm:   similarity.Jaro,
	}
	unfiltered := newMatcher(t, opts)
	filtered := unfiltered.WithFirstLetterFilter(true)
	query := unfiltered.Query("quai du seujet 36")

	got := filtered.SearchLines(query, lines)
	if want := []string{"quai du seujet 36", "Quai-du-Seujet, 36"}; !slices.Equal(texts(got), want) {
		t.Fatalf("unexpected filtered result: got %q want %q", texts(got), want)
	}
	if got[0].Similarity != 1 || got[1].Similarity != 1 {
		t.Fatalf("expected punctuation-insensitive exact matches, got %v", got)
	}
	if got[0].Source != "" {
		t.Fatalf("expected no source for in-memory lines, got %q", got[0].Source)
	}

	all := unfiltered.SearchLines(query, lines)
	if len(all) != 3 {
		t.Fatalf("expected the filter off to admit all three entries, got %v", all)
	}
	if unfiltered.Options().FirstLetterFilter {
		t.Fatal("WithFirstLetterFilter must not modify the receiver")
	}
}

func TestNewMatcherValidatesOptions(t *testing.T) {
	tests := []struct {
		name string
		opts textmatch.Options
		want error
	}{
		{"zero sensitivity", textmatch.Options{Keep: 1}, textmatch.ErrInvalidSensitivity},
		{"negative keep", textmatch.Options{Sensitivity: mustSensitivity(t, 0.5), Keep: -1}, textmatch.ErrInvalidOptions},
		{"negative workers", textmatch.Options{Sensitivity: mustSensitivity(t, 0.5), Workers: -1}, textmatch.ErrInvalidOptions},
		{"unknown algorithm", textmatch.Options{Sensitivity: mustSensitivity(t, 0.5), Algorithm: similarity.Algorithm(42)}, textmatch.ErrInvalidOptions},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := textmatch.NewMatcher(tt.opts, nil); !errors.Is(err, tt.want) {
				t.Fatalf("unexpected error: got %v want %v", err, tt.want)
			}
		})
	}
}

func TestSearchFileHonoursCancellation(t *testing.T) {
	path := seujetCorpus(t)
	m := newMatcher(t, textmatch.Options{Sensitivity: mustSensitivity(t, 0.5), Keep: 1})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := m.SearchFile(ctx, m.Query("quai du seujet 36"), path); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
