package street_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"streetmatch/internal/config"
	"streetmatch/internal/street"
	"streetmatch/internal/testsupport"
	"streetmatch/internal/textmatch"
)

func sensitivity(t *testing.T, value float64) textmatch.Sensitivity {
	t.Helper()
	sens, err := textmatch.NewSensitivity(value)
	if err != nil {
		t.Fatalf("NewSensitivity(%v): %v", value, err)
	}
	return sens
}

func newPlaces(t *testing.T, cfg *config.Config, ttl time.Duration) *street.PlaceResolver {
	t.Helper()
	places, err := street.NewPlaceResolver(cfg.Corpus.PlacesFile, textmatch.Options{
		Sensitivity: sensitivity(t, cfg.Places.Sensitivity),
		Algorithm:   cfg.PlacesAlgorithm(),
	}, ttl, nil)
	if err != nil {
		t.Fatalf("NewPlaceResolver returned error: %v", err)
	}
	return places
}

func newResolver(t *testing.T, cfg *config.Config) *street.Resolver {
	t.Helper()
	r, err := street.NewResolver(street.ResolverOptions{
		PostalCodeDir: cfg.Corpus.PostalCodeDir,
		PlaceDir:      cfg.Corpus.PlaceDir,
		Street: textmatch.Options{
			Sensitivity:       sensitivity(t, cfg.Matching.Sensitivity),
			Keep:              cfg.Matching.Keep,
			Algorithm:         cfg.MatchingAlgorithm(),
			FirstLetterFilter: cfg.Matching.FirstLetterFilter,
			Workers:           cfg.Matching.Workers,
		},
		FileSensitivity: sensitivity(t, cfg.Matching.FileSensitivity),
	}, newPlaces(t, cfg, cfg.PlaceCacheTTL()), nil)
	if err != nil {
		t.Fatalf("NewResolver returned error: %v", err)
	}
	return r
}

func TestResolve(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithWorkers(3))
	r := newResolver(t, cfg)
	postal := func(code string) string { return filepath.Join(cfg.Corpus.PostalCodeDir, code) }
	place := func(token string) string { return filepath.Join(cfg.Corpus.PlaceDir, token) }

	tests := []struct {
		name       string
		raw        string
		hint       street.Hint
		wantText   string
		wantSource string
		wantScope  string
	}{
		{"postal code file match", "qu du seujet 36", street.PostalCodeHint(1201), "quai du seujet 36", postal("1201"), postal("1201")},
		{"unknown postal code falls back", "qu du seujet 36", street.PostalCodeHint(9999999), "quai du seujet 36", postal("1201"), ""},
		{"no hint uses unfiltered pass", "u du seujet 36", street.Hint{}, "quai du seujet 36", postal("1201"), ""},
		{"file match tolerates first letter typo", "u du seujet 36", street.PostalCodeHint(1201), "quai du seujet 36", postal("1201"), postal("1201")},
		{"wrong postal code falls back", "rue du bourg 8", street.PostalCodeHint(1201), "rue du bourg 8", postal("1000"), ""},
		{"leading number rotated", "5 Haggenstr.", street.PostalCodeHint(9650), "haggenstrasse 5", postal("9650"), postal("9650")},
		{"place file match", "aarstr. 76", street.PlaceHint("Bern"), "aarstrasse 76", place("bern"), place("bern")},
		{"fuzzy place name", "rue du bourg 20", street.PlaceHint("Sierre"), "rue du bourg 20", place("siders%2Csierre"), place("siders%2Csierre")},
		{"place file below threshold", "ch de saint-cierges 3", street.PlaceHint("Bercher"), "chemin de saint-cierges 3", place("bercher"), ""},
		{"unknown place searches place dir", "kramgase 49", street.PlaceHint("Zürich"), "kramgasse 49", place("bern"), ""},
		{"any place", "bundesplatz 3", street.AnyPlaceHint(), "bundesplatz 3", place("bern"), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Resolve(context.Background(), tt.raw, tt.hint)
			if err != nil {
				t.Fatalf("Resolve returned error: %v", err)
			}
			if !got.Found() {
				t.Fatalf("expected a candidate for %q", tt.raw)
			}
			if got.Best.Text != tt.wantText {
				t.Fatalf("unexpected candidate: got %q want %q", got.Best.Text, tt.wantText)
			}
			if got.Best.Source != tt.wantSource {
				t.Fatalf("unexpected source: got %q want %q", got.Best.Source, tt.wantSource)
			}
			if got.ResolvedScope != tt.wantScope {
				t.Fatalf("unexpected scope: got %q want %q", got.ResolvedScope, tt.wantScope)
			}
		})
	}
}

func TestResolveNothingFound(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	r := newResolver(t, cfg)

	got, err := r.Resolve(context.Background(), "zzz 999", street.PostalCodeHint(1201))
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if got.Found() || got.ResolvedScope != "" {
		t.Fatalf("expected empty result, got %+v", got)
	}
}

func TestResolveMissingNumberFailsBeforeIO(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithEmptyCorpus())
	r := newResolver(t, cfg)

	_, err := r.Resolve(context.Background(), "Bernstrasse", street.PostalCodeHint(3000))
	if !errors.Is(err, street.ErrMissingStreetNumber) {
		t.Fatalf("expected ErrMissingStreetNumber, got %v", err)
	}
}

func TestResolveMissingCorpusIsUnreadable(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithEmptyCorpus())
	r := newResolver(t, cfg)

	_, err := r.Resolve(context.Background(), "Bernstrasse 7", street.PostalCodeHint(3000))
	if !errors.Is(err, textmatch.ErrSourceUnreadable) {
		t.Fatalf("expected ErrSourceUnreadable, got %v", err)
	}
}

func TestResolveUnreadablePlacesListSearchesPlaceDir(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	r := newResolver(t, cfg)
	if err := os.Remove(cfg.Corpus.PlacesFile); err != nil {
		t.Fatalf("remove places file: %v", err)
	}

	got, err := r.Resolve(context.Background(), "rue du bourg 20", street.PlaceHint("Sierre"))
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if !got.Found() || got.Best.Text != "rue du bourg 20" {
		t.Fatalf("unexpected resolution: %+v", got)
	}
	if want := filepath.Join(cfg.Corpus.PlaceDir, "siders%2Csierre"); got.Best.Source != want {
		t.Fatalf("unexpected source: got %q want %q", got.Best.Source, want)
	}
	if got.ResolvedScope != "" {
		t.Fatalf("expected no resolved scope, got %q", got.ResolvedScope)
	}
}

func TestResolveScopeFileThatIsADirectoryPropagates(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	if err := os.Mkdir(filepath.Join(cfg.Corpus.PostalCodeDir, "3000"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	r := newResolver(t, cfg)

	_, err := r.Resolve(context.Background(), "Bernstrasse 7", street.PostalCodeHint(3000))
	if !errors.Is(err, textmatch.ErrSourceUnreadable) {
		t.Fatalf("expected ErrSourceUnreadable, got %v", err)
	}
}

func TestPlaceResolverCachesLookups(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	places := newPlaces(t, cfg, time.Minute)
	ctx := context.Background()

	canonical, ok, err := places.Resolve(ctx, "Berne")
	if err != nil || !ok || canonical != "bern" {
		t.Fatalf("unexpected resolution: %q ok=%v err=%v", canonical, ok, err)
	}
	if _, ok, err := places.Resolve(ctx, "Zürich"); err != nil || ok {
		t.Fatalf("expected Zürich to be unknown, got ok=%v err=%v", ok, err)
	}

	if err := os.Remove(cfg.Corpus.PlacesFile); err != nil {
		t.Fatalf("remove places file: %v", err)
	}
	canonical, ok, err = places.Resolve(ctx, " berne ")
	if err != nil || !ok || canonical != "bern" {
		t.Fatalf("expected cached resolution, got %q ok=%v err=%v", canonical, ok, err)
	}
	if _, ok, err := places.Resolve(ctx, "zürich"); err != nil || ok {
		t.Fatalf("expected cached miss, got ok=%v err=%v", ok, err)
	}
}

func TestPlaceResolverWithoutCacheRereadsList(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	places := newPlaces(t, cfg, 0)
	ctx := context.Background()

	if canonical, ok, err := places.Resolve(ctx, "Genf"); err != nil || !ok || canonical != "genève" {
		t.Fatalf("unexpected resolution: %q ok=%v err=%v", canonical, ok, err)
	}
	if err := os.Remove(cfg.Corpus.PlacesFile); err != nil {
		t.Fatalf("remove places file: %v", err)
	}
	if _, _, err := places.Resolve(ctx, "Genf"); !errors.Is(err, textmatch.ErrSourceUnreadable) {
		t.Fatalf("expected ErrSourceUnreadable, got %v", err)
	}
}
