package testsupport

import (
	"path/filepath"
	"testing"

	"streetmatch/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t           testing.TB
	baseDir     string
	cfg         *config.Config
	emptyCorpus bool
}

// NewConfig produces a config whose corpus lives in a fresh temp directory.
// The Swiss fixture corpus is written unless WithEmptyCorpus is passed.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Corpus.PostalCodeDir = filepath.Join(base, "plzs")
	cfgVal.Corpus.PlaceDir = filepath.Join(base, "places")
	cfgVal.Corpus.PlacesFile = filepath.Join(base, "places.txt")
	cfgVal.Logging.Level = "debug"

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}
	for _, opt := range opts {
		opt(builder)
	}
	if !builder.emptyCorpus {
		WriteSwissCorpus(t, builder.cfg)
	}
	if err := builder.cfg.Validate(); err != nil {
		t.Fatalf("invalid test config: %v", err)
	}

	return builder.cfg
}

// WithEmptyCorpus skips writing the fixture corpus.
func WithEmptyCorpus() ConfigOption {
	return func(b *configBuilder) {
		b.emptyCorpus = true
	}
}

// WithWorkers sets the parallelism of directory searches.
func WithWorkers(n int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Matching.Workers = n
	}
}

// WithAlgorithm sets the street matching algorithm by name.
func WithAlgorithm(name string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Matching.Algorithm = name
	}
}

// WithSensitivities sets the directory and file thresholds.
func WithSensitivities(dir, file float64) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Matching.Sensitivity = dir
		b.cfg.Matching.FileSensitivity = file
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Corpus.PostalCodeDir)
}
