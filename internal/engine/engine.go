package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"streetmatch/internal/config"
	"streetmatch/internal/logging"
	"streetmatch/internal/street"
	"streetmatch/internal/textmatch"
	"streetmatch/internal/textutil"
)

// Engine resolves and searches addresses against the configured corpus.
type Engine struct {
	cfg      *config.Config
	resolver *street.Resolver
	logger   *slog.Logger
}

// New builds an Engine from cfg. A nil logger discards output.
func New(cfg *config.Config, logger *slog.Logger) (*Engine, error) {
	if cfg == nil {
		return nil, errors.New("engine: config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}

	streetOpts, err := StreetOptions(cfg)
	if err != nil {
		return nil, err
	}
	fileSens, err := textmatch.NewSensitivity(cfg.Matching.FileSensitivity)
	if err != nil {
		return nil, fmt.Errorf("matching.file_sensitivity: %w", err)
	}
	placeSens, err := textmatch.NewSensitivity(cfg.Places.Sensitivity)
	if err != nil {
		return nil, fmt.Errorf("places.sensitivity: %w", err)
	}

	places, err := street.NewPlaceResolver(cfg.Corpus.PlacesFile, textmatch.Options{
		Sensitivity: placeSens,
		Algorithm:   cfg.PlacesAlgorithm(),
		Normalizer:  streetOpts.Normalizer,
	}, cfg.PlaceCacheTTL(), logger)
	if err != nil {
		return nil, fmt.Errorf("place resolver: %w", err)
	}
	resolver, err := street.NewResolver(street.ResolverOptions{
		PostalCodeDir:   cfg.Corpus.PostalCodeDir,
		PlaceDir:        cfg.Corpus.PlaceDir,
		Street:          streetOpts,
		FileSensitivity: fileSens,
	}, places, logger)
	if err != nil {
		return nil, err
	}

	return &Engine{
		cfg:      cfg,
		resolver: resolver,
		logger:   logging.NewComponentLogger(logger, "engine"),
	}, nil
}

// StreetOptions converts the [matching] section into matcher options for the
// directory-level search.
func StreetOptions(cfg *config.Config) (textmatch.Options, error) {
	sens, err := textmatch.NewSensitivity(cfg.Matching.Sensitivity)
	if err != nil {
		return textmatch.Options{}, fmt.Errorf("matching.sensitivity: %w", err)
	}
	return textmatch.Options{
		Sensitivity:       sens,
		Keep:              cfg.Matching.Keep,
		Algorithm:         cfg.MatchingAlgorithm(),
		FirstLetterFilter: cfg.Matching.FirstLetterFilter,
		Workers:           cfg.Matching.Workers,
		Normalizer:        textutil.Normalizer{FoldAccents: cfg.Matching.FoldAccents},
	}, nil
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() *config.Config {
	return e.cfg
}

// NormalizeAddress returns the street comparison form of raw, exactly as
// ResolveAddress compares it.
func (e *Engine) NormalizeAddress(raw string) textutil.Text {
	return e.resolver.Normalize(raw)
}

// ResolveAddress matches raw against the corpus scoped by hint. It fails
// with street.ErrMissingStreetNumber for addresses without a digit and with
// textmatch.ErrSourceUnreadable when the corpus cannot be read. An empty
// ResolvedAddress means nothing matched.
func (e *Engine) ResolveAddress(ctx context.Context, raw string, hint street.Hint) (street.ResolvedAddress, error) {
	if _, ok := logging.RequestIDFromContext(ctx); !ok {
		ctx = logging.WithRequestID(ctx, "")
	}
	logger := logging.WithContext(ctx, e.logger)
	start := time.Now()

	resolved, err := e.resolver.Resolve(ctx, raw, hint)
	if err != nil {
		logger.Warn("address resolution failed",
			logging.String("address", raw),
			logging.String("hint", hint.String()),
			logging.Error(err),
		)
		return street.ResolvedAddress{}, err
	}

	attrs := []logging.Attr{
		logging.String("address", raw),
		logging.String("hint", hint.String()),
		logging.Bool("found", resolved.Found()),
		logging.Duration(logging.FieldElapsed, time.Since(start)),
	}
	if resolved.Found() {
		attrs = append(attrs,
			logging.String("match", resolved.Best.Text),
			logging.Float64(logging.FieldSimilarity, resolved.Best.Similarity),
			logging.String(logging.FieldScope, resolved.ResolvedScope),
		)
	}
	logger.Info("address resolved", logging.Args(attrs...)...)
	return resolved, nil
}
