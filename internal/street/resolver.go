package street

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	"streetmatch/internal/logging"
	"streetmatch/internal/textmatch"
	"streetmatch/internal/textutil"
)

// ResolvedAddress is the outcome of a resolution. Both fields are empty
// when nothing matched.
type ResolvedAddress struct {
	Best *textmatch.Candidate `json:"best,omitempty"`
	// ResolvedScope is the narrow scope file the match came from. It stays
	// empty when the match was only found by the directory-wide fallback.
	ResolvedScope string `json:"resolved_scope,omitempty"`
}

// Found reports whether a candidate was matched.
func (r ResolvedAddress) Found() bool {
	return r.Best != nil
}

// ResolverOptions configures a Resolver.
type ResolverOptions struct {
	PostalCodeDir string
	PlaceDir      string
	// Street drives the directory-wide search. Its FirstLetterFilter
	// enables the filtered first pass.
	Street textmatch.Options
	// FileSensitivity is the threshold inside a single scope file.
	FileSensitivity textmatch.Sensitivity
}

// Resolver runs the narrow-then-broad street lookup.
type Resolver struct {
	postalDir  string
	placeDir   string
	normalizer Normalizer
	file       *textmatch.Matcher
	dir        *textmatch.Matcher
	places     *PlaceResolver
	logger     *slog.Logger
}

// NewResolver validates opts and builds a Resolver. places may be nil, in
// which case place hints search the whole place directory.
func NewResolver(opts ResolverOptions, places *PlaceResolver, logger *slog.Logger) (*Resolver, error) {
	dir, err := textmatch.NewMatcher(opts.Street, logger)
	if err != nil {
		return nil, fmt.Errorf("street matcher: %w", err)
	}
	fileOpts := opts.Street
	fileOpts.Sensitivity = opts.FileSensitivity
	fileOpts.FirstLetterFilter = false
	file, err := textmatch.NewMatcher(fileOpts, logger)
	if err != nil {
		return nil, fmt.Errorf("scope file matcher: %w", err)
	}
	return &Resolver{
		postalDir:  opts.PostalCodeDir,
		placeDir:   opts.PlaceDir,
		normalizer: Normalizer{Text: opts.Street.Normalizer},
		file:       file,
		dir:        dir,
		places:     places,
		logger:     logging.NewComponentLogger(logger, "resolver"),
	}, nil
}

// Normalize cleans raw with the resolver's street normalizer.
func (r *Resolver) Normalize(raw string) textutil.Text {
	return r.normalizer.Normalize(raw)
}

// Resolve matches raw against the corpus selected by hint. An address
// without a digit fails with ErrMissingStreetNumber before any I/O. Finding
// nothing is not an error.
func (r *Resolver) Resolve(ctx context.Context, raw string, hint Hint) (ResolvedAddress, error) {
	if err := RequireStreetNumber(raw); err != nil {
		return ResolvedAddress{}, err
	}
	query := r.normalizer.Normalize(raw)
	logger := logging.WithContext(ctx, r.logger)

	scopeFile, dir, err := r.scope(ctx, hint)
	if err != nil {
		return ResolvedAddress{}, err
	}

	if scopeFile != "" {
		hits, err := r.file.SearchFile(ctx, query, scopeFile)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			logger.Debug("scope file missing, searching whole corpus",
				logging.String(logging.FieldScope, scopeFile),
			)
		case err != nil:
			return ResolvedAddress{}, err
		case len(hits) > 0:
			return ResolvedAddress{Best: &hits[0], ResolvedScope: scopeFile}, nil
		default:
			logger.Debug("no match in scope file, searching whole corpus",
				logging.String(logging.FieldScope, scopeFile),
			)
		}
	}

	best, err := r.searchBroad(ctx, logger, query, dir)
	if err != nil {
		return ResolvedAddress{}, err
	}
	return ResolvedAddress{Best: best}, nil
}

// scope returns the narrow file for hint, if any, and the directory used
// for the fallback. A places list that cannot be read leaves only the
// directory.
func (r *Resolver) scope(ctx context.Context, hint Hint) (string, string, error) {
	if !hint.placeScoped() {
		if hint.Kind != PostalCode {
			return "", r.postalDir, nil
		}
		token := textutil.PostalCodeToken(hint.PostalCode)
		if token == "" {
			return "", r.postalDir, nil
		}
		return filepath.Join(r.postalDir, token), r.postalDir, nil
	}

	if hint.Kind == AnyPlace || r.places == nil {
		return "", r.placeDir, nil
	}
	canonical, ok, err := r.places.Resolve(ctx, hint.Place)
	if err != nil {
		if ctx.Err() != nil {
			return "", "", err
		}
		logging.WithContext(ctx, r.logger).Warn("places list unreadable, searching every place",
			logging.String("place", hint.Place),
			logging.Error(err),
		)
		return "", r.placeDir, nil
	}
	if !ok {
		logging.WithContext(ctx, r.logger).Debug("place name not recognised",
			logging.String("place", hint.Place),
		)
		return "", r.placeDir, nil
	}
	return filepath.Join(r.placeDir, textutil.PlaceToken(canonical)), r.placeDir, nil
}

// searchBroad runs the directory search with the first-letter filter and,
// when that finds nothing, without it.
func (r *Resolver) searchBroad(ctx context.Context, logger *slog.Logger, query textutil.Text, dir string) (*textmatch.Candidate, error) {
	passes := []*textmatch.Matcher{r.dir}
	if r.dir.Options().FirstLetterFilter {
		passes = append(passes, r.dir.WithFirstLetterFilter(false))
	}
	for _, m := range passes {
		hits, err := m.SearchDir(ctx, query, dir)
		if err != nil {
			if !errors.Is(err, textmatch.ErrWorkerPanic) || ctx.Err() != nil {
				return nil, err
			}
			logger.Warn("directory search lost a partition, using partial results",
				logging.String(logging.FieldSource, dir),
				logging.Error(err),
			)
		}
		logger.Debug("directory pass finished",
			logging.String(logging.FieldSource, dir),
			logging.Bool("first_letter_filter", m.Options().FirstLetterFilter),
			logging.Int("candidates", len(hits)),
		)
		if len(hits) > 0 {
			return &hits[0], nil
		}
	}
	return nil, nil
}
