package street

import (
	"context"
	"log/slog"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"streetmatch/internal/logging"
	"streetmatch/internal/textmatch"
)

// PlaceResolver maps user-entered place names onto the canonical places
// list. Lookups, including misses, are cached for the configured TTL.
type PlaceResolver struct {
	path    string
	matcher *textmatch.Matcher
	cache   *gocache.Cache
	logger  *slog.Logger
}

// NewPlaceResolver builds a resolver over the places list at path. Only the
// best candidate is used, so opts.Keep is forced to 1. A ttl <= 0 disables
// caching.
func NewPlaceResolver(path string, opts textmatch.Options, ttl time.Duration, logger *slog.Logger) (*PlaceResolver, error) {
	opts.Keep = 1
	opts.FirstLetterFilter = false
	matcher, err := textmatch.NewMatcher(opts, logger)
	if err != nil {
		return nil, err
	}
	r := &PlaceResolver{
		path:    path,
		matcher: matcher,
		logger:  logging.NewComponentLogger(logger, "places"),
	}
	if ttl > 0 {
		r.cache = gocache.New(ttl, 2*ttl)
	}
	return r, nil
}

// Resolve returns the canonical place closest to name. ok is false when no
// place clears the threshold. A places list that cannot be read is an error.
func (r *PlaceResolver) Resolve(ctx context.Context, name string) (canonical string, ok bool, err error) {
	query := r.matcher.Query(name)
	key := query.Cleaned
	if key == "" {
		return "", false, nil
	}
	if r.cache != nil {
		if cached, hit := r.cache.Get(key); hit {
			canonical, _ = cached.(string)
			return canonical, canonical != "", nil
		}
	}

	hits, err := r.matcher.SearchFile(ctx, query, r.path)
	if err != nil {
		return "", false, err
	}
	if len(hits) > 0 {
		canonical = strings.TrimSpace(hits[0].Text)
	}
	if r.cache != nil {
		r.cache.Set(key, canonical, gocache.DefaultExpiration)
	}
	logging.WithContext(ctx, r.logger).Debug("place name resolved",
		logging.String("input", name),
		logging.String("canonical", canonical),
	)
	return canonical, canonical != "", nil
}
