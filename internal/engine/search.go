package engine

import (
	"context"
	"os"

	"streetmatch/internal/logging"
	"streetmatch/internal/similarity"
	"streetmatch/internal/textmatch"
	"streetmatch/internal/textutil"
)

// Files at least this large are split across workers by SearchText.
const parallelFileThreshold = 1 << 20

// SearchOptions are the explicit parameters of a free-text search.
type SearchOptions struct {
	Sensitivity       float64
	Keep              int
	Algorithm         similarity.Algorithm
	FirstLetterFilter bool
	// Workers bounds parallel searches. Zero uses every CPU.
	Workers int
}

// SearchResult holds the ranked candidates of a SearchText call.
type SearchResult struct {
	Query      textutil.Text         `json:"query"`
	Source     string                `json:"source"`
	Requested  int                   `json:"requested"`
	Candidates []textmatch.Candidate `json:"candidates"`
}

// NotFound reports that candidates were requested but none qualified. A
// search with Requested == 0 is never NotFound.
func (r SearchResult) NotFound() bool {
	return r.Requested > 0 && len(r.Candidates) == 0
}

// DefaultSearchOptions returns search options seeded from the [matching]
// section.
func (e *Engine) DefaultSearchOptions() SearchOptions {
	return SearchOptions{
		Sensitivity:       e.cfg.Matching.Sensitivity,
		Keep:              e.cfg.Matching.Keep,
		Algorithm:         e.cfg.MatchingAlgorithm(),
		FirstLetterFilter: e.cfg.Matching.FirstLetterFilter,
		Workers:           e.cfg.Matching.Workers,
	}
}

// SearchText ranks the entries of source, a corpus file or a directory of
// corpus files, against query. The query is compared with the generic text
// normalizer, not the street normalizer.
func (e *Engine) SearchText(ctx context.Context, query, source string, opts SearchOptions) (SearchResult, error) {
	sens, err := textmatch.NewSensitivity(opts.Sensitivity)
	if err != nil {
		return SearchResult{}, err
	}
	m, err := textmatch.NewMatcher(textmatch.Options{
		Sensitivity:       sens,
		Keep:              opts.Keep,
		Algorithm:         opts.Algorithm,
		FirstLetterFilter: opts.FirstLetterFilter,
		Workers:           opts.Workers,
		Normalizer:        textutil.Normalizer{FoldAccents: e.cfg.Matching.FoldAccents},
	}, e.logger)
	if err != nil {
		return SearchResult{}, err
	}

	text := m.Query(query)
	var candidates []textmatch.Candidate
	info, statErr := os.Stat(source)
	switch {
	case statErr == nil && info.IsDir():
		candidates, err = m.SearchDir(ctx, text, source)
	case statErr == nil && info.Size() >= parallelFileThreshold:
		candidates, err = m.SearchFileParallel(ctx, text, source)
	default:
		candidates, err = m.SearchFile(ctx, text, source)
	}
	if err != nil {
		return SearchResult{}, err
	}

	result := SearchResult{Query: text, Source: source, Requested: opts.Keep, Candidates: candidates}
	logging.WithContext(ctx, e.logger).Debug("text search finished",
		logging.String(logging.FieldSource, source),
		logging.String("algorithm", opts.Algorithm.String()),
		logging.Int("candidates", len(candidates)),
	)
	return result, nil
}
