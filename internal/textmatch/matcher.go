package textmatch

import (
	"bufio"
	"context"
	"log/slog"
	"os"
	"strings"

	"streetmatch/internal/logging"
	"streetmatch/internal/similarity"
	"streetmatch/internal/textutil"
)

const maxLineBytes = 1 << 20

// Matcher scores corpus entries against a query with fixed options. It is
// safe for concurrent use.
type Matcher struct {
	opts   Options
	score  similarity.Scorer
	logger *slog.Logger
}

// NewMatcher validates opts and returns a Matcher. A nil logger discards
// output.
func NewMatcher(opts Options, logger *slog.Logger) (*Matcher, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Matcher{
		opts:   opts,
		score:  opts.Algorithm.Scorer(),
		logger: logging.NewComponentLogger(logger, "textmatch"),
	}, nil
}

// Options returns the options the matcher was built with.
func (m *Matcher) Options() Options {
	return m.opts
}

// WithFirstLetterFilter returns a copy of m with the pre-filter toggled.
func (m *Matcher) WithFirstLetterFilter(enabled bool) *Matcher {
	clone := *m
	clone.opts.FirstLetterFilter = enabled
	return &clone
}

// Query builds the comparison form of raw with the matcher's normalizer.
func (m *Matcher) Query(raw string) textutil.Text {
	return m.opts.Normalizer.Text(raw)
}

// SearchLines ranks an in-memory source. Candidates carry no Source.
func (m *Matcher) SearchLines(query textutil.Text, lines []string) []Candidate {
	return RankAndKeep(m.scoreLines(query, lines, ""), m.opts.Sensitivity, m.opts.Keep)
}

// SearchFile ranks the lines of one corpus file. A file that cannot be
// opened or read yields an error wrapping ErrSourceUnreadable.
func (m *Matcher) SearchFile(ctx context.Context, query textutil.Text, path string) ([]Candidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	found, err := m.scanFile(query, path)
	if err != nil {
		return nil, err
	}
	return RankAndKeep(found, m.opts.Sensitivity, m.opts.Keep), nil
}

func (m *Matcher) scanFile(query textutil.Text, path string) ([]Candidate, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, sourceError("open corpus file", err)
	}
	defer file.Close()

	first, hasFirst := query.FirstRune()
	var found []Candidate
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		if c, ok := m.consider(query, first, hasFirst, scanner.Text(), path); ok {
			found = append(found, c)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, sourceError("read corpus file", err)
	}
	return found, nil
}

func (m *Matcher) scoreLines(query textutil.Text, lines []string, source string) []Candidate {
	first, hasFirst := query.FirstRune()
	var found []Candidate
	for _, line := range lines {
		if c, ok := m.consider(query, first, hasFirst, line, source); ok {
			found = append(found, c)
		}
	}
	return found
}

// consider scores one corpus line and reports whether it clears the
// threshold.
func (m *Matcher) consider(query textutil.Text, first rune, hasFirst bool, line, source string) (Candidate, bool) {
	text := strings.TrimSpace(line)
	if text == "" {
		return Candidate{}, false
	}
	cleaned := m.opts.Normalizer.Clean(text)
	if m.opts.FirstLetterFilter && hasFirst {
		if r, ok := textutil.FirstRune(cleaned); !ok || r != first {
			return Candidate{}, false
		}
	}
	score := m.score(query.Cleaned, cleaned)
	if !m.opts.Sensitivity.Admits(score) {
		return Candidate{}, false
	}
	return Candidate{Text: text, Similarity: score, Source: source}, true
}
