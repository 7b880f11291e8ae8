package textmatch

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"streetmatch/internal/logging"
	"streetmatch/internal/textutil"
)

// SearchDir ranks every regular file of dir, spreading the files across the
// configured number of workers. Files that cannot be read are skipped; an
// unreadable dir is an error wrapping ErrSourceUnreadable.
//
// Every worker is joined before SearchDir returns. When a worker panics or
// ctx is cancelled, the merged results of the partitions that completed are
// returned together with the error.
func (m *Matcher) SearchDir(ctx context.Context, query textutil.Text, dir string) ([]Candidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	files, err := listCorpusFiles(dir)
	if err != nil {
		return nil, err
	}
	if m.opts.Keep == 0 || len(files) == 0 {
		return []Candidate{}, nil
	}

	logger := logging.WithContext(ctx, m.logger)
	chunks := partition(files, m.opts.workerCount(len(files)))
	parts, err := fanOut(ctx, chunks, func(ctx context.Context, paths []string) []Candidate {
		var found []Candidate
		for _, path := range paths {
			if ctx.Err() != nil {
				break
			}
			hits, err := m.scanFile(query, path)
			if err != nil {
				logger.Warn("skipping unreadable corpus file",
					logging.String(logging.FieldSource, path),
					logging.Error(err),
				)
				continue
			}
			found = append(found, hits...)
		}
		return RankAndKeep(found, m.opts.Sensitivity, m.opts.Keep)
	})

	merged := Merge(parts, m.opts.Sensitivity, m.opts.Keep)
	logger.Debug("directory search finished",
		logging.String(logging.FieldSource, dir),
		logging.Int("files", len(files)),
		logging.Int("partitions", len(chunks)),
		logging.Int("candidates", len(merged)),
		logging.Bool("first_letter_filter", m.opts.FirstLetterFilter),
	)
	return merged, err
}

// SearchFileParallel ranks one large corpus file by splitting its lines
// across the configured number of workers. Read failures are returned like
// SearchFile; worker failures behave like SearchDir.
func (m *Matcher) SearchFileParallel(ctx context.Context, query textutil.Text, path string) ([]Candidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}
	if m.opts.Keep == 0 || len(lines) == 0 {
		return []Candidate{}, nil
	}

	chunks := partition(lines, m.opts.workerCount(len(lines)))
	parts, err := fanOut(ctx, chunks, func(ctx context.Context, chunk []string) []Candidate {
		if ctx.Err() != nil {
			return nil
		}
		return RankAndKeep(m.scoreLines(query, chunk, path), m.opts.Sensitivity, m.opts.Keep)
	})
	return Merge(parts, m.opts.Sensitivity, m.opts.Keep), err
}

// partition splits items into at most parts contiguous chunks of equal size,
// the last one possibly shorter.
func partition[T any](items []T, parts int) [][]T {
	if len(items) == 0 {
		return nil
	}
	parts = max(1, min(parts, len(items)))
	size := (len(items) + parts - 1) / parts
	chunks := make([][]T, 0, parts)
	for start := 0; start < len(items); start += size {
		chunks = append(chunks, items[start:min(start+size, len(items))])
	}
	return chunks
}

// fanOut runs task once per chunk in its own goroutine and waits for all of
// them. Results are returned in chunk order.
func fanOut[T any](ctx context.Context, chunks [][]T, task func(context.Context, []T) []Candidate) ([][]Candidate, error) {
	slots := make([][]Candidate, len(chunks))
	errs := make([]error, len(chunks))

	var wg sync.WaitGroup
	for i, chunk := range chunks {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					slots[i] = nil
					errs[i] = fmt.Errorf("%w: partition %d: %v", ErrWorkerPanic, i, r)
				}
			}()
			slots[i] = task(ctx, chunk)
		}()
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		errs = append(errs, err)
	}
	return slots, errors.Join(errs...)
}

func listCorpusFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, sourceError("list corpus directory", err)
	}
	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	return files, nil
}

func readLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, sourceError("open corpus file", err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, sourceError("read corpus file", err)
	}
	return lines, nil
}
