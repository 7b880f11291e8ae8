package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"streetmatch/internal/engine"
	"streetmatch/internal/logging"
	"streetmatch/internal/street"
)

var batchHeader = []string{"index", "street", "location", "match", "scope"}

type batchStats struct {
	Rows      int
	Matched   int
	Unmatched int
	Skipped   int
}

func newBatchCommand(ctx *commandContext) *cobra.Command {
	var (
		outputPath string
		skipHeader bool
	)

	cmd := &cobra.Command{
		Use:   "batch <input.tsv>",
		Short: "Resolve a TSV file of addresses",
		Long: "Batch reads rows of index<TAB>street<TAB>location and writes them back with\n" +
			"the matched street and the scope it was found in. A numeric location is a\n" +
			"postal code, anything else a place name. Rows without a street number are\n" +
			"written with empty match columns.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := ctx.ensureEngine()
			if err != nil {
				return err
			}
			logger := logging.NewComponentLogger(ctx.logger, "batch")

			in, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open batch input: %w", err)
			}
			defer in.Close()

			out := cmd.OutOrStdout()
			if target := strings.TrimSpace(outputPath); target != "" {
				f, release, err := openLockedOutput(target)
				if err != nil {
					return err
				}
				defer release()
				out = f
			}

			stats, err := runBatch(cmd.Context(), eng, logger, in, out, skipHeader)
			if err != nil {
				return err
			}
			logger.Info("batch finished",
				logging.String(logging.FieldSource, args[0]),
				logging.Int("rows", stats.Rows),
				logging.Int("matched", stats.Matched),
				logging.Int("unmatched", stats.Unmatched),
				logging.Int("skipped", stats.Skipped),
			)
			if outputPath != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Resolved %d of %d rows into %s\n", stats.Matched, stats.Rows, outputPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write results to this file instead of stdout")
	cmd.Flags().BoolVar(&skipHeader, "skip-header", false, "Ignore the first input row")
	return cmd
}

// openLockedOutput creates target under an exclusive lock held in a sibling
// .lock file. The returned func closes the file and releases the lock.
func openLockedOutput(target string) (*os.File, func(), error) {
	if dir := filepath.Dir(target); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("create output directory %q: %w", dir, err)
		}
	}
	lock := flock.New(target + ".lock")
	ok, err := lock.TryLock()
	if err != nil {
		return nil, nil, fmt.Errorf("acquire output lock: %w", err)
	}
	if !ok {
		return nil, nil, fmt.Errorf("another batch run is writing %s", target)
	}
	f, err := os.Create(target)
	if err != nil {
		_ = lock.Unlock()
		return nil, nil, fmt.Errorf("create batch output: %w", err)
	}
	release := func() {
		_ = f.Close()
		_ = lock.Unlock()
	}
	return f, release, nil
}

func runBatch(ctx context.Context, eng *engine.Engine, logger *slog.Logger, in io.Reader, out io.Writer, skipHeader bool) (batchStats, error) {
	reader := csv.NewReader(in)
	reader.Comma = '\t'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	writer := csv.NewWriter(out)
	writer.Comma = '\t'
	if err := writer.Write(batchHeader); err != nil {
		return batchStats{}, fmt.Errorf("write batch header: %w", err)
	}

	var stats batchStats
	for line := 1; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return stats, fmt.Errorf("read batch input: %w", err)
		}
		if line == 1 && skipHeader {
			continue
		}
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		row := padRecord(record, 3)
		index, address, location := row[0], row[1], row[2]
		stats.Rows++

		hint, err := locationHint(location)
		if err != nil {
			logger.Warn("ignoring unusable location",
				logging.String("index", index),
				logging.String("location", location),
				logging.Error(err),
			)
			hint = street.Hint{}
		}

		var match, scope string
		resolved, err := eng.ResolveAddress(logging.WithRequestID(ctx, ""), address, hint)
		switch {
		case errors.Is(err, street.ErrMissingStreetNumber):
			stats.Skipped++
			logger.Warn("row has no street number",
				logging.String("index", index),
				logging.String("address", address),
				logging.Int("line", line),
			)
		case err != nil:
			return stats, fmt.Errorf("row %s (line %d): %w", index, line, err)
		case resolved.Found():
			stats.Matched++
			match = resolved.Best.Text
			scope = scopeLabel(resolved.ResolvedScope)
		default:
			stats.Unmatched++
		}

		if err := writer.Write([]string{index, address, location, match, scope}); err != nil {
			return stats, fmt.Errorf("write batch row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return stats, fmt.Errorf("flush batch output: %w", err)
	}
	return stats, nil
}

func padRecord(record []string, width int) []string {
	row := make([]string, width)
	for i := 0; i < width && i < len(record); i++ {
		row[i] = strings.TrimSpace(record[i])
	}
	return row
}
