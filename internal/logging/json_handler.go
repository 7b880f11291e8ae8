package logging

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"path/filepath"
	"strings"
	"time"
)

// JSONRequestIDKey names the request identifier in JSON records.
const JSONRequestIDKey = "request_id"

// newJSONHandler writes one object per record with "ts", a lowercase
// "level", the request ID under JSONRequestIDKey, similarities rounded to
// four decimals and "elapsed" as fractional milliseconds in "elapsed_ms".
func newJSONHandler(w io.Writer, lvl *slog.LevelVar, addSource bool) slog.Handler {
	opts := slog.HandlerOptions{
		Level:     lvl,
		AddSource: addSource,
		ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
			switch attr.Key {
			case slog.TimeKey:
				attr.Key = "ts"
				if attr.Value.Kind() == slog.KindTime {
					attr.Value = slog.StringValue(attr.Value.Time().UTC().Format(time.RFC3339))
				}
			case slog.LevelKey:
				attr.Value = slog.StringValue(strings.ToLower(attr.Value.String()))
			case slog.SourceKey:
				if src, ok := attr.Value.Any().(*slog.Source); ok && src != nil {
					attr.Value = slog.StringValue(fmt.Sprintf("%s:%d", filepath.Base(src.File), src.Line))
				}
			case FieldCorrelationID:
				attr.Key = JSONRequestIDKey
			case FieldSimilarity:
				if attr.Value.Kind() == slog.KindFloat64 {
					attr.Value = slog.Float64Value(math.Round(attr.Value.Float64()*1e4) / 1e4)
				}
			case FieldElapsed:
				if attr.Value.Kind() == slog.KindDuration {
					attr.Key = FieldElapsed + "_ms"
					attr.Value = slog.Float64Value(float64(attr.Value.Duration().Microseconds()) / 1e3)
				}
			}
			return attr
		},
	}
	return slog.NewJSONHandler(w, &opts)
}
