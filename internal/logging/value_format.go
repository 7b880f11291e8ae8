package logging

import (
	"log/slog"
	"path/filepath"
	"strconv"
	"time"
)

// fieldText renders a console field. Similarities get four decimals and
// absolute corpus paths are cut to their last two elements ("plzs/1201").
func fieldText(key string, v slog.Value) string {
	v = v.Resolve()
	switch {
	case key == FieldSimilarity && v.Kind() == slog.KindFloat64:
		return strconv.FormatFloat(v.Float64(), 'f', 4, 64)
	case (key == FieldSource || key == FieldScope) && v.Kind() == slog.KindString:
		return quoteIfNeeded(corpusPath(v.String()))
	}

	switch v.Kind() {
	case slog.KindTime:
		return v.Time().In(time.Local).Format(logTimestampLayout)
	case slog.KindDuration:
		return v.Duration().Round(time.Microsecond).String()
	case slog.KindFloat64:
		return strconv.FormatFloat(v.Float64(), 'f', -1, 64)
	default:
		return quoteIfNeeded(v.String())
	}
}

func corpusPath(p string) string {
	if !filepath.IsAbs(p) {
		return p
	}
	dir, file := filepath.Split(filepath.Clean(p))
	if file == "" {
		return p
	}
	return filepath.Join(filepath.Base(dir), file)
}

func quoteIfNeeded(s string) string {
	if s == "" {
		return `""`
	}
	for _, r := range s {
		if r <= ' ' || r == '=' || r == '"' {
			return strconv.Quote(s)
		}
	}
	return s
}
