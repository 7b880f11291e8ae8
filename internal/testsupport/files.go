package testsupport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteLines writes one entry per line to path, creating parent directories.
func WriteLines(t testing.TB, path string, lines ...string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	content := strings.Join(lines, "\n")
	if len(lines) > 0 {
		content += "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteRepeated writes count copies of line to path. Useful for corpora large
// enough to split across workers.
func WriteRepeated(t testing.TB, path, line string, count int) {
	t.Helper()

	lines := make([]string, count)
	for i := range lines {
		lines[i] = line
	}
	WriteLines(t, path, lines...)
}

// AssertFileContains fails the test unless the file at path contains want.
func AssertFileContains(t testing.TB, path, want string) {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	if !strings.Contains(string(content), want) {
		t.Fatalf("expected %s to contain %q, got %q", path, want, content)
	}
}
