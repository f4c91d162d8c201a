package dataset

import (
	"os"
	"path/filepath"
	"testing"
)

// writeRaw writes literal CSV content for tests that need a malformed
// file the fixture builders refuse to produce.
func writeRaw(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "input.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write raw fixture: %v", err)
	}
	return path
}
