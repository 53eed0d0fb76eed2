package testing

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/sceneui/pkg/render"
)

// UpdateSnapshotsEnv names the environment variable that rewrites golden
// files instead of comparing against them.
const UpdateSnapshotsEnv = "SCENEUI_UPDATE_SNAPSHOTS"

// TestingT is the subset of *testing.T used by this package, allowing test
// doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
	Cleanup(func())
}

// Snapshot is a YAML rendering of a render tree. Handlers are omitted.
type Snapshot struct {
	data []byte
}

// CaptureSnapshot serializes root.
func CaptureSnapshot(root render.Node) (*Snapshot, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, fmt.Errorf("failed to encode render tree: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode render tree: %w", err)
	}
	return &Snapshot{data: buf.Bytes()}, nil
}

// String returns the YAML text.
func (s *Snapshot) String() string {
	return string(s.data)
}

// Diff returns a line diff between s and other, or "" if they are equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	if bytes.Equal(s.data, other.data) {
		return ""
	}
	return cmp.Diff(lines(other.data), lines(s.data))
}

// MatchesFile compares s against a golden file. When UpdateSnapshotsEnv is
// set to 1 the file is written instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv(UpdateSnapshotsEnv) == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: %s=1 go test -run %s", path, UpdateSnapshotsEnv, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(&Snapshot{data: data}); diff != "" {
		t.Errorf("snapshot mismatch: %s (-want +got)\n%s\n\nTo update: %s=1 go test -run %s", path, diff, UpdateSnapshotsEnv, t.Name())
	}
}

// UpdateFile writes s to path, creating directories as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, s.data, 0o644)
}

func lines(data []byte) []string {
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}
