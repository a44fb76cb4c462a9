package testing

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/badger/pkg/view"
)

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot captures a host tree and the operations painted for it.
type Snapshot struct {
	Tree       *TreeNode   `yaml:"tree,omitempty"`
	DisplayOps []DisplayOp `yaml:"displayOps,omitempty"`
}

// TreeNode is a serialized view node.
type TreeNode struct {
	ID       string      `yaml:"id"`
	Kind     string      `yaml:"kind"`
	Params   string      `yaml:"params"`
	Frame    [4]float64  `yaml:"frame,flow"`
	Children []*TreeNode `yaml:"children,omitempty"`
}

// CaptureSnapshot serializes root and ops.
func CaptureSnapshot(root *view.Node, ops []DisplayOp) *Snapshot {
	return &Snapshot{Tree: captureNode(root), DisplayOps: ops}
}

func captureNode(n *view.Node) *TreeNode {
	if n == nil {
		return nil
	}
	f := n.Frame()
	out := &TreeNode{
		ID:     n.ID(),
		Kind:   n.Kind().String(),
		Params: n.Params().String(),
		Frame:  [4]float64{round2(f.Left), round2(f.Top), round2(f.Width()), round2(f.Height())},
	}
	for _, c := range n.Children() {
		out.Children = append(out.Children, captureNode(c))
	}
	return out
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When
// BADGER_UPDATE_SNAPSHOTS=1 is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv("BADGER_UPDATE_SNAPSHOTS") == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := LoadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: BADGER_UPDATE_SNAPSHOTS=1 go test -run %s", path, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: BADGER_UPDATE_SNAPSHOTS=1 go test -run %s", path, diff, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := s.Marshal()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Marshal encodes the snapshot as YAML.
func (s *Snapshot) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// LoadSnapshot reads a snapshot written by UpdateFile.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Snapshot
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse snapshot %s: %w", path, err)
	}
	return &s, nil
}

// Diff returns a line diff between this snapshot and other, or "" if they
// encode identically.
func (s *Snapshot) Diff(other *Snapshot) string {
	a, _ := s.Marshal()
	b, _ := other.Marshal()
	if bytes.Equal(a, b) {
		return ""
	}
	al := strings.Split(string(a), "\n")
	bl := strings.Split(string(b), "\n")
	var sb strings.Builder
	for i := 0; i < max(len(al), len(bl)); i++ {
		var x, y string
		if i < len(al) {
			x = al[i]
		}
		if i < len(bl) {
			y = bl[i]
		}
		if x != y {
			fmt.Fprintf(&sb, "line %d:\n  - %s\n  + %s\n", i+1, y, x)
		}
	}
	return sb.String()
}
