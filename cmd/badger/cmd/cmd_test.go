package cmd

import (
	"bytes"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	badgertest "github.com/go-drift/badger/pkg/testing"
)

const testConfig = `version: v1
styles:
  inbox:
    shape: circle
    width: 28
    height: 28
    gravity: top|end
    margin: {top: 8, right: 8}
  tag:
    shape: square
    width: 30
    height: 20
`

func projectWithConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "badger.yaml"), []byte(testConfig), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("BADGER_CONFIG", "")
	t.Setenv("BADGER_DENSITY", "")
	return dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(out, Version) {
		t.Errorf("version output %q does not mention %s", out, Version)
	}
}

func TestOps_DefaultBadge(t *testing.T) {
	dir := projectWithConfig(t)
	out, err := execute(t, "ops", "--dir", dir, "--style", "", "--text", "", "--count", "3")
	if err != nil {
		t.Fatalf("ops: %v", err)
	}

	var report opsReport
	if err := yaml.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, out)
	}
	if report.Shape != "circle" || report.Text != "3" {
		t.Errorf("report = %+v", report)
	}
	if report.Width != defaultSizeDip || report.Height != defaultSizeDip {
		t.Errorf("size = %vx%v, want %d", report.Width, report.Height, defaultSizeDip)
	}
	if len(report.Ops) != 2 || report.Ops[0].Op != "drawCircle" || report.Ops[1].Op != "drawText" {
		t.Errorf("ops = %+v", report.Ops)
	}
}

func TestOps_ConfiguredStyle(t *testing.T) {
	dir := projectWithConfig(t)
	out, err := execute(t, "ops", "--dir", dir, "--style", "tag", "--text", "new")
	if err != nil {
		t.Fatalf("ops: %v", err)
	}
	var report opsReport
	if err := yaml.Unmarshal([]byte(out), &report); err != nil {
		t.Fatal(err)
	}
	if report.Style != "tag" || report.Shape != "square" || report.Text != "new" {
		t.Errorf("report = %+v", report)
	}
	if report.Width != 30 || report.Height != 20 {
		t.Errorf("size = %vx%v, want 30x20", report.Width, report.Height)
	}
}

func TestOps_UnknownStyle(t *testing.T) {
	dir := projectWithConfig(t)
	if _, err := execute(t, "ops", "--dir", dir, "--style", "missing"); err == nil {
		t.Fatal("expected error for unknown style")
	}
}

func TestRender_WritesPNG(t *testing.T) {
	dir := projectWithConfig(t)
	outPath := filepath.Join(t.TempDir(), "inbox.png")
	if _, err := execute(t, "render", "--dir", dir, "--style", "inbox", "--count", "5", "--out", outPath); err != nil {
		t.Fatalf("render: %v", err)
	}

	f, err := os.Open(outPath)
	if err != nil {
		t.Fatalf("missing output: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 28 || b.Dy() != 28 {
		t.Errorf("image size = %dx%d, want 28x28", b.Dx(), b.Dy())
	}
	if _, _, _, a := img.At(14, 14).RGBA(); a == 0 {
		t.Error("badge center should be painted")
	}
}

func TestRender_DensityFromEnvFile(t *testing.T) {
	dir := projectWithConfig(t)
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("BADGER_DENSITY=2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	// godotenv does not override variables that are already set.
	os.Unsetenv("BADGER_DENSITY")
	t.Cleanup(func() { os.Unsetenv("BADGER_DENSITY") })

	outPath := filepath.Join(t.TempDir(), "inbox.png")
	if _, err := execute(t, "render", "--dir", dir, "--style", "inbox", "--out", outPath); err != nil {
		t.Fatalf("render: %v", err)
	}
	f, err := os.Open(outPath)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 56 || cfg.Height != 56 {
		t.Errorf("image size = %dx%d, want 56x56", cfg.Width, cfg.Height)
	}
}

func TestDemo_TogglesBadge(t *testing.T) {
	dir := projectWithConfig(t)
	out, err := execute(t, "demo", "--dir", dir, "--style", "", "--toggles", "2", "--format", "text")
	if err != nil {
		t.Fatalf("demo: %v", err)
	}

	for _, step := range []string{"# initial", "# bind imgBadge to ivImage", "# toggle 1: unbind", "# toggle 2: bind"} {
		if !strings.Contains(out, step) {
			t.Errorf("missing step %q in:\n%s", step, out)
		}
	}
	// Bound after the first bind and the second toggle only.
	if got := strings.Count(out, "leaf#imgBadge"); got != 2 {
		t.Errorf("imgBadge appears %d times, want 2:\n%s", got, out)
	}
	// The wrapper stays once inserted.
	if got := strings.Count(out, "frame#ivImage"); got != 3 {
		t.Errorf("wrapper appears %d times, want 3:\n%s", got, out)
	}
}

func TestDemo_YAMLSnapshots(t *testing.T) {
	dir := projectWithConfig(t)
	out, err := execute(t, "demo", "--dir", dir, "--style", "", "--toggles", "1", "--format", "yaml")
	if err != nil {
		t.Fatalf("demo: %v", err)
	}

	var snaps []badgertest.Snapshot
	dec := yaml.NewDecoder(strings.NewReader(out))
	for {
		var s badgertest.Snapshot
		if err := dec.Decode(&s); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v\n%s", err, out)
		}
		snaps = append(snaps, s)
	}
	if len(snaps) != 3 {
		t.Fatalf("got %d documents, want 3:\n%s", len(snaps), out)
	}

	bound := snaps[1].Tree
	if bound == nil || len(bound.Children) != 3 {
		t.Fatalf("bound tree = %+v", bound)
	}
	wrapper := bound.Children[1]
	if wrapper.Kind != "frame" || wrapper.ID != "ivImage" || len(wrapper.Children) != 2 || wrapper.Children[1].ID != "imgBadge" {
		t.Errorf("wrapper = %+v", wrapper)
	}
	if got := len(snaps[2].Tree.Children[1].Children); got != 1 {
		t.Errorf("wrapper after unbind has %d children, want 1", got)
	}
}

func TestDemo_UnknownFormat(t *testing.T) {
	dir := projectWithConfig(t)
	if _, err := execute(t, "demo", "--dir", dir, "--format", "xml"); err == nil {
		t.Fatal("expected error for unknown format")
	}
	demoFormat = "text"
}
