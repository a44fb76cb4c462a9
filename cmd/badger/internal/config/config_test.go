package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-drift/badger/pkg/badge"
	badgeerrors "github.com/go-drift/badger/pkg/errors"
	"github.com/go-drift/badger/pkg/graphics"
	"github.com/go-drift/badger/pkg/layout"
)

const sample = `version: v1.2.0
density:
  density: 2
  scaled: 2.5
styles:
  inbox:
    shape: circle
    width: 28
    height: 28
    gravity: top|end
    margin: {top: 8, right: 8}
    text_size: 12
    text_color: "#FFFFFF"
    background: "#FF0000"
  tag:
    shape: round_rect
    gravity: top|start
    margin: {top: -12, left: -12}
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseSample(t *testing.T) {
	cfg, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := cfg.StyleNames(); len(got) != 2 || got[0] != "inbox" || got[1] != "tag" {
		t.Fatalf("StyleNames() = %v", got)
	}
	if cfg.Styles["inbox"].Margin.Right != 8 {
		t.Fatalf("inbox margin = %+v", cfg.Styles["inbox"].Margin)
	}
}

func TestStyleBuilder(t *testing.T) {
	cfg, err := Parse([]byte(sample))
	if err != nil {
		t.Fatal(err)
	}
	density := layout.Density{Density: 2, ScaledDensity: 2.5}
	b, err := cfg.Styles["inbox"].Builder(density)
	if err != nil {
		t.Fatal(err)
	}
	p := b.Params()
	if p.Width != 56 || p.Height != 56 {
		t.Errorf("size = %dx%d, want 56x56", p.Width, p.Height)
	}
	if p.Gravity != layout.GravityTop|layout.GravityEnd {
		t.Errorf("gravity = %s", p.Gravity)
	}
	if p.Margins != (layout.EdgeInsets{Top: 8, Right: 8}) {
		t.Errorf("margins = %+v", p.Margins)
	}
	s := b.Style()
	if s.Shape != badge.ShapeCircle || s.TextSize != 30 || s.TextColor != graphics.ColorWhite || s.BackgroundColor != graphics.ColorRed {
		t.Errorf("style = %+v", s)
	}

	// Negative margins lose against the zero default.
	tag, err := cfg.Styles["tag"].Builder(density)
	if err != nil {
		t.Fatal(err)
	}
	if tag.Params().Margins != (layout.EdgeInsets{}) {
		t.Errorf("tag margins = %+v, want zero", tag.Params().Margins)
	}
	if tag.Params().Width != layout.WrapContent {
		t.Errorf("tag width = %d, want wrap content", tag.Params().Width)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad version", "version: one"},
		{"future major", "version: v2.0.0"},
		{"negative density", "density: {density: -1}"},
		{"bad shape", "styles: {a: {shape: hexagon}}"},
		{"bad gravity", "styles: {a: {gravity: up}}"},
		{"bad color", "styles: {a: {background: red}}"},
		{"negative size", "styles: {a: {width: -3}}"},
		{"bad yaml", "styles: ["},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			var be *badgeerrors.BadgeError
			if !errors.As(err, &be) || be.Kind != badgeerrors.KindConfig {
				t.Fatalf("error %v should be a config BadgeError", err)
			}
		})
	}
}

func TestLoadOptionalMissing(t *testing.T) {
	cfg, err := LoadOptional(t.TempDir())
	if err != nil {
		t.Fatalf("LoadOptional: %v", err)
	}
	if len(cfg.Styles) != 0 {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestResolveDefaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module example.com/acme/inbox/v2\n\ngo 1.24\n")
	t.Setenv(EnvConfig, "")
	t.Setenv(EnvDensity, "")

	r, err := Resolve(dir)
	if err != nil {
		t.Fatal(err)
	}
	if r.ProjectName != "inbox" {
		t.Errorf("ProjectName = %q, want inbox", r.ProjectName)
	}
	if r.Density != layout.DefaultDensity {
		t.Errorf("Density = %+v", r.Density)
	}
	if s, err := r.Style(""); err != nil || s != (StyleConfig{}) {
		t.Errorf("Style(\"\") = %+v, %v", s, err)
	}
	if _, err := r.Style("missing"); err == nil {
		t.Error("expected error for unknown style")
	}
}

func TestResolveFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileName, sample)
	t.Setenv(EnvConfig, "")
	t.Setenv(EnvDensity, "")

	r, err := Resolve(dir)
	if err != nil {
		t.Fatal(err)
	}
	if r.Density != (layout.Density{Density: 2, ScaledDensity: 2.5}) {
		t.Errorf("Density = %+v", r.Density)
	}
	if r.ProjectName != filepath.Base(dir) {
		t.Errorf("ProjectName = %q", r.ProjectName)
	}

	t.Setenv(EnvDensity, "3")
	r, err = Resolve(dir)
	if err != nil {
		t.Fatal(err)
	}
	if r.Density != (layout.Density{Density: 3, ScaledDensity: 3}) {
		t.Errorf("env Density = %+v", r.Density)
	}

	t.Setenv(EnvDensity, "fast")
	if _, err := Resolve(dir); err == nil {
		t.Error("expected error for invalid BADGER_DENSITY")
	}
}

func TestResolveConfigOverride(t *testing.T) {
	other := t.TempDir()
	path := writeFile(t, other, "custom.yaml", "styles: {dot: {shape: square}}\n")
	t.Setenv(EnvConfig, path)
	t.Setenv(EnvDensity, "")

	r, err := Resolve(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if r.Path != path {
		t.Errorf("Path = %q, want %q", r.Path, path)
	}
	if _, ok := r.Styles["dot"]; !ok {
		t.Errorf("styles = %v", r.Styles)
	}

	t.Setenv(EnvConfig, filepath.Join(other, "missing.yaml"))
	if _, err := Resolve(t.TempDir()); err == nil {
		t.Error("an explicit config path must exist")
	}
}
