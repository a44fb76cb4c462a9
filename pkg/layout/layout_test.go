package layout

import (
	"testing"

	"github.com/go-drift/badger/pkg/graphics"
)

func TestParseGravity(t *testing.T) {
	tests := []struct {
		in   string
		want Gravity
	}{
		{"top|end", GravityTop | GravityEnd},
		{"TOP | START", GravityTop | GravityStart},
		{"left|bottom", GravityStart | GravityBottom},
		{"right", GravityEnd},
		{"center", GravityCenter},
		{"", GravityNone},
	}
	for _, tt := range tests {
		got, err := ParseGravity(tt.in)
		if err != nil {
			t.Errorf("ParseGravity(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseGravity(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
	if _, err := ParseGravity("top|sideways"); err == nil {
		t.Error("expected error for unknown flag")
	}
}

func TestGravityStringRoundTrip(t *testing.T) {
	for _, g := range []Gravity{GravityTop | GravityEnd, GravityCenter, GravityBottom | GravityStart} {
		parsed, err := ParseGravity(g.String())
		if err != nil || parsed != g {
			t.Errorf("round trip of %s gave %s, %v", g, parsed, err)
		}
	}
	if GravityNone.String() != "none" {
		t.Errorf("GravityNone.String() = %q", GravityNone.String())
	}
}

func TestGravityResolvesAxes(t *testing.T) {
	g := GravityBottom | GravityCenterHorizontal
	if g.Vertical() != VerticalBottom || g.Horizontal() != HorizontalCenter {
		t.Fatalf("axes = %d,%d", g.Vertical(), g.Horizontal())
	}
	if GravityNone.Vertical() != VerticalTop || GravityNone.Horizontal() != HorizontalStart {
		t.Fatal("unset gravity should resolve to top/start")
	}
}

func TestGravityWithinRect(t *testing.T) {
	container := graphics.RectFromLTWH(0, 0, 100, 50)
	child := graphics.Size{Width: 10, Height: 10}
	margins := EdgeInsets{Left: 1, Top: 2, Right: 3, Bottom: 4}

	tests := []struct {
		g    Gravity
		want graphics.Offset
	}{
		{GravityTop | GravityStart, graphics.Offset{X: 1, Y: 2}},
		{GravityTop | GravityEnd, graphics.Offset{X: 87, Y: 2}},
		{GravityBottom | GravityEnd, graphics.Offset{X: 87, Y: 36}},
		{GravityCenter, graphics.Offset{X: 44, Y: 19}},
	}
	for _, tt := range tests {
		if got := tt.g.WithinRect(container, child, margins); got != tt.want {
			t.Errorf("%s.WithinRect = %+v, want %+v", tt.g, got, tt.want)
		}
	}
}

func TestEdgeInsetsMax(t *testing.T) {
	got := EdgeInsets{Left: 5, Top: -12}.Max(EdgeInsets{Left: 3, Top: 0, Right: 8})
	want := EdgeInsets{Left: 5, Top: 0, Right: 8}
	if got != want {
		t.Fatalf("Max = %+v, want %+v", got, want)
	}
}

func TestDensityConversion(t *testing.T) {
	tests := []struct {
		d       Density
		dip     int
		wantDip int
		sp      float64
		wantSp  int
	}{
		{DefaultDensity, 12, 12, 12, 12},
		{Density{Density: 2, ScaledDensity: 2.5}, 12, 24, 12, 30},
		{Density{Density: 1.5, ScaledDensity: 1.5}, 5, 8, 10, 15},
		{Density{Density: 1, ScaledDensity: 1}, -12, -12, 0, 0},
		{Density{}, 7, 7, 7, 7},
	}
	for _, tt := range tests {
		if got := tt.d.DipToPx(tt.dip); got != tt.wantDip {
			t.Errorf("%+v.DipToPx(%d) = %d, want %d", tt.d, tt.dip, got, tt.wantDip)
		}
		if got := tt.d.SpToPx(tt.sp); got != tt.wantSp {
			t.Errorf("%+v.SpToPx(%.1f) = %d, want %d", tt.d, tt.sp, got, tt.wantSp)
		}
	}
}

func TestParamsString(t *testing.T) {
	p := Params{Width: 24, Height: WrapContent, Gravity: GravityTop | GravityEnd, Margins: EdgeInsets{Top: 8, Right: 8}}
	want := "24pxxwrap_content gravity=top|end margins=0,8,8,0"
	if got := p.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
