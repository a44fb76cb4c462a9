package graphics

import (
	"fmt"
	"math"
	"sync"

	"github.com/go-drift/badger/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontMetrics describes the vertical extent of a font at one pixel size.
// Ascent and Descent are both positive distances from the baseline.
type FontMetrics struct {
	Ascent  float64
	Descent float64
	Leading float64
}

// TextHeight returns the distance from the highest ascender to the lowest
// descender.
func (m FontMetrics) TextHeight() float64 {
	return m.Ascent + m.Descent
}

// MetricsSource reports font metrics for a pixel size.
type MetricsSource interface {
	Metrics(size float64) (FontMetrics, error)
}

// ScaledMetrics is a MetricsSource whose ascent and descent are fixed
// fractions of the requested size. It needs no font data.
type ScaledMetrics struct {
	AscentRatio  float64
	DescentRatio float64
}

// Metrics implements MetricsSource.
func (s ScaledMetrics) Metrics(size float64) (FontMetrics, error) {
	if size <= 0 {
		return FontMetrics{}, nil
	}
	return FontMetrics{Ascent: size * s.AscentRatio, Descent: size * s.DescentRatio}, nil
}

// FontManager creates and caches font faces for a single OpenType font.
// Faces are rendered at 72 DPI so that one point equals one pixel.
type FontManager struct {
	mu    sync.Mutex
	font  *opentype.Font
	faces map[fixedSize]font.Face
}

// fixedSize keys faces by size in 1/64 pixel steps.
type fixedSize int64

func keyFor(size float64) fixedSize {
	return fixedSize(math.Round(size * 64))
}

// NewFontManager parses TTF/OTF data.
func NewFontManager(data []byte) (*FontManager, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, errors.Wrap("graphics.NewFontManager", errors.KindRender, "", err)
	}
	return &FontManager{font: f, faces: make(map[fixedSize]font.Face)}, nil
}

var (
	defaultFontOnce sync.Once
	defaultFont     *FontManager
	defaultFontErr  error
)

// DefaultFontManagerErr returns a shared font manager backed by Go Regular.
func DefaultFontManagerErr() (*FontManager, error) {
	defaultFontOnce.Do(func() {
		defaultFont, defaultFontErr = NewFontManager(goregular.TTF)
	})
	return defaultFont, defaultFontErr
}

// DefaultFontManager returns the shared font manager, reporting and
// returning nil if the bundled font cannot be parsed.
func DefaultFontManager() *FontManager {
	m, err := DefaultFontManagerErr()
	if err != nil {
		errors.ReportErr("graphics.DefaultFontManager", errors.KindRender, "", err)
		return nil
	}
	return m
}

// Face returns a face at the given pixel size.
func (m *FontManager) Face(size float64) (font.Face, error) {
	if m == nil || m.font == nil {
		return nil, fmt.Errorf("graphics: font manager has no font")
	}
	if size <= 0 {
		return nil, fmt.Errorf("graphics: invalid font size %.2f", size)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	key := keyFor(size)
	if face, ok := m.faces[key]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(m.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("graphics: create face at %.2fpx: %w", size, err)
	}
	m.faces[key] = face
	return face, nil
}

// Metrics implements MetricsSource.
func (m *FontManager) Metrics(size float64) (FontMetrics, error) {
	if size <= 0 {
		return FontMetrics{}, nil
	}
	face, err := m.Face(size)
	if err != nil {
		return FontMetrics{}, err
	}
	fm := face.Metrics()
	ascent := float64(fm.Ascent) / 64
	descent := float64(fm.Descent) / 64
	return FontMetrics{
		Ascent:  ascent,
		Descent: descent,
		Leading: math.Max(0, float64(fm.Height)/64-ascent-descent),
	}, nil
}

// MeasureText returns the advance width of text at the given pixel size.
func (m *FontManager) MeasureText(text string, size float64) (float64, error) {
	if text == "" || size <= 0 {
		return 0, nil
	}
	face, err := m.Face(size)
	if err != nil {
		return 0, err
	}
	return float64(font.MeasureString(face, text)) / 64, nil
}

// Close releases all cached faces.
func (m *FontManager) Close() error {
	if m == nil {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for key, face := range m.faces {
		face.Close()
		delete(m.faces, key)
	}
	return nil
}
