package media

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"strconv"
	"time"

	// Registered for image.DecodeConfig.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/llehouerou/reel/internal/carousel"
	"github.com/llehouerou/reel/internal/geom"
)

var (
	ErrNoSize        = errors.New("media: no usable size")
	ErrProbeNotFound = errors.New("media: ffprobe not found")
)

// ProbeFunc measures a file with an external tool.
type ProbeFunc func(ctx context.Context, path string) (geom.Size, error)

// Measurer reports the natural pixel (or point, for PDF) size of items.
type Measurer struct {
	probe   ProbeFunc
	timeout time.Duration
}

// NewMeasurer returns a measurer that uses ffprobe for videos and for image
// formats the standard decoders do not register.
func NewMeasurer() *Measurer {
	return &Measurer{probe: FFProbe, timeout: 10 * time.Second}
}

// WithProbe returns a copy of m that probes with fn.
func (m *Measurer) WithProbe(fn ProbeFunc) *Measurer {
	c := *m
	c.probe = fn
	return &c
}

// Measure returns the preferred size of it.
func (m *Measurer) Measure(ctx context.Context, it Item) (geom.Size, error) {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	var (
		size geom.Size
		err  error
	)
	switch it.Kind {
	case carousel.Image:
		size, err = imageSize(it.Path)
		if errors.Is(err, image.ErrFormat) && m.probe != nil {
			size, err = m.probe(ctx, it.Path)
		}
	case carousel.Video:
		if m.probe == nil {
			return geom.Size{}, ErrProbeNotFound
		}
		size, err = m.probe(ctx, it.Path)
	case carousel.PDF:
		size, err = pdfSize(it.Path)
	default:
		return geom.Size{}, fmt.Errorf("media: unknown kind %v", it.Kind)
	}
	if err != nil {
		return geom.Size{}, fmt.Errorf("measure %s: %w", it.Name, err)
	}
	if !size.IsPositive() {
		return geom.Size{}, fmt.Errorf("measure %s: %w", it.Name, ErrNoSize)
	}
	return size, nil
}

func imageSize(path string) (geom.Size, error) {
	f, err := os.Open(path)
	if err != nil {
		return geom.Size{}, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(bufio.NewReader(f))
	if err != nil {
		return geom.Size{}, err
	}
	return geom.Size{Width: float64(cfg.Width), Height: float64(cfg.Height)}, nil
}

// pdfScanLimit bounds how much of a PDF is searched for a MediaBox.
const pdfScanLimit = 4 << 20

var mediaBoxKey = []byte("/MediaBox")

func pdfSize(path string) (geom.Size, error) {
	f, err := os.Open(path)
	if err != nil {
		return geom.Size{}, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, pdfScanLimit))
	if err != nil {
		return geom.Size{}, err
	}
	return parseMediaBox(data)
}

// parseMediaBox reads the first "/MediaBox [x0 y0 x1 y1]" in data.
func parseMediaBox(data []byte) (geom.Size, error) {
	for {
		i := bytes.Index(data, mediaBoxKey)
		if i < 0 {
			return geom.Size{}, ErrNoSize
		}
		data = data[i+len(mediaBoxKey):]
		if box, ok := parseBox(data); ok {
			w, h := box[2]-box[0], box[3]-box[1]
			if w < 0 {
				w = -w
			}
			if h < 0 {
				h = -h
			}
			return geom.Size{Width: w, Height: h}, nil
		}
	}
}

func parseBox(data []byte) ([4]float64, bool) {
	var box [4]float64
	data = bytes.TrimLeft(data, " \t\r\n")
	if len(data) == 0 || data[0] != '[' {
		return box, false
	}
	end := bytes.IndexByte(data, ']')
	if end < 0 {
		return box, false
	}
	fields := bytes.Fields(data[1:end])
	if len(fields) != 4 {
		return box, false
	}
	for i, f := range fields {
		v, err := strconv.ParseFloat(string(f), 64)
		if err != nil {
			return box, false
		}
		box[i] = v
	}
	return box, true
}
