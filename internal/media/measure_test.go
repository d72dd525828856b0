package media

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/reel/internal/carousel"
	"github.com/llehouerou/reel/internal/geom"
)

func noProbe(context.Context, string) (geom.Size, error) {
	return geom.Size{}, ErrProbeNotFound
}

func TestMeasure_PNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 40, 30))))
	path := writeFile(t, t.TempDir(), "a.png", buf.Bytes())

	m := NewMeasurer().WithProbe(noProbe)
	size, err := m.Measure(context.Background(), Item{Path: path, Name: "a.png", Kind: carousel.Image})
	require.NoError(t, err)
	assert.Equal(t, geom.Size{Width: 40, Height: 30}, size)
}

func TestMeasure_GIF(t *testing.T) {
	var buf bytes.Buffer
	img := image.NewPaletted(image.Rect(0, 0, 12, 20), []color.Color{color.Black})
	require.NoError(t, gif.Encode(&buf, img, nil))
	path := writeFile(t, t.TempDir(), "a.gif", buf.Bytes())

	size, err := NewMeasurer().WithProbe(noProbe).Measure(context.Background(), Item{Path: path, Kind: carousel.Image})
	require.NoError(t, err)
	assert.Equal(t, geom.Size{Width: 12, Height: 20}, size)
}

func TestMeasure_UnregisteredImageFallsBackToProbe(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.webp", []byte("RIFF....WEBP"))

	var probed string
	m := NewMeasurer().WithProbe(func(_ context.Context, p string) (geom.Size, error) {
		probed = p
		return geom.Size{Width: 3, Height: 2}, nil
	})
	size, err := m.Measure(context.Background(), Item{Path: path, Kind: carousel.Image})
	require.NoError(t, err)
	assert.Equal(t, path, probed)
	assert.Equal(t, geom.Size{Width: 3, Height: 2}, size)
}

func TestMeasure_Video(t *testing.T) {
	m := NewMeasurer().WithProbe(func(context.Context, string) (geom.Size, error) {
		return geom.Size{Width: 1920, Height: 1080}, nil
	})
	size, err := m.Measure(context.Background(), Item{Path: "/v.mp4", Kind: carousel.Video})
	require.NoError(t, err)
	assert.Equal(t, geom.Size{Width: 1920, Height: 1080}, size)

	m = NewMeasurer().WithProbe(noProbe)
	_, err = m.Measure(context.Background(), Item{Path: "/v.mp4", Kind: carousel.Video})
	require.ErrorIs(t, err, ErrProbeNotFound)
}

func TestMeasure_ZeroSizeIsAnError(t *testing.T) {
	m := NewMeasurer().WithProbe(func(context.Context, string) (geom.Size, error) {
		return geom.Size{Width: 0, Height: 10}, nil
	})
	_, err := m.Measure(context.Background(), Item{Path: "/v.mp4", Kind: carousel.Video})
	require.ErrorIs(t, err, ErrNoSize)
}

func TestMeasure_PDF(t *testing.T) {
	doc := []byte("%PDF-1.4\n1 0 obj << /Type /Pages /MediaBox[0 0 612 792] >>\nendobj\n")
	path := writeFile(t, t.TempDir(), "a.pdf", doc)

	size, err := NewMeasurer().Measure(context.Background(), Item{Path: path, Kind: carousel.PDF})
	require.NoError(t, err)
	assert.Equal(t, geom.Size{Width: 612, Height: 792}, size)
}

func TestParseMediaBox(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    geom.Size
		wantErr bool
	}{
		{"spaces", "/MediaBox [ 0 0 595.28 841.89 ]", geom.Size{Width: 595.28, Height: 841.89}, false},
		{"offset origin", "/MediaBox [10 20 110 220]", geom.Size{Width: 100, Height: 200}, false},
		{"inverted", "/MediaBox [100 100 0 0]", geom.Size{Width: 100, Height: 100}, false},
		{"indirect then inline", "/MediaBox 5 0 R /MediaBox [0 0 3 4]", geom.Size{Width: 3, Height: 4}, false},
		{"missing", "%PDF-1.7", geom.Size{}, true},
		{"truncated", "/MediaBox [0 0 3", geom.Size{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseMediaBox([]byte(tt.data))
			if tt.wantErr {
				if !errors.Is(err, ErrNoSize) {
					t.Fatalf("err = %v, want ErrNoSize", err)
				}
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want.Width, got.Width, 1e-9)
			assert.InDelta(t, tt.want.Height, got.Height, 1e-9)
		})
	}
}

func TestParseFFProbe(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		want    geom.Size
		wantErr bool
	}{
		{
			name: "plain",
			json: `{"streams":[{"codec_type":"video","width":1280,"height":720}]}`,
			want: geom.Size{Width: 1280, Height: 720},
		},
		{
			name: "rotate tag",
			json: `{"streams":[{"codec_type":"video","width":1920,"height":1080,"tags":{"rotate":"90"}}]}`,
			want: geom.Size{Width: 1080, Height: 1920},
		},
		{
			name: "display matrix",
			json: `{"streams":[{"codec_type":"video","width":1920,"height":1080,"side_data_list":[{"rotation":-90}]}]}`,
			want: geom.Size{Width: 1080, Height: 1920},
		},
		{
			name: "upside down",
			json: `{"streams":[{"codec_type":"video","width":640,"height":480,"side_data_list":[{"rotation":180}]}]}`,
			want: geom.Size{Width: 640, Height: 480},
		},
		{
			name:    "audio only",
			json:    `{"streams":[{"codec_type":"audio"}]}`,
			wantErr: true,
		},
		{
			name:    "garbage",
			json:    `not json`,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseFFProbe([]byte(tt.json))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
