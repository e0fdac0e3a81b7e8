package imaging

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"
)

// encodeTestImage renders a solid-colour image of the given size in the
// requested format.
func encodeTestImage(t *testing.T, width, height int, format string) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 30, B: 30, A: 255})
		}
	}

	var buf bytes.Buffer
	var err error
	switch format {
	case "jpeg":
		err = jpeg.Encode(&buf, img, nil)
	case "png":
		err = png.Encode(&buf, img)
	default:
		t.Fatalf("unsupported test image format: %s", format)
	}
	if err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}

	return buf.Bytes()
}

// decodeDataURI strips the data URI prefix and decodes the embedded JPEG.
func decodeDataURI(t *testing.T, dataURI string) image.Image {
	t.Helper()

	payload := strings.TrimPrefix(dataURI, "data:image/jpeg;base64,")
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		t.Fatalf("payload is not valid base64: %v", err)
	}

	decoded, err := jpeg.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("payload is not a valid JPEG: %v", err)
	}

	return decoded
}

func TestJPEGDataURI_FromJPEG(t *testing.T) {
	data := encodeTestImage(t, 1600, 1200, "jpeg")

	dataURI, err := JPEGDataURI(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(dataURI, "data:image/jpeg;base64,") {
		t.Fatalf("expected data URI prefix, got %q", dataURI[:min(len(dataURI), 40)])
	}

	decoded := decodeDataURI(t, dataURI)
	bounds := decoded.Bounds()
	if bounds.Dx() != 800 {
		t.Errorf("expected stored width 800, got %d", bounds.Dx())
	}
	// 1600x1200 scaled to width 800 keeps the 4:3 ratio.
	if bounds.Dy() != 600 {
		t.Errorf("expected stored height 600, got %d", bounds.Dy())
	}
}

func TestJPEGDataURI_FromPNG(t *testing.T) {
	data := encodeTestImage(t, 400, 200, "png")

	dataURI, err := JPEGDataURI(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	decoded := decodeDataURI(t, dataURI)
	bounds := decoded.Bounds()
	// Narrow sources are upscaled to the fixed storage width.
	if bounds.Dx() != 800 {
		t.Errorf("expected stored width 800, got %d", bounds.Dx())
	}
	if bounds.Dy() != 400 {
		t.Errorf("expected stored height 400, got %d", bounds.Dy())
	}
}

func TestJPEGDataURI_ExtremeAspectRatio(t *testing.T) {
	// A source so wide the scaled height rounds to zero is clamped to one
	// pixel instead of producing an empty image.
	data := encodeTestImage(t, 2000, 1, "png")

	dataURI, err := JPEGDataURI(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	decoded := decodeDataURI(t, dataURI)
	if decoded.Bounds().Dy() < 1 {
		t.Errorf("expected height of at least 1 pixel, got %d", decoded.Bounds().Dy())
	}
}

func TestJPEGDataURI_InvalidData(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty input", nil},
		{"plain text", []byte("this is not an image")},
		{"truncated jpeg header", []byte{0xFF, 0xD8, 0xFF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := JPEGDataURI(tt.data)
			if err == nil {
				t.Error("expected decode error, got nil")
			}
		})
	}
}
