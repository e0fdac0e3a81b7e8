// Package imaging converts user-uploaded door photos into the inline form
// stored on door records: every image is decoded, scaled down to a fixed
// width, re-encoded as JPEG and embedded as a base64 data URI. There is no
// separate blob store; each door carries its own image.
package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"

	// Register decoders for the raster formats accepted on upload.
	_ "image/gif"
	_ "image/png"

	"golang.org/x/image/draw"
)

const (
	// targetWidth is the fixed width every stored door image is scaled to.
	// Height follows the source aspect ratio.
	targetWidth = 800

	// jpegQuality is the quality setting for the lossy re-encode.
	jpegQuality = 85

	// dataURIPrefix is prepended to the base64 payload of every stored image.
	dataURIPrefix = "data:image/jpeg;base64,"
)

// JPEGDataURI decodes data as a raster image (JPEG, PNG or GIF), scales it
// to the fixed storage width preserving aspect ratio, re-encodes it as JPEG
// and returns the result as a base64 data URI.
//
// Returns an error if data cannot be decoded as a supported image format or
// if the JPEG encode fails. Nothing is written anywhere; the caller stores
// the returned string inline on the door record.
func JPEGDataURI(data []byte) (string, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("error decoding image: %w", err)
	}

	resized := resize(src)

	var encoded bytes.Buffer
	if err := jpeg.Encode(&encoded, resized, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return "", fmt.Errorf("error encoding image to JPEG: %w", err)
	}

	return dataURIPrefix + base64.StdEncoding.EncodeToString(encoded.Bytes()), nil
}

// resize scales src to targetWidth keeping the aspect ratio.
// Images narrower than the target are still scaled up so that every stored
// image has the same width.
func resize(src image.Image) image.Image {
	bounds := src.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	targetHeight := targetWidth * height / width
	if targetHeight < 1 {
		targetHeight = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, targetWidth, targetHeight))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)

	return dst
}
