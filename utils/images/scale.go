// Package images prepares pictures of image cues for output: SVG
// rasterization, rescaling and PNG encoding.
package images

import (
	"bytes"
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// Decode decodes raster image honoring EXIF orientation.
func Decode(data []byte) (image.Image, error) {
	return imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
}

// Scale resizes image by factor keeping aspect ratio. Factor of 1 (or not
// positive) returns image unchanged.
func Scale(img image.Image, factor float64) image.Image {
	if factor <= 0 || factor == 1 {
		return img
	}
	b := img.Bounds()
	w := max(int(math.Round(float64(b.Dx())*factor)), 1)
	h := max(int(math.Round(float64(b.Dy())*factor)), 1)
	return imaging.Resize(img, w, h, imaging.Lanczos)
}

// EncodePNG encodes image as PNG, alpha channel is preserved.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
