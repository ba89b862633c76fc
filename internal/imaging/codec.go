// Package imaging normalizes input images into the canonical encoding sent
// to the vision model: RGB pixels, JPEG at fixed quality, base64 text.
package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
)

// MediaType is the media type of every encoded image. All inputs are
// re-encoded as JPEG regardless of their original format.
const MediaType = "image/jpeg"

// jpegQuality keeps the encoded byte size reproducible for identical pixels.
const jpegQuality = 95

// Encoded is the canonical wire form of one source image.
type Encoded struct {
	Name      string
	Data      string // base64 JPEG bytes
	MediaType string
}

// DecodeError reports a source image that could not be decoded or
// re-encoded. The codec never produces partial output.
type DecodeError struct {
	Name string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("could not load %s - file may be corrupted or invalid format", e.Name)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Encode decodes raw image bytes, converts them to RGB if needed, and
// returns the base64 JPEG encoding. Any decode or encode failure is
// reported as a DecodeError naming the file.
func Encode(name string, data []byte) (*Encoded, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &DecodeError{Name: name, Err: err}
	}

	// Flatten to RGB by dropping the alpha band: keep the stored color
	// values and force every pixel opaque. Compositing through a
	// premultiplied canvas would darken semi-transparent pixels.
	bounds := img.Bounds()
	rgb := image.NewNRGBA(bounds)
	draw.Draw(rgb, bounds, img, bounds.Min, draw.Src)
	for i := 3; i < len(rgb.Pix); i += 4 {
		rgb.Pix[i] = 0xFF
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, rgb, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, &DecodeError{Name: name, Err: err}
	}

	return &Encoded{
		Name:      name,
		Data:      base64.StdEncoding.EncodeToString(buf.Bytes()),
		MediaType: MediaType,
	}, nil
}
