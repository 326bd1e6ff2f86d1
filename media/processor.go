package media

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/disintegration/imaging"
)

// ErrDecode marks failures to decode the input as an image (corrupt bytes,
// unsupported format). Callers treat it as an expected, non-fatal condition;
// any other error from this package is a real fault.
var ErrDecode = errors.New("image decode failed")

// jpegQuality is the fixed re-encode quality for resized images.
const jpegQuality = 85

// Box is the maximum (width, height) an image may occupy after processing.
type Box struct {
	Width  int
	Height int
}

// Per-entity bounding boxes.
var (
	ProfileBox        = Box{Width: 400, Height: 400}
	ProjectBox        = Box{Width: 800, Height: 600}
	CertificationBox  = Box{Width: 600, Height: 400}
	ProjectGalleryBox = Box{Width: 600, Height: 400}
)

// Result is the outcome of processing one image.
type Result struct {
	Data    []byte
	Resized bool
}

// Process fits the image into the bounding box. Images already within the
// box are returned byte-for-byte unchanged. Larger images are downscaled
// with Lanczos resampling, aspect ratio preserved, and re-encoded as JPEG at
// quality 85; alpha and palette color modes are flattened in the process.
func Process(data []byte, box Box) (Result, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() <= box.Width && bounds.Dy() <= box.Height {
		return Result{Data: data, Resized: false}, nil
	}

	fitted := imaging.Fit(img, box.Width, box.Height, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, fitted, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return Result{}, fmt.Errorf("encode jpeg: %w", err)
	}
	return Result{Data: buf.Bytes(), Resized: true}, nil
}

// Dimensions decodes just the image config and returns its size.
func Dimensions(data []byte) (width, height int, err error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return cfg.Width, cfg.Height, nil
}

// JPEGName rewrites a stored object name's extension to .jpg.
func JPEGName(name string) string {
	if i := strings.LastIndex(name, "."); i > strings.LastIndex(name, "/") {
		name = name[:i]
	}
	return name + ".jpg"
}
