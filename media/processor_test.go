package media

import (
	"bytes"
	"errors"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
)

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := imaging.New(width, height, color.NRGBA{200, 120, 40, 255})
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		t.Fatalf("encode test image: %v", err)
	}
	return buf.Bytes()
}

func TestProcessWithinBoundsUnchanged(t *testing.T) {
	data := encodePNG(t, 300, 200)

	result, err := Process(data, ProfileBox)
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if result.Resized {
		t.Error("image within bounds was resized")
	}
	if !bytes.Equal(result.Data, data) {
		t.Error("image within bounds was re-encoded")
	}
}

func TestProcessDownscalesToBox(t *testing.T) {
	data := encodePNG(t, 1600, 1200)

	result, err := Process(data, ProjectBox)
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if !result.Resized {
		t.Fatal("oversized image was not resized")
	}

	width, height, err := Dimensions(result.Data)
	if err != nil {
		t.Fatalf("dimensions: %v", err)
	}
	if width > ProjectBox.Width || height > ProjectBox.Height {
		t.Errorf("resized to %dx%d, exceeds box %dx%d", width, height, ProjectBox.Width, ProjectBox.Height)
	}
	// 1600x1200 shares the 4:3 ratio of the 800x600 box.
	if width != 800 || height != 600 {
		t.Errorf("resized to %dx%d, want 800x600", width, height)
	}
}

func TestProcessPreservesAspectRatio(t *testing.T) {
	// A tall image must be bounded by height, not stretched to the box.
	data := encodePNG(t, 500, 1000)

	result, err := Process(data, CertificationBox)
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	width, height, err := Dimensions(result.Data)
	if err != nil {
		t.Fatalf("dimensions: %v", err)
	}
	if height != 400 || width != 200 {
		t.Errorf("resized to %dx%d, want 200x400", width, height)
	}
}

func TestProcessRejectsGarbage(t *testing.T) {
	_, err := Process([]byte("not an image"), ProfileBox)
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
}

func TestJPEGName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"projects/app.png", "projects/app.jpg"},
		{"projects/app.jpg", "projects/app.jpg"},
		{"profile/head.shot.webp", "profile/head.shot.jpg"},
		{"resume/cv", "resume/cv.jpg"},
		{"some.dir/file", "some.dir/file.jpg"},
	}
	for _, c := range cases {
		if got := JPEGName(c.in); got != c.want {
			t.Errorf("JPEGName(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
