package media

import (
	"bytes"
	"context"
	"io"
	"testing"
)

func newTestStorage(t *testing.T) *DiskStorage {
	t.Helper()
	storage, err := NewDiskStorage(t.TempDir(), "/media")
	if err != nil {
		t.Fatalf("disk storage: %v", err)
	}
	return storage
}

func TestResizerApplyRewritesOversizedImage(t *testing.T) {
	ctx := context.Background()
	storage := newTestStorage(t)
	resizer := NewResizer(storage)

	data := encodePNG(t, 1600, 1200)
	if err := storage.Save(ctx, "projects/app.png", bytes.NewReader(data), "image/png"); err != nil {
		t.Fatalf("save: %v", err)
	}

	name := resizer.Apply(ctx, "projects/app.png", ProjectBox)
	if name != "projects/app.jpg" {
		t.Fatalf("applied name = %q, want projects/app.jpg", name)
	}

	rc, err := storage.Open(ctx, name)
	if err != nil {
		t.Fatalf("open resized: %v", err)
	}
	defer rc.Close()
	resized, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read resized: %v", err)
	}
	width, height, err := Dimensions(resized)
	if err != nil {
		t.Fatalf("dimensions: %v", err)
	}
	if width > ProjectBox.Width || height > ProjectBox.Height {
		t.Errorf("resized to %dx%d, exceeds box", width, height)
	}

	// The superseded object is gone.
	if _, err := storage.Open(ctx, "projects/app.png"); err == nil {
		t.Error("original object still present after rename")
	}
}

func TestResizerApplyKeepsSmallImage(t *testing.T) {
	ctx := context.Background()
	storage := newTestStorage(t)
	resizer := NewResizer(storage)

	data := encodePNG(t, 300, 200)
	if err := storage.Save(ctx, "profile/avatar.png", bytes.NewReader(data), "image/png"); err != nil {
		t.Fatalf("save: %v", err)
	}

	if name := resizer.Apply(ctx, "profile/avatar.png", ProfileBox); name != "profile/avatar.png" {
		t.Errorf("applied name = %q, want unchanged", name)
	}
}

func TestResizerApplyToleratesBadObjects(t *testing.T) {
	ctx := context.Background()
	storage := newTestStorage(t)
	resizer := NewResizer(storage)

	// Missing object: the record keeps its name.
	if name := resizer.Apply(ctx, "profile/missing.png", ProfileBox); name != "profile/missing.png" {
		t.Errorf("applied name = %q, want unchanged", name)
	}

	// Undecodable object, e.g. a PDF resume uploaded into an image slot.
	if err := storage.Save(ctx, "resume/cv.pdf", bytes.NewReader([]byte("%PDF-1.4")), "application/pdf"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if name := resizer.Apply(ctx, "resume/cv.pdf", ProfileBox); name != "resume/cv.pdf" {
		t.Errorf("applied name = %q, want unchanged", name)
	}

	// Empty names pass through untouched.
	if name := resizer.Apply(ctx, "", ProfileBox); name != "" {
		t.Errorf("applied name = %q, want empty", name)
	}
}
