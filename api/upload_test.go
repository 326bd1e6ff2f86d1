package api

import (
	"strings"
	"testing"
)

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"app.png", "app.png"},
		{"my screenshot.png", "my_screenshot.png"},
		{"../../etc/passwd", "passwd"},
		{"C:\\Users\\me\\cv.pdf", "cv.pdf"},
		{"", "upload"},
	}
	for _, c := range cases {
		if got := sanitizeFilename(c.in); got != c.want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestObjectName(t *testing.T) {
	name := objectName("projects", "app.png")
	if !strings.HasPrefix(name, "projects/") {
		t.Errorf("object name %q not under projects/", name)
	}
	if !strings.HasSuffix(name, "-app.png") {
		t.Errorf("object name %q lost the filename", name)
	}
	if name == objectName("projects", "app.png") {
		t.Error("object names collide for identical uploads")
	}
}
