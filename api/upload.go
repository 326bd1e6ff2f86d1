package api

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/rpupo63/portfolio-cms-backend/errs"
)

// maxUploadBytes caps multipart uploads at the same size the responder caps
// outbound payloads.
const maxUploadBytes = 10 * 1024 * 1024

// readUpload pulls the "file" part out of a multipart form and returns its
// bytes together with the sanitized client filename and declared content type.
func readUpload(r *http.Request) ([]byte, string, string, error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return nil, "", "", errs.NewBadRequestError("expected a multipart form upload")
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, "", "", errs.NewMissingRequiredFieldError("file")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		return nil, "", "", errs.NewBadRequestError("failed to read uploaded file")
	}
	if len(data) > maxUploadBytes {
		return nil, "", "", errs.NewBadRequestError("uploaded file exceeds the 10MB limit")
	}

	return data, sanitizeFilename(header.Filename), header.Header.Get("Content-Type"), nil
}

// objectName builds a collision-free storage key under the given folder.
func objectName(folder, filename string) string {
	return fmt.Sprintf("%s/%s-%s", folder, uuid.New().String(), filename)
}

// sanitizeFilename strips any path the client sent along with the filename.
func sanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = strings.ReplaceAll(name, " ", "_")
	if name == "" || name == "." || name == "/" {
		name = "upload"
	}
	return name
}
