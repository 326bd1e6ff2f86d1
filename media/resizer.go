package media

import (
	"bytes"
	"context"
	"errors"
	"io"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-cms-backend/metrics"
)

// Resizer applies the bounding-box resize to an already-stored object. It is
// invoked on updates of records that carry an image; processing failure is
// never fatal to the record write, so Apply always hands back a usable
// object name. Decode failures are expected (bad uploads) and logged at
// warn; storage faults are logged as errors.
type Resizer struct {
	storage Storage
	logger  zerolog.Logger
}

func NewResizer(storage Storage) *Resizer {
	return &Resizer{
		storage: storage,
		logger:  log.With().Str("component", "mediaResizer").Logger(),
	}
}

// Apply fits the stored object into the box, re-encoding as JPEG and
// rewriting the object name's extension to .jpg when a resize happened.
// Returns the name the record should keep referencing.
func (z *Resizer) Apply(ctx context.Context, name string, box Box) string {
	if name == "" {
		return name
	}

	rc, err := z.storage.Open(ctx, name)
	if err != nil {
		z.logger.Error().Err(err).Str("object", name).Msg("open stored image failed, keeping original")
		metrics.IncrementImageProcessed("error")
		return name
	}
	data, err := io.ReadAll(rc)
	rc.Close()
	if err != nil {
		z.logger.Error().Err(err).Str("object", name).Msg("read stored image failed, keeping original")
		metrics.IncrementImageProcessed("error")
		return name
	}

	result, err := Process(data, box)
	if err != nil {
		if errors.Is(err, ErrDecode) {
			z.logger.Warn().Err(err).Str("object", name).Msg("image not decodable, keeping original")
		} else {
			z.logger.Error().Err(err).Str("object", name).Msg("image processing failed, keeping original")
		}
		metrics.IncrementImageProcessed("error")
		return name
	}
	if !result.Resized {
		metrics.IncrementImageProcessed("unchanged")
		return name
	}

	newName := JPEGName(name)
	if err := z.storage.Save(ctx, newName, bytes.NewReader(result.Data), "image/jpeg"); err != nil {
		z.logger.Error().Err(err).Str("object", newName).Msg("store resized image failed, keeping original")
		metrics.IncrementImageProcessed("error")
		return name
	}
	if newName != name {
		if err := z.storage.Remove(ctx, name); err != nil {
			z.logger.Warn().Err(err).Str("object", name).Msg("remove superseded image failed")
		}
	}
	metrics.IncrementImageProcessed("resized")
	return newName
}
