package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-cms-backend/database"
	"github.com/rpupo63/portfolio-cms-backend/errs"
	"github.com/rpupo63/portfolio-cms-backend/media"
	"github.com/rpupo63/portfolio-cms-backend/models"
)

type profileHandler struct {
	responder   Responder
	logger      zerolog.Logger
	profileRepo *database.ProfileRepo
	storage     media.Storage
	resizer     *media.Resizer
}

func newProfileHandler(profileRepo *database.ProfileRepo, storage media.Storage, resizer *media.Resizer) profileHandler {
	logger := log.With().Str("handlerName", "profileHandler").Logger()

	return profileHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		profileRepo: profileRepo,
		storage:     storage,
		resizer:     resizer,
	}
}

// getProfile returns the profile for the admin edit form.
func (h profileHandler) getProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := h.profileRepo.Get()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find profile", "profile", err))
			return
		}
		if profile == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("no profile has been configured"))
			return
		}

		h.responder.WriteJSON(w, newProfileView(*profile, h.storage))
	}
}

// upsertProfile creates or updates the single profile row
// @Summary Upsert profile
// @Description Creates the profile on first use and updates it in place afterwards
// @Tags Profile
// @Accept json
// @Produce json
// @Param profile body models.Profile true "Profile data"
// @Success 200 {object} ProfileView "Stored profile"
// @Failure 400 {object} ErrorResponse "Bad Request - Malformed profile data"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error storing profile"
// @Router /admin/profile [put]
func (h profileHandler) upsertProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		existing, err := h.profileRepo.Get()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find profile", "profile", err))
			return
		}

		var profile models.Profile
		if existing != nil {
			profile = *existing
		}
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&profile); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode profile request body")
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		if profile.UserID == "" {
			profile.UserID = ctxUserID(r.Context())
		}

		// Saving over an existing row with an image triggers the fit; a
		// brand new row keeps its upload untouched until the next save.
		if existing != nil && profile.ProfileImage != "" {
			profile.ProfileImage = h.resizer.Apply(r.Context(), profile.ProfileImage, media.ProfileBox)
		}

		if err := h.profileRepo.Upsert(&profile); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("upsert profile", "profile", err))
			return
		}

		h.responder.WriteJSON(w, newProfileView(profile, h.storage))
	}
}

// uploadProfileImage stores a new profile picture and points the profile at it.
func (h profileHandler) uploadProfileImage() http.HandlerFunc {
	return h.uploadFile("profile", func(profile *models.Profile, name string) {
		profile.ProfileImage = name
	})
}

// uploadResume stores a new resume document and points the profile at it.
func (h profileHandler) uploadResume() http.HandlerFunc {
	return h.uploadFile("resume", func(profile *models.Profile, name string) {
		profile.Resume = name
	})
}

// uploadFile stores the uploaded file under the given folder and assigns the
// resulting object name onto the profile. The profile row must already exist.
func (h profileHandler) uploadFile(folder string, assign func(*models.Profile, string)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := h.profileRepo.Get()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find profile", "profile", err))
			return
		}
		if profile == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("no profile has been configured"))
			return
		}

		data, filename, contentType, err := readUpload(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		name := objectName(folder, filename)
		if err := h.storage.Save(r.Context(), name, bytes.NewReader(data), contentType); err != nil {
			h.logger.Error().Err(err).Str("object", name).Msg("Failed to store uploaded file")
			h.responder.WriteError(w, errs.NewInternalError("could not store uploaded file"))
			return
		}

		assign(profile, name)
		if err := h.profileRepo.Update(profile); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update profile", "profile", err))
			return
		}

		h.responder.WriteJSON(w, newProfileView(*profile, h.storage))
	}
}
