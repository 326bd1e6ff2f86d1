package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-cms-backend/database"
	"github.com/rpupo63/portfolio-cms-backend/errs"
	"github.com/rpupo63/portfolio-cms-backend/models"
)

type technologyHandler struct {
	responder      Responder
	logger         zerolog.Logger
	technologyRepo *database.TechnologyRepo
}

func newTechnologyHandler(technologyRepo *database.TechnologyRepo) technologyHandler {
	logger := log.With().Str("handlerName", "technologyHandler").Logger()

	return technologyHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		technologyRepo: technologyRepo,
	}
}

// listTechnologies retrieves all technologies
// @Summary List technologies
// @Description Retrieves every technology, ordered by name
// @Tags Technologies
// @Produce json
// @Success 200 {array} models.Technology "Technologies"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /technologies [get]
func (h technologyHandler) listTechnologies() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		technologies, err := h.technologyRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find technologies", "technologies", err))
			return
		}

		h.responder.WriteJSON(w, technologies)
	}
}

// createTechnology creates a new technology.
func (h technologyHandler) createTechnology() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var technology models.Technology
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&technology); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode technology request body")
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		if technology.Name == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}

		if err := h.technologyRepo.Add(&technology); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create technology", "technology", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, technology)
	}
}

// updateTechnology updates an existing technology.
func (h technologyHandler) updateTechnology() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		technologyID, err := uuid.Parse(chi.URLParam(r, "technologyID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid technologyID"))
			return
		}

		existing, err := h.technologyRepo.FindByID(technologyID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find technology", "technology", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("technology not found"))
			return
		}

		technology := *existing
		if err := json.NewDecoder(r.Body).Decode(&technology); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode technology request body")
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		technology.ID = technologyID
		if technology.Name == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}

		if err := h.technologyRepo.Update(&technology); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update technology", "technology", err))
			return
		}

		h.responder.WriteJSON(w, technology)
	}
}

// deleteTechnology removes a technology. Projects referencing it simply lose
// the association.
func (h technologyHandler) deleteTechnology() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		technologyID, err := uuid.Parse(chi.URLParam(r, "technologyID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid technologyID"))
			return
		}

		existing, err := h.technologyRepo.FindByID(technologyID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find technology", "technology", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("technology not found"))
			return
		}

		if err := h.technologyRepo.Delete(technologyID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete technology", "technology", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "technology deleted successfully",
		})
	}
}
