package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-cms-backend/database"
	"github.com/rpupo63/portfolio-cms-backend/errs"
	"github.com/rpupo63/portfolio-cms-backend/media"
	"github.com/rpupo63/portfolio-cms-backend/models"
)

// relatedCertificationsLimit caps the related list on a certification detail
// page.
const relatedCertificationsLimit = 4

type certificationHandler struct {
	responder         Responder
	logger            zerolog.Logger
	certificationRepo *database.CertificationRepo
	storage           media.Storage
	resizer           *media.Resizer
}

func newCertificationHandler(certificationRepo *database.CertificationRepo, storage media.Storage, resizer *media.Resizer) certificationHandler {
	logger := log.With().Str("handlerName", "certificationHandler").Logger()

	return certificationHandler{
		responder:         NewResponder(logger),
		logger:            logger,
		certificationRepo: certificationRepo,
		storage:           storage,
		resizer:           resizer,
	}
}

// CertificationListResponse is the public certification listing with the
// filter options alongside it.
type CertificationListResponse struct {
	Certifications []CertificationView `json:"certifications"`
	Issuers        []string            `json:"issuers"`
	Levels         []string            `json:"levels"`
	Total          int                 `json:"total"`
}

// CertificationDetailResponse is a certification together with its related
// entries.
type CertificationDetailResponse struct {
	Certification CertificationView   `json:"certification"`
	Related       []CertificationView `json:"related_certifications"`
}

// listCertifications retrieves the active certifications
// @Summary List active certifications
// @Description Retrieves active certifications, optionally filtered by issuer, level and a free-text query over title, description, skills and issuer name
// @Tags Certifications
// @Produce json
// @Param issuer query string false "Issuer key"
// @Param level query string false "Level key"
// @Param q query string false "Search query"
// @Success 200 {object} CertificationListResponse "Active certifications with filter options"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /certifications [get]
func (h certificationHandler) listCertifications() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts := database.CertificationListOptions{
			Issuer: r.URL.Query().Get("issuer"),
			Level:  r.URL.Query().Get("level"),
			Query:  r.URL.Query().Get("q"),
		}

		certifications, err := h.certificationRepo.ListActive(opts)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find certifications", "certifications", err))
			return
		}

		today := time.Now()
		response := CertificationListResponse{
			Certifications: []CertificationView{},
			Issuers:        models.IssuerKeys(),
			Levels:         models.LevelKeys(),
		}
		for _, certification := range certifications {
			response.Certifications = append(response.Certifications, newCertificationView(*certification, h.storage, today))
		}
		response.Total = len(response.Certifications)

		h.responder.WriteJSON(w, response)
	}
}

// getCertification retrieves an active certification by slug
// @Summary Get certification
// @Description Retrieves an active certification by slug together with up to four related certifications sharing its issuer or level
// @Tags Certifications
// @Produce json
// @Param slug path string true "Certification slug"
// @Success 200 {object} CertificationDetailResponse "Certification details"
// @Failure 404 {object} ErrorResponse "Not Found - No active certification with that slug"
// @Router /certifications/{slug} [get]
func (h certificationHandler) getCertification() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")

		certification, err := h.certificationRepo.FindActiveBySlug(slug)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find certification", "certification", err))
			return
		}
		if certification == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("certification not found"))
			return
		}

		related, err := h.certificationRepo.Related(certification, relatedCertificationsLimit)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find related certifications", "certifications", err))
			return
		}

		today := time.Now()
		response := CertificationDetailResponse{
			Certification: newCertificationView(*certification, h.storage, today),
			Related:       []CertificationView{},
		}
		for _, rel := range related {
			response.Related = append(response.Related, newCertificationView(*rel, h.storage, today))
		}

		h.responder.WriteJSON(w, response)
	}
}

// adminListCertifications retrieves every certification, inactive ones
// included.
func (h certificationHandler) adminListCertifications() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		certifications, err := h.certificationRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find certifications", "certifications", err))
			return
		}

		today := time.Now()
		views := []CertificationView{}
		for _, certification := range certifications {
			views = append(views, newCertificationView(*certification, h.storage, today))
		}

		h.responder.WriteJSON(w, views)
	}
}

// createCertification creates a new certification
// @Summary Create certification
// @Description Creates a new certification; the slug is derived from the title
// @Tags Certifications
// @Accept json
// @Produce json
// @Param certification body models.Certification true "Certification data"
// @Success 201 {object} CertificationView "Created certification"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid certification data"
// @Router /admin/certifications [post]
func (h certificationHandler) createCertification() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var certification models.Certification
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&certification); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode certification request body")
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		if certification.Level == "" {
			certification.Level = models.LevelIntermediate
		}

		if err := certification.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.certificationRepo.Add(&certification); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create certification", "certification", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, newCertificationView(certification, h.storage, time.Now()))
	}
}

// updateCertification updates an existing certification. The slug assigned
// at creation is kept; a non-empty image is fitted into the certificate
// bounding box.
func (h certificationHandler) updateCertification() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		certificationID, err := uuid.Parse(chi.URLParam(r, "certificationID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid certificationID"))
			return
		}

		existing, err := h.certificationRepo.FindByID(certificationID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find certification", "certification", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("certification not found"))
			return
		}

		certification := *existing
		if err := json.NewDecoder(r.Body).Decode(&certification); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode certification request body")
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		certification.ID = certificationID
		certification.Slug = existing.Slug
		certification.CreatedAt = existing.CreatedAt

		if err := certification.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if certification.Image != "" {
			certification.Image = h.resizer.Apply(r.Context(), certification.Image, media.CertificationBox)
		}

		if err := h.certificationRepo.Update(&certification); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update certification", "certification", err))
			return
		}

		h.responder.WriteJSON(w, newCertificationView(certification, h.storage, time.Now()))
	}
}

// deleteCertification removes a certification.
func (h certificationHandler) deleteCertification() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		certificationID, err := uuid.Parse(chi.URLParam(r, "certificationID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid certificationID"))
			return
		}

		existing, err := h.certificationRepo.FindByID(certificationID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find certification", "certification", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("certification not found"))
			return
		}

		if err := h.certificationRepo.Delete(certificationID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete certification", "certification", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "certification deleted successfully",
		})
	}
}

// uploadCertificationImage stores a new certificate image and points the
// certification at it.
func (h certificationHandler) uploadCertificationImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		certificationID, err := uuid.Parse(chi.URLParam(r, "certificationID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid certificationID"))
			return
		}

		certification, err := h.certificationRepo.FindByID(certificationID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find certification", "certification", err))
			return
		}
		if certification == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("certification not found"))
			return
		}

		data, filename, contentType, err := readUpload(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		name := objectName("certifications", filename)
		if err := h.storage.Save(r.Context(), name, bytes.NewReader(data), contentType); err != nil {
			h.logger.Error().Err(err).Str("object", name).Msg("Failed to store uploaded file")
			h.responder.WriteError(w, errs.NewInternalError("could not store uploaded file"))
			return
		}

		certification.Image = name
		if err := h.certificationRepo.Update(certification); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update certification", "certification", err))
			return
		}

		h.responder.WriteJSON(w, newCertificationView(*certification, h.storage, time.Now()))
	}
}
