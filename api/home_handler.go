package api

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-cms-backend/database"
	"github.com/rpupo63/portfolio-cms-backend/media"
)

// The home digest shows a fixed number of featured entries.
const (
	featuredProjectsOnHome       = 6
	featuredCertificationsOnHome = 3
)

type homeHandler struct {
	responder         Responder
	logger            zerolog.Logger
	profileRepo       *database.ProfileRepo
	projectRepo       *database.ProjectRepo
	certificationRepo *database.CertificationRepo
	storage           media.Storage
	startupTime       time.Time
}

func newHomeHandler(profileRepo *database.ProfileRepo, projectRepo *database.ProjectRepo, certificationRepo *database.CertificationRepo, storage media.Storage, startupTime time.Time) homeHandler {
	logger := log.With().Str("handlerName", "homeHandler").Logger()

	return homeHandler{
		responder:         NewResponder(logger),
		logger:            logger,
		profileRepo:       profileRepo,
		projectRepo:       projectRepo,
		certificationRepo: certificationRepo,
		storage:           storage,
		startupTime:       startupTime,
	}
}

// HomeResponse is the landing page digest.
type HomeResponse struct {
	Profile                *ProfileView        `json:"profile,omitempty"`
	FeaturedProjects       []ProjectView       `json:"featured_projects"`
	FeaturedCertifications []CertificationView `json:"featured_certifications"`
}

// getHome assembles the landing page digest
// @Summary Home digest
// @Description Returns the profile together with the featured projects and certifications shown on the landing page
// @Tags Home
// @Produce json
// @Success 200 {object} HomeResponse "Landing page digest"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router / [get]
func (h homeHandler) getHome() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := h.profileRepo.Get()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find profile", "profile", err))
			return
		}

		projects, err := h.projectRepo.Featured(featuredProjectsOnHome)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find featured projects", "projects", err))
			return
		}

		certifications, err := h.certificationRepo.Featured(featuredCertificationsOnHome)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find featured certifications", "certifications", err))
			return
		}

		today := time.Now()
		response := HomeResponse{
			FeaturedProjects:       []ProjectView{},
			FeaturedCertifications: []CertificationView{},
		}
		if profile != nil {
			view := newProfileView(*profile, h.storage)
			response.Profile = &view
		}
		for _, project := range projects {
			response.FeaturedProjects = append(response.FeaturedProjects, newProjectView(*project, h.storage))
		}
		for _, certification := range certifications {
			response.FeaturedCertifications = append(response.FeaturedCertifications, newCertificationView(*certification, h.storage, today))
		}

		h.responder.WriteJSON(w, response)
	}
}

// getAbout returns the owner's full profile
// @Summary About page
// @Description Returns the full profile including bio, social links and resolved media URLs; null until a profile is configured
// @Tags Home
// @Produce json
// @Success 200 {object} ProfileView "Profile"
// @Router /about [get]
func (h homeHandler) getAbout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := h.profileRepo.Get()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find profile", "profile", err))
			return
		}
		if profile == nil {
			// Not configured yet renders as null, not as an error.
			h.responder.WriteJSON(w, nil)
			return
		}

		h.responder.WriteJSON(w, newProfileView(*profile, h.storage))
	}
}

// health reports process liveness and uptime.
func (h homeHandler) health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, map[string]string{
			"status": "ok",
			"uptime": time.Since(h.startupTime).Round(time.Second).String(),
		})
	}
}
