package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-cms-backend/database"
	"github.com/rpupo63/portfolio-cms-backend/errs"
	"github.com/rpupo63/portfolio-cms-backend/media"
	"github.com/rpupo63/portfolio-cms-backend/models"
)

// relatedProjectsLimit caps the related list on a project detail page.
const relatedProjectsLimit = 3

type projectHandler struct {
	responder      Responder
	logger         zerolog.Logger
	projectRepo    *database.ProjectRepo
	categoryRepo   *database.ProjectCategoryRepo
	technologyRepo *database.TechnologyRepo
	imageRepo      *database.ProjectImageRepo
	storage        media.Storage
	resizer        *media.Resizer
}

func newProjectHandler(projectRepo *database.ProjectRepo, categoryRepo *database.ProjectCategoryRepo, technologyRepo *database.TechnologyRepo, imageRepo *database.ProjectImageRepo, storage media.Storage, resizer *media.Resizer) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		projectRepo:    projectRepo,
		categoryRepo:   categoryRepo,
		technologyRepo: technologyRepo,
		imageRepo:      imageRepo,
		storage:        storage,
		resizer:        resizer,
	}
}

// ProjectListResponse is the public project listing with the category filter
// options alongside it.
type ProjectListResponse struct {
	Projects   []ProjectView             `json:"projects"`
	Categories []*models.ProjectCategory `json:"categories"`
	Total      int                       `json:"total"`
}

// ProjectDetailResponse is a project together with its related entries.
type ProjectDetailResponse struct {
	Project ProjectView   `json:"project"`
	Related []ProjectView `json:"related_projects"`
}

// projectPayload is the admin write shape; technologies are referenced by ID.
type projectPayload struct {
	models.Project
	TechnologyIDs *[]uuid.UUID `json:"technology_ids,omitempty"`
}

// listProjects retrieves the published projects
// @Summary List published projects
// @Description Retrieves published projects, optionally filtered by category slug and a free-text query over title, description and technology names
// @Tags Projects
// @Produce json
// @Param category query string false "Category slug"
// @Param q query string false "Search query"
// @Success 200 {object} ProjectListResponse "Published projects with filter options"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /projects [get]
func (h projectHandler) listProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts := database.ProjectListOptions{
			CategorySlug: r.URL.Query().Get("category"),
			Query:        r.URL.Query().Get("q"),
		}

		projects, err := h.projectRepo.ListPublished(opts)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find projects", "projects", err))
			return
		}

		categories, err := h.categoryRepo.ListActive()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find categories", "categories", err))
			return
		}

		response := ProjectListResponse{
			Projects:   []ProjectView{},
			Categories: categories,
		}
		for _, project := range projects {
			response.Projects = append(response.Projects, newProjectView(*project, h.storage))
		}
		response.Total = len(response.Projects)

		h.responder.WriteJSON(w, response)
	}
}

// getProject retrieves a published project by slug
// @Summary Get project
// @Description Retrieves a published project by slug together with up to three related projects from the same category
// @Tags Projects
// @Produce json
// @Param slug path string true "Project slug"
// @Success 200 {object} ProjectDetailResponse "Project details"
// @Failure 404 {object} ErrorResponse "Not Found - No published project with that slug"
// @Router /projects/{slug} [get]
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")

		project, err := h.projectRepo.FindPublishedBySlug(slug)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		related, err := h.projectRepo.Related(project, relatedProjectsLimit)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find related projects", "projects", err))
			return
		}

		response := ProjectDetailResponse{
			Project: newProjectView(*project, h.storage),
			Related: []ProjectView{},
		}
		for _, rel := range related {
			response.Related = append(response.Related, newProjectView(*rel, h.storage))
		}

		h.responder.WriteJSON(w, response)
	}
}

// adminListProjects retrieves every project, drafts included.
func (h projectHandler) adminListProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find projects", "projects", err))
			return
		}

		views := []ProjectView{}
		for _, project := range projects {
			views = append(views, newProjectView(*project, h.storage))
		}

		h.responder.WriteJSON(w, views)
	}
}

// createProject creates a new project
// @Summary Create project
// @Description Creates a new project; the slug is derived from the title and technologies are attached by ID
// @Tags Projects
// @Accept json
// @Produce json
// @Param project body projectPayload true "Project data"
// @Success 201 {object} ProjectView "Created project"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid project data"
// @Failure 404 {object} ErrorResponse "Not Found - Unknown category"
// @Router /admin/projects [post]
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var payload projectPayload
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		project := payload.Project
		project.Technologies = nil
		project.Images = nil
		project.Category = nil

		if err := project.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		category, err := h.categoryRepo.FindByID(project.CategoryID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find category", "category", err))
			return
		}
		if category == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("category not found"))
			return
		}

		if err := h.projectRepo.Add(&project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create project", "project", err))
			return
		}

		if payload.TechnologyIDs != nil {
			if err := h.replaceTechnologies(&project, *payload.TechnologyIDs); err != nil {
				h.responder.WriteError(w, err)
				return
			}
		}

		created, err := h.projectRepo.FindByID(project.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find created project", "project", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, newProjectView(*created, h.storage))
	}
}

// updateProject updates an existing project. The slug assigned at creation
// is kept; a non-empty image is fitted into the project bounding box.
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		existing, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		payload := projectPayload{Project: *existing}
		payload.Technologies = nil
		payload.Images = nil
		payload.Category = nil
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		project := payload.Project
		project.ID = projectID
		project.Slug = existing.Slug
		project.CreatedAt = existing.CreatedAt

		if err := project.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if project.CategoryID != existing.CategoryID {
			category, err := h.categoryRepo.FindByID(project.CategoryID)
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("find category", "category", err))
				return
			}
			if category == nil {
				h.responder.WriteError(w, errs.NewNotFoundError("category not found"))
				return
			}
		}

		if project.Image != "" {
			project.Image = h.resizer.Apply(r.Context(), project.Image, media.ProjectBox)
		}

		if err := h.projectRepo.Update(&project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update project", "project", err))
			return
		}

		if payload.TechnologyIDs != nil {
			if err := h.replaceTechnologies(&project, *payload.TechnologyIDs); err != nil {
				h.responder.WriteError(w, err)
				return
			}
		}

		updated, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated project", "project", err))
			return
		}

		h.responder.WriteJSON(w, newProjectView(*updated, h.storage))
	}
}

// replaceTechnologies swaps the project's technology set for the given IDs.
// Unknown IDs are rejected rather than silently dropped.
func (h projectHandler) replaceTechnologies(project *models.Project, ids []uuid.UUID) error {
	technologies, err := h.technologyRepo.FindByIDs(ids)
	if err != nil {
		return wrapDatabaseError("find technologies", "technologies", err)
	}
	if len(technologies) != len(ids) {
		return errs.NewInvalidFieldError("technology_ids", "one or more technology IDs do not exist")
	}
	if err := h.projectRepo.ReplaceTechnologies(project, technologies); err != nil {
		return wrapDatabaseError("replace project technologies", "project", err)
	}
	return nil
}

// deleteProject deletes a project together with its gallery.
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		existing, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		if err := h.projectRepo.Delete(projectID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete project", "project", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "project deleted successfully",
		})
	}
}

// uploadProjectImage stores a new cover image and points the project at it.
func (h projectHandler) uploadProjectImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		data, filename, contentType, err := readUpload(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		name := objectName("projects", filename)
		if err := h.storage.Save(r.Context(), name, bytes.NewReader(data), contentType); err != nil {
			h.logger.Error().Err(err).Str("object", name).Msg("Failed to store uploaded file")
			h.responder.WriteError(w, errs.NewInternalError("could not store uploaded file"))
			return
		}

		project.Image = name
		if err := h.projectRepo.Update(project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update project", "project", err))
			return
		}

		h.responder.WriteJSON(w, newProjectView(*project, h.storage))
	}
}

// listGalleryImages retrieves a project's gallery in sort order.
func (h projectHandler) listGalleryImages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		images, err := h.imageRepo.FindByProject(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find gallery images", "gallery images", err))
			return
		}

		views := []ProjectImageView{}
		for _, image := range images {
			views = append(views, newProjectImageView(*image, h.storage))
		}

		h.responder.WriteJSON(w, views)
	}
}

// addGalleryImage stores an uploaded image as a new gallery entry. The form
// may carry a caption and sort_order alongside the file.
func (h projectHandler) addGalleryImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		data, filename, contentType, err := readUpload(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		name := objectName("projects/gallery", filename)
		if err := h.storage.Save(r.Context(), name, bytes.NewReader(data), contentType); err != nil {
			h.logger.Error().Err(err).Str("object", name).Msg("Failed to store uploaded file")
			h.responder.WriteError(w, errs.NewInternalError("could not store uploaded file"))
			return
		}

		image := models.ProjectImage{
			ProjectID: projectID,
			Image:     name,
			Caption:   r.FormValue("caption"),
		}
		if sortOrder := r.FormValue("sort_order"); sortOrder != "" {
			if n, err := strconv.Atoi(sortOrder); err == nil {
				image.SortOrder = n
			}
		}

		if err := h.imageRepo.Add(&image); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create gallery image", "gallery image", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, newProjectImageView(image, h.storage))
	}
}

// updateGalleryImage updates a gallery entry's caption and sort order and
// fits the stored image into the gallery bounding box.
func (h projectHandler) updateGalleryImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		imageID, err := uuid.Parse(chi.URLParam(r, "imageID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid imageID"))
			return
		}

		existing, err := h.imageRepo.FindByID(imageID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find gallery image", "gallery image", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("gallery image not found"))
			return
		}

		image := *existing
		if err := json.NewDecoder(r.Body).Decode(&image); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode gallery image request body")
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		image.ID = imageID
		image.ProjectID = existing.ProjectID
		image.Project = nil

		if image.Image != "" {
			image.Image = h.resizer.Apply(r.Context(), image.Image, media.ProjectGalleryBox)
		}

		if err := h.imageRepo.Update(&image); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update gallery image", "gallery image", err))
			return
		}

		h.responder.WriteJSON(w, newProjectImageView(image, h.storage))
	}
}

// deleteGalleryImage removes a gallery entry and its stored object.
func (h projectHandler) deleteGalleryImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		imageID, err := uuid.Parse(chi.URLParam(r, "imageID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid imageID"))
			return
		}

		existing, err := h.imageRepo.FindByID(imageID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find gallery image", "gallery image", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("gallery image not found"))
			return
		}

		if err := h.imageRepo.Delete(imageID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete gallery image", "gallery image", err))
			return
		}

		if err := h.storage.Remove(r.Context(), existing.Image); err != nil {
			h.logger.Warn().Err(err).Str("object", existing.Image).Msg("Failed to remove stored gallery image")
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "gallery image deleted successfully",
		})
	}
}
