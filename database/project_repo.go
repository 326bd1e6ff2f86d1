package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-cms-backend/models"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// ProjectListOptions are the public list filters. A blank or unknown
// category slug is ignored; a blank query disables search.
type ProjectListOptions struct {
	CategorySlug string
	Query        string
}

// ListPublished returns published projects with their category and
// technologies, filtered per opts and ordered featured-first, then newest.
// The free-text query matches title, description and technology names
// case-insensitively; a project matching several fields appears once.
func (r *ProjectRepo) ListPublished(opts ProjectListOptions) ([]*models.Project, error) {
	q := r.db.Model(&models.Project{}).Where("projects.published = ?", true)

	if opts.CategorySlug != "" && opts.CategorySlug != "all" {
		var category models.ProjectCategory
		err := r.db.Where("slug = ? AND is_active = ?", opts.CategorySlug, true).First(&category).Error
		if err == nil {
			q = q.Where("projects.category_id = ?", category.ID)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		// unknown or inactive categories leave the list unfiltered
	}

	if opts.Query != "" {
		like := "%" + opts.Query + "%"
		q = q.Distinct("projects.*").
			Joins("LEFT JOIN project_technologies pt ON pt.project_id = projects.id").
			Joins("LEFT JOIN technologies tech ON tech.id = pt.technology_id").
			Where("projects.title ILIKE ? OR projects.description ILIKE ? OR tech.name ILIKE ?", like, like, like)
	}

	var projects []*models.Project
	err := q.Preload("Category").Preload("Technologies").
		Order("projects.featured DESC, projects.created_at DESC").
		Find(&projects).Error
	return projects, err
}

// FindPublishedBySlug returns a published project with all associations
// loaded, or nil when the slug is unknown or the project is unpublished.
func (r *ProjectRepo) FindPublishedBySlug(slug string) (*models.Project, error) {
	var project models.Project
	err := r.db.Where("slug = ? AND published = ?", slug, true).
		Preload("Category").
		Preload("Technologies").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("project_images.sort_order ASC")
		}).
		First(&project).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Related returns up to limit other published projects sharing the given
// project's category.
func (r *ProjectRepo) Related(project *models.Project, limit int) ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.Where("category_id = ? AND published = ? AND id <> ?", project.CategoryID, true, project.ID).
		Preload("Category").
		Order("featured DESC, created_at DESC").
		Limit(limit).
		Find(&projects).Error
	return projects, err
}

// Featured returns up to limit featured published projects, newest first.
func (r *ProjectRepo) Featured(limit int) ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.Where("featured = ? AND published = ?", true, true).
		Preload("Category").
		Order("created_at DESC").
		Limit(limit).
		Find(&projects).Error
	return projects, err
}

// FindAll returns every project regardless of the published flag.
func (r *ProjectRepo) FindAll() ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.Preload("Category").Preload("Technologies").
		Order("featured DESC, created_at DESC").
		Find(&projects).Error
	return projects, err
}

// FindByID returns a project with all associations, or nil when absent.
func (r *ProjectRepo) FindByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.Preload("Category").Preload("Technologies").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("project_images.sort_order ASC")
		}).
		First(&project, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project.
func (r *ProjectRepo) Add(project *models.Project) error {
	return r.db.Create(project).Error
}

// Update persists changes to a project. The slug is assigned at creation and
// is never overwritten here.
func (r *ProjectRepo) Update(project *models.Project) error {
	return r.db.Omit("Technologies", "Images", "Category").Save(project).Error
}

// ReplaceTechnologies swaps the project's technology set.
func (r *ProjectRepo) ReplaceTechnologies(project *models.Project, technologies []models.Technology) error {
	return r.db.Model(project).Association("Technologies").Replace(technologies)
}

// Delete removes a project together with its gallery images and technology
// associations (cascade).
func (r *ProjectRepo) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.ProjectImage{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Project{ID: id}).Association("Technologies").Clear(); err != nil {
			return err
		}
		return tx.Delete(&models.Project{}, id).Error
	})
}
