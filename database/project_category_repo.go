package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-cms-backend/errs"
	"github.com/rpupo63/portfolio-cms-backend/models"
)

type ProjectCategoryRepo struct {
	db *gorm.DB
}

func NewProjectCategoryRepo(db *gorm.DB) *ProjectCategoryRepo {
	return &ProjectCategoryRepo{db}
}

// ListActive returns the active categories in their manual sort order.
func (r *ProjectCategoryRepo) ListActive() ([]*models.ProjectCategory, error) {
	var categories []*models.ProjectCategory
	err := r.db.Where("is_active = ?", true).Order("sort_order ASC, name ASC").Find(&categories).Error
	return categories, err
}

// FindAll returns every category regardless of the active flag.
func (r *ProjectCategoryRepo) FindAll() ([]*models.ProjectCategory, error) {
	var categories []*models.ProjectCategory
	err := r.db.Order("sort_order ASC, name ASC").Find(&categories).Error
	return categories, err
}

// FindByID returns a category by its ID, or nil when absent.
func (r *ProjectCategoryRepo) FindByID(id uuid.UUID) (*models.ProjectCategory, error) {
	var category models.ProjectCategory
	err := r.db.First(&category, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// FindActiveBySlug returns an active category by slug, or nil when the slug
// is unknown or the category is inactive.
func (r *ProjectCategoryRepo) FindActiveBySlug(slug string) (*models.ProjectCategory, error) {
	var category models.ProjectCategory
	err := r.db.Where("slug = ? AND is_active = ?", slug, true).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// Add inserts a new category.
func (r *ProjectCategoryRepo) Add(category *models.ProjectCategory) error {
	return r.db.Create(category).Error
}

// Update persists changes to a category.
func (r *ProjectCategoryRepo) Update(category *models.ProjectCategory) error {
	return r.db.Save(category).Error
}

// Delete removes a category. Deletion is restricted: a category that still
// has projects cannot be removed, the projects must be reassigned or deleted
// first.
func (r *ProjectCategoryRepo) Delete(id uuid.UUID) error {
	var count int64
	if err := r.db.Model(&models.Project{}).Where("category_id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return errs.NewConflictError("category still has projects and cannot be deleted")
	}
	return r.db.Delete(&models.ProjectCategory{}, id).Error
}
