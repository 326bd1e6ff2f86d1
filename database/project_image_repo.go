package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-cms-backend/models"
)

type ProjectImageRepo struct {
	db *gorm.DB
}

func NewProjectImageRepo(db *gorm.DB) *ProjectImageRepo {
	return &ProjectImageRepo{db}
}

// FindByProject returns a project's gallery in manual sort order.
func (r *ProjectImageRepo) FindByProject(projectID uuid.UUID) ([]*models.ProjectImage, error) {
	var images []*models.ProjectImage
	err := r.db.Where("project_id = ?", projectID).Order("sort_order ASC").Find(&images).Error
	return images, err
}

// FindByID returns a gallery image by its ID, or nil when absent.
func (r *ProjectImageRepo) FindByID(id uuid.UUID) (*models.ProjectImage, error) {
	var image models.ProjectImage
	err := r.db.First(&image, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &image, nil
}

// Add inserts a new gallery image.
func (r *ProjectImageRepo) Add(image *models.ProjectImage) error {
	return r.db.Create(image).Error
}

// Update persists changes to a gallery image.
func (r *ProjectImageRepo) Update(image *models.ProjectImage) error {
	return r.db.Save(image).Error
}

// Delete removes a gallery image.
func (r *ProjectImageRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ProjectImage{}, id).Error
}
