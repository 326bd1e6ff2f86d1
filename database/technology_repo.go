package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-cms-backend/models"
)

type TechnologyRepo struct {
	db *gorm.DB
}

func NewTechnologyRepo(db *gorm.DB) *TechnologyRepo {
	return &TechnologyRepo{db}
}

// FindAll returns every technology ordered by name.
func (r *TechnologyRepo) FindAll() ([]*models.Technology, error) {
	var technologies []*models.Technology
	err := r.db.Order("name ASC").Find(&technologies).Error
	return technologies, err
}

// FindByID returns a technology by its ID, or nil when absent.
func (r *TechnologyRepo) FindByID(id uuid.UUID) (*models.Technology, error) {
	var technology models.Technology
	err := r.db.First(&technology, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &technology, nil
}

// FindByIDs returns the technologies matching the given IDs.
func (r *TechnologyRepo) FindByIDs(ids []uuid.UUID) ([]models.Technology, error) {
	var technologies []models.Technology
	err := r.db.Where("id IN ?", ids).Find(&technologies).Error
	return technologies, err
}

// Add inserts a new technology.
func (r *TechnologyRepo) Add(technology *models.Technology) error {
	return r.db.Create(technology).Error
}

// Update persists changes to a technology.
func (r *TechnologyRepo) Update(technology *models.Technology) error {
	return r.db.Save(technology).Error
}

// Delete removes a technology and its project associations.
func (r *TechnologyRepo) Delete(id uuid.UUID) error {
	technology := models.Technology{ID: id}
	if err := r.db.Model(&technology).Association("Projects").Clear(); err != nil {
		return err
	}
	return r.db.Delete(&technology).Error
}
