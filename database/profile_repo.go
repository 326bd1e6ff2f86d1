package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-cms-backend/models"
)

type ProfileRepo struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) *ProfileRepo {
	return &ProfileRepo{db}
}

// Get returns the deployment's single profile row, or nil when none has been
// provisioned yet. The accessor is the only sanctioned way to read the
// profile; the single-tenant assumption lives here and nowhere else.
func (r *ProfileRepo) Get() (*models.Profile, error) {
	var profile models.Profile
	err := r.db.Order("created_at ASC").First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Upsert creates the profile row when absent and updates it in place
// otherwise. The row's identity and creation time are preserved.
func (r *ProfileRepo) Upsert(profile *models.Profile) error {
	existing, err := r.Get()
	if err != nil {
		return err
	}
	if existing == nil {
		return r.db.Create(profile).Error
	}
	profile.ID = existing.ID
	profile.CreatedAt = existing.CreatedAt
	if profile.UserID == "" {
		profile.UserID = existing.UserID
	}
	return r.db.Save(profile).Error
}

// Update persists changes to an already-loaded profile.
func (r *ProfileRepo) Update(profile *models.Profile) error {
	return r.db.Save(profile).Error
}
