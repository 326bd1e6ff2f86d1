package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-cms-backend/models"
)

type CertificationRepo struct {
	db *gorm.DB
}

func NewCertificationRepo(db *gorm.DB) *CertificationRepo {
	return &CertificationRepo{db}
}

// CertificationListOptions are the public list filters. Blank (or "all")
// issuer and level disable their filters; a blank query disables search.
type CertificationListOptions struct {
	Issuer string
	Level  string
	Query  string
}

// ListActive returns active certifications filtered per opts, ordered
// featured-first, then newest issue date. The free-text query matches title,
// description, skills and the free-text issuer case-insensitively.
func (r *CertificationRepo) ListActive(opts CertificationListOptions) ([]*models.Certification, error) {
	q := r.db.Where("is_active = ?", true)

	if opts.Issuer != "" && opts.Issuer != "all" {
		q = q.Where("issuer = ?", opts.Issuer)
	}
	if opts.Level != "" && opts.Level != "all" {
		q = q.Where("level = ?", opts.Level)
	}
	if opts.Query != "" {
		like := "%" + opts.Query + "%"
		q = q.Where("title ILIKE ? OR description ILIKE ? OR skills ILIKE ? OR issuer_other ILIKE ?",
			like, like, like, like)
	}

	var certifications []*models.Certification
	err := q.Order("featured DESC, issue_date DESC").Find(&certifications).Error
	return certifications, err
}

// FindActiveBySlug returns an active certification, or nil when the slug is
// unknown or the certification is inactive.
func (r *CertificationRepo) FindActiveBySlug(slug string) (*models.Certification, error) {
	var certification models.Certification
	err := r.db.Where("slug = ? AND is_active = ?", slug, true).First(&certification).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &certification, nil
}

// Related returns up to limit other active certifications sharing the given
// certification's issuer or level.
func (r *CertificationRepo) Related(certification *models.Certification, limit int) ([]*models.Certification, error) {
	var certifications []*models.Certification
	err := r.db.Where("is_active = ? AND id <> ?", true, certification.ID).
		Where("issuer = ? OR level = ?", certification.Issuer, certification.Level).
		Order("featured DESC, issue_date DESC").
		Limit(limit).
		Find(&certifications).Error
	return certifications, err
}

// Featured returns up to limit featured active certifications, newest issue
// date first.
func (r *CertificationRepo) Featured(limit int) ([]*models.Certification, error) {
	var certifications []*models.Certification
	err := r.db.Where("featured = ? AND is_active = ?", true, true).
		Order("issue_date DESC").
		Limit(limit).
		Find(&certifications).Error
	return certifications, err
}

// FindAll returns every certification regardless of the active flag.
func (r *CertificationRepo) FindAll() ([]*models.Certification, error) {
	var certifications []*models.Certification
	err := r.db.Order("featured DESC, issue_date DESC").Find(&certifications).Error
	return certifications, err
}

// FindByID returns a certification by its ID, or nil when absent.
func (r *CertificationRepo) FindByID(id uuid.UUID) (*models.Certification, error) {
	var certification models.Certification
	err := r.db.First(&certification, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &certification, nil
}

// Add inserts a new certification.
func (r *CertificationRepo) Add(certification *models.Certification) error {
	return r.db.Create(certification).Error
}

// Update persists changes to a certification. The slug is assigned at
// creation and is never overwritten here.
func (r *CertificationRepo) Update(certification *models.Certification) error {
	return r.db.Save(certification).Error
}

// Delete removes a certification.
func (r *CertificationRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Certification{}, id).Error
}
