package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-cms-backend/models"
)

type ContactMessageRepo struct {
	db *gorm.DB
}

func NewContactMessageRepo(db *gorm.DB) *ContactMessageRepo {
	return &ContactMessageRepo{db}
}

// Add stores a new contact form submission.
func (r *ContactMessageRepo) Add(message *models.ContactMessage) error {
	return r.db.Create(message).Error
}

// FindAll returns all messages, newest first.
func (r *ContactMessageRepo) FindAll() ([]*models.ContactMessage, error) {
	var messages []*models.ContactMessage
	err := r.db.Order("created_at DESC").Find(&messages).Error
	return messages, err
}

// FindByID returns a message by its ID, or nil when absent.
func (r *ContactMessageRepo) FindByID(id uuid.UUID) (*models.ContactMessage, error) {
	var message models.ContactMessage
	err := r.db.First(&message, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &message, nil
}

// SetRead flips the read flag. Message content is immutable after creation,
// so this is the only permitted mutation.
func (r *ContactMessageRepo) SetRead(id uuid.UUID, read bool) error {
	return r.db.Model(&models.ContactMessage{}).Where("id = ?", id).Update("is_read", read).Error
}

// Delete removes a message.
func (r *ContactMessageRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ContactMessage{}, id).Error
}
