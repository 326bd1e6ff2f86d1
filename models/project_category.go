package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectCategory groups projects for filtering and navigation.
type ProjectCategory struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Name        string    `json:"name" db:"name" gorm:"type:text;not null;unique"`
	Slug        string    `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex"`
	Description string    `json:"description" db:"description" gorm:"type:text"`
	Icon        string    `json:"icon" db:"icon" gorm:"type:text;default:'fas fa-folder'"`
	SortOrder   int       `json:"sort_order" db:"sort_order" gorm:"type:integer;not null;default:0"`
	IsActive    bool      `json:"is_active" db:"is_active" gorm:"not null;default:true"`

	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"type:timestamp;not null;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at" gorm:"type:timestamp;not null;autoUpdateTime"`

	Projects []Project `json:"projects,omitempty" gorm:"foreignKey:CategoryID;references:ID"`
}

// BeforeCreate assigns the slug from the name when one was not supplied.
// Slugs are assigned exactly once and never regenerated on rename.
func (c *ProjectCategory) BeforeCreate(tx *gorm.DB) error {
	if c.Slug == "" {
		c.Slug = Slugify(c.Name)
	}
	return nil
}
