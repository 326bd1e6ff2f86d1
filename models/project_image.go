package models

import (
	"strings"

	"github.com/google/uuid"
)

// ProjectImage is a gallery image owned by a project. Rows are removed
// together with their parent project.
type ProjectImage struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	ProjectID uuid.UUID `json:"project_id" db:"project_id" gorm:"type:uuid;not null;index;constraint:OnDelete:CASCADE"`
	Image     string    `json:"image" db:"image" gorm:"type:text;not null"`
	Caption   string    `json:"caption" db:"caption" gorm:"type:text"`
	SortOrder int       `json:"sort_order" db:"sort_order" gorm:"type:integer;not null;default:0"`

	Project *Project `json:"project,omitempty" gorm:"foreignKey:ProjectID;references:ID"`
}

// Filename returns the last path element of the stored image key.
func (i ProjectImage) Filename() string {
	if i.Image == "" {
		return ""
	}
	parts := strings.Split(i.Image, "/")
	return parts[len(parts)-1]
}
