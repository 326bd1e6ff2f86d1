package models

import "github.com/google/uuid"

// Technology is a reusable tag shared by projects (many-to-many).
type Technology struct {
	ID   uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Name string    `json:"name" db:"name" gorm:"type:text;not null;unique"`
	Icon string    `json:"icon" db:"icon" gorm:"type:text"`

	Projects []Project `json:"projects,omitempty" gorm:"many2many:project_technologies"`
}
