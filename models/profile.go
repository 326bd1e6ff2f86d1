package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile holds the site owner's presentation data. The deployment carries a
// single row; ownership is tied to an external identity provider subject.
type Profile struct {
	ID     uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	UserID string    `json:"user_id" db:"user_id" gorm:"type:text;not null;uniqueIndex"`

	Title   string `json:"title" db:"title" gorm:"type:text"`
	Bio     string `json:"bio" db:"bio" gorm:"type:text"`
	AboutMe string `json:"about_me" db:"about_me" gorm:"type:text"`

	ProfileImage string `json:"profile_image" db:"profile_image" gorm:"type:text"`
	Resume       string `json:"resume" db:"resume" gorm:"type:text"`

	GithubURL    string `json:"github_url" db:"github_url" gorm:"type:text"`
	LinkedinURL  string `json:"linkedin_url" db:"linkedin_url" gorm:"type:text"`
	TwitterURL   string `json:"twitter_url" db:"twitter_url" gorm:"type:text"`
	PortfolioURL string `json:"portfolio_url" db:"portfolio_url" gorm:"type:text"`

	Email   string `json:"email" db:"email" gorm:"type:text"`
	Phone   string `json:"phone" db:"phone" gorm:"type:text"`
	Address string `json:"address" db:"address" gorm:"type:text"`

	MetaDescription string `json:"meta_description" db:"meta_description" gorm:"type:text"`
	MetaKeywords    string `json:"meta_keywords" db:"meta_keywords" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"type:timestamp;not null;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at" gorm:"type:timestamp;not null;autoUpdateTime"`
}

// HasSocialLinks reports whether any social link is set.
func (p Profile) HasSocialLinks() bool {
	return p.GithubURL != "" || p.LinkedinURL != "" || p.TwitterURL != "" || p.PortfolioURL != ""
}
