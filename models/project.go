package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-cms-backend/errs"
	"gorm.io/gorm"
)

// Project status values.
const (
	StatusCompleted  = "completed"
	StatusInProgress = "in_progress"
	StatusPlanned    = "planned"
)

var projectStatuses = map[string]string{
	StatusCompleted:  "Completed",
	StatusInProgress: "In Progress",
	StatusPlanned:    "Planned",
}

var statusBadgeClasses = map[string]string{
	StatusCompleted:  "bg-success",
	StatusInProgress: "bg-warning",
	StatusPlanned:    "bg-info",
}

// Project is a portfolio entry with a required category, optional
// technologies and an optional gallery of child images.
type Project struct {
	ID                  uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title               string    `json:"title" db:"title" gorm:"type:text;not null"`
	Slug                string    `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex"`
	Description         string    `json:"description" db:"description" gorm:"type:text;not null"`
	DetailedDescription string    `json:"detailed_description" db:"detailed_description" gorm:"type:text"`

	CategoryID uuid.UUID        `json:"category_id" db:"category_id" gorm:"type:uuid;not null;index"`
	Category   *ProjectCategory `json:"category,omitempty" gorm:"foreignKey:CategoryID;references:ID"`

	Technologies []Technology `json:"technologies,omitempty" gorm:"many2many:project_technologies;constraint:OnDelete:CASCADE"`

	Status      string `json:"status" db:"status" gorm:"type:text;not null;default:'completed'"`
	Featured    bool   `json:"featured" db:"featured" gorm:"not null;default:false"`
	Published   bool   `json:"published" db:"published" gorm:"not null;default:true"`
	Image       string `json:"image" db:"image" gorm:"type:text"`
	GithubURL   string `json:"github_url" db:"github_url" gorm:"type:text"`
	LiveDemoURL string `json:"live_demo_url" db:"live_demo_url" gorm:"type:text"`

	StartDate *time.Time `json:"start_date,omitempty" db:"start_date" gorm:"type:date"`
	EndDate   *time.Time `json:"end_date,omitempty" db:"end_date" gorm:"type:date"`

	MetaDescription string `json:"meta_description" db:"meta_description" gorm:"type:text"`
	MetaKeywords    string `json:"meta_keywords" db:"meta_keywords" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"type:timestamp;not null;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at" gorm:"type:timestamp;not null;autoUpdateTime"`

	Images []ProjectImage `json:"images,omitempty" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate assigns the slug once from the title. Subsequent title edits
// never touch the slug.
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.Slug == "" {
		p.Slug = Slugify(p.Title)
	}
	return nil
}

// BeforeSave runs the model invariants on every write.
func (p *Project) BeforeSave(tx *gorm.DB) error {
	return p.Validate()
}

// Validate enforces the project invariants.
func (p Project) Validate() error {
	if p.Title == "" {
		return errs.NewMissingRequiredFieldError("title")
	}
	if p.Status != "" {
		if _, ok := projectStatuses[p.Status]; !ok {
			return errs.NewInvalidFieldError("status", fmt.Sprintf("unknown status %q", p.Status))
		}
	}
	if p.StartDate != nil && p.EndDate != nil && p.EndDate.Before(*p.StartDate) {
		return errs.NewInvalidFieldError("end_date", "end date cannot be before start date")
	}
	return nil
}

// StatusDisplay returns the human-readable status label.
func (p Project) StatusDisplay() string {
	if label, ok := projectStatuses[p.Status]; ok {
		return label
	}
	return p.Status
}

// StatusBadgeClass maps the status to a display badge class, with a neutral
// fallback for unknown values.
func (p Project) StatusBadgeClass() string {
	if class, ok := statusBadgeClasses[p.Status]; ok {
		return class
	}
	return "bg-secondary"
}

// ShortDescription truncates the description for list views.
func (p Project) ShortDescription() string {
	runes := []rune(p.Description)
	if len(runes) <= 150 {
		return p.Description
	}
	return string(runes[:150]) + "..."
}

// Duration renders the project timespan: whole months between start and end,
// "Ongoing" when only a start date is set, "Not specified" otherwise.
func (p Project) Duration() string {
	switch {
	case p.StartDate != nil && p.EndDate != nil:
		days := int(p.EndDate.Sub(*p.StartDate).Hours() / 24)
		return fmt.Sprintf("%d months", days/30)
	case p.StartDate != nil:
		return "Ongoing"
	default:
		return "Not specified"
	}
}

// IsActive reports whether work on the project is ongoing.
func (p Project) IsActive() bool {
	return p.Status == StatusInProgress
}

// TechnologyNames returns the names of the loaded technologies.
func (p Project) TechnologyNames() []string {
	names := make([]string, 0, len(p.Technologies))
	for _, t := range p.Technologies {
		names = append(names, t.Name)
	}
	return names
}
