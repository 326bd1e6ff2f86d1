package api

import (
	"time"

	"github.com/rpupo63/portfolio-cms-backend/media"
	"github.com/rpupo63/portfolio-cms-backend/models"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	authHandler          authHandler
	homeHandler          homeHandler
	profileHandler       profileHandler
	contactHandler       contactHandler
	categoryHandler      categoryHandler
	technologyHandler    technologyHandler
	projectHandler       projectHandler
	certificationHandler certificationHandler
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error   string `json:"error"`
	Status  string `json:"status"`
	Field   string `json:"field,omitempty"`
	Details string `json:"details,omitempty"`
	Cause   string `json:"cause,omitempty"`
}

// ProfileView is a profile with resolved file URLs.
type ProfileView struct {
	models.Profile
	ProfileImageURL string `json:"profile_image_url,omitempty"`
	ResumeURL       string `json:"resume_url,omitempty"`
	HasSocialLinks  bool   `json:"has_social_links"`
}

func newProfileView(p models.Profile, storage media.Storage) ProfileView {
	view := ProfileView{Profile: p, HasSocialLinks: p.HasSocialLinks()}
	if p.ProfileImage != "" {
		view.ProfileImageURL = storage.URL(p.ProfileImage)
	}
	if p.Resume != "" {
		view.ResumeURL = storage.URL(p.Resume)
	}
	return view
}

// ProjectView is a project enriched with the derived display attributes.
type ProjectView struct {
	models.Project
	ImageURL         string             `json:"image_url,omitempty"`
	ShortDescription string             `json:"short_description"`
	StatusDisplay    string             `json:"status_display"`
	StatusBadgeClass string             `json:"status_badge_class"`
	Duration         string             `json:"duration"`
	IsActive         bool               `json:"is_active"`
	TechnologyNames  []string           `json:"technology_names,omitempty"`
	Gallery          []ProjectImageView `json:"gallery,omitempty"`
}

func newProjectView(p models.Project, storage media.Storage) ProjectView {
	view := ProjectView{
		Project:          p,
		ShortDescription: p.ShortDescription(),
		StatusDisplay:    p.StatusDisplay(),
		StatusBadgeClass: p.StatusBadgeClass(),
		Duration:         p.Duration(),
		IsActive:         p.IsActive(),
		TechnologyNames:  p.TechnologyNames(),
	}
	if p.Image != "" {
		view.ImageURL = storage.URL(p.Image)
	}
	for _, img := range p.Images {
		view.Gallery = append(view.Gallery, newProjectImageView(img, storage))
	}
	return view
}

// ProjectImageView is a gallery image with its resolved URL.
type ProjectImageView struct {
	models.ProjectImage
	ImageURL string `json:"image_url"`
	Filename string `json:"filename"`
}

func newProjectImageView(img models.ProjectImage, storage media.Storage) ProjectImageView {
	return ProjectImageView{
		ProjectImage: img,
		ImageURL:     storage.URL(img.Image),
		Filename:     img.Filename(),
	}
}

// CertificationView is a certification enriched with the derived display
// attributes and expiry state as of request time.
type CertificationView struct {
	models.Certification
	ImageURL         string   `json:"image_url,omitempty"`
	IssuerDisplay    string   `json:"issuer_display"`
	IssuerIcon       string   `json:"issuer_icon"`
	LevelDisplay     string   `json:"level_display"`
	LevelBadgeClass  string   `json:"level_badge_class"`
	SkillsList       []string `json:"skills_list,omitempty"`
	Status           string   `json:"status"`
	StatusBadgeClass string   `json:"status_badge_class"`
	IsExpired        bool     `json:"is_expired"`
	IsExpiringSoon   bool     `json:"is_expiring_soon"`
	DaysUntilExpiry  *int     `json:"days_until_expiry,omitempty"`
	YearsSinceIssue  int      `json:"years_since_issue"`
}

func newCertificationView(c models.Certification, storage media.Storage, today time.Time) CertificationView {
	view := CertificationView{
		Certification:    c,
		IssuerDisplay:    c.IssuerDisplayName(),
		IssuerIcon:       c.IssuerIcon(),
		LevelDisplay:     c.LevelDisplay(),
		LevelBadgeClass:  c.LevelBadgeClass(),
		SkillsList:       c.SkillsList(),
		Status:           c.Status(today),
		StatusBadgeClass: c.StatusBadgeClass(today),
		IsExpired:        c.IsExpired(today),
		IsExpiringSoon:   c.IsExpiringSoon(today),
		DaysUntilExpiry:  c.DaysUntilExpiry(today),
		YearsSinceIssue:  c.YearsSinceIssue(today),
	}
	if c.Image != "" {
		view.ImageURL = storage.URL(c.Image)
	}
	return view
}
