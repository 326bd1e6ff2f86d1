package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-cms-backend/errs"
	"gorm.io/gorm"
)

// Certification issuer keys.
const (
	IssuerCoursera         = "coursera"
	IssuerEdx              = "edx"
	IssuerUdacity          = "udacity"
	IssuerLinkedinLearning = "linkedin_learning"
	IssuerDeepLearningAI   = "deeplearning-ai"
	IssuerGoogle           = "google"
	IssuerMicrosoft        = "microsoft"
	IssuerAWS              = "aws"
	IssuerIBM              = "ibm"
	IssuerOther            = "other"
)

// Certification level keys.
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
	LevelExpert       = "expert"
)

// Certification status values, derived from the expiration date.
const (
	CertStatusExpired      = "expired"
	CertStatusExpiringSoon = "expiring_soon"
	CertStatusValid        = "valid"
)

// expiringSoonWindowDays bounds the "expiring soon" state.
const expiringSoonWindowDays = 90

var issuerDisplayNames = map[string]string{
	IssuerCoursera:         "Coursera",
	IssuerEdx:              "edX",
	IssuerUdacity:          "Udacity",
	IssuerLinkedinLearning: "LinkedIn Learning",
	IssuerDeepLearningAI:   "DeepLearning.AI",
	IssuerGoogle:           "Google",
	IssuerMicrosoft:        "Microsoft",
	IssuerAWS:              "AWS",
	IssuerIBM:              "IBM",
	IssuerOther:            "Other",
}

var issuerIcons = map[string]string{
	IssuerCoursera:         "fas fa-graduation-cap",
	IssuerEdx:              "fas fa-university",
	IssuerUdacity:          "fas fa-laptop-code",
	IssuerLinkedinLearning: "fab fa-linkedin",
	IssuerDeepLearningAI:   "fas fa-brain",
	IssuerGoogle:           "fab fa-google",
	IssuerMicrosoft:        "fab fa-microsoft",
	IssuerAWS:              "fab fa-aws",
	IssuerIBM:              "fas fa-server",
	IssuerOther:            "fas fa-certificate",
}

var levelDisplayNames = map[string]string{
	LevelBeginner:     "Beginner",
	LevelIntermediate: "Intermediate",
	LevelAdvanced:     "Advanced",
	LevelExpert:       "Expert",
}

var levelBadgeClasses = map[string]string{
	LevelBeginner:     "bg-success",
	LevelIntermediate: "bg-info",
	LevelAdvanced:     "bg-warning",
	LevelExpert:       "bg-danger",
}

var certStatusBadgeClasses = map[string]string{
	CertStatusExpired:      "bg-danger",
	CertStatusExpiringSoon: "bg-warning",
	CertStatusValid:        "bg-success",
}

// IssuerKeys lists the known issuer keys in display order.
func IssuerKeys() []string {
	return []string{
		IssuerCoursera, IssuerEdx, IssuerUdacity, IssuerLinkedinLearning,
		IssuerDeepLearningAI, IssuerGoogle, IssuerMicrosoft, IssuerAWS,
		IssuerIBM, IssuerOther,
	}
}

// LevelKeys lists the known level keys in ascending order.
func LevelKeys() []string {
	return []string{LevelBeginner, LevelIntermediate, LevelAdvanced, LevelExpert}
}

// Certification is a completed credential. Expiry-related status is always
// derived from the stored dates, never persisted.
type Certification struct {
	ID             uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title          string     `json:"title" db:"title" gorm:"type:text;not null"`
	Slug           string     `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex"`
	Issuer         string     `json:"issuer" db:"issuer" gorm:"type:text;not null"`
	IssuerOther    string     `json:"issuer_other" db:"issuer_other" gorm:"type:text"`
	CertificateID  string     `json:"certificate_id" db:"certificate_id" gorm:"type:text"`
	IssueDate      time.Time  `json:"issue_date" db:"issue_date" gorm:"type:date;not null"`
	ExpirationDate *time.Time `json:"expiration_date,omitempty" db:"expiration_date" gorm:"type:date"`
	CredentialURL  string     `json:"credential_url" db:"credential_url" gorm:"type:text"`
	Image          string     `json:"image" db:"image" gorm:"type:text"`
	Description    string     `json:"description" db:"description" gorm:"type:text"`
	Skills         string     `json:"skills" db:"skills" gorm:"type:text"`
	Level          string     `json:"level" db:"level" gorm:"type:text;not null;default:'intermediate'"`
	Featured       bool       `json:"featured" db:"featured" gorm:"not null;default:false"`
	IsActive       bool       `json:"is_active" db:"is_active" gorm:"not null;default:true"`

	MetaDescription string `json:"meta_description" db:"meta_description" gorm:"type:text"`
	MetaKeywords    string `json:"meta_keywords" db:"meta_keywords" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"type:timestamp;not null;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at" gorm:"type:timestamp;not null;autoUpdateTime"`
}

// BeforeCreate assigns the slug once from the title.
func (c *Certification) BeforeCreate(tx *gorm.DB) error {
	if c.Slug == "" {
		c.Slug = Slugify(c.Title)
	}
	return nil
}

// BeforeSave runs the model invariants on every write.
func (c *Certification) BeforeSave(tx *gorm.DB) error {
	return c.Validate()
}

// Validate enforces the certification invariants.
func (c Certification) Validate() error {
	if c.Title == "" {
		return errs.NewMissingRequiredFieldError("title")
	}
	if c.IssueDate.IsZero() {
		return errs.NewMissingRequiredFieldError("issue_date")
	}
	if _, ok := issuerDisplayNames[c.Issuer]; !ok {
		return errs.NewInvalidFieldError("issuer", fmt.Sprintf("unknown issuer %q", c.Issuer))
	}
	if c.Issuer == IssuerOther && c.IssuerOther == "" {
		return errs.NewInvalidFieldError("issuer_other", "issuer name must be given when issuer is 'other'")
	}
	if c.Level != "" {
		if _, ok := levelDisplayNames[c.Level]; !ok {
			return errs.NewInvalidFieldError("level", fmt.Sprintf("unknown level %q", c.Level))
		}
	}
	if c.ExpirationDate != nil && c.ExpirationDate.Before(c.IssueDate) {
		return errs.NewInvalidFieldError("expiration_date", "expiration date cannot be before issue date")
	}
	return nil
}

// IssuerDisplayName returns the issuer label, preferring the free-text
// override when the issuer is "other".
func (c Certification) IssuerDisplayName() string {
	if c.Issuer == IssuerOther && c.IssuerOther != "" {
		return c.IssuerOther
	}
	if name, ok := issuerDisplayNames[c.Issuer]; ok {
		return name
	}
	return c.Issuer
}

// IssuerIcon maps the issuer to a display icon, falling back to the generic
// certificate icon.
func (c Certification) IssuerIcon() string {
	if icon, ok := issuerIcons[c.Issuer]; ok {
		return icon
	}
	return "fas fa-certificate"
}

// LevelDisplay returns the human-readable level label.
func (c Certification) LevelDisplay() string {
	if label, ok := levelDisplayNames[c.Level]; ok {
		return label
	}
	return c.Level
}

// LevelBadgeClass maps the level to a display badge class, with a neutral
// fallback for unknown values.
func (c Certification) LevelBadgeClass() string {
	if class, ok := levelBadgeClasses[c.Level]; ok {
		return class
	}
	return "bg-secondary"
}

// SkillsList splits the comma-separated skills text into trimmed entries.
func (c Certification) SkillsList() []string {
	if c.Skills == "" {
		return nil
	}
	var skills []string
	for _, s := range strings.Split(c.Skills, ",") {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

// IsExpired reports whether the certification expired before today.
func (c Certification) IsExpired(today time.Time) bool {
	return c.ExpirationDate != nil && c.ExpirationDate.Before(truncateToDate(today))
}

// DaysUntilExpiry returns the number of days until the expiration date, or
// nil when no expiration is set. Past expiry yields negative values.
func (c Certification) DaysUntilExpiry(today time.Time) *int {
	if c.ExpirationDate == nil {
		return nil
	}
	days := int(c.ExpirationDate.Sub(truncateToDate(today)).Hours() / 24)
	return &days
}

// IsExpiringSoon reports whether the certification expires within the next
// 90 days.
func (c Certification) IsExpiringSoon(today time.Time) bool {
	days := c.DaysUntilExpiry(today)
	return days != nil && *days > 0 && *days <= expiringSoonWindowDays
}

// Status resolves the derived certification state.
func (c Certification) Status(today time.Time) string {
	switch {
	case c.IsExpired(today):
		return CertStatusExpired
	case c.IsExpiringSoon(today):
		return CertStatusExpiringSoon
	default:
		return CertStatusValid
	}
}

// StatusBadgeClass maps the derived status to a display badge class.
func (c Certification) StatusBadgeClass(today time.Time) string {
	if class, ok := certStatusBadgeClasses[c.Status(today)]; ok {
		return class
	}
	return "bg-secondary"
}

// YearsSinceIssue returns whole years elapsed since the issue date.
func (c Certification) YearsSinceIssue(today time.Time) int {
	days := int(truncateToDate(today).Sub(c.IssueDate).Hours() / 24)
	return days / 365
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
