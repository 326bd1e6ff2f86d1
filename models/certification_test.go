package models

import (
	"testing"
	"time"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func validCertification() Certification {
	return Certification{
		Title:     "ML Basics",
		Issuer:    IssuerCoursera,
		Level:     LevelIntermediate,
		IssueDate: date(2024, time.January, 1),
	}
}

func TestCertificationValidate(t *testing.T) {
	if err := validCertification().Validate(); err != nil {
		t.Fatalf("valid certification rejected: %v", err)
	}

	c := validCertification()
	c.Title = ""
	if err := c.Validate(); err == nil {
		t.Error("expected error for missing title")
	}

	c = validCertification()
	c.IssueDate = time.Time{}
	if err := c.Validate(); err == nil {
		t.Error("expected error for missing issue date")
	}

	c = validCertification()
	c.Issuer = "bootcamp"
	if err := c.Validate(); err == nil {
		t.Error("expected error for unknown issuer")
	}

	c = validCertification()
	c.Issuer = IssuerOther
	if err := c.Validate(); err == nil {
		t.Error("expected error for issuer 'other' without a name")
	}
	c.IssuerOther = "Night School"
	if err := c.Validate(); err != nil {
		t.Errorf("issuer 'other' with a name rejected: %v", err)
	}

	c = validCertification()
	c.Level = "wizard"
	if err := c.Validate(); err == nil {
		t.Error("expected error for unknown level")
	}

	c = validCertification()
	expiration := date(2023, time.January, 1)
	c.ExpirationDate = &expiration
	if err := c.Validate(); err == nil {
		t.Error("expected error for expiration before issue date")
	}
}

func TestCertificationExpiryStates(t *testing.T) {
	today := date(2025, time.June, 1)

	c := validCertification()
	if c.IsExpired(today) {
		t.Error("certification without expiration reported expired")
	}
	if c.DaysUntilExpiry(today) != nil {
		t.Error("certification without expiration reported days until expiry")
	}
	if got := c.Status(today); got != CertStatusValid {
		t.Errorf("status = %q, want %q", got, CertStatusValid)
	}

	expiration := today.AddDate(0, 0, 10)
	c.ExpirationDate = &expiration
	if c.IsExpired(today) {
		t.Error("future expiration reported expired")
	}
	if days := c.DaysUntilExpiry(today); days == nil || *days != 10 {
		t.Errorf("days until expiry = %v, want 10", days)
	}
	if !c.IsExpiringSoon(today) {
		t.Error("expiration in 10 days not reported expiring soon")
	}
	if got := c.Status(today); got != CertStatusExpiringSoon {
		t.Errorf("status = %q, want %q", got, CertStatusExpiringSoon)
	}
	if got := c.StatusBadgeClass(today); got != "bg-warning" {
		t.Errorf("status badge = %q, want bg-warning", got)
	}

	expiration = today.AddDate(0, 0, 91)
	c.ExpirationDate = &expiration
	if c.IsExpiringSoon(today) {
		t.Error("expiration in 91 days reported expiring soon")
	}
	if got := c.Status(today); got != CertStatusValid {
		t.Errorf("status = %q, want %q", got, CertStatusValid)
	}

	expiration = today.AddDate(0, 0, -1)
	c.ExpirationDate = &expiration
	if !c.IsExpired(today) {
		t.Error("past expiration not reported expired")
	}
	if c.IsExpiringSoon(today) {
		t.Error("expired certification reported expiring soon")
	}
	if got := c.Status(today); got != CertStatusExpired {
		t.Errorf("status = %q, want %q", got, CertStatusExpired)
	}
}

func TestCertificationYearsSinceIssue(t *testing.T) {
	c := validCertification()
	if got := c.YearsSinceIssue(date(2024, time.June, 1)); got != 0 {
		t.Errorf("years since issue = %d, want 0", got)
	}
	if got := c.YearsSinceIssue(date(2026, time.March, 1)); got != 2 {
		t.Errorf("years since issue = %d, want 2", got)
	}
}

func TestCertificationSkillsList(t *testing.T) {
	c := validCertification()
	if got := c.SkillsList(); got != nil {
		t.Errorf("skills list for empty skills = %v, want nil", got)
	}

	c.Skills = " Python, Pandas , ,scikit-learn"
	got := c.SkillsList()
	want := []string{"Python", "Pandas", "scikit-learn"}
	if len(got) != len(want) {
		t.Fatalf("skills list = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("skills list[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCertificationDisplayMappings(t *testing.T) {
	c := validCertification()
	if got := c.IssuerDisplayName(); got != "Coursera" {
		t.Errorf("issuer display = %q, want Coursera", got)
	}
	if got := c.IssuerIcon(); got != "fas fa-graduation-cap" {
		t.Errorf("issuer icon = %q, want fas fa-graduation-cap", got)
	}

	c.Issuer = IssuerOther
	c.IssuerOther = "Night School"
	if got := c.IssuerDisplayName(); got != "Night School" {
		t.Errorf("issuer display = %q, want Night School", got)
	}
	if got := c.IssuerIcon(); got != "fas fa-certificate" {
		t.Errorf("issuer icon = %q, want fas fa-certificate", got)
	}

	c.Level = LevelExpert
	if got := c.LevelBadgeClass(); got != "bg-danger" {
		t.Errorf("level badge = %q, want bg-danger", got)
	}
	c.Level = "wizard"
	if got := c.LevelBadgeClass(); got != "bg-secondary" {
		t.Errorf("level badge = %q, want bg-secondary", got)
	}
}
