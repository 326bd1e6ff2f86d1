package models

import (
	"strings"
	"testing"
	"time"
)

func TestProjectValidate(t *testing.T) {
	p := Project{Title: "Portfolio Site", Status: StatusCompleted}
	if err := p.Validate(); err != nil {
		t.Fatalf("valid project rejected: %v", err)
	}

	p.Title = ""
	if err := p.Validate(); err == nil {
		t.Error("expected error for missing title")
	}

	p = Project{Title: "Portfolio Site", Status: "abandoned"}
	if err := p.Validate(); err == nil {
		t.Error("expected error for unknown status")
	}

	start := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, -1, 0)
	p = Project{Title: "Portfolio Site", StartDate: &start, EndDate: &end}
	if err := p.Validate(); err == nil {
		t.Error("expected error for end date before start date")
	}
}

func TestProjectSlugAssignedOnce(t *testing.T) {
	p := Project{Title: "My Cool App"}
	if err := p.BeforeCreate(nil); err != nil {
		t.Fatalf("create hook: %v", err)
	}
	if p.Slug != "my-cool-app" {
		t.Fatalf("slug = %q, want %q", p.Slug, "my-cool-app")
	}

	// A later title edit never touches an assigned slug.
	p.Title = "Renamed App"
	if err := p.BeforeCreate(nil); err != nil {
		t.Fatalf("create hook after rename: %v", err)
	}
	if p.Slug != "my-cool-app" {
		t.Errorf("slug changed after rename: %q", p.Slug)
	}
}

func TestProjectDuration(t *testing.T) {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 90)

	p := Project{StartDate: &start, EndDate: &end}
	if got := p.Duration(); got != "3 months" {
		t.Errorf("duration = %q, want \"3 months\"", got)
	}

	p = Project{StartDate: &start}
	if got := p.Duration(); got != "Ongoing" {
		t.Errorf("duration = %q, want Ongoing", got)
	}

	p = Project{}
	if got := p.Duration(); got != "Not specified" {
		t.Errorf("duration = %q, want \"Not specified\"", got)
	}
}

func TestProjectStatusDisplay(t *testing.T) {
	p := Project{Status: StatusInProgress}
	if got := p.StatusDisplay(); got != "In Progress" {
		t.Errorf("status display = %q, want \"In Progress\"", got)
	}
	if got := p.StatusBadgeClass(); got != "bg-warning" {
		t.Errorf("status badge = %q, want bg-warning", got)
	}
	if !p.IsActive() {
		t.Error("in-progress project not reported active")
	}

	p.Status = "abandoned"
	if got := p.StatusBadgeClass(); got != "bg-secondary" {
		t.Errorf("status badge = %q, want bg-secondary", got)
	}
	if p.IsActive() {
		t.Error("unknown status reported active")
	}
}

func TestProjectShortDescription(t *testing.T) {
	p := Project{Description: "short"}
	if got := p.ShortDescription(); got != "short" {
		t.Errorf("short description = %q, want unchanged text", got)
	}

	p.Description = strings.Repeat("x", 200)
	got := p.ShortDescription()
	if len([]rune(got)) != 153 || !strings.HasSuffix(got, "...") {
		t.Errorf("short description = %d runes, want 150 plus ellipsis", len([]rune(got)))
	}
}

func TestProjectTechnologyNames(t *testing.T) {
	p := Project{Technologies: []Technology{{Name: "Go"}, {Name: "Postgres"}}}
	names := p.TechnologyNames()
	if len(names) != 2 || names[0] != "Go" || names[1] != "Postgres" {
		t.Errorf("technology names = %v", names)
	}
}
