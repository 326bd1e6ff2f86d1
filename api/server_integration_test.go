package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-cms-backend/database"
	"github.com/rpupo63/portfolio-cms-backend/media"
	"github.com/rpupo63/portfolio-cms-backend/models"
)

const integrationSecret = "integration-secret"

// setupIntegration is opt-in. Set PORTFOLIO_TEST_DSN to a throwaway Postgres
// DSN to run the full-stack tests; tables are truncated on setup.
func setupIntegration(t *testing.T) (*chi.Mux, database.Database) {
	t.Helper()
	dsn := os.Getenv("PORTFOLIO_TEST_DSN")
	if dsn == "" {
		t.Skip("integration tests are disabled; set PORTFOLIO_TEST_DSN to enable")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("connect to test database: %v", err)
	}
	database.Migrate(db)

	for _, table := range []string{
		"project_technologies", "project_images", "projects",
		"project_categories", "technologies", "certifications",
		"contact_messages", "profiles",
	} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			t.Fatalf("truncate %s: %v", table, err)
		}
	}

	storage, err := media.NewDiskStorage(t.TempDir(), "/media")
	if err != nil {
		t.Fatalf("disk storage: %v", err)
	}

	currentDB := database.New(db)
	router := newRouter(currentDB, storage,
		withConfig(map[string]string{
			"JWT_SECRET":     integrationSecret,
			"ADMIN_USERNAME": "owner",
			"ADMIN_PASSWORD": "devpass",
		}),
		withStartupTime(time.Now()),
	)
	return router, currentDB
}

func postJSON(t *testing.T, router http.Handler, path string, payload any, token string) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func getJSON(t *testing.T, router http.Handler, path string, out any) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if out != nil && rec.Code == http.StatusOK {
		if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
			t.Fatalf("decode %s response: %v", path, err)
		}
	}
	return rec
}

func staffToken(t *testing.T) string {
	return signToken(t, []byte(integrationSecret), true, time.Hour)
}

func seedCategory(t *testing.T, db database.Database, name string) *models.ProjectCategory {
	t.Helper()
	category := &models.ProjectCategory{Name: name, IsActive: true}
	if err := db.ProjectCategoryRepo().Add(category); err != nil {
		t.Fatalf("seed category %s: %v", name, err)
	}
	return category
}

func TestContactFormFlow(t *testing.T) {
	router, db := setupIntegration(t)

	// Missing name is rejected with the offending field and nothing stored.
	rec := postJSON(t, router, "/contact", map[string]string{
		"email":   "visitor@example.com",
		"message": "hello",
	}, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 (body %s)", rec.Code, rec.Body.String())
	}
	var errResp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &errResp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if errResp["field"] != "name" {
		t.Errorf("error field = %v, want name", errResp["field"])
	}
	messages, err := db.ContactMessageRepo().FindAll()
	if err != nil {
		t.Fatalf("find messages: %v", err)
	}
	if len(messages) != 0 {
		t.Fatalf("rejected submission was stored: %d rows", len(messages))
	}

	// A valid submission lands unread in the admin inbox.
	rec = postJSON(t, router, "/contact", map[string]string{
		"name":    "Visitor",
		"email":   "visitor@example.com",
		"subject": "Hi",
		"message": "hello",
	}, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body %s)", rec.Code, rec.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/admin/messages", nil)
	req.Header.Set("Authorization", "Bearer "+staffToken(t))
	inbox := httptest.NewRecorder()
	router.ServeHTTP(inbox, req)
	if inbox.Code != http.StatusOK {
		t.Fatalf("inbox status = %d", inbox.Code)
	}
	var stored []models.ContactMessage
	if err := json.Unmarshal(inbox.Body.Bytes(), &stored); err != nil {
		t.Fatalf("decode inbox: %v", err)
	}
	if len(stored) != 1 || stored[0].IsRead {
		t.Fatalf("inbox = %+v, want one unread message", stored)
	}
}

func TestHomeDigestCaps(t *testing.T) {
	router, db := setupIntegration(t)
	category := seedCategory(t, db, "Web")

	for i := 0; i < 8; i++ {
		project := &models.Project{
			Title:      fmt.Sprintf("Project %d", i),
			CategoryID: category.ID,
			Featured:   true,
			Published:  true,
			Status:     models.StatusCompleted,
		}
		if err := db.ProjectRepo().Add(project); err != nil {
			t.Fatalf("seed project %d: %v", i, err)
		}
	}
	for i := 0; i < 4; i++ {
		certification := &models.Certification{
			Title:     fmt.Sprintf("Certification %d", i),
			Issuer:    models.IssuerCoursera,
			Level:     models.LevelIntermediate,
			IssueDate: time.Date(2024, time.January, 1+i, 0, 0, 0, 0, time.UTC),
			Featured:  true,
			IsActive:  true,
		}
		if err := db.CertificationRepo().Add(certification); err != nil {
			t.Fatalf("seed certification %d: %v", i, err)
		}
	}

	var digest HomeResponse
	if rec := getJSON(t, router, "/", &digest); rec.Code != http.StatusOK {
		t.Fatalf("home status = %d", rec.Code)
	}
	if len(digest.FeaturedProjects) != 6 {
		t.Errorf("featured projects = %d, want 6", len(digest.FeaturedProjects))
	}
	if len(digest.FeaturedCertifications) != 3 {
		t.Errorf("featured certifications = %d, want 3", len(digest.FeaturedCertifications))
	}
}

func TestProjectSearchDeduplicates(t *testing.T) {
	router, db := setupIntegration(t)
	category := seedCategory(t, db, "Web")

	technology := &models.Technology{Name: "Django"}
	if err := db.TechnologyRepo().Add(technology); err != nil {
		t.Fatalf("seed technology: %v", err)
	}

	// Matches the query through both its title and its technology.
	project := &models.Project{
		Title:       "Django Blog",
		Description: "A blog built with Django",
		CategoryID:  category.ID,
		Published:   true,
		Status:      models.StatusCompleted,
	}
	if err := db.ProjectRepo().Add(project); err != nil {
		t.Fatalf("seed project: %v", err)
	}
	if err := db.ProjectRepo().ReplaceTechnologies(project, []models.Technology{*technology}); err != nil {
		t.Fatalf("attach technology: %v", err)
	}

	var listing ProjectListResponse
	if rec := getJSON(t, router, "/projects?q=django", &listing); rec.Code != http.StatusOK {
		t.Fatalf("projects status = %d", rec.Code)
	}
	if listing.Total != 1 {
		t.Fatalf("search returned %d results, want exactly 1", listing.Total)
	}
}

func TestProjectSlugSurvivesRename(t *testing.T) {
	router, db := setupIntegration(t)
	category := seedCategory(t, db, "Web")

	project := &models.Project{
		Title:      "Weather Dashboard",
		CategoryID: category.ID,
		Published:  true,
		Status:     models.StatusCompleted,
	}
	if err := db.ProjectRepo().Add(project); err != nil {
		t.Fatalf("seed project: %v", err)
	}
	if project.Slug != "weather-dashboard" {
		t.Fatalf("slug = %q, want %q", project.Slug, "weather-dashboard")
	}

	body, err := json.Marshal(map[string]string{"title": "Climate Dashboard"})
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPut, "/admin/projects/"+project.ID.String(), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+staffToken(t))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d (body %s)", rec.Code, rec.Body.String())
	}

	// The original slug still resolves and carries the new title.
	var detail ProjectDetailResponse
	if rec := getJSON(t, router, "/projects/weather-dashboard", &detail); rec.Code != http.StatusOK {
		t.Fatalf("detail status = %d", rec.Code)
	}
	if detail.Project.Title != "Climate Dashboard" {
		t.Errorf("title = %q, want the renamed title", detail.Project.Title)
	}
	if detail.Project.Slug != "weather-dashboard" {
		t.Errorf("slug = %q, want the original slug", detail.Project.Slug)
	}

	// The rename never minted a new slug.
	if rec := getJSON(t, router, "/projects/climate-dashboard", nil); rec.Code != http.StatusNotFound {
		t.Errorf("renamed slug resolved with status %d, want 404", rec.Code)
	}
}

func TestCategoryDeleteRefusedWhileInUse(t *testing.T) {
	router, db := setupIntegration(t)
	category := seedCategory(t, db, "Web")

	project := &models.Project{
		Title:      "Keeper",
		CategoryID: category.ID,
		Published:  true,
		Status:     models.StatusCompleted,
	}
	if err := db.ProjectRepo().Add(project); err != nil {
		t.Fatalf("seed project: %v", err)
	}

	req := httptest.NewRequest(http.MethodDelete, "/admin/categories/"+category.ID.String(), nil)
	req.Header.Set("Authorization", "Bearer "+staffToken(t))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusConflict {
		t.Fatalf("delete status = %d, want 409 (body %s)", rec.Code, rec.Body.String())
	}

	// After the project is gone the category can be removed.
	if err := db.ProjectRepo().Delete(project.ID); err != nil {
		t.Fatalf("delete project: %v", err)
	}
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req.Clone(req.Context()))
	if rec.Code != http.StatusOK {
		t.Fatalf("delete status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
}
