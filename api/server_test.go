package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rpupo63/portfolio-cms-backend/database"
)

func TestMetricsEndpointToggle(t *testing.T) {
	cases := []struct {
		name       string
		config     map[string]string
		wantStatus int
	}{
		{"enabled by default", map[string]string{}, http.StatusOK},
		{"explicitly enabled", map[string]string{"METRICS_ENABLED": "true"}, http.StatusOK},
		{"disabled", map[string]string{"METRICS_ENABLED": "false"}, http.StatusNotFound},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			router := newRouter(database.Database{}, nil, withConfig(c.config))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
			if rec.Code != c.wantStatus {
				t.Fatalf("GET /metrics = %d, want %d", rec.Code, c.wantStatus)
			}
		})
	}
}
