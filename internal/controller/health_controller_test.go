package controller

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestHealthCheckMemoryMode(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := NewHealthController(nil, nil)
	r := gin.New()
	r.GET("/api/health", ctrl.HealthCheck)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	resp := decodeEnvelope(t, w)
	data := resp.Data.(map[string]interface{})
	if data["status"] != "ok" {
		t.Errorf("status field = %v, want ok", data["status"])
	}
	components := data["components"].(map[string]interface{})
	if components["database"] != "memory" {
		t.Errorf("database component = %v, want memory", components["database"])
	}
	if _, present := components["redis"]; present {
		t.Error("redis component reported while redis is disabled")
	}
}
