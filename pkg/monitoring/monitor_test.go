package monitoring

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsMiddlewareRecordsNamespacedSeries(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(MetricsMiddleware())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	// The series must carry the portal namespace; a bare metric name means
	// the counter collected zero series under the expected name.
	if got := testutil.CollectAndCount(RequestCounter, "scholarship_portal_http_requests_total"); got == 0 {
		t.Error("no scholarship_portal_http_requests_total series collected")
	}
	if got := testutil.CollectAndCount(RequestDuration, "scholarship_portal_http_request_duration_seconds"); got == 0 {
		t.Error("no scholarship_portal_http_request_duration_seconds series collected")
	}
}

func TestDomainCountersCarryNamespace(t *testing.T) {
	ApplicationsSubmitted.Inc()
	if got := testutil.CollectAndCount(ApplicationsSubmitted, "scholarship_portal_applications_submitted_total"); got != 1 {
		t.Errorf("applications_submitted series count = %d, want 1", got)
	}

	ApplicationDecisions.WithLabelValues("approved").Inc()
	if got := testutil.CollectAndCount(ApplicationDecisions, "scholarship_portal_application_decisions_total"); got == 0 {
		t.Error("no scholarship_portal_application_decisions_total series collected")
	}
}
