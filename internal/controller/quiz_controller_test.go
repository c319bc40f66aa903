package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"scholarship_portal_backend/internal/model"
	"scholarship_portal_backend/internal/service"

	"github.com/gin-gonic/gin"
)

func newQuizRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewQuizController(service.NewQuizService(nil))
	r := gin.New()
	r.GET("/api/quiz/questions", ctrl.GetQuestions)
	r.POST("/api/quiz/submit", ctrl.SubmitQuiz)
	return r
}

func TestGetQuestionsHidesAnswers(t *testing.T) {
	r := newQuizRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/quiz/questions", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp struct {
		Data []map[string]interface{} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Data) != len(model.QuizQuestions) {
		t.Fatalf("got %d questions, want %d", len(resp.Data), len(model.QuizQuestions))
	}
	for i, q := range resp.Data {
		if _, leaked := q["correctAnswer"]; leaked {
			t.Errorf("question %d serialized its correct answer", i)
		}
		if _, leaked := q["CorrectAnswer"]; leaked {
			t.Errorf("question %d serialized its correct answer", i)
		}
	}
}

func TestSubmitQuizEndpoint(t *testing.T) {
	r := newQuizRouter()

	answers := make([]string, len(model.QuizQuestions))
	for i, q := range model.QuizQuestions {
		answers[i] = q.CorrectAnswer
	}

	raw, _ := json.Marshal(gin.H{"answers": answers, "email": "quiz@example.com"})
	req := httptest.NewRequest(http.MethodPost, "/api/quiz/submit", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data service.QuizResult `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Data.Score != len(model.QuizQuestions) || !resp.Data.Passed {
		t.Errorf("result = %+v, want a full passing score", resp.Data)
	}

	// Wrong answer count is a client error.
	raw, _ = json.Marshal(gin.H{"answers": []string{"only one"}})
	req = httptest.NewRequest(http.MethodPost, "/api/quiz/submit", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("short attempt: got %d, want 400", w.Code)
	}
}
