package service

import (
	"context"
	"errors"
	"testing"

	"scholarship_portal_backend/internal/model"
	"scholarship_portal_backend/internal/util"
)

func correctAnswers() []string {
	answers := make([]string, len(model.QuizQuestions))
	for i, q := range model.QuizQuestions {
		answers[i] = q.CorrectAnswer
	}
	return answers
}

func TestQuizScore(t *testing.T) {
	svc := NewQuizService(nil)

	tests := []struct {
		name    string
		answers []string
		want    int
		wantErr error
	}{
		{
			name:    "all correct",
			answers: correctAnswers(),
			want:    len(model.QuizQuestions),
		},
		{
			name:    "all wrong",
			answers: []string{"x", "x", "x", "x", "x"},
			want:    0,
		},
		{
			name: "one wrong",
			answers: func() []string {
				a := correctAnswers()
				a[2] = "wrong"
				return a
			}(),
			want: len(model.QuizQuestions) - 1,
		},
		{
			name:    "too few answers",
			answers: []string{"Plateau State"},
			wantErr: util.ErrAnswerCountMismatch,
		},
		{
			name:    "too many answers",
			answers: append(correctAnswers(), "extra"),
			wantErr: util.ErrAnswerCountMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Score(tt.answers)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Score() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Score() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Score() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestQuizEligibilityThreshold(t *testing.T) {
	svc := NewQuizService(nil)

	for score := 0; score <= len(model.QuizQuestions); score++ {
		want := score >= model.PassScore
		if got := svc.IsEligible(score); got != want {
			t.Errorf("IsEligible(%d) = %v, want %v", score, got, want)
		}
	}
}

func TestQuizSubmit(t *testing.T) {
	svc := NewQuizService(nil)

	answers := correctAnswers()
	answers[0] = "Lagos State"

	result, err := svc.Submit(context.Background(), answers, "applicant@example.com")
	if err != nil {
		t.Fatalf("Submit() unexpected error: %v", err)
	}

	if result.Score != len(model.QuizQuestions)-1 {
		t.Errorf("Score = %d, want %d", result.Score, len(model.QuizQuestions)-1)
	}
	if result.Total != len(model.QuizQuestions) {
		t.Errorf("Total = %d, want %d", result.Total, len(model.QuizQuestions))
	}
	if !result.Passed {
		t.Error("Passed = false, want true with a single miss")
	}
	if len(result.Results) != len(model.QuizQuestions) {
		t.Fatalf("Results length = %d, want %d", len(result.Results), len(model.QuizQuestions))
	}
	if result.Results[0].Correct {
		t.Error("Results[0].Correct = true, want false")
	}
	for i := 1; i < len(result.Results); i++ {
		if !result.Results[i].Correct {
			t.Errorf("Results[%d].Correct = false, want true", i)
		}
	}
}

func TestQuizCachedScoreWithoutRedis(t *testing.T) {
	svc := NewQuizService(nil)
	if _, ok := svc.CachedScore(context.Background(), "applicant@example.com"); ok {
		t.Error("CachedScore() returned a hit without redis configured")
	}
}
