package service

import (
	"context"
	"strconv"
	"time"

	"scholarship_portal_backend/internal/model"
	"scholarship_portal_backend/internal/util"

	"github.com/go-redis/redis/v8"
)

const quizScoreTTL = 24 * time.Hour

// QuizService scores the fixed eligibility quiz. Scoring is pure; the only
// side effect is an optional Redis cache of the submitted score, keyed by the
// applicant's email, so a later application create can pick it up.
type QuizService struct {
	Questions []model.QuizQuestion
	Redis     *redis.Client // nil when redis is disabled
}

func NewQuizService(rdb *redis.Client) *QuizService {
	return &QuizService{
		Questions: model.QuizQuestions,
		Redis:     rdb,
	}
}

// Score counts positions where the selected answer equals the correct one.
// The answer sequence must match the question count exactly.
func (s *QuizService) Score(answers []string) (int, error) {
	if len(answers) != len(s.Questions) {
		return 0, util.ErrAnswerCountMismatch
	}
	score := 0
	for i, q := range s.Questions {
		if answers[i] == q.CorrectAnswer {
			score++
		}
	}
	return score, nil
}

func (s *QuizService) IsEligible(score int) bool {
	return score >= model.PassScore
}

type QuizAnswerResult struct {
	QuestionID  int    `json:"questionId"`
	Correct     bool   `json:"correct"`
	Explanation string `json:"explanation,omitempty"`
}

type QuizResult struct {
	Score   int                `json:"score"`
	Total   int                `json:"total"`
	Passed  bool               `json:"passed"`
	Results []QuizAnswerResult `json:"results"`
}

// Submit scores an attempt and, when a mail address is supplied and Redis is
// configured, caches the score for the application workflow.
func (s *QuizService) Submit(ctx context.Context, answers []string, email string) (*QuizResult, error) {
	score, err := s.Score(answers)
	if err != nil {
		return nil, err
	}

	result := &QuizResult{
		Score:   score,
		Total:   len(s.Questions),
		Passed:  s.IsEligible(score),
		Results: make([]QuizAnswerResult, len(s.Questions)),
	}
	for i, q := range s.Questions {
		result.Results[i] = QuizAnswerResult{
			QuestionID:  q.ID,
			Correct:     answers[i] == q.CorrectAnswer,
			Explanation: q.Explanation,
		}
	}

	if s.Redis != nil && email != "" {
		key := quizScoreKey(NormalizeEmail(email))
		s.Redis.Set(ctx, key, score, quizScoreTTL)
	}

	return result, nil
}

// CachedScore returns the most recent submitted score for the given email.
func (s *QuizService) CachedScore(ctx context.Context, email string) (int, bool) {
	if s.Redis == nil || email == "" {
		return 0, false
	}
	val, err := s.Redis.Get(ctx, quizScoreKey(NormalizeEmail(email))).Result()
	if err != nil {
		return 0, false
	}
	score, err := strconv.Atoi(val)
	if err != nil {
		return 0, false
	}
	return score, true
}

func quizScoreKey(email string) string {
	return "quiz:score:" + email
}
