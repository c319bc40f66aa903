package controller

import (
	"errors"

	"scholarship_portal_backend/internal/service"
	"scholarship_portal_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

// GetQuestions godoc
// @Summary Eligibility quiz questions
// @Description Returns the fixed question set with correct answers stripped
// @Tags quiz
// @Produce json
// @Success 200 {object} util.Response{data=[]model.QuizQuestion} "Success"
// @Router /api/quiz/questions [get]
func (c *QuizController) GetQuestions(ctx *gin.Context) {
	util.Success(ctx, c.QuizService.Questions)
}

// SubmitQuizRequest is a completed attempt: one selected option per question,
// aligned by index. The email is optional and only used to cache the score
// for a later application submission.
// swagger:model SubmitQuizRequest
type SubmitQuizRequest struct {
	Answers []string `json:"answers" binding:"required"`
	Email   string   `json:"email" binding:"omitempty,email"`
}

// SubmitQuiz godoc
// @Summary Score an eligibility quiz attempt
// @Tags quiz
// @Accept json
// @Produce json
// @Param body body SubmitQuizRequest true "Selected answers"
// @Success 200 {object} util.Response{data=service.QuizResult} "Success"
// @Failure 400 {object} util.Response "Answer count mismatch"
// @Router /api/quiz/submit [post]
func (c *QuizController) SubmitQuiz(ctx *gin.Context) {
	var req SubmitQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.QuizService.Submit(ctx.Request.Context(), req.Answers, req.Email)
	if err != nil {
		if errors.Is(err, util.ErrAnswerCountMismatch) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, result)
}
