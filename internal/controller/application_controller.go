package controller

import (
	"errors"
	"time"

	"scholarship_portal_backend/internal/model"
	"scholarship_portal_backend/internal/service"
	"scholarship_portal_backend/internal/util"
	"scholarship_portal_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type ApplicationController struct {
	ApplicationService *service.ApplicationService
}

func NewApplicationController(applicationService *service.ApplicationService) *ApplicationController {
	return &ApplicationController{ApplicationService: applicationService}
}

// CreateApplicationRequest carries the applicant fields of a new submission.
// swagger:model CreateApplicationRequest
type CreateApplicationRequest struct {
	FullName      string `json:"fullName" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone" binding:"required"`
	Gender        string `json:"gender" binding:"required"`
	DateOfBirth   string `json:"dateOfBirth" binding:"required"`
	Address       string `json:"address" binding:"required"`
	LGA           string `json:"lga" binding:"required"`
	Institution   string `json:"institution" binding:"required"`
	Course        string `json:"course" binding:"required"`
	Level         string `json:"level" binding:"required"`
	MatricNumber  string `json:"matricNumber" binding:"required"`
	QuizScore     int    `json:"quizScore"`
	AcademicYear  string `json:"academicYear"`
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	AccountName   string `json:"accountName"`
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

// CreateApplication godoc
// @Summary Submit a scholarship application
// @Description Creates a new application with status pending
// @Tags applications
// @Accept json
// @Produce json
// @Param body body CreateApplicationRequest true "Applicant fields"
// @Success 201 {object} util.Response{data=model.Application} "Created"
// @Failure 400 {object} util.Response "Validation error"
// @Router /api/applications [post]
func (c *ApplicationController) CreateApplication(ctx *gin.Context) {
	var req CreateApplicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	dob, err := parseDate(req.DateOfBirth)
	if err != nil {
		util.BadRequest(ctx, "dateOfBirth must be an ISO date")
		return
	}

	app := &model.Application{
		FullName:      req.FullName,
		Email:         req.Email,
		Phone:         req.Phone,
		Gender:        model.Gender(req.Gender),
		DateOfBirth:   dob,
		Address:       req.Address,
		LGA:           req.LGA,
		Institution:   req.Institution,
		Course:        req.Course,
		Level:         req.Level,
		MatricNumber:  req.MatricNumber,
		QuizScore:     req.QuizScore,
		AcademicYear:  req.AcademicYear,
		BankName:      req.BankName,
		AccountNumber: req.AccountNumber,
		AccountName:   req.AccountName,
	}

	// Link the submitting account when one is logged in.
	if claims := util.GetUserFromContext(ctx); claims != nil {
		ownerID := claims.UserID
		app.OwnerID = &ownerID
	}

	if err := c.ApplicationService.Create(ctx.Request.Context(), app); err != nil {
		if errors.Is(err, util.ErrValidation) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	monitoring.ApplicationsSubmitted.Inc()
	util.Created(ctx, app)
}

// ListApplications godoc
// @Summary List applications
// @Description Lists applications newest first, optionally filtered by status
// @Tags applications
// @Produce json
// @Security ApiKeyAuth
// @Param status query string false "pending|approved|rejected"
// @Success 200 {object} util.Response{data=[]model.Application} "Success"
// @Failure 400 {object} util.Response "Invalid status filter"
// @Router /api/applications [get]
func (c *ApplicationController) ListApplications(ctx *gin.Context) {
	apps, err := c.ApplicationService.List(ctx.Query("status"))
	if err != nil {
		if errors.Is(err, util.ErrInvalidStatus) {
			util.BadRequest(ctx, "status must be one of pending, approved, rejected")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, apps)
}

// GetApplication godoc
// @Summary Get one application
// @Tags applications
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Application ID"
// @Success 200 {object} util.Response{data=model.Application} "Success"
// @Failure 404 {object} util.Response "Not found"
// @Router /api/applications/{id} [get]
func (c *ApplicationController) GetApplication(ctx *gin.Context) {
	app, err := c.ApplicationService.Get(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrApplicationNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, app)
}

// UpdateApplication godoc
// @Summary Partially update an application
// @Description Merges the supplied fields over the stored record
// @Tags applications
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Application ID"
// @Param body body service.ApplicationUpdate true "Fields to change"
// @Success 200 {object} util.Response{data=model.Application} "Success"
// @Failure 400 {object} util.Response "Validation error"
// @Failure 404 {object} util.Response "Not found"
// @Router /api/applications/{id} [patch]
func (c *ApplicationController) UpdateApplication(ctx *gin.Context) {
	var update service.ApplicationUpdate
	if err := ctx.ShouldBindJSON(&update); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	app, err := c.ApplicationService.Update(ctx.Param("id"), &update)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrApplicationNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrValidation):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, app)
}

// UpdateStatusRequest carries the target status of a review decision.
// swagger:model UpdateStatusRequest
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateApplicationStatus godoc
// @Summary Approve or reject an application
// @Description Any-to-any status moves are allowed as administrative override
// @Tags applications
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Application ID"
// @Param body body UpdateStatusRequest true "Target status"
// @Success 200 {object} util.Response{data=model.Application} "Success"
// @Failure 400 {object} util.Response "Invalid status"
// @Failure 404 {object} util.Response "Not found"
// @Router /api/applications/{id}/status [patch]
func (c *ApplicationController) UpdateApplicationStatus(ctx *gin.Context) {
	var req UpdateStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	app, err := c.ApplicationService.UpdateStatus(ctx.Param("id"), model.ApplicationStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, util.ErrInvalidStatus):
			util.BadRequest(ctx, "status must be one of pending, approved, rejected")
		case errors.Is(err, util.ErrApplicationNotFound):
			util.NotFound(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	monitoring.ApplicationDecisions.WithLabelValues(string(app.Status)).Inc()
	util.Success(ctx, app)
}

// UploadDocument godoc
// @Summary Attach a document to an application
// @Description Uploads the file and merges its URL into the application
// @Tags applications
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Application ID"
// @Param file formData file true "Document file"
// @Param type formData string true "indigeneForm|admissionLetter|passportPhoto"
// @Success 200 {object} util.Response{data=object} "Success"
// @Failure 400 {object} util.Response "Unknown document type"
// @Failure 404 {object} util.Response "Not found"
// @Router /api/applications/{id}/documents [post]
func (c *ApplicationController) UploadDocument(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}
	docType := ctx.PostForm("type")

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	url, err := c.ApplicationService.AttachDocument(
		ctx.Request.Context(),
		ctx.Param("id"),
		docType,
		fileHeader.Filename,
		file,
		fileHeader.Size,
		fileHeader.Header.Get("Content-Type"),
	)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrUnknownDocumentType):
			util.BadRequest(ctx, "type must be one of indigeneForm, admissionLetter, passportPhoto")
		case errors.Is(err, util.ErrApplicationNotFound):
			util.NotFound(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"url": url})
}

// DeleteApplication godoc
// @Summary Delete an application
// @Description Hard delete; stored document artifacts are not collected
// @Tags applications
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Application ID"
// @Success 200 {object} util.Response "Success"
// @Failure 404 {object} util.Response "Not found"
// @Router /api/applications/{id} [delete]
func (c *ApplicationController) DeleteApplication(ctx *gin.Context) {
	if err := c.ApplicationService.Delete(ctx.Param("id")); err != nil {
		if errors.Is(err, util.ErrApplicationNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, nil)
}
