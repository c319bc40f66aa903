package controller

import (
	"errors"
	"time"

	"scholarship_portal_backend/internal/model"
	"scholarship_portal_backend/internal/service"
	"scholarship_portal_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// ProfileController serves scholar profiles and disbursement management.
type ProfileController struct {
	ProfileService *service.ProfileService
}

func NewProfileController(profileService *service.ProfileService) *ProfileController {
	return &ProfileController{ProfileService: profileService}
}

// ListStudentProfiles godoc
// @Summary List scholar profiles
// @Description Approved applications with their disbursements
// @Tags profiles
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]service.StudentProfile} "Success"
// @Router /api/profiles/students [get]
func (c *ProfileController) ListStudentProfiles(ctx *gin.Context) {
	profiles, err := c.ProfileService.ListStudentProfiles()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, profiles)
}

// GetStudentProfile godoc
// @Summary Get one scholar profile
// @Tags profiles
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Application ID"
// @Success 200 {object} util.Response{data=service.StudentProfile} "Success"
// @Failure 404 {object} util.Response "Not found or not approved"
// @Router /api/profiles/students/{id} [get]
func (c *ProfileController) GetStudentProfile(ctx *gin.Context) {
	profile, err := c.ProfileService.GetStudentProfile(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrApplicationNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, profile)
}

// AwardRequest sets the scholarship grant on an approved application.
// swagger:model AwardRequest
type AwardRequest struct {
	Amount          int    `json:"amount" binding:"required"`
	ScholarshipType string `json:"scholarshipType" binding:"required"`
	AcademicYear    string `json:"academicYear"`
}

// AwardScholarship godoc
// @Summary Record a scholarship award
// @Tags profiles
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Application ID"
// @Param body body AwardRequest true "Award details"
// @Success 200 {object} util.Response{data=model.Application} "Success"
// @Failure 400 {object} util.Response "Validation error"
// @Failure 404 {object} util.Response "Not found"
// @Router /api/admin/applications/{id}/award [patch]
func (c *ProfileController) AwardScholarship(ctx *gin.Context) {
	var req AwardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	app, err := c.ProfileService.Award(ctx.Param("id"), req.Amount, model.ScholarshipType(req.ScholarshipType), req.AcademicYear)
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

// AddDisbursementRequest records one payment tranche.
// swagger:model AddDisbursementRequest
type AddDisbursementRequest struct {
	Amount      int    `json:"amount" binding:"required"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

// AddDisbursement godoc
// @Summary Record a disbursement tranche
// @Tags profiles
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Application ID"
// @Param body body AddDisbursementRequest true "Tranche details"
// @Success 201 {object} util.Response{data=model.Disbursement} "Created"
// @Failure 400 {object} util.Response "Validation error"
// @Failure 404 {object} util.Response "Not found"
// @Router /api/admin/applications/{id}/disbursements [post]
func (c *ProfileController) AddDisbursement(ctx *gin.Context) {
	var req AddDisbursementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	var date time.Time
	if req.Date != "" {
		parsed, err := parseDate(req.Date)
		if err != nil {
			util.BadRequest(ctx, "date must be an ISO date")
			return
		}
		date = parsed
	}

	d, err := c.ProfileService.AddDisbursement(ctx.Param("id"), req.Amount, date, req.Description)
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

	util.Created(ctx, d)
}

// UpdateDisbursementStatus godoc
// @Summary Move a disbursement along its status enum
// @Tags profiles
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Disbursement ID"
// @Param body body UpdateStatusRequest true "Target status"
// @Success 200 {object} util.Response{data=model.Disbursement} "Success"
// @Failure 400 {object} util.Response "Invalid status"
// @Failure 404 {object} util.Response "Not found"
// @Router /api/admin/disbursements/{id}/status [patch]
func (c *ProfileController) UpdateDisbursementStatus(ctx *gin.Context) {
	var req UpdateStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	d, err := c.ProfileService.UpdateDisbursementStatus(ctx.Param("id"), model.DisbursementStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, util.ErrInvalidStatus):
			util.BadRequest(ctx, "status must be one of pending, processed, completed")
		case errors.Is(err, util.ErrDisbursementNotFound):
			util.NotFound(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, d)
}
