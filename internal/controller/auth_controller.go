package controller

import (
	"errors"
	"fmt"
	"net/http"

	"scholarship_portal_backend/internal/config"
	"scholarship_portal_backend/internal/model"
	"scholarship_portal_backend/internal/service"
	"scholarship_portal_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const oauthStateCookie = "oauth_state"

type AuthController struct {
	AuthService *service.AuthService
	Cfg         *config.Config
}

func NewAuthController(authService *service.AuthService, cfg *config.Config) *AuthController {
	return &AuthController{
		AuthService: authService,
		Cfg:         cfg,
	}
}

func sanitizeUser(user *model.User) gin.H {
	return gin.H{
		"id":               user.ID,
		"name":             user.Name,
		"email":            user.Email,
		"role":             user.Role,
		"status":           user.Status,
		"registrationDate": user.RegistrationDate,
	}
}

// RegisterRequest defines the self-service registration payload. Password and
// role are optional; the role defaults to student.
// swagger:model RegisterRequest
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"omitempty,min=6"`
	Role     string `json:"role"`
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "Registration payload"
// @Success 201 {object} util.Response{data=object} "Created"
// @Failure 400 {object} util.Response "Validation error"
// @Failure 409 {object} util.Response "Email already registered"
// @Router /api/auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.AuthService.Register(req.Name, req.Email, req.Password, model.UserRole(req.Role))
	if err != nil {
		switch {
		case errors.Is(err, util.ErrEmailRegistered):
			util.Conflict(ctx, "email already registered")
		case errors.Is(err, util.ErrValidation):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	token, err := c.AuthService.IssueSession(user)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{"token": token, "user": sanitizeUser(user)})
}

// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary Login with email and password
// @Description All failure causes collapse into one unauthorized signal
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Credentials"
// @Success 200 {object} util.Response{data=object} "Success"
// @Failure 401 {object} util.Response "Unauthorized"
// @Router /api/auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.AuthService.Login(req.Email, req.Password)
	if err != nil {
		util.Unauthorized(ctx)
		return
	}

	token, err := c.AuthService.IssueSession(user)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"token": token, "user": sanitizeUser(user)})
}

// GoogleAuth godoc
// @Summary Redirect to the Google consent screen
// @Tags auth
// @Success 307 "Redirect"
// @Router /api/auth/google [get]
func (c *AuthController) GoogleAuth(ctx *gin.Context) {
	state := uuid.New().String()
	ctx.SetCookie(oauthStateCookie, state, 600, "/", "", c.Cfg.Server.Mode == "release", true)
	ctx.Redirect(http.StatusTemporaryRedirect, c.AuthService.GoogleAuthURL(state))
}

// GoogleCallback godoc
// @Summary Google OAuth callback
// @Description Issues a session token and redirects to the frontend with it
// @Tags auth
// @Success 307 "Redirect"
// @Failure 401 {object} util.Response "State mismatch or exchange failure"
// @Router /api/auth/google/callback [get]
func (c *AuthController) GoogleCallback(ctx *gin.Context) {
	state, err := ctx.Cookie(oauthStateCookie)
	if err != nil || state == "" || state != ctx.Query("state") {
		util.Unauthorized(ctx)
		return
	}

	user, err := c.AuthService.GoogleCallback(ctx.Request.Context(), ctx.Query("code"))
	if err != nil {
		util.Unauthorized(ctx)
		return
	}

	token, err := c.AuthService.IssueSession(user)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.Redirect(http.StatusTemporaryRedirect, fmt.Sprintf("%s?token=%s", c.Cfg.Frontend.URL, token))
}

// GetProfile godoc
// @Summary Current user profile
// @Tags auth
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object} "Success"
// @Failure 401 {object} util.Response "Unauthorized"
// @Router /api/profile [get]
func (c *AuthController) GetProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	user, err := c.AuthService.Users.FindByID(claims.UserID)
	if err != nil {
		util.Unauthorized(ctx)
		return
	}

	util.Success(ctx, sanitizeUser(user))
}
