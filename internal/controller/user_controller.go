package controller

import (
	"errors"
	"strconv"

	"scholarship_portal_backend/internal/repository"
	"scholarship_portal_backend/internal/service"
	"scholarship_portal_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// UserController serves the admin user-management screens.
type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

func userIDParam(ctx *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || id <= 0 {
		util.BadRequest(ctx, "invalid user id")
		return 0, false
	}
	return uint(id), true
}

// GetUsers godoc
// @Summary List users
// @Description Optional role/status/search filters; digests never serialized
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Param role query string false "Role filter"
// @Param status query string false "Status filter"
// @Param search query string false "Name or email substring"
// @Success 200 {object} util.Response{data=[]model.User} "Success"
// @Router /api/admin/users [get]
func (c *UserController) GetUsers(ctx *gin.Context) {
	filter := repository.UserFilter{
		Role:   ctx.Query("role"),
		Status: ctx.Query("status"),
		Search: ctx.Query("search"),
	}

	users, err := c.UserService.GetUsers(filter)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, users)
}

// GetUser godoc
// @Summary Get one user
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "User ID"
// @Success 200 {object} util.Response{data=model.User} "Success"
// @Failure 404 {object} util.Response "Not found"
// @Router /api/admin/users/{id} [get]
func (c *UserController) GetUser(ctx *gin.Context) {
	id, ok := userIDParam(ctx)
	if !ok {
		return
	}

	user, err := c.UserService.GetUserByID(id)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, user)
}

// UpdateUser godoc
// @Summary Update a user
// @Description Partial edit of name, role and status
// @Tags users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "User ID"
// @Param body body service.UserUpdate true "Fields to change"
// @Success 200 {object} util.Response{data=model.User} "Success"
// @Failure 400 {object} util.Response "Validation error"
// @Failure 404 {object} util.Response "Not found"
// @Router /api/admin/users/{id} [patch]
func (c *UserController) UpdateUser(ctx *gin.Context) {
	id, ok := userIDParam(ctx)
	if !ok {
		return
	}

	var update service.UserUpdate
	if err := ctx.ShouldBindJSON(&update); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.UpdateUser(id, &update)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrValidation):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, user)
}

// DeleteUser godoc
// @Summary Delete a user
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "User ID"
// @Success 200 {object} util.Response "Success"
// @Failure 404 {object} util.Response "Not found"
// @Router /api/admin/users/{id} [delete]
func (c *UserController) DeleteUser(ctx *gin.Context) {
	id, ok := userIDParam(ctx)
	if !ok {
		return
	}

	if err := c.UserService.DeleteUser(id); err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, nil)
}
