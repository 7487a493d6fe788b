package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oalia/scholarsite/internal/app/models"
	"github.com/oalia/scholarsite/internal/app/models/dto"
	"github.com/oalia/scholarsite/internal/app/services"
	"github.com/oalia/scholarsite/internal/middleware"
)

// UserController handles user account management
type UserController struct {
	userService *services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService *services.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// ListUsers retrieves all user accounts
// @Summary List users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.UserResponse} "Users retrieved successfully"
// @Router /admin/users [get]
func (c *UserController) ListUsers(ctx *gin.Context) {
	users, err := c.userService.List(ctx)
	if users == nil && err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, dto.ToUserResponse(u))
	}
	ctx.JSON(http.StatusOK, dto.NewCachedResponse(responses, err))
}

// CreateUser handles user account creation
// @Summary Create a user account
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateUserRequest true "User data"
// @Success 201 {object} dto.APIResponse{data=dto.UserResponse} "User created successfully"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Router /admin/users [post]
func (c *UserController) CreateUser(ctx *gin.Context) {
	var req dto.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid user data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	user := &models.User{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Title:     req.Title,
		Role:      models.Role(req.Role),
	}
	id, err := c.userService.Create(ctx, user, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	user.ID = id
	ctx.JSON(http.StatusCreated, dto.APIResponse{Success: true, Data: dto.ToUserResponse(user), Timestamp: time.Now()})
}

// UpdateUser handles user account updates
// @Summary Update a user account
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body dto.UpdateUserRequest true "User data"
// @Success 200 {object} dto.APIResponse "User updated successfully"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /admin/users/{id} [put]
func (c *UserController) UpdateUser(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid user data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	existing, err := c.userService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	existing.Email = req.Email
	existing.FirstName = req.FirstName
	existing.LastName = req.LastName
	existing.Title = req.Title
	if req.Role != "" {
		existing.Role = models.Role(req.Role)
	}
	if req.Status != "" {
		existing.Status = models.UserStatus(req.Status)
	}

	if err := c.userService.Update(ctx, existing); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "User updated"))
}

// DeleteUser handles user account deletion
// @Summary Delete a user account
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param confirm query bool true "Must be true to confirm the delete"
// @Success 200 {object} dto.APIResponse "User deleted"
// @Failure 428 {object} dto.ErrorResponse "Delete not confirmed"
// @Router /admin/users/{id} [delete]
func (c *UserController) DeleteUser(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	confirmedDelete(ctx, func() error {
		return c.userService.Delete(ctx, id)
	})
}
