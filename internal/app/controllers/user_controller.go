package controllers

import (
	"net/http"

	"github.com/Visall666/school-api/internal/app/services"
	"github.com/Visall666/school-api/internal/middleware"
	"github.com/gin-gonic/gin"
)

// UserController handles user account operations
type UserController struct {
	userService services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// GetAllUsers retrieves all users
// @Summary List users
// @Description Retrieves all user accounts; the password hash is never serialized
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} []models.User "Users retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users [get]
func (c *UserController) GetAllUsers(ctx *gin.Context) {
	users, err := c.userService.GetAllUsers(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, users)
}
