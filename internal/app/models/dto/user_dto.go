package dto

import (
	"time"

	"github.com/oalia/scholarsite/internal/app/models"
)

// UserResponse represents basic user information
type UserResponse struct {
	ID          int64      `json:"id"`
	Email       string     `json:"email"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	Title       *string    `json:"title,omitempty"`
	Role        string     `json:"role"`
	Status      string     `json:"status"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// CreateUserRequest represents the data needed to create a user account
type CreateUserRequest struct {
	Email     string  `json:"email" binding:"required,email"`
	Password  string  `json:"password" binding:"required,min=8"`
	FirstName string  `json:"firstName" binding:"required"`
	LastName  string  `json:"lastName" binding:"required"`
	Title     *string `json:"title,omitempty"`
	Role      string  `json:"role" binding:"omitempty,oneof=user admin"`
}

// UpdateUserRequest represents user profile update data
type UpdateUserRequest struct {
	Email     string  `json:"email" binding:"required,email"`
	FirstName string  `json:"firstName" binding:"required"`
	LastName  string  `json:"lastName" binding:"required"`
	Title     *string `json:"title,omitempty"`
	Role      string  `json:"role" binding:"omitempty,oneof=user admin"`
	Status    string  `json:"status" binding:"omitempty,oneof=active inactive"`
}

// ToUserResponse maps a user model to its response DTO
func ToUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Title:       u.Title,
		Role:        string(u.Role),
		Status:      string(u.Status),
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
	}
}
