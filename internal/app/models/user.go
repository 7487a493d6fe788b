package models

import "time"

// User defines the user model based on the 'users' table
type User struct {
	ID          int64      `json:"id" db:"id" example:"1"`
	Email       string     `json:"email" db:"email" example:"admin@example.edu"`
	Password    string     `json:"-" db:"password"` // Hashed, excluded from JSON
	FirstName   string     `json:"firstName" db:"first_name"`
	LastName    string     `json:"lastName" db:"last_name"`
	Title       *string    `json:"title,omitempty" db:"title" example:"Professor"`
	Role        Role       `json:"role" db:"role" example:"user"`
	Status      UserStatus `json:"status" db:"status" example:"active"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty" db:"last_login_at"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
