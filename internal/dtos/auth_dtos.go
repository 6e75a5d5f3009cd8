package dtos

import (
	"time"

	"github.com/kaudaouda/Anac-backend/internal/models"
)

type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Username  string `json:"username" validate:"omitempty,min=3,max=50"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Phone     string `json:"phone" validate:"omitempty,max=30"`
	Password  string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserDetail is the public view of an account. It never exposes the
// password hash or internal flags beyond the two role booleans the
// frontend renders on.
type UserDetail struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	Username    string     `json:"username"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	Phone       string     `json:"phone,omitempty"`
	IsStaff     bool       `json:"is_staff"`
	IsSuperuser bool       `json:"is_superuser"`
	IsVerified  bool       `json:"is_verified"`
	LastLogin   *time.Time `json:"last_login,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func NewUserDetail(u *models.User) UserDetail {
	return UserDetail{
		ID:          u.ID.String(),
		Email:       u.Email,
		Username:    u.Username,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Phone:       u.Phone,
		IsStaff:     u.IsStaff,
		IsSuperuser: u.IsSuperuser,
		IsVerified:  u.IsVerified,
		LastLogin:   u.LastLogin,
		CreatedAt:   u.CreatedAt,
	}
}

type LoginResponse struct {
	Message string     `json:"message"`
	User    UserDetail `json:"user"`
}

type LogoutResponse struct {
	Message string `json:"message"`
}

type RefreshTokenResponse struct {
	Message string `json:"message"`
}

type CheckAuthResponse struct {
	IsAuthenticated bool        `json:"is_authenticated"`
	User            *UserDetail `json:"user,omitempty"`
}

type ProfileResponse struct {
	User    UserDetail          `json:"user"`
	Profile *models.UserProfile `json:"profile,omitempty"`
}

type UpdateProfileRequest struct {
	FirstName  string     `json:"first_name" validate:"required,max=100"`
	LastName   string     `json:"last_name" validate:"required,max=100"`
	Phone      string     `json:"phone" validate:"omitempty,max=30"`
	AvatarURL  string     `json:"avatar_url" validate:"omitempty,url"`
	Bio        string     `json:"bio" validate:"omitempty,max=1000"`
	BirthDate  *time.Time `json:"birth_date"`
	Address    string     `json:"address" validate:"omitempty,max=255"`
	City       string     `json:"city" validate:"omitempty,max=100"`
	Country    string     `json:"country" validate:"omitempty,max=100"`
	PostalCode string     `json:"postal_code" validate:"omitempty,max=20"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type PasswordResetConfirmRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
