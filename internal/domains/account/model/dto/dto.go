package dto

import (
	"strings"
	"time"

	"beautyhub/infras/jwt"
	"beautyhub/internal/domains/account/model"
	"beautyhub/shared/constant"
	gModel "beautyhub/shared/model"
	"beautyhub/shared/timezone"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Email    string `json:"email"     validate:"required,email"`
	Password string `json:"password"  validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required,min=2,max=100"`
	Phone    string `json:"phone"     validate:"omitempty,max=30"`
	Role     string `json:"role"      validate:"omitempty,oneof=customer owner"`
}

func (r *RegisterRequest) ToModel(hashedPassword string) model.Account {
	role := r.Role
	if role == constant.Empty {
		role = constant.RoleCustomer
	}

	now := timezone.Now()

	return model.Account{
		ID:       uuid.NewString(),
		Email:    strings.ToLower(strings.TrimSpace(r.Email)),
		Password: hashedPassword,
		Role:     role,
		FullName: strings.TrimSpace(r.FullName),
		Phone:    r.Phone,
		Active:   true,
		Metadata: gModel.NewMetadata(now, constant.ContextGuest),
	}
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8"`
}

type UpdateLastLoginRequest struct {
	LastLogin time.Time `db:"last_login"`
}

type UpdatePasswordRequest struct {
	Password string `db:"password"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (r *TokenResponse) FromTokenPair(pair *jwt.TokenPair) {
	r.AccessToken = pair.AccessToken
	r.RefreshToken = pair.RefreshToken
	r.TokenType = pair.TokenType
	r.ExpiresIn = pair.ExpiresIn
}

type AccountResponse struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	FullName  string     `json:"full_name"`
	Phone     string     `json:"phone,omitempty"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func (r *AccountResponse) FromModel(account model.Account) {
	r.ID = account.ID
	r.Email = account.Email
	r.Role = account.Role
	r.FullName = account.FullName
	r.Phone = account.Phone
	r.LastLogin = account.LastLogin
	r.CreatedAt = account.CreatedAt
}
