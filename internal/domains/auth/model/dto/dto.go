package dto

import (
	"strings"

	"pgms/infras/jwt"
	"pgms/internal/domains/admin/model"
	adminDto "pgms/internal/domains/admin/model/dto"
)

type RegisterRequest struct {
	Name          string  `json:"name"           validate:"required,max=100"`
	Email         string  `json:"email"          validate:"required,email"`
	Phone         string  `json:"phone"          validate:"required,phone"`
	Password      string  `json:"password"       validate:"required,min=8,max=72"`
	HostelName    *string `json:"hostel_name"    validate:"omitempty,max=150"`
	HostelAddress *string `json:"hostel_address" validate:"omitempty,max=255"`
	HostelType    *string `json:"hostel_type"    validate:"omitempty,oneof=NORMAL CO_LIVING BOYS GIRLS OTHER"`
	LocationLink  *string `json:"location_link"  validate:"omitempty,url"`
}

func (r *RegisterRequest) ToModel(hashedPassword string) model.Admin {
	return model.Admin{
		Name:          strings.TrimSpace(r.Name),
		Email:         strings.ToLower(strings.TrimSpace(r.Email)),
		Phone:         r.Phone,
		Password:      hashedPassword,
		HostelName:    r.HostelName,
		HostelAddress: r.HostelAddress,
		HostelType:    r.HostelType,
		LocationLink:  r.LocationLink,
	}
}

type RegisterResponse struct {
	Admin adminDto.AdminResponse `json:"admin"`
	Setup adminDto.TableStatus   `json:"setup"`
}

// LoginRequest accepts either the account email or its phone number as the
// identifier.
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password"   validate:"required"`
}

// IsEmail reports whether the identifier should be matched against emails.
func (l *LoginRequest) IsEmail() bool {
	return strings.Contains(l.Identifier, "@")
}

type LoginResponse struct {
	AccessToken  string                 `json:"access_token"`
	RefreshToken string                 `json:"refresh_token"`
	ExpiresIn    int64                  `json:"expires_in"`
	Admin        adminDto.AdminResponse `json:"admin"`
	Setup        adminDto.TableStatus   `json:"setup"`
}

func (l *LoginResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	l.AccessToken = tokenPair.AccessToken
	l.RefreshToken = tokenPair.RefreshToken
	l.ExpiresIn = tokenPair.ExpiresIn
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (r *RefreshTokenResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	r.AccessToken = tokenPair.AccessToken
	r.RefreshToken = tokenPair.RefreshToken
	r.ExpiresIn = tokenPair.ExpiresIn
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8,max=72,nefield=CurrentPassword"`
}
