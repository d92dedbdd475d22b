package types

import (
	"github.com/go-playground/validator/v10"
)

// AccountType distinguishes candidate, company, and admin accounts.
type AccountType string

const (
	AccountCandidate AccountType = "candidate"
	AccountCompany   AccountType = "company"
	AccountAdmin     AccountType = "admin"
)

// RegisterRequest represents the request to create a new account.
type RegisterRequest struct {
	Email       string      `json:"email" validate:"required,email"`
	Password    string      `json:"password" validate:"required,min=8"`
	FirstName   string      `json:"first_name" validate:"required"`
	LastName    string      `json:"last_name" validate:"required"`
	Phone       string      `json:"phone,omitempty"`
	DateOfBirth string      `json:"date_of_birth,omitempty" validate:"omitempty,datetime=2006-01-02"`
	AccountType AccountType `json:"account_type" validate:"required,oneof=candidate company"`
}

// LoginRequest represents the login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse represents the login response carrying the bearer token.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
}

// ChangePasswordRequest represents a password change request.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

// ChangeEmailRequest represents an email change request; the current
// password re-authenticates the caller.
type ChangeEmailRequest struct {
	Password string `json:"password" validate:"required"`
	NewEmail string `json:"new_email" validate:"required,email"`
}

// Validate validates the RegisterRequest using the validator.
func (r *RegisterRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the LoginRequest using the validator.
func (r *LoginRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ChangePasswordRequest using the validator.
func (r *ChangePasswordRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ChangeEmailRequest using the validator.
func (r *ChangeEmailRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
