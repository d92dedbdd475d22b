package types

import "strings"

// User represents the authenticated user's profile as returned by /users/me.
type User struct {
	ID                int         `json:"id"`
	Email             string      `json:"email"`
	IsAdmin           bool        `json:"is_admin,omitempty"`
	Username          string      `json:"username,omitempty"`
	FullName          string      `json:"full_name,omitempty"`
	FirstName         string      `json:"first_name,omitempty"`
	LastName          string      `json:"last_name,omitempty"`
	Phone             string      `json:"phone,omitempty"`
	DateOfBirth       string      `json:"date_of_birth,omitempty"`
	AccountType       AccountType `json:"account_type,omitempty"`
	LinkedinURL       string      `json:"linkedin_url,omitempty"`
	GithubURL         string      `json:"github_url,omitempty"`
	ProfilePictureURL string      `json:"profile_picture_url,omitempty"`
}

// DisplayName returns the best available identity label: the username,
// else the full name, else the local part of the email address.
func (u User) DisplayName() string {
	if u.Username != "" {
		return u.Username
	}
	if name := strings.TrimSpace(u.FullName); name != "" {
		return name
	}
	if at := strings.Index(u.Email, "@"); at > 0 {
		return u.Email[:at]
	}
	return u.Email
}

// UserPatch is a partial update of the user profile. Nil fields are left
// untouched by the backend.
type UserPatch struct {
	FullName    *string `json:"full_name,omitempty"`
	LinkedinURL *string `json:"linkedin_url,omitempty"`
	GithubURL   *string `json:"github_url,omitempty"`
}

// AvatarResponse is returned after an avatar upload.
type AvatarResponse struct {
	ProfilePictureURL string `json:"profile_picture_url"`
}
