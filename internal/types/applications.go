package types

import "strings"

// ApplicationStatus is the review state of a candidate application.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationAccepted ApplicationStatus = "accepted"
	ApplicationRejected ApplicationStatus = "rejected"
)

// Valid reports whether the status is one of the known application states.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationPending, ApplicationAccepted, ApplicationRejected:
		return true
	}
	return false
}

// ApplicationSort selects the server-side ordering of an application listing.
type ApplicationSort string

const (
	SortScoreDesc ApplicationSort = "score_desc"
	SortScoreAsc  ApplicationSort = "score_asc"
)

// Application represents one candidate application row.
type Application struct {
	ID              int               `json:"id"`
	JobID           int               `json:"job_id"`
	JobTitle        string            `json:"job_title,omitempty"`
	Status          ApplicationStatus `json:"status"`
	Score           *int              `json:"score,omitempty"`
	FirstName       string            `json:"first_name,omitempty"`
	LastName        string            `json:"last_name,omitempty"`
	Email           string            `json:"email,omitempty"`
	PhoneNumber     string            `json:"phone_number,omitempty"`
	EducationLevel  string            `json:"education_level,omitempty"`
	YearsExperience int               `json:"years_experience,omitempty"`
	LinkedinURL     string            `json:"linkedin_url,omitempty"`
	CoverLetter     string            `json:"cover_letter,omitempty"`
	CVID            *int              `json:"cv_id,omitempty"`
	AppliedAt       string            `json:"applied_at,omitempty"`
}

// CandidateName returns the applicant's display name.
func (a Application) CandidateName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

// SearchText returns the lowercased text a client-side search matches
// against: job title and candidate name.
func (a Application) SearchText() string {
	parts := make([]string, 0, 2)
	if a.JobTitle != "" {
		parts = append(parts, a.JobTitle)
	}
	if name := a.CandidateName(); name != "" {
		parts = append(parts, name)
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// ApplicationRequest is the payload submitted at the end of the application
// wizard.
type ApplicationRequest struct {
	JobID           int    `json:"job_id"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email"`
	PhoneNumber     string `json:"phone_number,omitempty"`
	EducationLevel  string `json:"education_level"`
	YearsExperience int    `json:"years_experience"`
	LinkedinURL     string `json:"linkedin_url,omitempty"`
	CoverLetter     string `json:"cover_letter,omitempty"`
	CVID            *int   `json:"cv_id,omitempty"`
}
