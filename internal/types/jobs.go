// Package types provides type definitions for the structured data exchanged
// with the job-board backend.
package types

import "strings"

// JobStatus is the lifecycle state of a job posting.
type JobStatus string

const (
	JobPublished JobStatus = "published"
	JobDraft     JobStatus = "draft"
	JobArchived  JobStatus = "archived"
)

// JobStatuses lists every job partition in display order.
var JobStatuses = []JobStatus{JobPublished, JobDraft, JobArchived}

// Valid reports whether the status is one of the known job states.
func (s JobStatus) Valid() bool {
	switch s {
	case JobPublished, JobDraft, JobArchived:
		return true
	}
	return false
}

// Job represents a job posting as returned by the backend.
type Job struct {
	ID                   int       `json:"id"`
	Title                string    `json:"title"`
	CompanyName          string    `json:"company_name,omitempty"`
	Status               JobStatus `json:"status"`
	EmploymentType       string    `json:"employment_type,omitempty"`
	WorkMode             string    `json:"work_mode,omitempty"`
	LocationCity         string    `json:"location_city,omitempty"`
	LocationCountry      string    `json:"location_country,omitempty"`
	EducationLevel       string    `json:"education_level,omitempty"`
	ExperienceMin        string    `json:"experience_min,omitempty"`
	Skills               []string  `json:"skills,omitempty"`
	Missions             []string  `json:"missions,omitempty"`
	OfferDescription     string    `json:"offer_description,omitempty"`
	ProfileRequirements  string    `json:"profile_requirements,omitempty"`
	CompanyOverview      string    `json:"company_overview,omitempty"`
	SalaryMin            *int      `json:"salary_min,omitempty"`
	SalaryMax            *int      `json:"salary_max,omitempty"`
	SalaryCurrency       string    `json:"salary_currency,omitempty"`
	SalaryIsConfidential bool      `json:"salary_is_confidential,omitempty"`
	Deadline             string    `json:"deadline,omitempty"`
	OwnerUserID          int       `json:"owner_user_id,omitempty"`
	HasApplied           bool      `json:"has_applied,omitempty"`
	CreatedAt            string    `json:"created_at,omitempty"`
	UpdatedAt            string    `json:"updated_at,omitempty"`
	PostedAt             string    `json:"posted_at,omitempty"`
}

// SearchText returns the lowercased text a client-side search matches
// against: title, company name, and skills joined as one string.
func (j Job) SearchText() string {
	parts := make([]string, 0, 3)
	if j.Title != "" {
		parts = append(parts, j.Title)
	}
	if j.CompanyName != "" {
		parts = append(parts, j.CompanyName)
	}
	if len(j.Skills) > 0 {
		parts = append(parts, strings.Join(j.Skills, " "))
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// Location renders "City, Country" using whichever parts are present.
func (j Job) Location() string {
	if j.LocationCity != "" && j.LocationCountry != "" {
		return j.LocationCity + ", " + j.LocationCountry
	}
	if j.LocationCity != "" {
		return j.LocationCity
	}
	return j.LocationCountry
}
