package validation

import (
	"time"
	"unicode/utf8"

	"github.com/jonathan/jobdesk/internal/wizard"
)

// JobSteps is the fixed step sequence of the job-creation wizard.
var JobSteps = []string{
	"Basics",
	"Contract & Location",
	"Qualifications",
	"Role Content",
	"Compensation & Timeline",
	"Preview",
}

// Job-creation draft field names.
const (
	FieldTitle              = "title"
	FieldCompanyName        = "company_name"
	FieldStatus             = "status"
	FieldEmploymentType     = "employment_type"
	FieldWorkMode           = "work_mode"
	FieldLocationCity       = "location_city"
	FieldLocationCountry    = "location_country"
	FieldEducationLevel     = "education_level"
	FieldExperienceMin      = "experience_min"
	FieldSkills             = "skills"
	FieldOfferDescription   = "offer_description"
	FieldMissions           = "missions"
	FieldProfileReqs        = "profile_requirements"
	FieldCompanyOverview    = "company_overview"
	FieldSalaryMin          = "salary_min"
	FieldSalaryMax          = "salary_max"
	FieldSalaryCurrency     = "salary_currency"
	FieldSalaryConfidential = "salary_is_confidential"
	FieldDeadline           = "deadline"
)

// maxSkills is the cap on the skills set for one posting.
const maxSkills = 20

// ValidateJobStep validates one step of the job-creation wizard against the
// draft. Only the named step's rules run; an empty result permits the step
// advance. The Preview step has no rules.
func ValidateJobStep(step int, draft wizard.Draft) FieldErrorMap {
	return ValidateJobStepAt(step, draft, time.Now())
}

// ValidateJobStepAt is ValidateJobStep with an injectable clock for the
// deadline rule.
func ValidateJobStepAt(step int, draft wizard.Draft, now time.Time) FieldErrorMap {
	errs := FieldErrorMap{}

	switch step {
	case 0: // Basics
		title := stringField(draft, FieldTitle)
		if title == "" {
			errs[FieldTitle] = "Required"
		} else if n := utf8.RuneCountInString(title); n < 3 || n > 120 {
			errs[FieldTitle] = "Must be between 3 and 120 characters."
		}

	case 1: // Contract & Location
		city := stringField(draft, FieldLocationCity)
		country := stringField(draft, FieldLocationCountry)
		if city != "" && country == "" {
			errs[FieldLocationCountry] = "Required if city is provided."
		}
		if country != "" && city == "" {
			errs[FieldLocationCity] = "Required if country is provided."
		}
		if stringField(draft, FieldEmploymentType) == "" {
			errs[FieldEmploymentType] = "Required"
		}

	case 2: // Qualifications
		if len(stringsField(draft, FieldSkills)) > maxSkills {
			errs[FieldSkills] = "Maximum 20 skills."
		}

	case 3: // Role Content
		if stringField(draft, FieldOfferDescription) == "" {
			errs[FieldOfferDescription] = "Required"
		}

	case 4: // Compensation & Timeline
		validateCompensation(draft, now, errs)
	}

	return errs
}

func validateCompensation(draft wizard.Draft, now time.Time, errs FieldErrorMap) {
	min, minPresent, minErr := intField(draft, FieldSalaryMin)
	if minErr != nil || (minPresent && min < 0) {
		errs[FieldSalaryMin] = "Must be an integer >= 0."
	}

	max, maxPresent, maxErr := intField(draft, FieldSalaryMax)
	if maxErr != nil || (maxPresent && max < 0) {
		errs[FieldSalaryMax] = "Must be an integer >= 0."
	}

	if minPresent && maxPresent && minErr == nil && maxErr == nil && min > max {
		errs["salary_range"] = "Minimum salary must be less than or equal to maximum."
	}

	// Date-only comparison: a deadline equal to today is accepted.
	if deadline := stringField(draft, FieldDeadline); deadline != "" {
		d, err := time.Parse("2006-01-02", deadline)
		if err != nil {
			errs[FieldDeadline] = "Must be a date in YYYY-MM-DD form."
		} else {
			today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
			if d.Before(today) {
				errs[FieldDeadline] = "Deadline must be today or later."
			}
		}
	}

	if boolField(draft, FieldSalaryConfidential) && (minPresent || maxPresent) {
		errs["salary_confidential"] = "If confidential, salary range should be empty."
	}
}
