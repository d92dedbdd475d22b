package validation

import (
	"github.com/go-playground/validator/v10"

	"github.com/jonathan/jobdesk/internal/wizard"
)

// ApplicationSteps is the fixed step sequence of the application wizard.
var ApplicationSteps = []string{
	"Personal Info",
	"Education & Experience",
	"Cover Letter & CV",
	"Review & Submit",
}

// Application draft field names.
const (
	FieldFirstName       = "first_name"
	FieldLastName        = "last_name"
	FieldEmail           = "email"
	FieldPhoneNumber     = "phone_number"
	FieldYearsExperience = "years_experience"
	FieldLinkedinURL     = "linkedin_url"
	FieldCoverLetter     = "cover_letter"
	FieldCVID            = "cv_id"
)

// ValidateApplicationStep validates one step of the application wizard.
// The Review & Submit step has no rules of its own; submission re-runs only
// the final validating step.
func ValidateApplicationStep(step int, draft wizard.Draft) FieldErrorMap {
	errs := FieldErrorMap{}

	switch step {
	case 0: // Personal Info
		if stringField(draft, FieldFirstName) == "" {
			errs[FieldFirstName] = "Required"
		}
		if stringField(draft, FieldLastName) == "" {
			errs[FieldLastName] = "Required"
		}
		email := stringField(draft, FieldEmail)
		if email == "" {
			errs[FieldEmail] = "Required"
		} else if validator.New().Var(email, "email") != nil {
			errs[FieldEmail] = "Must be a valid email address."
		}

	case 1: // Education & Experience
		if stringField(draft, FieldEducationLevel) == "" {
			errs[FieldEducationLevel] = "Required"
		}
		years, present, err := intField(draft, FieldYearsExperience)
		if err != nil || (present && years < 0) {
			errs[FieldYearsExperience] = "Must be an integer >= 0."
		}

	case 2: // Cover Letter & CV
		if _, present, err := intField(draft, FieldCVID); !present || err != nil {
			errs[FieldCVID] = "Attach a CV before continuing."
		}
	}

	return errs
}
