package validation

import (
	"fmt"
	"strconv"
	"strings"
)

// SignupForm carries the fields shared by the candidate and company signup
// flows before they are shaped into a register request.
type SignupForm struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Password  string
	Confirm   string

	// Date of birth entered as separate day/month/year parts.
	BirthDay   string
	BirthMonth string
	BirthYear  string

	// CVFilename is the candidate's attached CV; company signups leave it
	// empty and set CompanyName instead.
	CVFilename  string
	CompanyName string
}

// ValidateCandidateSignup checks the candidate signup form. The CV must be
// attached and be a PDF.
func ValidateCandidateSignup(f SignupForm) FieldErrorMap {
	errs := validateSignupCommon(f)
	if f.CVFilename == "" {
		errs["cv"] = "Attach your CV as a PDF."
	} else if !IsPDFFilename(f.CVFilename) {
		errs["cv"] = "CV must be a PDF file."
	}
	return errs
}

// ValidateCompanySignup checks the company signup form.
func ValidateCompanySignup(f SignupForm) FieldErrorMap {
	errs := validateSignupCommon(f)
	if strings.TrimSpace(f.CompanyName) == "" {
		errs["company_name"] = "Required"
	}
	return errs
}

func validateSignupCommon(f SignupForm) FieldErrorMap {
	errs := FieldErrorMap{}
	if strings.TrimSpace(f.FirstName) == "" {
		errs[FieldFirstName] = "Required"
	}
	if strings.TrimSpace(f.LastName) == "" {
		errs[FieldLastName] = "Required"
	}
	if strings.TrimSpace(f.Email) == "" {
		errs[FieldEmail] = "Required"
	}
	if f.Password == "" {
		errs["password"] = "Required"
	} else if len(f.Password) < 8 {
		errs["password"] = "Must be at least 8 characters."
	}
	if f.Password != f.Confirm {
		errs["confirm"] = "Passwords do not match."
	}
	return errs
}

// IsPDFFilename reports whether the filename looks like a PDF document.
func IsPDFFilename(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ".pdf")
}

// BirthDate assembles a YYYY-MM-DD date from day/month/year parts, padding
// single digits. It returns "" when any part is blank or not numeric,
// matching the optional date-of-birth semantics of registration.
func BirthDate(day, month, year string) string {
	d, errD := strconv.Atoi(strings.TrimSpace(day))
	m, errM := strconv.Atoi(strings.TrimSpace(month))
	y, errY := strconv.Atoi(strings.TrimSpace(year))
	if errD != nil || errM != nil || errY != nil {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", y, m, d)
}
