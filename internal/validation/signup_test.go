package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validCandidate() SignupForm {
	return SignupForm{
		FirstName:  "Amine",
		LastName:   "Ben Salah",
		Email:      "amine@example.com",
		Password:   "hunter2hunter2",
		Confirm:    "hunter2hunter2",
		CVFilename: "cv.pdf",
	}
}

func TestValidateCandidateSignup(t *testing.T) {
	assert.True(t, ValidateCandidateSignup(validCandidate()).Empty())

	f := validCandidate()
	f.Password = "short"
	f.Confirm = "short"
	errs := ValidateCandidateSignup(f)
	assert.Equal(t, "Must be at least 8 characters.", errs["password"])

	f = validCandidate()
	f.Confirm = "different1"
	errs = ValidateCandidateSignup(f)
	assert.Equal(t, "Passwords do not match.", errs["confirm"])

	f = validCandidate()
	f.CVFilename = ""
	errs = ValidateCandidateSignup(f)
	assert.Equal(t, "Attach your CV as a PDF.", errs["cv"])

	f = validCandidate()
	f.CVFilename = "resume.docx"
	errs = ValidateCandidateSignup(f)
	assert.Equal(t, "CV must be a PDF file.", errs["cv"])
}

func TestValidateCompanySignup(t *testing.T) {
	f := validCandidate()
	f.CVFilename = ""
	f.CompanyName = "Acme SARL"
	assert.True(t, ValidateCompanySignup(f).Empty())

	f.CompanyName = "  "
	errs := ValidateCompanySignup(f)
	assert.Equal(t, "Required", errs["company_name"])
}

func TestIsPDFFilename(t *testing.T) {
	assert.True(t, IsPDFFilename("cv.pdf"))
	assert.True(t, IsPDFFilename("CV.PDF"))
	assert.False(t, IsPDFFilename("cv.pdf.exe"))
	assert.False(t, IsPDFFilename("cv"))
}

func TestBirthDate(t *testing.T) {
	assert.Equal(t, "1995-03-07", BirthDate("7", "3", "1995"))
	assert.Equal(t, "1995-12-25", BirthDate("25", "12", "1995"))
	assert.Equal(t, "", BirthDate("", "3", "1995"))
	assert.Equal(t, "", BirthDate("7", "3", ""))
}
