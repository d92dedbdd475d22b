package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/jobdesk/internal/wizard"
)

var noon = time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

func TestValidateJobStep_TitleRules(t *testing.T) {
	errs := ValidateJobStep(0, wizard.Draft{})
	assert.Equal(t, "Required", errs[FieldTitle])

	errs = ValidateJobStep(0, wizard.Draft{FieldTitle: "   "})
	assert.Equal(t, "Required", errs[FieldTitle])

	errs = ValidateJobStep(0, wizard.Draft{FieldTitle: "ab"})
	assert.Equal(t, "Must be between 3 and 120 characters.", errs[FieldTitle])

	long := make([]byte, 121)
	for i := range long {
		long[i] = 'a'
	}
	errs = ValidateJobStep(0, wizard.Draft{FieldTitle: string(long)})
	assert.Equal(t, "Must be between 3 and 120 characters.", errs[FieldTitle])

	errs = ValidateJobStep(0, wizard.Draft{FieldTitle: "Backend Engineer"})
	assert.True(t, errs.Empty())
}

func TestValidateJobStep_TitleLengthCountsRunes(t *testing.T) {
	// "éé" is two characters even though it is four bytes
	errs := ValidateJobStep(0, wizard.Draft{FieldTitle: "éé"})
	assert.Equal(t, "Must be between 3 and 120 characters.", errs[FieldTitle])

	errs = ValidateJobStep(0, wizard.Draft{FieldTitle: strings.Repeat("é", 120)})
	assert.True(t, errs.Empty())

	errs = ValidateJobStep(0, wizard.Draft{FieldTitle: strings.Repeat("é", 121)})
	assert.Equal(t, "Must be between 3 and 120 characters.", errs[FieldTitle])
}

func TestValidateJobStep_CityCountryPairing(t *testing.T) {
	errs := ValidateJobStep(1, wizard.Draft{
		FieldLocationCity:   "Tunis",
		FieldEmploymentType: "full_time",
	})
	assert.Equal(t, "Required if city is provided.", errs[FieldLocationCountry])

	errs = ValidateJobStep(1, wizard.Draft{
		FieldLocationCountry: "Tunisia",
		FieldEmploymentType:  "full_time",
	})
	assert.Equal(t, "Required if country is provided.", errs[FieldLocationCity])

	// both empty is fine, the pairing rule only fires on one-sided input
	errs = ValidateJobStep(1, wizard.Draft{FieldEmploymentType: "full_time"})
	assert.True(t, errs.Empty())

	errs = ValidateJobStep(1, wizard.Draft{})
	assert.Equal(t, "Required", errs[FieldEmploymentType])
}

func TestValidateJobStep_SkillsCap(t *testing.T) {
	skills := make([]string, 21)
	for i := range skills {
		skills[i] = "skill"
	}
	errs := ValidateJobStep(2, wizard.Draft{FieldSkills: skills})
	assert.Equal(t, "Maximum 20 skills.", errs[FieldSkills])

	errs = ValidateJobStep(2, wizard.Draft{FieldSkills: skills[:20]})
	assert.True(t, errs.Empty())
}

func TestValidateJobStep_OfferDescriptionRequired(t *testing.T) {
	errs := ValidateJobStep(3, wizard.Draft{})
	assert.Equal(t, "Required", errs[FieldOfferDescription])

	errs = ValidateJobStep(3, wizard.Draft{FieldOfferDescription: "<p>We hire.</p>"})
	assert.True(t, errs.Empty())
}

func TestValidateJobStep_EmptySalaryRangeIsValid(t *testing.T) {
	// leaving the whole compensation step blank must never produce an error
	errs := ValidateJobStepAt(4, wizard.Draft{}, noon)
	assert.True(t, errs.Empty())

	errs = ValidateJobStepAt(4, wizard.Draft{
		FieldSalaryMin: "",
		FieldSalaryMax: "",
	}, noon)
	assert.True(t, errs.Empty())
}

func TestValidateJobStep_SalaryBounds(t *testing.T) {
	errs := ValidateJobStepAt(4, wizard.Draft{FieldSalaryMin: -1}, noon)
	assert.Equal(t, "Must be an integer >= 0.", errs[FieldSalaryMin])

	errs = ValidateJobStepAt(4, wizard.Draft{FieldSalaryMax: "abc"}, noon)
	assert.Equal(t, "Must be an integer >= 0.", errs[FieldSalaryMax])

	errs = ValidateJobStepAt(4, wizard.Draft{FieldSalaryMin: 1500.5}, noon)
	assert.Equal(t, "Must be an integer >= 0.", errs[FieldSalaryMin])

	errs = ValidateJobStepAt(4, wizard.Draft{
		FieldSalaryMin: 5000,
		FieldSalaryMax: 3000,
	}, noon)
	assert.Equal(t, "Minimum salary must be less than or equal to maximum.", errs["salary_range"])

	errs = ValidateJobStepAt(4, wizard.Draft{
		FieldSalaryMin: 3000,
		FieldSalaryMax: 3000,
	}, noon)
	assert.True(t, errs.Empty())
}

func TestValidateJobStep_DeadlineIsDateOnlyInclusive(t *testing.T) {
	// same calendar day passes even though noon is past midnight
	errs := ValidateJobStepAt(4, wizard.Draft{FieldDeadline: "2026-08-29"}, noon)
	assert.True(t, errs.Empty())

	errs = ValidateJobStepAt(4, wizard.Draft{FieldDeadline: "2026-08-28"}, noon)
	assert.Equal(t, "Deadline must be today or later.", errs[FieldDeadline])

	errs = ValidateJobStepAt(4, wizard.Draft{FieldDeadline: "2026-09-01"}, noon)
	assert.True(t, errs.Empty())

	errs = ValidateJobStepAt(4, wizard.Draft{FieldDeadline: "29/08/2026"}, noon)
	assert.Equal(t, "Must be a date in YYYY-MM-DD form.", errs[FieldDeadline])
}

func TestValidateJobStep_ConfidentialExcludesRange(t *testing.T) {
	errs := ValidateJobStepAt(4, wizard.Draft{
		FieldSalaryConfidential: true,
		FieldSalaryMin:          1000,
	}, noon)
	assert.Equal(t, "If confidential, salary range should be empty.", errs["salary_confidential"])

	errs = ValidateJobStepAt(4, wizard.Draft{FieldSalaryConfidential: true}, noon)
	assert.True(t, errs.Empty())
}

func TestValidateJobStep_PreviewHasNoRules(t *testing.T) {
	errs := ValidateJobStep(5, wizard.Draft{})
	assert.True(t, errs.Empty())
}

func TestValidateJobStep_OnlyNamedStepRuns(t *testing.T) {
	// a draft violating step 0 still passes step 1 validation
	errs := ValidateJobStep(1, wizard.Draft{
		FieldTitle:          "x",
		FieldEmploymentType: "full_time",
	})
	assert.True(t, errs.Empty())
}
