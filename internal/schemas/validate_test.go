package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateJobPayload_AcceptsNormalizedPayload(t *testing.T) {
	payload := map[string]interface{}{
		"title":            "Backend Engineer",
		"status":           "published",
		"employment_type":  "full_time",
		"location_city":    "Tunis",
		"location_country": "Tunisia",
		"skills":           []string{"go", "sql"},
		"salary_min":       3000,
		"salary_max":       5000,
		"salary_currency":  "TND",
		"deadline":         "2026-12-31",
	}
	assert.NoError(t, ValidateJobPayload(payload))
}

func TestValidateJobPayload_RejectsMissingTitle(t *testing.T) {
	err := ValidateJobPayload(map[string]interface{}{"status": "published"})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.NotEmpty(t, ve.Errors)
}

func TestValidateJobPayload_RejectsUnknownStatus(t *testing.T) {
	err := ValidateJobPayload(map[string]interface{}{
		"title":  "Backend Engineer",
		"status": "pending",
	})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestValidateJobPayload_RejectsNegativeSalary(t *testing.T) {
	err := ValidateJobPayload(map[string]interface{}{
		"title":      "Backend Engineer",
		"status":     "published",
		"salary_min": -1,
	})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestValidateJobPayload_RejectsUnknownField(t *testing.T) {
	err := ValidateJobPayload(map[string]interface{}{
		"title":    "Backend Engineer",
		"status":   "published",
		"surprise": true,
	})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestValidateJSONString(t *testing.T) {
	schema := `{"type": "object", "required": ["name"], "properties": {"name": {"type": "string"}}}`

	assert.NoError(t, ValidateJSONString(schema, `{"name": "ok"}`))

	err := ValidateJSONString(schema, `{}`)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)

	err = ValidateJSONString(`{not json`, `{}`)
	var le *SchemaLoadError
	require.ErrorAs(t, err, &le)
}
