// Package payload shapes a finished wizard draft into the wire form the
// backend expects, then checks it against the embedded payload schema.
package payload

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jonathan/jobdesk/internal/richtext"
	"github.com/jonathan/jobdesk/internal/schemas"
	"github.com/jonathan/jobdesk/internal/wizard"
)

// stringFields are the draft fields carried to the payload verbatim after
// trimming. Blank values are dropped rather than sent as empty strings.
var stringFields = []string{
	"title",
	"company_name",
	"employment_type",
	"work_mode",
	"location_city",
	"location_country",
	"education_level",
	"experience_min",
	"salary_currency",
	"deadline",
}

// richTextFields are the long-form fields authored through the rich-text
// editor. They go through the allow-list sanitizer before reaching the
// wire; nothing downstream strips markup again.
var richTextFields = []string{
	"offer_description",
	"profile_requirements",
	"company_overview",
}

// BuildJob normalizes a job-creation draft into the POST /jobs payload:
// strings trimmed, blanks dropped, skills deduplicated in order, salaries
// coerced to integers, and the status defaulted to published. The result
// is validated against the job payload schema before being returned.
func BuildJob(draft wizard.Draft) (map[string]interface{}, error) {
	out := map[string]interface{}{}

	for _, field := range stringFields {
		if v := stringValue(draft, field); v != "" {
			out[field] = v
		}
	}

	for _, field := range richTextFields {
		v := stringValue(draft, field)
		if v == "" {
			continue
		}
		clean, err := richtext.Sanitize(v)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field, err)
		}
		if clean = strings.TrimSpace(clean); clean != "" {
			out[field] = clean
		}
	}

	status := stringValue(draft, "status")
	if status == "" {
		status = "published"
	}
	out["status"] = status

	if skills := uniqueStrings(draft["skills"]); len(skills) > 0 {
		out["skills"] = skills
	}
	// Mission lines are user-authored too and get the same sanitizer pass.
	if missions := uniqueStrings(draft["missions"]); len(missions) > 0 {
		kept := make([]string, 0, len(missions))
		for _, m := range missions {
			clean, err := richtext.Sanitize(m)
			if err != nil {
				return nil, fmt.Errorf("field missions: %w", err)
			}
			if clean = strings.TrimSpace(clean); clean != "" {
				kept = append(kept, clean)
			}
		}
		if len(kept) > 0 {
			out["missions"] = kept
		}
	}

	for _, field := range []string{"salary_min", "salary_max"} {
		n, present, err := intValue(draft, field)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field, err)
		}
		if present {
			out[field] = n
		}
	}

	if confidential, _ := draft["salary_is_confidential"].(bool); confidential {
		out["salary_is_confidential"] = true
	}

	if err := schemas.ValidateJobPayload(out); err != nil {
		return nil, err
	}
	return out, nil
}

func stringValue(d wizard.Draft, key string) string {
	s, _ := d[key].(string)
	return strings.TrimSpace(s)
}

// uniqueStrings normalizes a draft list: trims entries, drops blanks, and
// keeps the first occurrence of each value.
func uniqueStrings(v interface{}) []string {
	var raw []string
	switch vv := v.(type) {
	case []string:
		raw = vv
	case []interface{}:
		for _, item := range vv {
			if s, ok := item.(string); ok {
				raw = append(raw, s)
			}
		}
	default:
		return nil
	}

	seen := make(map[string]bool, len(raw))
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

func intValue(d wizard.Draft, key string) (int, bool, error) {
	v, ok := d[key]
	if !ok || v == nil {
		return 0, false, nil
	}
	switch vv := v.(type) {
	case int:
		return vv, true, nil
	case int64:
		return int(vv), true, nil
	case float64:
		if vv != float64(int(vv)) {
			return 0, false, fmt.Errorf("%v is not an integer", vv)
		}
		return int(vv), true, nil
	case string:
		s := strings.TrimSpace(vv)
		if s == "" {
			return 0, false, nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, false, fmt.Errorf("%q is not an integer", s)
		}
		return n, true, nil
	default:
		return 0, false, fmt.Errorf("unsupported value %v", v)
	}
}
