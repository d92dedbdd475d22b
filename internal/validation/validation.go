// Package validation provides the per-step validators for the multi-step
// forms: job creation, candidate application, and signup. Validators are
// pure functions of (step, draft); each pass recomputes the whole error map
// for that step, it never merges with a previous pass.
package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jonathan/jobdesk/internal/wizard"
)

// FieldErrorMap maps a field name to a human-readable message. An empty map
// means the step may advance.
type FieldErrorMap map[string]string

// Empty reports whether the step passed validation.
func (m FieldErrorMap) Empty() bool { return len(m) == 0 }

// stringField reads a draft field as a trimmed string. Absent and
// non-string values read as "".
func stringField(d wizard.Draft, key string) string {
	v, ok := d[key]
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// boolField reads a draft field as a bool; absent reads as false.
func boolField(d wizard.Draft, key string) bool {
	v, ok := d[key]
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}

// stringsField reads a draft field as a string slice; absent reads as nil.
func stringsField(d wizard.Draft, key string) []string {
	v, ok := d[key]
	if !ok {
		return nil
	}
	switch vv := v.(type) {
	case []string:
		return vv
	case []interface{}:
		out := make([]string, 0, len(vv))
		for _, item := range vv {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// intField reads a draft field as an integer. The second return reports
// presence; the error is non-nil when the value is present but not an
// integer. Numeric strings and integral floats are accepted because draft
// values arrive from JSON decoding and terminal input alike.
func intField(d wizard.Draft, key string) (int, bool, error) {
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
			return 0, true, fmt.Errorf("%v is not an integer", vv)
		}
		return int(vv), true, nil
	case string:
		s := strings.TrimSpace(vv)
		if s == "" {
			return 0, false, nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, true, fmt.Errorf("%q is not an integer", s)
		}
		return n, true, nil
	default:
		return 0, true, fmt.Errorf("unsupported value %v", v)
	}
}
