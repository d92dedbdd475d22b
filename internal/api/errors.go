package api

import (
	"encoding/json"
	"fmt"
	"strings"
)

// genericMessage is shown when the server error body carries no usable
// detail.
const genericMessage = "Request failed."

// Error represents a non-auth API failure with a best-effort human-readable
// message extracted from the server error body.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

// extractDetail pulls the backend's "detail" field out of an error body.
// The backend sends {"detail": "..."} for most failures; anything else
// falls back to the generic message.
func extractDetail(body []byte) string {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && len(payload.Detail) > 0 {
		var s string
		if err := json.Unmarshal(payload.Detail, &s); err == nil && strings.TrimSpace(s) != "" {
			return s
		}
	}
	return genericMessage
}
