// Package schemas carries the JSON Schema documents describing the wire
// payloads this client produces.
package schemas

import _ "embed"

// JobPayload is the schema for the normalized job posting payload.
//
//go:embed job_payload.schema.json
var JobPayload string
