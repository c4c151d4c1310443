// Package validation checks request payload shapes against JSON schemas
// before domain validation runs.
package validation

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// SubmitPayloadSchema describes the wire shape of POST /api/scoping/submit.
// Domain rules (at least one YES, known role names, count semantics) are
// enforced by the engine after this structural pass.
const SubmitPayloadSchema = `{
	"type": "object",
	"required": ["userEmail", "scopingData", "selectedRoles"],
	"properties": {
		"userEmail":   {"type": "string", "minLength": 3, "pattern": "^[^@\\s]+@[^@\\s]+$"},
		"userName":    {"type": "string"},
		"clientName":  {"type": "string"},
		"projectName": {"type": "string"},
		"comments":    {"type": "string"},
		"submittedAt": {"type": "string"},
		"selectedRoles": {
			"type": "array",
			"minItems": 1,
			"items": {"type": "string", "minLength": 1}
		},
		"scopingData": {
			"type": "object",
			"minProperties": 1,
			"additionalProperties": {
				"type": "object",
				"properties": {
					"value": {"type": ["string", "null"], "enum": ["YES", "NO", null]},
					"count": {"type": ["integer", "null"], "minimum": 0}
				}
			}
		}
	}
}`

// ValidateJSON validates raw JSON bytes against a schema string. The returned
// error message concatenates every violation so callers can surface it
// verbatim.
func ValidateJSON(schema string, document []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(schema)
	documentLoader := gojsonschema.NewBytesLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return fmt.Errorf("payload validation failed: %s", strings.Join(errs, "; "))
	}

	return nil
}
