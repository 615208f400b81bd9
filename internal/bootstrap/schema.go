package bootstrap

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// feedSchema describes the shape of the bootstrap feed: an array of job
// records. Fields the UI can live without are optional; identity and the
// card essentials are required.
const feedSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "company", "position", "role", "level", "contract", "location", "skills"],
    "properties": {
      "id":          {"type": "integer", "minimum": 1},
      "company":     {"type": "string"},
      "logo":        {"type": "string"},
      "new":         {"type": "boolean"},
      "featured":    {"type": "boolean"},
      "position":    {"type": "string"},
      "role":        {"type": "string"},
      "level":       {"type": "string"},
      "postedAt":    {"type": "string"},
      "contract":    {"type": "string"},
      "location":    {"type": "string"},
      "skills":      {"type": "array", "items": {"type": "string"}},
      "description": {"type": "string"}
    }
  }
}`

// validateFeed checks the raw feed bytes against the schema before they
// are decoded, so a malformed feed degrades to the error state instead
// of a half-loaded collection.
func validateFeed(data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(feedSchema)
	docLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return fmt.Errorf("bootstrap: validate feed: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var sb strings.Builder
	for i, desc := range result.Errors() {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(desc.String())
	}
	return fmt.Errorf("bootstrap: feed schema violation: %s", sb.String())
}
