package responses

import (
	"encoding/json"
	"fmt"
	"math"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const documentSchemaURL = "schema://growthfit-responses.json"

// documentSchema is the JSON schema for a response document:
//
//	{"responses": [{"questionId": "psych_1", "value": 4}, ...]}
var documentSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"responses": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"questionId": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"value": map[string]any{
						"type":    "integer",
						"minimum": math.MinInt32,
						"maximum": math.MaxInt32,
					},
				},
				"required":             []any{"questionId", "value"},
				"additionalProperties": false,
			},
		},
	},
	"required": []any{"responses"},
}

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	// The compiler wants a parsed JSON value, so round-trip the Go literal.
	defBytes, err := json.Marshal(documentSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(documentSchemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(documentSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	return compiled, nil
})

// validateDocument checks raw against the response document schema.
// Returns *InvalidInputError on failure.
func validateDocument(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &InvalidInputError{Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("response schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return &InvalidInputError{Err: fmt.Errorf("schema validation failed: %w", err)}
	}
	return nil
}
