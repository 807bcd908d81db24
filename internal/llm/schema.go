package llm

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildProfileJSONSchema returns the canonical profile schema as a JSON-Schema
// (draft 2020-12 subset) map. It encodes the no-null invariant: every field is
// required and nothing is nullable — a normalized profile must always pass.
func BuildProfileJSONSchema() map[string]any {
	str := func() map[string]any { return map[string]any{"type": "string"} }
	date := map[string]any{
		"type":    "string",
		"pattern": `^(\d{4}-\d{2}-\d{2}|Present|)$`,
	}
	strArray := func() map[string]any {
		return map[string]any{"type": "array", "items": str()}
	}

	personalInfo := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name": str(), "email": str(), "phone": str(),
			"location": str(), "linkedin": str(), "github": str(),
		},
		"required":             []string{"name", "email", "phone", "location", "linkedin", "github"},
		"additionalProperties": false,
	}
	education := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"institution": str(), "degree": str(),
			"startDate": date, "endDate": date,
		},
		"required":             []string{"institution", "degree", "startDate", "endDate"},
		"additionalProperties": false,
	}
	experience := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"company": str(), "position": str(),
			"startDate": date, "endDate": date,
			"highlights": strArray(),
		},
		"required":             []string{"company", "position", "startDate", "endDate", "highlights"},
		"additionalProperties": false,
	}
	language := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name": str(), "proficiency": str(),
		},
		"required":             []string{"name", "proficiency"},
		"additionalProperties": false,
	}

	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary":        str(),
			"personalInfo":   personalInfo,
			"education":      map[string]any{"type": "array", "items": education},
			"experience":     map[string]any{"type": "array", "items": experience},
			"skills":         strArray(),
			"languages":      map[string]any{"type": "array", "items": language},
			"certifications": strArray(),
		},
		"required": []string{
			"summary", "personalInfo", "education", "experience",
			"skills", "languages", "certifications",
		},
		"additionalProperties": false,
	}
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
