package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const miniSchema = `{
	"type": "object",
	"required": ["name"],
	"properties": {
		"name": {"type": "string", "minLength": 1},
		"count": {"type": "integer"}
	}
}`

func TestValidateJSONString_Valid(t *testing.T) {
	err := ValidateJSONString(miniSchema, `{"name": "parser", "count": 3}`)
	assert.NoError(t, err)
}

func TestValidateJSONString_MissingRequired(t *testing.T) {
	err := ValidateJSONString(miniSchema, `{"count": 3}`)
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	require.NotEmpty(t, validationErr.Errors)
	assert.Contains(t, err.Error(), "name")
}

func TestValidateJSONString_WrongType(t *testing.T) {
	err := ValidateJSONString(miniSchema, `{"name": "parser", "count": "three"}`)
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
}

func TestValidateJSONString_BadSchema(t *testing.T) {
	err := ValidateJSONString(`{"type": 42}`, `{}`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestValidateProfileJSON_Valid(t *testing.T) {
	profile := `{
		"contact": {"full_name": "Jane Doe", "email": "jane@example.com"},
		"experience": [{"job_title": "Engineer", "employer": "Acme"}],
		"skills": [{"name": "Go"}]
	}`
	assert.NoError(t, ValidateProfileJSON(profile))
}

func TestValidateProfileJSON_MissingContact(t *testing.T) {
	err := ValidateProfileJSON(`{"summary": "no contact block"}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "contact")
}

func TestResolveSchemaPath_FindsProfileSchema(t *testing.T) {
	// Test runs from internal/schemas, two levels below the repo root.
	path := ResolveSchemaPath(ProfileSchemaPath)
	assert.NotEmpty(t, path)
}
