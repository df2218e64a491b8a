package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const personSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"name": {"type": "string"},
		"age": {"type": "integer", "minimum": 0}
	},
	"required": ["name"]
}`

func TestSchemaValidator_ValidateBytes(t *testing.T) {
	v := NewSchemaValidator()
	require.NoError(t, v.Register("person.schema.json", []byte(personSchema)))

	tests := []struct {
		name     string
		data     string
		errorMsg string
	}{
		{name: "valid data", data: `{"name": "John", "age": 30}`},
		{name: "optional field omitted", data: `{"name": "Jane"}`},
		{name: "missing required field", data: `{"age": 25}`, errorMsg: "required"},
		{name: "wrong type", data: `{"name": "John", "age": "thirty"}`, errorMsg: "age"},
		{name: "constraint violation", data: `{"name": "John", "age": -5}`, errorMsg: "age"},
		{name: "invalid JSON", data: `{"name": "John", "age": }`, errorMsg: "parse JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), "person.schema.json")
			if tt.errorMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSchemaValidator_ValidateFile(t *testing.T) {
	v := NewSchemaValidator()
	require.NoError(t, v.Register("person.schema.json", []byte(personSchema)))

	dataPath := filepath.Join(t.TempDir(), "person.json")
	require.NoError(t, os.WriteFile(dataPath, []byte(`{"name": "Ada"}`), 0o644))

	assert.NoError(t, v.ValidateFile(dataPath, "person.schema.json"))

	err := v.ValidateFile(filepath.Join(t.TempDir(), "missing.json"), "person.schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read data file")
}

func TestSchemaValidator_UnknownSchema(t *testing.T) {
	v := NewSchemaValidator()

	err := v.ValidateBytes([]byte(`{}`), "nope.schema.json")
	assert.ErrorIs(t, err, ErrSchemaNotRegistered)
}

func TestSchemaValidator_RegisterInvalidSchema(t *testing.T) {
	v := NewSchemaValidator()

	err := v.Register("broken.schema.json", []byte(`{"type": `))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse schema")
}
