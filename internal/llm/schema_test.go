package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizedProfilePassesSchema(t *testing.T) {
	schema := BuildProfileJSONSchema()

	p, err := NormalizeProfile(decode(t, `{
		"personalInfo": {"name": "Ada"},
		"experience": [{"company": "Analytical Engines", "end_date": "present"}],
		"skills": ["Mathematics", null],
		"education": "garbage"
	}`))
	require.NoError(t, err)

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.NoError(t, ValidateJSONAgainstSchema(schema, data))
}

func TestEmptyProfilePassesSchema(t *testing.T) {
	p, err := NormalizeProfile(decode(t, `{}`))
	require.NoError(t, err)

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.NoError(t, ValidateJSONAgainstSchema(BuildProfileJSONSchema(), data))
}

func TestSchemaRejectsNulls(t *testing.T) {
	raw := `{
		"summary": null,
		"personalInfo": {"name": "", "email": "", "phone": "", "location": "", "linkedin": "", "github": ""},
		"education": [], "experience": [], "skills": [], "languages": [], "certifications": []
	}`
	assert.Error(t, ValidateJSONAgainstSchema(BuildProfileJSONSchema(), []byte(raw)))
}

func TestSchemaRejectsBadDate(t *testing.T) {
	raw := `{
		"summary": "",
		"personalInfo": {"name": "", "email": "", "phone": "", "location": "", "linkedin": "", "github": ""},
		"education": [{"institution": "", "degree": "", "startDate": "June 2021", "endDate": ""}],
		"experience": [], "skills": [], "languages": [], "certifications": []
	}`
	assert.Error(t, ValidateJSONAgainstSchema(BuildProfileJSONSchema(), []byte(raw)))
}
