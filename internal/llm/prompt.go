package llm

import "strings"

// jsonSkeleton names every key the model must emit, with empty example
// values. It is embedded verbatim in every prompt so the response shape never
// depends on the model's memory of the schema.
const jsonSkeleton = `{
    "personalInfo": {
        "name": "",
        "email": "",
        "phone": "",
        "location": "",
        "linkedin": "",
        "github": ""
    },
    "summary": "",
    "education": [
        {
            "institution": "",
            "degree": "",
            "startDate": "YYYY-MM-DD",
            "endDate": "YYYY-MM-DD"
        }
    ],
    "experience": [
        {
            "company": "",
            "position": "",
            "startDate": "YYYY-MM-DD",
            "endDate": "YYYY-MM-DD",
            "highlights": []
        }
    ],
    "skills": [],
    "languages": [
        {
            "name": "",
            "proficiency": ""
        }
    ],
    "certifications": []
}`

// BuildExtractionPrompt renders the full extraction prompt for a resume text:
// instruction list, the literal JSON skeleton, the formatting rules, then the
// extracted text verbatim. Pure string rendering; no side effects.
func BuildExtractionPrompt(text string) string {
	var b strings.Builder

	b.WriteString("Extract the following information from this CV in a structured format:\n")
	b.WriteString("1. Personal Information (name, email, phone, location, LinkedIn, GitHub)\n")
	b.WriteString("2. Summary/Profile\n")
	b.WriteString("3. Education (institution, degree, dates)\n")
	b.WriteString("4. Work Experience (company, position, dates, highlights)\n")
	b.WriteString("5. Skills\n")
	b.WriteString("6. Languages\n")
	b.WriteString("7. Certifications\n\n")

	b.WriteString("Format the response as a JSON object with these exact keys:\n")
	b.WriteString(jsonSkeleton)
	b.WriteString("\n\nRules:\n")
	b.WriteString("1. Use exact values from the resume; do not invent data.\n")
	b.WriteString("2. Format dates as YYYY-MM-DD.\n")
	b.WriteString("3. For current positions or ongoing education, use 'Present' as the end date.\n")
	b.WriteString("4. If a field is not found, use an empty string or empty list. Never return null values.\n")
	b.WriteString("5. Include language proficiency levels.\n")
	b.WriteString("6. Return ONLY the JSON object, no additional text, no markdown fences.\n\n")

	b.WriteString("CV Content:\n")
	b.WriteString(text)
	return b.String()
}
