// Package entity holds the canonical profile schema. Every field is always
// populated: scalar text fields default to "" and list fields to empty
// slices, never nil/null. The normalizer enforces this; everything downstream
// relies on it.
package entity

import "time"

// PersonalInfo is the contact block of a profile. Empty string is the
// canonical "absent" value for every field.
type PersonalInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
}

// EducationEntry is one education record. Dates are YYYY-MM-DD or the literal
// "Present" for an ongoing program.
type EducationEntry struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

// ExperienceEntry is one work-experience record. Highlights keep the order
// the model emitted them in.
type ExperienceEntry struct {
	Company    string   `json:"company"`
	Position   string   `json:"position"`
	StartDate  string   `json:"startDate"`
	EndDate    string   `json:"endDate"`
	Highlights []string `json:"highlights"`
}

// LanguageEntry is a language plus a free-text proficiency level. Proficiency
// is not a closed enum; whatever the model emits is kept.
type LanguageEntry struct {
	Name        string `json:"name"`
	Proficiency string `json:"proficiency"`
}

// Profile is the canonical structured resume record for one user.
type Profile struct {
	Summary        string            `json:"summary"`
	PersonalInfo   PersonalInfo      `json:"personalInfo"`
	Education      []EducationEntry  `json:"education"`
	Experience     []ExperienceEntry `json:"experience"`
	Skills         []string          `json:"skills"`
	Languages      []LanguageEntry   `json:"languages"`
	Certifications []string          `json:"certifications"`
}

// NewProfile returns a Profile with every list field allocated, so a freshly
// built profile already satisfies the no-null invariant when marshalled.
func NewProfile() Profile {
	return Profile{
		Education:      []EducationEntry{},
		Experience:     []ExperienceEntry{},
		Skills:         []string{},
		Languages:      []LanguageEntry{},
		Certifications: []string{},
	}
}

// StoredProfile is a persisted Profile row: the canonical profile plus the
// server-assigned surrogate id, the owning user id and timestamps.
// CreatedAt is set once on first insert; UpdatedAt advances on every write
// and equals CreatedAt right after the first one.
type StoredProfile struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"userId"`
	Profile   Profile   `json:"profile"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
