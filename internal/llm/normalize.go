package llm

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/joseph-ayodele/cv-profiler/constants"
	"github.com/joseph-ayodele/cv-profiler/internal/common"
	"github.com/joseph-ayodele/cv-profiler/internal/entity"
)

// NormalizeProfile maps a recovered, untrusted JSON value onto the canonical
// profile schema. Missing keys and nulls become defaults, non-string scalars
// are stringified, and malformed array elements are dropped rather than
// aborting the array. It never fails on missing or null data — the whole
// point is to make an unreliable model response usable. The only failure is a
// top-level value that is not a JSON object at all.
func NormalizeProfile(v any) (entity.Profile, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return entity.Profile{}, common.Ef(common.KindNormalization, "recovered JSON is not an object")
	}

	p := entity.NewProfile()
	p.Summary = scalarString(lookup(m, "summary"))

	if pi, ok := asObject(lookup(m, "personalInfo", "personal_info")); ok {
		p.PersonalInfo = entity.PersonalInfo{
			Name:     scalarString(pi["name"]),
			Email:    scalarString(pi["email"]),
			Phone:    scalarString(pi["phone"]),
			Location: scalarString(pi["location"]),
			LinkedIn: scalarString(pi["linkedin"]),
			GitHub:   scalarString(pi["github"]),
		}
		// Some model outputs tuck the summary inside personalInfo.
		if p.Summary == "" {
			p.Summary = scalarString(pi["summary"])
		}
	}

	for _, el := range asArray(lookup(m, "education")) {
		obj, ok := asObject(el)
		if !ok {
			continue
		}
		p.Education = append(p.Education, entity.EducationEntry{
			Institution: scalarString(obj["institution"]),
			Degree:      scalarString(obj["degree"]),
			StartDate:   normalizeDate(scalarString(lookup(obj, "startDate", "start_date"))),
			EndDate:     normalizeDate(scalarString(lookup(obj, "endDate", "end_date"))),
		})
	}

	for _, el := range asArray(lookup(m, "experience", "work_experience")) {
		obj, ok := asObject(el)
		if !ok {
			continue
		}
		highlights := stringList(lookup(obj, "highlights", "description"))
		p.Experience = append(p.Experience, entity.ExperienceEntry{
			Company:    scalarString(obj["company"]),
			Position:   scalarString(obj["position"]),
			StartDate:  normalizeDate(scalarString(lookup(obj, "startDate", "start_date"))),
			EndDate:    normalizeDate(scalarString(lookup(obj, "endDate", "end_date"))),
			Highlights: highlights,
		})
	}

	for _, el := range asArray(lookup(m, "languages")) {
		obj, ok := asObject(el)
		if !ok {
			continue
		}
		p.Languages = append(p.Languages, entity.LanguageEntry{
			Name:        scalarString(obj["name"]),
			Proficiency: scalarString(obj["proficiency"]),
		})
	}

	p.Skills = stringList(lookup(m, "skills"))
	p.Certifications = stringList(lookup(m, "certifications"))

	return p, nil
}

// lookup returns the first present key's value. Key synonyms cover the
// snake_case variants some models emit despite the skeleton.
func lookup(m map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			return v
		}
	}
	return nil
}

func asObject(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

func asArray(v any) []any {
	a, _ := v.([]any)
	return a
}

// scalarString renders a scalar JSON value as a string. Null and non-scalar
// values become "", numbers and booleans are stringified rather than rejected.
func scalarString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// stringList renders an array value as a list of strings, dropping elements
// that are not scalars. Anything that is not an array becomes an empty list.
func stringList(v any) []string {
	out := []string{}
	for _, el := range asArray(v) {
		switch el.(type) {
		case map[string]any, []any, nil:
			continue
		}
		if s := scalarString(el); s != "" {
			out = append(out, s)
		}
	}
	return out
}

var isoDateRE = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
var yearMonthRE = regexp.MustCompile(`^\d{4}-\d{2}$`)
var yearRE = regexp.MustCompile(`^\d{4}$`)

// normalizeDate coerces a date field to the canonical contract: a YYYY-MM-DD
// string, the "Present" sentinel, or empty. Partial dates are padded to the
// first day; anything else is dropped so the stored profile never carries an
// unparseable date.
func normalizeDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	switch strings.ToLower(s) {
	case "present", "current", "ongoing", "now":
		return constants.PresentSentinel
	}
	switch {
	case isoDateRE.MatchString(s):
		return calendarDate(s)
	case yearMonthRE.MatchString(s):
		return calendarDate(s + "-01")
	case yearRE.MatchString(s):
		return calendarDate(s + "-01-01")
	}
	return ""
}

// calendarDate keeps s only if it is a real calendar date; the shape regexes
// above let values like "2021-13-01" through.
func calendarDate(s string) string {
	if _, err := time.Parse(constants.DateLayout, s); err != nil {
		return ""
	}
	return s
}
