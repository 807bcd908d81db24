package llm

import (
	"encoding/json"
	"strings"

	"github.com/joseph-ayodele/cv-profiler/internal/common"
)

// RecoverJSON locates and parses the JSON value embedded in raw model output.
// Models wrap their answer in prose or markdown fences despite being told not
// to; this strips all of that. The returned value is untrusted — it carries
// whatever shape the model produced, and the normalizer must treat it as such.
//
// A fenced ```json block takes precedence over a brace scan of the whole
// response. Failure carries the raw response for diagnostics.
func RecoverJSON(raw string) (any, error) {
	search := raw
	if inner, ok := fencedJSONBlock(raw); ok {
		search = inner
	}

	candidate, ok := balancedObject(search)
	if !ok {
		err := common.Ef(common.KindResponseRecovery, "no JSON object found in model output")
		err.Raw = raw
		return nil, err
	}

	dec := json.NewDecoder(strings.NewReader(candidate))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		rerr := common.E(common.KindResponseRecovery, "parse recovered JSON", err)
		rerr.Raw = raw
		return nil, rerr
	}
	return v, nil
}

// fencedJSONBlock returns the interior of the first ```json fence, if any.
func fencedJSONBlock(s string) (string, bool) {
	lower := strings.ToLower(s)
	start := strings.Index(lower, "```json")
	if start < 0 {
		return "", false
	}
	rest := s[start+len("```json"):]
	end := strings.Index(rest, "```")
	if end < 0 {
		// Unterminated fence: take everything after the opening tag.
		return rest, true
	}
	return rest[:end], true
}

// balancedObject returns the substring from the first '{' to its matching
// close brace. The scan honors JSON string and escape state, so braces inside
// string values never truncate the candidate.
func balancedObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}
