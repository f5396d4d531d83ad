// internal/matching/skills.go
package matching

import "strings"

// NormalizeSkills flattens raw skill tags into a lowercase, trimmed,
// deduplicated set. Each element may itself be a comma, semicolon or
// whitespace delimited string; legacy records carry both shapes.
// Normalize once per record per ranking pass, never per pair.
func NormalizeSkills(raw []string) []string {
	if len(raw) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(raw))
	var out []string
	for _, chunk := range raw {
		for _, tag := range splitTags(chunk) {
			if tag == "" || seen[tag] {
				continue
			}
			seen[tag] = true
			out = append(out, tag)
		}
	}
	return out
}

func splitTags(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		switch r {
		case ',', ';', ' ', '\t', '\n', '\r':
			return true
		}
		return false
	})
}

// CountSkillMatches counts candidate skills present in the job's declared
// tag set, or found literally inside the job description when the job
// declares no tags. Inputs must already be normalized.
//
// ok is false only when the job offers nothing to match against (no tags
// and no usable description); the scorer treats that case as partial
// credit rather than a penalty, since an absent requirement says nothing
// about fit.
func CountSkillMatches(candidateSkills, jobSkills []string, jobDescription string) (matched int, ok bool) {
	desc := strings.ToLower(strings.TrimSpace(jobDescription))
	if len(jobSkills) == 0 && desc == "" {
		return 0, false
	}

	if len(jobSkills) > 0 {
		tags := make(map[string]bool, len(jobSkills))
		for _, t := range jobSkills {
			tags[t] = true
		}
		for _, s := range candidateSkills {
			if tags[s] {
				matched++
			}
		}
		return matched, true
	}

	for _, s := range candidateSkills {
		if strings.Contains(desc, s) {
			matched++
		}
	}
	return matched, true
}
