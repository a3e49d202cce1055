package roadmap

import "strings"

// Skill domain buckets used to group a career's skills in template roadmaps.
// Skills matching none of the keyword sets are left out of the grouping.
var skillDomains = []struct {
	name     string
	keywords []string
}{
	{"mathematics", []string{"math", "calculus", "statistics", "algebra", "probability", "linear"}},
	{"programming", []string{"programming", "coding", "python", "java", "javascript", "sql", "software", "algorithm"}},
	{"soft_skills", []string{"communication", "leadership", "teamwork", "management", "presentation", "collaboration"}},
}

// ClassifySkillDomains buckets skills by keyword. A skill lands in the first
// domain whose keyword list it matches; unmatched skills are omitted.
func ClassifySkillDomains(skills []string) map[string][]string {
	out := make(map[string][]string)
	for _, skill := range skills {
		lower := strings.ToLower(skill)
		for _, domain := range skillDomains {
			if matchesAny(lower, domain.keywords) {
				out[domain.name] = append(out[domain.name], skill)
				break
			}
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func matchesAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
