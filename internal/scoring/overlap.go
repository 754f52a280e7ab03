package scoring

import "strings"

// NormalizeSkill lowercases and trims a skill string for comparison.
func NormalizeSkill(skill string) string {
	return strings.ToLower(strings.TrimSpace(skill))
}

// skillsMatch implements the fuzzy skill-match rule: after normalization, a
// user skill satisfies a required skill when the strings are equal or one
// contains the other. The bidirectional containment tolerates phrasing
// variance ("aws" vs "aws lambda") at the cost of known false positives
// ("java" matches "javascript"); the behavior is kept for compatibility.
func skillsMatch(userSkill, requiredSkill string) bool {
	return userSkill == requiredSkill ||
		strings.Contains(userSkill, requiredSkill) ||
		strings.Contains(requiredSkill, userSkill)
}

// CompareSkills partitions requiredSkills into those matched by any user
// skill and those missing. Both lists hold normalized skill names; together
// they cover every normalized requirement exactly once.
func CompareSkills(userSkills, requiredSkills []string) (matched, missing []string) {
	userNorm := make([]string, 0, len(userSkills))
	for _, s := range userSkills {
		if n := NormalizeSkill(s); n != "" {
			userNorm = append(userNorm, n)
		}
	}

	matched = make([]string, 0, len(requiredSkills))
	missing = make([]string, 0)
	seen := make(map[string]bool)

	for _, req := range requiredSkills {
		reqNorm := NormalizeSkill(req)
		if reqNorm == "" || seen[reqNorm] {
			continue
		}
		seen[reqNorm] = true

		found := false
		for _, user := range userNorm {
			if skillsMatch(user, reqNorm) {
				found = true
				break
			}
		}
		if found {
			matched = append(matched, reqNorm)
		} else {
			missing = append(missing, reqNorm)
		}
	}

	return matched, missing
}

// SkillOverlapRatio returns the fraction of requiredSkills present in
// userSkills under the fuzzy match rule. No requirements means no overlap
// signal, so an empty required list yields 0.0 rather than dividing by zero.
func SkillOverlapRatio(userSkills, requiredSkills []string) float64 {
	matched, missing := CompareSkills(userSkills, requiredSkills)
	total := len(matched) + len(missing)
	if total == 0 {
		return 0.0
	}
	return float64(len(matched)) / float64(total)
}
