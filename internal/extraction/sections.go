package extraction

import (
	"regexp"
	"sort"
	"strings"
)

// sectionNames lists every section the parser knows about. A section whose
// header never appears maps to the empty string.
var sectionNames = []string{"experience", "education", "skills", "summary", "projects"}

// sectionHeaderPatterns holds the ordered header alternatives per section.
// The first alternative that matches anywhere in the text locates the
// section.
var sectionHeaderPatterns = map[string][]*regexp.Regexp{
	"experience": {
		regexp.MustCompile(`(?i)(work experience|experience|employment history|professional experience)`),
		regexp.MustCompile(`(?i)(work history|career history)`),
	},
	"education": {
		regexp.MustCompile(`(?i)(education|educational background|academic background)`),
		regexp.MustCompile(`(?i)(qualifications|degrees)`),
	},
	"skills": {
		regexp.MustCompile(`(?i)(skills|technical skills|core skills|key skills)`),
		regexp.MustCompile(`(?i)(competencies|technologies|tools)`),
	},
	"summary": {
		regexp.MustCompile(`(?i)(summary|profile|objective|about me)`),
		regexp.MustCompile(`(?i)(professional summary|career summary)`),
	},
	"projects": {
		regexp.MustCompile(`(?i)(projects|portfolio|work samples)`),
		regexp.MustCompile(`(?i)(key projects|major projects)`),
	},
}

type sectionMatch struct {
	name       string
	start, end int // header match bounds in the lowercased text
}

// ParseSections splits resume text into named sections. Headers are located
// independently and boundaries derive from the sorted match positions, so
// sections appearing in any order are handled correctly. Each section's
// content runs from the end of its header to the start of the next located
// header (or end of text), with the header itself stripped.
func ParseSections(text string) map[string]string {
	sections := make(map[string]string, len(sectionNames))
	for _, name := range sectionNames {
		sections[name] = ""
	}

	lower := strings.ToLower(text)

	matches := make([]sectionMatch, 0, len(sectionNames))
	for _, name := range sectionNames {
		for _, re := range sectionHeaderPatterns[name] {
			if loc := re.FindStringIndex(lower); loc != nil {
				matches = append(matches, sectionMatch{name: name, start: loc[0], end: loc[1]})
				break
			}
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].start < matches[j].start
	})

	for i, m := range matches {
		end := len(lower)
		if i < len(matches)-1 {
			end = matches[i+1].start
		}
		sections[m.name] = strings.TrimSpace(lower[m.end:end])
	}

	return sections
}
