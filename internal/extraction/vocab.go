// Package extraction provides rule-based skill extraction from free text:
// vocabulary and pattern matching, resume section segmentation, and a
// confidence heuristic. Everything here is deterministic and does no I/O.
package extraction

import (
	"regexp"
	"sort"
)

// technicalSkills is the flat technical-skill vocabulary matched by whole
// word. Entries are already normalized (lowercase).
var technicalSkills = map[string]bool{
	// Programming languages
	"python": true, "java": true, "javascript": true, "typescript": true,
	"c++": true, "c#": true, "go": true, "rust": true, "ruby": true,
	"php": true, "swift": true, "kotlin": true, "scala": true, "r": true,
	"matlab": true, "sql": true,

	// Web development
	"html": true, "css": true, "react": true, "angular": true, "vue": true,
	"node.js": true, "express": true, "django": true, "flask": true,
	"spring": true, "laravel": true, "rails": true, "next.js": true,
	"nuxt.js": true,

	// Data science and AI
	"machine learning": true, "deep learning": true, "nlp": true,
	"computer vision": true, "data science": true, "tensorflow": true,
	"pytorch": true, "keras": true, "scikit-learn": true, "pandas": true,
	"numpy": true, "matplotlib": true, "seaborn": true, "jupyter": true,
	"spark": true, "hadoop": true,

	// Cloud and DevOps
	"aws": true, "azure": true, "gcp": true, "docker": true,
	"kubernetes": true, "jenkins": true, "git": true, "ci/cd": true,
	"terraform": true, "ansible": true, "linux": true, "bash": true,
	"shell scripting": true,

	// Databases
	"mysql": true, "postgresql": true, "mongodb": true, "redis": true,
	"elasticsearch": true, "cassandra": true, "sqlite": true,
	"oracle": true, "mariadb": true,

	// Green / sustainability
	"renewable energy": true, "solar energy": true, "wind energy": true,
	"sustainability": true, "environmental science": true,
	"climate change": true, "carbon footprint": true, "esg": true,
	"green building": true, "waste management": true,
	"water conservation": true, "energy efficiency": true,
	"life cycle assessment": true, "carbon accounting": true,
	"sustainable development": true,

	// Workplace skills kept in the technical vocabulary for the tech-count
	// confidence bonus
	"leadership": true, "communication": true, "teamwork": true,
	"problem solving": true, "analytical": true, "project management": true,
	"agile": true, "scrum": true, "time management": true,
	"adaptability": true, "creativity": true, "critical thinking": true,
	"collaboration": true,
}

// greenKeywords is the green/sustainability-domain vocabulary.
var greenKeywords = map[string]bool{
	"solar": true, "wind": true, "hydro": true, "geothermal": true,
	"biomass": true, "tidal": true, "wave": true, "renewable": true,
	"sustainable": true, "green": true, "eco": true, "environmental": true,
	"climate": true, "carbon": true, "emissions": true, "recycling": true,
	"conservation": true, "efficiency": true, "clean energy": true,
	"low carbon": true, "net zero": true, "carbon neutral": true,
	"esg": true, "sustainability": true, "biodiversity": true,
	"pollution": true, "waste": true, "water": true,
}

// softSkillPhrases is the fixed soft-skill phrase list. Each phrase is its
// own canonical name and is matched by word boundary.
var softSkillPhrases = []string{
	"leadership",
	"communication",
	"teamwork",
	"team work",
	"problem solving",
	"analytical",
	"project management",
	"agile",
	"scrum",
	"time management",
	"adaptability",
	"creativity",
	"critical thinking",
	"collaboration",
}

// skillPatterns capture skills the flat vocabulary misses: versioned
// technology names and common certifications. The canonical group (index 1)
// names the contributed skill.
var skillPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(python|java|php|ruby|angular|vue|react)\s?[0-9]+(?:\.[0-9]+)*\b`),
	regexp.MustCompile(`\b(aws|azure|gcp)[ -]certified\b`),
	regexp.MustCompile(`\b(pmp|cissp|ccna|cisa)\b`),
}

// relatedSkills is the fixed semantic-expansion table: once a skill is
// found, its listed relatives are added to the combined list. Expansion is
// purely additive and never changes the confidence score.
var relatedSkills = map[string][]string{
	"python":           {"django", "flask", "pandas"},
	"javascript":       {"react", "node.js"},
	"machine learning": {"tensorflow", "pytorch", "scikit-learn"},
	"aws":              {"docker", "terraform"},
	"renewable energy": {"solar energy", "wind energy"},
	"kubernetes":       {"docker", "ci/cd"},
}

// wordPattern builds the word-boundary regex for a vocabulary entry.
func wordPattern(skill string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(skill) + `\b`)
}

var (
	technicalPatterns = buildVocabPatterns(technicalSkills)
	greenPatterns     = buildVocabPatterns(greenKeywords)
	softPatterns      = buildPhrasePatterns(softSkillPhrases)
)

// buildVocabPatterns precompiles a word-boundary matcher per vocabulary
// entry, sorted so extraction output order is deterministic.
func buildVocabPatterns(vocab map[string]bool) []vocabPattern {
	names := make([]string, 0, len(vocab))
	for name := range vocab {
		names = append(names, name)
	}
	sort.Strings(names)

	patterns := make([]vocabPattern, len(names))
	for i, name := range names {
		patterns[i] = vocabPattern{name: name, re: wordPattern(name)}
	}
	return patterns
}

func buildPhrasePatterns(phrases []string) []vocabPattern {
	patterns := make([]vocabPattern, len(phrases))
	for i, phrase := range phrases {
		patterns[i] = vocabPattern{name: phrase, re: wordPattern(phrase)}
	}
	return patterns
}

type vocabPattern struct {
	name string
	re   *regexp.Regexp
}
