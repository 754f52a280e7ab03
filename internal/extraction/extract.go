package extraction

import (
	"sort"
	"strings"

	"github.com/jonathan/skillmatch/internal/types"
)

// Options control optional extraction stages.
type Options struct {
	// ExpandRelated adds skills inferred from the related-skills table.
	ExpandRelated bool

	// ParseSections segments the text into resume sections and attaches
	// them to the result.
	ParseSections bool
}

// Extract extracts skills from resume or description text with related-skill
// expansion and section parsing enabled.
func Extract(text string) types.ExtractedSkills {
	return ExtractWithOptions(text, Options{ExpandRelated: true, ParseSections: true})
}

// ExtractWithOptions extracts technical, soft and green skills from free
// text. It is a pure function of the input and the static vocabulary
// tables: identical input always yields identical output.
func ExtractWithOptions(text string, opts Options) types.ExtractedSkills {
	if strings.TrimSpace(text) == "" {
		return types.ExtractedSkills{
			Technical: []string{},
			Soft:      []string{},
			Green:     []string{},
			All:       []string{},
		}
	}

	normalized := NormalizeText(text)

	technical := matchVocab(normalized, technicalPatterns)
	soft := matchVocab(normalized, softPatterns)
	green := matchVocab(normalized, greenPatterns)
	patterned := matchSkillPatterns(normalized)

	all := dedupe(technical, soft, green, patterned)

	// Confidence is computed before expansion: inferred skills carry no
	// extraction evidence.
	confidence := confidenceScore(all)

	if opts.ExpandRelated && len(all) > 0 {
		all = dedupe(all, expandRelated(all))
	}

	result := types.ExtractedSkills{
		Technical:  technical,
		Soft:       soft,
		Green:      green,
		All:        all,
		Confidence: confidence,
	}

	if opts.ParseSections {
		result.Sections = ParseSections(text)
	}

	return result
}

// matchVocab returns every vocabulary entry found as a whole word in text.
func matchVocab(text string, patterns []vocabPattern) []string {
	found := make([]string, 0)
	for _, p := range patterns {
		if p.re.MatchString(text) {
			found = append(found, p.name)
		}
	}
	return found
}

// matchSkillPatterns applies the qualifier patterns (versioned technologies,
// certifications) and returns the canonical skill names they capture.
func matchSkillPatterns(text string) []string {
	found := make([]string, 0)
	for _, re := range skillPatterns {
		for _, match := range re.FindAllStringSubmatch(text, -1) {
			name := match[0]
			if len(match) > 1 && match[1] != "" {
				name = match[1]
			}
			found = append(found, strings.TrimSpace(name))
		}
	}
	return found
}

// expandRelated returns the relatives of every known skill per the fixed
// relation table.
func expandRelated(skills []string) []string {
	expanded := make([]string, 0)
	for _, skill := range skills {
		expanded = append(expanded, relatedSkills[skill]...)
	}
	return expanded
}

// dedupe unions the given lists keeping each entry once, sorted for
// deterministic output.
func dedupe(lists ...[]string) []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, list := range lists {
		for _, s := range list {
			if s == "" || seen[s] {
				continue
			}
			seen[s] = true
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}

// confidenceScore is the extraction confidence heuristic:
// min(count/10, 1) plus 0.1 when any green-domain skill was found and 0.1
// when at least three technical-vocabulary skills were found, clamped to
// [0, 1]. It is a heuristic signal, not a calibrated probability.
func confidenceScore(skills []string) float64 {
	if len(skills) == 0 {
		return 0.0
	}

	score := float64(len(skills)) / 10.0
	if score > 1.0 {
		score = 1.0
	}

	if countIn(skills, greenKeywords) > 0 {
		score += 0.1
	}
	if countIn(skills, technicalSkills) >= 3 {
		score += 0.1
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}

func countIn(skills []string, vocab map[string]bool) int {
	n := 0
	for _, s := range skills {
		if vocab[s] {
			n++
		}
	}
	return n
}
