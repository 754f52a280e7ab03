package types

// ExtractedSkills is the result of rule-based skill extraction from free
// text. The three category lists may overlap (a skill can be both technical
// and green); All is their deduplicated union plus any pattern-derived or
// expanded skills. Confidence is a heuristic in [0,1], not a calibrated
// probability.
type ExtractedSkills struct {
	Technical  []string          `json:"technical_skills"`
	Soft       []string          `json:"soft_skills"`
	Green      []string          `json:"green_skills"`
	All        []string          `json:"all_skills"`
	Confidence float64           `json:"confidence_score"`
	Sections   map[string]string `json:"sections,omitempty"`
}
