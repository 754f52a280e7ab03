package types

import (
	"github.com/google/uuid"
)

// CandidateKind distinguishes the two entity kinds the engine ranks.
type CandidateKind string

// Candidate kinds
const (
	KindCareer CandidateKind = "career"
	KindJob    CandidateKind = "job"
)

// Candidate is an entity the engine can rank: a career path or a job posting.
// The CRUD layer owns its lifecycle; the engine treats it as an immutable
// record of identity, description text, required skills and a stored
// embedding. The embedding may arrive decoded (Embedding) or as the
// serialized JSON-array form persisted in a text column (EmbeddingJSON);
// when both are set the decoded form wins.
type Candidate struct {
	ID             uuid.UUID     `json:"id"`
	Kind           CandidateKind `json:"kind"`
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	Location       string        `json:"location,omitempty"`
	SalaryMin      int           `json:"salary_min,omitempty"`
	SalaryMax      int           `json:"salary_max,omitempty"`
	SDGTags        []string      `json:"sdg_tags,omitempty"`
	EmployerID     uuid.UUID     `json:"employer_id,omitempty"`
	CareerID       uuid.UUID     `json:"career_id,omitempty"`
	RequiredSkills []string      `json:"required_skills"`
	Embedding      Vector        `json:"embedding,omitempty"`
	EmbeddingJSON  string        `json:"embedding_json,omitempty"`
}

// MatchResult is one ranked candidate with its similarity score and the
// skill comparison against the candidate's requirements. MatchedSkills and
// MissingSkills partition the candidate's normalized required skills:
// their union covers every requirement and they never share an entry.
type MatchResult struct {
	Candidate     *Candidate `json:"candidate"`
	Similarity    float64    `json:"similarity_score"`
	Blended       float64    `json:"blended_score,omitempty"`
	MatchedSkills []string   `json:"matched_skills"`
	MissingSkills []string   `json:"missing_skills"`
}

// Recommendation is the API-response shape for a match, with the similarity
// rounded for presentation and expressed as a percentage.
type Recommendation struct {
	CandidateID     uuid.UUID `json:"candidate_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	SimilarityScore float64   `json:"similarity_score"`
	MatchPercentage float64   `json:"match_percentage"`
	MatchedSkills   []string  `json:"matched_skills"`
	MissingSkills   []string  `json:"missing_skills"`
	RequiredSkills  []string  `json:"required_skills"`
	SDGTags         []string  `json:"sdg_tags,omitempty"`
}
