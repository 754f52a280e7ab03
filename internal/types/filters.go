package types

import "github.com/google/uuid"

// SearchFilters narrows a corpus before similarity scoring. Zero-valued
// fields mean "no filter". Filters are structural attribute checks only;
// they never look at embeddings.
type SearchFilters struct {
	Location   string    `json:"location,omitempty"`    // case-insensitive substring match
	SalaryMin  int       `json:"salary_min,omitempty"`  // candidate's salary_max must reach this
	SalaryMax  int       `json:"salary_max,omitempty"`  // candidate's salary_min must not exceed this
	SDGTags    []string  `json:"sdg_tags,omitempty"`    // candidate must carry every listed tag
	CareerID   uuid.UUID `json:"career_id,omitempty"`   // exact career identity
	EmployerID uuid.UUID `json:"employer_id,omitempty"` // exact employer identity
}

// IsZero reports whether no filter field is set.
func (f *SearchFilters) IsZero() bool {
	return f == nil || (f.Location == "" && f.SalaryMin == 0 && f.SalaryMax == 0 &&
		len(f.SDGTags) == 0 && f.CareerID == uuid.Nil && f.EmployerID == uuid.Nil)
}
