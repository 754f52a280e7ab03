// Package corpus provides PostgreSQL persistence for candidate entities and
// their embeddings. Embeddings are derived data with recompute-on-write
// semantics: saving a candidate whose text or skills changed re-encodes the
// vector before the row is written, so readers never see a stale one.
package corpus

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/skillmatch/internal/embedding"
	"github.com/jonathan/skillmatch/internal/types"
)

// Store wraps a PostgreSQL connection pool and the embedding service used
// to keep stored vectors fresh.
type Store struct {
	pool     *pgxpool.Pool
	embedder *embedding.Service
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string, embedder *embedding.Service) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool, embedder: embedder}, nil
}

// Close closes the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// EmbeddingText builds the text a candidate's embedding is computed from:
// title, description and required skills joined into one passage.
func EmbeddingText(c *types.Candidate) string {
	parts := make([]string, 0, 3)
	if c.Title != "" {
		parts = append(parts, c.Title)
	}
	if c.Description != "" {
		parts = append(parts, c.Description)
	}
	if len(c.RequiredSkills) > 0 {
		parts = append(parts, strings.Join(c.RequiredSkills, " "))
	}
	return strings.Join(parts, "\n")
}

// Save upserts a candidate, re-encoding its embedding from the current
// title, description and skills before the write. The serialized vector is
// stored in a text column via the strict JSON codec.
func (s *Store) Save(ctx context.Context, c *types.Candidate) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	vec, err := s.embedder.Encode(ctx, EmbeddingText(c))
	if err != nil {
		return fmt.Errorf("failed to embed candidate %s: %w", c.ID, err)
	}

	stored, err := embedding.VectorToJSON(vec, s.embedder.Dimension())
	if err != nil {
		return fmt.Errorf("failed to serialize embedding for candidate %s: %w", c.ID, err)
	}
	c.Embedding = vec
	c.EmbeddingJSON = stored

	_, err = s.pool.Exec(ctx,
		`INSERT INTO candidates
		   (id, kind, title, description, location, salary_min, salary_max,
		    sdg_tags, employer_id, career_id, required_skills, embedding, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW())
		 ON CONFLICT (id) DO UPDATE SET
		   kind = $2, title = $3, description = $4, location = $5,
		   salary_min = $6, salary_max = $7, sdg_tags = $8, employer_id = $9,
		   career_id = $10, required_skills = $11, embedding = $12, updated_at = NOW()`,
		c.ID, c.Kind, c.Title, c.Description, c.Location, c.SalaryMin, c.SalaryMax,
		c.SDGTags, nilIfZero(c.EmployerID), nilIfZero(c.CareerID), c.RequiredSkills, stored,
	)
	if err != nil {
		return fmt.Errorf("failed to save candidate %s: %w", c.ID, err)
	}
	return nil
}

// Get retrieves a candidate by ID. Returns nil without error when the row
// does not exist.
func (s *Store) Get(ctx context.Context, id uuid.UUID) (*types.Candidate, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, kind, title, description, location, salary_min, salary_max,
		        sdg_tags, employer_id, career_id, required_skills, embedding
		   FROM candidates WHERE id = $1`, id)

	c, err := scanCandidate(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get candidate %s: %w", id, err)
	}
	return c, nil
}

// List returns every candidate of the given kind, oldest first so pool
// order (and therefore ranking tie-breaks) is stable across calls.
func (s *Store) List(ctx context.Context, kind types.CandidateKind) ([]types.Candidate, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, kind, title, description, location, salary_min, salary_max,
		        sdg_tags, employer_id, career_id, required_skills, embedding
		   FROM candidates WHERE kind = $1 ORDER BY created_at`, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	var out []types.Candidate
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		out = append(out, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read candidates: %w", err)
	}
	return out, nil
}

// Delete removes a candidate row.
func (s *Store) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete candidate %s: %w", id, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCandidate(row rowScanner) (*types.Candidate, error) {
	var (
		c          types.Candidate
		employerID *uuid.UUID
		careerID   *uuid.UUID
		stored     *string
	)
	err := row.Scan(&c.ID, &c.Kind, &c.Title, &c.Description, &c.Location,
		&c.SalaryMin, &c.SalaryMax, &c.SDGTags, &employerID, &careerID,
		&c.RequiredSkills, &stored)
	if err != nil {
		return nil, err
	}
	if employerID != nil {
		c.EmployerID = *employerID
	}
	if careerID != nil {
		c.CareerID = *careerID
	}
	if stored != nil {
		c.EmbeddingJSON = *stored
	}
	return &c, nil
}

func nilIfZero(id uuid.UUID) *uuid.UUID {
	if id == uuid.Nil {
		return nil
	}
	return &id
}
