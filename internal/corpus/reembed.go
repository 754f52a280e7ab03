package corpus

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/skillmatch/internal/types"
)

// defaultReembedConcurrency bounds parallel provider calls during a bulk
// re-embed so a large corpus cannot stampede the embedding backend.
const defaultReembedConcurrency = 4

// Reembed recomputes and persists the embedding of every candidate of the
// given kind. Use after changing the embedding model or dimension, when
// every stored vector is invalidated at once. Returns the number of
// candidates re-embedded.
func (s *Store) Reembed(ctx context.Context, kind types.CandidateKind, concurrency int) (int, error) {
	if concurrency <= 0 {
		concurrency = defaultReembedConcurrency
	}

	candidates, err := s.List(ctx, kind)
	if err != nil {
		return 0, err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i := range candidates {
		c := candidates[i]
		g.Go(func() error {
			// Save re-encodes from the current text before writing.
			c.Embedding = nil
			c.EmbeddingJSON = ""
			if err := s.Save(ctx, &c); err != nil {
				return fmt.Errorf("failed to re-embed candidate %s: %w", c.ID, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}
	return len(candidates), nil
}
