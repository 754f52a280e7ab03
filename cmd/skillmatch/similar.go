package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jonathan/skillmatch/internal/corpus"
	"github.com/jonathan/skillmatch/internal/search"
	"github.com/spf13/cobra"
)

var similarCmd = &cobra.Command{
	Use:   "similar",
	Short: "Find candidates similar to a reference candidate",
	Long:  "Find corpus candidates similar to a reference candidate using its stored embedding. No embedding API calls are made.",
	RunE:  runSimilar,
}

var (
	similarID     string
	similarCorpus string
	similarLimit  int
	similarMinSim float64
)

func init() {
	similarCmd.Flags().StringVarP(&similarID, "id", "i", "", "Reference candidate UUID (required)")
	similarCmd.Flags().StringVarP(&similarCorpus, "corpus", "p", "", "Path to the corpus JSON file (required)")
	similarCmd.Flags().IntVarP(&similarLimit, "limit", "l", 0, "Maximum number of results")
	similarCmd.Flags().Float64VarP(&similarMinSim, "min-similarity", "m", 0, "Minimum similarity threshold")

	similarCmd.MarkFlagRequired("id")
	similarCmd.MarkFlagRequired("corpus")

	rootCmd.AddCommand(similarCmd)
}

func runSimilar(cmd *cobra.Command, args []string) error {
	cfg, err := loadEngineConfig()
	if err != nil {
		return err
	}

	id, err := uuid.Parse(similarID)
	if err != nil {
		return fmt.Errorf("invalid --id: %w", err)
	}

	pool, err := corpus.LoadFile(similarCorpus)
	if err != nil {
		return err
	}

	// Stored embeddings only, so no provider is needed.
	searcher := search.NewSearcher(nil, newMatcher(nil, cfg))

	opts := search.Options{Limit: similarLimit, MinSimilarity: similarMinSim}
	if similarMinSim == 0 {
		opts.MinSimilarity = cfg.MinSimilaritySimilar
	}

	results, err := searcher.FindSimilar(id, pool, opts)
	if err != nil {
		return fmt.Errorf("similarity lookup failed: %w", err)
	}

	return printJSON(results)
}
