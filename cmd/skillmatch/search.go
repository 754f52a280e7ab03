package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jonathan/skillmatch/internal/corpus"
	"github.com/jonathan/skillmatch/internal/search"
	"github.com/jonathan/skillmatch/internal/types"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Semantic search over a candidate corpus",
	Long:  "Search the corpus with a free-text query or a skill list, applying structured filters before semantic scoring.",
	RunE:  runSearch,
}

var (
	searchQuery      string
	searchSkills     string
	searchCorpus     string
	searchLimit      int
	searchMinSim     float64
	searchLocation   string
	searchSalaryMin  int
	searchSalaryMax  int
	searchSDGTags    string
	searchCareerID   string
	searchEmployerID string
)

func init() {
	searchCmd.Flags().StringVarP(&searchQuery, "query", "q", "", "Free-text search query")
	searchCmd.Flags().StringVarP(&searchSkills, "skills", "s", "", "Comma-separated skills to search with")
	searchCmd.Flags().StringVarP(&searchCorpus, "corpus", "p", "", "Path to the corpus JSON file (required)")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "l", 0, "Maximum number of results")
	searchCmd.Flags().Float64VarP(&searchMinSim, "min-similarity", "m", 0, "Minimum similarity threshold")
	searchCmd.Flags().StringVar(&searchLocation, "location", "", "Filter: location substring")
	searchCmd.Flags().IntVar(&searchSalaryMin, "salary-min", 0, "Filter: minimum salary")
	searchCmd.Flags().IntVar(&searchSalaryMax, "salary-max", 0, "Filter: maximum salary")
	searchCmd.Flags().StringVar(&searchSDGTags, "sdg-tags", "", "Filter: comma-separated SDG tags, all required")
	searchCmd.Flags().StringVar(&searchCareerID, "career-id", "", "Filter: career UUID")
	searchCmd.Flags().StringVar(&searchEmployerID, "employer-id", "", "Filter: employer UUID")

	searchCmd.MarkFlagRequired("corpus")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if searchQuery == "" && searchSkills == "" {
		return fmt.Errorf("either --query or --skills must be provided")
	}

	cfg, err := loadEngineConfig()
	if err != nil {
		return err
	}

	pool, err := corpus.LoadFile(searchCorpus)
	if err != nil {
		return err
	}

	filters, err := buildFilters()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	svc, cleanup, err := newEmbeddingService(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	opts := search.Options{Limit: searchLimit, MinSimilarity: searchMinSim}
	if searchMinSim == 0 {
		opts.MinSimilarity = cfg.MinSimilaritySearch
	}

	searcher := newSearcher(svc, cfg)

	var results []types.MatchResult
	if searchQuery != "" {
		results, err = searcher.Search(ctx, searchQuery, pool, filters, opts)
	} else {
		results, err = searcher.SearchBySkills(ctx, splitCSV(searchSkills), pool, filters, opts)
	}
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	return printJSON(results)
}

// buildFilters assembles the structured filters from the search flags.
// Returns nil when no filter flag was set.
func buildFilters() (*types.SearchFilters, error) {
	f := types.SearchFilters{
		Location:  searchLocation,
		SalaryMin: searchSalaryMin,
		SalaryMax: searchSalaryMax,
		SDGTags:   splitCSV(searchSDGTags),
	}

	if searchCareerID != "" {
		id, err := uuid.Parse(searchCareerID)
		if err != nil {
			return nil, fmt.Errorf("invalid --career-id: %w", err)
		}
		f.CareerID = id
	}
	if searchEmployerID != "" {
		id, err := uuid.Parse(searchEmployerID)
		if err != nil {
			return nil, fmt.Errorf("invalid --employer-id: %w", err)
		}
		f.EmployerID = id
	}

	if f.IsZero() {
		return nil, nil
	}
	return &f, nil
}
