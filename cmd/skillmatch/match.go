package main

import (
	"fmt"
	"os"

	"github.com/jonathan/skillmatch/internal/corpus"
	"github.com/jonathan/skillmatch/internal/extraction"
	"github.com/jonathan/skillmatch/internal/ingestion"
	"github.com/jonathan/skillmatch/internal/matching"
	"github.com/jonathan/skillmatch/internal/observability"
	"github.com/spf13/cobra"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Rank corpus candidates against a skill profile",
	Long:  "Rank the careers or jobs in a corpus file against a skill list or a resume, blending semantic similarity with skill overlap.",
	RunE:  runMatch,
}

var (
	matchSkills    string
	matchResume    string
	matchCorpus    string
	matchLimit     int
	matchMinSim    float64
	matchRecommend bool
)

func init() {
	matchCmd.Flags().StringVarP(&matchSkills, "skills", "s", "", "Comma-separated user skills")
	matchCmd.Flags().StringVarP(&matchResume, "resume", "r", "", "Path to a resume file to extract skills from")
	matchCmd.Flags().StringVarP(&matchCorpus, "corpus", "p", "", "Path to the corpus JSON file (required)")
	matchCmd.Flags().IntVarP(&matchLimit, "limit", "l", 0, "Maximum number of results")
	matchCmd.Flags().Float64VarP(&matchMinSim, "min-similarity", "m", 0, "Minimum similarity threshold")
	matchCmd.Flags().BoolVar(&matchRecommend, "recommend", false, "Output presentation-ready recommendations")

	matchCmd.MarkFlagRequired("corpus")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
	if matchSkills == "" && matchResume == "" {
		return fmt.Errorf("either --skills or --resume must be provided")
	}
	if matchSkills != "" && matchResume != "" {
		return fmt.Errorf("--skills and --resume are mutually exclusive; provide only one")
	}

	cfg, err := loadEngineConfig()
	if err != nil {
		return err
	}

	pool, err := corpus.LoadFile(matchCorpus)
	if err != nil {
		return err
	}

	skills := splitCSV(matchSkills)
	if matchResume != "" {
		text, err := readTextInput("", matchResume)
		if err != nil {
			return err
		}
		extracted := extraction.Extract(ingestion.Prepare(text))
		skills = extracted.All
	}

	ctx := cmd.Context()
	svc, cleanup, err := newEmbeddingService(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	opts := matching.Options{Limit: matchLimit, MinSimilarity: matchMinSim}
	if matchMinSim == 0 {
		opts.MinSimilarity = cfg.MinSimilarityMatch
	}

	results, err := newMatcher(svc, cfg).RankBySkills(ctx, skills, pool, opts)
	if err != nil {
		return fmt.Errorf("failed to rank candidates: %w", err)
	}

	if verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintMatchResults(results)
		printer.PrintModelInfo(svc.Info())
	}

	if matchRecommend {
		return printJSON(matching.Recommendations(results))
	}
	return printJSON(results)
}
