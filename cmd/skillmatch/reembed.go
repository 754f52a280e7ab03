package main

import (
	"fmt"
	"os"

	"github.com/jonathan/skillmatch/internal/corpus"
	"github.com/jonathan/skillmatch/internal/types"
	"github.com/spf13/cobra"
)

var reembedCmd = &cobra.Command{
	Use:   "reembed",
	Short: "Recompute stored embeddings in the database",
	Long:  "Recompute and persist embeddings for every candidate of a kind in the PostgreSQL store. Run after changing the embedding model.",
	RunE:  runReembed,
}

var (
	reembedKind        string
	reembedConcurrency int
)

func init() {
	reembedCmd.Flags().StringVarP(&reembedKind, "kind", "k", "", "Candidate kind to reembed: career or job (required)")
	reembedCmd.Flags().IntVarP(&reembedConcurrency, "concurrency", "n", 0, "Number of concurrent embedding workers")

	reembedCmd.MarkFlagRequired("kind")

	rootCmd.AddCommand(reembedCmd)
}

func runReembed(cmd *cobra.Command, args []string) error {
	cfg, err := loadEngineConfig()
	if err != nil {
		return err
	}

	kind := types.CandidateKind(reembedKind)
	if kind != types.KindCareer && kind != types.KindJob {
		return fmt.Errorf("invalid --kind %q: must be career or job", reembedKind)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("no database configured; set DATABASE_URL or database_url in the config file")
	}

	ctx := cmd.Context()
	svc, cleanup, err := newEmbeddingService(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	store, err := corpus.Connect(ctx, cfg.DatabaseURL, svc)
	if err != nil {
		return err
	}
	defer store.Close()

	count, err := store.Reembed(ctx, kind, reembedConcurrency)
	if err != nil {
		return fmt.Errorf("reembed failed: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Reembedded %d %s candidates\n", count, kind)
	return nil
}
