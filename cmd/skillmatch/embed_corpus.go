package main

import (
	"fmt"
	"os"

	"github.com/jonathan/skillmatch/internal/corpus"
	"github.com/jonathan/skillmatch/internal/embedding"
	"github.com/spf13/cobra"
)

var embedCorpusCmd = &cobra.Command{
	Use:   "embed-corpus",
	Short: "Compute and store embeddings for every corpus candidate",
	Long:  "Compute embeddings for all candidates in a corpus file in one batch and write the updated corpus back, with the serialized form alongside.",
	RunE:  runEmbedCorpus,
}

var (
	embedCorpusIn  string
	embedCorpusOut string
)

func init() {
	embedCorpusCmd.Flags().StringVarP(&embedCorpusIn, "corpus", "p", "", "Path to the corpus JSON file (required)")
	embedCorpusCmd.Flags().StringVarP(&embedCorpusOut, "out", "o", "", "Output path (defaults to overwriting the input)")

	embedCorpusCmd.MarkFlagRequired("corpus")

	rootCmd.AddCommand(embedCorpusCmd)
}

func runEmbedCorpus(cmd *cobra.Command, args []string) error {
	cfg, err := loadEngineConfig()
	if err != nil {
		return err
	}

	pool, err := corpus.LoadFile(embedCorpusIn)
	if err != nil {
		return err
	}
	if len(pool) == 0 {
		return fmt.Errorf("corpus file has no candidates: %s", embedCorpusIn)
	}

	ctx := cmd.Context()
	svc, cleanup, err := newEmbeddingService(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	texts := make([]string, len(pool))
	for i := range pool {
		texts[i] = corpus.EmbeddingText(&pool[i])
	}

	vectors, err := svc.EncodeBatch(ctx, texts)
	if err != nil {
		return fmt.Errorf("failed to embed corpus: %w", err)
	}

	for i := range pool {
		serialized, err := embedding.VectorToJSON(vectors[i], svc.Dimension())
		if err != nil {
			return fmt.Errorf("candidate %s: %w", pool[i].ID, err)
		}
		pool[i].Embedding = vectors[i]
		pool[i].EmbeddingJSON = serialized
	}

	out := embedCorpusOut
	if out == "" {
		out = embedCorpusIn
	}
	if err := corpus.SaveFile(out, pool); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Embedded %d candidates: %s\n", len(pool), out)
	return nil
}
