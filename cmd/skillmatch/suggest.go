package main

import (
	"github.com/jonathan/skillmatch/internal/corpus"
	"github.com/jonathan/skillmatch/internal/search"
	"github.com/spf13/cobra"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Autocomplete candidate titles",
	Long:  "Suggest candidate titles from the corpus matching a partial query. Text matching only; no embeddings are computed.",
	RunE:  runSuggest,
}

var (
	suggestText   string
	suggestCorpus string
	suggestLimit  int
)

func init() {
	suggestCmd.Flags().StringVarP(&suggestText, "text", "t", "", "Partial title text (required)")
	suggestCmd.Flags().StringVarP(&suggestCorpus, "corpus", "p", "", "Path to the corpus JSON file (required)")
	suggestCmd.Flags().IntVarP(&suggestLimit, "limit", "l", 10, "Maximum number of suggestions")

	suggestCmd.MarkFlagRequired("text")
	suggestCmd.MarkFlagRequired("corpus")

	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	if _, err := loadEngineConfig(); err != nil {
		return err
	}

	pool, err := corpus.LoadFile(suggestCorpus)
	if err != nil {
		return err
	}

	idx, err := search.NewSuggestIndex(pool)
	if err != nil {
		// The index is an optimization; fall back to the linear scan.
		return printJSON(search.SuggestTitles(pool, suggestText, suggestLimit))
	}
	defer idx.Close()

	titles, err := idx.Suggest(suggestText, suggestLimit)
	if err != nil {
		return err
	}
	return printJSON(titles)
}
