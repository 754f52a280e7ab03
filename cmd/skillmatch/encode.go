package main

import (
	"fmt"
	"strings"

	"github.com/jonathan/skillmatch/internal/ingestion"
	"github.com/spf13/cobra"
)

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Encode text or a skill list into an embedding vector",
	Long:  "Encode free text, a file, or a comma-separated skill list into an embedding vector and print it as JSON.",
	RunE:  runEncode,
}

var (
	encodeText   string
	encodeFile   string
	encodeSkills string
	encodeInfo   bool
)

func init() {
	encodeCmd.Flags().StringVarP(&encodeText, "text", "t", "", "Text to encode")
	encodeCmd.Flags().StringVarP(&encodeFile, "file", "f", "", "Path to a text file to encode")
	encodeCmd.Flags().StringVarP(&encodeSkills, "skills", "s", "", "Comma-separated skill list to encode")
	encodeCmd.Flags().BoolVar(&encodeInfo, "info", false, "Print model info and cache statistics after encoding")

	rootCmd.AddCommand(encodeCmd)
}

func runEncode(cmd *cobra.Command, args []string) error {
	if encodeText == "" && encodeFile == "" && encodeSkills == "" {
		return fmt.Errorf("one of --text, --file or --skills must be provided")
	}

	cfg, err := loadEngineConfig()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	svc, cleanup, err := newEmbeddingService(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	var vec []float64
	if encodeSkills != "" {
		vec, err = svc.EncodeSkills(ctx, splitCSV(encodeSkills))
	} else {
		var text string
		text, err = readTextInput(encodeText, encodeFile)
		if err != nil {
			return err
		}
		vec, err = svc.Encode(ctx, ingestion.Prepare(text))
	}
	if err != nil {
		return fmt.Errorf("failed to encode: %w", err)
	}

	out := map[string]interface{}{"embedding": vec, "dimension": len(vec)}
	if encodeInfo {
		out["model_info"] = svc.Info()
	}
	return printJSON(out)
}

// splitCSV splits a comma-separated flag value, trimming whitespace and
// dropping empty entries.
func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
