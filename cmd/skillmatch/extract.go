package main

import (
	"fmt"
	"os"

	"github.com/jonathan/skillmatch/internal/extraction"
	"github.com/jonathan/skillmatch/internal/ingestion"
	"github.com/jonathan/skillmatch/internal/observability"
	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract skills from resume text",
	Long:  "Extract technical, soft and sustainability skills from resume text or a file, with a confidence score and parsed resume sections.",
	RunE:  runExtract,
}

var (
	extractText     string
	extractFile     string
	extractNoExpand bool
	extractNoSects  bool
)

func init() {
	extractCmd.Flags().StringVarP(&extractText, "text", "t", "", "Resume text to analyze")
	extractCmd.Flags().StringVarP(&extractFile, "file", "f", "", "Path to a resume text or HTML file")
	extractCmd.Flags().BoolVar(&extractNoExpand, "no-expand", false, "Disable related-skill expansion")
	extractCmd.Flags().BoolVar(&extractNoSects, "no-sections", false, "Skip resume section parsing")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	if extractText == "" && extractFile == "" {
		return fmt.Errorf("either --text or --file must be provided")
	}

	if _, err := loadEngineConfig(); err != nil {
		return err
	}

	text, err := readTextInput(extractText, extractFile)
	if err != nil {
		return err
	}

	skills := extraction.ExtractWithOptions(ingestion.Prepare(text), extraction.Options{
		ExpandRelated: !extractNoExpand,
		ParseSections: !extractNoSects,
	})

	if verbose {
		observability.NewPrinter(os.Stderr).PrintExtractedSkills(&skills)
	}

	return printJSON(skills)
}
