package main

import (
	"fmt"
	"os"

	"github.com/jonathan/skillmatch/internal/schemas"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <corpus-file>",
	Short: "Validate a corpus file against the corpus schema",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	if err := schemas.ValidateCorpusFile(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Corpus file is valid: %s\n", args[0])
	return nil
}
