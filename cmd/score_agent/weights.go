package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-scorer/internal/scoring"
)

var weightsCmd = &cobra.Command{
	Use:   "weights",
	Short: "Print the default section weights",
	RunE: func(_ *cobra.Command, _ []string) error {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(scoring.DefaultWeights().Map())
	},
}

func init() {
	rootCmd.AddCommand(weightsCmd)
}
