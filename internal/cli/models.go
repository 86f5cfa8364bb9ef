package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ordolab/ordo/internal/analysis"
	"github.com/ordolab/ordo/internal/bench"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the growth models and benchmark methods",
	RunE:  runModels,
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}

func runModels(cmd *cobra.Command, args []string) error {
	fmt.Println("Growth models (tried in this order):")
	for _, spec := range analysis.Catalog() {
		fmt.Printf("  %-14s %-12s params: %s\n", spec.Name, spec.Label, strings.Join(spec.ParamNames, ", "))
	}

	fmt.Println("\nBenchmark methods:")
	for _, m := range bench.Methods() {
		fmt.Printf("  %-22s %s\n", m.Name, m.Description)
	}
	return nil
}
