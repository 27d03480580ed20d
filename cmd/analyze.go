// This file implements the analyze command for inspecting a request
// without transforming it.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adalundhe/promptforge/core/analysis"
)

var analyzeJSON bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze <request>",
	Short: "Analyze a request's intent, domain, and quality metrics",
	Long: `Analyze a raw request and report its detected intent, domain,
complexity, missing elements, and pre-transformation quality metrics.

Examples:
  promptforge analyze "write a blog post about cats"
  promptforge analyze --json "plan my product launch" | jq '.metrics'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Emit the analysis as JSON")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	input := strings.Join(args, " ")

	analyzer := analysis.NewAnalyzer()
	a := analyzer.Analyze(input)
	metrics := analysis.CalculateMetrics(input, a)

	if analyzeJSON {
		return json.NewEncoder(os.Stdout).Encode(struct {
			Analysis *analysis.Analysis `json:"analysis"`
			Metrics  *analysis.Metrics  `json:"metrics"`
		}{a, metrics})
	}

	fmt.Printf("%sIntent:%s      %s\n", colorBold, colorReset, a.Intent)
	fmt.Printf("%sDomain:%s      %s\n", colorBold, colorReset, a.Domain)
	fmt.Printf("%sComplexity:%s  %s\n", colorBold, colorReset, a.Complexity)
	fmt.Printf("%sFramework:%s   %s\n", colorBold, colorReset, a.SuggestedFramework)

	if len(a.RequiredExpertise) > 0 {
		fmt.Printf("%sExpertise:%s   %s\n", colorBold, colorReset, strings.Join(a.RequiredExpertise, ", "))
	}
	if len(a.MissingElements) > 0 {
		fmt.Printf("\n%sMissing elements:%s\n", colorBold, colorReset)
		for _, missing := range a.MissingElements {
			fmt.Printf("  %s- %s%s\n", colorYellow, missing, colorReset)
		}
	}

	fmt.Printf("\n%sMetrics%s\n", colorBold, colorReset)
	fmt.Printf("  Clarity:         %3d\n", metrics.Clarity)
	fmt.Printf("  Specificity:     %3d\n", metrics.Specificity)
	fmt.Printf("  Completeness:    %3d\n", metrics.Completeness)
	fmt.Printf("  Professionalism: %3d\n", metrics.Professionalism)
	fmt.Printf("  Actionability:   %3d\n", metrics.Actionability)
	fmt.Printf("  %sOverall:         %3d%s\n", colorBold, metrics.Overall, colorReset)

	return nil
}
