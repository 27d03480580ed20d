// This file implements the match command for template detection.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adalundhe/promptforge/core/catalog"
	"github.com/adalundhe/promptforge/core/matcher"
)

var matchJSON bool

var matchCmd = &cobra.Command{
	Use:   "match <request>",
	Short: "Find the best-fitting catalog template for a request",
	Long: `Score the template catalog against a request and report the
suggested template, confidence, and ranked alternatives. Low-confidence
requests produce no suggestion; that is a normal outcome, not an error.

Examples:
  promptforge match "help me set and track goals"
  promptforge match --json "review our marketing campaign" | jq '.confidence'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMatch,
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().BoolVar(&matchJSON, "json", false, "Emit the match as JSON")
}

func runMatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	registry, err := catalog.NewRegistry(nil)
	if err != nil {
		return err
	}

	m, err := matcher.NewMatcher(registry, cfg.Matcher.MemoSize)
	if err != nil {
		return err
	}

	match := m.DetectTemplate(strings.Join(args, " "))

	if matchJSON {
		return json.NewEncoder(os.Stdout).Encode(match)
	}

	if match.SuggestedTemplate == nil {
		fmt.Printf("%sNo template suggestion%s (confidence %.0f)\n",
			colorYellow, colorReset, match.Confidence)
	} else {
		fmt.Printf("%s%s%s (%s) confidence %.0f\n",
			colorBold, match.SuggestedTemplate.ID, colorReset,
			match.SuggestedTemplate.Category, match.Confidence)
		fmt.Printf("  %s\n", match.SuggestedTemplate.Description)
	}

	fmt.Printf("%s%s%s\n", colorGray, match.Reasoning, colorReset)

	if len(match.Alternatives) > 0 {
		fmt.Printf("\n%sAlternatives:%s\n", colorBold, colorReset)
		for _, alt := range match.Alternatives {
			fmt.Printf("  %s%s%s (%s)\n", colorCyan, alt.ID, colorReset, alt.Category)
		}
	}

	return nil
}
