// This file implements the validate command for scoring an existing
// prompt against the structural checklist.
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adalundhe/promptforge/core/errors"
	"github.com/adalundhe/promptforge/core/validate"
)

var validateJSON bool

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Score a prompt against the structural quality checklist",
	Long: `Validate a prompt read from a file, or from stdin when no file is
given, and report metrics, compliance, issues, and suggestions.

Examples:
  promptforge validate prompt.txt
  promptforge transform --json "plan my week" | jq -r '.transformation.transformed_prompt' | promptforge validate
  promptforge validate --json prompt.txt | jq '.compliance'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "Emit the validation report as JSON")
}

func runValidate(cmd *cobra.Command, args []string) error {
	prompt, err := readPrompt(args)
	if err != nil {
		return err
	}
	if strings.TrimSpace(prompt) == "" {
		return errors.ErrInvalidInput
	}

	result := validate.NewValidator().Validate(prompt)

	if validateJSON {
		return json.NewEncoder(os.Stdout).Encode(result)
	}

	renderValidation(result)
	return nil
}

func readPrompt(args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func renderValidation(result *validate.Result) {
	fmt.Printf("%sScore: %d/100", colorBold, result.OverallScore)
	if result.IsValid {
		fmt.Printf(" %svalid%s\n", colorGreen, colorReset)
	} else {
		fmt.Printf(" %sneeds work%s\n", colorYellow, colorReset)
	}

	fmt.Printf("%sCompliance: %.0f%%%s\n\n", colorGray, result.Compliance.Rate()*100, colorReset)

	fmt.Printf("  Clarity:         %3d\n", result.Metrics.Clarity)
	fmt.Printf("  Specificity:     %3d\n", result.Metrics.Specificity)
	fmt.Printf("  Completeness:    %3d\n", result.Metrics.Completeness)
	fmt.Printf("  Professionalism: %3d\n", result.Metrics.Professionalism)
	fmt.Printf("  Actionability:   %3d\n", result.Metrics.Actionability)

	if len(result.Issues) > 0 {
		fmt.Printf("\n%sIssues:%s\n", colorBold, colorReset)
		for _, issue := range result.Issues {
			fmt.Printf("  %s[%s]%s %s: %s\n",
				severityColor(string(issue.Severity)), issue.Severity, colorReset,
				issue.Category, issue.Description)
		}
	}

	if len(result.Suggestions) > 0 {
		fmt.Printf("\n%sSuggestions:%s\n", colorBold, colorReset)
		for _, s := range result.Suggestions {
			fmt.Printf("  %s(+%d)%s %s\n", colorGreen, s.ExpectedImprovement, colorReset, s.Suggestion)
		}
	}
}
