// This file implements the transform command for rewriting raw requests
// into structured meta-prompts.
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adalundhe/promptforge/core/enhance"
	"github.com/adalundhe/promptforge/core/pipeline"
)

var (
	transformUseTemplate bool
	transformEnhance     bool
	transformStyle       string
	transformJSON        bool
)

var transformCmd = &cobra.Command{
	Use:   "transform <request>",
	Short: "Rewrite a raw request into a structured meta-prompt",
	Long: `Transform a raw request into a five-section meta-prompt with an
expert role, quality score, and validation report.

Examples:
  promptforge transform "write a blog post about cats"
  promptforge transform --template "help me set and track goals"
  promptforge transform --enhance --style creative "draft a product story"
  promptforge transform --json "analyze my sales data" | jq '.validation'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTransform,
}

func init() {
	rootCmd.AddCommand(transformCmd)

	transformCmd.Flags().BoolVarP(&transformUseTemplate, "template", "t", false, "Apply the best-matching catalog template")
	transformCmd.Flags().BoolVarP(&transformEnhance, "enhance", "e", false, "Run remote enhancement when configured")
	transformCmd.Flags().StringVarP(&transformStyle, "style", "s", "", "Enhancement style (precise, creative, structured)")
	transformCmd.Flags().BoolVar(&transformJSON, "json", false, "Emit the full outcome as JSON")
}

func runTransform(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	engine, err := buildEngine(cfg)
	if err != nil {
		return err
	}
	defer engine.Close()

	style := enhance.Style(orDefault(transformStyle, cfg.Enhancement.Style))

	outcome, err := engine.Process(context.Background(), strings.Join(args, " "), pipeline.Options{
		UseTemplate: transformUseTemplate,
		Enhance:     transformEnhance,
		Style:       style,
	})
	if err != nil {
		return err
	}

	if transformJSON {
		return json.NewEncoder(os.Stdout).Encode(outcome)
	}

	renderOutcome(outcome)
	return nil
}

func renderOutcome(outcome *pipeline.Outcome) {
	prompt := outcome.Transformation.TransformedPrompt
	if outcome.EnhancedPrompt != "" {
		prompt = outcome.EnhancedPrompt
	}

	fmt.Println(prompt)
	fmt.Println()

	fmt.Printf("%sQuality: %d/100", colorBold, outcome.Validation.OverallScore)
	if outcome.Validation.IsValid {
		fmt.Printf(" %svalid%s\n", colorGreen, colorReset)
	} else {
		fmt.Printf(" %sneeds work%s\n", colorYellow, colorReset)
	}

	if outcome.Transformation.TemplateUsed != "" {
		fmt.Printf("%sTemplate: %s%s\n", colorGray, outcome.Transformation.TemplateUsed, colorReset)
	}
	if outcome.RemoteNotify && outcome.RemoteError != "" {
		fmt.Printf("%sRemote enhancement failed, local result shown: %s%s\n",
			colorYellow, outcome.RemoteError, colorReset)
	}

	for _, issue := range outcome.Validation.Issues {
		fmt.Printf("%s[%s]%s %s: %s\n",
			severityColor(string(issue.Severity)), issue.Severity, colorReset,
			issue.Category, issue.Description)
	}
}

func severityColor(severity string) string {
	switch severity {
	case "critical", "high":
		return colorRed
	case "medium":
		return colorYellow
	default:
		return colorGray
	}
}
