// This file implements the templates command for browsing the catalog.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/adalundhe/promptforge/core/catalog"
)

var (
	templatesCategory string
	templatesPopular  int
	templatesJSON     bool
)

var templatesCmd = &cobra.Command{
	Use:   "templates [id]",
	Short: "Browse the template catalog",
	Long: `List catalog templates, filter them by category, rank them by
recorded usage, or show one template in full.

Examples:
  promptforge templates
  promptforge templates goal-setting
  promptforge templates --category business
  promptforge templates --popular 3`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTemplates,
}

func init() {
	rootCmd.AddCommand(templatesCmd)

	templatesCmd.Flags().StringVarP(&templatesCategory, "category", "c", "", "Filter by category")
	templatesCmd.Flags().IntVarP(&templatesPopular, "popular", "p", 0, "Show the N most-used templates")
	templatesCmd.Flags().BoolVar(&templatesJSON, "json", false, "Emit templates as JSON")
}

func runTemplates(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var store *catalog.UsageStore
	if cfg.Catalog.UsageDBPath != "" {
		if s, err := catalog.NewUsageStore(cfg.Catalog.UsageDBPath); err == nil {
			store = s
			defer store.Close()
		}
	}

	registry, err := catalog.NewRegistry(store)
	if err != nil {
		return err
	}

	if len(args) == 1 {
		return showTemplate(registry, args[0])
	}

	templates := selectTemplates(registry)

	if templatesJSON {
		return json.NewEncoder(os.Stdout).Encode(templates)
	}

	for _, tmpl := range templates {
		fmt.Printf("%s%-26s%s %-12s effectiveness %d", colorBold, tmpl.ID, colorReset, tmpl.Category, tmpl.Effectiveness)
		if tmpl.UseCount > 0 {
			fmt.Printf("  %sused %d times%s", colorGray, tmpl.UseCount, colorReset)
		}
		fmt.Println()
		fmt.Printf("  %s\n", tmpl.Description)
	}

	return nil
}

func selectTemplates(registry *catalog.Registry) []*catalog.Template {
	if templatesPopular > 0 {
		return registry.Popular(templatesPopular)
	}
	if templatesCategory != "" {
		return registry.ByCategory(templatesCategory)
	}
	return registry.All()
}

func showTemplate(registry *catalog.Registry, id string) error {
	tmpl := registry.Get(id)
	if tmpl == nil {
		return fmt.Errorf("unknown template %q", id)
	}

	if templatesJSON {
		return json.NewEncoder(os.Stdout).Encode(tmpl)
	}

	fmt.Printf("%s%s%s (%s)\n", colorBold, tmpl.Name, colorReset, tmpl.Category)
	fmt.Printf("%s\n\n", tmpl.Description)
	fmt.Printf("Keywords: %v\n", tmpl.Keywords)
	fmt.Printf("Effectiveness: %d  Uses: %d\n\n", tmpl.Effectiveness, tmpl.UseCount)
	fmt.Println(tmpl.Structure)
	if tmpl.Example != "" {
		fmt.Printf("\n%sExample:%s %s\n", colorGray, colorReset, tmpl.Example)
	}

	return nil
}
