// Package cmd provides CLI commands for the PromptForge application.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/adalundhe/promptforge/core/catalog"
	"github.com/adalundhe/promptforge/core/config"
	"github.com/adalundhe/promptforge/core/enhance"
	"github.com/adalundhe/promptforge/core/pipeline"
)

// ANSI color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorGray   = "\033[90m"
	colorBold   = "\033[1m"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "promptforge",
	Short: "PromptForge - structured prompt analysis and transformation",
	Long: `PromptForge analyzes raw prompt requests, matches them against a
template catalog, and rewrites them into structured, quality-scored
meta-prompts. Remote enhancement is optional; every command works
fully offline.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file")
}

// loadConfig builds the active configuration from defaults, the optional
// config file, and environment overrides.
func loadConfig() (*config.Config, error) {
	manager := config.NewManager(configPath)
	if err := manager.Load(); err != nil {
		return nil, err
	}
	return manager.Get(), nil
}

// buildEngine wires a pipeline engine from the configuration. The
// enhancement adapter is attached only when enabled and credentialed;
// otherwise the engine runs local only.
func buildEngine(cfg *config.Config) (*pipeline.Engine, error) {
	var store *catalog.UsageStore
	if cfg.Catalog.UsageDBPath != "" {
		if s, err := catalog.NewUsageStore(cfg.Catalog.UsageDBPath); err == nil {
			store = s
		}
	}

	registry, err := catalog.NewRegistry(store)
	if err != nil {
		return nil, err
	}

	return pipeline.NewEngine(pipeline.EngineConfig{
		Registry: registry,
		Adapter:  buildAdapter(cfg),
		Cache: &pipeline.CacheConfig{
			MaxCost: cfg.Cache.MaxCost,
			TTL:     cfg.Cache.TTL,
		},
		MatcherMemoSize: cfg.Matcher.MemoSize,
	})
}

func buildAdapter(cfg *config.Config) enhance.Adapter {
	if !cfg.Enhancement.Enabled {
		return nil
	}

	switch cfg.Enhancement.Provider {
	case string(enhance.ProviderTypeOpenAI):
		c := enhance.DefaultOpenAIConfig()
		c.APIKey = os.Getenv("OPENAI_API_KEY")
		c.Model = orDefault(cfg.Enhancement.Model, c.Model)
		if cfg.Enhancement.Timeout > 0 {
			c.Timeout = cfg.Enhancement.Timeout
		}
		adapter, err := enhance.NewOpenAIAdapter(c)
		if err != nil {
			return nil
		}
		return adapter
	default:
		c := enhance.DefaultAnthropicConfig()
		c.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		c.Model = orDefault(cfg.Enhancement.Model, c.Model)
		if cfg.Enhancement.Timeout > 0 {
			c.Timeout = cfg.Enhancement.Timeout
		}
		adapter, err := enhance.NewAnthropicAdapter(c)
		if err != nil {
			return nil
		}
		return adapter
	}
}

func orDefault(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
