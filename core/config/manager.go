// Package config loads layered YAML configuration with environment
// overrides and hot reload on file change.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"
	"unsafe"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"

	"github.com/adalundhe/promptforge/core/errors"
)

// reloadDebounce coalesces rapid file events into one reload.
const reloadDebounce = 100 * time.Millisecond

type Manager struct {
	configPtr unsafe.Pointer
	path      string
	watchers  []func(*Config)
	watcherMu sync.RWMutex
	stopWatch chan struct{}
	watchOnce sync.Once
}

type Config struct {
	Enhancement EnhancementConfig `yaml:"enhancement"`
	Cache       CacheConfig       `yaml:"cache"`
	Catalog     CatalogConfig     `yaml:"catalog"`
	Matcher     MatcherConfig     `yaml:"matcher"`
}

type EnhancementConfig struct {
	// Enabled turns the remote enhancement pass on. The pipeline always
	// produces a local result regardless of this flag.
	Enabled bool `yaml:"enabled"`

	// Provider selects the remote adapter: "anthropic" or "openai".
	Provider string `yaml:"provider"`

	// Model overrides the adapter's default model.
	Model string `yaml:"model"`

	// Style is the refinement register: precise, creative, or structured.
	Style string `yaml:"style"`

	// Timeout bounds each remote call.
	Timeout time.Duration `yaml:"timeout"`
}

type CacheConfig struct {
	// TTL is how long pipeline results stay cached.
	TTL time.Duration `yaml:"ttl"`

	// MaxCost bounds the result cache size in entries.
	MaxCost int64 `yaml:"max_cost"`
}

type CatalogConfig struct {
	// UsageDBPath locates the template usage database. Empty disables
	// persistence; use counts then live only in memory.
	UsageDBPath string `yaml:"usage_db_path"`
}

type MatcherConfig struct {
	// MemoSize is the LRU capacity for memoized match results.
	MemoSize int `yaml:"memo_size"`
}

func NewManager(path string) *Manager {
	m := &Manager{
		path:      path,
		stopWatch: make(chan struct{}),
	}
	cfg := DefaultConfig()
	atomic.StorePointer(&m.configPtr, unsafe.Pointer(cfg))
	return m
}

func DefaultConfig() *Config {
	return &Config{
		Enhancement: EnhancementConfig{
			Enabled:  false,
			Provider: "anthropic",
			Style:    "precise",
			Timeout:  30 * time.Second,
		},
		Cache: CacheConfig{
			TTL:     30 * time.Minute,
			MaxCost: 1024,
		},
		Catalog: CatalogConfig{
			UsageDBPath: filepath.Join(".promptforge", "template_usage.db"),
		},
		Matcher: MatcherConfig{
			MemoSize: 128,
		},
	}
}

func (m *Manager) Get() *Config {
	return (*Config)(atomic.LoadPointer(&m.configPtr))
}

func (m *Manager) Load() error {
	cfg := DefaultConfig()

	if err := m.loadYAMLFile(m.path, cfg); err != nil {
		return fmt.Errorf("config file: %w", err)
	}

	m.applyEnvironment(cfg)

	if err := cfg.Validate(); err != nil {
		return err
	}

	atomic.StorePointer(&m.configPtr, unsafe.Pointer(cfg))
	m.notifyWatchers(cfg)

	return nil
}

func (m *Manager) loadYAMLFile(path string, cfg *Config) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, cfg)
}

func (m *Manager) applyEnvironment(cfg *Config) {
	if v := os.Getenv("PROMPTFORGE_ENHANCEMENT_ENABLED"); v != "" {
		cfg.Enhancement.Enabled = strings.ToLower(v) == "true"
	}
	if v := os.Getenv("PROMPTFORGE_ENHANCEMENT_PROVIDER"); v != "" {
		cfg.Enhancement.Provider = v
	}
	if v := os.Getenv("PROMPTFORGE_ENHANCEMENT_MODEL"); v != "" {
		cfg.Enhancement.Model = v
	}
	if v := os.Getenv("PROMPTFORGE_ENHANCEMENT_STYLE"); v != "" {
		cfg.Enhancement.Style = v
	}
	if v := os.Getenv("PROMPTFORGE_ENHANCEMENT_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Enhancement.Timeout = d
		}
	}
	if v := os.Getenv("PROMPTFORGE_CACHE_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Cache.TTL = d
		}
	}
	if v := os.Getenv("PROMPTFORGE_USAGE_DB_PATH"); v != "" {
		cfg.Catalog.UsageDBPath = v
	}
}

// Validate rejects configurations the pipeline cannot honor.
func (c *Config) Validate() error {
	switch c.Enhancement.Provider {
	case "", "anthropic", "openai":
	default:
		return errors.NewTieredError(errors.TierUserFixable,
			fmt.Sprintf("unknown enhancement provider %q", c.Enhancement.Provider), nil)
	}

	switch c.Enhancement.Style {
	case "", "precise", "creative", "structured":
	default:
		return errors.NewTieredError(errors.TierUserFixable,
			fmt.Sprintf("unknown enhancement style %q", c.Enhancement.Style), nil)
	}

	if c.Cache.TTL < 0 {
		return errors.NewTieredError(errors.TierUserFixable, "cache ttl must not be negative", nil)
	}
	if c.Matcher.MemoSize < 0 {
		return errors.NewTieredError(errors.TierUserFixable, "matcher memo_size must not be negative", nil)
	}

	return nil
}

func (m *Manager) OnChange(fn func(*Config)) {
	m.watcherMu.Lock()
	m.watchers = append(m.watchers, fn)
	m.watcherMu.Unlock()
}

func (m *Manager) notifyWatchers(cfg *Config) {
	m.watcherMu.RLock()
	watchers := m.watchers
	m.watcherMu.RUnlock()

	for _, fn := range watchers {
		fn(cfg)
	}
}

func (m *Manager) Reload() error {
	return m.Load()
}

// Watch reloads the configuration when the backing file changes. Events
// are debounced; editors that replace the file atomically still trigger
// a reload because the parent directory is watched.
func (m *Manager) Watch() error {
	if m.path == "" {
		return errors.ErrMissingConfig
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config watch: %w", err)
	}

	dir := filepath.Dir(m.path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("config watch %s: %w", dir, err)
	}

	go func() {
		defer watcher.Close()

		var timer *time.Timer
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != filepath.Clean(m.path) {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(reloadDebounce, func() {
					_ = m.Reload()
				})
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			case <-m.stopWatch:
				return
			}
		}
	}()

	return nil
}

func (m *Manager) Close() error {
	m.watchOnce.Do(func() {
		close(m.stopWatch)
	})
	return nil
}
