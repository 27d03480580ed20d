// Package catalog holds the static prompt template library and its
// keyword-indexed registry with per-template usage tracking.
package catalog

import (
	"sort"
	"sync"

	"github.com/adalundhe/promptforge/core/errors"
)

// Template is a static catalog entry describing one structured prompt
// template. The catalog is seeded at construction and never shrinks;
// only the usage counter mutates.
type Template struct {
	// Identity
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`

	// Keywords trigger template matching
	Keywords []string `json:"keywords,omitempty"`

	// Structure is the five-section prompt skeleton. All five canonical
	// headers (CONTEXT, GOAL, INFORMATION, RESPONSE GUIDELINES, OUTPUT)
	// are present verbatim.
	Structure string `json:"structure"`

	// Example is one canonical usage example
	Example string `json:"example"`

	// Effectiveness is a hand-curated 0-100 rating
	Effectiveness int `json:"effectiveness"`

	// UseCount tracks successful applications
	UseCount int64 `json:"use_count"`
}

// Clone returns a copy safe to hand to callers.
func (t *Template) Clone() *Template {
	cp := *t
	cp.Keywords = append([]string(nil), t.Keywords...)
	return &cp
}

// Registry manages the template catalog.
type Registry struct {
	mu        sync.RWMutex
	templates map[string]*Template

	// Index by category for lookup
	byCategory map[string][]*Template

	// Optional durable usage store; nil means in-memory only
	store *UsageStore
}

// NewRegistry creates a registry seeded with the built-in catalog.
// A nil store keeps usage counters in memory only.
func NewRegistry(store *UsageStore) (*Registry, error) {
	r := &Registry{
		templates:  make(map[string]*Template),
		byCategory: make(map[string][]*Template),
		store:      store,
	}

	for _, tmpl := range seedTemplates() {
		if err := r.register(tmpl); err != nil {
			return nil, err
		}
	}

	if store != nil {
		if err := r.restoreCounts(); err != nil {
			return nil, err
		}
	}

	return r, nil
}

func (r *Registry) register(tmpl *Template) error {
	if tmpl.ID == "" {
		return errors.NewTieredError(errors.TierPermanent, "template id is required", nil)
	}
	if tmpl.Category == "" {
		return errors.NewTieredError(errors.TierPermanent, "template category is required", nil)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.templates[tmpl.ID] = tmpl
	r.byCategory[tmpl.Category] = append(r.byCategory[tmpl.Category], tmpl)
	return nil
}

func (r *Registry) restoreCounts() error {
	counts, err := r.store.Counts()
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for id, count := range counts {
		if tmpl, ok := r.templates[id]; ok {
			tmpl.UseCount = count
		}
	}
	return nil
}

// Get returns a template by id, or nil when unknown.
func (r *Registry) Get(id string) *Template {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tmpl, ok := r.templates[id]
	if !ok {
		return nil
	}
	return tmpl.Clone()
}

// ByCategory returns all templates in a category.
func (r *Registry) ByCategory(category string) []*Template {
	r.mu.RLock()
	defer r.mu.RUnlock()

	templates := r.byCategory[category]
	result := make([]*Template, len(templates))
	for i, tmpl := range templates {
		result[i] = tmpl.Clone()
	}
	return result
}

// Categories returns the distinct template categories, sorted.
func (r *Registry) Categories() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]string, 0, len(r.byCategory))
	for category := range r.byCategory {
		result = append(result, category)
	}
	sort.Strings(result)
	return result
}

// All returns every template in the catalog.
func (r *Registry) All() []*Template {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Template, 0, len(r.templates))
	for _, tmpl := range r.templates {
		result = append(result, tmpl.Clone())
	}
	return result
}

// Popular returns up to limit templates ordered by descending use count.
// Ties break on template id for a stable order.
func (r *Registry) Popular(limit int) []*Template {
	all := r.All()

	sort.Slice(all, func(i, j int) bool {
		if all[i].UseCount != all[j].UseCount {
			return all[i].UseCount > all[j].UseCount
		}
		return all[i].ID < all[j].ID
	})

	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all
}

// Apply records a successful application of a template, incrementing its
// usage counter, and returns the updated template. Increments are
// last-write-wins under concurrent callers.
func (r *Registry) Apply(id string) (*Template, error) {
	r.mu.Lock()
	tmpl, ok := r.templates[id]
	if !ok {
		r.mu.Unlock()
		return nil, errors.ErrTemplateUnknown
	}
	tmpl.UseCount++
	result := tmpl.Clone()
	r.mu.Unlock()

	if r.store != nil {
		if err := r.store.Increment(id); err != nil {
			return nil, errors.WrapWithTier(errors.TierTransient, "persist usage count", err)
		}
	}

	return result, nil
}

// Len returns the number of templates in the catalog.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.templates)
}
