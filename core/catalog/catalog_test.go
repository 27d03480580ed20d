package catalog

import (
	"path/filepath"
	"strings"
	"testing"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	r, err := NewRegistry(nil)
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}
	return r
}

func TestNewRegistry_SeedsCatalog(t *testing.T) {
	r := newTestRegistry(t)

	if r.Len() != 10 {
		t.Errorf("Len() = %d, want 10", r.Len())
	}
}

func TestGet_KnownID(t *testing.T) {
	r := newTestRegistry(t)

	tmpl := r.Get("goal-setting")
	if tmpl == nil {
		t.Fatal("Get(goal-setting) returned nil")
	}
	if tmpl.Name != "Goal Setting & Tracking" {
		t.Errorf("Name = %s", tmpl.Name)
	}
}

func TestGet_UnknownIDReturnsNil(t *testing.T) {
	r := newTestRegistry(t)

	if r.Get("no-such-template") != nil {
		t.Error("unknown id should return nil")
	}
}

func TestGet_ReturnsClone(t *testing.T) {
	r := newTestRegistry(t)

	a := r.Get("goal-setting")
	a.Name = "mutated"
	a.Keywords[0] = "mutated"

	b := r.Get("goal-setting")
	if b.Name == "mutated" || b.Keywords[0] == "mutated" {
		t.Error("Get should return a copy, not internal state")
	}
}

func TestByCategory(t *testing.T) {
	r := newTestRegistry(t)

	business := r.ByCategory("business")
	if len(business) != 3 {
		t.Errorf("business templates = %d, want 3", len(business))
	}

	for _, tmpl := range business {
		if tmpl.Category != "business" {
			t.Errorf("template %s has category %s", tmpl.ID, tmpl.Category)
		}
	}

	if got := r.ByCategory("nonexistent"); len(got) != 0 {
		t.Errorf("unknown category should be empty, got %d", len(got))
	}
}

func TestCategories_Sorted(t *testing.T) {
	r := newTestRegistry(t)

	categories := r.Categories()
	want := []string{"business", "creative", "education", "health", "personal", "technology"}

	if len(categories) != len(want) {
		t.Fatalf("Categories() = %v, want %v", categories, want)
	}
	for i, c := range want {
		if categories[i] != c {
			t.Errorf("Categories()[%d] = %s, want %s", i, categories[i], c)
		}
	}
}

func TestStructure_ContainsFiveSections(t *testing.T) {
	r := newTestRegistry(t)
	headers := []string{"#CONTEXT", "#GOAL", "#INFORMATION", "#RESPONSE GUIDELINES", "#OUTPUT"}

	for _, tmpl := range r.All() {
		for _, h := range headers {
			if !strings.Contains(tmpl.Structure, h) {
				t.Errorf("template %s missing section header %s", tmpl.ID, h)
			}
		}
	}
}

func TestEffectiveness_InRange(t *testing.T) {
	r := newTestRegistry(t)

	for _, tmpl := range r.All() {
		if tmpl.Effectiveness < 0 || tmpl.Effectiveness > 100 {
			t.Errorf("template %s effectiveness %d out of range", tmpl.ID, tmpl.Effectiveness)
		}
	}
}

func TestApply_IncrementsUseCount(t *testing.T) {
	r := newTestRegistry(t)

	for i := 0; i < 3; i++ {
		if _, err := r.Apply("content-creation"); err != nil {
			t.Fatalf("Apply failed: %v", err)
		}
	}

	tmpl := r.Get("content-creation")
	if tmpl.UseCount != 3 {
		t.Errorf("UseCount = %d, want 3", tmpl.UseCount)
	}
}

func TestApply_UnknownID(t *testing.T) {
	r := newTestRegistry(t)

	if _, err := r.Apply("no-such-template"); err == nil {
		t.Error("Apply with unknown id should fail")
	}
}

func TestPopular_OrdersByUseCount(t *testing.T) {
	r := newTestRegistry(t)

	for i := 0; i < 5; i++ {
		r.Apply("wellness-plan")
	}
	for i := 0; i < 2; i++ {
		r.Apply("business-strategy")
	}

	popular := r.Popular(3)
	if len(popular) != 3 {
		t.Fatalf("Popular(3) returned %d templates", len(popular))
	}
	if popular[0].ID != "wellness-plan" {
		t.Errorf("most popular = %s, want wellness-plan", popular[0].ID)
	}
	if popular[1].ID != "business-strategy" {
		t.Errorf("second = %s, want business-strategy", popular[1].ID)
	}
}

func TestPopular_ZeroLimitReturnsAll(t *testing.T) {
	r := newTestRegistry(t)

	if got := len(r.Popular(0)); got != 10 {
		t.Errorf("Popular(0) = %d templates, want 10", got)
	}
}

func TestUsageStore_PersistsAcrossRegistries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "usage.db")

	store, err := NewUsageStore(path)
	if err != nil {
		t.Fatalf("NewUsageStore failed: %v", err)
	}

	r1, err := NewRegistry(store)
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}
	for i := 0; i < 4; i++ {
		if _, err := r1.Apply("goal-setting"); err != nil {
			t.Fatalf("Apply failed: %v", err)
		}
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	store2, err := NewUsageStore(path)
	if err != nil {
		t.Fatalf("reopen store failed: %v", err)
	}
	defer store2.Close()

	r2, err := NewRegistry(store2)
	if err != nil {
		t.Fatalf("NewRegistry with restored store failed: %v", err)
	}

	tmpl := r2.Get("goal-setting")
	if tmpl.UseCount != 4 {
		t.Errorf("restored UseCount = %d, want 4", tmpl.UseCount)
	}
}

func TestUsageStore_CountUnknownID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "usage.db")

	store, err := NewUsageStore(path)
	if err != nil {
		t.Fatalf("NewUsageStore failed: %v", err)
	}
	defer store.Close()

	count, err := store.Count("never-used")
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 0 {
		t.Errorf("Count = %d, want 0", count)
	}
}
