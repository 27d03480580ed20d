package matcher

import (
	"testing"

	"github.com/adalundhe/promptforge/core/catalog"
)

func newTestMatcher(t *testing.T) *Matcher {
	t.Helper()

	registry, err := catalog.NewRegistry(nil)
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}

	m, err := NewMatcher(registry, 0)
	if err != nil {
		t.Fatalf("NewMatcher failed: %v", err)
	}
	return m
}

func TestNewMatcher_MemoSize(t *testing.T) {
	registry, err := catalog.NewRegistry(nil)
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}

	m, err := NewMatcher(registry, 1)
	if err != nil {
		t.Fatalf("NewMatcher failed: %v", err)
	}

	m.DetectTemplate("track my goals")
	m.DetectTemplate("write a blog post")

	if got := m.memo.Len(); got != 1 {
		t.Errorf("memo holds %d entries, want 1 at capacity 1", got)
	}

	fallback, err := NewMatcher(registry, 0)
	if err != nil {
		t.Fatalf("NewMatcher failed: %v", err)
	}

	fallback.DetectTemplate("track my goals")
	fallback.DetectTemplate("write a blog post")

	if got := fallback.memo.Len(); got != 2 {
		t.Errorf("memo holds %d entries, want 2 under the default capacity", got)
	}
}

func TestDetectTemplate_GoalSetting(t *testing.T) {
	m := newTestMatcher(t)

	match := m.DetectTemplate("Help me set and track goals for my business launch")

	if match.SuggestedTemplate == nil {
		t.Fatal("expected a suggested template")
	}
	if match.SuggestedTemplate.ID != "goal-setting" {
		t.Errorf("suggested = %s, want goal-setting", match.SuggestedTemplate.ID)
	}
	if match.Confidence <= 40 {
		t.Errorf("confidence = %f, want > 40", match.Confidence)
	}
}

func TestDetectTemplate_NoConfidentMatch(t *testing.T) {
	m := newTestMatcher(t)

	match := m.DetectTemplate("xyzzy quux frobnicate")

	if match.SuggestedTemplate != nil {
		t.Errorf("expected no suggestion, got %s", match.SuggestedTemplate.ID)
	}
	if match.Reasoning != ReasoningNone {
		t.Errorf("reasoning = %q, want the no-match string", match.Reasoning)
	}
}

func TestDetectTemplate_LowConfidenceIsNotAnError(t *testing.T) {
	m := newTestMatcher(t)

	match := m.DetectTemplate("completely unrelated gibberish")
	if match == nil {
		t.Fatal("low confidence must return a valid match result, not nil")
	}
}

func TestDetectTemplate_Idempotent(t *testing.T) {
	m := newTestMatcher(t)
	text := "write a blog article for our content strategy"

	first := m.DetectTemplate(text)
	second := m.DetectTemplate(text)

	if first.Confidence != second.Confidence {
		t.Errorf("confidence changed between calls: %f vs %f", first.Confidence, second.Confidence)
	}
	if (first.SuggestedTemplate == nil) != (second.SuggestedTemplate == nil) {
		t.Fatal("suggestion presence changed between calls")
	}
	if first.SuggestedTemplate != nil && first.SuggestedTemplate.ID != second.SuggestedTemplate.ID {
		t.Errorf("suggestion changed between calls: %s vs %s",
			first.SuggestedTemplate.ID, second.SuggestedTemplate.ID)
	}
}

func TestDetectTemplate_ConfidenceCapped(t *testing.T) {
	m := newTestMatcher(t)

	// Every keyword of the goal-setting template plus more.
	match := m.DetectTemplate("set goal goals track tracking milestones progress business marketing campaign")

	if match.Confidence > 100 {
		t.Errorf("confidence = %f, want <= 100", match.Confidence)
	}
}

func TestDetectTemplate_Alternatives(t *testing.T) {
	m := newTestMatcher(t)

	match := m.DetectTemplate("Help me set and track goals for my business launch")

	if len(match.Alternatives) != 3 {
		t.Fatalf("alternatives = %d, want 3", len(match.Alternatives))
	}
	for _, alt := range match.Alternatives {
		if alt.ID == "goal-setting" {
			t.Error("suggested template should not appear among alternatives")
		}
	}
}

func TestDetectTemplate_ReasoningBands(t *testing.T) {
	m := newTestMatcher(t)

	strong := m.DetectTemplate("set and track goals with milestones and progress tracking")
	if strong.Confidence > 70 && strong.Reasoning != ReasoningStrong {
		t.Errorf("reasoning = %q, want strong band", strong.Reasoning)
	}

	none := m.DetectTemplate("qwerty asdf zxcv")
	if none.Reasoning != ReasoningNone {
		t.Errorf("reasoning = %q, want none band", none.Reasoning)
	}
}

func TestDetectTemplate_NormalizesWhitespaceAndCase(t *testing.T) {
	m := newTestMatcher(t)

	a := m.DetectTemplate("Track my GOALS")
	b := m.DetectTemplate("  track   my goals  ")

	if a.Confidence != b.Confidence {
		t.Errorf("normalization should make these equivalent: %f vs %f", a.Confidence, b.Confidence)
	}
}

func TestScoreTemplate_EffectivenessWeighting(t *testing.T) {
	tmpl := &catalog.Template{
		ID:            "t",
		Keywords:      []string{"alpha", "beta"},
		Effectiveness: 50,
	}

	// Two exact matches at 10 points each, halved by effectiveness.
	score := scoreTemplate("alpha beta", []string{"alpha", "beta"}, tmpl)
	if score != 10 {
		t.Errorf("score = %f, want 10", score)
	}
}

func TestScoreTemplate_PartialMatch(t *testing.T) {
	tmpl := &catalog.Template{
		ID:            "t",
		Keywords:      []string{"tracking"},
		Effectiveness: 100,
	}

	// "track" is not a substring match for "tracking" but overlaps
	// partially: 5 points.
	score := scoreTemplate("track", []string{"track"}, tmpl)
	if score != 5 {
		t.Errorf("score = %f, want 5", score)
	}
}
