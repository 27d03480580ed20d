package analysis

// Keyword tables drive every classification decision. Matching is
// case-insensitive substring containment over the whole input; iteration
// order is significant, so the tables are ordered slices rather than maps.

const minDetailWordCount = 5

type intentEntry struct {
	intent   Intent
	keywords []string
}

// intentKeywords is checked in order; content creation is first.
var intentKeywords = []intentEntry{
	{IntentContentCreation, []string{"write", "create", "generate", "draft", "compose", "blog", "article", "content"}},
	{IntentAnalysis, []string{"analyze", "analysis", "review", "evaluate", "assess", "examine", "compare"}},
	{IntentPlanning, []string{"plan", "strategy", "organize", "schedule", "roadmap", "prepare"}},
	{IntentEducation, []string{"learn", "teach", "explain", "understand", "course", "study"}},
	{IntentOptimization, []string{"optimize", "improve", "enhance", "streamline", "refine"}},
}

type domainEntry struct {
	domain   Domain
	keywords []string
}

// domainKeywords is checked in order; business is first.
var domainKeywords = []domainEntry{
	{DomainBusiness, []string{"business", "marketing", "sales", "revenue", "company", "startup", "linkedin", "market", "customer"}},
	{DomainTechnology, []string{"technology", "software", "code", "programming", "api", "technical", "app", "database"}},
	{DomainCreative, []string{"creative", "design", "story", "art", "novel", "poem", "music", "video"}},
	{DomainEducation, []string{"education", "school", "training", "curriculum", "lesson", "student"}},
	{DomainHealth, []string{"health", "fitness", "wellness", "diet", "exercise", "medical", "nutrition"}},
	{DomainPersonal, []string{"personal", "habit", "lifestyle", "productivity", "self-improvement", "career"}},
}

var advancedMarkers = []string{"comprehensive", "detailed", "advanced"}

var intermediateMarkers = []string{"specific", "professional"}

var audienceTerms = []string{"audience", "reader", "customer", "user", "client"}

var goalTerms = []string{"goal", "objective", "purpose", "aim", "achieve"}

var formatTerms = []string{"format", "structure", "list", "table", "outline", "template"}

// processTerms marks step-wise or procedural requests; used by the
// actionability metric.
var processTerms = []string{"step", "process", "how to", "method", "procedure", "workflow"}

// creationVerbs mirrors the content-creation intent set; used by the
// actionability metric.
var creationVerbs = []string{"write", "create", "generate", "draft", "compose", "build", "develop"}

// expertiseByDomain appends up to two expertise labels per domain.
// The general domain carries none.
var expertiseByDomain = map[Domain][]string{
	DomainBusiness:   {"business strategy", "market analysis"},
	DomainTechnology: {"software engineering", "system architecture"},
	DomainCreative:   {"creative writing", "content design"},
	DomainEducation:  {"instructional design", "curriculum development"},
	DomainHealth:     {"health sciences", "wellness coaching"},
	DomainPersonal:   {"personal development", "productivity coaching"},
}

// frameworkByIntent maps each intent to its suggested framework label.
var frameworkByIntent = map[Intent]string{
	IntentContentCreation: "AIDA (Attention, Interest, Desire, Action)",
	IntentAnalysis:        "SWOT Analysis Framework",
	IntentPlanning:        "SMART Goals + Action Planning",
	IntentEducation:       "Bloom's Taxonomy",
	IntentOptimization:    "Continuous Improvement (PDCA)",
}

const defaultFramework = "Problem-Solution Framework"

func expertiseForDomain(d Domain) []string {
	labels := expertiseByDomain[d]
	return append([]string(nil), labels...)
}

func frameworkForIntent(i Intent) string {
	if fw, ok := frameworkByIntent[i]; ok {
		return fw
	}
	return defaultFramework
}
