package catalog

// seedTemplates returns the built-in template catalog. Effectiveness
// ratings are hand-curated; the catalog is fixed seed data, not derived.
func seedTemplates() []*Template {
	return []*Template{
		{
			ID:          "business-strategy",
			Name:        "Business Strategy Development",
			Category:    "business",
			Description: "Structured strategic planning prompt for market positioning, growth, and competitive analysis.",
			Keywords:    []string{"business", "strategy", "market", "growth", "revenue", "competitive"},
			Structure: `#CONTEXT
You are advising {company} operating in {industry} facing {challenge}.
#GOAL
Develop an actionable business strategy covering positioning, growth levers, and risks.
#INFORMATION
- Current market position and competitors
- Revenue model and key metrics
- Constraints on budget and timeline
#RESPONSE GUIDELINES
- Ground every recommendation in the stated constraints
- Prioritize initiatives by impact and effort
#OUTPUT
A strategy brief with an executive summary, three prioritized initiatives, and a 90-day plan.`,
			Example:       "Develop a go-to-market strategy for a B2B analytics startup entering the EU market.",
			Effectiveness: 92,
		},
		{
			ID:          "content-creation",
			Name:        "Content Creation Framework",
			Category:    "creative",
			Description: "Audience-aware content brief for blog posts, articles, and marketing copy.",
			Keywords:    []string{"write", "content", "blog", "article", "copy", "post"},
			Structure: `#CONTEXT
You are producing {content_type} for {audience} on {topic}.
#GOAL
Create comprehensive, engaging content that serves the audience's intent.
#INFORMATION
- Target audience and their familiarity with the topic
- Tone, voice, and brand constraints
- Required length and keywords
#RESPONSE GUIDELINES
- Lead with the hook, support with evidence
- Keep paragraphs short and scannable
#OUTPUT
A complete draft with headline options, subheadings, and a call to action.`,
			Example:       "Write a 1200-word blog post introducing zero-trust networking to IT managers.",
			Effectiveness: 88,
		},
		{
			ID:          "goal-setting",
			Name:        "Goal Setting & Tracking",
			Category:    "personal",
			Description: "SMART goal definition with milestone tracking and accountability checkpoints.",
			Keywords:    []string{"goals", "goal", "set", "track", "tracking", "milestones", "progress"},
			Structure: `#CONTEXT
You are coaching someone pursuing {objective} over {timeframe}.
#GOAL
Define SMART goals with measurable milestones and a tracking cadence.
#INFORMATION
- Current baseline and available time per week
- Known obstacles and past attempts
- Support systems and tools in use
#RESPONSE GUIDELINES
- Make every milestone measurable and dated
- Include a weekly review ritual
#OUTPUT
A goal sheet with 3-5 SMART goals, milestone dates, and a progress-tracking table.`,
			Example:       "Help me set and track goals for launching my consulting practice this year.",
			Effectiveness: 90,
		},
		{
			ID:          "technical-documentation",
			Name:        "Technical Documentation",
			Category:    "technology",
			Description: "Developer-facing documentation prompt for APIs, systems, and software components.",
			Keywords:    []string{"technical", "documentation", "api", "code", "software", "system"},
			Structure: `#CONTEXT
You are documenting {component} for {developer_audience}.
#GOAL
Produce accurate, complete documentation a developer can follow without outside help.
#INFORMATION
- Interfaces, parameters, and error conditions
- Runtime requirements and dependencies
- Known limitations and edge cases
#RESPONSE GUIDELINES
- Show a working example before reference detail
- Document failure modes alongside success paths
#OUTPUT
Reference documentation with overview, quickstart, API reference, and troubleshooting sections.`,
			Example:       "Document the retry semantics of our payments webhook API for integration partners.",
			Effectiveness: 86,
		},
		{
			ID:          "learning-path",
			Name:        "Learning Path Design",
			Category:    "education",
			Description: "Curriculum design prompt sequencing skills from fundamentals to mastery.",
			Keywords:    []string{"learn", "course", "curriculum", "teach", "study", "skills"},
			Structure: `#CONTEXT
You are designing a learning path for {learner} aiming to master {subject}.
#GOAL
Sequence topics and exercises from the learner's current level to the target competency.
#INFORMATION
- Current skill level and available study hours
- Preferred learning formats
- Deadline or certification target
#RESPONSE GUIDELINES
- Order topics by prerequisite structure
- Pair every concept with a practice exercise
#OUTPUT
A week-by-week syllabus with resources, exercises, and competency checkpoints.`,
			Example:       "Design a 12-week path to learn backend development in Go for a data analyst.",
			Effectiveness: 87,
		},
		{
			ID:          "data-analysis",
			Name:        "Data Analysis Report",
			Category:    "technology",
			Description: "Analytical reporting prompt turning raw findings into decision-ready insight.",
			Keywords:    []string{"analyze", "analysis", "data", "report", "insights", "metrics"},
			Structure: `#CONTEXT
You are analyzing {dataset} to answer {question} for {stakeholder}.
#GOAL
Deliver findings that directly support the decision at hand.
#INFORMATION
- Data sources, time range, and known quality issues
- Definitions of the metrics involved
- The decision the analysis informs
#RESPONSE GUIDELINES
- Separate observation from interpretation
- Quantify uncertainty where it matters
#OUTPUT
A report with key findings, supporting charts described in text, and recommended actions.`,
			Example:       "Analyze six months of churn data and report drivers segmented by plan tier.",
			Effectiveness: 89,
		},
		{
			ID:          "wellness-plan",
			Name:        "Health & Wellness Plan",
			Category:    "health",
			Description: "Personal wellness planning prompt covering fitness, nutrition, and recovery.",
			Keywords:    []string{"health", "fitness", "wellness", "diet", "exercise", "nutrition"},
			Structure: `#CONTEXT
You are building a wellness plan for someone with {constraints} pursuing {health_goal}.
#GOAL
Create a sustainable plan balancing training, nutrition, and recovery.
#INFORMATION
- Current activity level and medical constraints
- Schedule and equipment availability
- Dietary preferences
#RESPONSE GUIDELINES
- Progress gradually and include rest
- Flag anything that warrants professional medical advice
#OUTPUT
A weekly plan with workouts, meal guidance, and recovery checkpoints.`,
			Example:       "Build an eight-week fitness plan for a desk worker training for a 10k.",
			Effectiveness: 84,
		},
		{
			ID:          "marketing-campaign",
			Name:        "Marketing Campaign Brief",
			Category:    "business",
			Description: "Campaign planning prompt aligning audience, channels, message, and measurement.",
			Keywords:    []string{"marketing", "campaign", "audience", "brand", "promotion", "launch"},
			Structure: `#CONTEXT
You are planning a campaign for {product} targeting {segment} on {channels}.
#GOAL
Design a campaign that moves the target metric within budget.
#INFORMATION
- Audience segments and their channels
- Budget, timeline, and brand guardrails
- The single metric that defines success
#RESPONSE GUIDELINES
- One core message per segment
- Tie every activity to the success metric
#OUTPUT
A campaign brief with messaging matrix, channel plan, budget split, and KPI targets.`,
			Example:       "Plan a product-launch campaign for a meal-kit service targeting busy parents.",
			Effectiveness: 85,
		},
		{
			ID:          "creative-storytelling",
			Name:        "Creative Storytelling",
			Category:    "creative",
			Description: "Narrative construction prompt for fiction, scripts, and brand stories.",
			Keywords:    []string{"story", "creative", "narrative", "character", "fiction", "script"},
			Structure: `#CONTEXT
You are telling a story in {genre} for {audience} with {premise}.
#GOAL
Craft a narrative with a compelling arc and distinct character voices.
#INFORMATION
- Protagonist, stakes, and setting
- Tone and point of view
- Length and format constraints
#RESPONSE GUIDELINES
- Show conflict through action and dialogue
- Every scene must move the arc forward
#OUTPUT
A complete story draft with a one-paragraph logline and scene breakdown.`,
			Example:       "Write a short story about a lighthouse keeper who receives messages from the future.",
			Effectiveness: 82,
		},
		{
			ID:          "process-optimization",
			Name:        "Process Optimization",
			Category:    "business",
			Description: "Continuous-improvement prompt for streamlining workflows and removing waste.",
			Keywords:    []string{"optimize", "improve", "efficiency", "process", "workflow", "streamline"},
			Structure: `#CONTEXT
You are optimizing {process} which currently suffers from {pain_point}.
#GOAL
Identify and eliminate the dominant sources of waste and delay.
#INFORMATION
- Current process steps and cycle times
- Who owns each step and where handoffs occur
- Constraints that cannot change
#RESPONSE GUIDELINES
- Measure before recommending
- Prefer removing steps over adding tools
#OUTPUT
An optimization report with a current-state map, ranked bottlenecks, and an improvement roadmap.`,
			Example:       "Streamline our two-week employee onboarding process down to five days.",
			Effectiveness: 88,
		},
	}
}
