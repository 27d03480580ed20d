package transform

import (
	"github.com/adalundhe/promptforge/core/analysis"
)

// Per-domain and per-intent fragment tables. The transformer renders a
// prompt by combining one domain row with one intent row; the tables are
// the whole of the generation logic, so wording changes happen here.

type domainFragments struct {
	expertRole   string
	contextBase  string
	infoRequired []string
}

var fragmentsByDomain = map[analysis.Domain]domainFragments{
	analysis.DomainBusiness: {
		expertRole:  "You are a senior business consultant with over 15 years of experience in strategy, operations, and market analysis.",
		contextBase: "The request concerns a business setting where commercial outcomes, stakeholders, and competitive dynamics matter.",
		infoRequired: []string{
			"The industry, market, and competitive landscape involved",
			"Key business metrics and commercial constraints",
			"Stakeholders affected and decision-making authority",
		},
	},
	analysis.DomainTechnology: {
		expertRole:  "You are a principal software engineer with deep expertise in system design, development practices, and technical communication.",
		contextBase: "The request concerns a technical setting where correctness, maintainability, and clear engineering trade-offs matter.",
		infoRequired: []string{
			"The technologies, platforms, and versions in use",
			"Performance, scale, and compatibility constraints",
			"The technical proficiency of the intended readers",
		},
	},
	analysis.DomainCreative: {
		expertRole:  "You are an accomplished creative director with expertise in storytelling, content strategy, and audience engagement.",
		contextBase: "The request concerns creative work where voice, originality, and emotional resonance with the audience matter.",
		infoRequired: []string{
			"The tone, voice, and style the work should carry",
			"The audience and the response it should evoke",
			"Length, format, and brand constraints",
		},
	},
	analysis.DomainEducation: {
		expertRole:  "You are an experienced educator and instructional designer skilled at making complex subjects accessible.",
		contextBase: "The request concerns a learning setting where comprehension, retention, and learner progression matter.",
		infoRequired: []string{
			"The learners' current level and background knowledge",
			"Learning objectives and assessment criteria",
			"Available time and preferred learning formats",
		},
	},
	analysis.DomainHealth: {
		expertRole:  "You are a certified health and wellness professional with expertise in fitness, nutrition, and sustainable habit formation.",
		contextBase: "The request concerns personal health where safety, sustainability, and individual constraints matter.",
		infoRequired: []string{
			"Current health status and any medical constraints",
			"Specific wellness goals and their timeline",
			"Schedule, equipment, and dietary preferences",
		},
	},
	analysis.DomainPersonal: {
		expertRole:  "You are a professional development coach specializing in goal achievement, productivity, and behavior change.",
		contextBase: "The request concerns personal growth where motivation, accountability, and realistic pacing matter.",
		infoRequired: []string{
			"The current situation and the desired future state",
			"Past attempts and known obstacles",
			"Available time and support systems",
		},
	},
	analysis.DomainGeneral: {
		expertRole:  "You are a knowledgeable professional consultant with broad expertise across multiple disciplines.",
		contextBase: "The request spans general subject matter; approach it with professional rigor and practical judgment.",
		infoRequired: []string{
			"The background and motivation behind the request",
			"Constraints on scope, time, or resources",
			"How the response will be used",
		},
	},
}

type intentFragments struct {
	goal            string
	contextAddendum string
	guidelines      []string
	outputSpec      []string
}

var fragmentsByIntent = map[analysis.Intent]intentFragments{
	analysis.IntentContentCreation: {
		goal:            "Create comprehensive, engaging content that serves the audience's needs and fulfills the stated purpose completely.",
		contextAddendum: "The task is to produce new content from the requirements below.",
		guidelines: []string{
			"Open with a hook that earns continued attention",
			"Support every claim with concrete detail or evidence",
			"Match the voice and register to the intended audience",
		},
		outputSpec: []string{
			"A complete, ready-to-use draft",
			"A suggested title or headline",
			"Clear section structure with headings where appropriate",
		},
	},
	analysis.IntentAnalysis: {
		goal:            "Deliver a thorough, objective analysis that surfaces the most decision-relevant findings and their implications.",
		contextAddendum: "The task is to examine the subject below and report findings.",
		guidelines: []string{
			"Separate observations from interpretation",
			"Quantify findings wherever the material allows",
			"State the limitations of the analysis explicitly",
		},
		outputSpec: []string{
			"Key findings ranked by significance",
			"Supporting evidence for each finding",
			"Concrete recommendations with expected impact",
		},
	},
	analysis.IntentPlanning: {
		goal:            "Produce an actionable plan with clear milestones, owners, and success criteria that can be executed as written.",
		contextAddendum: "The task is to plan the work described below.",
		guidelines: []string{
			"Sequence steps by dependency, not preference",
			"Attach a measurable outcome to every milestone",
			"Identify the risks most likely to derail the plan",
		},
		outputSpec: []string{
			"A phased plan with dated milestones",
			"Success criteria for each phase",
			"A risk register with mitigations",
		},
	},
	analysis.IntentEducation: {
		goal:            "Explain the subject so the learner builds genuine understanding, progressing from fundamentals to applied competence.",
		contextAddendum: "The task is to teach the subject described below.",
		guidelines: []string{
			"Introduce one concept at a time, building on the last",
			"Pair every concept with a concrete example",
			"Check understanding before increasing difficulty",
		},
		outputSpec: []string{
			"A structured explanation ordered by prerequisite",
			"Worked examples for each key concept",
			"Practice exercises with increasing difficulty",
		},
	},
	analysis.IntentOptimization: {
		goal:            "Identify the highest-impact improvements and describe precisely how to implement them.",
		contextAddendum: "The task is to improve the subject described below.",
		guidelines: []string{
			"Measure the current state before recommending change",
			"Rank improvements by impact relative to effort",
			"Prefer removing waste over adding machinery",
		},
		outputSpec: []string{
			"A prioritized list of improvements",
			"Implementation steps for each improvement",
			"Metrics to verify each improvement landed",
		},
	},
	analysis.IntentGeneral: {
		goal:            "Address the request thoroughly and practically, resolving the underlying need rather than just the literal question.",
		contextAddendum: "The task is to respond to the request below.",
		guidelines: []string{
			"Answer the underlying need, not just the literal ask",
			"Be concrete; avoid generic advice",
			"Flag assumptions made where the request is ambiguous",
		},
		outputSpec: []string{
			"A direct, complete response to the request",
			"Reasoning for any judgment calls made",
			"Suggested next steps where applicable",
		},
	},
}

// Fixed descriptive lists attached to every transformation result. They
// describe the transformation recipe itself, which is identical for all
// inputs, so the lists never vary.
func appliedImprovements() []string {
	return []string{
		"Added expert role definition",
		"Established clear context",
		"Defined specific goals",
		"Specified information requirements",
		"Set output format expectations",
	}
}

func appliedTechniques() []string {
	return []string{
		"Role-based expert framing",
		"Structured five-section format",
		"Explicit information requirements",
		"Actionable response guidelines",
		"Defined output specification",
	}
}

func domainFragmentsFor(d analysis.Domain) domainFragments {
	if f, ok := fragmentsByDomain[d]; ok {
		return f
	}
	return fragmentsByDomain[analysis.DomainGeneral]
}

func intentFragmentsFor(i analysis.Intent) intentFragments {
	if f, ok := fragmentsByIntent[i]; ok {
		return f
	}
	return fragmentsByIntent[analysis.IntentGeneral]
}
