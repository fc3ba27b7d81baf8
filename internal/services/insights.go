package services

import (
	"context"
	"math/rand"
	"strings"
)

// InsightRequest carries the entry fields the generator may draw on.
type InsightRequest struct {
	Content      string   `json:"content"`
	Mood         int      `json:"mood"`
	Emotions     []string `json:"emotions"`
	LifeAreas    []string `json:"lifeAreas"`
	Challenges   []string `json:"challenges"`
	Achievements []string `json:"achievements"`
}

// InsightGenerator produces a short reflective text for a journal entry. The
// default implementation is template substitution; a model-backed generator
// can be swapped in without touching callers.
type InsightGenerator interface {
	Generate(ctx context.Context, req InsightRequest) (string, error)
}

// TemplateInsights picks the first template whose condition matches the entry
// and fills in its placeholders. No stored state, no external calls.
type TemplateInsights struct{}

func NewTemplateInsights() *TemplateInsights {
	return &TemplateInsights{}
}

type insightTemplate struct {
	matches func(InsightRequest) bool
	text    string
}

var insightTemplates = []insightTemplate{
	{
		matches: func(r InsightRequest) bool { return r.Mood >= 8 },
		text:    "Your high mood score suggests you're in a positive mental state. This is an excellent time to tackle challenging goals and build momentum in your {primaryArea} journey.",
	},
	{
		matches: func(r InsightRequest) bool { return r.Mood <= 4 },
		text:    "Your mood indicates you might be going through a difficult period. Remember that this is temporary, and focusing on {primaryArea} activities could help improve your emotional state.",
	},
	{
		matches: func(r InsightRequest) bool { return hasTag(r.Emotions, "grateful") },
		text:    "Your gratitude practice is showing positive effects on your mindset. Research shows that grateful individuals tend to have better {primaryArea} outcomes and stronger resilience.",
	},
	{
		matches: func(r InsightRequest) bool {
			return hasTag(r.Emotions, "anxious") || hasTag(r.Emotions, "stressed")
		},
		text: "The anxiety you're experiencing is common during growth periods. Consider incorporating mindfulness practices into your {primaryArea} routine to manage stress more effectively.",
	},
	{
		matches: func(r InsightRequest) bool { return len(r.Achievements) > 0 },
		text:    "Celebrating your achievements like '{achievement}' is crucial for maintaining motivation. This success in {primaryArea} shows your capability to overcome challenges.",
	},
	{
		matches: func(r InsightRequest) bool { return len(r.Challenges) > 0 },
		text:    "The challenges you're facing with {challenge} are growth opportunities in disguise. Your awareness of these obstacles is the first step toward overcoming them.",
	},
	{
		matches: func(r InsightRequest) bool { return hasTag(r.LifeAreas, "health") },
		text:    "Your focus on health is foundational to all other life areas. The mind-body connection means that improvements in physical wellness often lead to enhanced {secondaryArea} performance.",
	},
	{
		matches: func(r InsightRequest) bool { return hasTag(r.LifeAreas, "career") },
		text:    "Career development requires consistent effort and strategic thinking. Your current emotional state suggests you're {moodState} positioned to make meaningful professional progress.",
	},
}

func (g *TemplateInsights) Generate(_ context.Context, req InsightRequest) (string, error) {
	tmpl := insightTemplates[rand.Intn(len(insightTemplates))]
	for _, t := range insightTemplates {
		if t.matches(req) {
			tmpl = t
			break
		}
	}

	primaryArea := firstOr(req.LifeAreas, "personal growth")
	secondaryArea := "overall well-being"
	if len(req.LifeAreas) > 1 {
		secondaryArea = req.LifeAreas[1]
	}
	achievement := firstOr(req.Achievements, "your recent accomplishment")
	challenge := firstOr(req.Challenges, "current obstacles")

	moodState := "currently challenged but still"
	switch {
	case req.Mood >= 7:
		moodState = "well"
	case req.Mood >= 5:
		moodState = "moderately"
	}

	replacer := strings.NewReplacer(
		"{primaryArea}", untag(primaryArea),
		"{secondaryArea}", untag(secondaryArea),
		"{achievement}", untag(achievement),
		"{challenge}", untag(challenge),
		"{moodState}", moodState,
	)
	return replacer.Replace(tmpl.text), nil
}

func hasTag(tags []string, want string) bool {
	for _, t := range tags {
		if t == want {
			return true
		}
	}
	return false
}

func firstOr(list []string, fallback string) string {
	if len(list) > 0 {
		return list[0]
	}
	return fallback
}

// untag turns a vocabulary tag into display text ("personal-growth" -> "personal growth").
func untag(s string) string {
	return strings.ReplaceAll(s, "-", " ")
}
