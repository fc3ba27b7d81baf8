package models

// JournalEntry is one journal submission by a user. Entries are immutable after
// creation: the stored list is only ever prepended to, with the newest entry at
// the head. Field names match the wire format the web client already speaks.
type JournalEntry struct {
	ID           string   `json:"id"`
	UserID       string   `json:"userId"`
	Title        string   `json:"title"`
	Content      string   `json:"content"`
	Date         string   `json:"date"` // RFC 3339, creation time
	Mood         int      `json:"mood"`
	Motivation   int      `json:"motivation"`
	Energy       int      `json:"energy"`
	LifeAreas    []string `json:"lifeAreas"`
	Emotions     []string `json:"emotions"`
	Challenges   []string `json:"challenges"`
	Achievements []string `json:"achievements"`
	Gratitude    []string `json:"gratitude"` // up to 3, empties dropped before storage
	Goals        string   `json:"goals"`
	GoalAchieved bool     `json:"goalAchieved"`
	Insights     string   `json:"insights"`
	IsPublic     bool     `json:"isPublic"`
}

// LifeAreas is the closed vocabulary for JournalEntry.LifeAreas. Unknown values
// are rejected at the boundary so frequency tables stay well-defined.
var LifeAreas = []string{
	"health",
	"career",
	"relationships",
	"personal-growth",
	"finance",
	"recreation",
	"family",
	"education",
	"spirituality",
	"creativity",
	"travel",
	"community",
}

// Emotions is the closed vocabulary for JournalEntry.Emotions.
var Emotions = []string{
	"grateful",
	"happy",
	"excited",
	"peaceful",
	"confident",
	"motivated",
	"anxious",
	"frustrated",
	"sad",
	"overwhelmed",
	"hopeful",
	"inspired",
	"content",
	"energetic",
	"calm",
	"stressed",
}
