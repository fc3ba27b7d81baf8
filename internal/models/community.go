package models

// CommunityPost lives in the single global posts list. The stored list keeps at
// most the 100 most-recent posts; reads serve only the first 20. Comments is a
// counter only, no comment bodies are stored.
type CommunityPost struct {
	ID           string   `json:"id"`
	UserID       string   `json:"userId"`
	Author       string   `json:"author"`
	Avatar       string   `json:"avatar"`
	Title        string   `json:"title"`
	Content      string   `json:"content"`
	Date         string   `json:"date"`
	Likes        int      `json:"likes"`
	Comments     int      `json:"comments"`
	LifeAreas    []string `json:"lifeAreas"`
	GoalAchieved bool     `json:"goalAchieved"`
	Mood         int      `json:"mood"`
	LikedBy      []string `json:"likedBy"`
}
