package models

// Goal priority and status values.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"

	GoalStatusActive    = "active"
	GoalStatusCompleted = "completed"
)

// Goal is a user-owned goal stored in the per-user goals list. Progress runs
// 0-100; status flips to completed when a progress update reaches 100.
type Goal struct {
	ID          string `json:"id"`
	UserID      string `json:"userId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Priority    string `json:"priority"`
	Progress    int    `json:"progress"`
	Status      string `json:"status"`
	TargetDate  string `json:"targetDate,omitempty"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// GoalUpdate is a partial update applied over an existing goal. Pointer fields
// distinguish "not provided" from zero values during the shallow merge.
type GoalUpdate struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	Progress    *int    `json:"progress,omitempty"`
	Status      *string `json:"status,omitempty"`
	TargetDate  *string `json:"targetDate,omitempty"`
}
