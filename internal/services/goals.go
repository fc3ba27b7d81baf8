package services

import (
	"context"
	"errors"
	"time"

	"github.com/daygrove/daygrove-backend/internal/models"
)

// ErrGoalNotFound is returned by Update when no goal matches the given id.
// Delete deliberately does not return it: deleting a missing id is a no-op.
var ErrGoalNotFound = errors.New("goal not found")

// GoalService owns the per-user goal lists.
type GoalService struct {
	kv KV
}

func NewGoalService(kv KV) *GoalService {
	return &GoalService{kv: kv}
}

func goalsKey(userID string) string {
	return "goals:" + userID
}

func (s *GoalService) List(ctx context.Context, userID string) ([]models.Goal, error) {
	return fetchList[models.Goal](ctx, s.kv, goalsKey(userID))
}

// Create assigns ID and timestamps and prepends the goal to the user's list.
func (s *GoalService) Create(ctx context.Context, userID string, goal models.Goal) (models.Goal, error) {
	now := time.Now().Format(time.RFC3339)
	goal.ID = NewRecordID()
	goal.UserID = userID
	goal.CreatedAt = now
	goal.UpdatedAt = now
	if goal.Priority == "" {
		goal.Priority = models.PriorityMedium
	}
	if goal.Status == "" {
		goal.Status = models.GoalStatusActive
	}

	key := goalsKey(userID)
	goals, err := fetchList[models.Goal](ctx, s.kv, key)
	if err != nil {
		return models.Goal{}, err
	}

	updated := append([]models.Goal{goal}, goals...)
	if err := storeList(ctx, s.kv, key, updated); err != nil {
		return models.Goal{}, err
	}
	return goal, nil
}

// Update shallow-merges the partial update over the first goal with a matching
// id, refreshes UpdatedAt and writes the list back with the goal in place.
// A progress update without an explicit status derives the status: reaching
// 100 completes the goal, anything lower reactivates it.
func (s *GoalService) Update(ctx context.Context, userID, goalID string, updates models.GoalUpdate) (models.Goal, error) {
	key := goalsKey(userID)
	goals, err := fetchList[models.Goal](ctx, s.kv, key)
	if err != nil {
		return models.Goal{}, err
	}

	idx := -1
	for i := range goals {
		if goals[i].ID == goalID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return models.Goal{}, ErrGoalNotFound
	}

	goals[idx] = mergeGoal(goals[idx], updates)
	goals[idx].UpdatedAt = time.Now().Format(time.RFC3339)

	if err := storeList(ctx, s.kv, key, goals); err != nil {
		return models.Goal{}, err
	}
	return goals[idx], nil
}

// Delete removes the goal with the matching id. Absence of a match is not an
// error; the list is written back unchanged.
func (s *GoalService) Delete(ctx context.Context, userID, goalID string) error {
	key := goalsKey(userID)
	goals, err := fetchList[models.Goal](ctx, s.kv, key)
	if err != nil {
		return err
	}

	filtered := make([]models.Goal, 0, len(goals))
	for _, g := range goals {
		if g.ID != goalID {
			filtered = append(filtered, g)
		}
	}
	return storeList(ctx, s.kv, key, filtered)
}

func mergeGoal(goal models.Goal, updates models.GoalUpdate) models.Goal {
	if updates.Title != nil {
		goal.Title = *updates.Title
	}
	if updates.Description != nil {
		goal.Description = *updates.Description
	}
	if updates.Category != nil {
		goal.Category = *updates.Category
	}
	if updates.Priority != nil {
		goal.Priority = *updates.Priority
	}
	if updates.TargetDate != nil {
		goal.TargetDate = *updates.TargetDate
	}
	if updates.Progress != nil {
		goal.Progress = clampProgress(*updates.Progress)
	}
	switch {
	case updates.Status != nil:
		goal.Status = *updates.Status
	case updates.Progress != nil && goal.Progress >= 100:
		goal.Status = models.GoalStatusCompleted
	case updates.Progress != nil:
		goal.Status = models.GoalStatusActive
	}
	return goal
}

func clampProgress(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
