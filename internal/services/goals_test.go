package services

import (
	"context"
	"errors"
	"testing"

	"github.com/daygrove/daygrove-backend/internal/models"
)

func TestGoalServiceCreateDefaults(t *testing.T) {
	svc := NewGoalService(newMemKV())

	goal, err := svc.Create(context.Background(), "u1", models.Goal{Title: "run a 10k"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if goal.ID == "" || goal.CreatedAt == "" || goal.UpdatedAt == "" {
		t.Fatal("Create must assign id and timestamps")
	}
	if goal.Priority != models.PriorityMedium {
		t.Fatalf("Priority = %q, want medium", goal.Priority)
	}
	if goal.Status != models.GoalStatusActive {
		t.Fatalf("Status = %q, want active", goal.Status)
	}
}

func TestGoalServiceUpdateNotFound(t *testing.T) {
	svc := NewGoalService(newMemKV())

	_, err := svc.Update(context.Background(), "u1", "nope", models.GoalUpdate{})
	if !errors.Is(err, ErrGoalNotFound) {
		t.Fatalf("expected ErrGoalNotFound, got %v", err)
	}
}

func TestGoalServiceProgressDerivesStatus(t *testing.T) {
	svc := NewGoalService(newMemKV())
	ctx := context.Background()

	goal, err := svc.Create(ctx, "u1", models.Goal{Title: "ship"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	progress := 100
	updated, err := svc.Update(ctx, "u1", goal.ID, models.GoalUpdate{Progress: &progress})
	if err != nil {
		t.Fatalf("Update to 100: %v", err)
	}
	if updated.Status != models.GoalStatusCompleted {
		t.Fatalf("Status after progress 100 = %q, want completed", updated.Status)
	}

	progress = 40
	updated, err = svc.Update(ctx, "u1", goal.ID, models.GoalUpdate{Progress: &progress})
	if err != nil {
		t.Fatalf("Update to 40: %v", err)
	}
	if updated.Status != models.GoalStatusActive {
		t.Fatalf("Status after progress 40 = %q, want active", updated.Status)
	}
	if updated.Progress != 40 {
		t.Fatalf("Progress = %d, want 40", updated.Progress)
	}
}

func TestGoalServiceExplicitStatusWins(t *testing.T) {
	svc := NewGoalService(newMemKV())
	ctx := context.Background()

	goal, err := svc.Create(ctx, "u1", models.Goal{Title: "read more"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	progress := 100
	status := models.GoalStatusActive
	updated, err := svc.Update(ctx, "u1", goal.ID, models.GoalUpdate{Progress: &progress, Status: &status})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Status != models.GoalStatusActive {
		t.Fatalf("explicit status must win over derived, got %q", updated.Status)
	}
}

func TestGoalServiceClampsProgress(t *testing.T) {
	svc := NewGoalService(newMemKV())
	ctx := context.Background()

	goal, err := svc.Create(ctx, "u1", models.Goal{Title: "stretch"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	progress := 150
	updated, err := svc.Update(ctx, "u1", goal.ID, models.GoalUpdate{Progress: &progress})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Progress != 100 {
		t.Fatalf("Progress = %d, want 100", updated.Progress)
	}

	progress = -5
	updated, err = svc.Update(ctx, "u1", goal.ID, models.GoalUpdate{Progress: &progress})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Progress != 0 {
		t.Fatalf("Progress = %d, want 0", updated.Progress)
	}
}

func TestGoalServiceDeleteMissingIsNoOp(t *testing.T) {
	svc := NewGoalService(newMemKV())
	ctx := context.Background()

	goal, err := svc.Create(ctx, "u1", models.Goal{Title: "keep me"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(ctx, "u1", "missing-id"); err != nil {
		t.Fatalf("Delete of missing id must succeed, got %v", err)
	}

	goals, err := svc.List(ctx, "u1")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(goals) != 1 || goals[0].ID != goal.ID {
		t.Fatalf("list must be unchanged after deleting a missing id, got %v", goals)
	}
}

func TestGoalServiceDelete(t *testing.T) {
	svc := NewGoalService(newMemKV())
	ctx := context.Background()

	a, _ := svc.Create(ctx, "u1", models.Goal{Title: "a"})
	b, _ := svc.Create(ctx, "u1", models.Goal{Title: "b"})

	if err := svc.Delete(ctx, "u1", a.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	goals, err := svc.List(ctx, "u1")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(goals) != 1 || goals[0].ID != b.ID {
		t.Fatalf("expected only %q to remain, got %v", b.Title, goals)
	}
}
