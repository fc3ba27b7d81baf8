package services

import (
	"context"
	"errors"
	"testing"

	"github.com/daygrove/daygrove-backend/internal/models"
)

func TestEntryServiceListAbsentUser(t *testing.T) {
	svc := NewEntryService(newMemKV())

	entries, err := svc.List(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty list for unknown user, got %d entries", len(entries))
	}
}

func TestEntryServiceAppendPrepends(t *testing.T) {
	svc := NewEntryService(newMemKV())
	ctx := context.Background()

	first, err := svc.Append(ctx, "u1", models.JournalEntry{Title: "first"})
	if err != nil {
		t.Fatalf("Append first: %v", err)
	}
	if first.ID == "" || first.Date == "" {
		t.Fatal("Append must assign id and date")
	}
	if first.UserID != "u1" {
		t.Fatalf("UserID = %q, want u1", first.UserID)
	}

	second, err := svc.Append(ctx, "u1", models.JournalEntry{Title: "second"})
	if err != nil {
		t.Fatalf("Append second: %v", err)
	}

	entries, err := svc.List(ctx, "u1")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID != second.ID || entries[1].ID != first.ID {
		t.Fatalf("newest entry must come first: got [%s, %s]", entries[0].Title, entries[1].Title)
	}
}

func TestEntryServiceRejectsUnknownTags(t *testing.T) {
	svc := NewEntryService(newMemKV())
	ctx := context.Background()

	_, err := svc.Append(ctx, "u1", models.JournalEntry{
		Title:     "bad area",
		LifeAreas: []string{"health", "astrology"},
	})
	if !errors.Is(err, ErrUnknownTag) {
		t.Fatalf("expected ErrUnknownTag for lifeAreas, got %v", err)
	}

	_, err = svc.Append(ctx, "u1", models.JournalEntry{
		Title:    "bad emotion",
		Emotions: []string{"euphoric"},
	})
	if !errors.Is(err, ErrUnknownTag) {
		t.Fatalf("expected ErrUnknownTag for emotions, got %v", err)
	}

	// Nothing may be stored after a rejected append.
	entries, err := svc.List(ctx, "u1")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("rejected entries must not be stored, got %d", len(entries))
	}
}

func TestEntryServiceIgnoresClientID(t *testing.T) {
	svc := NewEntryService(newMemKV())

	entry, err := svc.Append(context.Background(), "u1", models.JournalEntry{
		ID:     "client-chosen",
		UserID: "someone-else",
		Title:  "hello",
	})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if entry.ID == "client-chosen" {
		t.Fatal("server must assign its own entry id")
	}
	if entry.UserID != "u1" {
		t.Fatalf("UserID = %q, want u1", entry.UserID)
	}
}

func TestCleanGratitude(t *testing.T) {
	got := cleanGratitude([]string{"  ", "family", "", "health", "work", "extra"})
	if len(got) != 3 {
		t.Fatalf("expected 3 items, got %v", got)
	}
	if got[0] != "family" || got[1] != "health" || got[2] != "work" {
		t.Fatalf("unexpected items: %v", got)
	}
}
