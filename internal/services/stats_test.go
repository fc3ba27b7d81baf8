package services

import (
	"math"
	"testing"
	"time"

	"github.com/daygrove/daygrove-backend/internal/models"
)

func entryOn(t time.Time) models.JournalEntry {
	return models.JournalEntry{Date: t.Format(time.RFC3339)}
}

func TestCurrentStreak(t *testing.T) {
	now := time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC)
	day := func(offset int) time.Time { return now.AddDate(0, 0, -offset) }

	tests := []struct {
		name    string
		entries []models.JournalEntry
		want    int
	}{
		{"no entries", nil, 0},
		{"today only", []models.JournalEntry{entryOn(day(0))}, 1},
		{"today and yesterday", []models.JournalEntry{entryOn(day(0)), entryOn(day(1))}, 2},
		{"gap breaks the streak", []models.JournalEntry{entryOn(day(0)), entryOn(day(1)), entryOn(day(3))}, 2},
		{"no entry today", []models.JournalEntry{entryOn(day(1)), entryOn(day(2))}, 0},
		{
			"same day counted once",
			[]models.JournalEntry{
				entryOn(day(0)),
				entryOn(day(0).Add(-2 * time.Hour)),
				entryOn(day(1)),
			},
			2,
		},
		{
			"unsorted input",
			[]models.JournalEntry{entryOn(day(2)), entryOn(day(0)), entryOn(day(1))},
			3,
		},
		{"unparseable dates skipped", []models.JournalEntry{{Date: "not-a-date"}, entryOn(day(0))}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CurrentStreak(tt.entries, now); got != tt.want {
				t.Fatalf("CurrentStreak = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestComputeJournalStatsEmpty(t *testing.T) {
	stats := ComputeJournalStats(nil, time.Now())

	if stats.TotalEntries != 0 {
		t.Fatalf("TotalEntries = %d, want 0", stats.TotalEntries)
	}
	if stats.AverageMood != 0 || stats.AverageMotivation != 0 {
		t.Fatalf("averages should be 0 for an empty list, got mood=%v motivation=%v",
			stats.AverageMood, stats.AverageMotivation)
	}
	if stats.GoalAchievementRate != 0 {
		t.Fatalf("GoalAchievementRate = %v, want 0", stats.GoalAchievementRate)
	}
	if stats.LifeAreaFrequency == nil || stats.EmotionFrequency == nil {
		t.Fatal("frequency maps must be non-nil")
	}
}

func TestComputeJournalStats(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	entries := []models.JournalEntry{
		{Date: now.Format(time.RFC3339), Mood: 8, Motivation: 7, GoalAchieved: true,
			LifeAreas: []string{"health", "career"}, Emotions: []string{"grateful"}},
		{Date: now.AddDate(0, 0, -2).Format(time.RFC3339), Mood: 6, Motivation: 5,
			LifeAreas: []string{"health"}, Emotions: []string{"grateful", "calm"}},
		{Date: now.AddDate(0, 0, -10).Format(time.RFC3339), Mood: 4, Motivation: 3, GoalAchieved: true},
		{Date: now.AddDate(0, 0, -11).Format(time.RFC3339), Mood: 5, Motivation: 6},
		{Date: now.AddDate(0, 0, -12).Format(time.RFC3339), Mood: 7, Motivation: 9},
	}

	stats := ComputeJournalStats(entries, now)

	if stats.TotalEntries != 5 {
		t.Fatalf("TotalEntries = %d, want 5", stats.TotalEntries)
	}
	if stats.EntriesThisWeek != 2 {
		t.Fatalf("EntriesThisWeek = %d, want 2", stats.EntriesThisWeek)
	}
	if want := 6.0; math.Abs(stats.AverageMood-want) > 1e-9 {
		t.Fatalf("AverageMood = %v, want %v", stats.AverageMood, want)
	}
	if want := 6.0; math.Abs(stats.AverageMotivation-want) > 1e-9 {
		t.Fatalf("AverageMotivation = %v, want %v", stats.AverageMotivation, want)
	}
	if stats.GoalsAchieved != 2 {
		t.Fatalf("GoalsAchieved = %d, want 2", stats.GoalsAchieved)
	}
	if want := 0.4; math.Abs(stats.GoalAchievementRate-want) > 1e-9 {
		t.Fatalf("GoalAchievementRate = %v, want %v", stats.GoalAchievementRate, want)
	}
	if stats.LifeAreaFrequency["health"] != 2 {
		t.Fatalf("LifeAreaFrequency[health] = %d, want 2", stats.LifeAreaFrequency["health"])
	}
	if stats.LifeAreaFrequency["career"] != 1 {
		t.Fatalf("LifeAreaFrequency[career] = %d, want 1", stats.LifeAreaFrequency["career"])
	}
	if stats.EmotionFrequency["grateful"] != 2 {
		t.Fatalf("EmotionFrequency[grateful] = %d, want 2", stats.EmotionFrequency["grateful"])
	}
}
