package services

import (
	"math"
	"sort"
	"time"

	"github.com/daygrove/daygrove-backend/internal/models"
)

// JournalStats is the aggregate view over one user's entry history. All values
// are recomputed from the full list on every call; nothing is cached.
type JournalStats struct {
	TotalEntries        int            `json:"totalEntries"`
	EntriesThisWeek     int            `json:"entriesThisWeek"`
	AverageMood         float64        `json:"averageMood"`
	AverageMotivation   float64        `json:"averageMotivation"`
	CurrentStreak       int            `json:"currentStreak"`
	GoalsAchieved       int            `json:"goalsAchieved"`
	GoalAchievementRate float64        `json:"goalAchievementRate"`
	LifeAreaFrequency   map[string]int `json:"lifeAreaFrequency"`
	EmotionFrequency    map[string]int `json:"emotionFrequency"`
}

// ComputeJournalStats reduces the entries into display statistics. Pure and
// deterministic given (entries, now); averages and the rate are 0 for an empty
// list rather than NaN.
func ComputeJournalStats(entries []models.JournalEntry, now time.Time) JournalStats {
	stats := JournalStats{
		TotalEntries:      len(entries),
		CurrentStreak:     CurrentStreak(entries, now),
		LifeAreaFrequency: map[string]int{},
		EmotionFrequency:  map[string]int{},
	}

	weekAgo := now.Add(-7 * 24 * time.Hour)
	var moodSum, motivationSum int
	for _, e := range entries {
		moodSum += e.Mood
		motivationSum += e.Motivation
		if e.GoalAchieved {
			stats.GoalsAchieved++
		}
		for _, area := range e.LifeAreas {
			stats.LifeAreaFrequency[area]++
		}
		for _, emotion := range e.Emotions {
			stats.EmotionFrequency[emotion]++
		}
		if t, err := time.Parse(time.RFC3339, e.Date); err == nil {
			if !t.Before(weekAgo) && !t.After(now) {
				stats.EntriesThisWeek++
			}
		}
	}

	if len(entries) > 0 {
		stats.AverageMood = float64(moodSum) / float64(len(entries))
		stats.AverageMotivation = float64(motivationSum) / float64(len(entries))
		stats.GoalAchievementRate = float64(stats.GoalsAchieved) / float64(len(entries))
	}
	return stats
}

// CurrentStreak counts consecutive calendar days ending today that have at
// least one entry. Only the date component matters; entries are truncated to
// midnight in now's location. Multiple entries on one day count once: after a
// day matches, further entries from that day fail the diffDays == streak test
// and are skipped without breaking the walk. No entry today means streak 0.
func CurrentStreak(entries []models.JournalEntry, now time.Time) int {
	days := make([]time.Time, 0, len(entries))
	for _, e := range entries {
		t, err := time.Parse(time.RFC3339, e.Date)
		if err != nil {
			continue
		}
		days = append(days, midnight(t.In(now.Location())))
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	streak := 0
	cursor := midnight(now)
	for _, day := range days {
		diffDays := int(math.Round(cursor.Sub(day).Hours() / 24))
		switch {
		case diffDays == 0:
			streak++
			cursor = cursor.AddDate(0, 0, -1)
		case diffDays < 0:
			// Same day seen again after the cursor already retreated past it.
			continue
		default:
			return streak
		}
	}
	return streak
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
