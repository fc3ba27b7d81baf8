package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/daygrove/daygrove-backend/internal/models"
)

// ErrUnknownTag is returned when an entry carries a life-area or emotion tag
// outside the closed vocabulary.
var ErrUnknownTag = errors.New("unknown tag")

const maxGratitudeItems = 3

// EntryService owns the per-user journal entry lists. Every mutation is a
// fetch of the whole list, an in-memory transform and a whole-list write back
// under the same key.
type EntryService struct {
	kv KV
}

func NewEntryService(kv KV) *EntryService {
	return &EntryService{kv: kv}
}

func entriesKey(userID string) string {
	return "journal-entries-" + userID
}

// List returns the user's entries, newest first. A user with no stored list
// gets an empty slice, not an error.
func (s *EntryService) List(ctx context.Context, userID string) ([]models.JournalEntry, error) {
	return fetchList[models.JournalEntry](ctx, s.kv, entriesKey(userID))
}

// Append validates the entry, assigns server-side ID and timestamp, and
// prepends it to the user's list. Existing entries keep their order.
func (s *EntryService) Append(ctx context.Context, userID string, entry models.JournalEntry) (models.JournalEntry, error) {
	if err := validateTags(entry.LifeAreas, models.LifeAreas); err != nil {
		return models.JournalEntry{}, fmt.Errorf("lifeAreas: %w", err)
	}
	if err := validateTags(entry.Emotions, models.Emotions); err != nil {
		return models.JournalEntry{}, fmt.Errorf("emotions: %w", err)
	}

	entry.ID = NewRecordID()
	entry.UserID = userID
	entry.Date = time.Now().Format(time.RFC3339)
	entry.Gratitude = cleanGratitude(entry.Gratitude)

	key := entriesKey(userID)
	entries, err := fetchList[models.JournalEntry](ctx, s.kv, key)
	if err != nil {
		return models.JournalEntry{}, err
	}

	updated := append([]models.JournalEntry{entry}, entries...)
	if err := storeList(ctx, s.kv, key, updated); err != nil {
		return models.JournalEntry{}, err
	}
	return entry, nil
}

// validateTags checks each tag against a closed vocabulary.
func validateTags(tags []string, vocabulary []string) error {
	for _, tag := range tags {
		ok := false
		for _, v := range vocabulary {
			if tag == v {
				ok = true
				break
			}
		}
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownTag, tag)
		}
	}
	return nil
}

// cleanGratitude drops blank items and caps the list at three.
func cleanGratitude(items []string) []string {
	out := make([]string, 0, maxGratitudeItems)
	for _, item := range items {
		if strings.TrimSpace(item) == "" {
			continue
		}
		if len(out) == maxGratitudeItems {
			break
		}
		out = append(out, item)
	}
	return out
}
