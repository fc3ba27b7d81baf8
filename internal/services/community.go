package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/daygrove/daygrove-backend/internal/models"
)

// ErrPostNotFound is returned when a like targets a post id not in the list.
var ErrPostNotFound = errors.New("post not found")

const (
	// communityKey holds the single global posts list.
	communityKey = "community:posts"
	// maxStoredPosts caps the stored list; the oldest post is evicted on append.
	maxStoredPosts = 100
	// maxServedPosts caps how many posts a read returns.
	maxServedPosts = 20
)

// PostPublisher receives newly created posts for live fan-out. Publish failures
// must not fail the write that triggered them.
type PostPublisher interface {
	PublishPost(ctx context.Context, post models.CommunityPost) error
}

// CommunityService owns the global community posts list.
type CommunityService struct {
	kv        KV
	publisher PostPublisher
}

func NewCommunityService(kv KV, publisher PostPublisher) *CommunityService {
	return &CommunityService{kv: kv, publisher: publisher}
}

// List returns the most recent posts, capped at 20.
func (s *CommunityService) List(ctx context.Context) ([]models.CommunityPost, error) {
	posts, err := fetchList[models.CommunityPost](ctx, s.kv, communityKey)
	if err != nil {
		return nil, err
	}
	if len(posts) > maxServedPosts {
		posts = posts[:maxServedPosts]
	}
	return posts, nil
}

// Create assigns ID, timestamp and zeroed counters, prepends the post and
// truncates the stored list to the 100 most recent.
func (s *CommunityService) Create(ctx context.Context, post models.CommunityPost) (models.CommunityPost, error) {
	post.ID = NewRecordID()
	post.Date = time.Now().Format(time.RFC3339)
	post.Likes = 0
	post.Comments = 0
	post.LikedBy = []string{}
	if post.LifeAreas == nil {
		post.LifeAreas = []string{}
	}
	if post.Mood == 0 {
		post.Mood = 7
	}

	posts, err := fetchList[models.CommunityPost](ctx, s.kv, communityKey)
	if err != nil {
		return models.CommunityPost{}, err
	}

	updated := append([]models.CommunityPost{post}, posts...)
	if len(updated) > maxStoredPosts {
		updated = updated[:maxStoredPosts]
	}
	if err := storeList(ctx, s.kv, communityKey, updated); err != nil {
		return models.CommunityPost{}, err
	}

	if s.publisher != nil {
		if err := s.publisher.PublishPost(ctx, post); err != nil {
			log.Printf("community: failed to publish post %s to live feed: %v", post.ID, err)
		}
	}
	return post, nil
}

// ToggleLike flips the caller's membership in the post's likedBy set and
// adjusts the counter, floored at zero. Returns the new membership state and
// count rather than the whole post.
func (s *CommunityService) ToggleLike(ctx context.Context, postID, userID string) (liked bool, likes int, err error) {
	posts, err := fetchList[models.CommunityPost](ctx, s.kv, communityKey)
	if err != nil {
		return false, 0, err
	}

	idx := -1
	for i := range posts {
		if posts[i].ID == postID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return false, 0, ErrPostNotFound
	}

	post := &posts[idx]
	hasLiked := false
	for _, id := range post.LikedBy {
		if id == userID {
			hasLiked = true
			break
		}
	}

	if hasLiked {
		kept := make([]string, 0, len(post.LikedBy))
		for _, id := range post.LikedBy {
			if id != userID {
				kept = append(kept, id)
			}
		}
		post.LikedBy = kept
		if post.Likes > 0 {
			post.Likes--
		}
	} else {
		post.LikedBy = append(post.LikedBy, userID)
		post.Likes++
	}

	if err := storeList(ctx, s.kv, communityKey, posts); err != nil {
		return false, 0, err
	}
	return !hasLiked, post.Likes, nil
}
