package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/daygrove/daygrove-backend/internal/models"
)

type recordingPublisher struct {
	posts []models.CommunityPost
}

func (p *recordingPublisher) PublishPost(_ context.Context, post models.CommunityPost) error {
	p.posts = append(p.posts, post)
	return nil
}

func TestCommunityServiceCreate(t *testing.T) {
	pub := &recordingPublisher{}
	svc := NewCommunityService(newMemKV(), pub)
	ctx := context.Background()

	post, err := svc.Create(ctx, models.CommunityPost{
		UserID:  "u1",
		Author:  "Ada",
		Title:   "small win",
		Content: "went for a run",
		Likes:   99,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if post.ID == "" || post.Date == "" {
		t.Fatal("Create must assign id and date")
	}
	if post.Likes != 0 || post.Comments != 0 {
		t.Fatalf("counters must start at zero, got likes=%d comments=%d", post.Likes, post.Comments)
	}
	if post.LikedBy == nil || len(post.LikedBy) != 0 {
		t.Fatalf("LikedBy must start empty, got %v", post.LikedBy)
	}
	if post.Mood != 7 {
		t.Fatalf("default mood = %d, want 7", post.Mood)
	}
	if len(pub.posts) != 1 || pub.posts[0].ID != post.ID {
		t.Fatalf("post must be published to the live feed, got %v", pub.posts)
	}
}

func TestCommunityServiceStoredCap(t *testing.T) {
	kv := newMemKV()
	svc := NewCommunityService(kv, nil)
	ctx := context.Background()

	var oldest models.CommunityPost
	for i := 0; i < maxStoredPosts+1; i++ {
		post, err := svc.Create(ctx, models.CommunityPost{
			UserID: "u1", Author: "Ada",
			Title: fmt.Sprintf("post %d", i), Content: "c",
		})
		if err != nil {
			t.Fatalf("Create %d: %v", i, err)
		}
		if i == 0 {
			oldest = post
		}
	}

	stored, err := fetchList[models.CommunityPost](ctx, kv, communityKey)
	if err != nil {
		t.Fatalf("fetchList: %v", err)
	}
	if len(stored) != maxStoredPosts {
		t.Fatalf("stored list = %d posts, want %d", len(stored), maxStoredPosts)
	}
	for _, p := range stored {
		if p.ID == oldest.ID {
			t.Fatal("oldest post must be evicted when the cap is exceeded")
		}
	}
}

func TestCommunityServiceListCap(t *testing.T) {
	svc := NewCommunityService(newMemKV(), nil)
	ctx := context.Background()

	for i := 0; i < maxServedPosts+5; i++ {
		if _, err := svc.Create(ctx, models.CommunityPost{
			UserID: "u1", Author: "Ada",
			Title: fmt.Sprintf("post %d", i), Content: "c",
		}); err != nil {
			t.Fatalf("Create %d: %v", i, err)
		}
	}

	posts, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(posts) != maxServedPosts {
		t.Fatalf("List returned %d posts, want %d", len(posts), maxServedPosts)
	}
	// Newest first.
	if posts[0].Title != fmt.Sprintf("post %d", maxServedPosts+4) {
		t.Fatalf("newest post must come first, got %q", posts[0].Title)
	}
}

func TestCommunityServiceToggleLike(t *testing.T) {
	svc := NewCommunityService(newMemKV(), nil)
	ctx := context.Background()

	post, err := svc.Create(ctx, models.CommunityPost{
		UserID: "author", Author: "Ada", Title: "t", Content: "c",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	liked, likes, err := svc.ToggleLike(ctx, post.ID, "u2")
	if err != nil {
		t.Fatalf("ToggleLike: %v", err)
	}
	if !liked || likes != 1 {
		t.Fatalf("first toggle: liked=%v likes=%d, want true/1", liked, likes)
	}

	liked, likes, err = svc.ToggleLike(ctx, post.ID, "u2")
	if err != nil {
		t.Fatalf("ToggleLike: %v", err)
	}
	if liked || likes != 0 {
		t.Fatalf("second toggle: liked=%v likes=%d, want false/0", liked, likes)
	}
}

func TestCommunityServiceToggleLikeUnknownPost(t *testing.T) {
	svc := NewCommunityService(newMemKV(), nil)

	_, _, err := svc.ToggleLike(context.Background(), "missing", "u2")
	if !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestCommunityServiceUnlikeFloorsAtZero(t *testing.T) {
	kv := newMemKV()
	svc := NewCommunityService(kv, nil)
	ctx := context.Background()

	// A post whose counter drifted out of sync with likedBy.
	stale := models.CommunityPost{
		ID:      "p1",
		UserID:  "author",
		Likes:   0,
		LikedBy: []string{"u2"},
	}
	if err := storeList(ctx, kv, communityKey, []models.CommunityPost{stale}); err != nil {
		t.Fatalf("storeList: %v", err)
	}

	liked, likes, err := svc.ToggleLike(ctx, "p1", "u2")
	if err != nil {
		t.Fatalf("ToggleLike: %v", err)
	}
	if liked {
		t.Fatal("u2 was in likedBy, toggle must unlike")
	}
	if likes != 0 {
		t.Fatalf("likes = %d, must not go below zero", likes)
	}
}
