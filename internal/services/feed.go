package services

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/daygrove/daygrove-backend/internal/models"
	"github.com/redis/go-redis/v9"
)

// feedChannel is the Redis pub/sub channel community post events travel on, so
// every server instance fans out posts created on any instance.
const feedChannel = "community:events"

// FeedEvent is the payload broadcast over Redis and WebSocket.
type FeedEvent struct {
	Type string               `json:"type"`
	Post models.CommunityPost `json:"post"`
}

// FeedConn is the minimal interface a WebSocket connection must satisfy.
type FeedConn interface {
	WriteJSON(v interface{}) error
	Close() error
}

// FeedHub relays newly created community posts to connected WebSocket clients
// via Redis pub/sub. Implements PostPublisher.
type FeedHub struct {
	client *redis.Client

	mu    sync.RWMutex
	conns map[string]FeedConn
}

func NewFeedHub(client *redis.Client) *FeedHub {
	return &FeedHub{
		client: client,
		conns:  make(map[string]FeedConn),
	}
}

// PublishPost pushes a post event onto the shared channel.
func (h *FeedHub) PublishPost(ctx context.Context, post models.CommunityPost) error {
	payload, err := json.Marshal(FeedEvent{Type: "post_created", Post: post})
	if err != nil {
		return err
	}
	return h.client.Publish(ctx, feedChannel, payload).Err()
}

// Start subscribes to the feed channel and fans incoming events out to local
// connections until ctx is cancelled.
func (h *FeedHub) Start(ctx context.Context) {
	sub := h.client.Subscribe(ctx, feedChannel)
	go func() {
		defer sub.Close()
		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var event FeedEvent
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					log.Printf("feed: dropping malformed event: %v", err)
					continue
				}
				h.broadcast(event)
			}
		}
	}()
}

// Register adds a connection under a caller-chosen id, replacing any previous
// connection with the same id.
func (h *FeedHub) Register(id string, conn FeedConn) {
	h.mu.Lock()
	if old, ok := h.conns[id]; ok {
		old.Close()
	}
	h.conns[id] = conn
	h.mu.Unlock()
}

// Unregister removes a connection.
func (h *FeedHub) Unregister(id string) {
	h.mu.Lock()
	delete(h.conns, id)
	h.mu.Unlock()
}

func (h *FeedHub) broadcast(event FeedEvent) {
	h.mu.RLock()
	stale := make([]string, 0)
	for id, conn := range h.conns {
		if err := conn.WriteJSON(event); err != nil {
			stale = append(stale, id)
		}
	}
	h.mu.RUnlock()

	for _, id := range stale {
		h.Unregister(id)
	}
}
