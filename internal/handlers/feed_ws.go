package handlers

import (
	"net/http"

	"github.com/daygrove/daygrove-backend/internal/services"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var feedUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// CORS is enforced at the HTTP layer; the feed is read-only broadcast.
		return true
	},
}

type FeedHandler struct {
	hub *services.FeedHub
}

func NewFeedHandler(hub *services.FeedHub) *FeedHandler {
	return &FeedHandler{hub: hub}
}

// Live handles GET /ws/community: a read-only stream of newly created
// community posts. No authentication; the feed mirrors the public list.
func (h *FeedHandler) Live(w http.ResponseWriter, r *http.Request) {
	conn, err := feedUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	id := uuid.NewString()
	h.hub.Register(id, conn)
	defer func() {
		h.hub.Unregister(id)
		conn.Close()
	}()

	// Drain client frames so pings are answered and closes are noticed.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
