package ws

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"lareserve-backend/utils"
)

// SessionEvent mirrors the auth-state-change callback of the admin client:
// subscribers learn when a session is opened or closed.
type SessionEvent struct {
	Event string    `json:"event"` // "signed_in" | "signed_out"
	Email string    `json:"email"`
	At    time.Time `json:"at"`
}

// SessionHub fans session events out to connected admin clients.
type SessionHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan SessionEvent
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex
}

func NewSessionHub() *SessionHub {
	return &SessionHub{
		clients:    make(map[*websocket.Conn]bool),
		// Buffered so publishers are not dropped while the hub is busy
		// writing to subscribers.
		broadcast:  make(chan SessionEvent, 16),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

func (h *SessionHub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteJSON(ev); err != nil {
					slog.Warn("ws write error", "error", err)
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Publish queues an event for all subscribers. Non-blocking even when the
// hub is not running (startup, tests); events are dropped only once the
// buffer is full.
func (h *SessionHub) Publish(event, email string) {
	select {
	case h.broadcast <- SessionEvent{Event: event, Email: email, At: time.Now()}:
	default:
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /admin/session/events (behind the auth middleware).
func (h *SessionHub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.Warn("ws upgrade error", "error", err)
		return
	}
	slog.Info("session events subscriber connected",
		"admin_id", utils.CurrentAdminID(c), "role", utils.CurrentRole(c))
	h.register <- conn

	// Drain reads until the client hangs up.
	go func() {
		defer func() { h.unregister <- conn }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
