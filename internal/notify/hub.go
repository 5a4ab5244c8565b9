package notify

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// noticeFrame is the outgoing WebSocket message format for notifications.
type noticeFrame struct {
	Type     string   `json:"type"` // always "notice"
	Text     string   `json:"text"`
	Severity Severity `json:"severity"`
}

// Hub broadcasts JSON frames to every connected page. It implements
// Notifier, so gallery notifications reach the browser as "notice" frames;
// other packages push their own frame types through Broadcast.
type Hub struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]bool
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{conns: make(map[*websocket.Conn]bool)}
}

// HandleWS upgrades the request and keeps the connection registered until
// the peer closes it. Incoming messages are discarded; the socket is
// push-only.
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("notify: websocket upgrade: %v", err)
		return
	}

	h.mu.Lock()
	h.conns[conn] = true
	h.mu.Unlock()

	defer func() {
		h.drop(conn)
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("notify: websocket read: %v", err)
			}
			return
		}
	}
}

// Broadcast marshals v and writes it to every connected peer. Peers that
// fail to receive are dropped.
func (h *Hub) Broadcast(v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		log.Printf("notify: marshal broadcast: %v", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			delete(h.conns, conn)
			conn.Close()
		}
	}
}

// Notify implements Notifier.
func (h *Hub) Notify(text string, severity Severity) {
	h.Broadcast(noticeFrame{Type: "notice", Text: text, Severity: severity})
}

// Count returns the number of connected peers.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

func (h *Hub) drop(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.conns, conn)
	h.mu.Unlock()
}
