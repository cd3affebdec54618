// Package transport exposes hosted sessions to remote UI clients over
// websockets. Output is coalesced over a short window so that bursty
// PTY writes (a redrawing TUI app) arrive as a single frame instead of
// flooding the socket.
package transport

import (
	"encoding/base64"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/vtcore/vtcore/internal/session"
)

// Message is the wire envelope sent to subscribers.
type Message struct {
	Type      string `json:"type"` // "output", "exit", "title"
	SessionID int    `json:"session_id"`
	Data      string `json:"data,omitempty"` // base64 of the screen's plain text for "output"
	ExitCode  int    `json:"exit_code,omitempty"`
	Title     string `json:"title,omitempty"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Hub fans session output out to connected websocket clients.
type Hub struct {
	mu          sync.Mutex
	clients     map[*websocket.Conn]chan Message
	clientIDs   map[*websocket.Conn]string
	coalesceFor func() time.Duration
}

// NewHub returns a Hub. coalesceWindow returns the current coalescing
// delay; it is re-read per flush so it can react to a changing session
// count (more sessions → longer delay, reducing event load per spec).
func NewHub(coalesceWindow func() time.Duration) *Hub {
	if coalesceWindow == nil {
		coalesceWindow = func() time.Duration { return 16 * time.Millisecond }
	}
	return &Hub{
		clients:     make(map[*websocket.Conn]chan Message),
		clientIDs:   make(map[*websocket.Conn]string),
		coalesceFor: coalesceWindow,
	}
}

// ServeHTTP upgrades the connection and registers it as a subscriber
// until the client disconnects.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[transport] upgrade: %v", err)
		return
	}
	out := make(chan Message, 64)
	clientID := uuid.NewString()

	h.mu.Lock()
	h.clients[conn] = out
	h.clientIDs[conn] = clientID
	h.mu.Unlock()
	log.Printf("[transport] client %s connected", clientID)

	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		delete(h.clientIDs, conn)
		h.mu.Unlock()
		close(out)
		conn.Close()
		log.Printf("[transport] client %s disconnected", clientID)
	}()

	go h.readLoop(conn)

	for msg := range out {
		conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
		if err := conn.WriteJSON(msg); err != nil {
			return
		}
	}
}

// readLoop reads and discards every inbound frame, only to detect
// disconnects; clients cannot send session input through the hub.
func (h *Hub) readLoop(conn *websocket.Conn) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) broadcast(msg Message) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, out := range h.clients {
		select {
		case out <- msg:
		default:
			// slow subscriber, drop the frame rather than block the hub
		}
	}
}

// Watch streams sess's screen contents (coalesced) to every subscriber
// until sess exits or stop is closed, and broadcasts its exit. Title
// changes are not watched here; they are sent with NotifyTitle.
func (h *Hub) Watch(id int, sess *session.Session, stop <-chan struct{}) {
	go h.streamOutput(id, sess, stop)
	go h.watchExit(id, sess)
}

func (h *Hub) streamOutput(id int, sess *session.Session, stop <-chan struct{}) {
	for {
		select {
		case <-sess.OutputCh:
			deadline := time.After(h.coalesceFor())
		collect:
			for {
				select {
				case <-sess.OutputCh:
				case <-deadline:
					break collect
				case <-stop:
					return
				case <-sess.Done():
					h.flush(id, sess.PlainText())
					return
				}
			}
			h.flush(id, sess.PlainText())
		case <-stop:
			return
		case <-sess.Done():
			return
		}
	}
}

func (h *Hub) flush(id int, text string) {
	b64 := base64.StdEncoding.EncodeToString([]byte(text))
	h.broadcast(Message{Type: "output", SessionID: id, Data: b64})
}

func (h *Hub) watchExit(id int, sess *session.Session) {
	<-sess.Done()
	h.broadcast(Message{Type: "exit", SessionID: id, ExitCode: sess.ExitCode})
}

// NotifyTitle broadcasts a title change for id.
func (h *Hub) NotifyTitle(id int, title string) {
	h.broadcast(Message{Type: "title", SessionID: id, Title: title})
}

// Encode is exposed for callers that need to frame raw bytes the same
// way the hub does (e.g. replaying buffered output to a late subscriber).
func Encode(msg Message) ([]byte, error) {
	return json.Marshal(msg)
}
