package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/RoyceNZ/lagom-map/pkg/engine"
)

// runSummary is the message pushed to websocket subscribers after each
// completed regeneration.
type runSummary struct {
	Size     int               `json:"size"`
	Seed     float64           `json:"seed"`
	Year     int               `json:"year"`
	Summary  string            `json:"summary"`
	Counts   []engine.CountRow `json:"counts"`
	Elapsed  int64             `json:"elapsed_ms"`
	Finished string            `json:"finished_at"`
}

// hub fans run summaries out to connected websocket clients.
type hub struct {
	upgrader websocket.Upgrader

	mu    sync.Mutex
	conns map[*websocket.Conn]bool
}

func newHub() *hub {
	return &hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4 * 1024,
			WriteBufferSize: 32 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true }, // dev default
		},
		conns: make(map[*websocket.Conn]bool),
	}
}

func (h *hub) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	h.mu.Lock()
	h.conns[conn] = true
	h.mu.Unlock()

	slog.Info("observer connected", "remote", r.RemoteAddr)

	// Reads are discarded; the socket exists to push summaries. The read
	// loop only notices the peer going away.
	go func() {
		defer h.drop(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (h *hub) drop(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.conns, conn)
	h.mu.Unlock()
	_ = conn.Close()
}

func (h *hub) broadcast(msg runSummary) {
	payload, err := json.Marshal(msg)
	if err != nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		_ = conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			delete(h.conns, conn)
			_ = conn.Close()
		}
	}
}
