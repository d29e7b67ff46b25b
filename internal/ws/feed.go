// Package ws streams charger status events to WebSocket clients.
package ws

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"voltedge/internal/events"
)

// Feed upgrades HTTP connections and pushes charger status events.
type Feed struct {
	hub          *events.Hub
	logger       *zap.Logger
	writeTimeout time.Duration
	pingInterval time.Duration
	upgrader     websocket.Upgrader
}

// NewFeed builds the status feed handler.
func NewFeed(hub *events.Hub, logger *zap.Logger) *Feed {
	return &Feed{
		hub:          hub,
		logger:       logger,
		writeTimeout: 10 * time.Second,
		pingInterval: 30 * time.Second,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// HandleWS is the HTTP handler for the /ws/status endpoint.
func (f *Feed) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := f.upgrader.Upgrade(w, r, nil)
	if err != nil {
		f.logger.Error("websocket upgrade failed", zap.Error(err))
		return
	}

	sub, cancel := f.hub.Subscribe(16)
	done := make(chan struct{})

	// Read pump: the feed is one-way, reads only drain control frames and
	// detect the client going away.
	go func() {
		defer close(done)
		conn.SetReadLimit(512)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	go f.writePump(conn, sub, cancel, done)
	f.logger.Info("status feed client connected", zap.String("remote", r.RemoteAddr))
}

func (f *Feed) writePump(conn *websocket.Conn, sub <-chan events.ChargerStatus, cancel func(), done <-chan struct{}) {
	ticker := time.NewTicker(f.pingInterval)
	defer func() {
		ticker.Stop()
		cancel()
		_ = conn.Close()
	}()

	for {
		select {
		case <-done:
			return
		case event, ok := <-sub:
			if !ok {
				return
			}
			conn.SetWriteDeadline(time.Now().Add(f.writeTimeout))
			if err := conn.WriteJSON(event); err != nil {
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(f.writeTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, []byte("ping")); err != nil {
				return
			}
		}
	}
}
