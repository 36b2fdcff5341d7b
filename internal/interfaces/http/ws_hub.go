package httpinterface

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

const (
	wsReadDeadline = 60 * time.Second
	wsPingInterval = 30 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(_ *http.Request) bool {
		return true
	},
}

// wsHub fans the published events out to the connected websocket clients.
type wsHub struct {
	clients    map[*websocket.Conn]struct{}
	broadcast  chan []byte
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	quit       chan struct{}
	mtx        sync.RWMutex
}

func newWSHub() *wsHub {
	return &wsHub{
		clients:    make(map[*websocket.Conn]struct{}),
		broadcast:  make(chan []byte, 256),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		quit:       make(chan struct{}),
	}
}

// run is the hub main loop, must be called in a goroutine.
func (h *wsHub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mtx.Lock()
			h.clients[conn] = struct{}{}
			numClients := len(h.clients)
			h.mtx.Unlock()

			websocketClients.Set(float64(numClients))
			log.Debugf("ws client connected, %d connected overall", numClients)

		case conn := <-h.unregister:
			h.mtx.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			numClients := len(h.clients)
			h.mtx.Unlock()

			websocketClients.Set(float64(numClients))

		case msg := <-h.broadcast:
			var dead []*websocket.Conn
			h.mtx.RLock()
			for conn := range h.clients {
				if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
					dead = append(dead, conn)
				}
			}
			h.mtx.RUnlock()

			if len(dead) > 0 {
				h.mtx.Lock()
				for _, conn := range dead {
					conn.Close()
					delete(h.clients, conn)
				}
				numClients := len(h.clients)
				h.mtx.Unlock()

				websocketClients.Set(float64(numClients))
			}

		case <-h.quit:
			h.mtx.Lock()
			for conn := range h.clients {
				conn.Close()
				delete(h.clients, conn)
			}
			h.mtx.Unlock()

			websocketClients.Set(0)
			return
		}
	}
}

func (h *wsHub) stop() {
	close(h.quit)
}

// broadcastMessage enqueues a message for all connected clients, dropping it
// if the buffer is full to never block the caller.
func (h *wsHub) broadcastMessage(msg []byte) {
	select {
	case h.broadcast <- msg:
	default:
	}
}

// handleWS upgrades the request and registers the client on the hub.
func (h *wsHub) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Warn("ws upgrade failed")
		return
	}

	h.register <- conn

	// Read pump, keeps the connection alive and detects disconnections.
	go func() {
		defer func() {
			select {
			case h.unregister <- conn:
			case <-h.quit:
			}
		}()
		// nolint
		conn.SetReadDeadline(time.Now().Add(wsReadDeadline))
		conn.SetPongHandler(func(string) error {
			// nolint
			conn.SetReadDeadline(time.Now().Add(wsReadDeadline))
			return nil
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
	}()

	// Ping ticker to keep the connection alive through proxies.
	go func() {
		ticker := time.NewTicker(wsPingInterval)
		defer ticker.Stop()
		for range ticker.C {
			h.mtx.RLock()
			_, ok := h.clients[conn]
			h.mtx.RUnlock()
			if !ok {
				return
			}
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}()
}
