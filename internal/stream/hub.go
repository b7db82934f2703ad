// Package stream broadcasts completed frame heightmaps to connected
// viewers over a websocket, the thin ambient plumbing between the engine's
// onFrameComplete callback and whatever front end wants to watch a run
// live. The core engine never imports this package; a CLI driver wires it
// in through the callback, keeping the simulation core at arm's length
// from any renderer.
package stream

import (
	"encoding/binary"
	"log"
	"math"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"terra/internal/heightmap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(*http.Request) bool { return true },
}

// Hub fans out frame payloads to every currently connected viewer.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

// NewHub constructs an empty broadcast hub.
func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]struct{})}
}

// ServeHTTP upgrades an incoming HTTP request to a websocket connection and
// registers it as a viewer until it disconnects.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("stream: upgrade failed: %v", err)
		return
	}
	h.mu.Lock()
	h.clients[conn] = struct{}{}
	h.mu.Unlock()

	go func() {
		defer func() {
			h.mu.Lock()
			delete(h.clients, conn)
			h.mu.Unlock()
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// Broadcast encodes frame as a little-endian header (frame number, width,
// height) followed by the row-major float32 elevation data, and sends it
// to every connected viewer. Suitable for direct use as a
// pipeline.FrameCallback.
func (h *Hub) Broadcast(frame int, g *heightmap.Grid) {
	payload := encodeFrame(frame, g)

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.BinaryMessage, payload); err != nil {
			log.Printf("stream: dropping viewer after write error: %v", err)
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

func encodeFrame(frame int, g *heightmap.Grid) []byte {
	data := g.Data()
	buf := make([]byte, 12+4*len(data))
	binary.LittleEndian.PutUint32(buf[0:4], uint32(frame))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(g.W))
	binary.LittleEndian.PutUint32(buf[8:12], uint32(g.H))
	for i, v := range data {
		binary.LittleEndian.PutUint32(buf[12+4*i:16+4*i], math.Float32bits(v))
	}
	return buf
}
