// Package stream implements a bt.Observer that broadcasts trace events as
// JSON frames over WebSocket to any number of connected clients.
package stream

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/gorilla/websocket"

	"github.com/skyrocket-qy/decisiontree/bt"
)

// FrameKind tags which bt.Observer callback produced a Frame.
type FrameKind string

const (
	FrameEnter           FrameKind = "enter"
	FrameExit            FrameKind = "exit"
	FrameBlackboardWrite FrameKind = "blackboard_write"
	FrameUtilityScore    FrameKind = "utility_score"
)

// Frame is the JSON wire shape of one trace event.
type Frame struct {
	Kind FrameKind `json:"kind"`

	NodeID int    `json:"node_id,omitempty"`
	Status string `json:"status,omitempty"`

	Key   int32 `json:"key,omitempty"`
	Value int32 `json:"value,omitempty"`

	ActionIndex int     `json:"action_index,omitempty"`
	Score       float64 `json:"score,omitempty"`
}

// client is one connected WebSocket subscriber.
type client struct {
	id       uint32
	conn     *websocket.Conn
	send     chan Frame
	isClosed bool
	mu       sync.RWMutex
}

func (c *client) Send(f Frame) {
	c.mu.RLock()
	closed := c.isClosed
	c.mu.RUnlock()

	if closed {
		return
	}

	select {
	case c.send <- f:
	default:
		// queue full, drop frame rather than block the tick
	}
}

func (c *client) Close() {
	c.mu.Lock()

	if c.isClosed {
		c.mu.Unlock()

		return
	}

	c.isClosed = true
	c.mu.Unlock()

	close(c.send)
	c.conn.Close()
}

func (c *client) writePump() {
	for f := range c.send {
		data, err := json.Marshal(f)
		if err != nil {
			continue
		}

		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			return
		}
	}
}

func (c *client) readPump(onDisconnect func(uint32)) {
	defer onDisconnect(c.id)

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// Server is a bt.Observer that fans every trace callback out to every
// connected WebSocket client as a JSON Frame.
type Server struct {
	clients  map[uint32]*client
	nextID   uint32
	upgrader websocket.Upgrader
	mu       sync.RWMutex
}

// NewServer builds a Server accepting connections from any origin.
func NewServer() *Server {
	return &Server{
		clients: make(map[uint32]*client),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Handler returns the http.HandlerFunc to mount at a WebSocket endpoint
// (conventionally "/trace").
func (s *Server) Handler() http.HandlerFunc {
	return s.handleWebSocket
}

// ListenAndServe mounts the handler at /trace and blocks, serving on addr.
func (s *Server) ListenAndServe(addr string) error {
	http.HandleFunc("/trace", s.handleWebSocket)
	log.Printf("observer/stream: listening on %s", addr)

	return http.ListenAndServe(addr, nil)
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("observer/stream: upgrade error: %v", err)

		return
	}

	id := atomic.AddUint32(&s.nextID, 1)
	c := &client{id: id, conn: conn, send: make(chan Frame, 256)}

	s.mu.Lock()
	s.clients[id] = c
	s.mu.Unlock()

	go c.writePump()
	go c.readPump(s.disconnect)
}

func (s *Server) disconnect(id uint32) {
	s.mu.Lock()

	c, ok := s.clients[id]
	if ok {
		delete(s.clients, id)
	}

	s.mu.Unlock()

	if ok {
		c.Close()
	}
}

func (s *Server) broadcast(f Frame) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.clients {
		c.Send(f)
	}
}

// ClientCount returns the number of connected clients.
func (s *Server) ClientCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.clients)
}

// OnEnter implements bt.Observer.
func (s *Server) OnEnter(nodeID int) {
	s.broadcast(Frame{Kind: FrameEnter, NodeID: nodeID})
}

// OnExit implements bt.Observer.
func (s *Server) OnExit(nodeID int, status bt.Status) {
	s.broadcast(Frame{Kind: FrameExit, NodeID: nodeID, Status: status.String()})
}

// OnBlackboardWrite implements bt.Observer.
func (s *Server) OnBlackboardWrite(key int32, value bt.BlackboardValue) {
	raw := int32(0)
	if i, ok := value.Int(); ok {
		raw = i
	} else if f, ok := value.Fixed(); ok {
		raw = int32(f)
	} else if b, ok := value.Bool(); ok && b {
		raw = 1
	}

	s.broadcast(Frame{Kind: FrameBlackboardWrite, Key: key, Value: raw})
}

// OnUtilityScore implements bt.Observer.
func (s *Server) OnUtilityScore(actionIndex int, score float64) {
	s.broadcast(Frame{Kind: FrameUtilityScore, ActionIndex: actionIndex, Score: score})
}
