package monitor

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/lixenwraith/planar/engine"
)

// BodyState is the wire form of one body snapshot
type BodyState struct {
	ID       string       `json:"id"`
	Position [2]float64   `json:"position"`
	Velocity [2]float64   `json:"velocity"`
	Static   bool         `json:"static"`
	Vertices [][2]float64 `json:"vertices"`
}

// Frame is one broadcast payload
type Frame struct {
	Tick   uint64      `json:"tick"`
	Bodies []BodyState `json:"bodies"`
}

// Monitor streams body snapshots to websocket clients. It is strictly a
// read-only collaborator: it enumerates bodies between ticks and never
// mutates simulation state. A fault while writing to a client drops that
// client; it never reaches the tick path.
type Monitor struct {
	engine   *engine.Engine
	log      *zap.Logger
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

// New wires a monitor to an engine. A nil logger disables logging.
func New(eng *engine.Engine, logger *zap.Logger) *Monitor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Monitor{
		engine: eng,
		log:    logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		clients: make(map[*websocket.Conn]struct{}),
	}
}

// ServeHTTP upgrades the connection and keeps it registered until the peer
// closes
func (m *Monitor) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := m.upgrader.Upgrade(w, r, nil)
	if err != nil {
		m.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	m.mu.Lock()
	m.clients[conn] = struct{}{}
	n := len(m.clients)
	m.mu.Unlock()
	m.log.Info("monitor client connected", zap.Int("clients", n))

	// Reads are discarded; the read loop only detects peer close
	go func() {
		defer m.drop(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// ClientCount returns the number of connected clients
func (m *Monitor) ClientCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.clients)
}

// Snapshot captures the current body states
func (m *Monitor) Snapshot() Frame {
	bodies := m.engine.Bodies()
	frame := Frame{
		Tick:   m.engine.Ticks(),
		Bodies: make([]BodyState, 0, len(bodies)),
	}
	for _, b := range bodies {
		tv := b.Polygon().TransformedVertices()
		verts := make([][2]float64, len(tv))
		for i, v := range tv {
			verts[i] = [2]float64{v.X.Float(), v.Y.Float()}
		}
		pos := b.Position()
		vel := b.Velocity()
		frame.Bodies = append(frame.Bodies, BodyState{
			ID:       b.ID().String(),
			Position: [2]float64{pos.X.Float(), pos.Y.Float()},
			Velocity: [2]float64{vel.X.Float(), vel.Y.Float()},
			Static:   b.IsStatic(),
			Vertices: verts,
		})
	}
	return frame
}

// Broadcast pushes one snapshot to every client. Call it once per frame,
// between engine updates.
func (m *Monitor) Broadcast() {
	m.mu.Lock()
	if len(m.clients) == 0 {
		m.mu.Unlock()
		return
	}
	conns := make([]*websocket.Conn, 0, len(m.clients))
	for c := range m.clients {
		conns = append(conns, c)
	}
	m.mu.Unlock()

	payload, err := json.Marshal(m.Snapshot())
	if err != nil {
		m.log.Error("snapshot marshal failed", zap.Error(err))
		return
	}

	for _, c := range conns {
		if err := c.WriteMessage(websocket.TextMessage, payload); err != nil {
			m.log.Warn("client write failed, dropping", zap.Error(err))
			m.drop(c)
		}
	}
}

// Close disconnects every client
func (m *Monitor) Close() {
	m.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(m.clients))
	for c := range m.clients {
		conns = append(conns, c)
	}
	m.mu.Unlock()
	for _, c := range conns {
		m.drop(c)
	}
}

func (m *Monitor) drop(conn *websocket.Conn) {
	m.mu.Lock()
	_, ok := m.clients[conn]
	delete(m.clients, conn)
	m.mu.Unlock()
	if ok {
		_ = conn.Close()
	}
}
