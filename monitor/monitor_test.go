package monitor

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/planar/engine"
	"github.com/lixenwraith/planar/geom"
	"github.com/lixenwraith/planar/physics"
	"github.com/lixenwraith/planar/vmath"
)

func testEngine(t *testing.T) *engine.Engine {
	t.Helper()
	eng, err := engine.New(engine.DefaultConfig(), nil)
	require.NoError(t, err)

	ground := geom.Rect(100, 10)
	ground.Position = vmath.V2(0, -20)
	eng.AddBody(physics.NewRigidBody(ground, 0))

	box := geom.Square(10)
	box.Position = vmath.V2(5, 30)
	b := physics.NewRigidBody(box, 2)
	b.SetVelocity(vmath.V2(1, -1))
	eng.AddBody(b)

	return eng
}

func TestSnapshotReflectsBodies(t *testing.T) {
	eng := testEngine(t)
	m := New(eng, nil)

	frame := m.Snapshot()
	require.Len(t, frame.Bodies, 2)

	ground := frame.Bodies[0]
	assert.True(t, ground.Static)
	assert.Equal(t, [2]float64{0, -20}, ground.Position)
	assert.Len(t, ground.Vertices, 4)

	box := frame.Bodies[1]
	assert.False(t, box.Static)
	assert.Equal(t, [2]float64{1, -1}, box.Velocity)
	assert.NotEmpty(t, box.ID)
}

func TestSnapshotJSONRoundTrip(t *testing.T) {
	m := New(testEngine(t), nil)

	payload, err := json.Marshal(m.Snapshot())
	require.NoError(t, err)

	var decoded Frame
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, m.Snapshot(), decoded)
}

func TestBroadcastToClient(t *testing.T) {
	eng := testEngine(t)
	m := New(eng, nil)
	defer m.Close()

	srv := httptest.NewServer(m)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	// Registration races the dial return; wait for it
	require.Eventually(t, func() bool { return m.ClientCount() == 1 },
		time.Second, 10*time.Millisecond)

	eng.Step()
	m.Broadcast()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)

	var frame Frame
	require.NoError(t, json.Unmarshal(payload, &frame))
	assert.Equal(t, uint64(1), frame.Tick)
	assert.Len(t, frame.Bodies, 2)
}

func TestBroadcastDropsDeadClient(t *testing.T) {
	eng := testEngine(t)
	m := New(eng, nil)
	defer m.Close()

	srv := httptest.NewServer(m)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	require.Eventually(t, func() bool { return m.ClientCount() == 1 },
		time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())
	require.Eventually(t, func() bool { return m.ClientCount() == 0 },
		time.Second, 10*time.Millisecond)

	// Broadcasting with no clients must be a quiet no-op
	m.Broadcast()
}
