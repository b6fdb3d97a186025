package inspector

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/circuitplay/circuitplay/internal/core/circuit"
	"github.com/circuitplay/circuitplay/internal/core/config"
	"github.com/circuitplay/circuitplay/internal/core/observability/log"
)

func dial(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func testSnapshot() circuit.Snapshot {
	return circuit.Snapshot{
		Buttons: []circuit.ButtonState{{ID: "a", State: true}},
		Gates:   []circuit.GateState{{ID: "not1", Kind: "NOT", Inputs: []string{"a"}, Output: false}},
		LEDs:    []circuit.LEDState{{ID: "led1", On: false}},
	}
}

func TestClientReceivesLatestFrameOnConnect(t *testing.T) {
	s := New(config.Default().Inspector, log.Nop())
	s.Publish("not_level", 42, testSnapshot())

	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	conn := dial(t, ts)
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))

	var frame Frame
	require.NoError(t, conn.ReadJSON(&frame))
	assert.Equal(t, "not_level", frame.Level)
	assert.Equal(t, uint64(42), frame.Frame)
	require.Len(t, frame.Snapshot.Buttons, 1)
	assert.True(t, frame.Snapshot.Buttons[0].State)
	assert.Equal(t, "NOT", frame.Snapshot.Gates[0].Kind)
}

func TestBroadcastDeliversNewFrames(t *testing.T) {
	settings := config.Default().Inspector
	settings.IntervalMS = 10
	s := New(settings, log.Nop())
	s.Publish("lvl", 1, testSnapshot())

	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	conn := dial(t, ts)
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))

	var first Frame
	require.NoError(t, conn.ReadJSON(&first))
	assert.Equal(t, uint64(1), first.Frame)

	s.Publish("lvl", 2, testSnapshot())
	go func() {
		// the broadcaster normally runs from Start; drive one round here
		time.Sleep(20 * time.Millisecond)
		s.broadcast()
	}()

	var second Frame
	require.NoError(t, conn.ReadJSON(&second))
	assert.Equal(t, uint64(2), second.Frame)
}

func TestBroadcastSkipsWhenClean(t *testing.T) {
	s := New(config.Default().Inspector, log.Nop())
	// no clients, no published frame: must be a no-op
	assert.NotPanics(t, func() { s.broadcast() })
}
