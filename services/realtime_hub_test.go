package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dialTestClient upgrades a server-side connection, registers it with the
// hub, and returns both ends.
func dialTestClient(t *testing.T, hub *RealtimeHub, userID uint) (*WSClient, *websocket.Conn) {
	t.Helper()

	upgrader := websocket.Upgrader{}
	registered := make(chan *WSClient, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			registered <- nil
			return
		}
		cl := &WSClient{UserID: userID, Conn: conn}
		hub.Register(cl)
		registered <- cl
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	clientConn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { clientConn.Close() })

	cl := <-registered
	require.NotNil(t, cl)
	return cl, clientConn
}

func TestBroadcastTotalsReachesUserSockets(t *testing.T) {
	hub := NewRealtimeHub()
	_, clientConn := dialTestClient(t, hub, 7)

	hub.BroadcastTotals(7, DailyTotals{Calories: 300, Protein: 10})

	_, msg, err := clientConn.ReadMessage()
	require.NoError(t, err)

	var frame struct {
		Kind   string      `json:"kind"`
		Totals DailyTotals `json:"totals"`
	}
	require.NoError(t, json.Unmarshal(msg, &frame))
	assert.Equal(t, "totals.updated", frame.Kind)
	assert.Equal(t, 300.0, frame.Totals.Calories)
}

func TestBroadcastTotalsIgnoresOtherUsers(t *testing.T) {
	hub := NewRealtimeHub()
	cl, _ := dialTestClient(t, hub, 7)

	// no socket registered for user 8; must not panic or cross wires
	hub.BroadcastTotals(8, DailyTotals{Calories: 100})

	hub.Unregister(cl)
	hub.BroadcastTotals(7, DailyTotals{Calories: 100})
}

// Broadcasts and keepalive pings share one connection; writes must
// serialize (gorilla allows a single concurrent writer per conn).
func TestBroadcastAndPingWriteConcurrently(t *testing.T) {
	hub := NewRealtimeHub()
	cl, clientConn := dialTestClient(t, hub, 7)

	// drain everything the server writes
	go func() {
		for {
			if _, _, err := clientConn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			hub.BroadcastTotals(7, DailyTotals{Calories: float64(i)})
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			if err := cl.Write(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}()
	wg.Wait()
}
