package ws

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// dialSubscriber connects a real websocket client and registers the server
// side of the connection on hub under topic.
func dialSubscriber(t *testing.T, hub *Hub, topic string) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := testUpgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.AddConnection(topic, conn)
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	waitForSubscribers(t, hub, topic, 1)
	return client
}

func waitForSubscribers(t *testing.T, hub *Hub, topic string, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		hub.mu.RLock()
		got := len(hub.topics[topic])
		hub.mu.RUnlock()
		if got >= n {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("subscriber for %s never registered", topic)
}

func TestBroadcastDeliversToSubscriber(t *testing.T) {
	hub := NewHub()
	client := dialSubscriber(t, hub, "hackathons")

	hub.Broadcast("hackathons", WSMessage{Type: "refresh", Data: "x"})

	client.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg WSMessage
	require.NoError(t, client.ReadJSON(&msg))
	assert.Equal(t, "refresh", msg.Type)
}

func TestBroadcastIgnoresUnknownTopic(t *testing.T) {
	hub := NewHub()
	hub.Broadcast("nobody-listens", WSMessage{Type: "refresh"})
}

func TestConcurrentBroadcasts(t *testing.T) {
	hub := NewHub()
	client := dialSubscriber(t, hub, "blog")

	// Drain the client side so server writes never back up.
	go func() {
		for {
			if _, _, err := client.ReadMessage(); err != nil {
				return
			}
		}
	}()

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				hub.Broadcast("blog", WSMessage{Type: "update", Data: j})
			}
		}()
	}
	wg.Wait()
}

func TestBroadcastPrunesDeadConnections(t *testing.T) {
	hub := NewHub()
	client := dialSubscriber(t, hub, "submissions")
	client.Close()

	// Writes to the closed peer eventually fail; the hub must drop the
	// connection rather than keep erroring forever.
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		hub.Broadcast("submissions", WSMessage{Type: "refresh"})
		hub.mu.RLock()
		remaining := len(hub.topics["submissions"])
		hub.mu.RUnlock()
		if remaining == 0 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("closed connection was never pruned")
}
