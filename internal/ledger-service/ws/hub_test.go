package ws

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radieske/bet-ledger-poc/internal/ledger-service/pubsub"
)

func dialTestHub(t *testing.T, hub *Hub) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(hub.HandleWS))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func (h *Hub) subscriberCount(domain string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[domain])
}

func TestHubDeliversToSubscribedDomain(t *testing.T) {
	hub := NewHub(func(*http.Request) bool { return true })
	conn := dialTestHub(t, hub)

	require.NoError(t, conn.WriteJSON(ClientMsg{Type: "subscribe", Domain: "bets"}))
	require.Eventually(t, func() bool {
		return hub.subscriberCount("bets") == 1
	}, time.Second, 10*time.Millisecond)

	hub.Broadcast(pubsub.StateChange{Domain: "balance", Payload: "ignored"})
	hub.Broadcast(pubsub.StateChange{Domain: "bets", Payload: "bet_1"})

	// só a mudança do domínio inscrito chega
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	var got pubsub.StateChange
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, "bets", got.Domain)
	assert.Equal(t, "bet_1", got.Payload)
}

// Pong (goroutine leitora da conexão) e Broadcast (goroutine do assinante
// Redis) escrevem na mesma conexão; sem serialização por cliente o
// gorilla/websocket aborta com "concurrent write to websocket connection".
func TestHubPingDuringBroadcastStorm(t *testing.T) {
	hub := NewHub(func(*http.Request) bool { return true })
	conn := dialTestHub(t, hub)

	require.NoError(t, conn.WriteJSON(ClientMsg{Type: "subscribe", Domain: "bets"}))
	require.Eventually(t, func() bool {
		return hub.subscriberCount("bets") == 1
	}, time.Second, 10*time.Millisecond)

	const broadcasts = 200
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < broadcasts; i++ {
			hub.Broadcast(pubsub.StateChange{Domain: "bets", Payload: i})
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			_ = conn.WriteJSON(ClientMsg{Type: "ping"})
		}
	}()

	// consome pongs e broadcasts intercalados; qualquer erro de leitura aqui
	// significa que o servidor derrubou a conexão no meio da rajada
	pongs, changes := 0, 0
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	for changes < broadcasts || pongs < 50 {
		_, raw, err := conn.ReadMessage()
		require.NoError(t, err)

		var head struct {
			Type string `json:"type"`
		}
		require.NoError(t, json.Unmarshal(raw, &head))
		if head.Type == "pong" {
			pongs++
			continue
		}
		changes++
	}
	wg.Wait()

	assert.Equal(t, broadcasts, changes)
	assert.Equal(t, 50, pongs)
}
