package ws

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/radieske/bet-ledger-poc/internal/ledger-service/pubsub"
)

// client embrulha a conexão com um mutex de escrita: gorilla/websocket não
// admite escritores concorrentes, e aqui o pong (goroutine leitora) disputa
// com o Broadcast (goroutine do assinante Redis).
type client struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *client) write(messageType int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteMessage(messageType, data)
}

func (c *client) writeJSON(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

// Hub gerencia conexões WebSocket do feed de mudanças do ledger.
// subs: mapeia domínio (events/bets/balance) para o conjunto de clientes
// inscritos nele.
type Hub struct {
	upgrader websocket.Upgrader
	mu       sync.RWMutex
	// domain -> set of clients
	subs map[string]map[*client]struct{}
}

// NewHub cria uma instância de Hub com política customizada de origem (CORS).
func NewHub(allowOrigin func(r *http.Request) bool) *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{CheckOrigin: allowOrigin},
		subs:     make(map[string]map[*client]struct{}),
	}
}

// HandleWS gerencia o ciclo de vida de uma conexão WebSocket.
// Cada cliente pode se inscrever em múltiplos domínios e responde a pings.
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()
	cl := &client{conn: conn}

	for {
		var msg ClientMsg
		if err := conn.ReadJSON(&msg); err != nil {
			break
		}
		switch msg.Type {
		case "subscribe":
			h.mu.Lock()
			if _, ok := h.subs[msg.Domain]; !ok {
				h.subs[msg.Domain] = make(map[*client]struct{})
			}
			h.subs[msg.Domain][cl] = struct{}{}
			h.mu.Unlock()
		case "unsubscribe":
			h.mu.Lock()
			if m, ok := h.subs[msg.Domain]; ok {
				delete(m, cl)
				if len(m) == 0 {
					delete(h.subs, msg.Domain)
				}
			}
			h.mu.Unlock()
		case "ping":
			_ = cl.writeJSON(map[string]string{"type": "pong"})
		}
	}
	// Remove o cliente de todas as assinaturas ao desconectar
	h.mu.Lock()
	for _, set := range h.subs {
		delete(set, cl)
	}
	h.mu.Unlock()
}

// Broadcast envia uma mudança de estado para todos os clientes inscritos no
// domínio correspondente.
func (h *Hub) Broadcast(change pubsub.StateChange) {
	h.mu.RLock()
	clients := make([]*client, 0, len(h.subs[change.Domain]))
	for c := range h.subs[change.Domain] {
		clients = append(clients, c)
	}
	h.mu.RUnlock()
	if len(clients) == 0 {
		return
	}

	b, _ := json.Marshal(change)
	for _, c := range clients {
		_ = c.write(websocket.TextMessage, b)
	}
}
