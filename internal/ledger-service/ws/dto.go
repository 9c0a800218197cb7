package ws

// ClientMsg representa uma mensagem recebida do cliente WebSocket.
// Type: subscribe | unsubscribe | ping
// Domain: events | bets | balance (obrigatório em subscribe/unsubscribe)
type ClientMsg struct {
	Type   string `json:"type"`
	Domain string `json:"domain"`
}
