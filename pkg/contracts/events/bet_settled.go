package events

import "time"

// Evento emitido após a liquidação de uma aposta.
type BetSettled struct {
	BetID   string    `json:"betId"`
	EventID string    `json:"eventId"`
	Result  string    `json:"result"` // "won" | "lost"
	Payout  float64   `json:"payout"` // potentialWin quando won, 0 quando lost
	Ts      time.Time `json:"ts"`
}
