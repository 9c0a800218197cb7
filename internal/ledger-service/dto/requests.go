package dto

import "github.com/radieske/bet-ledger-poc/internal/ledger"

type SetEventsRequest struct {
	Events []ledger.SportEvent `json:"events"`
}

type UpdateEventStatusRequest struct {
	Status ledger.EventStatus `json:"status"`
}

type PlaceBetRequest struct {
	EventID    string  `json:"eventId"`
	Amount     float64 `json:"amount"`
	Odds       float64 `json:"odds,omitempty"` // opcional; validado contra o catálogo
	Prediction string  `json:"prediction"`     // home | draw | away
}

type ResolveBetRequest struct {
	Result string `json:"result"` // won | lost
}

type DepositRequest struct {
	Amount float64 `json:"amount"`
}

type WithdrawRequest struct {
	Amount float64 `json:"amount"`
}

type UpdateBalanceRequest struct {
	Delta float64 `json:"delta"`
}
