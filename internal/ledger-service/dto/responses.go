package dto

import "github.com/radieske/bet-ledger-poc/internal/ledger"

type EventsResponse struct {
	Events []ledger.SportEvent `json:"events"`
}

type BetsResponse struct {
	Bets []ledger.Bet `json:"bets"`
}

type WalletResponse struct {
	User ledger.User `json:"user"`
}

type WithdrawResponse struct {
	Balance float64 `json:"balance"`
	OK      bool    `json:"ok"`
}

type BalanceResponse struct {
	Balance float64 `json:"balance"`
}

// StatusResponse expõe as flags transitórias por domínio.
type StatusResponse struct {
	Loading ledger.LoadingState `json:"loading"`
	Error   ledger.ErrorState   `json:"error"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
