package producer

import (
	"context"

	"github.com/radieske/bet-ledger-poc/internal/ledger"
)

// Noop descarta os eventos de contrato. Usado quando KAFKA_BROKERS não está
// configurado (modo demo puro, um único processo).
type Noop struct{}

func (Noop) BetPlaced(context.Context, ledger.Bet) error { return nil }

func (Noop) BetSettled(context.Context, ledger.Bet, ledger.BetResult) error { return nil }
