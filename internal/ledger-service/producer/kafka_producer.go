package producer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/radieske/bet-ledger-poc/internal/ledger"
	"github.com/radieske/bet-ledger-poc/pkg/contracts/events"
)

// KafkaPublisher publica eventos de contrato do ledger nos tópicos
// bet_placed e bet_settled.
type KafkaPublisher struct {
	Placed  *kafka.Writer
	Settled *kafka.Writer
}

func NewKafkaPublisher(placed, settled *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Placed: placed, Settled: settled}
}

func (p *KafkaPublisher) BetPlaced(ctx context.Context, b ledger.Bet) error {
	e := events.BetPlaced{
		BetID:        b.ID,
		EventID:      b.EventID,
		Amount:       b.Amount,
		OddValue:     b.Odds,
		Prediction:   string(b.Prediction),
		PotentialWin: b.PotentialWin,
		TsUnixMs:     time.Now().UnixMilli(),
	}
	buf, _ := json.Marshal(e)
	return p.Placed.WriteMessages(ctx, kafka.Message{Key: []byte(b.ID), Value: buf})
}

func (p *KafkaPublisher) BetSettled(ctx context.Context, b ledger.Bet, result ledger.BetResult) error {
	payout := 0.0
	if result == ledger.ResultWon {
		payout = b.PotentialWin
	}
	e := events.BetSettled{
		BetID:   b.ID,
		EventID: b.EventID,
		Result:  string(result),
		Payout:  payout,
		Ts:      time.Now().UTC(),
	}
	buf, _ := json.Marshal(e)
	return p.Settled.WriteMessages(ctx, kafka.Message{Key: []byte(b.ID), Value: buf})
}
