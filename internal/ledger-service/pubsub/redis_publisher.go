package pubsub

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ChannelLedgerBroadcast é o canal Redis Pub/Sub do feed de mudanças do ledger.
const ChannelLedgerBroadcast = "ledger_updates_broadcast"

// StateChange é o payload publicado a cada mutação confirmada do store.
// Domain: events | bets | balance; Payload: o sub-estado relevante devolvido
// pelo mutador.
type StateChange struct {
	Domain  string `json:"domain"`
	Payload any    `json:"payload,omitempty"`
}

// RedisBroadcaster publica notificações de mudança de estado no canal de
// broadcast, de onde o hub WebSocket as repassa aos clientes de UI.
type RedisBroadcaster struct {
	r   *redis.Client
	log *zap.Logger
}

func NewRedisBroadcaster(r *redis.Client, log *zap.Logger) *RedisBroadcaster {
	return &RedisBroadcaster{r: r, log: log}
}

// StateChanged implementa ledger.Notifier. Falha de publish é logada e não
// interrompe a mutação que a originou.
func (b *RedisBroadcaster) StateChanged(ctx context.Context, domain string, payload any) {
	buf, err := json.Marshal(StateChange{Domain: domain, Payload: payload})
	if err != nil {
		b.log.Warn("state change marshal failed", zap.String("domain", domain), zap.Error(err))
		return
	}
	if err := b.r.Publish(ctx, ChannelLedgerBroadcast, buf).Err(); err != nil {
		b.log.Warn("state change publish failed", zap.String("domain", domain), zap.Error(err))
	}
}
