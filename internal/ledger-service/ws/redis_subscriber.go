package ws

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/radieske/bet-ledger-poc/internal/ledger-service/pubsub"
)

// StartRedisSubscriber inicia uma goroutine que escuta o canal de broadcast do
// ledger no Redis Pub/Sub e repassa cada StateChange recebido aos clientes
// WebSocket conectados via Hub.
func StartRedisSubscriber(ctx context.Context, r *redis.Client, hub *Hub, log *zap.Logger) {
	sub := r.Subscribe(ctx, pubsub.ChannelLedgerBroadcast)
	ch := sub.Channel()
	go func() {
		for {
			select {
			case <-ctx.Done():
				_ = sub.Close() // encerra a inscrição ao finalizar o contexto
				return
			case msg := <-ch:
				if msg == nil {
					continue
				}
				var change pubsub.StateChange
				if err := json.Unmarshal([]byte(msg.Payload), &change); err != nil {
					log.Warn("ws subscriber unmarshal error", zap.Error(err))
					continue
				}
				hub.Broadcast(change) // envia a mudança aos clientes inscritos
			}
		}
	}()
}
