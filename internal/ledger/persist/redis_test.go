package persist

import (
	"context"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radieske/bet-ledger-poc/internal/ledger"
)

// Teste de integração: requer um Redis acessível em REDIS_ADDR.
func TestRedisRoundTrip(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR não definido")
	}

	ctx := context.Background()
	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })

	store := NewRedis(client, "betting:store:test")
	require.NoError(t, store.Reset(ctx))

	// slot vazio devolve nil sem erro
	snap, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, snap)

	in := &ledger.Snapshot{
		Events: []ledger.SportEvent{{ID: "event_1", HomeTeam: "A", AwayTeam: "B"}},
		Bets:   []ledger.Bet{},
		User:   ledger.User{Balance: 75, TotalBets: 2, TotalWins: 1},
	}
	require.NoError(t, store.Save(ctx, *in))

	out, err := store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, in.User, out.User)
	require.Len(t, out.Events, 1)
	assert.Equal(t, "event_1", out.Events[0].ID)

	require.NoError(t, store.Reset(ctx))
	snap, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, snap)
}
