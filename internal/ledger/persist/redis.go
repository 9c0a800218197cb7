package persist

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/radieske/bet-ledger-poc/internal/ledger"
)

// DefaultKey é o slot durável padrão do snapshot do ledger.
const DefaultKey = "betting:store"

// document é o envelope persistido: um único documento JSON sob uma chave,
// com o estado embrulhado em "state". Flags transitórias ficam de fora.
type document struct {
	State ledger.Snapshot `json:"state"`
}

// Redis persiste o snapshot do ledger como documento JSON em uma chave Redis,
// sem TTL (o slot sobrevive a reinícios do processo).
type Redis struct {
	client *redis.Client
	key    string
}

// NewRedis cria o adaptador de persistência. key vazio usa DefaultKey.
func NewRedis(client *redis.Client, key string) *Redis {
	if key == "" {
		key = DefaultKey
	}
	return &Redis{client: client, key: key}
}

// Save serializa e grava o snapshot. Último escritor vence.
func (r *Redis) Save(ctx context.Context, snap ledger.Snapshot) error {
	b, err := json.Marshal(document{State: snap})
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.key, b, 0).Err()
}

// Load lê e desserializa o snapshot. Chave ausente devolve (nil, nil).
// Documento malformado sai embrulhado em ledger.ErrCorruptSnapshot; erro de
// transporte (Redis inacessível) sai como está, para o chamador distinguir.
func (r *Redis) Load(ctx context.Context) (*ledger.Snapshot, error) {
	b, err := r.client.Get(ctx, r.key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var doc document
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ledger.ErrCorruptSnapshot, err)
	}
	return &doc.State, nil
}

// Reset remove o slot durável.
func (r *Redis) Reset(ctx context.Context) error {
	return r.client.Del(ctx, r.key).Err()
}
