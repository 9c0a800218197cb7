package persist

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/radieske/bet-ledger-poc/internal/ledger"
)

// Memory guarda o documento serializado em memória. Serve para testes e para
// rodar o serviço sem Redis; passa pelo mesmo round-trip JSON do slot real.
type Memory struct {
	mu  sync.Mutex
	doc []byte
}

func NewMemory() *Memory { return &Memory{} }

func (m *Memory) Save(_ context.Context, snap ledger.Snapshot) error {
	b, err := json.Marshal(document{State: snap})
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.doc = b
	m.mu.Unlock()
	return nil
}

func (m *Memory) Load(_ context.Context) (*ledger.Snapshot, error) {
	m.mu.Lock()
	b := m.doc
	m.mu.Unlock()

	if b == nil {
		return nil, nil
	}
	var doc document
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ledger.ErrCorruptSnapshot, err)
	}
	return &doc.State, nil
}

func (m *Memory) Reset(_ context.Context) error {
	m.mu.Lock()
	m.doc = nil
	m.mu.Unlock()
	return nil
}

// Corrupt sobrescreve o slot com bytes arbitrários, para exercitar o fallback
// de documento malformado nos testes.
func (m *Memory) Corrupt(raw []byte) {
	m.mu.Lock()
	m.doc = raw
	m.mu.Unlock()
}
