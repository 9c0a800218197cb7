package ledger

import (
	"context"
	"time"
)

// Operações sobre o catálogo de eventos (Event Registry).
// O catálogo é sempre substituído por inteiro; não existe remoção.

// Events devolve uma cópia do catálogo atual, em ordem de inserção.
func (s *Store) Events() []SportEvent {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]SportEvent, len(s.events))
	copy(out, s.events)
	return out
}

// Event devolve o evento com o id dado, se presente.
func (s *Store) Event(id string) (SportEvent, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.events {
		if e.ID == id {
			return e, true
		}
	}
	return SportEvent{}, false
}

// SetEvents substitui o catálogo completo. Sem semântica de merge: o chamador
// fornece o conjunto inteiro.
func (s *Store) SetEvents(ctx context.Context, events []SportEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = make([]SportEvent, len(events))
	copy(s.events, events)
	s.commitLocked(ctx, DomainEvents, len(s.events))
}

// UpdateEventStatus sobrescreve o status do evento indicado e devolve o
// evento atualizado. Id desconhecido retorna ErrEventNotFound com o estado
// intacto (resultado explícito no lugar do no-op silencioso).
func (s *Store) UpdateEventStatus(ctx context.Context, eventID string, status EventStatus) (SportEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.events {
		if s.events[i].ID != eventID {
			continue
		}
		s.events[i].Status = status
		ev := s.events[i]
		s.commitLocked(ctx, DomainEvents, ev)
		return ev, nil
	}
	return SportEvent{}, ErrEventNotFound
}

// LoadEvents simula o carregamento do catálogo: liga a flag de loading do
// domínio events, aguarda o atraso sintético configurado, gera o catálogo via
// EventSource e o substitui. O atraso existe só para alimentar a UI.
func (s *Store) LoadEvents(ctx context.Context) ([]SportEvent, error) {
	if s.source == nil {
		return s.Events(), nil
	}

	s.SetLoading(DomainEvents, true)
	s.SetError(DomainEvents, nil)
	defer s.SetLoading(DomainEvents, false)

	if s.loadDelay > 0 {
		select {
		case <-ctx.Done():
			msg := "erro ao carregar eventos esportivos"
			s.SetError(DomainEvents, &msg)
			return nil, ctx.Err()
		case <-time.After(s.loadDelay):
		}
	}

	events := s.source(s.eventCount)
	s.SetEvents(ctx, events)
	return events, nil
}
