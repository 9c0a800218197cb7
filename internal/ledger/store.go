package ledger

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultInitialBalance é o saldo inicial do usuário (R$ 100).
const DefaultInitialBalance = 100

// Persistence grava e restaura o snapshot {events, bets, user} em um slot
// durável. Load devolve nil (sem erro) quando não há nada salvo.
type Persistence interface {
	Save(ctx context.Context, snap Snapshot) error
	Load(ctx context.Context) (*Snapshot, error)
	Reset(ctx context.Context) error
}

// Notifier recebe uma notificação explícita de mudança de estado após cada
// mutação confirmada. Implementações típicas publicam em um canal pub/sub
// para broadcast via WebSocket.
type Notifier interface {
	StateChanged(ctx context.Context, domain string, payload any)
}

// Publisher emite eventos de contrato (bet_placed / bet_settled) para fora do
// processo. Falhas são logadas e nunca interrompem a mutação.
type Publisher interface {
	BetPlaced(ctx context.Context, b Bet) error
	BetSettled(ctx context.Context, b Bet, result BetResult) error
}

// Archive registra o histórico append-only de apostas (colocadas/liquidadas).
type Archive interface {
	RecordPlaced(ctx context.Context, b Bet) error
	RecordSettled(ctx context.Context, b Bet, result BetResult) error
}

// EventSource gera um catálogo sintético de eventos bem formados.
type EventSource func(count int) []SportEvent

// Domínios usados nas flags transitórias e nas notificações de mudança.
const (
	DomainEvents  = "events"
	DomainBets    = "bets"
	DomainBalance = "balance"
)

// Options parametriza a construção do Store. Campos nil/zero recebem defaults.
type Options struct {
	InitialBalance float64
	LoadDelay      time.Duration // atraso sintético de LoadEvents
	EventCount     int           // tamanho do catálogo gerado por LoadEvents
	Events         EventSource
	Notifier       Notifier
	Publisher      Publisher
	Archive        Archive
	Now            func() time.Time
	NewID          func() string
}

// Store é o ledger de apostas: catálogo de eventos, carteira e apostas sob um
// único ponto de coordenação. Todas as mutações são síncronas e serializadas
// por mutex (um único escritor lógico); após cada mutação confirmada o
// snapshot é persistido e a mudança é notificada.
type Store struct {
	mu      sync.Mutex
	log     *zap.Logger
	persist Persistence

	notifier  Notifier
	publisher Publisher
	archive   Archive

	source     EventSource
	loadDelay  time.Duration
	eventCount int

	initialBalance float64
	now            func() time.Time
	newID          func() string

	events  []SportEvent
	bets    []Bet
	user    User
	loading LoadingState
	errs    ErrorState
}

// New constrói um Store independente (sem singleton global) com as
// dependências injetadas. Chame Init para restaurar o estado persistido.
func New(log *zap.Logger, persist Persistence, opts Options) *Store {
	if opts.InitialBalance <= 0 {
		opts.InitialBalance = DefaultInitialBalance
	}
	if opts.EventCount <= 0 {
		opts.EventCount = 30
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}

	return &Store{
		log:            log,
		persist:        persist,
		notifier:       opts.Notifier,
		publisher:      opts.Publisher,
		archive:        opts.Archive,
		source:         opts.Events,
		loadDelay:      opts.LoadDelay,
		eventCount:     opts.EventCount,
		initialBalance: opts.InitialBalance,
		now:            opts.Now,
		newID:          opts.NewID,
		user:           User{Balance: opts.InitialBalance},
	}
}

// Init restaura o estado a partir do slot durável. Slot vazio ou documento
// corrompido (ErrCorruptSnapshot) recai no estado inicial documentado; erro
// de transporte é propagado sem tocar no slot — senão um Redis momentaneamente
// fora do ar apagaria o ledger persistido no primeiro commit seguinte.
func (s *Store) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.persist.Load(ctx)
	if errors.Is(err, ErrCorruptSnapshot) {
		s.log.Warn("persisted state corrupt, falling back to initial state", zap.Error(err))
		s.resetLocked()
		return nil
	}
	if err != nil {
		return err
	}
	if snap == nil {
		s.resetLocked()
		return nil
	}

	s.events = snap.Events
	s.bets = snap.Bets
	s.user = snap.User
	s.loading = LoadingState{}
	s.errs = ErrorState{}
	return nil
}

// resetLocked volta o estado em memória ao inicial. Chamar com o mutex preso.
func (s *Store) resetLocked() {
	s.events = nil
	s.bets = nil
	s.user = User{Balance: s.initialBalance}
	s.loading = LoadingState{}
	s.errs = ErrorState{}
}

// snapshotLocked devolve uma cópia do estado persistível. Chamar com o mutex preso.
func (s *Store) snapshotLocked() Snapshot {
	snap := Snapshot{
		Events: make([]SportEvent, len(s.events)),
		Bets:   make([]Bet, len(s.bets)),
		User:   s.user,
	}
	copy(snap.Events, s.events)
	copy(snap.Bets, s.bets)
	return snap
}

// Snapshot devolve uma cópia do estado persistível atual.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// commitLocked externaliza uma mutação já aplicada em memória: persiste o
// snapshot e emite a notificação de mudança. Falha de persistência é logada e
// não interrompe o chamador (risco documentado: crash entre mutação e save
// perde a última transição). Chamar com o mutex preso.
func (s *Store) commitLocked(ctx context.Context, domain string, payload any) {
	if err := s.persist.Save(ctx, s.snapshotLocked()); err != nil {
		s.log.Warn("snapshot save failed", zap.String("domain", domain), zap.Error(err))
	}
	if s.notifier != nil {
		s.notifier.StateChanged(ctx, domain, payload)
	}
}

// SaveUserData força a persistência do snapshot atual.
func (s *Store) SaveUserData(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persist.Save(ctx, s.snapshotLocked())
}

// LoadUserData recarrega o estado do slot durável, substituindo o estado em
// memória. Mesmo contrato do Init para dado corrompido/ausente.
func (s *Store) LoadUserData(ctx context.Context) error {
	return s.Init(ctx)
}

// ResetStore limpa o slot durável e volta o estado em memória ao inicial.
func (s *Store) ResetStore(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persist.Reset(ctx); err != nil {
		return err
	}
	s.resetLocked()
	if s.notifier != nil {
		s.notifier.StateChanged(ctx, DomainEvents, nil)
	}
	return nil
}
