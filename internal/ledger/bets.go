package ledger

import (
	"context"
	"math"

	"go.uber.org/zap"
)

// Máquina de estados do ledger de apostas: active → won | lost, sem transição
// de saída de um estado terminal.

// tolerância de comparação entre odds informadas e odds do catálogo
const oddsEpsilon = 1e-9

// PlaceBet cria uma aposta contra um evento do catálogo.
//
// Pré-condições, na ordem:
//  1. predição é home|draw|away — senão ErrInvalidPrediction;
//  2. CanAffordBet(amount) — senão ErrInsufficientBalance;
//  3. evento existe no catálogo — senão ErrEventNotFound;
//  4. as odds efetivas são re-derivadas de event.odds[prediction]; odds
//     informadas que divergem (ou perna inexistente, ex: draw no tênis)
//     falham com ErrOddsChanged.
//
// O efeito é uma única transição atômica: debita o saldo, incrementa
// totalBets e anexa a aposta com status active, snapshot do evento e
// potentialWin = amount × odds (fixado na criação, nunca recalculado).
func (s *Store) PlaceBet(ctx context.Context, req PlaceBetRequest) (Bet, error) {
	switch req.Prediction {
	case PredictHome, PredictDraw, PredictAway:
	default:
		return Bet{}, ErrInvalidPrediction
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.loading.Bets = true
	defer func() { s.loading.Bets = false }()
	s.errs.Bets = nil

	if req.Amount <= 0 || req.Amount > s.user.Balance {
		msg := "saldo insuficiente para esta aposta"
		s.errs.Bets = &msg
		return Bet{}, ErrInsufficientBalance
	}

	var event *SportEvent
	for i := range s.events {
		if s.events[i].ID == req.EventID {
			event = &s.events[i]
			break
		}
	}
	if event == nil {
		msg := "evento não encontrado"
		s.errs.Bets = &msg
		return Bet{}, ErrEventNotFound
	}

	odds := event.Odds.ForPrediction(req.Prediction)
	if odds <= 0 {
		msg := "odds indisponíveis para a predição"
		s.errs.Bets = &msg
		return Bet{}, ErrOddsChanged
	}
	if req.Odds != 0 && math.Abs(req.Odds-odds) > oddsEpsilon {
		msg := "odds divergem do catálogo"
		s.errs.Bets = &msg
		return Bet{}, ErrOddsChanged
	}

	bet := Bet{
		ID:           s.newID(),
		EventID:      event.ID,
		Event:        *event,
		Amount:       req.Amount,
		Odds:         odds,
		Prediction:   req.Prediction,
		Status:       BetActive,
		CreatedAt:    s.now(),
		PotentialWin: req.Amount * odds,
	}

	s.user.Balance -= req.Amount
	s.user.TotalBets++
	s.bets = append(s.bets, bet)

	s.commitLocked(ctx, DomainBets, bet)

	if s.publisher != nil {
		if err := s.publisher.BetPlaced(ctx, bet); err != nil {
			s.log.Warn("bet_placed publish failed", zap.String("bet_id", bet.ID), zap.Error(err))
		}
	}
	if s.archive != nil {
		if err := s.archive.RecordPlaced(ctx, bet); err != nil {
			s.log.Warn("bet history insert failed", zap.String("bet_id", bet.ID), zap.Error(err))
		}
	}

	return bet, nil
}

// ResolveBet liquida uma aposta ativa com o desfecho informado e devolve a
// aposta liquidada. won credita potentialWin e incrementa totalWins; lost não
// credita nada e incrementa totalLosses. Aposta desconhecida retorna
// ErrBetNotFound; aposta já liquidada retorna ErrBetAlreadySettled — em ambos
// os casos apostas, saldo e contadores ficam intactos.
func (s *Store) ResolveBet(ctx context.Context, betID string, result BetResult) (Bet, error) {
	if result != ResultWon && result != ResultLost {
		return Bet{}, ErrInvalidResult
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var bet *Bet
	for i := range s.bets {
		if s.bets[i].ID == betID {
			bet = &s.bets[i]
			break
		}
	}
	if bet == nil {
		return Bet{}, ErrBetNotFound
	}
	if bet.Status != BetActive {
		return *bet, ErrBetAlreadySettled
	}

	if result == ResultWon {
		bet.Status = BetWon
		s.user.Balance += bet.PotentialWin
		s.user.TotalWins++
	} else {
		bet.Status = BetLost
		s.user.TotalLosses++
	}

	settled := *bet
	s.commitLocked(ctx, DomainBets, settled)

	if s.publisher != nil {
		if err := s.publisher.BetSettled(ctx, settled, result); err != nil {
			s.log.Warn("bet_settled publish failed", zap.String("bet_id", settled.ID), zap.Error(err))
		}
	}
	if s.archive != nil {
		if err := s.archive.RecordSettled(ctx, settled, result); err != nil {
			s.log.Warn("bet history update failed", zap.String("bet_id", settled.ID), zap.Error(err))
		}
	}

	return settled, nil
}

// BetsByStatus filtra as apostas por status, em ordem de inserção.
// Status vazio devolve todas.
func (s *Store) BetsByStatus(status BetStatus) []Bet {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Bet, 0, len(s.bets))
	for _, b := range s.bets {
		if status == "" || b.Status == status {
			out = append(out, b)
		}
	}
	return out
}
