package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/radieske/bet-ledger-poc/internal/ledger"
	"github.com/radieske/bet-ledger-poc/internal/ledger-service/dto"
)

// Server expõe a superfície de ações e consultas do ledger por HTTP,
// consumida pelos colaboradores de apresentação.
type Server struct {
	log   *zap.Logger
	store *ledger.Store
	ws    http.HandlerFunc // handler do feed de mudanças (opcional)
}

// NewServer instancia o servidor HTTP do ledger. wsHandler pode ser nil
// quando o feed WebSocket não está habilitado.
func NewServer(log *zap.Logger, store *ledger.Store, wsHandler http.HandlerFunc) *Server {
	return &Server{log: log, store: store, ws: wsHandler}
}

// Router retorna o roteador HTTP com as rotas da API do ledger.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Get("/v1/events", s.listEvents)
	r.Put("/v1/events", s.setEvents)
	r.Post("/v1/events/load", s.loadEvents)
	r.Patch("/v1/events/{id}/status", s.updateEventStatus)

	r.Post("/v1/bets", s.placeBet)
	r.Post("/v1/bets/{id}/resolve", s.resolveBet)
	r.Get("/v1/bets", s.listBets)

	r.Get("/v1/stats", s.getStats)

	r.Get("/v1/wallet", s.getWallet)
	r.Post("/v1/wallet/deposit", s.deposit)
	r.Post("/v1/wallet/withdraw", s.withdraw)
	r.Post("/v1/wallet/balance", s.updateBalance)

	r.Get("/v1/status", s.getStatus)
	r.Delete("/v1/status/errors", s.clearErrors)
	r.Post("/v1/store/reset", s.resetStore)

	if s.ws != nil {
		r.Get("/ws", s.ws)
	}
	return r
}

// writeJSON serializa a resposta em JSON e define o status HTTP.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError mapeia erros do domínio para status HTTP:
// não-encontrado -> 404, conflito -> 409, valor inválido -> 400.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case ledger.IsNotFound(err):
		status = http.StatusNotFound
	case ledger.IsConflict(err):
		status = http.StatusConflict
	case errors.Is(err, ledger.ErrInvalidAmount),
		errors.Is(err, ledger.ErrInvalidResult),
		errors.Is(err, ledger.ErrInvalidPrediction):
		status = http.StatusBadRequest
	}
	writeJSON(w, status, dto.ErrorResponse{Error: err.Error()})
}

func (s *Server) listEvents(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.EventsResponse{Events: s.store.Events()})
}

// setEvents substitui o catálogo completo de eventos.
func (s *Server) setEvents(w http.ResponseWriter, r *http.Request) {
	var req dto.SetEventsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "bad json"})
		return
	}
	s.store.SetEvents(r.Context(), req.Events)
	writeJSON(w, http.StatusOK, dto.EventsResponse{Events: s.store.Events()})
}

// loadEvents dispara o carregamento sintético do catálogo.
func (s *Server) loadEvents(w http.ResponseWriter, r *http.Request) {
	events, err := s.store.LoadEvents(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.EventsResponse{Events: events})
}

func (s *Server) updateEventStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req dto.UpdateEventStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "bad json"})
		return
	}
	ev, err := s.store.UpdateEventStatus(r.Context(), id, req.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ev)
}

func (s *Server) placeBet(w http.ResponseWriter, r *http.Request) {
	var req dto.PlaceBetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "bad json"})
		return
	}
	if req.EventID == "" || req.Amount <= 0 || req.Prediction == "" {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "invalid payload"})
		return
	}

	bet, err := s.store.PlaceBet(r.Context(), ledger.PlaceBetRequest{
		EventID:    req.EventID,
		Amount:     req.Amount,
		Odds:       req.Odds,
		Prediction: ledger.Prediction(req.Prediction),
	})
	if err != nil {
		actionErrorsTotal.WithLabelValues("place_bet").Inc()
		writeError(w, err)
		return
	}

	betsPlacedTotal.Inc()
	writeJSON(w, http.StatusCreated, bet)
}

func (s *Server) resolveBet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req dto.ResolveBetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "bad json"})
		return
	}

	bet, err := s.store.ResolveBet(r.Context(), id, ledger.BetResult(req.Result))
	if err != nil {
		actionErrorsTotal.WithLabelValues("resolve_bet").Inc()
		writeError(w, err)
		return
	}

	betsSettledTotal.WithLabelValues(req.Result).Inc()
	writeJSON(w, http.StatusOK, bet)
}

// listBets filtra por ?status=active|won|lost; sem filtro devolve todas.
func (s *Server) listBets(w http.ResponseWriter, r *http.Request) {
	status := ledger.BetStatus(r.URL.Query().Get("status"))
	writeJSON(w, http.StatusOK, dto.BetsResponse{Bets: s.store.BetsByStatus(status)})
}

func (s *Server) getStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.BettingStats())
}

func (s *Server) getWallet(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.WalletResponse{User: s.store.User()})
}

func (s *Server) deposit(w http.ResponseWriter, r *http.Request) {
	var req dto.DepositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "bad json"})
		return
	}
	balance, err := s.store.DepositBalance(r.Context(), req.Amount)
	if err != nil {
		actionErrorsTotal.WithLabelValues("deposit").Inc()
		writeError(w, err)
		return
	}
	depositsTotal.Inc()
	writeJSON(w, http.StatusOK, dto.BalanceResponse{Balance: balance})
}

func (s *Server) withdraw(w http.ResponseWriter, r *http.Request) {
	var req dto.WithdrawRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "bad json"})
		return
	}
	balance, ok := s.store.WithdrawBalance(r.Context(), req.Amount)
	if ok {
		withdrawalsTotal.Inc()
	} else {
		actionErrorsTotal.WithLabelValues("withdraw").Inc()
	}
	writeJSON(w, http.StatusOK, dto.WithdrawResponse{Balance: balance, OK: ok})
}

// updateBalance aplica um delta genérico ao saldo (piso em zero).
func (s *Server) updateBalance(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateBalanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "bad json"})
		return
	}
	balance := s.store.UpdateBalance(r.Context(), req.Delta)
	writeJSON(w, http.StatusOK, dto.BalanceResponse{Balance: balance})
}

func (s *Server) getStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.StatusResponse{
		Loading: s.store.Loading(),
		Error:   s.store.Errors(),
	})
}

func (s *Server) clearErrors(w http.ResponseWriter, r *http.Request) {
	s.store.ClearErrors()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) resetStore(w http.ResponseWriter, r *http.Request) {
	if err := s.store.ResetStore(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.WalletResponse{User: s.store.User()})
}
