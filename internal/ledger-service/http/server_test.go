package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/radieske/bet-ledger-poc/internal/ledger"
	"github.com/radieske/bet-ledger-poc/internal/ledger-service/dto"
	"github.com/radieske/bet-ledger-poc/internal/ledger/persist"
)

func newTestAPI(t *testing.T) (http.Handler, *ledger.Store) {
	t.Helper()
	store := ledger.New(zap.NewNop(), persist.NewMemory(), ledger.Options{})
	require.NoError(t, store.Init(context.Background()))

	srv := NewServer(zap.NewNop(), store, nil)
	return srv.Router(), store
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}

func seedEvent(t *testing.T, h http.Handler) {
	t.Helper()
	rec := do(t, h, http.MethodPut, "/v1/events", dto.SetEventsRequest{
		Events: []ledger.SportEvent{{
			ID:       "event_1",
			HomeTeam: "Team A",
			AwayTeam: "Team B",
			Date:     time.Date(2024, 12, 31, 15, 0, 0, 0, time.UTC),
			Odds:     ledger.Odds{Home: 2.5, Draw: 3.2, Away: 2.8},
			Sport:    ledger.SportFootball,
			Status:   ledger.EventUpcoming,
		}},
	})
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestPlaceBetFlow(t *testing.T) {
	h, store := newTestAPI(t)
	seedEvent(t, h)

	rec := do(t, h, http.MethodPost, "/v1/bets", dto.PlaceBetRequest{
		EventID:    "event_1",
		Amount:     50,
		Odds:       2.5,
		Prediction: "home",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	bet := decode[ledger.Bet](t, rec)
	assert.Equal(t, ledger.BetActive, bet.Status)
	assert.Equal(t, 125.0, bet.PotentialWin)
	assert.Equal(t, 50.0, store.Balance())

	// liquidação
	rec = do(t, h, http.MethodPost, "/v1/bets/"+bet.ID+"/resolve", dto.ResolveBetRequest{Result: "won"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 175.0, store.Balance())

	// liquidação repetida -> 409
	rec = do(t, h, http.MethodPost, "/v1/bets/"+bet.ID+"/resolve", dto.ResolveBetRequest{Result: "won"})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestPlaceBetErrors(t *testing.T) {
	h, _ := newTestAPI(t)
	seedEvent(t, h)

	// saldo insuficiente -> 409
	rec := do(t, h, http.MethodPost, "/v1/bets", dto.PlaceBetRequest{
		EventID: "event_1", Amount: 150, Prediction: "home",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	// evento inexistente -> 404
	rec = do(t, h, http.MethodPost, "/v1/bets", dto.PlaceBetRequest{
		EventID: "ghost", Amount: 10, Prediction: "home",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// odds divergentes -> 409
	rec = do(t, h, http.MethodPost, "/v1/bets", dto.PlaceBetRequest{
		EventID: "event_1", Amount: 10, Odds: 9.9, Prediction: "home",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	// payload inválido -> 400
	rec = do(t, h, http.MethodPost, "/v1/bets", dto.PlaceBetRequest{EventID: "event_1"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// predição fora de home|draw|away -> 400, não 409
	rec = do(t, h, http.MethodPost, "/v1/bets", dto.PlaceBetRequest{
		EventID: "event_1", Amount: 10, Prediction: "banana",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWalletEndpoints(t *testing.T) {
	h, _ := newTestAPI(t)

	rec := do(t, h, http.MethodPost, "/v1/wallet/deposit", dto.DepositRequest{Amount: 200})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 300.0, decode[dto.BalanceResponse](t, rec).Balance)

	// depósito não positivo -> 400, saldo intacto
	rec = do(t, h, http.MethodPost, "/v1/wallet/deposit", dto.DepositRequest{Amount: -10})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/v1/wallet/withdraw", dto.WithdrawRequest{Amount: 120})
	require.Equal(t, http.StatusOK, rec.Code)
	out := decode[dto.WithdrawResponse](t, rec)
	assert.True(t, out.OK)
	assert.Equal(t, 180.0, out.Balance)

	// saque acima do saldo: flag false, saldo intacto
	rec = do(t, h, http.MethodPost, "/v1/wallet/withdraw", dto.WithdrawRequest{Amount: 9999})
	out = decode[dto.WithdrawResponse](t, rec)
	assert.False(t, out.OK)
	assert.Equal(t, 180.0, out.Balance)

	rec = do(t, h, http.MethodGet, "/v1/wallet", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 180.0, decode[dto.WalletResponse](t, rec).User.Balance)
}

func TestEventStatusEndpoint(t *testing.T) {
	h, _ := newTestAPI(t)
	seedEvent(t, h)

	rec := do(t, h, http.MethodPatch, "/v1/events/event_1/status", dto.UpdateEventStatusRequest{Status: ledger.EventLive})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ledger.EventLive, decode[ledger.SportEvent](t, rec).Status)

	rec = do(t, h, http.MethodPatch, "/v1/events/ghost/status", dto.UpdateEventStatusRequest{Status: ledger.EventLive})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStatsAndStatusEndpoints(t *testing.T) {
	h, _ := newTestAPI(t)
	seedEvent(t, h)

	rec := do(t, h, http.MethodPost, "/v1/bets", dto.PlaceBetRequest{
		EventID: "event_1", Amount: 20, Prediction: "away",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	bet := decode[ledger.Bet](t, rec)

	rec = do(t, h, http.MethodPost, "/v1/bets/"+bet.ID+"/resolve", dto.ResolveBetRequest{Result: "lost"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodGet, "/v1/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	stats := decode[ledger.BettingStats](t, rec)
	assert.Equal(t, 1, stats.TotalBets)
	assert.Equal(t, 1, stats.LostBets)
	assert.Zero(t, stats.WinRate)

	rec = do(t, h, http.MethodGet, "/v1/status", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	st := decode[dto.StatusResponse](t, rec)
	assert.False(t, st.Loading.Bets)
	assert.Nil(t, st.Error.Bets)
}

func TestListBetsFilter(t *testing.T) {
	h, _ := newTestAPI(t)
	seedEvent(t, h)

	for i := 0; i < 2; i++ {
		rec := do(t, h, http.MethodPost, "/v1/bets", dto.PlaceBetRequest{
			EventID: "event_1", Amount: 10, Prediction: "home",
		})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := do(t, h, http.MethodGet, "/v1/bets?status=active", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[dto.BetsResponse](t, rec).Bets, 2)

	rec = do(t, h, http.MethodGet, "/v1/bets?status=won", nil)
	assert.Empty(t, decode[dto.BetsResponse](t, rec).Bets)
}

func TestResetEndpoint(t *testing.T) {
	h, store := newTestAPI(t)
	seedEvent(t, h)

	rec := do(t, h, http.MethodPost, "/v1/store/reset", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, store.Events())
	assert.Equal(t, 100.0, store.Balance())
}
