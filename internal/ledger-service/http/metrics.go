package httpapi

import "github.com/prometheus/client_golang/prometheus"

// Métricas Prometheus do serviço de ledger.
var (
	betsPlacedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ledger_bets_placed_total",
		Help: "Total de apostas criadas",
	})
	betsSettledTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ledger_bets_settled_total",
		Help: "Total de apostas liquidadas por desfecho",
	}, []string{"result"})
	depositsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ledger_deposits_total",
		Help: "Total de depósitos aceitos",
	})
	withdrawalsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ledger_withdrawals_total",
		Help: "Total de saques aceitos",
	})
	actionErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ledger_action_errors_total",
		Help: "Total de ações rejeitadas por pré-condição",
	}, []string{"action"})
)

func init() {
	prometheus.MustRegister(
		betsPlacedTotal,
		betsSettledTotal,
		depositsTotal,
		withdrawalsTotal,
		actionErrorsTotal,
	)
}
