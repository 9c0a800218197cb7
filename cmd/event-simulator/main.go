package main

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/radieske/bet-ledger-poc/internal/ledger"
	"github.com/radieske/bet-ledger-poc/internal/shared/config"
	"github.com/radieske/bet-ledger-poc/internal/shared/logger"
	"github.com/radieske/bet-ledger-poc/internal/shared/metrics"
	"github.com/radieske/bet-ledger-poc/internal/simulator"
)

// Métricas Prometheus do simulador
var (
	catalogsPushed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "simulator_catalogs_pushed_total",
		Help: "Catálogos de eventos enviados ao ledger",
	})
	statusPromotions = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "simulator_status_promotions_total",
		Help: "Transições de status aplicadas (upcoming->live->finished)",
	})
	pushErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "simulator_push_errors_total",
		Help: "Falhas de comunicação com o ledger",
	})
)

func main() {
	cfg := config.Load()
	log, err := logger.New("event-simulator", cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	prometheus.MustRegister(catalogsPushed, statusPromotions, pushErrors)
	metrics.StartMetricsServer(cfg.MetricsPort, func(context.Context) error { return nil })

	gen := simulator.New(time.Now().UnixNano())
	cli := simulator.NewClient(cfg.LedgerURL)
	ctx := context.Background()

	// Semeia o catálogo inicial; insiste até o ledger responder
	for {
		events := gen.Catalog(cfg.EventCount)
		if err := cli.SetEvents(ctx, events); err != nil {
			pushErrors.Inc()
			log.Warn("seed catalog failed, retrying", zap.Error(err))
			time.Sleep(2 * time.Second)
			continue
		}
		catalogsPushed.Inc()
		log.Info("catalog seeded", zap.Int("events", len(events)))
		break
	}

	// Promove status de eventos periodicamente: upcoming -> live -> finished
	ticker := time.NewTicker(cfg.SimInterval)
	defer ticker.Stop()
	for range ticker.C {
		events, err := cli.ListEvents(ctx)
		if err != nil {
			pushErrors.Inc()
			log.Warn("list events failed", zap.Error(err))
			continue
		}

		now := time.Now()
		for _, e := range events {
			var next ledger.EventStatus
			switch {
			case e.Status == ledger.EventUpcoming && e.Date.Before(now):
				next = ledger.EventLive
			case e.Status == ledger.EventLive && e.Date.Add(2*time.Hour).Before(now):
				next = ledger.EventFinished
			default:
				continue
			}
			if err := cli.UpdateStatus(ctx, e.ID, next); err != nil {
				pushErrors.Inc()
				log.Warn("status promotion failed",
					zap.String("event_id", e.ID),
					zap.String("status", string(next)),
					zap.Error(err),
				)
				continue
			}
			statusPromotions.Inc()
			log.Info("event promoted",
				zap.String("event_id", e.ID),
				zap.String("status", string(next)),
			)
		}
	}
}
