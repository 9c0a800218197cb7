package main

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/radieske/bet-ledger-poc/internal/ledger"
	"github.com/radieske/bet-ledger-poc/internal/ledger-service/history"
	lhttp "github.com/radieske/bet-ledger-poc/internal/ledger-service/http"
	"github.com/radieske/bet-ledger-poc/internal/ledger-service/producer"
	"github.com/radieske/bet-ledger-poc/internal/ledger-service/pubsub"
	"github.com/radieske/bet-ledger-poc/internal/ledger-service/ws"
	"github.com/radieske/bet-ledger-poc/internal/ledger/persist"
	"github.com/radieske/bet-ledger-poc/internal/shared/cache"
	"github.com/radieske/bet-ledger-poc/internal/shared/config"
	"github.com/radieske/bet-ledger-poc/internal/shared/db"
	skafka "github.com/radieske/bet-ledger-poc/internal/shared/kafka"
	"github.com/radieske/bet-ledger-poc/internal/shared/logger"
	"github.com/radieske/bet-ledger-poc/internal/shared/metrics"
	"github.com/radieske/bet-ledger-poc/internal/simulator"
)

func main() {
	cfg := config.Load()
	log, err := logger.New("ledger-service", cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()
	log.Info("starting service", zap.String("service", "ledger-service"), zap.String("env", cfg.Env))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Redis: slot durável do snapshot + canal de broadcast
	rdb, err := cache.ConnectRedis(cfg.RedisAddr)
	if err != nil {
		log.Fatal("redis connect", zap.Error(err))
	}

	// Publisher de eventos de contrato (Kafka é opcional no demo)
	var publ ledger.Publisher = producer.Noop{}
	if cfg.KafkaBrokers != "" {
		placed := skafka.NewWriter(cfg.KafkaBrokers, cfg.TopicBetPlaced)
		settled := skafka.NewWriter(cfg.KafkaBrokers, cfg.TopicBetSettled)
		defer placed.Close()
		defer settled.Close()
		publ = producer.NewKafkaPublisher(placed, settled)
		log.Info("kafka publisher enabled", zap.String("brokers", cfg.KafkaBrokers))
	}

	// Arquivo histórico de apostas (Postgres é opcional no demo)
	var archive ledger.Archive
	if cfg.PostgresDSN != "" {
		pg, err := db.ConnectPostgres(cfg.PostgresDSN)
		if err != nil {
			log.Fatal("postgres connect", zap.Error(err))
		}
		defer pg.Close()
		archive = history.NewPostgresArchive(pg)
		log.Info("bet history archive enabled")
	}

	gen := simulator.New(time.Now().UnixNano())

	store := ledger.New(log, persist.NewRedis(rdb, cfg.PersistKey), ledger.Options{
		InitialBalance: cfg.InitialBalance,
		LoadDelay:      cfg.LoadDelay,
		EventCount:     cfg.EventCount,
		Events:         gen.Source(),
		Notifier:       pubsub.NewRedisBroadcaster(rdb, log),
		Publisher:      publ,
		Archive:        archive,
	})
	if err := store.Init(ctx); err != nil {
		log.Fatal("restore ledger state", zap.Error(err))
	}
	log.Info("ledger restored",
		zap.Int("events", len(store.Events())),
		zap.Int("bets", len(store.BetsByStatus(""))),
		zap.Float64("balance", store.Balance()),
	)

	// Feed de mudanças: Redis Pub/Sub -> hub WebSocket
	hub := ws.NewHub(func(r *http.Request) bool { return true })
	ws.StartRedisSubscriber(ctx, rdb, hub, log)

	api := lhttp.NewServer(log, store, hub.HandleWS)
	apiSrv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: api.Router(),
	}

	// Servidor de métricas e health check
	metrics.StartMetricsServer(cfg.MetricsPort, func(ctx context.Context) error {
		return rdb.Ping(ctx).Err()
	})
	log.Info("metrics/health listening", zap.String("addr", ":"+cfg.MetricsPort))

	log.Info("api listening", zap.String("addr", apiSrv.Addr))
	if err := apiSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("api srv", zap.Error(err))
	}
}
