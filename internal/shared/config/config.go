package config

import (
	"os"
	"strconv"
	"time"

	ctopics "github.com/radieske/bet-ledger-poc/pkg/contracts/topics"
)

// Config centraliza variáveis de ambiente e parâmetros de execução dos serviços
// Inclui conexões, tópicos, URLs, portas e os parâmetros do ledger
type Config struct {
	Env         string // "local", "dev", "prod"
	ServiceName string // ex: "ledger-service", "event-simulator"

	RedisAddr    string
	PostgresDSN  string // vazio desabilita o arquivo histórico em Postgres
	KafkaBrokers string // vazio desabilita os eventos de contrato ("a:9092,b:9092")

	// Tópicos/canais
	TopicBetPlaced  string
	TopicBetSettled string

	// Parâmetros do ledger
	PersistKey     string        // chave Redis do snapshot
	InitialBalance float64       // saldo inicial do usuário
	EventCount     int           // tamanho do catálogo gerado em loadEvents
	LoadDelay      time.Duration // atraso sintético de loadEvents

	// Simulador
	LedgerURL   string        // URL base do ledger-service
	SimInterval time.Duration // intervalo de promoção de status

	// Portas do serviço atual
	HTTPPort    string // Porta pública (API REST + WS)
	MetricsPort string // Porta exclusiva para /metrics e /healthz
}

// Load carrega variáveis de ambiente e define defaults para cada serviço
// Resolve portas conforme o SERVICE_NAME
func Load() Config {
	svc := getEnv("SERVICE_NAME", "")
	env := getEnv("ENV", "local")

	cfg := Config{
		Env:         env,
		ServiceName: svc,

		RedisAddr:    getEnv("REDIS_ADDR", "localhost:6379"),
		PostgresDSN:  getEnv("POSTGRES_DSN", ""),
		KafkaBrokers: getEnv("KAFKA_BROKERS", ""),

		TopicBetPlaced:  getEnv("KAFKA_TOPIC_BET_PLACED", ctopics.BetPlaced),
		TopicBetSettled: getEnv("KAFKA_TOPIC_BET_SETTLED", ctopics.BetSettled),

		PersistKey:     getEnv("PERSIST_KEY", "betting:store"),
		InitialBalance: getEnvFloat("INITIAL_BALANCE", 100),
		EventCount:     getEnvInt("EVENT_COUNT", 30),
		LoadDelay:      time.Duration(getEnvInt("LOAD_DELAY_MS", 500)) * time.Millisecond,

		LedgerURL:   getEnv("LEDGER_URL", "http://localhost:8080"),
		SimInterval: time.Duration(getEnvInt("SIM_INTERVAL_MS", 15000)) * time.Millisecond,
	}

	// Define portas padrão para cada serviço
	switch svc {
	case "event-simulator":
		cfg.HTTPPort = getEnv("HTTP_PORT_SIMULATOR", "") // simulador não expõe HTTP público
		cfg.MetricsPort = getEnv("METRICS_PORT_SIMULATOR", "9094")
	default: // ledger-service
		cfg.HTTPPort = getEnv("HTTP_PORT", "8080")
		cfg.MetricsPort = getEnv("METRICS_PORT", "9095")
	}

	return cfg
}

// getEnv retorna o valor da variável de ambiente ou o default
func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}
