package history

import (
	"context"
	"database/sql"

	"github.com/radieske/bet-ledger-poc/internal/ledger"
)

// PostgresArchive mantém o histórico append-only de apostas em banco Postgres,
// fora do caminho crítico do ledger em memória. Esquema esperado:
//
//	CREATE TABLE bet_history (
//	  bet_id        TEXT NOT NULL,
//	  event_id      TEXT NOT NULL,
//	  amount        DOUBLE PRECISION NOT NULL,
//	  odd_value     DOUBLE PRECISION NOT NULL,
//	  prediction    TEXT NOT NULL,
//	  potential_win DOUBLE PRECISION NOT NULL,
//	  phase         TEXT NOT NULL,  -- 'placed' | 'settled'
//	  result        TEXT,           -- 'won' | 'lost' quando phase='settled'
//	  created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
//	);
type PostgresArchive struct {
	DB *sql.DB
}

func NewPostgresArchive(db *sql.DB) *PostgresArchive {
	return &PostgresArchive{DB: db}
}

// RecordPlaced insere a linha de colocação da aposta.
func (a *PostgresArchive) RecordPlaced(ctx context.Context, b ledger.Bet) error {
	const q = `
		INSERT INTO bet_history
		  (bet_id, event_id, amount, odd_value, prediction, potential_win, phase, created_at)
		VALUES
		  ($1,$2,$3,$4,$5,$6,'placed',$7)
	`
	_, err := a.DB.ExecContext(ctx, q,
		b.ID, b.EventID, b.Amount, b.Odds, string(b.Prediction), b.PotentialWin, b.CreatedAt,
	)
	return err
}

// RecordSettled insere a linha de liquidação com o desfecho.
func (a *PostgresArchive) RecordSettled(ctx context.Context, b ledger.Bet, result ledger.BetResult) error {
	const q = `
		INSERT INTO bet_history
		  (bet_id, event_id, amount, odd_value, prediction, potential_win, phase, result)
		VALUES
		  ($1,$2,$3,$4,$5,$6,'settled',$7)
	`
	_, err := a.DB.ExecContext(ctx, q,
		b.ID, b.EventID, b.Amount, b.Odds, string(b.Prediction), b.PotentialWin, string(result),
	)
	return err
}
