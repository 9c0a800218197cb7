package ledger

import "time"

// Tipos e constantes do domínio de apostas.
// O layout JSON precisa ser estável: é o mesmo documento persistido no slot
// durável e devolvido pela API.

type Sport string

const (
	SportFootball   Sport = "football"
	SportBasketball Sport = "basketball"
	SportTennis     Sport = "tennis"
	SportVolleyball Sport = "volleyball"
)

type EventStatus string

const (
	EventUpcoming EventStatus = "upcoming"
	EventLive     EventStatus = "live"
	EventFinished EventStatus = "finished"
)

type BetStatus string

const (
	BetActive BetStatus = "active"
	BetWon    BetStatus = "won"
	BetLost   BetStatus = "lost"
)

type Prediction string

const (
	PredictHome Prediction = "home"
	PredictDraw Prediction = "draw"
	PredictAway Prediction = "away"
)

// BetResult é o desfecho informado na liquidação de uma aposta.
type BetResult string

const (
	ResultWon  BetResult = "won"
	ResultLost BetResult = "lost"
)

// Odds são multiplicadores decimais (> 1.0). Draw == 0 indica que o mercado
// não oferece empate (ex: tênis).
type Odds struct {
	Home float64 `json:"home"`
	Draw float64 `json:"draw,omitempty"`
	Away float64 `json:"away"`
}

// HasDraw informa se o evento oferece o mercado de empate.
func (o Odds) HasDraw() bool { return o.Draw > 0 }

// ForPrediction devolve o multiplicador da perna escolhida.
// Retorna 0 quando a perna não existe (draw ausente ou predição inválida).
func (o Odds) ForPrediction(p Prediction) float64 {
	switch p {
	case PredictHome:
		return o.Home
	case PredictDraw:
		return o.Draw
	case PredictAway:
		return o.Away
	}
	return 0
}

// SportEvent representa um evento esportivo do catálogo.
// Criado pelo gerador de dados; mutado apenas via transição de status.
type SportEvent struct {
	ID       string      `json:"id"`
	HomeTeam string      `json:"homeTeam"`
	AwayTeam string      `json:"awayTeam"`
	Date     time.Time   `json:"date"`
	Odds     Odds        `json:"odds"`
	Sport    Sport       `json:"sport"`
	Status   EventStatus `json:"status"`
}

// Bet é uma aposta contra um evento. O campo Event é um snapshot imutável das
// odds no momento da aposta, desacoplado de mudanças posteriores no catálogo.
// PotentialWin = Amount × Odds, calculado uma única vez na criação.
type Bet struct {
	ID           string     `json:"id"`
	EventID      string     `json:"eventId"`
	Event        SportEvent `json:"event"`
	Amount       float64    `json:"amount"`
	Odds         float64    `json:"odds"`
	Prediction   Prediction `json:"prediction"`
	Status       BetStatus  `json:"status"`
	CreatedAt    time.Time  `json:"createdAt"`
	PotentialWin float64    `json:"potentialWin"`
}

// User guarda o saldo e os contadores agregados do usuário.
// Balance nunca fica negativo; os contadores só crescem.
type User struct {
	Balance     float64 `json:"balance"`
	TotalBets   int     `json:"totalBets"`
	TotalWins   int     `json:"totalWins"`
	TotalLosses int     `json:"totalLosses"`
}

// PlaceBetRequest é o pedido de criação de aposta vindo do chamador.
// Odds é opcional: quando informado, precisa bater com a perna do evento
// (as odds efetivas são sempre re-derivadas do catálogo).
type PlaceBetRequest struct {
	EventID    string     `json:"eventId"`
	Amount     float64    `json:"amount"`
	Odds       float64    `json:"odds,omitempty"`
	Prediction Prediction `json:"prediction"`
}

// BettingStats é o resumo recalculado a cada leitura sobre o ledger de apostas.
// WonBets+LostBets == 0 permite ao chamador distinguir "sem dados" de 0%.
type BettingStats struct {
	TotalBets     int     `json:"totalBets"`
	ActiveBets    int     `json:"activeBets"`
	WonBets       int     `json:"wonBets"`
	LostBets      int     `json:"lostBets"`
	TotalWinnings float64 `json:"totalWinnings"`
	TotalLosses   float64 `json:"totalLosses"`
	WinRate       float64 `json:"winRate"`
}

// LoadingState e ErrorState são flags transitórias por domínio, consumidas
// pela camada de apresentação. Nunca são persistidas.
type LoadingState struct {
	Events  bool `json:"events"`
	Bets    bool `json:"bets"`
	Balance bool `json:"balance"`
}

type ErrorState struct {
	Events  *string `json:"events"`
	Bets    *string `json:"bets"`
	Balance *string `json:"balance"`
}

// Snapshot é o estado persistível do ledger: {events, bets, user}.
type Snapshot struct {
	Events []SportEvent `json:"events"`
	Bets   []Bet        `json:"bets"`
	User   User         `json:"user"`
}
