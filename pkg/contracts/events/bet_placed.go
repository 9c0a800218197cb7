package events

type BetPlaced struct {
	BetID        string  `json:"bet_id"`
	EventID      string  `json:"event_id"`
	Amount       float64 `json:"amount"`
	OddValue     float64 `json:"odd_value"`
	Prediction   string  `json:"prediction"`
	PotentialWin float64 `json:"potential_win"`
	TsUnixMs     int64   `json:"ts_unix_ms"`
}
