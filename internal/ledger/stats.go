package ledger

// BettingStats recalcula o resumo agregado sobre o snapshot atual do ledger a
// cada chamada (sem cache, sem invalidação). WinRate é definido apenas sobre
// apostas liquidadas: com zero liquidadas devolve 0, e o chamador usa os
// contadores WonBets/LostBets para distinguir "sem dados" de 0% real.
func (s *Store) BettingStats() BettingStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := BettingStats{TotalBets: len(s.bets)}
	for _, b := range s.bets {
		switch b.Status {
		case BetActive:
			st.ActiveBets++
		case BetWon:
			st.WonBets++
			st.TotalWinnings += b.PotentialWin
		case BetLost:
			st.LostBets++
			st.TotalLosses += b.Amount
		}
	}

	if resolved := st.WonBets + st.LostBets; resolved > 0 {
		st.WinRate = float64(st.WonBets) / float64(resolved) * 100
	}
	return st
}
