package ledger

// Flags transitórias de loading/erro por domínio (events/bets/balance),
// consumidas pela camada de apresentação. Cada tripla é independente e nada
// aqui é persistido.

// Loading devolve as flags de carregamento atuais.
func (s *Store) Loading() LoadingState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Errors devolve os slots de erro atuais.
func (s *Store) Errors() ErrorState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errs
}

// SetLoading liga/desliga a flag de loading de um domínio sem tocar nos demais.
func (s *Store) SetLoading(domain string, value bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch domain {
	case DomainEvents:
		s.loading.Events = value
	case DomainBets:
		s.loading.Bets = value
	case DomainBalance:
		s.loading.Balance = value
	}
}

// SetError define (ou limpa, com nil) o slot de erro de um domínio.
func (s *Store) SetError(domain string, value *string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch domain {
	case DomainEvents:
		s.errs.Events = value
	case DomainBets:
		s.errs.Bets = value
	case DomainBalance:
		s.errs.Balance = value
	}
}

// ClearErrors zera os três slots de erro sem tocar nas flags de loading.
func (s *Store) ClearErrors() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errs = ErrorState{}
}
