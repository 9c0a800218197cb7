package ledger

import "context"

// Operações de carteira (Wallet). O saldo é o único recurso mutável
// compartilhado entre a carteira e o ledger de apostas; nunca fica negativo.

// User devolve o usuário atual (saldo + contadores).
func (s *Store) User() User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Balance devolve o saldo atual.
func (s *Store) Balance() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user.Balance
}

// UpdateBalance soma delta ao saldo, com piso em zero: delta negativo em
// excesso é absorvido silenciosamente, não rejeitado. Devolve o novo saldo.
func (s *Store) UpdateBalance(ctx context.Context, delta float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user.Balance += delta
	if s.user.Balance < 0 {
		s.user.Balance = 0
	}
	s.commitLocked(ctx, DomainBalance, s.user)
	return s.user.Balance
}

// DepositBalance credita amount no saldo. Valor não positivo falha com
// ErrInvalidAmount sem efeito colateral; não há teto nesta camada (limites
// superiores são validação de formulário, fora do núcleo).
func (s *Store) DepositBalance(ctx context.Context, amount float64) (float64, error) {
	if amount <= 0 {
		msg := "valor de depósito deve ser positivo"
		s.SetError(DomainBalance, &msg)
		return s.Balance(), ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.errs.Balance = nil
	s.user.Balance += amount
	s.commitLocked(ctx, DomainBalance, s.user)
	return s.user.Balance, nil
}

// WithdrawBalance debita amount do saldo. Devolve false (saldo intacto) para
// valor não positivo ou acima do saldo — flag booleana, não erro.
func (s *Store) WithdrawBalance(ctx context.Context, amount float64) (float64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if amount <= 0 || amount > s.user.Balance {
		return s.user.Balance, false
	}

	s.user.Balance -= amount
	s.commitLocked(ctx, DomainBalance, s.user)
	return s.user.Balance, true
}

// CanAffordBet é o predicado puro de aposta: amount > 0 e dentro do saldo.
func (s *Store) CanAffordBet(amount float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return amount > 0 && amount <= s.user.Balance
}
