package ledger

import "errors"

// Erros sentinela do domínio — comparar com errors.Is().
var (
	// ErrInsufficientBalance indica aposta ou saque acima do saldo atual.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrEventNotFound indica referência a um evento ausente do catálogo.
	ErrEventNotFound = errors.New("event not found")

	// ErrBetNotFound indica referência a uma aposta inexistente.
	ErrBetNotFound = errors.New("bet not found")

	// ErrBetAlreadySettled indica tentativa de liquidar uma aposta já
	// liquidada. O estado permanece intacto.
	ErrBetAlreadySettled = errors.New("bet already settled")

	// ErrInvalidAmount indica valor não positivo em depósito/saque/aposta.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrOddsChanged indica que as odds informadas pelo chamador divergem da
	// perna atual do evento (ou a perna não existe, ex: draw no tênis).
	ErrOddsChanged = errors.New("odds changed")

	// ErrInvalidResult indica um desfecho de liquidação fora de won|lost.
	ErrInvalidResult = errors.New("invalid bet result")

	// ErrInvalidPrediction indica uma predição fora de home|draw|away.
	// Distinto de ErrOddsChanged: aqui a entrada é malformada, não é o
	// catálogo que mudou.
	ErrInvalidPrediction = errors.New("invalid prediction")

	// ErrCorruptSnapshot marca um documento persistido que existe mas não
	// desserializa. Implementações de Persistence embrulham o erro de parse
	// nele; só esse caso autoriza o fallback ao estado inicial no Init.
	ErrCorruptSnapshot = errors.New("corrupt persisted snapshot")
)

// IsNotFound informa se err é um dos erros de entidade ausente.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrEventNotFound) || errors.Is(err, ErrBetNotFound)
}

// IsConflict informa se err representa conflito de estado (liquidação dupla,
// odds divergentes, saldo insuficiente).
func IsConflict(err error) bool {
	return errors.Is(err, ErrBetAlreadySettled) ||
		errors.Is(err, ErrOddsChanged) ||
		errors.Is(err, ErrInsufficientBalance)
}
