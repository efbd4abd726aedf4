package ranking

import (
	"errors"

	"github.com/vfg2006/score-ranking-api/pkg/apiErrors"
)

// Erros específicos para o contexto de ranking. As mensagens são expostas ao cliente.
var (
	// Erros de validação
	ErrGameIDRequired = errors.New("game_id required")
	ErrNameRequired   = errors.New("name required")
	ErrInvalidScore   = errors.New("score must be non-negative integer")

	// Erro genérico de servidor, nunca carrega o detalhe do banco
	ErrServer = errors.New("server error")
)

// RankingError é um erro com contexto adicional para o ranking
type RankingError struct {
	Err    error  // Erro base
	Code   string // Código de erro para API
	GameID string // Jogo envolvido (quando aplicável)
}

// Error implementa a interface error
func (e *RankingError) Error() string {
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *RankingError) Unwrap() error {
	return e.Err
}

// NewValidationError cria um RankingError para entrada inválida do cliente
func NewValidationError(err error, code string) *RankingError {
	return &RankingError{
		Err:  err,
		Code: code,
	}
}

// NewServerError cria um RankingError genérico de servidor para o jogo informado
func NewServerError(gameID string) *RankingError {
	return &RankingError{
		Err:    ErrServer,
		Code:   apiErrors.ErrDatabaseOperation,
		GameID: gameID,
	}
}

// IsValidationError indica se o erro veio de entrada inválida do cliente
func IsValidationError(err error) bool {
	return errors.Is(err, ErrGameIDRequired) ||
		errors.Is(err, ErrNameRequired) ||
		errors.Is(err, ErrInvalidScore)
}
