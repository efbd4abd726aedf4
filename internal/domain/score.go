// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

// Score é uma submissão de pontuação, imutável depois de gravada
type Score struct {
	ID        int64     `json:"id"`
	GameID    string    `json:"game_id"`
	Name      string    `json:"name"`
	Score     int64     `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

// SubmitScoreRequest é o corpo recebido em POST /api/score.
// Os campos são any porque a validação decide o que é aceito (ver ranking.ParseScore).
type SubmitScoreRequest struct {
	GameID any `json:"gameId"`
	Name   any `json:"name"`
	Score  any `json:"score"`
}

type SubmitScoreResponse struct {
	Message string `json:"message"`
	Data    *Score `json:"data"`
}

type HealthResponse struct {
	OK bool `json:"ok"`
}
