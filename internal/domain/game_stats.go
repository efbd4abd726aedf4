package domain

import "time"

// GameStats resume a quantidade de submissões por jogo
type GameStats struct {
	Submissions map[string]int64 `json:"submissions"`
	CollectedAt time.Time        `json:"collected_at"`
}
