package handler

import (
	"net/http"

	"github.com/vfg2006/score-ranking-api/internal/domain"
	"github.com/vfg2006/score-ranking-api/internal/usecases/ranking"
)

// HealthcheckHandler responde a liveness sem tocar no banco
func HealthcheckHandler(service ranking.RankingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, domain.HealthResponse{OK: service.HealthCheck()})
	})
}
