package handler

import (
	"net/http"

	"github.com/vfg2006/score-ranking-api/internal/api/handler/router"
	"github.com/vfg2006/score-ranking-api/internal/usecases/ranking"
	"github.com/vfg2006/score-ranking-api/pkg/middleware"
)

func Healthcheck(service ranking.RankingService) []router.Route {
	return []router.Route{
		{
			Path:    "/health",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(service),
		},
	}
}

// Scores registra as rotas de submissão e consulta de ranking.
// /rankings/latest fica fora do prefixo /api por compatibilidade com clientes existentes.
func Scores(service ranking.RankingService, observer middleware.HTTPObserver) []router.Route {
	routes := []router.Route{
		{
			Path:    "/api/score",
			Method:  http.MethodPost,
			Handler: SubmitScore(service),
		},
		{
			Path:    "/api/rankings",
			Method:  http.MethodGet,
			Handler: GetTopRanking(service),
		},
		{
			Path:    "/rankings/latest",
			Method:  http.MethodGet,
			Handler: GetLatestScores(service),
		},
		{
			Path:    "/api/rankings/latest",
			Method:  http.MethodGet,
			Handler: GetLatestScores(service),
		},
	}

	for i := range routes {
		routes[i].Middlewares = []func(http.Handler) http.Handler{
			middleware.Instrument(observer, routes[i].Path),
		}
	}

	return routes
}

func Metrics(metricsHandler http.Handler) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metricsHandler,
		},
	}
}
