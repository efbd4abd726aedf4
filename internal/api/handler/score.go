package handler

import (
	"errors"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/score-ranking-api/internal/domain"
	"github.com/vfg2006/score-ranking-api/internal/usecases/ranking"
	"github.com/vfg2006/score-ranking-api/pkg/apiErrors"
	"github.com/vfg2006/score-ranking-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxBodyBytes = 64 << 10

// SubmitScore grava uma nova pontuação (POST /api/score)
func SubmitScore(service ranking.RankingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request domain.SubmitScoreRequest

		decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		decoder.UseNumber()

		// Corpo vazio é tratado como objeto vazio: a validação de campos decide a resposta
		if err := decoder.Decode(&request); err != nil && !errors.Is(err, io.EOF) {
			log.ForContext(r.Context()).WithError(err).Warn("Erro ao decodificar requisição")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		score, err := service.Submit(r.Context(), request)
		if err != nil {
			writeRankingError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, domain.SubmitScoreResponse{
			Message: "created",
			Data:    score,
		})
	}
}

// GetTopRanking retorna o ranking do jogo (GET /api/rankings?gameId=&limit=)
func GetTopRanking(service ranking.RankingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		scores, err := service.GetTopRanking(r.Context(), query.Get("gameId"), query.Get("limit"))
		if err != nil {
			writeRankingError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, scores)
	}
}

// GetLatestScores retorna as submissões mais recentes do jogo (GET /rankings/latest?gameId=&limit=)
func GetLatestScores(service ranking.RankingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		scores, err := service.GetLatest(r.Context(), query.Get("gameId"), query.Get("limit"))
		if err != nil {
			writeRankingError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, scores)
	}
}

// writeRankingError nunca repassa detalhes internos: erros fora de RankingError viram "server error"
func writeRankingError(w http.ResponseWriter, err error) {
	var rankingErr *ranking.RankingError
	if errors.As(err, &rankingErr) {
		apiErrors.WriteError(w, rankingErr.Code, rankingErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, ranking.ErrServer.Error(), nil)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.L.WithError(err).Error("Erro ao enviar resposta")
	}
}
