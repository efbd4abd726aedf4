package ranking

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

import (
	"context"
	"strings"

	"github.com/vfg2006/score-ranking-api/infrastructure/repository"
	"github.com/vfg2006/score-ranking-api/internal/domain"
	"github.com/vfg2006/score-ranking-api/pkg/apiErrors"
	"github.com/vfg2006/score-ranking-api/pkg/log"
)

// Resultados de submissão reportados ao SubmissionObserver
const (
	SubmissionCreated = "created"
	SubmissionInvalid = "invalid"
	SubmissionFailed  = "error"
)

type RankingService interface {
	Submit(ctx context.Context, request domain.SubmitScoreRequest) (*domain.Score, error)
	GetTopRanking(ctx context.Context, gameID string, limit string) ([]domain.Score, error)
	GetLatest(ctx context.Context, gameID string, limit string) ([]domain.Score, error)
	HealthCheck() bool
}

// SubmissionObserver recebe o resultado de cada submissão (métricas)
type SubmissionObserver interface {
	ObserveSubmission(result string)
}

type ScoreRankingService struct {
	ScoreRepository repository.ScoreRepository
	observer        SubmissionObserver
}

func NewScoreRankingService(scoreRepository repository.ScoreRepository) *ScoreRankingService {
	return &ScoreRankingService{
		ScoreRepository: scoreRepository,
	}
}

// WithMetrics registra um observer para o resultado das submissões
func (s *ScoreRankingService) WithMetrics(observer SubmissionObserver) *ScoreRankingService {
	s.observer = observer
	return s
}

// Submit valida, sanitiza e grava uma nova pontuação.
// A validação para no primeiro campo inválido, na ordem game_id, name, score.
func (s *ScoreRankingService) Submit(ctx context.Context, request domain.SubmitScoreRequest) (*domain.Score, error) {
	gameID, ok := sanitizeRequired(request.GameID, MaxGameIDLength)
	if !ok {
		s.observe(SubmissionInvalid)
		return nil, NewValidationError(ErrGameIDRequired, apiErrors.ErrMissingRequiredData)
	}

	name, ok := sanitizeRequired(request.Name, MaxNameLength)
	if !ok {
		s.observe(SubmissionInvalid)
		return nil, NewValidationError(ErrNameRequired, apiErrors.ErrMissingRequiredData)
	}

	score, err := ParseScore(request.Score)
	if err != nil {
		s.observe(SubmissionInvalid)
		return nil, NewValidationError(ErrInvalidScore, apiErrors.ErrInvalidFormat)
	}

	record, err := s.ScoreRepository.Insert(ctx, gameID, name, score)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithFields(log.Fields{
			"game_id": gameID,
		}).Error("Erro ao gravar pontuação")

		s.observe(SubmissionFailed)
		return nil, NewServerError(gameID)
	}

	s.observe(SubmissionCreated)
	return record, nil
}

// GetTopRanking retorna as maiores pontuações do jogo (score desc, created_at asc)
func (s *ScoreRankingService) GetTopRanking(ctx context.Context, gameID string, limit string) ([]domain.Score, error) {
	gameID = strings.TrimSpace(gameID)
	if gameID == "" {
		return nil, NewValidationError(ErrGameIDRequired, apiErrors.ErrMissingRequiredData)
	}

	scores, err := s.ScoreRepository.TopByScore(ctx, gameID, ParseLimit(limit, DefaultTopLimit))
	if err != nil {
		log.ForContext(ctx).WithError(err).WithFields(log.Fields{
			"game_id": gameID,
		}).Error("Erro ao buscar ranking do jogo")
		return nil, NewServerError(gameID)
	}

	return scores, nil
}

// GetLatest retorna as submissões mais recentes do jogo
func (s *ScoreRankingService) GetLatest(ctx context.Context, gameID string, limit string) ([]domain.Score, error) {
	gameID = strings.TrimSpace(gameID)
	if gameID == "" {
		return nil, NewValidationError(ErrGameIDRequired, apiErrors.ErrMissingRequiredData)
	}

	scores, err := s.ScoreRepository.LatestByTime(ctx, gameID, ParseLimit(limit, DefaultLatestLimit))
	if err != nil {
		log.ForContext(ctx).WithError(err).WithFields(log.Fields{
			"game_id": gameID,
		}).Error("Erro ao buscar últimas pontuações do jogo")
		return nil, NewServerError(gameID)
	}

	return scores, nil
}

// HealthCheck não consulta o banco: indica apenas que o processo está de pé
func (s *ScoreRankingService) HealthCheck() bool {
	return true
}

func (s *ScoreRankingService) observe(result string) {
	if s.observer != nil {
		s.observer.ObserveSubmission(result)
	}
}
