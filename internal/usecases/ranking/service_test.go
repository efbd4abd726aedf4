package ranking

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/score-ranking-api/infrastructure/repository"
	"github.com/vfg2006/score-ranking-api/infrastructure/repository/mocks"
	"github.com/vfg2006/score-ranking-api/internal/domain"
	rankingmocks "github.com/vfg2006/score-ranking-api/internal/usecases/ranking/mocks"
	"github.com/vfg2006/score-ranking-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestScoreRankingService_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	createdAt := time.Date(2024, 5, 10, 12, 0, 0, 0, time.Local)

	tests := []struct {
		name     string
		request  domain.SubmitScoreRequest
		setup    func(repo *mocks.MockScoreRepository, observer *rankingmocks.MockSubmissionObserver)
		wantErr  error
		wantCode string
		validate func(t *testing.T, score *domain.Score)
	}{
		{
			name:    "Submissão válida - grava e retorna o registro",
			request: domain.SubmitScoreRequest{GameID: "pudding_jump", Name: "inho", Score: json.Number("123")},
			setup: func(repo *mocks.MockScoreRepository, observer *rankingmocks.MockSubmissionObserver) {
				repo.EXPECT().
					Insert(ctx, "pudding_jump", "inho", int64(123)).
					Return(&domain.Score{ID: 1, GameID: "pudding_jump", Name: "inho", Score: 123, CreatedAt: createdAt}, nil)
				observer.EXPECT().ObserveSubmission(SubmissionCreated)
			},
			validate: func(t *testing.T, score *domain.Score) {
				assert.Equal(t, int64(123), score.Score)
				assert.Equal(t, "pudding_jump", score.GameID)
				assert.Equal(t, "inho", score.Name)
			},
		},
		{
			name: "Campos com espaços e acima do tamanho - trim e truncamento",
			request: domain.SubmitScoreRequest{
				GameID: "  " + strings.Repeat("g", 60) + "  ",
				Name:   " " + strings.Repeat("n", 40) + " ",
				Score:  "7",
			},
			setup: func(repo *mocks.MockScoreRepository, observer *rankingmocks.MockSubmissionObserver) {
				repo.EXPECT().
					Insert(ctx, strings.Repeat("g", 50), strings.Repeat("n", 30), int64(7)).
					Return(&domain.Score{ID: 2, GameID: strings.Repeat("g", 50), Name: strings.Repeat("n", 30), Score: 7}, nil)
				observer.EXPECT().ObserveSubmission(SubmissionCreated)
			},
			validate: func(t *testing.T, score *domain.Score) {
				assert.Len(t, score.Name, 30)
				assert.Len(t, score.GameID, 50)
			},
		},
		{
			name:    "game_id vazio - falha mesmo com os outros campos inválidos",
			request: domain.SubmitScoreRequest{GameID: "", Name: "", Score: json.Number("-1")},
			setup: func(_ *mocks.MockScoreRepository, observer *rankingmocks.MockSubmissionObserver) {
				observer.EXPECT().ObserveSubmission(SubmissionInvalid)
			},
			wantErr:  ErrGameIDRequired,
			wantCode: apiErrors.ErrMissingRequiredData,
		},
		{
			name:    "game_id só com espaços",
			request: domain.SubmitScoreRequest{GameID: "   ", Name: "inho", Score: json.Number("1")},
			setup: func(_ *mocks.MockScoreRepository, observer *rankingmocks.MockSubmissionObserver) {
				observer.EXPECT().ObserveSubmission(SubmissionInvalid)
			},
			wantErr:  ErrGameIDRequired,
			wantCode: apiErrors.ErrMissingRequiredData,
		},
		{
			name:    "game_id não string",
			request: domain.SubmitScoreRequest{GameID: json.Number("10"), Name: "inho", Score: json.Number("1")},
			setup: func(_ *mocks.MockScoreRepository, observer *rankingmocks.MockSubmissionObserver) {
				observer.EXPECT().ObserveSubmission(SubmissionInvalid)
			},
			wantErr:  ErrGameIDRequired,
			wantCode: apiErrors.ErrMissingRequiredData,
		},
		{
			name:    "name ausente",
			request: domain.SubmitScoreRequest{GameID: "pudding_jump", Score: json.Number("1")},
			setup: func(_ *mocks.MockScoreRepository, observer *rankingmocks.MockSubmissionObserver) {
				observer.EXPECT().ObserveSubmission(SubmissionInvalid)
			},
			wantErr:  ErrNameRequired,
			wantCode: apiErrors.ErrMissingRequiredData,
		},
		{
			name:    "score negativo",
			request: domain.SubmitScoreRequest{GameID: "pudding_jump", Name: "inho", Score: json.Number("-1")},
			setup: func(_ *mocks.MockScoreRepository, observer *rankingmocks.MockSubmissionObserver) {
				observer.EXPECT().ObserveSubmission(SubmissionInvalid)
			},
			wantErr:  ErrInvalidScore,
			wantCode: apiErrors.ErrInvalidFormat,
		},
		{
			name:    "score fracionário",
			request: domain.SubmitScoreRequest{GameID: "pudding_jump", Name: "inho", Score: json.Number("1.5")},
			setup: func(_ *mocks.MockScoreRepository, observer *rankingmocks.MockSubmissionObserver) {
				observer.EXPECT().ObserveSubmission(SubmissionInvalid)
			},
			wantErr:  ErrInvalidScore,
			wantCode: apiErrors.ErrInvalidFormat,
		},
		{
			name:    "score não numérico",
			request: domain.SubmitScoreRequest{GameID: "pudding_jump", Name: "inho", Score: "muito"},
			setup: func(_ *mocks.MockScoreRepository, observer *rankingmocks.MockSubmissionObserver) {
				observer.EXPECT().ObserveSubmission(SubmissionInvalid)
			},
			wantErr:  ErrInvalidScore,
			wantCode: apiErrors.ErrInvalidFormat,
		},
		{
			name:    "Falha no banco - erro genérico sem detalhes",
			request: domain.SubmitScoreRequest{GameID: "pudding_jump", Name: "inho", Score: json.Number("10")},
			setup: func(repo *mocks.MockScoreRepository, observer *rankingmocks.MockSubmissionObserver) {
				repo.EXPECT().
					Insert(ctx, "pudding_jump", "inho", int64(10)).
					Return(nil, &repository.StorageError{Op: "insert", Err: errors.New("connection refused")})
				observer.EXPECT().ObserveSubmission(SubmissionFailed)
			},
			wantErr:  ErrServer,
			wantCode: apiErrors.ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockScoreRepository(ctrl)
			observer := rankingmocks.NewMockSubmissionObserver(ctrl)
			tt.setup(repo, observer)

			service := NewScoreRankingService(repo).WithMetrics(observer)
			score, err := service.Submit(ctx, tt.request)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Nil(t, score)
				assert.ErrorIs(t, err, tt.wantErr)

				var rankingErr *RankingError
				require.ErrorAs(t, err, &rankingErr)
				assert.Equal(t, tt.wantCode, rankingErr.Code)
				assert.NotContains(t, err.Error(), "connection refused")
				return
			}

			require.NoError(t, err)
			tt.validate(t, score)
		})
	}
}

func TestScoreRankingService_Submit_SemObserver(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockScoreRepository(ctrl)

	repo.EXPECT().
		Insert(gomock.Any(), "pudding_jump", "mina", int64(500)).
		Return(&domain.Score{ID: 3, GameID: "pudding_jump", Name: "mina", Score: 500}, nil)

	score, err := NewScoreRankingService(repo).Submit(context.Background(), domain.SubmitScoreRequest{
		GameID: "pudding_jump",
		Name:   "mina",
		Score:  json.Number("500"),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(500), score.Score)
}

func TestScoreRankingService_GetTopRanking(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	base := time.Date(2024, 5, 10, 12, 0, 0, 0, time.Local)

	t.Run("Repassa gameId sem espaços e limite limitado", func(t *testing.T) {
		repo := mocks.NewMockScoreRepository(ctrl)
		ranking := []domain.Score{
			{ID: 2, GameID: "pudding_jump", Name: "mina", Score: 500, CreatedAt: base.Add(time.Minute)},
			{ID: 1, GameID: "pudding_jump", Name: "inho", Score: 123, CreatedAt: base},
		}
		repo.EXPECT().TopByScore(ctx, "pudding_jump", uint64(200)).Return(ranking, nil)

		got, err := NewScoreRankingService(repo).GetTopRanking(ctx, " pudding_jump ", "999")
		require.NoError(t, err)
		assert.Equal(t, ranking, got)
	})

	t.Run("Limite padrão é 50", func(t *testing.T) {
		repo := mocks.NewMockScoreRepository(ctrl)
		repo.EXPECT().TopByScore(ctx, "pudding_jump", uint64(DefaultTopLimit)).Return([]domain.Score{}, nil)

		_, err := NewScoreRankingService(repo).GetTopRanking(ctx, "pudding_jump", "")
		require.NoError(t, err)
	})

	t.Run("Jogo inexistente retorna lista vazia sem erro", func(t *testing.T) {
		repo := mocks.NewMockScoreRepository(ctrl)
		repo.EXPECT().TopByScore(ctx, "nonexistent_game", uint64(50)).Return([]domain.Score{}, nil)

		got, err := NewScoreRankingService(repo).GetTopRanking(ctx, "nonexistent_game", "50")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("gameId ausente", func(t *testing.T) {
		repo := mocks.NewMockScoreRepository(ctrl)

		_, err := NewScoreRankingService(repo).GetTopRanking(ctx, "  ", "10")
		assert.ErrorIs(t, err, ErrGameIDRequired)
		assert.True(t, IsValidationError(err))
	})

	t.Run("Falha no banco", func(t *testing.T) {
		repo := mocks.NewMockScoreRepository(ctrl)
		repo.EXPECT().TopByScore(ctx, "pudding_jump", uint64(10)).Return(nil, errors.New("timeout"))

		_, err := NewScoreRankingService(repo).GetTopRanking(ctx, "pudding_jump", "10")
		assert.ErrorIs(t, err, ErrServer)
		assert.False(t, IsValidationError(err))
	})
}

func TestScoreRankingService_GetLatest(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	t.Run("Limite padrão é 20", func(t *testing.T) {
		repo := mocks.NewMockScoreRepository(ctrl)
		repo.EXPECT().LatestByTime(ctx, "pudding_jump", uint64(DefaultLatestLimit)).Return([]domain.Score{}, nil)

		got, err := NewScoreRankingService(repo).GetLatest(ctx, "pudding_jump", "abc")
		require.NoError(t, err)
		assert.NotNil(t, got)
	})

	t.Run("Limite abaixo do mínimo", func(t *testing.T) {
		repo := mocks.NewMockScoreRepository(ctrl)
		repo.EXPECT().LatestByTime(ctx, "pudding_jump", uint64(MinLimit)).Return([]domain.Score{}, nil)

		_, err := NewScoreRankingService(repo).GetLatest(ctx, "pudding_jump", "-7")
		require.NoError(t, err)
	})

	t.Run("gameId ausente", func(t *testing.T) {
		repo := mocks.NewMockScoreRepository(ctrl)

		_, err := NewScoreRankingService(repo).GetLatest(ctx, "", "")
		assert.ErrorIs(t, err, ErrGameIDRequired)
	})

	t.Run("Falha no banco", func(t *testing.T) {
		repo := mocks.NewMockScoreRepository(ctrl)
		repo.EXPECT().LatestByTime(ctx, "pudding_jump", uint64(20)).Return(nil, errors.New("timeout"))

		_, err := NewScoreRankingService(repo).GetLatest(ctx, "pudding_jump", "")
		assert.ErrorIs(t, err, ErrServer)
	})
}

func TestScoreRankingService_HealthCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockScoreRepository(ctrl)

	// Nenhuma chamada ao repositório é esperada
	assert.True(t, NewScoreRankingService(repo).HealthCheck())
}
