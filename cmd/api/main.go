package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/score-ranking-api/infrastructure/database/postgres"
	"github.com/vfg2006/score-ranking-api/infrastructure/migration"
	"github.com/vfg2006/score-ranking-api/infrastructure/repository"
	"github.com/vfg2006/score-ranking-api/internal/api"
	"github.com/vfg2006/score-ranking-api/internal/config"
	"github.com/vfg2006/score-ranking-api/internal/scheduler"
	"github.com/vfg2006/score-ranking-api/internal/usecases/ranking"
	"github.com/vfg2006/score-ranking-api/pkg/log"
	"github.com/vfg2006/score-ranking-api/pkg/metrics"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel, cfg.App.Env == "production")
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Sem banco ou sem schema o processo não chega a servir requisições
	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if err := migration.Migrate(ctx, pgConn); err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar migração do schema")
	}

	scoreRepo := repository.NewScoreRepository(pgConn)
	rankingService := ranking.NewScoreRankingService(scoreRepo)

	var metricsManager *metrics.Manager
	var statsSink scheduler.GameStatsSink
	if cfg.Metrics.Enabled {
		metricsManager = metrics.NewManager()
		statsSink = metricsManager
		rankingService.WithMetrics(metricsManager)
	}

	gameStatsService := scheduler.NewGameStatsService(scoreRepo, statsSink, cfg)
	if err := gameStatsService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de estatísticas por jogo")
	}

	server, err := api.New(cfg, rankingService, metricsManager)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
