// Package scheduler contém os serviços de agendamento em background
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/score-ranking-api/infrastructure/repository"
	"github.com/vfg2006/score-ranking-api/internal/config"
	"github.com/vfg2006/score-ranking-api/internal/domain"
)

const collectTimeout = 30 * time.Second

// GameStatsSink recebe o resultado de cada coleta (métricas)
type GameStatsSink interface {
	SetGameSubmissions(counts map[string]int64, collectedAt time.Time)
}

type GameStatsConfig struct {
	CronSchedule string
	Enabled      bool
}

// GameStatsService coleta periodicamente a quantidade de submissões por jogo.
// Apenas leitura: nunca altera a tabela de pontuações.
type GameStatsService struct {
	scheduler  *gocron.Scheduler
	scoreRepo  repository.ScoreRepository
	sink       GameStatsSink
	config     GameStatsConfig
	running    bool
	mutex      sync.Mutex
	lastStats  *domain.GameStats
	lastRunErr error
}

func NewGameStatsService(
	scoreRepo repository.ScoreRepository,
	sink GameStatsSink,
	cfg *config.Config,
) *GameStatsService {
	statsConfig := GameStatsConfig{
		CronSchedule: cfg.GameStats.CronSchedule,
		Enabled:      cfg.GameStats.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": statsConfig.CronSchedule,
		"enabled":       statsConfig.Enabled,
	}).Info("Configuração do agendador de estatísticas por jogo carregada")

	return &GameStatsService{
		scheduler: gocron.NewScheduler(time.Local),
		scoreRepo: scoreRepo,
		sink:      sink,
		config:    statsConfig,
	}
}

func (s *GameStatsService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Coleta de estatísticas por jogo desabilitada por configuração")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		collectCtx, cancel := context.WithTimeout(ctx, collectTimeout)
		defer cancel()

		if _, err := s.Collect(collectCtx); err != nil {
			logrus.WithError(err).Error("Erro na coleta de estatísticas por jogo")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar coleta de estatísticas por jogo: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de estatísticas por jogo")
		s.scheduler.Stop()
	}()

	return nil
}

// Collect executa uma coleta. Se outra já estiver em andamento, retorna a última conhecida.
func (s *GameStatsService) Collect(ctx context.Context) (*domain.GameStats, error) {
	s.mutex.Lock()
	if s.running {
		last := s.lastStats
		s.mutex.Unlock()
		logrus.Warn("Coleta de estatísticas por jogo já está em execução")
		return last, nil
	}
	s.running = true
	s.mutex.Unlock()

	defer func() {
		s.mutex.Lock()
		s.running = false
		s.mutex.Unlock()
	}()

	startTime := time.Now()
	counts, err := s.scoreRepo.CountByGame(ctx)
	if err != nil {
		s.mutex.Lock()
		s.lastRunErr = err
		s.mutex.Unlock()
		return nil, fmt.Errorf("erro ao contar submissões por jogo: %w", err)
	}

	stats := &domain.GameStats{
		Submissions: counts,
		CollectedAt: time.Now(),
	}

	if s.sink != nil {
		s.sink.SetGameSubmissions(stats.Submissions, stats.CollectedAt)
	}

	s.mutex.Lock()
	s.lastStats = stats
	s.lastRunErr = nil
	s.mutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"games":    len(counts),
		"duration": time.Since(startTime).String(),
	}).Info("Coleta de estatísticas por jogo concluída")

	return stats, nil
}

// LastStats retorna a última coleta bem sucedida e o erro da última execução
func (s *GameStatsService) LastStats() (*domain.GameStats, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.lastStats, s.lastRunErr
}
