// Package migration aplica o schema do banco na inicialização do serviço
package migration

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/score-ranking-api/infrastructure/database/postgres"
)

//go:embed sql/*.sql
var scripts embed.FS

// Migrate executa todos os scripts em ordem lexicográfica dentro de uma única transação.
// Os scripts são idempotentes (IF NOT EXISTS), então rodar a cada boot é seguro.
func Migrate(ctx context.Context, conn postgres.Conn) error {
	names, err := fs.Glob(scripts, "sql/*.sql")
	if err != nil {
		return fmt.Errorf("migration: erro ao listar scripts: %w", err)
	}
	sort.Strings(names)

	startTime := time.Now()
	logrus.WithField("scripts", len(names)).Info("Iniciando migração do schema")

	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, name := range names {
			content, err := scripts.ReadFile(name)
			if err != nil {
				return fmt.Errorf("migration: erro ao ler %s: %w", name, err)
			}

			if _, err := tx.ExecContext(ctx, string(content)); err != nil {
				return fmt.Errorf("migration: erro ao executar %s: %w", name, err)
			}

			logrus.WithField("script", name).Debug("Script de migração aplicado")
		}
		return nil
	})
	if err != nil {
		return err
	}

	logrus.WithField("duration", time.Since(startTime)).Info("Migração do schema concluída")
	return nil
}
