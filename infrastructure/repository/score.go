// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

//go:generate mockgen -source=score.go -destination=mocks/score.go -package=mocks

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/score-ranking-api/infrastructure/database/postgres"
	"github.com/vfg2006/score-ranking-api/internal/domain"
)

const (
	scoresTable = "scores"
)

var scoreColumns = []string{
	"id",
	"game_id",
	"name",
	"score",
	"created_at",
}

// ScoreRepository é o armazenamento append-only das submissões de pontuação.
// Nenhum método altera ou remove registros existentes.
type ScoreRepository interface {
	Insert(ctx context.Context, gameID, name string, score int64) (*domain.Score, error)
	TopByScore(ctx context.Context, gameID string, limit uint64) ([]domain.Score, error)
	LatestByTime(ctx context.Context, gameID string, limit uint64) ([]domain.Score, error)
	CountByGame(ctx context.Context) (map[string]int64, error)
}

type scoreRepository struct {
	conn *postgres.Connection
}

func NewScoreRepository(conn *postgres.Connection) ScoreRepository {
	return &scoreRepository{
		conn: conn,
	}
}

func (r *scoreRepository) Insert(ctx context.Context, gameID, name string, score int64) (*domain.Score, error) {
	query, args, err := squirrel.StatementBuilder.
		Insert(scoresTable).
		Columns("game_id", "name", "score").
		Values(gameID, name, score).
		Suffix("RETURNING id, game_id, name, score, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, newStorageError("insert", err, "erro ao construir query de inserção")
	}

	item := &domain.Score{}
	row := r.conn.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&item.ID, &item.GameID, &item.Name, &item.Score, &item.CreatedAt); err != nil {
		return nil, newStorageError("insert", err, "erro ao inserir pontuação")
	}

	return item, nil
}

// TopByScore ordena por score desc, created_at asc; id asc desempata submissões no mesmo instante
func (r *scoreRepository) TopByScore(ctx context.Context, gameID string, limit uint64) ([]domain.Score, error) {
	queryBuilder := squirrel.
		Select(scoreColumns...).
		From(scoresTable).
		Where(squirrel.Eq{"game_id": gameID}).
		OrderBy("score DESC", "created_at ASC", "id ASC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar)

	return r.list(ctx, "top_by_score", queryBuilder)
}

func (r *scoreRepository) LatestByTime(ctx context.Context, gameID string, limit uint64) ([]domain.Score, error) {
	queryBuilder := squirrel.
		Select(scoreColumns...).
		From(scoresTable).
		Where(squirrel.Eq{"game_id": gameID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar)

	return r.list(ctx, "latest_by_time", queryBuilder)
}

func (r *scoreRepository) CountByGame(ctx context.Context) (map[string]int64, error) {
	query, args, err := squirrel.
		Select("game_id", "COUNT(*)").
		From(scoresTable).
		GroupBy("game_id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, newStorageError("count_by_game", err, "erro ao construir a query")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, newStorageError("count_by_game", err, "erro ao executar a query")
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var (
			gameID string
			total  int64
		)
		if err := rows.Scan(&gameID, &total); err != nil {
			return nil, newStorageError("count_by_game", err, "erro ao escanear contagem")
		}
		counts[gameID] = total
	}

	if err := rows.Err(); err != nil {
		return nil, newStorageError("count_by_game", err, "erro durante a iteração de linhas")
	}

	return counts, nil
}

func (r *scoreRepository) list(ctx context.Context, op string, queryBuilder squirrel.SelectBuilder) ([]domain.Score, error) {
	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, newStorageError(op, err, "erro ao construir a query")
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, newStorageError(op, err, "erro ao executar a query")
	}
	defer rows.Close()

	// Partição vazia é resultado válido: devolve slice vazio, nunca nil
	scores := make([]domain.Score, 0)
	for rows.Next() {
		item, err := r.scanScore(rows)
		if err != nil {
			return nil, newStorageError(op, err, "erro ao escanear pontuação")
		}
		scores = append(scores, *item)
	}

	if err = rows.Err(); err != nil {
		return nil, newStorageError(op, err, "erro durante a iteração de linhas")
	}

	return scores, nil
}

func (r *scoreRepository) scanScore(rows *sql.Rows) (*domain.Score, error) {
	item := &domain.Score{}

	err := rows.Scan(
		&item.ID,
		&item.GameID,
		&item.Name,
		&item.Score,
		&item.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return item, nil
}
