package gamerepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/foodconnect/api/internal/domain"
	"github.com/foodconnect/api/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

const gameColumns = "id, title, description, url, icon_url, points_per_play, tags, is_active, created_at"

func (r *Repository) List(ctx context.Context, includeInactive bool) ([]domain.Game, error) {
	query := "SELECT " + gameColumns + " FROM games"
	if !includeInactive {
		query += " WHERE is_active"
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list games", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var games []domain.Game
	for rows.Next() {
		game, err := scanGame(rows)
		if err != nil {
			zap.L().Error("can't scan game row", zap.Error(err))
			return nil, err
		}
		games = append(games, *game)
	}
	return games, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Game, error) {
	row := r.db.QueryRow(ctx, "SELECT "+gameColumns+" FROM games WHERE id = $1", id)
	game, err := scanGame(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find game", zap.Error(err))
		return nil, err
	}
	return game, nil
}

func (r *Repository) Create(ctx context.Context, game *domain.Game) (*domain.Game, error) {
	query := `
        INSERT INTO games (title, description, url, icon_url, points_per_play, tags, is_active)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, game.Title, game.Description, game.URL, game.IconURL,
		game.PointsPerPlay, joinTags(game.Tags), game.IsActive).
		Scan(&game.ID, &game.CreatedAt)
	if err != nil {
		zap.L().Error("can't save game", zap.Error(err))
		return nil, err
	}
	return game, nil
}

func (r *Repository) Update(ctx context.Context, id int, patch domain.GamePatch) (*domain.Game, error) {
	sets := make([]string, 0, 7)
	args := make([]any, 0, 8)
	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.URL != nil {
		add("url", *patch.URL)
	}
	if patch.IconURL != nil {
		add("icon_url", *patch.IconURL)
	}
	if patch.PointsPerPlay != nil {
		add("points_per_play", *patch.PointsPerPlay)
	}
	if patch.Tags != nil {
		add("tags", joinTags(*patch.Tags))
	}
	if patch.IsActive != nil {
		add("is_active", *patch.IsActive)
	}

	if len(sets) == 0 {
		return r.FindByID(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE games SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		zap.L().Error("can't update game", zap.Error(err))
		return nil, err
	}
	return r.FindByID(ctx, id)
}

func (r *Repository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM games WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("can't delete game", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Tags are stored comma-joined in a single column.
func joinTags(tags []string) string {
	return strings.Join(tags, ",")
}

func splitTags(raw string) []string {
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func scanGame(row pgx.Row) (*domain.Game, error) {
	var game domain.Game
	var tags string
	err := row.Scan(&game.ID, &game.Title, &game.Description, &game.URL, &game.IconURL,
		&game.PointsPerPlay, &tags, &game.IsActive, &game.CreatedAt)
	if err != nil {
		return nil, err
	}
	game.Tags = splitTags(tags)
	return &game, nil
}
