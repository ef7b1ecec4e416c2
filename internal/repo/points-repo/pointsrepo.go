package pointsrepo

import (
	"context"
	"database/sql"

	"github.com/foodconnect/api/internal/domain"
	"github.com/foodconnect/api/internal/pg"
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

// AddEntry appends to the ledger. The ledger is append-only and the source
// of truth for balances; callers update users.points in the same transaction.
func (r *Repository) AddEntry(ctx context.Context, entry *domain.PointsEntry) (*domain.PointsEntry, error) {
	query := `
        INSERT INTO user_points (user_id, points, source_type, source_id, note, direction)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at
    `
	var sourceID any
	if entry.SourceID != 0 {
		sourceID = entry.SourceID
	}
	err := r.db.QueryRow(ctx, query, entry.UserID, entry.Points, entry.SourceType, sourceID, entry.Note, entry.Direction).
		Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		zap.L().Error("can't save points entry", zap.Error(err))
		return nil, err
	}
	return entry, nil
}

func (r *Repository) HistoryByUser(ctx context.Context, userID, limit int) ([]domain.PointsEntry, error) {
	query := `
        SELECT id, user_id, points, source_type, source_id, note, direction, created_at
        FROM user_points
        WHERE user_id = $1
        ORDER BY created_at DESC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		zap.L().Error("can't get points history", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.PointsEntry
	for rows.Next() {
		var entry domain.PointsEntry
		var sourceID sql.NullInt64
		err := rows.Scan(&entry.ID, &entry.UserID, &entry.Points, &entry.SourceType,
			&sourceID, &entry.Note, &entry.Direction, &entry.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan points entry row", zap.Error(err))
			return nil, err
		}
		entry.SourceID = int(sourceID.Int64)
		entries = append(entries, entry)
	}
	return entries, nil
}
