package pointsrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/foodconnect/api/internal/domain"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_AddEntry(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	query := `
        INSERT INTO user_points (user_id, points, source_type, source_id, note, direction)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at
    `

	t.Run("Entry with a source id", func(t *testing.T) {
		entry := &domain.PointsEntry{
			UserID:     1,
			Points:     100,
			SourceType: domain.PointsSourceReward,
			SourceID:   7,
			Note:       "Redeemed Tote bag",
			Direction:  domain.PointsDebit,
		}
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs(1, 100, domain.PointsSourceReward, 7, "Redeemed Tote bag", domain.PointsDebit).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(5, now))

		result, err := repo.AddEntry(context.Background(), entry)
		assert.NoError(t, err)
		assert.Equal(t, 5, result.ID)
		assert.Equal(t, now, result.CreatedAt)
	})

	t.Run("Zero source id is stored as NULL", func(t *testing.T) {
		entry := &domain.PointsEntry{
			UserID:     1,
			Points:     10,
			SourceType: domain.PointsSourceManual,
			Note:       "Adjustment",
			Direction:  domain.PointsCredit,
		}
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs(1, 10, domain.PointsSourceManual, nil, "Adjustment", domain.PointsCredit).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(6, now))

		result, err := repo.AddEntry(context.Background(), entry)
		assert.NoError(t, err)
		assert.Equal(t, 6, result.ID)
	})

	t.Run("Database error", func(t *testing.T) {
		entry := &domain.PointsEntry{UserID: 1, Points: 10, SourceType: domain.PointsSourceManual, Direction: domain.PointsCredit}
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs(1, 10, domain.PointsSourceManual, nil, "", domain.PointsCredit).
			WillReturnError(errors.New("database error"))

		result, err := repo.AddEntry(context.Background(), entry)
		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestRepository_HistoryByUser(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	query := `
        SELECT id, user_id, points, source_type, source_id, note, direction, created_at
        FROM user_points
        WHERE user_id = $1
        ORDER BY created_at DESC
        LIMIT $2
    `

	t.Run("Entries with and without source id", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "user_id", "points", "source_type", "source_id", "note", "direction", "created_at"}).
			AddRow(2, 1, 100, domain.PointsSourceReward, int64(7), "Redeemed Tote bag", domain.PointsDebit, now).
			AddRow(1, 1, 250, domain.PointsSourceDonation, nil, "Donation approved", domain.PointsCredit, now)
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs(1, 50).
			WillReturnRows(rows)

		entries, err := repo.HistoryByUser(context.Background(), 1, 50)
		assert.NoError(t, err)
		assert.Len(t, entries, 2)
		assert.Equal(t, 7, entries[0].SourceID)
		assert.Equal(t, 0, entries[1].SourceID)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs(1, 50).
			WillReturnError(errors.New("database error"))

		entries, err := repo.HistoryByUser(context.Background(), 1, 50)
		assert.Error(t, err)
		assert.Nil(t, entries)
	})
}
