package rewardrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/foodconnect/api/internal/domain"
	"github.com/jackc/pgx/v5"
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

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		id        int
		mockSetup func()
		expectErr bool
		result    *domain.Reward
	}{
		{
			name: "Reward found",
			id:   7,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "title", "description", "image", "points_required", "inventory", "is_active", "created_at"}).
					AddRow(7, "Tote bag", "Canvas bag", "", 100, 5, true, now)
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, title, description, image, points_required, inventory, is_active, created_at FROM rewards WHERE id = $1")).
					WithArgs(7).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.Reward{
				ID:             7,
				Title:          "Tote bag",
				Description:    "Canvas bag",
				PointsRequired: 100,
				Inventory:      5,
				IsActive:       true,
				CreatedAt:      now,
			},
		},
		{
			name: "Reward not found",
			id:   99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, title, description, image, points_required, inventory, is_active, created_at FROM rewards WHERE id = $1")).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name: "Database error",
			id:   7,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, title, description, image, points_required, inventory, is_active, created_at FROM rewards WHERE id = $1")).
					WithArgs(7).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), tt.id)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_DecrementInventory(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    bool
	}{
		{
			name: "Stock remains",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE rewards SET inventory = inventory - 1 WHERE id = $1 AND inventory > 0")).
					WithArgs(7).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			result: true,
		},
		{
			name: "Sold out leaves the row untouched",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE rewards SET inventory = inventory - 1 WHERE id = $1 AND inventory > 0")).
					WithArgs(7).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			result: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE rewards SET inventory = inventory - 1 WHERE id = $1 AND inventory > 0")).
					WithArgs(7).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.DecrementInventory(context.Background(), 7)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	reward := &domain.Reward{
		Title:          "Tote bag",
		PointsRequired: 100,
		Inventory:      5,
		IsActive:       true,
	}

	mock.ExpectQuery(regexp.QuoteMeta(`
        INSERT INTO rewards (title, description, image, points_required, inventory, is_active)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at
    `)).
		WithArgs("Tote bag", "", "", 100, 5, true).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(7, now))

	result, err := repo.Create(context.Background(), reward)
	assert.NoError(t, err)
	assert.Equal(t, 7, result.ID)
	assert.Equal(t, now, result.CreatedAt)
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM rewards WHERE id = $1")).
		WithArgs(7).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	deleted, err := repo.Delete(context.Background(), 7)
	assert.NoError(t, err)
	assert.True(t, deleted)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM rewards WHERE id = $1")).
		WithArgs(99).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	deleted, err = repo.Delete(context.Background(), 99)
	assert.NoError(t, err)
	assert.False(t, deleted)
}
