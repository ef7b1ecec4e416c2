package foodrepo

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

func foodRows(now time.Time) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "name", "description", "price", "category", "image_url", "created_at"}).
		AddRow(3, "Vegetable curry", "Mild", 4.5, "meals", "", now)
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	minPrice := 1.0
	maxPrice := 5.0

	tests := []struct {
		name      string
		filter    domain.FoodFilter
		mockSetup func()
	}{
		{
			name:   "No filter",
			filter: domain.FoodFilter{},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, description, price, category, image_url, created_at FROM foods ORDER BY created_at DESC")).
					WillReturnRows(foodRows(now))
			},
		},
		{
			name:   "Search matches name or description",
			filter: domain.FoodFilter{Search: "curry"},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, description, price, category, image_url, created_at FROM foods WHERE (name ILIKE $1 OR description ILIKE $1) ORDER BY created_at DESC")).
					WithArgs("%curry%").
					WillReturnRows(foodRows(now))
			},
		},
		{
			name:   "All filters combined",
			filter: domain.FoodFilter{Search: "curry", Category: "meals", MinPrice: &minPrice, MaxPrice: &maxPrice},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, description, price, category, image_url, created_at FROM foods WHERE (name ILIKE $1 OR description ILIKE $1) AND category = $2 AND price >= $3 AND price <= $4 ORDER BY created_at DESC")).
					WithArgs("%curry%", "meals", 1.0, 5.0).
					WillReturnRows(foodRows(now))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			foods, err := repo.List(context.Background(), tt.filter)
			assert.NoError(t, err)
			assert.Len(t, foods, 1)
			assert.Equal(t, "Vegetable curry", foods[0].Name)
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	t.Run("Food found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, description, price, category, image_url, created_at FROM foods WHERE id = $1")).
			WithArgs(3).
			WillReturnRows(foodRows(now))

		food, err := repo.FindByID(context.Background(), 3)
		assert.NoError(t, err)
		assert.Equal(t, 4.5, food.Price)
	})

	t.Run("Food not found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, description, price, category, image_url, created_at FROM foods WHERE id = $1")).
			WithArgs(99).
			WillReturnError(pgx.ErrNoRows)

		food, err := repo.FindByID(context.Background(), 99)
		assert.NoError(t, err)
		assert.Nil(t, food)
	})
}

func TestRepository_FindByIDs(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	t.Run("Empty id list skips the query", func(t *testing.T) {
		foods, err := repo.FindByIDs(context.Background(), nil)
		assert.NoError(t, err)
		assert.Nil(t, foods)
	})

	t.Run("Foods by ids", func(t *testing.T) {
		rows := foodRows(now).
			AddRow(5, "Bread", "", 2.0, "bakery", "", now)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, description, price, category, image_url, created_at FROM foods WHERE id = ANY($1)")).
			WithArgs([]int{3, 5}).
			WillReturnRows(rows)

		foods, err := repo.FindByIDs(context.Background(), []int{3, 5})
		assert.NoError(t, err)
		assert.Len(t, foods, 2)
	})
}

func TestRepository_Update(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	price := 3.5

	t.Run("Patch updates only the given columns", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE foods SET price = $1 WHERE id = $2")).
			WithArgs(3.5, 3).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, description, price, category, image_url, created_at FROM foods WHERE id = $1")).
			WithArgs(3).
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "description", "price", "category", "image_url", "created_at"}).
				AddRow(3, "Vegetable curry", "Mild", 3.5, "meals", "", now))

		food, err := repo.Update(context.Background(), 3, domain.FoodPatch{Price: &price})
		assert.NoError(t, err)
		assert.Equal(t, 3.5, food.Price)
	})

	t.Run("Empty patch just refetches", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, description, price, category, image_url, created_at FROM foods WHERE id = $1")).
			WithArgs(3).
			WillReturnRows(foodRows(now))

		food, err := repo.Update(context.Background(), 3, domain.FoodPatch{})
		assert.NoError(t, err)
		assert.Equal(t, "Vegetable curry", food.Name)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE foods SET price = $1 WHERE id = $2")).
			WithArgs(3.5, 3).
			WillReturnError(errors.New("database error"))

		food, err := repo.Update(context.Background(), 3, domain.FoodPatch{Price: &price})
		assert.Error(t, err)
		assert.Nil(t, food)
	})
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM foods WHERE id = $1`)).
		WithArgs(3).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	deleted, err := repo.Delete(context.Background(), 3)
	assert.NoError(t, err)
	assert.True(t, deleted)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM foods WHERE id = $1`)).
		WithArgs(99).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	deleted, err = repo.Delete(context.Background(), 99)
	assert.NoError(t, err)
	assert.False(t, deleted)
}
