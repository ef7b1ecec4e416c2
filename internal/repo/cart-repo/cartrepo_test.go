package cartrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

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

func TestRepository_GetByUser(t *testing.T) {
	repo, mock := NewMock(t)

	query := `
        SELECT c.food_id, c.qty, f.name, f.price, f.image_url
        FROM cart c
        INNER JOIN foods f ON f.id = c.food_id
        WHERE c.user_id = $1
        ORDER BY c.id DESC
    `

	t.Run("Items joined with food details", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"food_id", "qty", "name", "price", "image_url"}).
			AddRow(3, 2, "Vegetable curry", 4.5, "").
			AddRow(5, 1, "Bread", 2.0, "")
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs(1).
			WillReturnRows(rows)

		items, err := repo.GetByUser(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, []domain.CartItem{
			{FoodID: 3, Qty: 2, Name: "Vegetable curry", Price: 4.5},
			{FoodID: 5, Qty: 1, Name: "Bread", Price: 2},
		}, items)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs(1).
			WillReturnError(errors.New("database error"))

		items, err := repo.GetByUser(context.Background(), 1)
		assert.Error(t, err)
		assert.Nil(t, items)
	})
}

func TestRepository_Upsert(t *testing.T) {
	repo, mock := NewMock(t)

	query := `
        INSERT INTO cart (user_id, food_id, qty)
        VALUES ($1, $2, $3)
        ON CONFLICT (user_id, food_id) DO UPDATE SET qty = EXCLUDED.qty
    `

	mock.ExpectExec(regexp.QuoteMeta(query)).
		WithArgs(1, 3, 2).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	assert.NoError(t, repo.Upsert(context.Background(), 1, 3, 2))

	mock.ExpectExec(regexp.QuoteMeta(query)).
		WithArgs(1, 3, 2).
		WillReturnError(errors.New("database error"))
	assert.Error(t, repo.Upsert(context.Background(), 1, 3, 2))
}

func TestRepository_Remove(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM cart WHERE user_id = $1 AND food_id = $2`)).
		WithArgs(1, 3).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	removed, err := repo.Remove(context.Background(), 1, 3)
	assert.NoError(t, err)
	assert.True(t, removed)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM cart WHERE user_id = $1 AND food_id = $2`)).
		WithArgs(1, 99).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	removed, err = repo.Remove(context.Background(), 1, 99)
	assert.NoError(t, err)
	assert.False(t, removed)
}

func TestRepository_RemoveMany(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Empty list is a no-op", func(t *testing.T) {
		assert.NoError(t, repo.RemoveMany(context.Background(), 1, nil))
	})

	t.Run("Removes the given ids", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM cart WHERE user_id = $1 AND food_id = ANY($2)`)).
			WithArgs(1, []int{3, 5}).
			WillReturnResult(pgxmock.NewResult("DELETE", 2))
		assert.NoError(t, repo.RemoveMany(context.Background(), 1, []int{3, 5}))
	})
}
