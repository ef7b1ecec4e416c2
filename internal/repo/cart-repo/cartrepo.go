package cartrepo

import (
	"context"

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

func (r *Repository) GetByUser(ctx context.Context, userID int) ([]domain.CartItem, error) {
	query := `
        SELECT c.food_id, c.qty, f.name, f.price, f.image_url
        FROM cart c
        INNER JOIN foods f ON f.id = c.food_id
        WHERE c.user_id = $1
        ORDER BY c.id DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get cart", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []domain.CartItem
	for rows.Next() {
		var item domain.CartItem
		err := rows.Scan(&item.FoodID, &item.Qty, &item.Name, &item.Price, &item.ImageURL)
		if err != nil {
			zap.L().Error("can't scan cart row", zap.Error(err))
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// Upsert replaces the quantity for an existing (user, food) pair rather
// than adding to it, matching the storefront's "set qty" semantics.
func (r *Repository) Upsert(ctx context.Context, userID, foodID, qty int) error {
	query := `
        INSERT INTO cart (user_id, food_id, qty)
        VALUES ($1, $2, $3)
        ON CONFLICT (user_id, food_id) DO UPDATE SET qty = EXCLUDED.qty
    `
	if _, err := r.db.Exec(ctx, query, userID, foodID, qty); err != nil {
		zap.L().Error("can't upsert cart item", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Remove(ctx context.Context, userID, foodID int) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM cart WHERE user_id = $1 AND food_id = $2`, userID, foodID)
	if err != nil {
		zap.L().Error("can't remove cart item", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) RemoveMany(ctx context.Context, userID int, foodIDs []int) error {
	if len(foodIDs) == 0 {
		return nil
	}
	_, err := r.db.Exec(ctx, `DELETE FROM cart WHERE user_id = $1 AND food_id = ANY($2)`, userID, foodIDs)
	if err != nil {
		zap.L().Error("can't remove cart items", zap.Error(err))
		return err
	}
	return nil
}
