package orderrepo

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/foodconnect/api/internal/domain"
	"github.com/foodconnect/api/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	items, err := json.Marshal(order.Items)
	if err != nil {
		zap.L().Error("can't marshal order items", zap.Error(err))
		return nil, err
	}
	query := `
        INSERT INTO orders (user_id, items, total, status)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at
    `
	err = r.txManager.Begin(ctx, func(ctx context.Context) error {
		return r.db.QueryRow(ctx, query, order.UserID, items, order.Total, order.Status).
			Scan(&order.ID, &order.CreatedAt)
	})
	if err != nil {
		zap.L().Error("can't save order", zap.Error(err))
		return nil, err
	}
	return order, nil
}

func (r *Repository) FindByUser(ctx context.Context, userID int) ([]domain.Order, error) {
	query := `
        SELECT id, user_id, items, total, status, created_at
        FROM orders
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		var items []byte
		err := rows.Scan(&order.ID, &order.UserID, &items, &order.Total, &order.Status, &order.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan order row", zap.Error(err))
			return nil, err
		}
		if err := json.Unmarshal(items, &order.Items); err != nil {
			zap.L().Error("can't unmarshal order items", zap.Error(err))
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Order, error) {
	query := `
        SELECT o.id, o.user_id, o.items, o.total, o.status, o.created_at, u.name, u.email
        FROM orders o
        LEFT JOIN users u ON u.id = o.user_id
        ORDER BY o.created_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get all orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		var items []byte
		err := rows.Scan(&order.ID, &order.UserID, &items, &order.Total, &order.Status, &order.CreatedAt,
			&order.CustomerName, &order.CustomerEmail)
		if err != nil {
			zap.L().Error("can't scan order row", zap.Error(err))
			return nil, err
		}
		if err := json.Unmarshal(items, &order.Items); err != nil {
			zap.L().Error("can't unmarshal order items", zap.Error(err))
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Order, error) {
	query := `
        SELECT o.id, o.user_id, o.items, o.total, o.status, o.created_at, u.name, u.email
        FROM orders o
        LEFT JOIN users u ON u.id = o.user_id
        WHERE o.id = $1
    `
	var order domain.Order
	var items []byte
	err := r.db.QueryRow(ctx, query, id).
		Scan(&order.ID, &order.UserID, &items, &order.Total, &order.Status, &order.CreatedAt,
			&order.CustomerName, &order.CustomerEmail)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find order", zap.Error(err))
		return nil, err
	}
	if err := json.Unmarshal(items, &order.Items); err != nil {
		zap.L().Error("can't unmarshal order items", zap.Error(err))
		return nil, err
	}
	return &order, nil
}

// UpdateStatus only touches the status column; the items snapshot and total
// stay exactly as captured at placement.
func (r *Repository) UpdateStatus(ctx context.Context, id int, status domain.OrderStatus) (*domain.Order, error) {
	tag, err := r.db.Exec(ctx, `UPDATE orders SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		zap.L().Error("can't update order status", zap.Error(err))
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, nil
	}
	return r.FindByID(ctx, id)
}
