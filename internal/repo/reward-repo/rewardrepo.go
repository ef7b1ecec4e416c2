package rewardrepo

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

const rewardColumns = "id, title, description, image, points_required, inventory, is_active, created_at"

func (r *Repository) List(ctx context.Context) ([]domain.Reward, error) {
	query := "SELECT " + rewardColumns + " FROM rewards ORDER BY points_required ASC"
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list rewards", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var rewards []domain.Reward
	for rows.Next() {
		var reward domain.Reward
		err := rows.Scan(&reward.ID, &reward.Title, &reward.Description, &reward.Image,
			&reward.PointsRequired, &reward.Inventory, &reward.IsActive, &reward.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan reward row", zap.Error(err))
			return nil, err
		}
		rewards = append(rewards, reward)
	}
	return rewards, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Reward, error) {
	query := "SELECT " + rewardColumns + " FROM rewards WHERE id = $1"
	var reward domain.Reward
	err := r.db.QueryRow(ctx, query, id).
		Scan(&reward.ID, &reward.Title, &reward.Description, &reward.Image,
			&reward.PointsRequired, &reward.Inventory, &reward.IsActive, &reward.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find reward", zap.Error(err))
		return nil, err
	}
	return &reward, nil
}

func (r *Repository) Create(ctx context.Context, reward *domain.Reward) (*domain.Reward, error) {
	query := `
        INSERT INTO rewards (title, description, image, points_required, inventory, is_active)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, reward.Title, reward.Description, reward.Image,
		reward.PointsRequired, reward.Inventory, reward.IsActive).
		Scan(&reward.ID, &reward.CreatedAt)
	if err != nil {
		zap.L().Error("can't save reward", zap.Error(err))
		return nil, err
	}
	return reward, nil
}

func (r *Repository) Update(ctx context.Context, id int, patch domain.RewardPatch) (*domain.Reward, error) {
	sets := make([]string, 0, 6)
	args := make([]any, 0, 7)
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
	if patch.Image != nil {
		add("image", *patch.Image)
	}
	if patch.PointsRequired != nil {
		add("points_required", *patch.PointsRequired)
	}
	if patch.Inventory != nil {
		add("inventory", *patch.Inventory)
	}
	if patch.IsActive != nil {
		add("is_active", *patch.IsActive)
	}

	if len(sets) == 0 {
		return r.FindByID(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE rewards SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		zap.L().Error("can't update reward", zap.Error(err))
		return nil, err
	}
	return r.FindByID(ctx, id)
}

func (r *Repository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM rewards WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("can't delete reward", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// DecrementInventory takes one unit off the shelf only while stock remains.
// A false return means the reward sold out; concurrent redemptions contend
// on the row lock, so exactly one caller wins the last unit.
func (r *Repository) DecrementInventory(ctx context.Context, id int) (bool, error) {
	tag, err := r.db.Exec(ctx, `UPDATE rewards SET inventory = inventory - 1 WHERE id = $1 AND inventory > 0`, id)
	if err != nil {
		zap.L().Error("can't decrement reward inventory", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
