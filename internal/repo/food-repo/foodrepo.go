package foodrepo

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

const foodColumns = "id, name, description, price, category, image_url, created_at"

func (r *Repository) List(ctx context.Context, filter domain.FoodFilter) ([]domain.Food, error) {
	conditions := make([]string, 0, 4)
	args := make([]any, 0, 5)

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d)", len(args), len(args)))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.MinPrice != nil {
		args = append(args, *filter.MinPrice)
		conditions = append(conditions, fmt.Sprintf("price >= $%d", len(args)))
	}
	if filter.MaxPrice != nil {
		args = append(args, *filter.MaxPrice)
		conditions = append(conditions, fmt.Sprintf("price <= $%d", len(args)))
	}

	query := "SELECT " + foodColumns + " FROM foods"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list foods", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return scanFoods(rows)
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Food, error) {
	query := "SELECT " + foodColumns + " FROM foods WHERE id = $1"
	var food domain.Food
	err := r.db.QueryRow(ctx, query, id).
		Scan(&food.ID, &food.Name, &food.Description, &food.Price, &food.Category, &food.ImageURL, &food.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find food", zap.Error(err))
		return nil, err
	}
	return &food, nil
}

func (r *Repository) FindByIDs(ctx context.Context, ids []int) ([]domain.Food, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := "SELECT " + foodColumns + " FROM foods WHERE id = ANY($1)"
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		zap.L().Error("can't find foods by ids", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return scanFoods(rows)
}

func (r *Repository) Create(ctx context.Context, food *domain.Food) (*domain.Food, error) {
	query := `
        INSERT INTO foods (name, description, price, category, image_url)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, food.Name, food.Description, food.Price, food.Category, food.ImageURL).
		Scan(&food.ID, &food.CreatedAt)
	if err != nil {
		zap.L().Error("can't save food", zap.Error(err))
		return nil, err
	}
	return food, nil
}

func (r *Repository) Update(ctx context.Context, id int, patch domain.FoodPatch) (*domain.Food, error) {
	sets := make([]string, 0, 5)
	args := make([]any, 0, 6)
	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.Price != nil {
		add("price", *patch.Price)
	}
	if patch.Category != nil {
		add("category", *patch.Category)
	}
	if patch.ImageURL != nil {
		add("image_url", *patch.ImageURL)
	}

	if len(sets) == 0 {
		return r.FindByID(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE foods SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		zap.L().Error("can't update food", zap.Error(err))
		return nil, err
	}
	return r.FindByID(ctx, id)
}

func (r *Repository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM foods WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("can't delete food", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func scanFoods(rows pgx.Rows) ([]domain.Food, error) {
	var foods []domain.Food
	for rows.Next() {
		var food domain.Food
		err := rows.Scan(&food.ID, &food.Name, &food.Description, &food.Price, &food.Category, &food.ImageURL, &food.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan food row", zap.Error(err))
			return nil, err
		}
		foods = append(foods, food)
	}
	return foods, nil
}
