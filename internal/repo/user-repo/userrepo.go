package userrepo

import (
	"context"
	"errors"

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

func (r *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
        SELECT id, name, email, password, phone, role, points, created_at
        FROM users
        WHERE email = $1
    `
	var user domain.User
	err := r.db.QueryRow(ctx, query, email).
		Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Phone, &user.Role, &user.Points, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user by email", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	query := `
        SELECT id, name, email, phone, role, points, created_at
        FROM users
        WHERE id = $1
    `
	var user domain.User
	err := r.db.QueryRow(ctx, query, id).
		Scan(&user.ID, &user.Name, &user.Email, &user.Phone, &user.Role, &user.Points, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user by id", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
        INSERT INTO users (name, email, password, phone, role)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, points, created_at
    `
	err := r.db.QueryRow(ctx, query, user.Name, user.Email, user.PasswordHash, user.Phone, user.Role).
		Scan(&user.ID, &user.Points, &user.CreatedAt)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) List(ctx context.Context) ([]domain.User, error) {
	query := `
        SELECT id, name, email, phone, role, points, created_at
        FROM users
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.Phone, &user.Role, &user.Points, &user.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan user row", zap.Error(err))
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func (r *Repository) UpdateRole(ctx context.Context, id int, role domain.Role) (*domain.User, error) {
	tag, err := r.db.Exec(ctx, `UPDATE users SET role = $1 WHERE id = $2`, role, id)
	if err != nil {
		zap.L().Error("can't update user role", zap.Error(err))
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, nil
	}
	return r.FindByID(ctx, id)
}

// IncrementPoints credits the cached balance. The matching ledger entry is
// written by the caller in the same transaction.
func (r *Repository) IncrementPoints(ctx context.Context, id, points int) error {
	_, err := r.db.Exec(ctx, `UPDATE users SET points = points + $1 WHERE id = $2`, points, id)
	if err != nil {
		zap.L().Error("can't increment user points", zap.Error(err))
		return err
	}
	return nil
}

// DebitPoints debits the cached balance only when it covers the amount.
// A false return means the balance was insufficient and no row changed.
func (r *Repository) DebitPoints(ctx context.Context, id, points int) (bool, error) {
	tag, err := r.db.Exec(ctx, `UPDATE users SET points = points - $1 WHERE id = $2 AND points >= $1`, points, id)
	if err != nil {
		zap.L().Error("can't debit user points", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
