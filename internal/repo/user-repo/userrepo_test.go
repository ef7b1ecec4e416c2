package userrepo

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

func TestRepository_FindByEmail(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	query := `
        SELECT id, name, email, password, phone, role, points, created_at
        FROM users
        WHERE email = $1
    `

	tests := []struct {
		name      string
		email     string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:  "User found",
			email: "jamie@example.com",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "name", "email", "password", "phone", "role", "points", "created_at"}).
					AddRow(1, "Jamie Lee", "jamie@example.com", "hash", "", domain.RoleReceiver, 150, now)
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("jamie@example.com").
					WillReturnRows(rows)
			},
			result: &domain.User{
				ID:           1,
				Name:         "Jamie Lee",
				Email:        "jamie@example.com",
				PasswordHash: "hash",
				Role:         domain.RoleReceiver,
				Points:       150,
				CreatedAt:    now,
			},
		},
		{
			name:  "Unknown email",
			email: "nobody@example.com",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("nobody@example.com").
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:  "Database error",
			email: "jamie@example.com",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("jamie@example.com").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByEmail(context.Background(), tt.email)
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

	user := &domain.User{
		Name:         "Jamie Lee",
		Email:        "jamie@example.com",
		PasswordHash: "hash",
		Role:         domain.RoleReceiver,
	}

	mock.ExpectQuery(regexp.QuoteMeta(`
        INSERT INTO users (name, email, password, phone, role)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, points, created_at
    `)).
		WithArgs("Jamie Lee", "jamie@example.com", "hash", "", domain.RoleReceiver).
		WillReturnRows(pgxmock.NewRows([]string{"id", "points", "created_at"}).AddRow(1, 0, now))

	result, err := repo.Create(context.Background(), user)
	assert.NoError(t, err)
	assert.Equal(t, 1, result.ID)
	assert.Equal(t, 0, result.Points)
	assert.Equal(t, now, result.CreatedAt)
}

func TestRepository_UpdateRole(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	t.Run("Role updated", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET role = $1 WHERE id = $2`)).
			WithArgs(domain.RoleDonor, 1).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		rows := pgxmock.NewRows([]string{"id", "name", "email", "phone", "role", "points", "created_at"}).
			AddRow(1, "Jamie Lee", "jamie@example.com", "", domain.RoleDonor, 150, now)
		mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT id, name, email, phone, role, points, created_at
        FROM users
        WHERE id = $1
    `)).
			WithArgs(1).
			WillReturnRows(rows)

		user, err := repo.UpdateRole(context.Background(), 1, domain.RoleDonor)
		assert.NoError(t, err)
		assert.Equal(t, domain.RoleDonor, user.Role)
	})

	t.Run("Missing user", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET role = $1 WHERE id = $2`)).
			WithArgs(domain.RoleDonor, 99).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		user, err := repo.UpdateRole(context.Background(), 99, domain.RoleDonor)
		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestRepository_DebitPoints(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    bool
	}{
		{
			name: "Balance covers the debit",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET points = points - $1 WHERE id = $2 AND points >= $1`)).
					WithArgs(100, 1).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			result: true,
		},
		{
			name: "Insufficient balance changes nothing",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET points = points - $1 WHERE id = $2 AND points >= $1`)).
					WithArgs(100, 1).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			result: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET points = points - $1 WHERE id = $2 AND points >= $1`)).
					WithArgs(100, 1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.DebitPoints(context.Background(), 1, 100)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_IncrementPoints(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET points = points + $1 WHERE id = $2`)).
		WithArgs(10, 1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.IncrementPoints(context.Background(), 1, 10)
	assert.NoError(t, err)
}
