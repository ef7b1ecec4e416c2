package partnerrepo

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

const partnerJoin = `
        SELECT p.id, p.user_id, p.organization_name, p.organization_type, p.contact_person,
               p.email, p.phone, p.location, p.website, p.message, p.document_url,
               p.status, p.notes, p.created_at, u.name, u.email
        FROM partners p
        LEFT JOIN users u ON u.id = p.user_id
`

func (r *Repository) Create(ctx context.Context, partner *domain.Partner) (*domain.Partner, error) {
	query := `
        INSERT INTO partners
            (user_id, organization_name, organization_type, contact_person, email, phone,
             location, website, message, document_url, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		partner.UserID, partner.OrganizationName, partner.OrganizationType, partner.ContactPerson,
		partner.Email, partner.Phone, partner.Location, partner.Website, partner.Message,
		partner.DocumentURL, partner.Status).
		Scan(&partner.ID, &partner.CreatedAt)
	if err != nil {
		zap.L().Error("can't save partner application", zap.Error(err))
		return nil, err
	}
	return partner, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Partner, error) {
	row := r.db.QueryRow(ctx, partnerJoin+" WHERE p.id = $1", id)
	partner, err := scanPartner(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find partner application", zap.Error(err))
		return nil, err
	}
	return partner, nil
}

func (r *Repository) List(ctx context.Context, status domain.PartnerStatus) ([]domain.Partner, error) {
	query := partnerJoin
	args := []any{}
	if status != "" {
		query += " WHERE p.status = $1"
		args = append(args, status)
	}
	query += " ORDER BY p.created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list partner applications", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var partners []domain.Partner
	for rows.Next() {
		partner, err := scanPartner(rows)
		if err != nil {
			zap.L().Error("can't scan partner row", zap.Error(err))
			return nil, err
		}
		partners = append(partners, *partner)
	}
	return partners, nil
}

func (r *Repository) FindByUser(ctx context.Context, userID int) ([]domain.Partner, error) {
	query := `
        SELECT id, user_id, organization_name, organization_type, contact_person,
               email, phone, location, website, message, document_url,
               status, notes, created_at
        FROM partners
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get user partner applications", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var partners []domain.Partner
	for rows.Next() {
		var p domain.Partner
		err := rows.Scan(&p.ID, &p.UserID, &p.OrganizationName, &p.OrganizationType, &p.ContactPerson,
			&p.Email, &p.Phone, &p.Location, &p.Website, &p.Message, &p.DocumentURL,
			&p.Status, &p.Notes, &p.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan partner row", zap.Error(err))
			return nil, err
		}
		partners = append(partners, p)
	}
	return partners, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id int, status domain.PartnerStatus, notes string) (*domain.Partner, error) {
	tag, err := r.db.Exec(ctx, `UPDATE partners SET status = $1, notes = $2 WHERE id = $3`, status, notes, id)
	if err != nil {
		zap.L().Error("can't update partner status", zap.Error(err))
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, nil
	}
	return r.FindByID(ctx, id)
}

func scanPartner(row pgx.Row) (*domain.Partner, error) {
	var p domain.Partner
	err := row.Scan(&p.ID, &p.UserID, &p.OrganizationName, &p.OrganizationType, &p.ContactPerson,
		&p.Email, &p.Phone, &p.Location, &p.Website, &p.Message, &p.DocumentURL,
		&p.Status, &p.Notes, &p.CreatedAt, &p.UserName, &p.UserEmail)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
