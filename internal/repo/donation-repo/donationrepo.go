package donationrepo

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

const donationJoin = `
        SELECT d.id, d.user_id, d.donor_type, d.contact_name, d.contact_phone, d.contact_email,
               d.food_type, d.quantity, d.pickup_address, d.pickup_window, d.notes,
               d.status, d.assigned_volunteer, d.created_at, u.name, u.email
        FROM donations d
        LEFT JOIN users u ON u.id = d.user_id
`

func (r *Repository) Create(ctx context.Context, donation *domain.Donation) (*domain.Donation, error) {
	query := `
        INSERT INTO donations
            (user_id, donor_type, contact_name, contact_phone, contact_email,
             food_type, quantity, pickup_address, pickup_window, notes, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		donation.UserID, donation.DonorType, donation.ContactName, donation.ContactPhone, donation.ContactEmail,
		donation.FoodType, donation.Quantity, donation.PickupAddress, donation.PickupWindow, donation.Notes,
		donation.Status).
		Scan(&donation.ID, &donation.CreatedAt)
	if err != nil {
		zap.L().Error("can't save donation", zap.Error(err))
		return nil, err
	}
	return donation, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Donation, error) {
	row := r.db.QueryRow(ctx, donationJoin+" WHERE d.id = $1", id)
	donation, err := scanDonation(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find donation", zap.Error(err))
		return nil, err
	}
	return donation, nil
}

func (r *Repository) List(ctx context.Context, status domain.DonationStatus) ([]domain.Donation, error) {
	query := donationJoin
	args := []any{}
	if status != "" {
		query += " WHERE d.status = $1"
		args = append(args, status)
	}
	query += " ORDER BY d.created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list donations", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var donations []domain.Donation
	for rows.Next() {
		donation, err := scanDonation(rows)
		if err != nil {
			zap.L().Error("can't scan donation row", zap.Error(err))
			return nil, err
		}
		donations = append(donations, *donation)
	}
	return donations, nil
}

func (r *Repository) FindByUser(ctx context.Context, userID int) ([]domain.Donation, error) {
	query := `
        SELECT id, user_id, donor_type, contact_name, contact_phone, contact_email,
               food_type, quantity, pickup_address, pickup_window, notes,
               status, assigned_volunteer, created_at
        FROM donations
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get user donations", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var donations []domain.Donation
	for rows.Next() {
		var d domain.Donation
		err := rows.Scan(&d.ID, &d.UserID, &d.DonorType, &d.ContactName, &d.ContactPhone, &d.ContactEmail,
			&d.FoodType, &d.Quantity, &d.PickupAddress, &d.PickupWindow, &d.Notes,
			&d.Status, &d.AssignedVolunteer, &d.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan donation row", zap.Error(err))
			return nil, err
		}
		donations = append(donations, d)
	}
	return donations, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id int, status domain.DonationStatus, assignedVolunteer string) (*domain.Donation, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE donations SET status = $1, assigned_volunteer = $2 WHERE id = $3`,
		status, assignedVolunteer, id)
	if err != nil {
		zap.L().Error("can't update donation status", zap.Error(err))
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, nil
	}
	return r.FindByID(ctx, id)
}

func scanDonation(row pgx.Row) (*domain.Donation, error) {
	var d domain.Donation
	err := row.Scan(&d.ID, &d.UserID, &d.DonorType, &d.ContactName, &d.ContactPhone, &d.ContactEmail,
		&d.FoodType, &d.Quantity, &d.PickupAddress, &d.PickupWindow, &d.Notes,
		&d.Status, &d.AssignedVolunteer, &d.CreatedAt, &d.UserName, &d.UserEmail)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
