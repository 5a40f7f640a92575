package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/kspdigital/koperasi-core/internal/domain/model"
	"github.com/kspdigital/koperasi-core/internal/domain/port"
	"github.com/kspdigital/koperasi-core/pkg/money"
)

var _ port.DonationRepository = (*DonationRepo)(nil)

// DonationRepo implements port.DonationRepository on PostgreSQL.
type DonationRepo struct {
	pool *pgxpool.Pool
}

// NewDonationRepo creates a new PostgreSQL-backed donation repository.
func NewDonationRepo(pool *pgxpool.Pool) *DonationRepo {
	return &DonationRepo{pool: pool}
}

// Insert adds a donation row.
func (r *DonationRepo) Insert(ctx context.Context, donation model.Donation) error {
	query := `
		INSERT INTO donations (id, donor, amount, donation_date)
		VALUES ($1,$2,$3,$4)
	`
	_, err := r.pool.Exec(ctx, query,
		donation.ID(), donation.Donor(), donation.Amount().Decimal(),
		donation.DonationDate(),
	)
	if err != nil {
		return fmt.Errorf("insert donation: %w", err)
	}
	return nil
}

// ListForRange returns donations dated inside [from, to).
func (r *DonationRepo) ListForRange(ctx context.Context, from, to time.Time) ([]model.Donation, error) {
	query := selectDonationColumns + `
		WHERE donation_date >= $1 AND donation_date < $2
		ORDER BY donation_date, id`
	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("query donations: %w", err)
	}
	defer rows.Close()

	var donations []model.Donation
	for rows.Next() {
		donation, err := scanDonationRow(rows)
		if err != nil {
			return nil, err
		}
		donations = append(donations, donation)
	}
	return donations, rows.Err()
}

const selectDonationColumns = `
	SELECT id, donor, amount, donation_date
	FROM donations`

func scanDonationRow(s scannable) (model.Donation, error) {
	var (
		id           uuid.UUID
		donor        string
		amount       decimal.Decimal
		donationDate time.Time
	)

	if err := s.Scan(&id, &donor, &amount, &donationDate); err != nil {
		return model.Donation{}, fmt.Errorf("scan donation: %w", err)
	}

	return model.ReconstructDonation(id, donor, money.FromDecimal(amount), donationDate), nil
}
