package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kspdigital/koperasi-core/internal/domain/model"
	"github.com/kspdigital/koperasi-core/internal/domain/port"
	"github.com/kspdigital/koperasi-core/pkg/money"
)

var _ port.DonationRepository = (*DonationRepo)(nil)

// DonationRepo implements port.DonationRepository on SQLite.
type DonationRepo struct {
	db *sql.DB
}

// NewDonationRepo creates a new SQLite-backed donation repository.
func NewDonationRepo(db *sql.DB) *DonationRepo {
	return &DonationRepo{db: db}
}

// Insert adds a donation row.
func (r *DonationRepo) Insert(ctx context.Context, donation model.Donation) error {
	query := `
		INSERT INTO donations (id, donor, amount, donation_date)
		VALUES (?,?,?,?)
	`
	_, err := r.db.ExecContext(ctx, query,
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
		WHERE donation_date >= ? AND donation_date < ?
		ORDER BY donation_date, id`
	rows, err := r.db.QueryContext(ctx, query, from, to)
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
