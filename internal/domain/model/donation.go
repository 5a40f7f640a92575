package model

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/kspdigital/koperasi-core/pkg/money"
)

// ---------------------------------------------------------------------------
// Donation entity
// ---------------------------------------------------------------------------

// Donation is an incoming gift line item. Donations count as income and
// accumulate into the retained surplus.
type Donation struct {
	id           uuid.UUID
	donor        string
	amount       money.Money
	donationDate time.Time
}

// NewDonation creates a donation entry.
func NewDonation(donor string, amount money.Money, donationDate time.Time) (Donation, error) {
	if donor == "" {
		return Donation{}, errors.New("donor is required")
	}
	if !amount.IsPositive() {
		return Donation{}, errors.New("donation amount must be positive")
	}
	if donationDate.IsZero() {
		return Donation{}, errors.New("donation date is required")
	}

	return Donation{
		id:           uuid.New(),
		donor:        donor,
		amount:       amount,
		donationDate: donationDate,
	}, nil
}

// ReconstructDonation rebuilds a Donation from persistence.
func ReconstructDonation(id uuid.UUID, donor string, amount money.Money, donationDate time.Time) Donation {
	return Donation{
		id:           id,
		donor:        donor,
		amount:       amount,
		donationDate: donationDate,
	}
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (d Donation) ID() uuid.UUID           { return d.id }
func (d Donation) Donor() string           { return d.donor }
func (d Donation) Amount() money.Money     { return d.amount }
func (d Donation) DonationDate() time.Time { return d.donationDate }
