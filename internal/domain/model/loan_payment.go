package model

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/kspdigital/koperasi-core/internal/domain/valueobject"
	"github.com/kspdigital/koperasi-core/pkg/money"
)

// ---------------------------------------------------------------------------
// LoanPayment entity
// ---------------------------------------------------------------------------

// LoanPayment is one installment payment row. Payments are inserted and
// deleted, never updated in place; an edit is a reversal followed by a fresh
// payment.
type LoanPayment struct {
	id                uuid.UUID
	loanID            uuid.UUID
	installmentNumber int
	principalPortion  money.Money
	interestPortion   money.Money
	paymentDate       time.Time
	status            valueobject.PaymentStatus
}

// NewLoanPayment creates a payment row for a loan.
func NewLoanPayment(
	loanID uuid.UUID,
	installmentNumber int,
	principalPortion, interestPortion money.Money,
	paymentDate time.Time,
	status valueobject.PaymentStatus,
) (LoanPayment, error) {
	if loanID == uuid.Nil {
		return LoanPayment{}, errors.New("loan ID is required")
	}
	if installmentNumber < 1 {
		return LoanPayment{}, errors.New("installment number must be positive")
	}
	if principalPortion.IsNegative() {
		return LoanPayment{}, errors.New("principal portion cannot be negative")
	}
	if interestPortion.IsNegative() {
		return LoanPayment{}, errors.New("interest portion cannot be negative")
	}
	if principalPortion.Add(interestPortion).IsZero() {
		return LoanPayment{}, errors.New("payment amount must be positive")
	}
	if paymentDate.IsZero() {
		return LoanPayment{}, errors.New("payment date is required")
	}
	if status.IsZero() {
		return LoanPayment{}, errors.New("payment status is required")
	}

	return LoanPayment{
		id:                uuid.New(),
		loanID:            loanID,
		installmentNumber: installmentNumber,
		principalPortion:  principalPortion,
		interestPortion:   interestPortion,
		paymentDate:       paymentDate,
		status:            status,
	}, nil
}

// ReconstructLoanPayment rebuilds a LoanPayment from persistence.
func ReconstructLoanPayment(
	id, loanID uuid.UUID,
	installmentNumber int,
	principalPortion, interestPortion money.Money,
	paymentDate time.Time,
	status valueobject.PaymentStatus,
) LoanPayment {
	return LoanPayment{
		id:                id,
		loanID:            loanID,
		installmentNumber: installmentNumber,
		principalPortion:  principalPortion,
		interestPortion:   interestPortion,
		paymentDate:       paymentDate,
		status:            status,
	}
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (p LoanPayment) ID() uuid.UUID                     { return p.id }
func (p LoanPayment) LoanID() uuid.UUID                 { return p.loanID }
func (p LoanPayment) InstallmentNumber() int            { return p.installmentNumber }
func (p LoanPayment) PrincipalPortion() money.Money     { return p.principalPortion }
func (p LoanPayment) InterestPortion() money.Money      { return p.interestPortion }
func (p LoanPayment) PaymentDate() time.Time            { return p.paymentDate }
func (p LoanPayment) Status() valueobject.PaymentStatus { return p.status }

// Total returns principal plus interest.
func (p LoanPayment) Total() money.Money {
	return p.principalPortion.Add(p.interestPortion)
}
