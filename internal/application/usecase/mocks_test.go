package usecase_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kspdigital/koperasi-core/internal/domain/model"
	"github.com/kspdigital/koperasi-core/internal/domain/port"
	"github.com/kspdigital/koperasi-core/internal/domain/valueobject"
	"github.com/kspdigital/koperasi-core/pkg/events"
	"github.com/kspdigital/koperasi-core/pkg/money"
)

// --- Mock implementations ---

type mockLoanRepository struct {
	saveFunc       func(ctx context.Context, loan model.Loan) error
	findByIDFunc   func(ctx context.Context, id uuid.UUID) (model.Loan, error)
	listActiveFunc func(ctx context.Context) ([]model.Loan, error)
	savedLoans     []model.Loan
}

func (m *mockLoanRepository) Save(ctx context.Context, loan model.Loan) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, loan)
	}
	m.savedLoans = append(m.savedLoans, loan)
	return nil
}

func (m *mockLoanRepository) FindByID(ctx context.Context, id uuid.UUID) (model.Loan, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return model.Loan{}, port.ErrLoanNotFound
}

func (m *mockLoanRepository) ListActive(ctx context.Context) ([]model.Loan, error) {
	if m.listActiveFunc != nil {
		return m.listActiveFunc(ctx)
	}
	return nil, nil
}

type mockPaymentRepository struct {
	insertFunc     func(ctx context.Context, payment model.LoanPayment) error
	deleteFunc     func(ctx context.Context, id uuid.UUID) error
	findByIDFunc   func(ctx context.Context, id uuid.UUID) (model.LoanPayment, error)
	listByLoanFunc func(ctx context.Context, loanID uuid.UUID) ([]model.LoanPayment, error)
	inserted       []model.LoanPayment
	deleted        []uuid.UUID
}

func (m *mockPaymentRepository) Insert(ctx context.Context, payment model.LoanPayment) error {
	if m.insertFunc != nil {
		return m.insertFunc(ctx, payment)
	}
	m.inserted = append(m.inserted, payment)
	return nil
}

func (m *mockPaymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (model.LoanPayment, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return model.LoanPayment{}, port.ErrPaymentNotFound
}

func (m *mockPaymentRepository) ListByLoan(ctx context.Context, loanID uuid.UUID) ([]model.LoanPayment, error) {
	if m.listByLoanFunc != nil {
		return m.listByLoanFunc(ctx, loanID)
	}
	return nil, nil
}

type mockDueRepository struct {
	insertFunc             func(ctx context.Context, due model.Due) error
	listForRangeFunc       func(ctx context.Context, from, to valueobject.FiscalPeriod) ([]model.Due, error)
	listForMemberRangeFunc func(ctx context.Context, memberID uuid.UUID, from, to valueobject.FiscalPeriod) ([]model.Due, error)
	inserted               []model.Due
}

func (m *mockDueRepository) Insert(ctx context.Context, due model.Due) error {
	if m.insertFunc != nil {
		return m.insertFunc(ctx, due)
	}
	m.inserted = append(m.inserted, due)
	return nil
}

func (m *mockDueRepository) ListForRange(ctx context.Context, from, to valueobject.FiscalPeriod) ([]model.Due, error) {
	if m.listForRangeFunc != nil {
		return m.listForRangeFunc(ctx, from, to)
	}
	return nil, nil
}

func (m *mockDueRepository) ListForMemberRange(ctx context.Context, memberID uuid.UUID, from, to valueobject.FiscalPeriod) ([]model.Due, error) {
	if m.listForMemberRangeFunc != nil {
		return m.listForMemberRangeFunc(ctx, memberID, from, to)
	}
	return nil, nil
}

type mockExpenseRepository struct {
	insertFunc       func(ctx context.Context, expense model.Expense) error
	updateFunc       func(ctx context.Context, expense model.Expense) error
	findByIDFunc     func(ctx context.Context, id uuid.UUID) (model.Expense, error)
	listApprovedFunc func(ctx context.Context, from, to time.Time) ([]model.Expense, error)
	inserted         []model.Expense
	updated          []model.Expense
}

func (m *mockExpenseRepository) Insert(ctx context.Context, expense model.Expense) error {
	if m.insertFunc != nil {
		return m.insertFunc(ctx, expense)
	}
	m.inserted = append(m.inserted, expense)
	return nil
}

func (m *mockExpenseRepository) Update(ctx context.Context, expense model.Expense) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, expense)
	}
	m.updated = append(m.updated, expense)
	return nil
}

func (m *mockExpenseRepository) FindByID(ctx context.Context, id uuid.UUID) (model.Expense, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return model.Expense{}, port.ErrExpenseNotFound
}

func (m *mockExpenseRepository) ListApproved(ctx context.Context, from, to time.Time) ([]model.Expense, error) {
	if m.listApprovedFunc != nil {
		return m.listApprovedFunc(ctx, from, to)
	}
	return nil, nil
}

type mockDonationRepository struct {
	insertFunc       func(ctx context.Context, donation model.Donation) error
	listForRangeFunc func(ctx context.Context, from, to time.Time) ([]model.Donation, error)
	inserted         []model.Donation
}

func (m *mockDonationRepository) Insert(ctx context.Context, donation model.Donation) error {
	if m.insertFunc != nil {
		return m.insertFunc(ctx, donation)
	}
	m.inserted = append(m.inserted, donation)
	return nil
}

func (m *mockDonationRepository) ListForRange(ctx context.Context, from, to time.Time) ([]model.Donation, error) {
	if m.listForRangeFunc != nil {
		return m.listForRangeFunc(ctx, from, to)
	}
	return nil, nil
}

type mockMemberRepository struct {
	findByIDFunc func(ctx context.Context, id uuid.UUID) (model.Member, error)
	listFunc     func(ctx context.Context) ([]model.Member, error)
}

func (m *mockMemberRepository) FindByID(ctx context.Context, id uuid.UUID) (model.Member, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return model.Member{}, port.ErrMemberNotFound
}

func (m *mockMemberRepository) List(ctx context.Context) ([]model.Member, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

type mockFiscalPeriodRepository struct {
	isClosedFunc func(ctx context.Context, period valueobject.FiscalPeriod) (bool, error)
	closeFunc    func(ctx context.Context, period valueobject.FiscalPeriod) error
	closed       []valueobject.FiscalPeriod
}

func (m *mockFiscalPeriodRepository) IsClosed(ctx context.Context, period valueobject.FiscalPeriod) (bool, error) {
	if m.isClosedFunc != nil {
		return m.isClosedFunc(ctx, period)
	}
	return false, nil
}

func (m *mockFiscalPeriodRepository) Close(ctx context.Context, period valueobject.FiscalPeriod) error {
	if m.closeFunc != nil {
		return m.closeFunc(ctx, period)
	}
	m.closed = append(m.closed, period)
	return nil
}

type mockReconciliationRepository struct {
	fetchFunc func(ctx context.Context, end time.Time) (model.PeriodData, error)
	fetches   int
}

func (m *mockReconciliationRepository) FetchPeriodData(ctx context.Context, end time.Time) (model.PeriodData, error) {
	m.fetches++
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, end)
	}
	return model.PeriodData{}, nil
}

type mockStatementCache struct {
	getFunc func(ctx context.Context, start, end time.Time) (*model.PeriodStatement, error)
	putFunc func(ctx context.Context, statement model.PeriodStatement) error
	puts    []model.PeriodStatement
	bumps   int
}

func (m *mockStatementCache) Get(ctx context.Context, start, end time.Time) (*model.PeriodStatement, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, start, end)
	}
	return nil, nil
}

func (m *mockStatementCache) Put(ctx context.Context, statement model.PeriodStatement) error {
	if m.putFunc != nil {
		return m.putFunc(ctx, statement)
	}
	m.puts = append(m.puts, statement)
	return nil
}

func (m *mockStatementCache) Bump(ctx context.Context) error {
	m.bumps++
	return nil
}

type mockEventPublisher struct {
	publishFunc func(ctx context.Context, topic string, evts ...events.DomainEvent) error
	published   []events.DomainEvent
	topics      []string
}

func (m *mockEventPublisher) Publish(ctx context.Context, topic string, evts ...events.DomainEvent) error {
	if m.publishFunc != nil {
		return m.publishFunc(ctx, topic, evts...)
	}
	m.published = append(m.published, evts...)
	m.topics = append(m.topics, topic)
	return nil
}

// --- Shared fixtures ---

// The Rp 10,000,000 loan at 12% over 10 months used across these tests.

func pendingLoanFixture(memberID uuid.UUID) model.Loan {
	filed := time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC)
	return model.ReconstructLoan(
		uuid.New(), memberID,
		money.New(10_000_000), decimal.NewFromInt(12), 10,
		money.Zero(), money.Zero(),
		time.Time{},
		valueobject.LoanStatusPending,
		money.Zero(),
		1, filed, filed,
	)
}

func activeLoanFixture(memberID uuid.UUID) model.Loan {
	origination := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)
	return model.ReconstructLoan(
		uuid.New(), memberID,
		money.New(10_000_000), decimal.NewFromInt(12), 10,
		money.New(1_000_000), money.New(11_000_000),
		origination,
		valueobject.LoanStatusActive,
		money.New(10_000_000),
		2, origination, origination,
	)
}

func activeMemberFixture() model.Member {
	return model.ReconstructMember(uuid.New(), "A-0042", "Siti Rahayu", true,
		time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC))
}
