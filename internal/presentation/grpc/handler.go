package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/kspdigital/koperasi-core/internal/application/dto"
	"github.com/kspdigital/koperasi-core/internal/application/usecase"
	"github.com/kspdigital/koperasi-core/internal/domain/model"
	"github.com/kspdigital/koperasi-core/internal/domain/port"
	"github.com/kspdigital/koperasi-core/internal/domain/valueobject"
	"github.com/kspdigital/koperasi-core/pkg/auth"
)

// requireRole checks that the caller has at least one of the given roles.
func requireRole(ctx context.Context, roles ...string) error {
	claims, ok := auth.ClaimsFromContext(ctx)
	if !ok {
		return status.Error(codes.Unauthenticated, "authentication required")
	}
	for _, role := range roles {
		if claims.HasRole(role) {
			return nil
		}
	}
	return status.Error(codes.PermissionDenied, "insufficient permissions")
}

// statusFromError translates domain and port errors into gRPC status errors.
func statusFromError(err error) error {
	switch {
	case errors.Is(err, port.ErrLoanNotFound),
		errors.Is(err, port.ErrPaymentNotFound),
		errors.Is(err, port.ErrMemberNotFound),
		errors.Is(err, port.ErrExpenseNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, port.ErrPeriodClosed):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, port.ErrVersionConflict):
		return status.Error(codes.Aborted, err.Error())
	case errors.Is(err, valueobject.ErrInvalidStatusTransition):
		return status.Error(codes.FailedPrecondition, err.Error())
	}

	var constraint port.ConstraintViolationError
	if errors.As(err, &constraint) {
		return status.Error(codes.AlreadyExists, constraint.Error())
	}
	var duplicate model.DuplicateInstallmentError
	if errors.As(err, &duplicate) {
		return status.Error(codes.AlreadyExists, duplicate.Error())
	}
	var terms model.InvalidLoanTermsError
	if errors.As(err, &terms) {
		return status.Error(codes.InvalidArgument, terms.Error())
	}
	var overpayment model.OverpaymentError
	if errors.As(err, &overpayment) {
		return status.Error(codes.InvalidArgument, overpayment.Error())
	}

	return status.Error(codes.Internal, "internal error")
}

// Compile-time assertion that LedgerHandler implements LedgerServiceServer.
var _ LedgerServiceServer = (*LedgerHandler)(nil)

// UseCases bundles the application operations the handler exposes.
type UseCases struct {
	ComputeAmortization *usecase.ComputeAmortizationUseCase
	RegisterLoan        *usecase.RegisterLoanUseCase
	ApproveLoan         *usecase.ApproveLoanUseCase
	RejectLoan          *usecase.RejectLoanUseCase
	GetLoan             *usecase.GetLoanUseCase
	GetLoanSchedule     *usecase.GetLoanScheduleUseCase
	RecordPayment       *usecase.RecordPaymentUseCase
	ReversePayment      *usecase.ReversePaymentUseCase
	RecordDue           *usecase.RecordDueUseCase
	DuesTotals          *usecase.DuesTotalsUseCase
	RecordExpense       *usecase.RecordExpenseUseCase
	ApproveExpense      *usecase.ApproveExpenseUseCase
	RecordDonation      *usecase.RecordDonationUseCase
	ReconcilePeriod     *usecase.ReconcilePeriodUseCase
	ClosePeriod         *usecase.ClosePeriodUseCase
}

// LedgerHandler implements the gRPC LedgerServiceServer interface.
type LedgerHandler struct {
	UnimplementedLedgerServiceServer
	uc UseCases
}

// NewLedgerHandler creates a handler over the bundled use cases.
func NewLedgerHandler(uc UseCases) *LedgerHandler {
	return &LedgerHandler{uc: uc}
}

// ComputeAmortization prices repayment terms without touching a loan.
func (h *LedgerHandler) ComputeAmortization(ctx context.Context, req *ComputeAmortizationRequest) (*ComputeAmortizationResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleChairman, auth.RoleTreasurer, auth.RoleSupervisor, auth.RoleMember); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	principal, err := parseAmount("principal", req.Principal)
	if err != nil {
		return nil, err
	}
	rate, err := parseAmount("annual_rate_percent", req.AnnualRatePercent)
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.ComputeAmortization.Execute(ctx, dto.ComputeAmortizationRequest{
		Principal:         principal,
		AnnualRatePercent: rate,
		TenorMonths:       req.TenorMonths,
	})
	if err != nil {
		return nil, statusFromError(err)
	}

	return &ComputeAmortizationResponse{
		Terms: &AmortizationMsg{
			Principal:          resp.Principal.String(),
			AnnualRatePercent:  resp.AnnualRatePercent.String(),
			TenorMonths:        resp.TenorMonths,
			MonthlyInstallment: resp.MonthlyInstallment.String(),
			InterestTotal:      resp.InterestTotal.String(),
			TotalWithInterest:  resp.TotalWithInterest.String(),
		},
	}, nil
}

// RegisterLoan handles a new loan application.
func (h *LedgerHandler) RegisterLoan(ctx context.Context, req *RegisterLoanRequest) (*RegisterLoanResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleTreasurer); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if err := requireUUID("member_id", req.MemberID); err != nil {
		return nil, err
	}
	principal, err := parseAmount("principal", req.Principal)
	if err != nil {
		return nil, err
	}
	rate, err := parseAmount("annual_rate_percent", req.AnnualRatePercent)
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.RegisterLoan.Execute(ctx, dto.RegisterLoanRequest{
		MemberID:          req.MemberID,
		Principal:         principal,
		AnnualRatePercent: rate,
		TenorMonths:       req.TenorMonths,
	})
	if err != nil {
		return nil, statusFromError(err)
	}

	return &RegisterLoanResponse{Loan: loanMsg(resp)}, nil
}

// ApproveLoan activates a pending loan as of the origination date.
func (h *LedgerHandler) ApproveLoan(ctx context.Context, req *ApproveLoanRequest) (*ApproveLoanResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleChairman); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if err := requireUUID("loan_id", req.LoanID); err != nil {
		return nil, err
	}
	originationDate, err := parseDate("origination_date", req.OriginationDate)
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.ApproveLoan.Execute(ctx, dto.ApproveLoanRequest{
		LoanID:          req.LoanID,
		OriginationDate: originationDate,
	})
	if err != nil {
		return nil, statusFromError(err)
	}

	return &ApproveLoanResponse{Loan: loanMsg(resp)}, nil
}

// RejectLoan turns down a pending loan.
func (h *LedgerHandler) RejectLoan(ctx context.Context, req *RejectLoanRequest) (*RejectLoanResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleChairman); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if err := requireUUID("loan_id", req.LoanID); err != nil {
		return nil, err
	}

	resp, err := h.uc.RejectLoan.Execute(ctx, dto.RejectLoanRequest{
		LoanID: req.LoanID,
		Reason: req.Reason,
	})
	if err != nil {
		return nil, statusFromError(err)
	}

	return &RejectLoanResponse{Loan: loanMsg(resp)}, nil
}

// GetLoan retrieves a loan by ID.
func (h *LedgerHandler) GetLoan(ctx context.Context, req *GetLoanRequest) (*GetLoanResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleChairman, auth.RoleTreasurer, auth.RoleSupervisor, auth.RoleMember); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if err := requireUUID("id", req.ID); err != nil {
		return nil, err
	}

	resp, err := h.uc.GetLoan.Execute(ctx, dto.GetLoanRequest{LoanID: req.ID})
	if err != nil {
		return nil, statusFromError(err)
	}

	return &GetLoanResponse{Loan: loanMsg(resp)}, nil
}

// GetLoanSchedule computes the expected repayment plan of a loan.
func (h *LedgerHandler) GetLoanSchedule(ctx context.Context, req *GetLoanScheduleRequest) (*GetLoanScheduleResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleChairman, auth.RoleTreasurer, auth.RoleSupervisor, auth.RoleMember); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if err := requireUUID("loan_id", req.LoanID); err != nil {
		return nil, err
	}

	resp, err := h.uc.GetLoanSchedule.Execute(ctx, dto.GetLoanScheduleRequest{LoanID: req.LoanID})
	if err != nil {
		return nil, statusFromError(err)
	}

	entries := make([]*ScheduleEntryMsg, 0, len(resp.Entries))
	for _, entry := range resp.Entries {
		entries = append(entries, &ScheduleEntryMsg{
			InstallmentNumber: entry.InstallmentNumber,
			ExpectedPrincipal: entry.ExpectedPrincipal.String(),
			ExpectedDueDate:   entry.ExpectedDueDate.Format(time.RFC3339),
		})
	}

	return &GetLoanScheduleResponse{LoanID: resp.LoanID, Entries: entries}, nil
}

// RecordPayment books one installment payment against an active loan.
func (h *LedgerHandler) RecordPayment(ctx context.Context, req *RecordPaymentRequest) (*RecordPaymentResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleTreasurer); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if err := requireUUID("loan_id", req.LoanID); err != nil {
		return nil, err
	}
	principal, err := parseAmount("principal", req.Principal)
	if err != nil {
		return nil, err
	}
	var interest *decimal.Decimal
	if req.Interest != nil {
		parsed, err := parseAmount("interest", *req.Interest)
		if err != nil {
			return nil, err
		}
		interest = &parsed
	}
	paymentDate, err := parseDate("payment_date", req.PaymentDate)
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.RecordPayment.Execute(ctx, dto.RecordPaymentRequest{
		LoanID:            req.LoanID,
		InstallmentNumber: req.InstallmentNumber,
		Principal:         principal,
		Interest:          interest,
		PaymentDate:       paymentDate,
		Payoff:            req.Payoff,
	})
	if err != nil {
		return nil, statusFromError(err)
	}

	return &RecordPaymentResponse{
		Loan:    loanMsg(resp.Loan),
		Payment: paymentMsg(resp.Payment),
	}, nil
}

// ReversePayment removes a mistaken payment row and restores the balance.
func (h *LedgerHandler) ReversePayment(ctx context.Context, req *ReversePaymentRequest) (*ReversePaymentResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleTreasurer); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if err := requireUUID("loan_id", req.LoanID); err != nil {
		return nil, err
	}
	if err := requireUUID("payment_id", req.PaymentID); err != nil {
		return nil, err
	}

	resp, err := h.uc.ReversePayment.Execute(ctx, dto.ReversePaymentRequest{
		LoanID:    req.LoanID,
		PaymentID: req.PaymentID,
	})
	if err != nil {
		return nil, statusFromError(err)
	}

	return &ReversePaymentResponse{Loan: loanMsg(resp)}, nil
}

// RecordDue books one member's savings contribution for a fiscal month.
func (h *LedgerHandler) RecordDue(ctx context.Context, req *RecordDueRequest) (*RecordDueResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleTreasurer); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if err := requireUUID("member_id", req.MemberID); err != nil {
		return nil, err
	}
	if err := requirePeriod("period", req.Year, req.Month); err != nil {
		return nil, err
	}
	mandatory, err := parseAmount("mandatory_amount", req.MandatoryAmount)
	if err != nil {
		return nil, err
	}
	voluntary, err := parseAmount("voluntary_amount", req.VoluntaryAmount)
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.RecordDue.Execute(ctx, dto.RecordDueRequest{
		MemberID:        req.MemberID,
		Year:            req.Year,
		Month:           req.Month,
		MandatoryAmount: mandatory,
		VoluntaryAmount: voluntary,
	})
	if err != nil {
		return nil, statusFromError(err)
	}

	return &RecordDueResponse{Due: dueMsg(resp)}, nil
}

// DuesTotals sums dues over a fiscal month range.
func (h *LedgerHandler) DuesTotals(ctx context.Context, req *DuesTotalsRequest) (*DuesTotalsResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleChairman, auth.RoleTreasurer, auth.RoleSupervisor, auth.RoleMember); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if req.MemberID != "" {
		if err := requireUUID("member_id", req.MemberID); err != nil {
			return nil, err
		}
	}
	if err := requirePeriod("from", req.FromYear, req.FromMonth); err != nil {
		return nil, err
	}
	if err := requirePeriod("to", req.ToYear, req.ToMonth); err != nil {
		return nil, err
	}

	resp, err := h.uc.DuesTotals.Execute(ctx, dto.DuesTotalsRequest{
		MemberID:  req.MemberID,
		FromYear:  req.FromYear,
		FromMonth: req.FromMonth,
		ToYear:    req.ToYear,
		ToMonth:   req.ToMonth,
	})
	if err != nil {
		return nil, statusFromError(err)
	}

	return &DuesTotalsResponse{
		MemberID:  resp.MemberID,
		From:      resp.From,
		To:        resp.To,
		Mandatory: resp.Mandatory.String(),
		Voluntary: resp.Voluntary.String(),
		Total:     resp.Total.String(),
	}, nil
}

// RecordExpense books an outgoing cash entry pending approval.
func (h *LedgerHandler) RecordExpense(ctx context.Context, req *RecordExpenseRequest) (*RecordExpenseResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleTreasurer); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if req.Category == "" {
		return nil, status.Error(codes.InvalidArgument, "category is required")
	}
	amount, err := parseAmount("amount", req.Amount)
	if err != nil {
		return nil, err
	}
	expenseDate, err := parseDate("expense_date", req.ExpenseDate)
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.RecordExpense.Execute(ctx, dto.RecordExpenseRequest{
		Category:    req.Category,
		Amount:      amount,
		ExpenseDate: expenseDate,
	})
	if err != nil {
		return nil, statusFromError(err)
	}

	return &RecordExpenseResponse{Expense: expenseMsg(resp)}, nil
}

// ApproveExpense settles a pending expense.
func (h *LedgerHandler) ApproveExpense(ctx context.Context, req *ApproveExpenseRequest) (*ApproveExpenseResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleChairman); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if err := requireUUID("expense_id", req.ExpenseID); err != nil {
		return nil, err
	}

	resp, err := h.uc.ApproveExpense.Execute(ctx, dto.ApproveExpenseRequest{
		ExpenseID: req.ExpenseID,
		Approve:   req.Approve,
	})
	if err != nil {
		return nil, statusFromError(err)
	}

	return &ApproveExpenseResponse{Expense: expenseMsg(resp)}, nil
}

// RecordDonation books an incoming gift.
func (h *LedgerHandler) RecordDonation(ctx context.Context, req *RecordDonationRequest) (*RecordDonationResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleTreasurer); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if req.Donor == "" {
		return nil, status.Error(codes.InvalidArgument, "donor is required")
	}
	amount, err := parseAmount("amount", req.Amount)
	if err != nil {
		return nil, err
	}
	donationDate, err := parseDate("donation_date", req.DonationDate)
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.RecordDonation.Execute(ctx, dto.RecordDonationRequest{
		Donor:        req.Donor,
		Amount:       amount,
		DonationDate: donationDate,
	})
	if err != nil {
		return nil, statusFromError(err)
	}

	return &RecordDonationResponse{Donation: donationMsg(resp)}, nil
}

// ReconcilePeriod produces the financial statement for [period_start,
// period_end). A failed accounting identity is not a transport error: the
// statement comes back with balanced=false and the signed delta.
func (h *LedgerHandler) ReconcilePeriod(ctx context.Context, req *ReconcilePeriodRequest) (*ReconcilePeriodResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleChairman, auth.RoleTreasurer, auth.RoleSupervisor); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	start, err := parseDate("period_start", req.PeriodStart)
	if err != nil {
		return nil, err
	}
	end, err := parseDate("period_end", req.PeriodEnd)
	if err != nil {
		return nil, err
	}
	if !start.Before(end) {
		return nil, status.Error(codes.InvalidArgument, "period_start must be before period_end")
	}

	resp, err := h.uc.ReconcilePeriod.Execute(ctx, dto.ReconcilePeriodRequest{
		PeriodStart: start,
		PeriodEnd:   end,
	})
	if err != nil {
		var mismatch model.BalanceMismatchError
		if !errors.As(err, &mismatch) {
			return nil, statusFromError(err)
		}
	}

	return &ReconcilePeriodResponse{Statement: statementMsg(resp)}, nil
}

// ClosePeriod marks a fiscal month closed for entry.
func (h *LedgerHandler) ClosePeriod(ctx context.Context, req *ClosePeriodRequest) (*ClosePeriodResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleChairman, auth.RoleTreasurer); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if err := requirePeriod("period", req.Year, req.Month); err != nil {
		return nil, err
	}

	resp, err := h.uc.ClosePeriod.Execute(ctx, dto.ClosePeriodRequest{
		Year:  req.Year,
		Month: req.Month,
	})
	if err != nil {
		return nil, statusFromError(err)
	}

	return &ClosePeriodResponse{Period: resp.Period, Closed: resp.Closed}, nil
}

// ---------------------------------------------------------------------------
// Field validation
// ---------------------------------------------------------------------------

func requireUUID(field, value string) error {
	if _, err := uuid.Parse(value); err != nil {
		return status.Errorf(codes.InvalidArgument, "invalid %s: %v", field, err)
	}
	return nil
}

func requirePeriod(field string, year, month int) error {
	if _, err := valueobject.NewFiscalPeriod(year, time.Month(month)); err != nil {
		return status.Errorf(codes.InvalidArgument, "invalid %s: %v", field, err)
	}
	return nil
}

func parseAmount(field, value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Decimal{}, status.Errorf(codes.InvalidArgument, "%s is required", field)
	}
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, status.Errorf(codes.InvalidArgument, "invalid %s: %v", field, err)
	}
	return amount, nil
}

// parseDate accepts an RFC 3339 timestamp or a bare YYYY-MM-DD book date.
func parseDate(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, status.Errorf(codes.InvalidArgument, "%s is required", field)
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, status.Errorf(codes.InvalidArgument, "invalid %s: want RFC 3339 or YYYY-MM-DD", field)
	}
	return t, nil
}

// ---------------------------------------------------------------------------
// Response conversion
// ---------------------------------------------------------------------------

func loanMsg(resp dto.LoanResponse) *LoanMsg {
	msg := &LoanMsg{
		ID:                 resp.ID,
		MemberID:           resp.MemberID,
		Principal:          resp.Principal.String(),
		AnnualRatePercent:  resp.AnnualRatePercent.String(),
		TenorMonths:        resp.TenorMonths,
		MonthlyInstallment: resp.MonthlyInstallment.String(),
		TotalWithInterest:  resp.TotalWithInterest.String(),
		Status:             resp.Status,
		OutstandingBalance: resp.OutstandingBalance.String(),
		CreatedAt:          resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          resp.UpdatedAt.Format(time.RFC3339),
	}
	if !resp.OriginationDate.IsZero() {
		msg.OriginationDate = resp.OriginationDate.Format(time.RFC3339)
	}
	return msg
}

func paymentMsg(resp dto.PaymentResponse) *PaymentMsg {
	return &PaymentMsg{
		ID:                resp.ID,
		LoanID:            resp.LoanID,
		InstallmentNumber: resp.InstallmentNumber,
		Principal:         resp.Principal.String(),
		Interest:          resp.Interest.String(),
		Total:             resp.Total.String(),
		PaymentDate:       resp.PaymentDate.Format(time.RFC3339),
		Status:            resp.Status,
	}
}

func dueMsg(resp dto.DueResponse) *DueMsg {
	return &DueMsg{
		ID:              resp.ID,
		MemberID:        resp.MemberID,
		Period:          resp.Period,
		MandatoryAmount: resp.MandatoryAmount.String(),
		VoluntaryAmount: resp.VoluntaryAmount.String(),
		Total:           resp.Total.String(),
		RecordedAt:      resp.RecordedAt.Format(time.RFC3339),
	}
}

func expenseMsg(resp dto.ExpenseResponse) *ExpenseMsg {
	return &ExpenseMsg{
		ID:          resp.ID,
		Category:    resp.Category,
		Amount:      resp.Amount.String(),
		ExpenseDate: resp.ExpenseDate.Format(time.RFC3339),
		Status:      resp.Status,
	}
}

func donationMsg(resp dto.DonationResponse) *DonationMsg {
	return &DonationMsg{
		ID:           resp.ID,
		Donor:        resp.Donor,
		Amount:       resp.Amount.String(),
		DonationDate: resp.DonationDate.Format(time.RFC3339),
	}
}

func statementLineMsgs(lines []dto.StatementLineResponse) []*StatementLineMsg {
	out := make([]*StatementLineMsg, 0, len(lines))
	for _, line := range lines {
		out = append(out, &StatementLineMsg{Category: line.Category, Amount: line.Amount.String()})
	}
	return out
}

func statementMsg(resp dto.PeriodStatementResponse) *StatementMsg {
	sheet := resp.BalanceSheet
	return &StatementMsg{
		PeriodStart:      resp.PeriodStart.Format(time.RFC3339),
		PeriodEnd:        resp.PeriodEnd.Format(time.RFC3339),
		IncomeBreakdown:  statementLineMsgs(resp.IncomeBreakdown),
		ExpenseBreakdown: statementLineMsgs(resp.ExpenseBreakdown),
		TotalIncome:      resp.TotalIncome.String(),
		TotalExpenses:    resp.TotalExpenses.String(),
		OpeningBalance:   resp.OpeningBalance.String(),
		EndingBalance:    resp.EndingBalance.String(),
		BalanceSheet: &BalanceSheetMsg{
			CashAndBank:         sheet.CashAndBank.String(),
			LoanReceivables:     sheet.LoanReceivables.String(),
			TotalAssets:         sheet.TotalAssets.String(),
			MandatorySavings:    sheet.MandatorySavings.String(),
			VoluntarySavings:    sheet.VoluntarySavings.String(),
			TotalLiabilities:    sheet.TotalLiabilities.String(),
			EquityMandatoryDues: sheet.EquityMandatoryDues.String(),
			RetainedSurplus:     sheet.RetainedSurplus.String(),
			TotalEquity:         sheet.TotalEquity.String(),
		},
		Balanced: resp.Balanced,
		Delta:    resp.Delta.String(),
	}
}
