package usecase

import (
	"github.com/kspdigital/koperasi-core/internal/application/dto"
	"github.com/kspdigital/koperasi-core/internal/domain/model"
)

// Event topics, one per stream: loan lifecycle events and everything the
// bookkeeping ledger records.
const (
	TopicLoans  = "koperasi.loans"
	TopicLedger = "koperasi.ledger"
)

func loanResponse(loan model.Loan) dto.LoanResponse {
	return dto.LoanResponse{
		ID:                 loan.ID().String(),
		MemberID:           loan.MemberID().String(),
		Principal:          loan.Principal().Decimal(),
		AnnualRatePercent:  loan.AnnualRatePercent(),
		TenorMonths:        loan.TenorMonths(),
		MonthlyInstallment: loan.MonthlyInstallment().Decimal(),
		TotalWithInterest:  loan.TotalWithInterest().Decimal(),
		OriginationDate:    loan.OriginationDate(),
		Status:             loan.Status().String(),
		OutstandingBalance: loan.OutstandingBalance().Decimal(),
		CreatedAt:          loan.CreatedAt(),
		UpdatedAt:          loan.UpdatedAt(),
	}
}

func paymentResponse(payment model.LoanPayment) dto.PaymentResponse {
	return dto.PaymentResponse{
		ID:                payment.ID().String(),
		LoanID:            payment.LoanID().String(),
		InstallmentNumber: payment.InstallmentNumber(),
		Principal:         payment.PrincipalPortion().Decimal(),
		Interest:          payment.InterestPortion().Decimal(),
		Total:             payment.Total().Decimal(),
		PaymentDate:       payment.PaymentDate(),
		Status:            payment.Status().String(),
	}
}

func dueResponse(due model.Due) dto.DueResponse {
	return dto.DueResponse{
		ID:              due.ID().String(),
		MemberID:        due.MemberID().String(),
		Period:          due.Period().String(),
		MandatoryAmount: due.MandatoryAmount().Decimal(),
		VoluntaryAmount: due.VoluntaryAmount().Decimal(),
		Total:           due.Total().Decimal(),
		RecordedAt:      due.RecordedAt(),
	}
}

func expenseResponse(expense model.Expense) dto.ExpenseResponse {
	return dto.ExpenseResponse{
		ID:          expense.ID().String(),
		Category:    expense.Category(),
		Amount:      expense.Amount().Decimal(),
		ExpenseDate: expense.ExpenseDate(),
		Status:      expense.Status().String(),
	}
}

func donationResponse(donation model.Donation) dto.DonationResponse {
	return dto.DonationResponse{
		ID:           donation.ID().String(),
		Donor:        donation.Donor(),
		Amount:       donation.Amount().Decimal(),
		DonationDate: donation.DonationDate(),
	}
}

func statementLines(lines []model.StatementLine) []dto.StatementLineResponse {
	out := make([]dto.StatementLineResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, dto.StatementLineResponse{
			Category: l.Category,
			Amount:   l.Amount.Decimal(),
		})
	}
	return out
}

func statementResponse(statement model.PeriodStatement) dto.PeriodStatementResponse {
	sheet := statement.BalanceSheet
	return dto.PeriodStatementResponse{
		PeriodStart:      statement.PeriodStart,
		PeriodEnd:        statement.PeriodEnd,
		IncomeBreakdown:  statementLines(statement.IncomeBreakdown),
		ExpenseBreakdown: statementLines(statement.ExpenseBreakdown),
		TotalIncome:      statement.TotalIncome.Decimal(),
		TotalExpenses:    statement.TotalExpenses.Decimal(),
		OpeningBalance:   statement.OpeningBalance.Decimal(),
		EndingBalance:    statement.EndingBalance.Decimal(),
		BalanceSheet: dto.BalanceSheetResponse{
			CashAndBank:         sheet.Assets.CashAndBank.Decimal(),
			LoanReceivables:     sheet.Assets.LoanReceivables.Decimal(),
			TotalAssets:         sheet.Assets.Total().Decimal(),
			MandatorySavings:    sheet.Liabilities.MandatorySavings.Decimal(),
			VoluntarySavings:    sheet.Liabilities.VoluntarySavings.Decimal(),
			TotalLiabilities:    sheet.Liabilities.Total().Decimal(),
			EquityMandatoryDues: sheet.Equity.MandatoryDues.Decimal(),
			RetainedSurplus:     sheet.Equity.RetainedSurplus.Decimal(),
			TotalEquity:         sheet.Equity.Total().Decimal(),
		},
		Balanced: sheet.Balances(),
		Delta:    sheet.Delta().Decimal(),
	}
}
