package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// ExpenseStatus – immutable value object
// ---------------------------------------------------------------------------

// ExpenseStatus is the authorization state of an expense entry. Only
// approved expenses participate in period reconciliation.
type ExpenseStatus struct {
	value string
}

const (
	expenseStatusPending  = "pending"
	expenseStatusApproved = "approved"
	expenseStatusRejected = "rejected"
)

var (
	ExpenseStatusPending  = ExpenseStatus{value: expenseStatusPending}
	ExpenseStatusApproved = ExpenseStatus{value: expenseStatusApproved}
	ExpenseStatusRejected = ExpenseStatus{value: expenseStatusRejected}
)

var validExpenseStatuses = map[string]ExpenseStatus{
	expenseStatusPending:  ExpenseStatusPending,
	expenseStatusApproved: ExpenseStatusApproved,
	expenseStatusRejected: ExpenseStatusRejected,
}

// NewExpenseStatus creates an ExpenseStatus from a raw string.
func NewExpenseStatus(s string) (ExpenseStatus, error) {
	v, ok := validExpenseStatuses[s]
	if !ok {
		return ExpenseStatus{}, fmt.Errorf("invalid expense status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s ExpenseStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s ExpenseStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s ExpenseStatus) Equal(other ExpenseStatus) bool { return s.value == other.value }
