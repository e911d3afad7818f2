package services

import (
	"time"

	"nbcfdc-lending/internal/core/domain"
)

const loanIDTimeFormat = "20060102150405"

// Fixed repeat-loan terms: a pre-approved re-borrowing of the standard amount
// with no new underwriting.
const (
	repeatLoanAmount         = 150000
	repeatLoanProcessingTime = "45 seconds"
)

// LoanRequest carries the client's loan application. Amount is echoed back
// verbatim; no type or range check is performed by the demo underwriter.
type LoanRequest struct {
	Amount interface{} `json:"amount"`
}

// Decider is the underwriting collaborator. The demo implementation approves
// everything instantly; a real scoring engine would implement the same
// contract.
type Decider interface {
	Decide(req LoanRequest) *domain.LoanDecision
	DecideRepeat() *domain.LoanDecision
}

// LoanService simulates instant loan decisions
type LoanService struct {
	now func() time.Time
}

// NewLoanService creates a new loan service using wall-clock time
func NewLoanService() *LoanService {
	return &LoanService{now: time.Now}
}

// NewLoanServiceWithClock creates a loan service with an injected clock
func NewLoanServiceWithClock(now func() time.Time) *LoanService {
	return &LoanService{now: now}
}

// Decide synthesizes an instant approval for a new loan application
func (s *LoanService) Decide(req LoanRequest) *domain.LoanDecision {
	return &domain.LoanDecision{
		LoanID:  "LOAN-" + s.now().Format(loanIDTimeFormat),
		Amount:  req.Amount,
		Status:  "APPROVED",
		Message: "Loan approved instantly! Funds will be transferred within 24 hours.",
	}
}

// DecideRepeat synthesizes an expedited repeat-loan approval. The request body
// is ignored entirely; amount and processing time are fixed.
func (s *LoanService) DecideRepeat() *domain.LoanDecision {
	return &domain.LoanDecision{
		LoanID:         "LOAN-RPT-" + s.now().Format(loanIDTimeFormat),
		Amount:         repeatLoanAmount,
		Status:         "APPROVED",
		ProcessingTime: repeatLoanProcessingTime,
		Message:        "Repeat loan approved! 50% faster than traditional process.",
	}
}
