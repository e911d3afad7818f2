package services_test

import (
	"testing"
	"time"

	"nbcfdc-lending/internal/core/services"

	"github.com/stretchr/testify/assert"
)

func fixedClock() func() time.Time {
	at := time.Date(2024, 3, 7, 14, 30, 45, 0, time.UTC)
	return func() time.Time { return at }
}

func TestDecide_InstantApproval(t *testing.T) {
	svc := services.NewLoanServiceWithClock(fixedClock())

	decision := svc.Decide(services.LoanRequest{Amount: float64(50000)})

	assert.Equal(t, "LOAN-20240307143045", decision.LoanID)
	assert.Equal(t, float64(50000), decision.Amount)
	assert.Equal(t, "APPROVED", decision.Status)
	assert.Empty(t, decision.ProcessingTime)
	assert.Equal(t, "Loan approved instantly! Funds will be transferred within 24 hours.", decision.Message)
}

func TestDecide_AmountEchoedVerbatim(t *testing.T) {
	svc := services.NewLoanServiceWithClock(fixedClock())

	// The demo underwriter performs no type or range checks
	assert.Equal(t, "fifty", svc.Decide(services.LoanRequest{Amount: "fifty"}).Amount)
	assert.Nil(t, svc.Decide(services.LoanRequest{}).Amount)
	assert.Equal(t, "APPROVED", svc.Decide(services.LoanRequest{Amount: -1}).Status)
}

func TestDecideRepeat_FixedTerms(t *testing.T) {
	svc := services.NewLoanServiceWithClock(fixedClock())

	decision := svc.DecideRepeat()

	assert.Equal(t, "LOAN-RPT-20240307143045", decision.LoanID)
	assert.Equal(t, 150000, decision.Amount)
	assert.Equal(t, "APPROVED", decision.Status)
	assert.Equal(t, "45 seconds", decision.ProcessingTime)
	assert.Equal(t, "Repeat loan approved! 50% faster than traditional process.", decision.Message)
}
