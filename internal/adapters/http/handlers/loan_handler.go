package handlers

import (
	"nbcfdc-lending/internal/core/services"

	"github.com/gofiber/fiber/v2"
)

// LoanHandler handles the loan-simulation API endpoints
type LoanHandler struct {
	decider services.Decider
}

// NewLoanHandler creates a new loan handler
func NewLoanHandler(decider services.Decider) *LoanHandler {
	return &LoanHandler{decider: decider}
}

// LoanResponse represents a loan decision API response
type LoanResponse struct {
	Success        bool        `json:"success"`
	LoanID         string      `json:"loan_id"`
	Amount         interface{} `json:"amount"`
	Status         string      `json:"status"`
	ProcessingTime string      `json:"processing_time,omitempty"`
	Message        string      `json:"message"`
}

// SubmitLoan handles a new loan application
// @Summary Submit loan application
// @Description Submit a loan application for instant decision
// @Tags Loans
// @Accept json
// @Produce json
// @Param body body services.LoanRequest true "Loan application"
// @Success 200 {object} LoanResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /api/submit-loan [post]
func (h *LoanHandler) SubmitLoan(c *fiber.Ctx) error {
	var req services.LoanRequest
	// Amount is echoed verbatim and unchecked; an unreadable body decides
	// over an empty request rather than failing.
	_ = c.BodyParser(&req)

	decision := h.decider.Decide(req)

	return c.JSON(LoanResponse{
		Success: true,
		LoanID:  decision.LoanID,
		Amount:  decision.Amount,
		Status:  decision.Status,
		Message: decision.Message,
	})
}

// RepeatLoan handles an expedited repeat-loan request
// @Summary Request repeat loan
// @Description Request a pre-approved repeat loan with fixed terms
// @Tags Loans
// @Accept json
// @Produce json
// @Success 200 {object} LoanResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /api/repeat-loan [post]
func (h *LoanHandler) RepeatLoan(c *fiber.Ctx) error {
	// Request body is ignored entirely; the repeat path has no new underwriting
	decision := h.decider.DecideRepeat()

	return c.JSON(LoanResponse{
		Success:        true,
		LoanID:         decision.LoanID,
		Amount:         decision.Amount,
		Status:         decision.Status,
		ProcessingTime: decision.ProcessingTime,
		Message:        decision.Message,
	})
}
