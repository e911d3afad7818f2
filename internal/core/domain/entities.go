package domain

// Role represents user role in the system
type Role string

const (
	RoleBeneficiary Role = "beneficiary"
	RoleAdmin       Role = "admin"
)

// LoanStatus values used in a beneficiary's loan history
const (
	LoanStatusCompleted = "Completed"
	LoanStatusActive    = "Active"
)

// BeneficiaryStatus values used in the admin directory view
const (
	BeneficiaryStatusActive      = "Active"
	BeneficiaryStatusUnderReview = "Under Review"
	BeneficiaryStatusInactive    = "Inactive"
)

// UserRecord represents one authenticatable identity in the Identity Directory.
// Admin records carry no scoring fields; beneficiary records carry all of them.
type UserRecord struct {
	Username   string `json:"username"`
	Password   string `json:"-"` // bcrypt hash
	Role       Role   `json:"role"`
	Name       string `json:"name"`
	ExternalID string `json:"id"`

	// Scoring fields (beneficiary only)
	CreditScore      int                `json:"credit_score,omitempty"`
	RepaymentScore   int                `json:"repayment_score,omitempty"`
	ConsumptionScore int                `json:"consumption_score,omitempty"`
	CompositeScore   int                `json:"composite_score,omitempty"`
	RiskBand         string             `json:"risk_band,omitempty"`
	ActiveLoans      int                `json:"active_loans,omitempty"`
	TotalBorrowed    float64            `json:"total_borrowed,omitempty"`
	LoanHistory      []LoanHistoryEntry `json:"loan_history,omitempty"`
}

// LoanHistoryEntry represents one past or ongoing loan of a beneficiary
type LoanHistoryEntry struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
	Status string  `json:"status"`
	Repaid int     `json:"repaid"`
}

// BeneficiarySummary is one row of the admin analytics directory.
// Independent of UserRecord; the list is illustrative, not derived.
type BeneficiarySummary struct {
	ExternalID string `json:"id"`
	Name       string `json:"name"`
	Score      int    `json:"score"`
	Band       string `json:"band"`
	Status     string `json:"status"`
}

// Session holds the authenticated identity projection cached for a client.
// Created on login, read on every protected request, cleared on logout.
type Session struct {
	Username    string
	Role        Role
	Name        string
	ExternalID  string
	CreditScore int
	RiskBand    string
}

// IsAdmin reports whether the session belongs to an admin user
func (s *Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}

// LoanDecision is the ephemeral result of a simulated loan decision.
// It exists only for the duration of one API response; nothing is persisted.
type LoanDecision struct {
	LoanID         string
	Amount         interface{}
	Status         string
	ProcessingTime string
	Message        string
}
