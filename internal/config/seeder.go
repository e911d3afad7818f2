package config

import (
	"log"

	"nbcfdc-lending/internal/core/domain"
	"nbcfdc-lending/internal/pkg/password"
)

// Demo credentials. These are demo-only fixtures, not secrets: the platform
// authenticates two hardcoded identities and never registers new ones.
const (
	DemoBeneficiaryUsername = "beneficiary"
	DemoBeneficiaryPassword = "demo123"

	DemoAdminUsername = "admin"
	DemoAdminPassword = "admin123"
)

// SeedIdentities builds the fixed Identity Directory fixture.
// Passwords are bcrypt-hashed at seed time; the directory is read-only afterwards.
func SeedIdentities() map[string]*domain.UserRecord {
	identities := map[string]*domain.UserRecord{
		DemoBeneficiaryUsername: {
			Username:         DemoBeneficiaryUsername,
			Password:         password.MustHash(DemoBeneficiaryPassword),
			Role:             domain.RoleBeneficiary,
			Name:             "Rajesh Kumar",
			ExternalID:       "NBCFDC-2024-1847",
			CreditScore:      782,
			RepaymentScore:   85,
			ConsumptionScore: 78,
			CompositeScore:   82,
			RiskBand:         "Low Risk - High Need",
			ActiveLoans:      1,
			TotalBorrowed:    250000,
			LoanHistory: []domain.LoanHistoryEntry{
				{Date: "2023-01-15", Amount: 100000, Status: domain.LoanStatusCompleted, Repaid: 100},
				{Date: "2023-08-20", Amount: 150000, Status: domain.LoanStatusActive, Repaid: 65},
			},
		},
		DemoAdminUsername: {
			Username:   DemoAdminUsername,
			Password:   password.MustHash(DemoAdminPassword),
			Role:       domain.RoleAdmin,
			Name:       "Admin User",
			ExternalID: "ADMIN-001",
		},
	}

	log.Printf("Identity directory seeded (%d identities)", len(identities))
	return identities
}

// SeedBeneficiaries builds the fixed Beneficiary Directory fixture used by the
// admin analytics view. The list is illustrative and independent of the
// Identity Directory; no referential integrity is enforced between the two.
func SeedBeneficiaries() []domain.BeneficiarySummary {
	return []domain.BeneficiarySummary{
		{ExternalID: "NBCFDC-2024-1847", Name: "Rajesh Kumar", Score: 782, Band: "Low Risk - High Need", Status: domain.BeneficiaryStatusActive},
		{ExternalID: "NBCFDC-2024-1523", Name: "Priya Sharma", Score: 845, Band: "Low Risk - Low Need", Status: domain.BeneficiaryStatusActive},
		{ExternalID: "NBCFDC-2024-1689", Name: "Anil Verma", Score: 620, Band: "High Risk - High Need", Status: domain.BeneficiaryStatusUnderReview},
		{ExternalID: "NBCFDC-2024-1734", Name: "Sunita Devi", Score: 580, Band: "High Risk - Low Need", Status: domain.BeneficiaryStatusInactive},
		{ExternalID: "NBCFDC-2024-1891", Name: "Vikram Singh", Score: 790, Band: "Low Risk - High Need", Status: domain.BeneficiaryStatusActive},
	}
}
