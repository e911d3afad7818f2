package store

import (
	"nbcfdc-lending/internal/core/domain"
)

// BeneficiaryDirectory is the read-only, ordered list of beneficiary summaries
// shown on the admin analytics view.
type BeneficiaryDirectory interface {
	List() []domain.BeneficiarySummary
}

type beneficiaryDirectory struct {
	beneficiaries []domain.BeneficiarySummary
}

// NewBeneficiaryDirectory creates a beneficiary directory over a seeded list
func NewBeneficiaryDirectory(beneficiaries []domain.BeneficiarySummary) BeneficiaryDirectory {
	return &beneficiaryDirectory{beneficiaries: beneficiaries}
}

// List returns the full list in seed order, unfiltered and unpaginated
func (d *beneficiaryDirectory) List() []domain.BeneficiarySummary {
	return d.beneficiaries
}
