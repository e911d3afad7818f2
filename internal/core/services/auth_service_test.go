package services_test

import (
	"testing"

	"nbcfdc-lending/internal/adapters/store"
	"nbcfdc-lending/internal/core/domain"
	"nbcfdc-lending/internal/core/services"
	"nbcfdc-lending/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) *services.AuthService {
	t.Helper()

	identities := store.NewIdentityDirectory(map[string]*domain.UserRecord{
		"beneficiary": {
			Username:    "beneficiary",
			Password:    password.MustHash("demo123"),
			Role:        domain.RoleBeneficiary,
			Name:        "Rajesh Kumar",
			ExternalID:  "NBCFDC-2024-1847",
			CreditScore: 782,
			RiskBand:    "Low Risk - High Need",
		},
		"admin": {
			Username:   "admin",
			Password:   password.MustHash("admin123"),
			Role:       domain.RoleAdmin,
			Name:       "Admin User",
			ExternalID: "ADMIN-001",
		},
	})

	return services.NewAuthService(identities)
}

func TestAuthenticate_Beneficiary(t *testing.T) {
	svc := newAuthService(t)

	sess, err := svc.Authenticate("beneficiary", "demo123")
	require.NoError(t, err)

	assert.Equal(t, domain.RoleBeneficiary, sess.Role)
	assert.Equal(t, "Rajesh Kumar", sess.Name)
	assert.Equal(t, "NBCFDC-2024-1847", sess.ExternalID)
	assert.Equal(t, 782, sess.CreditScore)
	assert.Equal(t, "Low Risk - High Need", sess.RiskBand)
}

func TestAuthenticate_Admin(t *testing.T) {
	svc := newAuthService(t)

	sess, err := svc.Authenticate("admin", "admin123")
	require.NoError(t, err)

	assert.Equal(t, domain.RoleAdmin, sess.Role)
	assert.True(t, sess.IsAdmin())
	assert.Zero(t, sess.CreditScore)
	assert.Empty(t, sess.RiskBand)
}

func TestAuthenticate_InvalidCredentials(t *testing.T) {
	svc := newAuthService(t)

	// Unknown user and wrong password must be indistinguishable
	cases := []struct{ username, pass string }{
		{"beneficiary", "wrong"},
		{"nobody", "demo123"},
		{"", ""},
		{"admin", "demo123"},
	}

	for _, tc := range cases {
		sess, err := svc.Authenticate(tc.username, tc.pass)
		assert.Nil(t, sess)
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	}
}
