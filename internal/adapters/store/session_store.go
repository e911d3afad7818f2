package store

import (
	"time"

	"nbcfdc-lending/internal/config"
	"nbcfdc-lending/internal/core/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
)

// Session data keys
const (
	sessionKeyUsername    = "username"
	sessionKeyRole        = "role"
	sessionKeyName        = "name"
	sessionKeyUserID      = "user_id"
	sessionKeyCreditScore = "credit_score"
	sessionKeyRiskBand    = "risk_band"
)

// SessionStore tracks authenticated clients across requests. The client holds
// an opaque uuid token in a cookie; session data lives server-side in the
// middleware's storage. Expiry is the storage TTL, the core adds none.
type SessionStore struct {
	store *session.Store
}

// NewSessionStore creates a session store backed by fiber's session middleware
func NewSessionStore(cfg *config.Config) *SessionStore {
	store := session.New(session.Config{
		Expiration:     time.Duration(cfg.Session.ExpiryHours) * time.Hour,
		KeyLookup:      "cookie:" + cfg.Session.CookieName,
		KeyGenerator:   uuid.NewString,
		CookieDomain:   cfg.Cookie.Domain,
		CookieSecure:   cfg.Cookie.Secure,
		CookieHTTPOnly: true,
		CookieSameSite: cfg.Cookie.SameSite,
	})

	return &SessionStore{store: store}
}

// Create starts a session for an authenticated identity and issues the cookie
func (s *SessionStore) Create(c *fiber.Ctx, sess *domain.Session) error {
	current, err := s.store.Get(c)
	if err != nil {
		return err
	}

	current.Set(sessionKeyUsername, sess.Username)
	current.Set(sessionKeyRole, string(sess.Role))
	current.Set(sessionKeyName, sess.Name)
	current.Set(sessionKeyUserID, sess.ExternalID)

	// Scoring projection is cached only for beneficiaries
	if sess.Role == domain.RoleBeneficiary {
		current.Set(sessionKeyCreditScore, sess.CreditScore)
		current.Set(sessionKeyRiskBand, sess.RiskBand)
	}

	return current.Save()
}

// Current returns the session for the requesting client, if one exists
func (s *SessionStore) Current(c *fiber.Ctx) (*domain.Session, bool) {
	current, err := s.store.Get(c)
	if err != nil {
		return nil, false
	}

	username, ok := current.Get(sessionKeyUsername).(string)
	if !ok || username == "" {
		return nil, false
	}

	sess := &domain.Session{
		Username:   username,
		Role:       domain.Role(asString(current.Get(sessionKeyRole))),
		Name:       asString(current.Get(sessionKeyName)),
		ExternalID: asString(current.Get(sessionKeyUserID)),
		RiskBand:   asString(current.Get(sessionKeyRiskBand)),
	}
	if score, ok := current.Get(sessionKeyCreditScore).(int); ok {
		sess.CreditScore = score
	}

	return sess, true
}

// Clear destroys the session and expires the cookie. Clearing an absent
// session is a no-op.
func (s *SessionStore) Clear(c *fiber.Ctx) error {
	current, err := s.store.Get(c)
	if err != nil {
		return err
	}
	if current.Fresh() {
		return nil
	}
	return current.Destroy()
}

func asString(v interface{}) string {
	str, _ := v.(string)
	return str
}
