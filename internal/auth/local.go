package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jruiz-dev/trendyshop/internal/common"
	"github.com/jruiz-dev/trendyshop/internal/logging"
	"github.com/jruiz-dev/trendyshop/internal/store"
)

const credentialsCollection = "credentials"

const minPasswordLen = 6

// dummyHash is compared against when the email is unknown, so a login attempt
// costs the same whether or not the account exists.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// Local implements Provider on top of the document store: bcrypt-hashed
// credentials in their own collection, HS256 session tokens, and an in-memory
// record of the single active session.
type Local struct {
	store         store.Store
	logger        logging.Logger
	secretKey     []byte
	tokenValidity time.Duration

	mu      sync.Mutex
	session *session
}

type session struct {
	identity string
	email    string
	token    string
}

func NewLocal(st store.Store, logger logging.Logger, secretKey []byte, tokenValidity time.Duration) *Local {
	return &Local{
		store:         st,
		logger:        logger.With("component", "auth"),
		secretKey:     secretKey,
		tokenValidity: tokenValidity,
	}
}

var _ Provider = (*Local)(nil)

func (l *Local) Register(ctx context.Context, email string, password []byte) (string, error) {
	if len(password) < minPasswordLen {
		return "", fmt.Errorf("%w: password must be at least %d characters", common.ErrValidation, minPasswordLen)
	}

	if _, _, err := l.findByEmail(ctx, email); err == nil {
		return "", common.ErrEmailInUse
	} else if !errors.Is(err, common.ErrNotFound) {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword(password, bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}

	identity := uuid.NewString()
	doc := map[string]any{
		"email":         email,
		"password_hash": string(hash),
	}
	if err := l.store.Put(ctx, credentialsCollection, identity, doc); err != nil {
		return "", fmt.Errorf("storing credential: %w", err)
	}

	l.logger.Info(ctx, "credential created", "identity", identity)
	return identity, nil
}

func (l *Local) Login(ctx context.Context, email string, password []byte) (string, error) {
	identity, doc, err := l.findByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, password)
			return "", common.ErrInvalidCredentials
		}
		return "", err
	}

	hash := []byte(store.StringField(doc, "password_hash"))
	if err := bcrypt.CompareHashAndPassword(hash, password); err != nil {
		return "", common.ErrInvalidCredentials
	}

	token, err := GenerateToken(identity, l.secretKey, l.tokenValidity)
	if err != nil {
		return "", fmt.Errorf("issuing session token: %w", err)
	}

	l.mu.Lock()
	l.session = &session{identity: identity, email: email, token: token}
	l.mu.Unlock()

	l.logger.Info(ctx, "session opened", "identity", identity)
	return identity, nil
}

func (l *Local) Logout(ctx context.Context) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	s := l.activeSession()
	if s == nil {
		return "", common.ErrNoSession
	}
	email := s.email
	l.session = nil

	l.logger.Info(ctx, "session closed", "email", email)
	return email, nil
}

func (l *Local) SendPasswordReset(ctx context.Context, email string) error {
	identity, _, err := l.findByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			// Same outward behavior as the registered case.
			l.logger.Info(ctx, "password reset requested for unknown email")
			return nil
		}
		return err
	}

	resetToken, err := common.MakeRandHexString(16)
	if err != nil {
		return fmt.Errorf("generating reset token: %w", err)
	}
	partial := map[string]any{
		"reset_token":  resetToken,
		"reset_issued": time.Now().UTC().Format(time.RFC3339),
	}
	if err := l.store.Update(ctx, credentialsCollection, identity, partial); err != nil {
		return fmt.Errorf("storing reset token: %w", err)
	}

	// There is no mailer; delivery is a log line an operator can act on.
	l.logger.Info(ctx, "password reset issued", "identity", identity, "reset_token", resetToken)
	return nil
}

func (l *Local) DeleteCurrentUser(ctx context.Context) error {
	l.mu.Lock()
	s := l.activeSession()
	l.mu.Unlock()

	if s == nil {
		return common.ErrNoSession
	}

	if err := l.store.Delete(ctx, credentialsCollection, s.identity); err != nil {
		return fmt.Errorf("deleting credential: %w", err)
	}

	l.mu.Lock()
	l.session = nil
	l.mu.Unlock()

	l.logger.Info(ctx, "credential deleted", "identity", s.identity)
	return nil
}

func (l *Local) DeleteIdentity(ctx context.Context, identity string) error {
	if err := l.store.Delete(ctx, credentialsCollection, identity); err != nil {
		return fmt.Errorf("deleting credential: %w", err)
	}

	l.mu.Lock()
	if l.session != nil && l.session.identity == identity {
		l.session = nil
	}
	l.mu.Unlock()
	return nil
}

func (l *Local) CurrentIdentity() (string, string, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	s := l.activeSession()
	if s == nil {
		return "", "", false
	}
	return s.identity, s.email, true
}

// activeSession returns the current session only while its token still
// validates; an expired or invalid token closes the session. Callers must
// hold l.mu.
func (l *Local) activeSession() *session {
	if l.session == nil {
		return nil
	}
	if _, err := IdentityFromToken(l.session.token, l.secretKey); err != nil {
		l.session = nil
		return nil
	}
	return l.session
}

// findByEmail scans the credentials collection for the email. The store has
// no secondary indexes, so lookup is a full-collection scan.
func (l *Local) findByEmail(ctx context.Context, email string) (string, map[string]any, error) {
	docs, err := l.store.List(ctx, credentialsCollection, "email", true)
	if err != nil {
		return "", nil, fmt.Errorf("listing credentials: %w", err)
	}
	for _, doc := range docs {
		if store.StringField(doc.Data, "email") == email {
			return doc.ID, doc.Data, nil
		}
	}
	return "", nil, common.ErrNotFound
}
