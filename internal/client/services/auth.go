package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/healthmate/internal/client/models"
	"github.com/dmitrijs2005/healthmate/internal/client/repositories/kv"
	"github.com/dmitrijs2005/healthmate/internal/common"
	"github.com/dmitrijs2005/healthmate/internal/dbx"
	"github.com/dmitrijs2005/healthmate/internal/logging"
)

// AuthService manages the local account directory and the single current
// session. Everything is client-side: expected failures (bad credentials,
// duplicate email) surface as booleans, never as errors.
type AuthService struct {
	db          *sql.DB
	log         logging.Logger
	tokenSecret []byte

	mu      sync.Mutex
	current *models.User

	now   func() time.Time
	newID func() string
}

func NewAuthService(db *sql.DB, tokenSecret []byte, log logging.Logger) *AuthService {
	return &AuthService{
		db:          db,
		log:         log,
		tokenSecret: tokenSecret,
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

func (s *AuthService) repo(db dbx.DBTX) kv.Repository {
	return kv.NewSQLiteRepository(db)
}

// loadAccounts reads the account directory. A missing record means an empty
// directory; a corrupt one is logged and treated as empty rather than
// aborting the whole program.
func (s *AuthService) loadAccounts(ctx context.Context, r kv.Repository) ([]models.Account, error) {
	raw, err := r.Get(ctx, keyUsers)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	var accounts []models.Account
	if err := json.Unmarshal(raw, &accounts); err != nil {
		s.log.Warn(ctx, "account directory record is corrupt, starting over", "error", err)
		return nil, nil
	}
	return accounts, nil
}

// Signup registers a new account and establishes a session for it. Returns
// false when the email is already taken (case-sensitive exact match).
func (s *AuthService) Signup(ctx context.Context, name, email, password string) (bool, error) {
	repo := s.repo(s.db)

	accounts, err := s.loadAccounts(ctx, repo)
	if err != nil {
		return false, err
	}

	for _, a := range accounts {
		if a.Email == email {
			return false, nil
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}

	account := models.Account{
		ID:           s.newID(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}
	accounts = append(accounts, account)

	raw, err := json.Marshal(accounts)
	if err != nil {
		return false, err
	}

	user := account.SessionUser()

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		txRepo := s.repo(tx)
		if err := txRepo.Set(ctx, keyUsers, raw); err != nil {
			return err
		}
		return s.establishSession(ctx, txRepo, user)
	})
	if err != nil {
		return false, err
	}

	s.setCurrent(&user)
	s.log.Info(ctx, "account created", "email", email)
	return true, nil
}

// Login checks the directory for an account with exactly the given email and
// password. On success it establishes a session and returns true; any
// mismatch is plain false. No lockout, no rate limiting.
func (s *AuthService) Login(ctx context.Context, email, password string) (bool, error) {
	repo := s.repo(s.db)

	accounts, err := s.loadAccounts(ctx, repo)
	if err != nil {
		return false, err
	}

	for _, a := range accounts {
		if a.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) != nil {
			return false, nil
		}

		user := a.SessionUser()
		err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
			return s.establishSession(ctx, s.repo(tx), user)
		})
		if err != nil {
			return false, err
		}

		s.setCurrent(&user)
		s.log.Info(ctx, "login successful", "email", email)
		return true, nil
	}

	return false, nil
}

// establishSession persists the opaque session token and the session-user
// snapshot. The token encodes email and issued-at; it is NOT a security
// boundary and is never re-validated.
func (s *AuthService) establishSession(ctx context.Context, r kv.Repository, user models.User) error {
	token, err := s.makeToken(user.Email)
	if err != nil {
		return err
	}

	if err := r.Set(ctx, keyToken, []byte(token)); err != nil {
		return err
	}

	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return r.Set(ctx, keyUser, raw)
}

func (s *AuthService) makeToken(email string) (string, error) {
	jti, err := common.MakeRandHexString(16)
	if err != nil {
		return "", err
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:  email,
		IssuedAt: jwt.NewNumericDate(s.now()),
		ID:       jti,
	})
	return token.SignedString(s.tokenSecret)
}

// Logout clears the session and its durable mirror. Idempotent.
func (s *AuthService) Logout(ctx context.Context) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		r := s.repo(tx)
		if err := r.Delete(ctx, keyToken); err != nil {
			return err
		}
		return r.Delete(ctx, keyUser)
	})
	if err != nil {
		return err
	}

	s.setCurrent(nil)
	return nil
}

// Restore adopts a previously persisted session on process start. The stored
// snapshot is trusted as-is; the token is not re-validated. A corrupt
// snapshot just leaves the user logged out.
func (s *AuthService) Restore(ctx context.Context) error {
	repo := s.repo(s.db)

	token, err := repo.Get(ctx, keyToken)
	if err != nil {
		return err
	}
	raw, err := repo.Get(ctx, keyUser)
	if err != nil {
		return err
	}
	if token == nil || raw == nil {
		return nil
	}

	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		s.log.Warn(ctx, "session record is corrupt, staying logged out", "error", err)
		return nil
	}

	s.setCurrent(&user)
	return nil
}

func (s *AuthService) setCurrent(u *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = u
}

// CurrentUser returns the session user, or nil when logged out.
func (s *AuthService) CurrentUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	u := *s.current
	return &u
}

func (s *AuthService) IsAuthenticated() bool {
	return s.CurrentUser() != nil
}
