package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"machinehub/internal/auth"
	apperrors "machinehub/internal/errors"
	"machinehub/internal/model"
	"machinehub/internal/repository"
)

const bcryptCost = 10

// RegisterInput is the data needed to open an account.
type RegisterInput struct {
	Name     string     `json:"name" validate:"required,max=100"`
	Email    string     `json:"email" validate:"required,email,max=120"`
	Password string     `json:"password" validate:"required,max=72"`
	Role     model.Role `json:"role" validate:"required,oneof=buyer supplier admin"`
}

// AuthOptions tunes registration policy.
type AuthOptions struct {
	AllowAdminRegistration bool
}

// AuthService handles registration, credential checks and sessions.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*model.User, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.User, *auth.Session, error)
	StartSession(user *model.User) (*auth.Session, error)
	CurrentSession(ctx context.Context, token string) (*auth.SessionClaims, bool)
	LoadActor(ctx context.Context, claims *auth.SessionClaims) (*auth.Actor, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	users     repository.UserRepository
	sessions  *auth.SessionManager
	store     auth.SessionStore
	validator *InputValidator
	opts      AuthOptions
	now       func() time.Time
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, sessions *auth.SessionManager, store auth.SessionStore, opts AuthOptions) AuthService {
	return &authService{
		users:     users,
		sessions:  sessions,
		store:     store,
		validator: NewInputValidator(),
		opts:      opts,
		now:       time.Now,
	}
}

var (
	dummyHashOnce sync.Once
	dummyHash     []byte
)

// timingHash is compared against when the email is unknown so both failure
// paths cost one bcrypt comparison.
func timingHash() []byte {
	dummyHashOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("machinehub-timing-equaliser"), bcryptCost)
	})
	return dummyHash
}

// Register creates a new user with a hashed password.
func (s *authService) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	trimAll(&in.Name)
	in.Email = normalizeEmail(in.Email)
	if err := s.validator.Validate(in); err != nil {
		return nil, err
	}
	if in.Role == model.RoleAdmin && !s.opts.AllowAdminRegistration {
		return nil, apperrors.NewValidationError("role", "admin accounts cannot be self-registered")
	}

	existing, err := s.users.FindByEmail(ctx, in.Email)
	if err == nil && existing != nil {
		return nil, apperrors.ErrDuplicateEmail
	}
	var notFound *apperrors.NotFoundError
	if err != nil && !errors.As(err, &notFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hashed),
		Role:         in.Role,
	}
	// a concurrent registration is still caught by the unique index
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies credentials. Unknown emails and wrong passwords fail identically.
func (s *authService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		var notFound *apperrors.NotFoundError
		if errors.As(err, &notFound) {
			_ = bcrypt.CompareHashAndPassword(timingHash(), []byte(password))
			return nil, apperrors.ErrAuthenticationFailed
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrAuthenticationFailed
	}
	return user, nil
}

// Login authenticates and starts a session.
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, *auth.Session, error) {
	user, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return nil, nil, err
	}
	session, err := s.StartSession(user)
	if err != nil {
		return nil, nil, err
	}
	return user, session, nil
}

func (s *authService) StartSession(user *model.User) (*auth.Session, error) {
	session, err := s.sessions.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("issue session: %w", err)
	}
	return session, nil
}

// CurrentSession reports the claims of a valid, unrevoked session token.
func (s *authService) CurrentSession(ctx context.Context, token string) (*auth.SessionClaims, bool) {
	if token == "" {
		return nil, false
	}
	claims, err := s.sessions.Parse(token)
	if err != nil {
		return nil, false
	}
	if revoked, _ := s.store.IsRevoked(ctx, claims.ID); revoked {
		return nil, false
	}
	return claims, true
}

// LoadActor turns verified session claims into the request actor by re-reading the user.
func (s *authService) LoadActor(ctx context.Context, claims *auth.SessionClaims) (*auth.Actor, error) {
	if claims == nil || claims.ID == "" {
		return nil, apperrors.ErrUnauthenticated
	}
	if revoked, _ := s.store.IsRevoked(ctx, claims.ID); revoked {
		return nil, apperrors.ErrUnauthenticated
	}

	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		var notFound *apperrors.NotFoundError
		if errors.As(err, &notFound) {
			return nil, apperrors.ErrSessionExpired
		}
		return nil, err
	}
	return &auth.Actor{User: user, SessionID: claims.ID, Claims: claims}, nil
}

// Logout revokes the session behind token. Invalid or missing tokens are a no-op.
func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	claims, err := s.sessions.Parse(token)
	if err != nil {
		return nil
	}
	var ttl time.Duration
	if claims.ExpiresAt != nil {
		ttl = claims.ExpiresAt.Time.Sub(s.now())
	}
	return s.store.Revoke(ctx, claims.ID, ttl)
}
