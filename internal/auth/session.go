package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"machinehub/internal/model"
)

// DefaultSessionTTL is how long a session cookie stays valid.
const DefaultSessionTTL = 24 * time.Hour

// SessionClaims is the signed session payload carried in the session cookie.
type SessionClaims struct {
	UserID       uint       `json:"user_id"`
	Name         string     `json:"name"`
	Role         model.Role `json:"role"`
	ProfileImage string     `json:"profile_image,omitempty"`
	jwt.RegisteredClaims
}

// Session is an issued session token.
type Session struct {
	ID        string
	Token     string
	ExpiresAt time.Time
	Claims    *SessionClaims
}

// SessionManager signs and verifies session tokens.
type SessionManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewSessionManager creates a session manager with the given HMAC secret.
func NewSessionManager(secret string, ttl time.Duration) *SessionManager {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionManager{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// TTL returns the session lifetime.
func (m *SessionManager) TTL() time.Duration {
	return m.ttl
}

// Issue starts a new session for the user.
func (m *SessionManager) Issue(user *model.User) (*Session, error) {
	now := m.now()
	claims := &SessionClaims{
		UserID:       user.ID,
		Name:         user.Name,
		Role:         user.Role,
		ProfileImage: user.ProfileImage,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return nil, err
	}
	return &Session{
		ID:        claims.ID,
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
		Claims:    claims,
	}, nil
}

// Parse verifies a session token and returns its claims.
func (m *SessionManager) Parse(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, m.keyfunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid session token")
	}
	if claims.ID == "" || claims.UserID == 0 {
		return nil, errors.New("incomplete session token")
	}
	return claims, nil
}

func (m *SessionManager) keyfunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, errors.New("unexpected signing method")
	}
	return m.secret, nil
}
