package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"emotion-classifier/internal/domain"
)

// SessionTokenService emite y valida los tokens JWT que identifican una sesión del formulario.
type SessionTokenService struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

type SessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

var (
	ErrSessionTokenInvalid = errors.New("session token invalid")
	ErrSessionTokenExpired = errors.New("session token expired")
)

func NewSessionTokenService(secret string, ttl time.Duration) *SessionTokenService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionTokenService{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: "emotion-classifier",
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// NewSession crea un id de sesión nuevo y su token firmado.
func (s *SessionTokenService) NewSession() (domain.Session, error) {
	if len(s.secret) == 0 {
		return domain.Session{}, ErrSessionTokenInvalid
	}
	now := s.now()
	id := uuid.NewString()
	claims := SessionClaims{
		SessionID: id,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    s.issuer,
			Subject:   id,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return domain.Session{}, err
	}
	return domain.Session{
		ID:        id,
		Token:     token,
		ExpiresAt: now.Add(s.ttl),
		CreatedAt: now,
	}, nil
}

// ParseSessionToken valida firma, emisor y expiración y devuelve los claims.
func (s *SessionTokenService) ParseSessionToken(token string) (SessionClaims, error) {
	if len(s.secret) == 0 {
		return SessionClaims{}, ErrSessionTokenInvalid
	}
	if strings.TrimSpace(token) == "" {
		return SessionClaims{}, ErrSessionTokenInvalid
	}
	var claims SessionClaims
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	_, err := parser.ParseWithClaims(token, &claims, func(_ *jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return SessionClaims{}, ErrSessionTokenExpired
		}
		return SessionClaims{}, ErrSessionTokenInvalid
	}
	if !s.isValidClaims(claims) {
		return SessionClaims{}, ErrSessionTokenInvalid
	}
	return claims, nil
}

func (s *SessionTokenService) isValidClaims(claims SessionClaims) bool {
	if _, err := uuid.Parse(claims.SessionID); err != nil {
		return false
	}
	if claims.Subject != claims.SessionID {
		return false
	}
	return strings.TrimSpace(claims.Issuer) == s.issuer
}
