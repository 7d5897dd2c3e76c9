package services

import (
	"context"
	"errors"
	"time"

	"rewear/config"
	"rewear/internal/database"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const SESSION_CACHE_PREFIX = "session:"

var (
	ErrInvalidToken   = errors.New("invalid or expired token")
	ErrSessionRevoked = errors.New("session revoked")
)

type sessionClaims struct {
	jwt.RegisteredClaims
}

// SessionService issues and validates bearer tokens. Tokens are HS256
// JWTs whose jti is mirrored into the session cache, so revocation is
// a cache delete and every validated token must still have a live
// session entry.
type SessionService struct {
	db     database.DB
	secret []byte
	ttl    time.Duration
	log    logger.Logger
}

func NewSessionService(db database.DB, config config.Config) *SessionService {
	return &SessionService{
		db:     db,
		secret: []byte(config.JWTSecret),
		ttl:    time.Duration(config.SessionTTLHours) * time.Hour,
		log:    logger.New("SessionService"),
	}
}

func (s *SessionService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", s.log.Function("HashPassword").Err("failed to hash password", err)
	}

	return string(hash), nil
}

func (s *SessionService) CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// IssueToken signs a token for the user and records the session in
// the cache with the same TTL as the token itself.
func (s *SessionService) IssueToken(ctx context.Context, userID uuid.UUID) (string, error) {
	log := s.log.Function("IssueToken")

	sessionID, err := uuid.NewV7()
	if err != nil {
		sessionID = uuid.New()
	}

	token, err := s.signToken(userID, sessionID, time.Now())
	if err != nil {
		return "", log.Err("failed to sign token", err, "userID", userID)
	}

	if s.db.Cache.Session != nil {
		err = database.NewCacheBuilder(s.db.Cache.Session, SESSION_CACHE_PREFIX+sessionID.String()).
			WithStruct(userID.String()).
			WithTTL(s.ttl).
			WithContext(ctx).
			Set()
		if err != nil {
			return "", log.Err("failed to store session", err, "userID", userID)
		}
	}

	return token, nil
}

// ValidateToken parses the token and confirms its session has not been
// revoked. Returns the user ID the token was issued for.
func (s *SessionService) ValidateToken(ctx context.Context, token string) (uuid.UUID, error) {
	userID, sessionID, err := s.parseToken(token)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}

	if s.db.Cache.Session != nil {
		var cached string
		found, err := database.NewCacheBuilder(s.db.Cache.Session, SESSION_CACHE_PREFIX+sessionID.String()).
			WithContext(ctx).
			Get(&cached)
		if err != nil {
			return uuid.Nil, s.log.Function("ValidateToken").
				Err("failed to check session cache", err, "sessionID", sessionID)
		}
		if !found {
			return uuid.Nil, ErrSessionRevoked
		}
	}

	return userID, nil
}

// RevokeToken drops the session entry so the token stops validating.
func (s *SessionService) RevokeToken(ctx context.Context, token string) error {
	log := s.log.Function("RevokeToken")

	_, sessionID, err := s.parseToken(token)
	if err != nil {
		return ErrInvalidToken
	}

	if s.db.Cache.Session == nil {
		return nil
	}

	if err := database.NewCacheBuilder(s.db.Cache.Session, SESSION_CACHE_PREFIX+sessionID.String()).
		WithContext(ctx).
		Delete(); err != nil {
		return log.Err("failed to revoke session", err, "sessionID", sessionID)
	}

	return nil
}

func (s *SessionService) signToken(
	userID, sessionID uuid.UUID,
	issuedAt time.Time,
) (string, error) {
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ID:        sessionID.String(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *SessionService) parseToken(token string) (uuid.UUID, uuid.UUID, error) {
	var claims sessionClaims
	parsed, err := jwt.ParseWithClaims(
		token,
		&claims,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return s.secret, nil
		},
	)
	if err != nil || !parsed.Valid {
		return uuid.Nil, uuid.Nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, uuid.Nil, ErrInvalidToken
	}

	sessionID, err := uuid.Parse(claims.ID)
	if err != nil {
		return uuid.Nil, uuid.Nil, ErrInvalidToken
	}

	return userID, sessionID, nil
}
