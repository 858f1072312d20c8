package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"postboard/config"
	"postboard/internal/domain/service"
)

// Clock returns the current instant. Tests substitute a fixed one.
type Clock func() time.Time

var signingMethods = map[string]jwt.SigningMethod{
	jwt.SigningMethodHS256.Alg(): jwt.SigningMethodHS256,
	jwt.SigningMethodHS384.Alg(): jwt.SigningMethodHS384,
	jwt.SigningMethodHS512.Alg(): jwt.SigningMethodHS512,
}

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret    []byte
	method    jwt.SigningMethod
	accessTTL time.Duration
	now       Clock
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	algorithm := "HS256"
	ttl := 30 * time.Minute
	if cfg.Token != nil {
		if cfg.Token.Algorithm != "" {
			algorithm = cfg.Token.Algorithm
		}
		if cfg.Token.AccessTTL > 0 {
			ttl = cfg.Token.AccessTTL
		}
	}

	return NewJWTServiceWithClock(cfg.SecretKey.Access, algorithm, ttl, time.Now)
}

// NewJWTServiceWithClock builds a token service from explicit settings.
func NewJWTServiceWithClock(secret, algorithm string, ttl time.Duration, now Clock) (service.TokenService, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	method, ok := signingMethods[algorithm]
	if !ok {
		return nil, errors.Errorf("unsupported jwt algorithm %q", algorithm)
	}

	if ttl <= 0 {
		return nil, errors.New("token ttl must be positive")
	}

	if now == nil {
		now = time.Now
	}

	return &jwtService{
		secret:    []byte(secret),
		method:    method,
		accessTTL: ttl,
		now:       now,
	}, nil
}

// Issue creates a signed access token for userID.
func (s *jwtService) Issue(userID uuid.UUID) (string, error) {
	issuedAt := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.accessTTL)),
	}

	token := jwt.NewWithClaims(s.method, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}

// Verify checks signature, algorithm and expiry. Every failure collapses to ErrTokenRejected.
func (s *jwtService) Verify(tokenString string) (uuid.UUID, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return uuid.Nil, service.ErrTokenRejected
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil || userID == uuid.Nil {
		return uuid.Nil, service.ErrTokenRejected
	}

	return userID, nil
}

// TTL returns the configured access token lifetime.
func (s *jwtService) TTL() time.Duration {
	return s.accessTTL
}
