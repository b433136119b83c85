package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// Claims carried by an access token. Subject holds the actor id.
type Claims struct {
	Email    string `json:"email,omitempty"`
	UserType string `json:"user_type"`

	jwt.RegisteredClaims
}

// TokenService issues and validates HS256 access tokens.
type TokenService struct {
	secret    []byte
	expiresIn time.Duration

	now func() time.Time
}

func NewTokenService(secret string, expiresIn time.Duration) *TokenService {
	return &TokenService{
		secret:    []byte(secret),
		expiresIn: expiresIn,
		now:       time.Now,
	}
}

func (s *TokenService) Issue(subject, email, userType string) (string, time.Time, error) {
	if len(s.secret) == 0 || s.expiresIn <= 0 || subject == "" || userType == "" {
		return "", time.Time{}, ErrTokenInvalid
	}

	now := s.now().UTC()
	exp := now.Add(s.expiresIn)

	c := Claims{
		Email:    email,
		UserType: userType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

func (s *TokenService) Validate(tokenString string) (*Claims, error) {
	if len(s.secret) == 0 {
		return nil, ErrTokenInvalid
	}

	p := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)

	var c Claims
	tok, err := p.ParseWithClaims(tokenString, &c, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if tok == nil || !tok.Valid || c.Subject == "" || c.UserType == "" {
		return nil, ErrTokenInvalid
	}
	return &c, nil
}
