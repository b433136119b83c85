package domain

import (
	"context"
	"time"
)

// PasswordHasher hashes and verifies secrets at rest.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) bool
}

// TokenIssuer signs access tokens for an authenticated actor. userType is
// ActorUser or ActorCompany.
type TokenIssuer interface {
	Issue(subject, email, userType string) (token string, expiresAt time.Time, err error)
}

// LoginThrottle tracks failed logins per actor type and email.
type LoginThrottle interface {
	IsBlocked(ctx context.Context, actorType, email string) (bool, error)
	RecordFailure(ctx context.Context, actorType, email string) (bool, error)
	Clear(ctx context.Context, actorType, email string) error
}

// Session is returned by registration and login.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      *User
	Company   *Company
}

type AuthUsecase interface {
	RegisterUser(ctx context.Context, user *User) (*Session, error)
	RegisterCompany(ctx context.Context, company *Company) (*Session, error)
	LoginUser(ctx context.Context, email, password string) (*Session, error)
	LoginCompany(ctx context.Context, email, password string) (*Session, error)
}
