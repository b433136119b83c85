package usecase

import (
	"context"
	"log/slog"
	"strings"

	"go-jobsearch-backend/internal/domain"
	"go-jobsearch-backend/pkg/apperror"
	"go-jobsearch-backend/pkg/security"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	msgInvalidCredentials = "Invalid email or password"
	msgLoginBlocked       = "Too many failed login attempts. Please try again later."
)

type authUsecase struct {
	users     domain.UserRepository
	companies domain.CompanyRepository
	tokens    domain.TokenIssuer
	throttle  domain.LoginThrottle
	audit     *security.SecurityLogger
	logger    *slog.Logger
}

// NewAuthUsecase wires registration and login. A nil throttle never blocks.
func NewAuthUsecase(
	users domain.UserRepository,
	companies domain.CompanyRepository,
	tokens domain.TokenIssuer,
	throttle domain.LoginThrottle,
	audit *security.SecurityLogger,
	logger *slog.Logger,
) domain.AuthUsecase {
	if throttle == nil {
		throttle = openThrottle{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &authUsecase{
		users:     users,
		companies: companies,
		tokens:    tokens,
		throttle:  throttle,
		audit:     audit,
		logger:    logger,
	}
}

func (u *authUsecase) RegisterUser(ctx context.Context, user *domain.User) (*domain.Session, error) {
	id, err := u.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = id
	user.Password = ""

	session, err := u.issue(id, user.Email, domain.ActorUser)
	if err != nil {
		return nil, err
	}
	session.User = user
	u.audit.LogRegistered(ctx, domain.ActorUser, id.Hex())
	return session, nil
}

func (u *authUsecase) RegisterCompany(ctx context.Context, company *domain.Company) (*domain.Session, error) {
	id, err := u.companies.Create(ctx, company)
	if err != nil {
		return nil, err
	}
	company.ID = id
	company.Password = ""

	session, err := u.issue(id, company.Email, domain.ActorCompany)
	if err != nil {
		return nil, err
	}
	session.Company = company
	u.audit.LogRegistered(ctx, domain.ActorCompany, id.Hex())
	return session, nil
}

func (u *authUsecase) LoginUser(ctx context.Context, email, password string) (*domain.Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := u.checkBlocked(ctx, domain.ActorUser, email); err != nil {
		return nil, err
	}

	user, err := u.users.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, u.failed(ctx, domain.ActorUser, email)
	}

	session, err := u.succeeded(ctx, domain.ActorUser, user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	session.User = user
	return session, nil
}

func (u *authUsecase) LoginCompany(ctx context.Context, email, password string) (*domain.Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := u.checkBlocked(ctx, domain.ActorCompany, email); err != nil {
		return nil, err
	}

	company, err := u.companies.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, u.failed(ctx, domain.ActorCompany, email)
	}

	session, err := u.succeeded(ctx, domain.ActorCompany, company.ID, company.Email)
	if err != nil {
		return nil, err
	}
	session.Company = company
	return session, nil
}

// checkBlocked fails open when the throttle backend errors.
func (u *authUsecase) checkBlocked(ctx context.Context, actorType, email string) error {
	blocked, err := u.throttle.IsBlocked(ctx, actorType, email)
	if err != nil {
		u.logger.WarnContext(ctx, "login throttle unavailable", "actor_type", actorType, "error", err)
		return nil
	}
	if blocked {
		u.audit.LogLoginBlocked(ctx, actorType, email, ctxString(ctx, domain.KeyClientIP), ctxString(ctx, domain.KeyRequestID))
		return apperror.TooManyRequests(msgLoginBlocked)
	}
	return nil
}

func (u *authUsecase) failed(ctx context.Context, actorType, email string) error {
	u.audit.LogLoginFailed(ctx, actorType, email, ctxString(ctx, domain.KeyClientIP), ctxString(ctx, domain.KeyRequestID), "invalid_credentials")
	if _, err := u.throttle.RecordFailure(ctx, actorType, email); err != nil {
		u.logger.WarnContext(ctx, "failed to record login failure", "actor_type", actorType, "error", err)
	}
	return apperror.Unauthorized(msgInvalidCredentials)
}

func (u *authUsecase) succeeded(ctx context.Context, actorType string, id primitive.ObjectID, email string) (*domain.Session, error) {
	if err := u.throttle.Clear(ctx, actorType, email); err != nil {
		u.logger.WarnContext(ctx, "failed to clear login failures", "actor_type", actorType, "error", err)
	}
	session, err := u.issue(id, email, actorType)
	if err != nil {
		return nil, err
	}
	u.audit.LogLoginSuccess(ctx, actorType, id.Hex(), ctxString(ctx, domain.KeyClientIP), ctxString(ctx, domain.KeyRequestID))
	return session, nil
}

func (u *authUsecase) issue(id primitive.ObjectID, email, actorType string) (*domain.Session, error) {
	token, expiresAt, err := u.tokens.Issue(id.Hex(), email, actorType)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &domain.Session{Token: token, ExpiresAt: expiresAt}, nil
}

type openThrottle struct{}

func (openThrottle) IsBlocked(context.Context, string, string) (bool, error)     { return false, nil }
func (openThrottle) RecordFailure(context.Context, string, string) (bool, error) { return false, nil }
func (openThrottle) Clear(context.Context, string, string) error                 { return nil }
