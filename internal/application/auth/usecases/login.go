package usecases

import (
	"context"
	"fmt"
	"time"

	"gavel/internal/domain/audit"
	"gavel/internal/domain/geo"
	"gavel/internal/domain/user"
	"gavel/internal/shared/errors"
	"gavel/internal/shared/logger"
)

type LoginCommand struct {
	Email     string
	Password  string
	IPAddress string
	UserAgent string
}

type LoginResult struct {
	User      *user.User
	Token     string
	ExpiresIn int64
}

// LoginUseCase authenticates a user and records login provenance.
type LoginUseCase struct {
	userRepo       user.Repository
	auditRepo      audit.Repository
	passwordHasher user.PasswordHasher
	tokenIssuer    TokenIssuer
	geoResolver    geo.Resolver
	logger         logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	auditRepo audit.Repository,
	hasher user.PasswordHasher,
	tokenIssuer TokenIssuer,
	geoResolver geo.Resolver,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:       userRepo,
		auditRepo:      auditRepo,
		passwordHasher: hasher,
		tokenIssuer:    tokenIssuer,
		geoResolver:    geoResolver,
		logger:         logger,
	}
}

// Execute runs the login flow: load user, verify password, issue token,
// resolve geo (best-effort), then persist the last-seen update and the audit
// event. The two writes are independent; a failure in either is logged and
// reported separately but never fails an already-authenticated login.
func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	// Stored emails are canonical; the lookup must use the same form or a
	// mixed-case login misses its own account on a case-sensitive store.
	email := user.NormalizeEmail(cmd.Email)

	existingUser, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if existingUser == nil {
		return nil, errors.NewUserNotFoundError()
	}

	if err := existingUser.VerifyPassword(cmd.Password, uc.passwordHasher); err != nil {
		return nil, errors.NewInvalidCredentialsError()
	}

	token, expiresIn, err := uc.tokenIssuer.Issue(existingUser.SID(), existingUser.Role())
	if err != nil {
		uc.logger.Errorw("failed to issue session token", "error", err, "user_id", existingUser.ID())
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	// Best-effort enrichment: the resolver is total and bounded by its own
	// timeout, so this can only delay the request, never fail it.
	location := uc.geoResolver.Resolve(ctx, cmd.IPAddress)

	now := time.Now().UTC()
	uc.recordProvenance(ctx, existingUser, cmd.IPAddress, cmd.UserAgent, location, now)

	uc.logger.Infow("user logged in", "user_id", existingUser.ID(), "country", location.Country)

	return &LoginResult{
		User:      existingUser,
		Token:     token,
		ExpiresIn: expiresIn,
	}, nil
}

// recordProvenance performs the two independent persistence writes: the
// mutable last-seen mirror on the user row and the immutable audit event.
// Each failure is logged distinctly; neither aborts the login.
func (uc *LoginUseCase) recordProvenance(ctx context.Context, u *user.User, ipAddress, userAgent string, location geo.Record, at time.Time) {
	if err := uc.userRepo.UpdateLastSeen(ctx, u.ID(), ipAddress, userAgent, location, at); err != nil {
		uc.logger.Errorw("failed to update last-seen fields after login", "user_id", u.ID(), "error", err)
	}

	event, err := audit.NewLoginEvent(u.ID(), ipAddress, userAgent, location, at)
	if err != nil {
		uc.logger.Errorw("failed to build login event", "user_id", u.ID(), "error", err)
		return
	}
	if err := uc.auditRepo.Create(ctx, event); err != nil {
		uc.logger.Errorw("failed to append login event", "user_id", u.ID(), "error", err)
	}
}
