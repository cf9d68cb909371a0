package usecases

import (
	"context"
	"fmt"
	"time"

	"gavel/internal/domain/audit"
	"gavel/internal/domain/geo"
	"gavel/internal/domain/user"
	"gavel/internal/shared/errors"
	"gavel/internal/shared/id"
	"gavel/internal/shared/logger"
)

type SignupCommand struct {
	Name      string
	Email     string
	Password  string
	IPAddress string
	UserAgent string
}

type SignupResult struct {
	User      *user.User
	Token     string
	ExpiresIn int64
}

// SignupUseCase registers a new account and issues its first session.
type SignupUseCase struct {
	userRepo       user.Repository
	auditRepo      audit.Repository
	passwordHasher user.PasswordHasher
	tokenIssuer    TokenIssuer
	geoResolver    geo.Resolver
	logger         logger.Interface
}

func NewSignupUseCase(
	userRepo user.Repository,
	auditRepo audit.Repository,
	hasher user.PasswordHasher,
	tokenIssuer TokenIssuer,
	resolver geo.Resolver,
	logger logger.Interface,
) *SignupUseCase {
	return &SignupUseCase{
		userRepo:       userRepo,
		auditRepo:      auditRepo,
		passwordHasher: hasher,
		tokenIssuer:    tokenIssuer,
		geoResolver:    resolver,
		logger:         logger,
	}
}

// Execute runs the signup flow: uniqueness check, geo resolve (best-effort),
// hash password, create the user with its first-seen fields already set,
// append the audit event, then issue the session token.
func (uc *SignupUseCase) Execute(ctx context.Context, cmd SignupCommand) (*SignupResult, error) {
	// The uniqueness pre-check must use the canonical form NewUser stores,
	// or a mixed-case duplicate slips through to the unique-index race path.
	email := user.NormalizeEmail(cmd.Email)

	exists, err := uc.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to check email existence", "error", err)
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, errors.NewEmailTakenError()
	}

	newUser, err := user.NewUser(cmd.Name, email)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := newUser.SetPassword(cmd.Password, uc.passwordHasher); err != nil {
		uc.logger.Errorw("failed to set password", "error", err)
		return nil, fmt.Errorf("failed to set password: %w", err)
	}

	if err := newUser.SetSID(id.MustGenerateWithPrefix(id.PrefixUser, id.DefaultLength)); err != nil {
		return nil, fmt.Errorf("failed to assign user SID: %w", err)
	}

	// Signup counts as the first login: the geo snapshot and last-seen
	// fields land on the row at creation time.
	location := uc.geoResolver.Resolve(ctx, cmd.IPAddress)
	now := time.Now().UTC()
	newUser.RecordLogin(cmd.IPAddress, cmd.UserAgent, location, now)

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		if errors.IsDuplicateError(err) {
			// Lost the race against a concurrent signup for the same email.
			return nil, errors.NewEmailTakenError()
		}
		uc.logger.Errorw("failed to create user", "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	event, err := audit.NewLoginEvent(newUser.ID(), cmd.IPAddress, cmd.UserAgent, location, now)
	if err != nil {
		uc.logger.Errorw("failed to build signup login event", "user_id", newUser.ID(), "error", err)
	} else if err := uc.auditRepo.Create(ctx, event); err != nil {
		uc.logger.Errorw("failed to append signup login event", "user_id", newUser.ID(), "error", err)
	}

	token, expiresIn, err := uc.tokenIssuer.Issue(newUser.SID(), newUser.Role())
	if err != nil {
		uc.logger.Errorw("failed to issue session token", "error", err, "user_id", newUser.ID())
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	uc.logger.Infow("user registered", "user_id", newUser.ID(), "email", newUser.Email())

	return &SignupResult{
		User:      newUser,
		Token:     token,
		ExpiresIn: expiresIn,
	}, nil
}
