package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/allisson/mediavault/internal/auth/domain"
	authService "github.com/allisson/mediavault/internal/auth/service"
	"github.com/allisson/mediavault/internal/config"
	apperrors "github.com/allisson/mediavault/internal/errors"
	userDomain "github.com/allisson/mediavault/internal/user/domain"
)

type tokenUseCase struct {
	config          *config.Config
	userRepo        UserRepository
	tokenRepo       TokenRepository
	passwordService authService.PasswordService
	tokenService    authService.TokenService
	now             func() time.Time
}

func (t *tokenUseCase) Issue(
	ctx context.Context,
	input *authDomain.IssueTokenInput,
) (*authDomain.IssueTokenOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := t.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userDomain.ErrUserNotFound) {
			return nil, authDomain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !t.passwordService.Compare(input.Password, user.Password) {
		return nil, authDomain.ErrInvalidCredentials
	}

	plainToken, tokenHash, err := t.tokenService.GenerateToken()
	if err != nil {
		return nil, err
	}

	now := t.now().UTC()
	token := &authDomain.Token{
		ID:        uuid.Must(uuid.NewV7()),
		TokenHash: tokenHash,
		UserID:    user.ID,
		ExpiresAt: now.Add(t.config.AuthTokenExpiration),
		CreatedAt: now,
	}

	if err := t.tokenRepo.Create(ctx, token); err != nil {
		return nil, err
	}

	return &authDomain.IssueTokenOutput{
		PlainToken: plainToken,
		ExpiresAt:  token.ExpiresAt,
	}, nil
}

func (t *tokenUseCase) Authenticate(ctx context.Context, tokenHash string) (uuid.UUID, error) {
	token, err := t.tokenRepo.GetByTokenHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, authDomain.ErrTokenNotFound) {
			return uuid.Nil, authDomain.ErrInvalidCredentials
		}
		return uuid.Nil, err
	}

	if !token.IsValid(t.now().UTC()) {
		return uuid.Nil, authDomain.ErrInvalidCredentials
	}

	return token.UserID, nil
}

func (t *tokenUseCase) CleanupExpired(ctx context.Context, days int, dryRun bool) (int64, error) {
	if days < 0 {
		return 0, apperrors.Wrap(apperrors.ErrInvalidInput, "days must not be negative")
	}

	olderThan := t.now().UTC().AddDate(0, 0, -days)
	if dryRun {
		return t.tokenRepo.CountExpired(ctx, olderThan)
	}
	return t.tokenRepo.DeleteExpired(ctx, olderThan)
}

// NewTokenUseCase creates a new TokenUseCase. Token lifetime comes from
// Config.AuthTokenExpiration.
func NewTokenUseCase(
	cfg *config.Config,
	userRepo UserRepository,
	tokenRepo TokenRepository,
	passwordService authService.PasswordService,
	tokenService authService.TokenService,
) TokenUseCase {
	return &tokenUseCase{
		config:          cfg,
		userRepo:        userRepo,
		tokenRepo:       tokenRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
		now:             time.Now,
	}
}
