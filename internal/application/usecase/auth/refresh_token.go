package auth

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"

	"github.com/khoahotran/cardlink/internal/domain/account"
	"github.com/khoahotran/cardlink/pkg/apperror"
	"github.com/khoahotran/cardlink/pkg/auth"
	"github.com/khoahotran/cardlink/pkg/logger"
)

type RefreshTokenUseCase struct {
	accountRepo account.Repository
	jwtSvc      *auth.JWTService
	logger      logger.Logger
}

func NewRefreshTokenUseCase(repo account.Repository, jwtSvc *auth.JWTService, log logger.Logger) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{
		accountRepo: repo,
		jwtSvc:      jwtSvc,
		logger:      log,
	}
}

type RefreshOutput struct {
	AccessToken string
}

// Execute trades a refresh token for a new access token. The refresh token
// itself is not rotated.
func (uc *RefreshTokenUseCase) Execute(ctx context.Context, refreshToken string) (*RefreshOutput, error) {
	ctx, span := tracer.Start(ctx, "RefreshToken")
	defer span.End()

	claims, err := uc.jwtSvc.ValidateRefreshToken(refreshToken)
	if err != nil {
		uc.logger.Warn("Rejected refresh token")
		err = apperror.NewUnauthorized("invalid refresh token", err)
		span.RecordError(err)
		return nil, err
	}

	a, err := uc.accountRepo.FindByID(ctx, claims.AccountID)
	if err != nil {
		if errors.Is(err, account.ErrAccountNotFound) {
			uc.logger.Warn("Cannot refresh token, account is gone or inactive", logger.AccountID(claims.AccountID))
			err = apperror.NewUnauthorized("account no longer exists", err)
		}
		span.RecordError(err)
		return nil, err
	}

	token, err := uc.jwtSvc.GenerateToken(a.ID)
	if err != nil {
		uc.logger.Error("Failed to generate token", err, logger.AccountID(a.ID))
		err = apperror.NewInternal("failed to generate token", err)
		span.RecordError(err)
		return nil, err
	}
	span.SetAttributes(attribute.String("account_id", a.ID.String()))
	return &RefreshOutput{AccessToken: token}, nil
}
