package auth

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/khoahotran/cardlink/internal/domain/account"
	"github.com/khoahotran/cardlink/pkg/apperror"
	"github.com/khoahotran/cardlink/pkg/auth"
	"github.com/khoahotran/cardlink/pkg/logger"
)

var (
	ErrInvalidCredentials = errors.New("email or password is incorrect")
)

type LoginUseCase struct {
	accountRepo account.Repository
	jwtSvc      *auth.JWTService
	logger      logger.Logger
}

func NewLoginUseCase(repo account.Repository, jwtSvc *auth.JWTService, log logger.Logger) *LoginUseCase {
	return &LoginUseCase{
		accountRepo: repo,
		jwtSvc:      jwtSvc,
		logger:      log,
	}
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	AccountID    string
}

var tracer = otel.Tracer("auth_usecase")

func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	ctx, span := tracer.Start(ctx, "Login")
	defer span.End()

	a, err := uc.accountRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, account.ErrAccountNotFound) {
			err = apperror.NewUnauthorized("unknown email", ErrInvalidCredentials)
		}
		span.RecordError(err)
		return nil, err
	}

	if !auth.CheckPasswordHash(input.Password, a.PasswordHash) {
		err := apperror.NewUnauthorized("incorrect password", ErrInvalidCredentials)
		span.RecordError(err)
		return nil, err
	}

	if !a.IsActive || a.IsDisabled {
		uc.logger.Warn("Login attempt on inactive account", logger.AccountID(a.ID))
		err := apperror.NewPermissionDenied("account is not active")
		span.RecordError(err)
		return nil, err
	}

	token, err := uc.jwtSvc.GenerateToken(a.ID)
	if err != nil {
		uc.logger.Error("Failed to generate token", err, zap.String("account_id", a.ID.String()))
		err = apperror.NewInternal("failed to generate token", err)
		span.RecordError(err)
		return nil, err
	}
	refresh, err := uc.jwtSvc.GenerateRefreshToken(a.ID)
	if err != nil {
		uc.logger.Error("Failed to generate refresh token", err, zap.String("account_id", a.ID.String()))
		err = apperror.NewInternal("failed to generate refresh token", err)
		span.RecordError(err)
		return nil, err
	}
	span.SetAttributes(attribute.String("account_id", a.ID.String()))
	return &LoginOutput{AccessToken: token, RefreshToken: refresh, AccountID: a.ID.String()}, nil
}
