package mutation

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/khoahotran/cardlink/internal/application/service"
	"github.com/khoahotran/cardlink/internal/domain/account"
	"github.com/khoahotran/cardlink/pkg/apperror"
	"github.com/khoahotran/cardlink/pkg/logger"
	"github.com/khoahotran/cardlink/pkg/metrics"
)

var tracer = otel.Tracer("account_mutation")

// MutateFunc changes the loaded aggregate in memory and returns the events to
// publish once the change is saved. Returning an error aborts without saving.
type MutateFunc func(a *account.Account) ([]account.Event, error)

// Executor runs the load, mutate, save cycle shared by every account write.
type Executor struct {
	repo      account.Repository
	cache     service.ProfileCache
	publisher service.EventPublisher
	logger    logger.Logger
}

func NewExecutor(repo account.Repository, cache service.ProfileCache, publisher service.EventPublisher, log logger.Logger) *Executor {
	return &Executor{repo: repo, cache: cache, publisher: publisher, logger: log}
}

// Execute loads the account, applies fn and saves the result exactly once.
// Failures are logged with fields and returned as *apperror.AppError.
func (e *Executor) Execute(ctx context.Context, op string, accountID uuid.UUID, fields []zap.Field, fn MutateFunc) (a *account.Account, err error) {
	ctx, span := tracer.Start(ctx, op)
	span.SetAttributes(attribute.String("account_id", accountID.String()))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
		metrics.ObserveMutation(op, err)
	}()

	l := e.logger.With(append([]zap.Field{zap.String("operation", op), logger.AccountID(accountID)}, fields...)...)

	a, err = e.repo.FindByID(ctx, accountID)
	if err != nil {
		l.Warn("Failed to load account", zap.Error(err))
		return nil, Translate(err, "failed to load account")
	}

	staleKeys := service.ProfileCacheKeys(a)

	events, err := fn(a)
	if err != nil {
		l.Warn("Account mutation rejected", zap.Error(err))
		return nil, Translate(err, "account mutation failed")
	}

	if err = e.repo.Save(ctx, a); err != nil {
		if errors.Is(err, account.ErrVersionConflict) {
			metrics.SaveConflicts.Inc()
			l.Warn("Account changed concurrently, save rejected", zap.Int("version", a.Version))
			return nil, apperror.NewVersionConflict("account", accountID.String(), err)
		}
		l.Error("Failed to save account", err)
		return nil, Translate(err, "failed to save account")
	}

	e.invalidate(ctx, l, append(staleKeys, service.ProfileCacheKeys(a)...))
	e.publish(l, events)

	l.Info("Account mutation committed", zap.Int("version", a.Version))
	return a, nil
}

func (e *Executor) invalidate(ctx context.Context, l logger.Logger, keys []string) {
	if e.cache == nil || len(keys) == 0 {
		return
	}
	if err := e.cache.Delete(ctx, keys...); err != nil {
		l.Warn("Failed to invalidate profile cache", zap.Error(err), zap.Strings("keys", keys))
	}
}

func (e *Executor) publish(l logger.Logger, events []account.Event) {
	if e.publisher == nil || len(events) == 0 {
		return
	}
	go func() {
		if err := e.publisher.Publish(context.Background(), events...); err != nil {
			l.Error("Failed to publish account events", err, zap.Int("count", len(events)))
		}
	}()
}

// Translate maps domain and storage errors onto apperror kinds.
func Translate(err error, details string) error {
	var appErr *apperror.AppError
	switch {
	case errors.As(err, &appErr):
		return appErr
	case errors.Is(err, account.ErrVersionConflict):
		return apperror.NewAppError(apperror.ErrConflict, "account was modified concurrently", details, err)
	case account.IsNotFound(err):
		return apperror.NewReferencedNotFound(err)
	case account.IsConflict(err):
		return apperror.NewAlreadyExists(err)
	}
	return apperror.NewInternal(details, err)
}
