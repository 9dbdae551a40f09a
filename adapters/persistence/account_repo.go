package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/khoahotran/cardlink/internal/domain/account"
	"github.com/khoahotran/cardlink/pkg/apperror"
	"github.com/khoahotran/cardlink/pkg/logger"
)

const uniqueViolation = "23505"

// postgresAccountRepo keeps one row per account. Cards, profiles, links and
// custom link types live in the JSONB document column; the scalar columns
// are authoritative for identity, credentials, flags and version.
type postgresAccountRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresAccountRepo(db *pgxpool.Pool, logger logger.Logger) account.Repository {
	return &postgresAccountRepo{db: db, logger: logger}
}

var psqlAccount = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var accountColumns = []string{
	"id", "email", "password_hash", "is_active", "is_disabled",
	"version", "document", "created_at", "updated_at",
}

func scanAccount(row pgx.Row, l logger.Logger) (*account.Account, error) {
	var (
		a        account.Account
		id       uuid.UUID
		email    string
		hash     string
		active   bool
		disabled bool
		version  int
		document []byte
		created  time.Time
		updated  time.Time
	)

	err := row.Scan(&id, &email, &hash, &active, &disabled, &version, &document, &created, &updated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, account.ErrAccountNotFound
		}
		return nil, apperror.NewInternal("failed to scan account row", err)
	}

	if err := json.Unmarshal(document, &a); err != nil {
		l.Error("Failed to decode account document", err, zap.String("account_id", id.String()))
		return nil, apperror.NewInternal("failed to decode account document", err)
	}

	a.ID = id
	a.Email = email
	a.PasswordHash = hash
	a.IsActive = active
	a.IsDisabled = disabled
	a.Version = version
	a.CreatedAt = created
	a.UpdatedAt = updated
	return &a, nil
}

func (r *postgresAccountRepo) queryOne(ctx context.Context, builder sq.SelectBuilder, what string) (*account.Account, error) {
	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal(fmt.Sprintf("failed to build %s query", what), err)
	}
	return scanAccount(r.db.QueryRow(ctx, sql, args...), r.logger)
}

func (r *postgresAccountRepo) selectAccounts() sq.SelectBuilder {
	return psqlAccount.Select(accountColumns...).From("accounts")
}

func (r *postgresAccountRepo) FindByID(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	builder := r.selectAccounts().
		Where(sq.Eq{"id": id, "is_active": true, "is_disabled": false})
	return r.queryOne(ctx, builder, "find account by id")
}

func (r *postgresAccountRepo) FindByEmail(ctx context.Context, email string) (*account.Account, error) {
	builder := r.selectAccounts().
		Where(sq.Expr("lower(email) = lower(?)", email))
	return r.queryOne(ctx, builder, "find account by email")
}

func (r *postgresAccountRepo) FindByProfileID(ctx context.Context, profileID uuid.UUID) (*account.Account, error) {
	ownProfile, err := containment(map[string]any{"profile": map[string]any{"id": profileID}})
	if err != nil {
		return nil, err
	}
	cardProfile, err := containment(map[string]any{"cards": []any{map[string]any{"profile": map[string]any{"id": profileID}}}})
	if err != nil {
		return nil, err
	}

	builder := r.selectAccounts().
		Where(sq.Eq{"is_active": true, "is_disabled": false}).
		Where(sq.Or{
			sq.Expr("document @> ?::jsonb", ownProfile),
			sq.Expr("document @> ?::jsonb", cardProfile),
		}).
		Limit(1)
	return r.queryOne(ctx, builder, "find account by profile id")
}

func (r *postgresAccountRepo) FindByCardID(ctx context.Context, cardID uuid.UUID) (*account.Account, error) {
	card, err := containment(map[string]any{"cards": []any{map[string]any{"id": cardID}}})
	if err != nil {
		return nil, err
	}

	builder := r.selectAccounts().
		Where(sq.Eq{"is_active": true, "is_disabled": false}).
		Where(sq.Expr("document @> ?::jsonb", card)).
		Limit(1)
	return r.queryOne(ctx, builder, "find account by card id")
}

func containment(v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", apperror.NewInternal("failed to encode containment filter", err)
	}
	return string(raw), nil
}

func (r *postgresAccountRepo) Create(ctx context.Context, a *account.Account) error {
	if a.Cards == nil {
		a.Cards = []*account.Card{}
	}
	if a.CustomLinkTypes == nil {
		a.CustomLinkTypes = []*account.CustomLinkType{}
	}
	a.Version = 1

	document, err := json.Marshal(a)
	if err != nil {
		return apperror.NewInternal("failed to encode account document", err)
	}

	sql, args, err := psqlAccount.Insert("accounts").
		Columns("id", "email", "password_hash", "is_active", "is_disabled", "version", "document").
		Values(a.ID, a.Email, a.PasswordHash, a.IsActive, a.IsDisabled, a.Version, document).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build insert account query", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&a.CreatedAt, &a.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return apperror.NewAppError(apperror.ErrConflict, "account conflict",
				fmt.Sprintf("account with email '%s' already exists", a.Email), account.ErrEmailExists)
		}
		return apperror.NewInternal("failed to insert account", err)
	}
	return nil
}

// Save rewrites the whole row guarded by the version loaded with the
// account, then advances a.Version.
func (r *postgresAccountRepo) Save(ctx context.Context, a *account.Account) error {
	document, err := json.Marshal(a)
	if err != nil {
		return apperror.NewInternal("failed to encode account document", err)
	}

	sql, args, err := psqlAccount.Update("accounts").
		Set("email", a.Email).
		Set("password_hash", a.PasswordHash).
		Set("is_active", a.IsActive).
		Set("is_disabled", a.IsDisabled).
		Set("document", document).
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": a.ID, "version": a.Version}).
		Suffix("RETURNING version, updated_at").
		ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build update account query", err)
	}

	var version int
	err = r.db.QueryRow(ctx, sql, args...).Scan(&version, &a.UpdatedAt)
	if err == nil {
		a.Version = version
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return apperror.NewInternal("failed to update account", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM accounts WHERE id = $1)`, a.ID).Scan(&exists); err != nil {
		return apperror.NewInternal("failed to check account existence", err)
	}
	if !exists {
		return account.ErrAccountNotFound
	}
	return fmt.Errorf("%w: account %s at version %d", account.ErrVersionConflict, a.ID, a.Version)
}
