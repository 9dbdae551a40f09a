package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/khoahotran/cardlink/internal/application/service"
	"github.com/khoahotran/cardlink/internal/domain/account"
	"github.com/khoahotran/cardlink/pkg/apperror"
	"github.com/khoahotran/cardlink/pkg/logger"
)

type AccountRepoIntegrationTestSuite struct {
	suite.Suite
	dbPool         *pgxpool.Pool
	pgContainer    *postgres.PostgresContainer
	redisContainer *tcredis.RedisContainer
	rdb            *redis.Client
	repo           account.Repository
	cache          service.ProfileCache
}

func (s *AccountRepoIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(1*time.Minute),
		),
	)
	if err != nil {
		s.T().Fatalf("Failed to start postgres container: %s", err)
	}
	s.pgContainer = pgContainer

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		s.T().Fatalf("Failed to get connection string: %s", err)
	}

	m, err := migrate.New("file://../../migrations", dsn)
	if err != nil {
		s.T().Fatalf("Failed to create migrate instance: %s", err)
	}
	if err := m.Up(); err != nil {
		s.T().Fatalf("Failed to run migrations: %s", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		s.T().Fatalf("Failed to create pgxpool: %s", err)
	}
	s.dbPool = pool
	s.repo = NewPostgresAccountRepo(s.dbPool, logger.NewNop())

	redisContainer, err := tcredis.Run(ctx, "redis:7-alpine")
	if err != nil {
		s.T().Fatalf("Failed to start redis container: %s", err)
	}
	s.redisContainer = redisContainer
	redisURL, err := redisContainer.ConnectionString(ctx)
	if err != nil {
		s.T().Fatalf("Failed to get redis connection string: %s", err)
	}
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		s.T().Fatalf("Failed to parse redis url: %s", err)
	}
	s.rdb = redis.NewClient(opts)
	s.cache = NewRedisProfileCache(s.rdb, time.Minute)
}

func (s *AccountRepoIntegrationTestSuite) TearDownSuite() {
	if s.rdb != nil {
		s.rdb.Close()
	}
	if s.dbPool != nil {
		s.dbPool.Close()
	}
	if s.redisContainer != nil {
		if err := s.redisContainer.Terminate(context.Background()); err != nil {
			s.T().Fatalf("Failed to terminate redis container: %s", err)
		}
	}
	if s.pgContainer != nil {
		if err := s.pgContainer.Terminate(context.Background()); err != nil {
			s.T().Fatalf("Failed to terminate postgres container: %s", err)
		}
	}
}

func TestAccountRepoIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode.")
	}
	suite.Run(t, new(AccountRepoIntegrationTestSuite))
}

func (s *AccountRepoIntegrationTestSuite) newAccount(email string) *account.Account {
	one := 1
	card := &account.Card{ID: uuid.New(), Name: "Main", IsActive: true, Profile: account.NewProfile("Card", "", "", "", "")}
	card.Profile.Links = []*account.ProfileLink{{ID: uuid.New(), LinkType: account.LinkTypeWebsite, Name: "site", Value: "https://example.com", OrderNumber: &one}}
	return &account.Account{
		ID:           uuid.New(),
		Name:         "Acme",
		Email:        email,
		PasswordHash: "hashed",
		IsActive:     true,
		Profile:      account.NewProfile("Ada", "Lovelace", "", "", ""),
		Cards:        []*account.Card{card},
	}
}

func (s *AccountRepoIntegrationTestSuite) Test_Create_And_Lookups() {
	ctx := context.Background()
	a := s.newAccount("lookups@example.com")
	s.Require().NoError(s.repo.Create(ctx, a))
	s.Equal(1, a.Version)

	byID, err := s.repo.FindByID(ctx, a.ID)
	s.Require().NoError(err)
	s.Equal("hashed", byID.PasswordHash)
	s.Equal(a.Cards[0].Profile.Links[0].ID, byID.Cards[0].Profile.Links[0].ID)
	s.False(byID.CreatedAt.IsZero())

	byEmail, err := s.repo.FindByEmail(ctx, "LOOKUPS@example.com")
	s.Require().NoError(err)
	s.Equal(a.ID, byEmail.ID)

	byProfile, err := s.repo.FindByProfileID(ctx, a.Profile.ID)
	s.Require().NoError(err)
	s.Equal(a.ID, byProfile.ID)

	byCardProfile, err := s.repo.FindByProfileID(ctx, a.Cards[0].Profile.ID)
	s.Require().NoError(err)
	s.Equal(a.ID, byCardProfile.ID)

	byCard, err := s.repo.FindByCardID(ctx, a.Cards[0].ID)
	s.Require().NoError(err)
	s.Equal(a.ID, byCard.ID)

	_, err = s.repo.FindByCardID(ctx, uuid.New())
	s.ErrorIs(err, account.ErrAccountNotFound)

	err = s.repo.Create(ctx, s.newAccount("lookups@example.com"))
	s.ErrorIs(err, apperror.ErrConflict)
	s.ErrorIs(err, account.ErrEmailExists)
}

func (s *AccountRepoIntegrationTestSuite) Test_Save_WritesPasswordHash() {
	ctx := context.Background()
	a := s.newAccount("rehash@example.com")
	s.Require().NoError(s.repo.Create(ctx, a))

	a.PasswordHash = "rehashed"
	s.Require().NoError(s.repo.Save(ctx, a))

	stored, err := s.repo.FindByEmail(ctx, "rehash@example.com")
	s.Require().NoError(err)
	s.Equal("rehashed", stored.PasswordHash)
}

func (s *AccountRepoIntegrationTestSuite) Test_FindByID_SkipsInactive() {
	ctx := context.Background()
	a := s.newAccount("inactive@example.com")
	a.IsActive = false
	s.Require().NoError(s.repo.Create(ctx, a))

	_, err := s.repo.FindByID(ctx, a.ID)
	s.ErrorIs(err, account.ErrAccountNotFound)
}

func (s *AccountRepoIntegrationTestSuite) Test_Save_OptimisticVersion() {
	ctx := context.Background()
	a := s.newAccount("versions@example.com")
	s.Require().NoError(s.repo.Create(ctx, a))

	first, err := s.repo.FindByID(ctx, a.ID)
	s.Require().NoError(err)
	second, err := s.repo.FindByID(ctx, a.ID)
	s.Require().NoError(err)

	first.Profile.Title = "Countess"
	s.Require().NoError(s.repo.Save(ctx, first))
	s.Equal(2, first.Version)

	second.Profile.Title = "Lost update"
	err = s.repo.Save(ctx, second)
	s.ErrorIs(err, account.ErrVersionConflict)

	stored, err := s.repo.FindByID(ctx, a.ID)
	s.Require().NoError(err)
	s.Equal("Countess", stored.Profile.Title)

	missing := s.newAccount("missing@example.com")
	s.ErrorIs(s.repo.Save(ctx, missing), account.ErrAccountNotFound)
}

func (s *AccountRepoIntegrationTestSuite) Test_ProfileCache() {
	ctx := context.Background()
	p := account.NewProfile("Cached", "", "", "", "")
	key := service.ProfileCacheKey(p.ID)

	miss, err := s.cache.Get(ctx, key)
	s.Require().NoError(err)
	s.Nil(miss)

	s.Require().NoError(s.cache.Set(ctx, key, p))
	hit, err := s.cache.Get(ctx, key)
	s.Require().NoError(err)
	s.Equal(p.ID, hit.ID)

	s.Require().NoError(s.cache.Delete(ctx, key, service.CardProfileCacheKey(uuid.New())))
	gone, err := s.cache.Get(ctx, key)
	s.Require().NoError(err)
	s.Nil(gone)
}
