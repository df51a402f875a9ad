package main

import (
	"context"
	"fmt"

	"logistica_cotizaciones/internal/adapter/http/routes"
	"logistica_cotizaciones/internal/adapter/persistence/migrations"
	"logistica_cotizaciones/internal/adapter/persistence/repository"
	"logistica_cotizaciones/internal/infrastructure/config"
	"logistica_cotizaciones/internal/infrastructure/database"
	"logistica_cotizaciones/internal/domain/entities"
	"logistica_cotizaciones/internal/infrastructure/logger"
	"logistica_cotizaciones/internal/infrastructure/mailer"
	"logistica_cotizaciones/internal/usecase"
	"logistica_cotizaciones/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// App is the assembled HTTP service.
type App struct {
	Config *config.Config
	Logger *zap.Logger
	Server *routes.Server
}

func newApp(cfg *config.Config, log *zap.Logger, server *routes.Server) *App {
	return &App{Config: cfg, Logger: log, Server: server}
}

// Migrator bootstraps the Postgres schema, the DynamoDB inbox table and,
// when configured, the first admin account.
type Migrator struct {
	pool          *pgxpool.Pool
	notifications *repository.NotificationDynamoRepository
	users         *usecase.UserUseCase
	auth          config.AuthConfig
	logger        *zap.Logger
}

func newMigrator(
	pool *pgxpool.Pool,
	notifications *repository.NotificationDynamoRepository,
	users *usecase.UserUseCase,
	cfg *config.Config,
	log *zap.Logger,
) *Migrator {
	return &Migrator{pool: pool, notifications: notifications, users: users, auth: cfg.Auth, logger: log}
}

func (m *Migrator) Run(ctx context.Context) error {
	if err := migrations.Apply(ctx, m.pool); err != nil {
		return err
	}
	m.logger.Info("migrate postgres schema applied")

	if err := m.notifications.EnsureTable(ctx); err != nil {
		return fmt.Errorf("ensure notifications table: %w", err)
	}
	m.logger.Info("migrate notifications table ready")

	if m.auth.AdminEmail == "" {
		return nil
	}
	created, err := m.users.EnsureAdmin(ctx, m.auth.AdminEmail, m.auth.AdminPassword, entities.UserProfile{
		FirstName: "Admin",
		LastName:  "Sistema",
	})
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	m.logger.Info("migrate admin account ready", zap.Bool("created", created))
	return nil
}

func provideConfig(configFile string) (*config.Config, error) {
	return config.Load(configFile)
}

func provideLogger(cfg *config.Config) (*zap.Logger, func(), error) {
	log, err := logger.New(cfg.Log)
	if err != nil {
		return nil, nil, err
	}
	return log, func() { _ = log.Sync() }, nil
}

func providePostgres(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, func(), error) {
	pool, err := database.ConnectPostgres(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return pool, pool.Close, nil
}

func provideDynamoDB(ctx context.Context, cfg *config.Config) (*dynamodb.Client, error) {
	return database.ConnectDynamoDB(ctx, cfg)
}

func provideRedis(ctx context.Context, cfg *config.Config, log *zap.Logger) (*redis.Client, func(), error) {
	client, err := database.ConnectRedis(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	if client == nil {
		log.Info("session cache disabled")
		return nil, func() {}, nil
	}
	return client, func() { _ = client.Close() }, nil
}

func provideNotificationRepository(ddb *dynamodb.Client, cfg *config.Config) *repository.NotificationDynamoRepository {
	return repository.NewNotificationDynamoRepository(ddb, cfg.DynamoDB.NotificationsTable)
}

// provideSessionRepository puts the Redis cache in front of Postgres when
// Redis is configured.
func provideSessionRepository(
	store *repository.SessionPostgresRepository,
	rdb *redis.Client,
	cfg *config.Config,
	log *zap.Logger,
) interfaces.ISessionRepository {
	if rdb == nil {
		return store
	}
	return repository.NewSessionRedisCache(store, rdb, cfg.Redis.CacheTTL, log)
}

func provideQuoteUseCase(repo interfaces.IQuoteRepository, notifier interfaces.INotifier, log *zap.Logger, cfg *config.Config) *usecase.QuoteUseCase {
	return usecase.NewQuoteUseCase(repo, notifier, log, usecase.QuoteSettings{
		ReferenceMaxAttempts: cfg.Quotes.ReferenceMaxAttempts,
	})
}

func provideAuthUseCase(
	users interfaces.IUserRepository,
	sessions interfaces.ISessionRepository,
	hasher interfaces.IPasswordHasher,
	mail interfaces.IVerificationMailer,
	log *zap.Logger,
	cfg *config.Config,
) *usecase.AuthUseCase {
	return usecase.NewAuthUseCase(users, sessions, hasher, mail, log, usecase.AuthSettings{
		SessionTTL:      cfg.Auth.SessionTTL,
		VerificationTTL: cfg.Auth.VerificationTTL,
	})
}

func provideMailer(log *zap.Logger, cfg *config.Config) *mailer.LogMailer {
	return mailer.NewLogMailer(log, cfg.Auth.PublicURL)
}
