//go:build wireinject
// +build wireinject

package main

import (
	"context"

	"logistica_cotizaciones/internal/adapter/http/handlers"
	"logistica_cotizaciones/internal/adapter/http/routes"
	"logistica_cotizaciones/internal/adapter/persistence/repository"
	"logistica_cotizaciones/internal/infrastructure/database"
	"logistica_cotizaciones/internal/infrastructure/mailer"
	"logistica_cotizaciones/internal/infrastructure/security"
	"logistica_cotizaciones/internal/usecase"
	"logistica_cotizaciones/internal/usecase/interfaces"

	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

var infrastructureSet = wire.NewSet(
	provideConfig,
	provideLogger,
	providePostgres,
	wire.Bind(new(database.PostgresPool), new(*pgxpool.Pool)),
	provideDynamoDB,
	provideNotificationRepository,
)

var userSet = wire.NewSet(
	repository.NewUserPostgresRepository,
	wire.Bind(new(interfaces.IUserRepository), new(*repository.UserPostgresRepository)),
	security.NewPBKDF2Hasher,
	wire.Bind(new(interfaces.IPasswordHasher), new(*security.PBKDF2Hasher)),
	usecase.NewUserUseCase,
)

func InitializeApp(ctx context.Context, configFile string) (*App, func(), error) {
	wire.Build(
		infrastructureSet,
		userSet,
		provideRedis,
		database.NewTransactionManager,
		repository.NewQuotePostgresRepository,
		wire.Bind(new(interfaces.IQuoteRepository), new(*repository.QuotePostgresRepository)),
		repository.NewSessionPostgresRepository,
		provideSessionRepository,
		wire.Bind(new(interfaces.INotificationRepository), new(*repository.NotificationDynamoRepository)),
		usecase.NewNotificationUseCase,
		wire.Bind(new(usecase.INotificationUseCase), new(*usecase.NotificationUseCase)),
		wire.Bind(new(interfaces.INotifier), new(*usecase.NotificationUseCase)),
		provideQuoteUseCase,
		wire.Bind(new(usecase.IQuoteUseCase), new(*usecase.QuoteUseCase)),
		provideMailer,
		wire.Bind(new(interfaces.IVerificationMailer), new(*mailer.LogMailer)),
		provideAuthUseCase,
		wire.Bind(new(usecase.IAuthUseCase), new(*usecase.AuthUseCase)),
		wire.Bind(new(usecase.IUserUseCase), new(*usecase.UserUseCase)),
		handlers.NewQuoteHandler,
		handlers.NewNotificationHandler,
		handlers.NewAuthHandler,
		handlers.NewUserHandler,
		routes.NewServer,
		newApp,
	)
	return nil, nil, nil
}

func InitializeMigrator(ctx context.Context, configFile string) (*Migrator, func(), error) {
	wire.Build(
		infrastructureSet,
		userSet,
		repository.NewSessionPostgresRepository,
		wire.Bind(new(interfaces.ISessionRepository), new(*repository.SessionPostgresRepository)),
		newMigrator,
	)
	return nil, nil, nil
}
