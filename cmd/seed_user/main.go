// Command seed_user registers a single user, with wallet, from the
// environment. Running it again is harmless: an existing email or phone
// number is reported and the command exits cleanly.
package main

import (
	"context"
	"os"
	"time"

	"quicksend/internal/config"
	"quicksend/internal/logging"
	"quicksend/internal/models"
	"quicksend/internal/repositories"
	"quicksend/internal/result"
	"quicksend/internal/services/user"
	"quicksend/internal/services/wallet"
	"quicksend/internal/validation"

	"go.uber.org/zap"
)

func main() {
	config.LoadEnv()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.IsProduction())
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	dob, err := time.Parse("2006-01-02", os.Getenv("SEED_DATE_OF_BIRTH"))
	if err != nil {
		logger.Fatal("SEED_DATE_OF_BIRTH must be set as YYYY-MM-DD", zap.Error(err))
	}

	input := &models.CreateUserInput{
		FirstName:   os.Getenv("SEED_FIRST_NAME"),
		LastName:    os.Getenv("SEED_LAST_NAME"),
		Email:       os.Getenv("SEED_EMAIL"),
		PhoneNumber: os.Getenv("SEED_PHONE_NUMBER"),
		DateOfBirth: dob,
		Password:    os.Getenv("SEED_PASSWORD"),
	}
	if errs := validation.Struct(input); len(errs) > 0 {
		logger.Fatal("invalid seed user", zap.Any("errors", errs))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := repositories.OpenDB(ctx, cfg.DB, logger)
	if err != nil {
		logger.Fatal("connect database", zap.Error(err))
	}
	defer func() {
		if err := repositories.CloseDB(db); err != nil {
			logger.Warn("failed to close database connection", zap.Error(err))
		}
	}()

	if err := repositories.Migrate(db); err != nil {
		logger.Fatal("migrate", zap.Error(err))
	}

	// The seed bypasses the cache; the running server's cached entries are
	// keyed by ID and a new user has none.
	walletService := wallet.NewService(
		repositories.NewWalletRepository(db, nil, logger),
		wallet.WalletConfig{DefaultCurrency: cfg.WalletCurrency},
		logger,
	)
	userService := user.NewService(repositories.NewUserRepository(db, nil, logger), walletService, logger)

	res := userService.Create(ctx, input)
	switch res.Kind() {
	case result.KindCreated:
		reg := res.Data()[0]
		logger.Info("seed user created", zap.Uint("user_id", reg.User.ID), zap.Uint("wallet_id", reg.Wallet.ID))
	case result.KindConflict:
		logger.Info("seed user already exists", zap.String("reason", res.Message()))
	default:
		logger.Fatal("seed user failed", zap.Stringer("kind", res.Kind()), zap.String("message", res.Message()))
	}
}
