package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"quicksend/internal/models"
	"quicksend/internal/repositories"
	"quicksend/internal/result"
	"quicksend/internal/services/wallet"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	msgRegistered    = "user successfully registered"
	msgSaved         = "user successfully saved"
	msgFetched       = "user successfully fetched"
	msgListed        = "users successfully fetched"
	msgUserNotFound  = "user does not exist"
	msgEmailTakenFmt = "email address %s already exists"
	msgPhoneTakenFmt = "phone number %s already exists"
)

// Service orchestrates user registration, update and lookup. Every
// operation reports through the result envelope instead of returning errors.
type Service interface {
	Create(ctx context.Context, input *models.CreateUserInput) result.Result[models.Registration]
	Update(ctx context.Context, id uint, input *models.UpdateUserInput) result.Result[models.UserDTO]
	FindByID(ctx context.Context, id uint) result.Result[models.UserDTO]
	FindAll(ctx context.Context) result.Result[models.UserDTO]
}

type service struct {
	repo       repositories.UserRepository
	wallets    wallet.Service
	logger     *zap.Logger
	now        func() time.Time
	bcryptCost int
}

func NewService(repo repositories.UserRepository, wallets wallet.Service, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{
		repo:       repo,
		wallets:    wallets,
		logger:     logger,
		now:        time.Now,
		bcryptCost: bcrypt.DefaultCost,
	}
}

// Create registers a user and provisions their wallet. The uniqueness
// checks and the two inserts are not atomic; the unique indexes catch a
// concurrent duplicate and it is reported as a conflict.
func (s *service) Create(ctx context.Context, input *models.CreateUserInput) result.Result[models.Registration] {
	taken, err := s.repo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return s.internal("check email", err)
	}
	if taken {
		return result.Conflict[models.Registration](fmt.Sprintf(msgEmailTakenFmt, input.Email))
	}

	taken, err = s.repo.ExistsByPhone(ctx, input.PhoneNumber)
	if err != nil {
		return s.internal("check phone number", err)
	}
	if taken {
		return result.Conflict[models.Registration](fmt.Sprintf(msgPhoneTakenFmt, input.PhoneNumber))
	}

	newUser, err := models.NewUserFromInput(input)
	if err != nil {
		return s.internal("map user", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return s.internal("hash password", err)
	}
	newUser.Password = string(hashed)
	newUser.SetAge(s.now())

	if err := s.repo.Create(ctx, newUser); err != nil {
		if errors.Is(err, repositories.ErrDuplicateUser) {
			return result.Conflict[models.Registration](err.Error())
		}
		return s.internal("create user", err)
	}

	savedUser, err := models.ToUserDTO(newUser)
	if err != nil {
		return s.internal("map user", err)
	}

	userWallet, err := s.wallets.CreateWallet(ctx, savedUser.ID)
	if err != nil {
		return s.internal("create wallet", err, zap.Uint("user_id", savedUser.ID))
	}

	s.logger.Info("user registered", zap.Uint("user_id", savedUser.ID), zap.Uint("wallet_id", userWallet.ID))
	return result.Created(msgRegistered, models.Registration{User: savedUser, Wallet: userWallet})
}

// Update overwrites the mutable profile fields of an existing user.
func (s *service) Update(ctx context.Context, id uint, input *models.UpdateUserInput) result.Result[models.UserDTO] {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return result.NotFound[models.UserDTO](msgUserNotFound)
		}
		return internal[models.UserDTO](s.logger, "get user", err, zap.Uint("user_id", id))
	}

	if err := models.ApplyUpdate(existing, input); err != nil {
		return internal[models.UserDTO](s.logger, "apply update", err, zap.Uint("user_id", id))
	}
	existing.ID = id
	existing.SetAge(s.now())

	if err := s.repo.Save(ctx, existing); err != nil {
		if errors.Is(err, repositories.ErrDuplicateUser) {
			return result.Conflict[models.UserDTO](err.Error())
		}
		return internal[models.UserDTO](s.logger, "save user", err, zap.Uint("user_id", id))
	}

	dto, err := models.ToUserDTO(existing)
	if err != nil {
		return internal[models.UserDTO](s.logger, "map user", err, zap.Uint("user_id", id))
	}
	return result.OK(msgSaved, dto)
}

func (s *service) FindByID(ctx context.Context, id uint) result.Result[models.UserDTO] {
	found, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return result.NotFound[models.UserDTO](msgUserNotFound)
		}
		return internal[models.UserDTO](s.logger, "get user", err, zap.Uint("user_id", id))
	}

	dto, err := models.ToUserDTO(found)
	if err != nil {
		return internal[models.UserDTO](s.logger, "map user", err, zap.Uint("user_id", id))
	}
	return result.OK(msgFetched, dto)
}

func (s *service) FindAll(ctx context.Context) result.Result[models.UserDTO] {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return internal[models.UserDTO](s.logger, "list users", err)
	}

	dtos, err := models.ToUserDTOs(users)
	if err != nil {
		return internal[models.UserDTO](s.logger, "map users", err)
	}
	return result.OK(msgListed, dtos...)
}

func (s *service) internal(op string, err error, fields ...zap.Field) result.Result[models.Registration] {
	return internal[models.Registration](s.logger, op, err, fields...)
}

// internal logs err and wraps it as an internal-error result carrying the
// raw error message.
func internal[T any](logger *zap.Logger, op string, err error, fields ...zap.Field) result.Result[T] {
	logger.Error(op+" failed", append(fields, zap.Error(err))...)
	return result.Internal[T](err)
}
