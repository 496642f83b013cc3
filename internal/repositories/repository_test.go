package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"quicksend/internal/models"
	"quicksend/internal/repositories/cache"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var userColumns = []string{"id", "first_name", "last_name", "email", "phone_number", "password", "date_of_birth", "age"}

func newMockDB(t *testing.T, matcher sqlmock.QueryMatcher) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(matcher))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:                 logger.Discard,
		TranslateError:         true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db, mock
}

func newTestCache(t *testing.T) (*cache.CacheService, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return cache.NewCacheService(client, time.Minute), mr
}

func userRow(id uint, email string) *sqlmock.Rows {
	return sqlmock.NewRows(userColumns).AddRow(
		id, "Ada", "Obi", email, "+2348012345678", "hash",
		time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC), 34,
	)
}

func TestUserRepository_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit skips the database", func(t *testing.T) {
		db, mock := newMockDB(t, sqlmock.QueryMatcherRegexp)
		c, _ := newTestCache(t)
		require.NoError(t, c.CacheUser(ctx, &models.User{ID: 7, Email: "ada@example.com"}))

		got, err := NewUserRepository(db, c, zap.NewNop()).GetByID(ctx, 7)

		require.NoError(t, err)
		assert.Equal(t, "ada@example.com", got.Email)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("miss loads and fills the cache", func(t *testing.T) {
		db, mock := newMockDB(t, sqlmock.QueryMatcherRegexp)
		c, mr := newTestCache(t)
		mock.ExpectQuery(`SELECT \* FROM "users" WHERE "users"\."id" = \$1`).
			WillReturnRows(userRow(7, "ada@example.com"))

		repo := NewUserRepository(db, c, zap.NewNop())
		got, err := repo.GetByID(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, uint(7), got.ID)
		assert.Equal(t, "hash", got.Password)
		assert.True(t, mr.Exists("user:id:7"))

		again, err := repo.GetByID(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, "ada@example.com", again.Email)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row is ErrUserNotFound", func(t *testing.T) {
		db, mock := newMockDB(t, sqlmock.QueryMatcherRegexp)
		c, mr := newTestCache(t)
		mock.ExpectQuery(`SELECT \* FROM "users"`).WillReturnRows(sqlmock.NewRows(userColumns))

		_, err := NewUserRepository(db, c, zap.NewNop()).GetByID(ctx, 99)

		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.False(t, mr.Exists("user:id:99"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("works without a cache", func(t *testing.T) {
		db, mock := newMockDB(t, sqlmock.QueryMatcherRegexp)
		mock.ExpectQuery(`SELECT \* FROM "users"`).WillReturnRows(userRow(3, "obi@example.com"))

		got, err := NewUserRepository(db, nil, zap.NewNop()).GetByID(ctx, 3)

		require.NoError(t, err)
		assert.Equal(t, "obi@example.com", got.Email)
	})
}

func TestUserRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("fills in the id", func(t *testing.T) {
		db, mock := newMockDB(t, sqlmock.QueryMatcherRegexp)
		mock.ExpectQuery(`INSERT INTO "users"`).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(12))

		u := &models.User{FirstName: "Ada", Email: "ada@example.com", PhoneNumber: "+2348012345678", Password: "hash"}
		require.NoError(t, NewUserRepository(db, nil, zap.NewNop()).Create(ctx, u))

		assert.Equal(t, uint(12), u.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique violation is ErrDuplicateUser", func(t *testing.T) {
		db, mock := newMockDB(t, sqlmock.QueryMatcherRegexp)
		mock.ExpectQuery(`INSERT INTO "users"`).
			WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})

		err := NewUserRepository(db, nil, zap.NewNop()).Create(ctx, &models.User{Email: "ada@example.com"})

		assert.ErrorIs(t, err, ErrDuplicateUser)
	})

	t.Run("other failures are wrapped", func(t *testing.T) {
		db, mock := newMockDB(t, sqlmock.QueryMatcherRegexp)
		mock.ExpectQuery(`INSERT INTO "users"`).WillReturnError(errors.New("connection reset"))

		err := NewUserRepository(db, nil, zap.NewNop()).Create(ctx, &models.User{Email: "ada@example.com"})

		assert.EqualError(t, err, "create user: connection reset")
	})
}

func TestUserRepository_Save(t *testing.T) {
	ctx := context.Background()

	// Save must leave the stored hash alone since cached users have none.
	noPassword := sqlmock.QueryMatcherFunc(func(expectedSQL, actualSQL string) error {
		if strings.Contains(actualSQL, `"password"`) {
			return fmt.Errorf("password column written by %q", actualSQL)
		}
		return sqlmock.QueryMatcherRegexp.Match(expectedSQL, actualSQL)
	})

	t.Run("invalidates the cached user", func(t *testing.T) {
		db, mock := newMockDB(t, noPassword)
		c, mr := newTestCache(t)
		u := &models.User{ID: 4, FirstName: "Adaeze", Email: "adaeze@example.com", PhoneNumber: "+2348012345678"}
		require.NoError(t, c.CacheUser(ctx, u))
		mock.ExpectExec(`UPDATE "users" SET`).WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, NewUserRepository(db, c, zap.NewNop()).Save(ctx, u))

		assert.False(t, mr.Exists("user:id:4"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique violation keeps the cache entry", func(t *testing.T) {
		db, mock := newMockDB(t, noPassword)
		c, mr := newTestCache(t)
		u := &models.User{ID: 4, Email: "taken@example.com"}
		require.NoError(t, c.CacheUser(ctx, u))
		mock.ExpectExec(`UPDATE "users" SET`).WillReturnError(&pgconn.PgError{Code: "23505"})

		err := NewUserRepository(db, c, zap.NewNop()).Save(ctx, u)

		assert.ErrorIs(t, err, ErrDuplicateUser)
		assert.True(t, mr.Exists("user:id:4"))
	})
}

func TestUserRepository_Exists(t *testing.T) {
	ctx := context.Background()
	db, mock := newMockDB(t, sqlmock.QueryMatcherRegexp)
	repo := NewUserRepository(db, nil, zap.NewNop())

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE email = \$1`).
		WithArgs("ada@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE phone_number = \$1`).
		WithArgs("+2348012345678").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	taken, err := repo.ExistsByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = repo.ExistsByPhone(ctx, "+2348012345678")
	require.NoError(t, err)
	assert.False(t, taken)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindAll(t *testing.T) {
	ctx := context.Background()
	db, mock := newMockDB(t, sqlmock.QueryMatcherRegexp)

	rows := sqlmock.NewRows(userColumns).
		AddRow(1, "Ada", "Obi", "ada@example.com", "+2348012345678", "h1", time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC), 34).
		AddRow(2, "Chidi", "Eze", "chidi@example.com", "+2348098765432", "h2", time.Date(1988, 5, 2, 0, 0, 0, 0, time.UTC), 36)
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE .* ORDER BY id`).WillReturnRows(rows)

	users, err := NewUserRepository(db, nil, zap.NewNop()).FindAll(ctx)

	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "chidi@example.com", users[1].Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("caches the new wallet", func(t *testing.T) {
		db, mock := newMockDB(t, sqlmock.QueryMatcherRegexp)
		c, mr := newTestCache(t)
		mock.ExpectQuery(`INSERT INTO "wallets"`).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))

		w := &models.Wallet{UserID: 3, Currency: "USD", Status: models.WalletStatusActive}
		require.NoError(t, NewWalletRepository(db, c, zap.NewNop()).Create(ctx, w))

		assert.Equal(t, uint(9), w.ID)
		assert.True(t, w.Balance.IsZero())
		assert.True(t, mr.Exists("wallet:user:3"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique violation is ErrDuplicateWallet", func(t *testing.T) {
		db, mock := newMockDB(t, sqlmock.QueryMatcherRegexp)
		c, mr := newTestCache(t)
		mock.ExpectQuery(`INSERT INTO "wallets"`).WillReturnError(&pgconn.PgError{Code: "23505"})

		err := NewWalletRepository(db, c, zap.NewNop()).Create(ctx, &models.Wallet{UserID: 3})

		assert.ErrorIs(t, err, ErrDuplicateWallet)
		assert.False(t, mr.Exists("wallet:user:3"))
	})
}

func TestWalletRepository_GetByUserID(t *testing.T) {
	ctx := context.Background()
	walletColumns := []string{"id", "user_id", "balance", "currency", "status"}

	t.Run("cache hit skips the database", func(t *testing.T) {
		db, mock := newMockDB(t, sqlmock.QueryMatcherRegexp)
		c, _ := newTestCache(t)
		require.NoError(t, c.CacheWallet(ctx, &models.Wallet{ID: 9, UserID: 3, Currency: "USD"}))

		got, err := NewWalletRepository(db, c, zap.NewNop()).GetByUserID(ctx, 3)

		require.NoError(t, err)
		assert.Equal(t, uint(9), got.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("miss loads and fills the cache", func(t *testing.T) {
		db, mock := newMockDB(t, sqlmock.QueryMatcherRegexp)
		c, mr := newTestCache(t)
		mock.ExpectQuery(`SELECT \* FROM "wallets" WHERE user_id = \$1`).
			WillReturnRows(sqlmock.NewRows(walletColumns).AddRow(9, 3, "0.00", "USD", "active"))

		got, err := NewWalletRepository(db, c, zap.NewNop()).GetByUserID(ctx, 3)

		require.NoError(t, err)
		assert.Equal(t, "USD", got.Currency)
		assert.True(t, mr.Exists("wallet:user:3"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row is ErrWalletNotFound", func(t *testing.T) {
		db, mock := newMockDB(t, sqlmock.QueryMatcherRegexp)
		mock.ExpectQuery(`SELECT \* FROM "wallets"`).WillReturnRows(sqlmock.NewRows(walletColumns))

		_, err := NewWalletRepository(db, nil, zap.NewNop()).GetByUserID(ctx, 3)

		assert.ErrorIs(t, err, ErrWalletNotFound)
	})
}

func TestWalletRepository_GetByIDAndExists(t *testing.T) {
	ctx := context.Background()
	db, mock := newMockDB(t, sqlmock.QueryMatcherRegexp)
	repo := NewWalletRepository(db, nil, zap.NewNop())

	mock.ExpectQuery(`SELECT \* FROM "wallets" WHERE "wallets"\."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "wallets" WHERE user_id = \$1`).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	_, err := repo.GetByID(ctx, 42)
	assert.ErrorIs(t, err, ErrWalletNotFound)

	exists, err := repo.ExistsByUserID(ctx, 3)
	require.NoError(t, err)
	assert.True(t, exists)

	assert.NoError(t, mock.ExpectationsWereMet())
}
