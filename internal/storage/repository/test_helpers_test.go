package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/soccars/car-rental-admin/internal/migrations"
)

// setupTestDatabase поднимает контейнер PostgreSQL, применяет миграции
// и возвращает готовое хранилище с функцией очистки.
func setupTestDatabase(t *testing.T) (*Storage, func()) {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("user"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	storage, err := New(dsn)
	require.NoError(t, err)

	migrationsPath, err := filepath.Abs("../../../migrations")
	require.NoError(t, err)
	require.NoError(t, migrations.Run(storage.DB, migrationsPath))

	cleanup := func() {
		_ = storage.DB.Close()
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	}

	return storage, cleanup
}

// TestDataFactory содержит методы для создания тестовых данных
type TestDataFactory struct {
	storage *Storage
}

// NewTestDataFactory создает новую фабрику тестовых данных
func NewTestDataFactory(storage *Storage) *TestDataFactory {
	return &TestDataFactory{storage: storage}
}

// CreateUser создает тестового пользователя и возвращает его ID
func (f *TestDataFactory) CreateUser(t *testing.T, name, email, passwordHash string, isAdmin, isActive bool) int64 {
	t.Helper()
	var id int64
	err := f.storage.DB.QueryRow(`INSERT INTO users
		(name, email, phone_number, address, password_hash, is_admin, is_active)
		VALUES ($1, $2, '', '', $3, $4, $5) RETURNING id`,
		name, email, passwordHash, isAdmin, isActive).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateCar создает тестовый автомобиль и возвращает его ID
func (f *TestDataFactory) CreateCar(t *testing.T, name, carType string, availableCount int, rentPerDay float64, userID int64) int64 {
	t.Helper()
	var id int64
	err := f.storage.DB.QueryRow(`INSERT INTO cars
		(name, car_type, available_count, rent_per_day, user_id)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		name, carType, availableCount, rentPerDay, userID).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateRental создает тестовую запись аренды и возвращает её ID
func (f *TestDataFactory) CreateRental(t *testing.T, userID, carID int64, started time.Time, endDate *time.Time) int64 {
	t.Helper()
	var id int64
	err := f.storage.DB.QueryRow(`INSERT INTO user_rentals
		(user_id, car_id, rental_started, rental_end_date)
		VALUES ($1, $2, $3, $4) RETURNING id`,
		userID, carID, started, endDate).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateAdminWithCar создает администратора и автомобиль за один вызов
func (f *TestDataFactory) CreateAdminWithCar(t *testing.T) (adminID, carID int64) {
	t.Helper()
	adminID = f.CreateUser(t, "Test Admin", "admin@rental.example", "hashedpassword", true, true)
	carID = f.CreateCar(t, "Toyota Corolla", "sedan", 3, 49.99, adminID)
	return adminID, carID
}
