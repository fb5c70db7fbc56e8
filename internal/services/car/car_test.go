package services_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/soccars/car-rental-admin/internal/models"
	services "github.com/soccars/car-rental-admin/internal/services/car"
	"github.com/soccars/car-rental-admin/internal/storage/repository"
)

// Мок для CarRepository
type CarRepoMock struct {
	mock.Mock
}

func (m *CarRepoMock) CreateCar(ctx context.Context, car models.Car) (*models.Car, error) {
	args := m.Called(ctx, car)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Car), args.Error(1)
}

func (m *CarRepoMock) ListCars(ctx context.Context) ([]*models.Car, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Car), args.Error(1)
}

func (m *CarRepoMock) UpdateCar(ctx context.Context, id int64, patch models.UpdateCarRequest) (*models.Car, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Car), args.Error(1)
}

func (m *CarRepoMock) GetCar(ctx context.Context, id int64) (*models.Car, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Car), args.Error(1)
}

func (m *CarRepoMock) RemoveCar(ctx context.Context, id int64) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestCarService_Create(t *testing.T) {
	req := models.CreateCarRequest{
		Name:           "Toyota Corolla",
		CarType:        "sedan",
		AvailableCount: 3,
		RentPerDay:     49.99,
	}

	repo := new(CarRepoMock)
	repo.On("CreateCar", mock.Anything, mock.MatchedBy(func(car models.Car) bool {
		return car.Name == req.Name && car.UserID == int64(42)
	})).Return(&models.Car{ID: 1, Name: req.Name, CarType: req.CarType,
		AvailableCount: req.AvailableCount, RentPerDay: req.RentPerDay, UserID: 42}, nil).Once()

	svc := services.NewCarService(repo, newTestLogger())
	got, err := svc.Create(context.Background(), 42, req)

	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, int64(42), got.UserID)
	repo.AssertExpectations(t)
}

func TestCarService_Update(t *testing.T) {
	newPrice := 50.0
	patch := models.UpdateCarRequest{RentPerDay: &newPrice}

	tests := []struct {
		name       string
		id         int64
		patch      models.UpdateCarRequest
		setupMocks func(r *CarRepoMock)
		wantErr    error
	}{
		{
			name:  "partial update passes patch through",
			id:    5,
			patch: patch,
			setupMocks: func(r *CarRepoMock) {
				r.On("UpdateCar", mock.Anything, int64(5), patch).
					Return(&models.Car{ID: 5, Name: "Toyota Corolla", CarType: "sedan",
						AvailableCount: 3, RentPerDay: 50.0, UserID: 42}, nil).Once()
			},
		},
		{
			name:  "missing car",
			id:    404,
			patch: patch,
			setupMocks: func(r *CarRepoMock) {
				r.On("UpdateCar", mock.Anything, int64(404), patch).
					Return(nil, repository.ErrCarNotFound).Once()
			},
			wantErr: repository.ErrCarNotFound,
		},
		{
			// Пустой патч ничего не меняет и возвращает текущее состояние
			name:  "empty patch reads current state",
			id:    5,
			patch: models.UpdateCarRequest{},
			setupMocks: func(r *CarRepoMock) {
				r.On("GetCar", mock.Anything, int64(5)).
					Return(&models.Car{ID: 5, Name: "Toyota Corolla"}, nil).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(CarRepoMock)
			tt.setupMocks(repo)
			svc := services.NewCarService(repo, newTestLogger())

			got, err := svc.Update(context.Background(), tt.id, tt.patch)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.id, got.ID)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestCarService_Remove(t *testing.T) {
	tests := []struct {
		name       string
		id         int64
		setupMocks func(r *CarRepoMock)
		wantErr    bool
	}{
		{
			name: "existing car deleted",
			id:   5,
			setupMocks: func(r *CarRepoMock) {
				r.On("RemoveCar", mock.Anything, int64(5)).Return(1, nil).Once()
			},
		},
		{
			// Идемпотентность: отсутствующая запись — не ошибка
			name: "missing car is a no-op",
			id:   404,
			setupMocks: func(r *CarRepoMock) {
				r.On("RemoveCar", mock.Anything, int64(404)).Return(0, nil).Once()
			},
		},
		{
			name: "storage failure",
			id:   5,
			setupMocks: func(r *CarRepoMock) {
				r.On("RemoveCar", mock.Anything, int64(5)).Return(0, errors.New("db error")).Once()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(CarRepoMock)
			tt.setupMocks(repo)
			svc := services.NewCarService(repo, newTestLogger())

			err := svc.Remove(context.Background(), tt.id)

			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			repo.AssertExpectations(t)
		})
	}
}
