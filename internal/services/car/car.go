// Package services содержит бизнес-логику для управления автопарком.
package services

import (
	"context"
	"log/slog"

	"github.com/soccars/car-rental-admin/internal/models"
)

// CarRepository определяет методы для работы с автомобилями в хранилище.
type CarRepository interface {
	// CreateCar добавляет автомобиль и возвращает его с присвоенным ID.
	CreateCar(ctx context.Context, car models.Car) (*models.Car, error)
	// ListCars возвращает все автомобили.
	ListCars(ctx context.Context) ([]*models.Car, error)
	// UpdateCar применяет частичное обновление и возвращает запись после него.
	UpdateCar(ctx context.Context, id int64, patch models.UpdateCarRequest) (*models.Car, error)
	// GetCar возвращает автомобиль по ID.
	GetCar(ctx context.Context, id int64) (*models.Car, error)
	// RemoveCar удаляет автомобиль по ID, возвращает количество удалённых строк.
	RemoveCar(ctx context.Context, id int64) (int, error)
}

// CarService реализует операции над автопарком, доступные администраторам.
type CarService struct {
	repo CarRepository
	log  *slog.Logger
}

// NewCarService создает новый экземпляр CarService.
func NewCarService(repo CarRepository, log *slog.Logger) *CarService {
	return &CarService{
		repo: repo,
		log:  log,
	}
}

// Create добавляет автомобиль от имени администратора adminID.
// Уникальность названия не требуется.
func (s *CarService) Create(ctx context.Context, adminID int64, req models.CreateCarRequest) (*models.Car, error) {
	car := models.Car{
		Name:           req.Name,
		CarType:        req.CarType,
		AvailableCount: req.AvailableCount,
		RentPerDay:     req.RentPerDay,
		UserID:         adminID,
	}
	created, err := s.repo.CreateCar(ctx, car)
	if err != nil {
		return nil, err
	}
	s.log.Info("created new car", slog.Int64("id", created.ID), slog.String("name", created.Name))
	return created, nil
}

// List возвращает все автомобили без пагинации и гарантий порядка.
func (s *CarService) List(ctx context.Context) ([]*models.Car, error) {
	return s.repo.ListCars(ctx)
}

// Update применяет частичное обновление: меняются только переданные поля.
// Пустой патч не трогает запись и просто возвращает её текущее состояние.
// Возвращает repository.ErrCarNotFound, если автомобиля нет.
func (s *CarService) Update(ctx context.Context, id int64, patch models.UpdateCarRequest) (*models.Car, error) {
	if patch.IsEmpty() {
		return s.repo.GetCar(ctx, id)
	}
	updated, err := s.repo.UpdateCar(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.log.Info("updated car", slog.Int64("id", updated.ID))
	return updated, nil
}

// Remove удаляет автомобиль. Удаление идемпотентно: отсутствие записи
// не является ошибкой.
func (s *CarService) Remove(ctx context.Context, id int64) error {
	deleted, err := s.repo.RemoveCar(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		s.log.Info("car already absent", slog.Int64("id", id))
	} else {
		s.log.Info("deleted car", slog.Int64("id", id))
	}
	return nil
}
