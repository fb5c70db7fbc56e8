package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/soccars/car-rental-admin/internal/models"
)

// CreateCar вставляет новую запись автомобиля и возвращает её с присвоенным ID.
func (s *Storage) CreateCar(ctx context.Context, car models.Car) (*models.Car, error) {
	const op = "storage.CreateCar"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO cars (name, car_type, available_count, rent_per_day, user_id)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id`
	if err := s.DB.QueryRowContext(ctx, query,
		car.Name, car.CarType, car.AvailableCount, car.RentPerDay, car.UserID).Scan(&car.ID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &car, nil
}

// ListCars возвращает список всех автомобилей автопарка.
func (s *Storage) ListCars(ctx context.Context) ([]*models.Car, error) {
	const op = "storage.ListCars"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, car_type, available_count, rent_per_day, user_id
			  FROM cars`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Car
	for rows.Next() {
		var item models.Car
		if err = rows.Scan(&item.ID, &item.Name, &item.CarType,
			&item.AvailableCount, &item.RentPerDay, &item.UserID); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateCar применяет частичное обновление: непереданные поля (nil) остаются
// прежними за счёт COALESCE. Возвращает запись после обновления или
// ErrCarNotFound, если автомобиля с таким ID нет.
func (s *Storage) UpdateCar(ctx context.Context, id int64, patch models.UpdateCarRequest) (*models.Car, error) {
	const op = "storage.UpdateCar"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE cars
			  SET name = COALESCE($1, name),
			      car_type = COALESCE($2, car_type),
			      available_count = COALESCE($3, available_count),
			      rent_per_day = COALESCE($4, rent_per_day)
			  WHERE id = $5
			  RETURNING id, name, car_type, available_count, rent_per_day, user_id`
	var result models.Car
	row := s.DB.QueryRowContext(ctx, query,
		patch.Name, patch.CarType, patch.AvailableCount, patch.RentPerDay, id)
	if err := row.Scan(&result.ID, &result.Name, &result.CarType,
		&result.AvailableCount, &result.RentPerDay, &result.UserID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrCarNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// GetCar возвращает автомобиль по его ID или ErrCarNotFound.
func (s *Storage) GetCar(ctx context.Context, id int64) (*models.Car, error) {
	const op = "storage.GetCar"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, car_type, available_count, rent_per_day, user_id
			  FROM cars WHERE id = $1`
	var result models.Car
	row := s.DB.QueryRowContext(ctx, query, id)
	if err := row.Scan(&result.ID, &result.Name, &result.CarType,
		&result.AvailableCount, &result.RentPerDay, &result.UserID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrCarNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// RemoveCar удаляет автомобиль по ID и возвращает количество удалённых строк.
// Отсутствие записи ошибкой не считается.
func (s *Storage) RemoveCar(ctx context.Context, id int64) (int, error) {
	const op = "storage.RemoveCar"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM cars WHERE id = $1`
	result, err := s.DB.ExecContext(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}
