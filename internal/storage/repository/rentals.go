package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/soccars/car-rental-admin/internal/models"
)

// ListPendingRentals возвращает незавершённые аренды (rental_end_date IS NULL),
// самые свежие по началу аренды — первыми.
func (s *Storage) ListPendingRentals(ctx context.Context) ([]*models.UserRental, error) {
	const op = "storage.ListPendingRentals"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_id, car_id, rental_started, rental_end_date
			  FROM user_rentals
			  WHERE rental_end_date IS NULL
			  ORDER BY rental_started DESC`
	return s.listRentals(ctx, op, query)
}

// ListCompletedRentals возвращает завершённые аренды (rental_end_date IS NOT NULL),
// самые свежие по началу аренды — первыми.
func (s *Storage) ListCompletedRentals(ctx context.Context) ([]*models.UserRental, error) {
	const op = "storage.ListCompletedRentals"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_id, car_id, rental_started, rental_end_date
			  FROM user_rentals
			  WHERE rental_end_date IS NOT NULL
			  ORDER BY rental_started DESC`
	return s.listRentals(ctx, op, query)
}

func (s *Storage) listRentals(ctx context.Context, op, query string) ([]*models.UserRental, error) {
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.UserRental
	for rows.Next() {
		var item models.UserRental
		var endDate sql.NullTime
		if err = rows.Scan(&item.ID, &item.UserID, &item.CarID,
			&item.RentalStarted, &endDate); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if endDate.Valid {
			item.RentalEndDate = &endDate.Time
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
