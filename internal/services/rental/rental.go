// Package services содержит бизнес-логику чтения записей аренды.
// Записи создаются и завершаются внешним сервисом, здесь только
// разбиение на незавершённые и завершённые.
package services

import (
	"context"

	"github.com/soccars/car-rental-admin/internal/models"
)

// RentalRepository определяет методы чтения записей аренды из хранилища.
type RentalRepository interface {
	ListPendingRentals(ctx context.Context) ([]*models.UserRental, error)
	ListCompletedRentals(ctx context.Context) ([]*models.UserRental, error)
}

// RentalService отдаёт записи аренды, разбитые по признаку завершённости.
type RentalService struct {
	repo RentalRepository
}

// NewRentalService создает новый экземпляр RentalService.
func NewRentalService(repo RentalRepository) *RentalService {
	return &RentalService{repo: repo}
}

// ListPending возвращает незавершённые аренды, новые — первыми.
func (s *RentalService) ListPending(ctx context.Context) ([]*models.UserRental, error) {
	return s.repo.ListPendingRentals(ctx)
}

// ListCompleted возвращает завершённые аренды, новые — первыми.
func (s *RentalService) ListCompleted(ctx context.Context) ([]*models.UserRental, error) {
	return s.repo.ListCompletedRentals(ctx)
}
