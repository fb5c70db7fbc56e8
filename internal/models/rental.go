package models

import "time"

// UserRental представляет собой факт аренды автомобиля пользователем.
// Поле RentalEndDate может быть nil — это означает, что аренда ещё не завершена.
// Записи создаются и завершаются внешним сервисом, здесь только читаются.
type UserRental struct {
	ID            int64      // Уникальный идентификатор
	UserID        int64      // Идентификатор арендатора
	CarID         int64      // Идентификатор автомобиля
	RentalStarted time.Time  // Дата и время начала аренды
	RentalEndDate *time.Time // Дата завершения аренды, nil для активной
}

// RentalView — представление аренды в ответах API.
type RentalView struct {
	ID            int64      `json:"id"`
	UserID        int64      `json:"user_id"`
	CarID         int64      `json:"car_id"`
	RentalStarted time.Time  `json:"rental_started"`
	RentalEndDate *time.Time `json:"rental_end_date"`
}

// NewRentalView конвертирует доменную модель в представление для API.
func NewRentalView(r *UserRental) RentalView {
	return RentalView{
		ID:            r.ID,
		UserID:        r.UserID,
		CarID:         r.CarID,
		RentalStarted: r.RentalStarted,
		RentalEndDate: r.RentalEndDate,
	}
}
