// Package models содержит доменные структуры, описывающие автомобиль автопарка,
// а также вспомогательные типы для работы с данными из JSON-запросов.
package models

// Car представляет автомобиль, доступный для аренды.
type Car struct {
	ID             int64   // Уникальный идентификатор
	Name           string  // Название модели
	CarType        string  // Тип кузова (sedan, suv и т.д.)
	AvailableCount int     // Количество доступных машин, не может быть отрицательным
	RentPerDay     float64 // Стоимость аренды за день
	UserID         int64   // Идентификатор администратора, создавшего запись
}

// CreateCarRequest используется для приёма данных из JSON-запроса
// при добавлении автомобиля.
type CreateCarRequest struct {
	Name           string  `json:"name" validate:"required"`
	CarType        string  `json:"car_type" validate:"required"`
	AvailableCount int     `json:"available_count" validate:"gte=0"`
	RentPerDay     float64 `json:"rent_per_day" validate:"required,gt=0"`
}

// UpdateCarRequest — частичное обновление автомобиля.
// Поля-указатели: nil означает "поле не передано, не трогать".
type UpdateCarRequest struct {
	Name           *string  `json:"name,omitempty" validate:"omitempty,min=1"`
	CarType        *string  `json:"car_type,omitempty" validate:"omitempty,min=1"`
	AvailableCount *int     `json:"available_count,omitempty" validate:"omitempty,gte=0"`
	RentPerDay     *float64 `json:"rent_per_day,omitempty" validate:"omitempty,gt=0"`
}

// IsEmpty сообщает, что в запросе не передано ни одного поля.
func (r UpdateCarRequest) IsEmpty() bool {
	return r.Name == nil && r.CarType == nil && r.AvailableCount == nil && r.RentPerDay == nil
}

// CarView — представление автомобиля в ответах API.
type CarView struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	CarType        string  `json:"car_type"`
	AvailableCount int     `json:"available_count"`
	RentPerDay     float64 `json:"rent_per_day"`
	UserID         int64   `json:"user_id"`
}

// NewCarView конвертирует доменную модель в представление для API.
func NewCarView(c *Car) CarView {
	return CarView{
		ID:             c.ID,
		Name:           c.Name,
		CarType:        c.CarType,
		AvailableCount: c.AvailableCount,
		RentPerDay:     c.RentPerDay,
		UserID:         c.UserID,
	}
}
