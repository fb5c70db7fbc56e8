// Package models содержит доменную модель пользователя системы,
// включающую данные учётной записи, хэш пароля и признаки доступа.
// Структуры используются в бизнес‑логике и при работе с хранилищем.
package models

// User представляет сотрудника или клиента сервиса проката.
type User struct {
	ID           int64  // Уникальный идентификатор пользователя
	Name         string // Имя пользователя
	Email        string // Электронная почта (уникальная)
	PhoneNumber  string // Номер телефона
	Address      string // Адрес
	PasswordHash string // Хэш пароля пользователя
	IsAdmin      bool   // Признак администратора
	IsActive     bool   // Активна ли учётная запись, неактивным вход запрещён
}

// CreateUserRequest используется для приёма данных из JSON-запроса
// при создании администратора.
type CreateUserRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phone_number" validate:"required"`
	Address     string `json:"address" validate:"required"`
	Password    string `json:"password" validate:"required,min=6"`
}

// UserView — представление пользователя в ответах API, без хэша пароля.
type UserView struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
	IsAdmin     bool   `json:"is_admin"`
	IsActive    bool   `json:"is_active"`
}

// NewUserView конвертирует доменную модель в представление для API.
func NewUserView(u *User) UserView {
	return UserView{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Address:     u.Address,
		IsAdmin:     u.IsAdmin,
		IsActive:    u.IsActive,
	}
}
