// Package repository реализует хранилище данных на основе PostgreSQL
// для администрирования проката автомобилей. Предоставляет методы
// работы с пользователями, автопарком и записями аренды.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Ошибки уровня хранилища, по которым вышележащие слои выбирают HTTP-статус.
var (
	// ErrUserNotFound возвращается, когда пользователь отсутствует в базе.
	ErrUserNotFound = errors.New("user not found")
	// ErrCarNotFound возвращается, когда автомобиль отсутствует в базе.
	ErrCarNotFound = errors.New("car not found")
)

// Storage инкапсулирует соединение с базой данных PostgreSQL.
type Storage struct {
	DB *sql.DB
}

// New создаёт подключение к PostgreSQL и проверяет его доступность.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}
