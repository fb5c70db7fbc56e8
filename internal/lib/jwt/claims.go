// Package jwt реализует генерацию и парсинг JWT токенов доступа.
//
// Токен переносит только субъект (email пользователя) и срок действия;
// состояние на сервере не хранится, отзыв токена не поддерживается —
// токен перестаёт действовать только по истечении срока.
package jwt

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims описывает данные, хранящиеся в токене доступа.
// Subject стандартного набора claims содержит email пользователя.
type Claims struct {
	jwt.RegisteredClaims
}

// Maker описывает интерфейс для генерации и парсинга токенов доступа.
type Maker interface {
	// GenerateToken выпускает подписанный токен для субъекта (email).
	GenerateToken(subject string) (string, error)
	// ParseToken проверяет подпись и срок действия, возвращает claims.
	ParseToken(tokenStr string) (*Claims, error)
}
