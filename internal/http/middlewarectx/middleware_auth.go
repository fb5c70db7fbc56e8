// Package middlewarectx содержит HTTP middleware защищённой группы маршрутов.
//
// AdminMiddleware проверяет наличие и валидность токена в заголовке Authorization,
// разрешает по нему пользователя и требует активного администратора.
// В случае успеха кладёт пользователя в контекст запроса для обработчиков.
//
// Непригодный токен или неизвестный субъект дают HTTP 401, валидный токен
// отключённого пользователя или не-администратора — HTTP 403.
package middlewarectx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/soccars/car-rental-admin/internal/http/response"
	"github.com/soccars/car-rental-admin/internal/lib/sl"
	"github.com/soccars/car-rental-admin/internal/models"
	authservice "github.com/soccars/car-rental-admin/internal/services/auth"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

// CurrentUser — ключ, под которым в контексте лежит *models.User,
// прошедший проверку активного администратора.
const CurrentUser Key = "current_user"

// Service описывает интерфейс сервиса авторизации для middleware.
type Service interface {
	RequireActiveAdmin(ctx context.Context, token string) (*models.User, error)
}

// UserFromContext достаёт текущего пользователя из контекста запроса.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(CurrentUser).(*models.User)
	return user, ok
}

// AdminMiddleware возвращает HTTP middleware, который пускает дальше
// только активных администраторов с валидным токеном.
func AdminMiddleware(auth Service, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.AdminMiddleware"
			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				log.Error("missing or invalid authorization header")
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("missing or invalid authorization header"))
				return
			}
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

			user, err := auth.RequireActiveAdmin(r.Context(), tokenStr)
			if err != nil {
				switch {
				case errors.Is(err, authservice.ErrInactiveUser),
					errors.Is(err, authservice.ErrNotAdmin):
					log.Error("access denied", sl.Err(err))
					w.WriteHeader(http.StatusForbidden)
					render.JSON(w, r, response.Error(err.Error()))
				case errors.Is(err, authservice.ErrInvalidToken),
					errors.Is(err, authservice.ErrUserNotFound):
					log.Error("invalid or expired token", sl.Err(err))
					w.WriteHeader(http.StatusUnauthorized)
					render.JSON(w, r, response.Error("invalid or expired token"))
				default:
					log.Error("failed to resolve current user", sl.Err(err))
					w.WriteHeader(http.StatusInternalServerError)
					render.JSON(w, r, response.Error("internal service error"))
				}
				return
			}

			ctx := context.WithValue(r.Context(), CurrentUser, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
