// Package token реализует HTTP-обработчик выдачи токена доступа.
//
// Запрос приходит в формате application/x-www-form-urlencoded с полями
// username (email) и password — классический password flow. При успехе
// возвращается JSON с access_token и token_type "bearer".
package token

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/soccars/car-rental-admin/internal/http/response"
	"github.com/soccars/car-rental-admin/internal/lib/sl"
	"github.com/soccars/car-rental-admin/internal/models"
	authservice "github.com/soccars/car-rental-admin/internal/services/auth"
)

// Handler обрабатывает запросы на выдачу токена доступа.
type Handler struct {
	log  *slog.Logger // Логгер для записи операций и ошибок
	auth Service      // Сервис аутентификации
}

// Service описывает интерфейс бизнес-логики аутентификации.
type Service interface {
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	IssueToken(user *models.User) (string, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, auth Service) *Handler {
	return &Handler{
		log:  log,
		auth: auth,
	}
}

// ServeHTTP godoc
// @Summary Выдача токена доступа
// @Description Аутентифицирует сотрудника по email и паролю (form-data). Возвращает bearer-токен.
// @Tags Auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Email пользователя"
// @Param password formData string true "Пароль"
// @Success 200 {object} map[string]string "access_token и token_type"
// @Failure 400 {object} response.ErrorResponse "Некорректная форма"
// @Failure 401 {object} response.ErrorResponse "Неверные учетные данные"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /token [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.token"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	if err := r.ParseForm(); err != nil {
		log.Error("failed to parse form", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		log.Error("username or password is missing")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("username and password are required"))
		return
	}

	user, err := h.auth.Authenticate(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, authservice.ErrInvalidCredentials) {
			log.Error("authentication failed", slog.String("username", username))
			w.Header().Set("WWW-Authenticate", "Bearer")
			w.WriteHeader(http.StatusUnauthorized)
			render.JSON(w, r, response.Error("Incorrect username or password"))
			return
		}
		log.Error("failed to authenticate user", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("internal service error"))
		return
	}

	accessToken, err := h.auth.IssueToken(user)
	if err != nil {
		log.Error("failed to issue token", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("internal service error"))
		return
	}

	log.Info("issued access token", slog.String("username", username))
	render.JSON(w, r, map[string]string{
		"access_token": accessToken,
		"token_type":   "bearer",
	})
}
