// Package create реализует HTTP-обработчик создания администратора.
//
// Handler принимает JSON-запрос с данными учётной записи, валидирует их,
// вызывает онбординг через сервис авторизации и возвращает представление
// созданного пользователя. Занятый email даёт HTTP 400.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/soccars/car-rental-admin/internal/http/response"
	"github.com/soccars/car-rental-admin/internal/lib/sl"
	"github.com/soccars/car-rental-admin/internal/models"
	authservice "github.com/soccars/car-rental-admin/internal/services/auth"
)

// Handler управляет HTTP-запросами на создание администраторов.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики онбординга
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики создания администратора.
type Service interface {
	RegisterAdmin(ctx context.Context, req models.CreateUserRequest) (*models.User, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Создать администратора
// @Description Создает учётную запись администратора. Email должен быть свободен.
// @Tags Admins
// @Accept json
// @Produce json
// @Param request body models.CreateUserRequest true "Данные новой учётной записи"
// @Success 200 {object} models.UserView "Созданный пользователь"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или занятый email"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /admins/create [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.String("email", req.Email))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	user, err := h.service.RegisterAdmin(r.Context(), req)
	if err != nil {
		if errors.Is(err, authservice.ErrEmailTaken) {
			log.Error("email already taken", slog.String("email", req.Email))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("User with this email already exist"))
			return
		}
		log.Error("failed to create admin", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create admin"))
		return
	}

	log.Info("created new admin", slog.Int64("id", user.ID))
	render.JSON(w, r, models.NewUserView(user))
}
