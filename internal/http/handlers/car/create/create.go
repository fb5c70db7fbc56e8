// Package create реализует HTTP-обработчик добавления автомобиля в автопарк.
//
// Handler принимает JSON-запрос с данными автомобиля, валидирует их,
// извлекает текущего администратора из контекста запроса и возвращает
// представление созданной записи.
package create

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/soccars/car-rental-admin/internal/http/middlewarectx"
	"github.com/soccars/car-rental-admin/internal/http/response"
	"github.com/soccars/car-rental-admin/internal/lib/sl"
	"github.com/soccars/car-rental-admin/internal/models"
)

// Handler управляет HTTP-запросами на добавление автомобилей.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики автопарка
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики добавления автомобиля.
type Service interface {
	Create(ctx context.Context, adminID int64, req models.CreateCarRequest) (*models.Car, error)
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
// @Summary Добавить автомобиль
// @Description Добавляет автомобиль в автопарк от имени текущего администратора.
// @Tags Cars
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateCarRequest true "Данные автомобиля"
// @Success 200 {object} models.CarView "Созданная запись"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Нет или непригоден токен"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Router /car/create [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.car.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.CreateCarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.Any("request", req))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	admin, ok := middlewarectx.UserFromContext(r.Context())
	if !ok {
		log.Error("current user not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	car, err := h.service.Create(r.Context(), admin.ID, req)
	if err != nil {
		log.Error("failed to create car", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create car"))
		return
	}

	log.Info("created new car", slog.Int64("id", car.ID))
	render.JSON(w, r, models.NewCarView(car))
}
