// Package list реализует HTTP-обработчик списка автомобилей автопарка.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/soccars/car-rental-admin/internal/http/response"
	"github.com/soccars/car-rental-admin/internal/lib/sl"
	"github.com/soccars/car-rental-admin/internal/models"
)

type Handler struct {
	log     *slog.Logger
	service Service
}

type Service interface {
	List(ctx context.Context) ([]*models.Car, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список автомобилей
// @Tags Cars
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.CarView
// @Failure 401 {object} response.ErrorResponse "Нет или непригоден токен"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Router /cars [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.car.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	cars, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list cars", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list cars"))
		return
	}

	views := make([]models.CarView, 0, len(cars))
	for _, c := range cars {
		views = append(views, models.NewCarView(c))
	}
	render.JSON(w, r, views)
}
