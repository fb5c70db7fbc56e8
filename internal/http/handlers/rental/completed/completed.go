// Package completed реализует HTTP-обработчик списка завершённых аренд.
package completed

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
	ListCompleted(ctx context.Context) ([]*models.UserRental, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Завершённые аренды
// @Description Аренды с датой завершения, новые по началу аренды — первыми.
// @Tags Rentals
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.RentalView
// @Failure 401 {object} response.ErrorResponse "Нет или непригоден токен"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Router /user/completed-rentals [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.rental.completed"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	rentals, err := h.service.ListCompleted(r.Context())
	if err != nil {
		log.Error("failed to list completed rentals", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list rentals"))
		return
	}

	views := make([]models.RentalView, 0, len(rentals))
	for _, rental := range rentals {
		views = append(views, models.NewRentalView(rental))
	}
	render.JSON(w, r, views)
}
