// Package list реализует HTTP-обработчик списка администраторов.
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
	ListAdmins(ctx context.Context) ([]*models.User, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список администраторов
// @Tags Admins
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.UserView
// @Failure 401 {object} response.ErrorResponse "Нет или непригоден токен"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Router /admins [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	admins, err := h.service.ListAdmins(r.Context())
	if err != nil {
		log.Error("failed to list admins", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list admins"))
		return
	}

	views := make([]models.UserView, 0, len(admins))
	for _, u := range admins {
		views = append(views, models.NewUserView(u))
	}
	render.JSON(w, r, views)
}
