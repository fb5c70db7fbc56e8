// Package carrentaladmin предоставляет маршруты для основного приложения.
package carrentaladmin

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	admincreate "github.com/soccars/car-rental-admin/internal/http/handlers/admin/create"
	adminlist "github.com/soccars/car-rental-admin/internal/http/handlers/admin/list"
	"github.com/soccars/car-rental-admin/internal/http/handlers/auth/token"
	carcreate "github.com/soccars/car-rental-admin/internal/http/handlers/car/create"
	carlist "github.com/soccars/car-rental-admin/internal/http/handlers/car/list"
	carremove "github.com/soccars/car-rental-admin/internal/http/handlers/car/remove"
	carupdate "github.com/soccars/car-rental-admin/internal/http/handlers/car/update"
	"github.com/soccars/car-rental-admin/internal/http/handlers/health"
	rentalcompleted "github.com/soccars/car-rental-admin/internal/http/handlers/rental/completed"
	rentalpending "github.com/soccars/car-rental-admin/internal/http/handlers/rental/pending"
	"github.com/soccars/car-rental-admin/internal/http/middlewarectx"
	authservice "github.com/soccars/car-rental-admin/internal/services/auth"
	carservice "github.com/soccars/car-rental-admin/internal/services/car"
	rentalservice "github.com/soccars/car-rental-admin/internal/services/rental"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, auth *authservice.AuthService,
	cars *carservice.CarService, rentals *rentalservice.RentalService) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	// Открытые конечные точки
	r.Post("/token", token.New(logger, auth).ServeHTTP)
	r.Post("/admins/create", admincreate.New(logger, auth).ServeHTTP)
	r.Get("/health", health.New(logger).ServeHTTP)

	// Группа для активных администраторов
	r.Group(func(r chi.Router) {
		r.Use(middlewarectx.AdminMiddleware(auth, logger))
		r.Use(middlewarectx.RateLimitMiddleware(logger))
		r.Get("/admins", adminlist.New(logger, auth).ServeHTTP)
		r.Post("/car/create", carcreate.New(logger, cars).ServeHTTP)
		r.Get("/cars", carlist.New(logger, cars).ServeHTTP)
		r.Patch("/car/{id}/update", carupdate.New(logger, cars).ServeHTTP)
		r.Delete("/car/{id}/delete", carremove.New(logger, cars).ServeHTTP)
		r.Get("/user/pending-rentals", rentalpending.New(logger, rentals).ServeHTTP)
		r.Get("/user/completed-rentals", rentalcompleted.New(logger, rentals).ServeHTTP)
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
