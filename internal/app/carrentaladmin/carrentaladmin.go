package carrentaladmin

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/soccars/car-rental-admin/internal/config"
	"github.com/soccars/car-rental-admin/internal/lib/jwt"
	"github.com/soccars/car-rental-admin/internal/migrations"
	authservice "github.com/soccars/car-rental-admin/internal/services/auth"
	carservice "github.com/soccars/car-rental-admin/internal/services/car"
	rentalservice "github.com/soccars/car-rental-admin/internal/services/rental"
	"github.com/soccars/car-rental-admin/internal/storage/repository"
)

// App связывает хранилище, сервисы и HTTP-сервер приложения.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
}

// New собирает приложение: подключение к базе, миграции, сервисы и маршруты.
func New(_ context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	jwtMaker := jwt.NewMaker(cfg.JWTSecretKey, cfg.TokenTTL)
	auth := authservice.NewAuthService(db, jwtMaker)
	cars := carservice.NewCarService(db, logger)
	rentals := rentalservice.NewRentalService(db)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, auth, cars, rentals)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его по отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		_ = a.db.DB.Close()
		return err
	}
}
