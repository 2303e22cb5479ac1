package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/ShadowMirage/Freight-Management/api"
	"github.com/ShadowMirage/Freight-Management/config"
	"github.com/ShadowMirage/Freight-Management/internal/service/booking"
	"github.com/ShadowMirage/Freight-Management/internal/service/loads"
	"github.com/ShadowMirage/Freight-Management/internal/service/matching"
	"github.com/ShadowMirage/Freight-Management/internal/service/trucks"
	"github.com/ShadowMirage/Freight-Management/internal/service/users"
	"github.com/gin-gonic/gin"
)

type Services struct {
	Trucks   trucks.TruckUseCase
	Loads    loads.LoadUseCase
	Bookings booking.BookingUseCase
	Matching matching.MatchingUseCase
	Users    users.UserUseCase
}

// Run starts the HTTP server and blocks until the context is canceled or the
// server fails.
func Run(ctx context.Context, cfg *config.Config, svc Services) error {
	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: newRouter(svc),
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func newRouter(svc Services) *gin.Engine {
	router := gin.Default()

	v1 := router.Group("/api/v1")
	api.NewTruckHandler(svc.Trucks).Register(v1.Group("/trucks"))
	api.NewLoadHandler(svc.Loads).Register(v1.Group("/loads"))
	api.NewBookingHandler(svc.Bookings).Register(v1.Group("/bookings"))
	api.NewPaymentHandler(svc.Bookings).Register(v1.Group("/payments"))
	api.NewMatchingHandler(svc.Matching).Register(v1.Group("/matching"))
	api.NewUserHandler(svc.Users).Register(v1.Group("/users"))

	return router
}
