package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hanksha/appointment-booking-backend/api"
	"github.com/hanksha/appointment-booking-backend/app"
	"github.com/hanksha/appointment-booking-backend/auth"
	bk "github.com/hanksha/appointment-booking-backend/booking"
	"github.com/hanksha/appointment-booking-backend/config"
	"github.com/hanksha/appointment-booking-backend/storage"
	usr "github.com/hanksha/appointment-booking-backend/user"
)

func main() {
	cfg, err := config.Load()

	if err != nil {
		// no logger yet
		panic("failed to load config: " + err.Error())
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	loc, err := cfg.Location()

	if err != nil {
		logger.Fatal("failed to resolve reference timezone", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("connecting to PostgreSQL database")
	pool, err := storage.Connect(ctx, cfg.DatabaseURL)

	if err != nil {
		logger.Fatal("unable to connect to database", zap.Error(err))
	}

	defer pool.Close()

	if err := storage.Migrate(ctx, pool); err != nil {
		logger.Fatal("failed to apply database migrations", zap.Error(err))
	}

	logger.Info("database ready")

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.SessionTTL)
	verifier := auth.NewVerifier(tokens)

	userRepo := usr.NewRepository(pool)
	userService := usr.NewService(userRepo)

	bookingRepo := bk.NewRepository(pool)
	bookingService := bk.NewService(bookingRepo, bk.SystemClock{}, loc)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	sessionAuth := api.SessionAuth(verifier)

	// USER API

	userRouter := r.Group("/api/v1/users")
	userHandler := api.NewUserHandler(userService, tokens)

	userHandler.Register(userRouter, userRouter.Group("", sessionAuth))

	// BOOKING API

	bookingRouter := r.Group("/api/v1/bookings")
	bookingRouter.Use(sessionAuth)
	bookingHandler := api.NewBookingHandler(bookingService)

	bookingHandler.Register(bookingRouter)

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	go func() {
		logger.Info("listening", zap.String("addr", cfg.HTTPAddr))

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
