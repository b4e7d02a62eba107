package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"carrental/config"
	"carrental/cron"
	"carrental/database"
	bookingRepoPkg "carrental/database/repository/booking"
	carRepoPkg "carrental/database/repository/car"
	reviewRepoPkg "carrental/database/repository/review"
	userRepoPkg "carrental/database/repository/user"
	"carrental/handlers"
	"carrental/routes"
	"carrental/services/booking"
	"carrental/services/car"
	"carrental/services/payment"
	"carrental/services/review"
	"carrental/services/storage"
	"carrental/services/user"
	"carrental/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()

	cld, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	carRepo := carRepoPkg.NewMongoCarRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo:        userRepo,
		BookingRepo: bookingRepo,
	}
	carService := &car.DefaultCarService{
		Repo:     carRepo,
		UserRepo: userRepo,
	}
	bookingService := &booking.DefaultBookingService{
		Repo:     bookingRepo,
		CarRepo:  carRepo,
		UserRepo: userRepo,
	}
	reviewService := &review.DefaultReviewService{
		Repo: reviewRepo,
	}
	paymentService := &payment.StripePaymentService{
		Bookings: bookingService,
	}
	storageService := storage.NewStorageService(cld)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,
		Auth:     handlers.NewAuthHandler(userService),
		Car:      handlers.NewCarHandler(carService),
		Booking:  handlers.NewBookingHandler(bookingService, logger),
		Admin:    handlers.NewAdminHandler(userService, bookingService),
		Review:   handlers.NewReviewHandler(reviewService),
		Payment:  handlers.NewPaymentHandler(paymentService),
		Storage:  handlers.NewStorageHandler(storageService),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Background expiry sweep.
	sched, err := cron.InitExpiryWorker(bookingService)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to start expiry worker: %v", err)
	}

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	if err := sched.Shutdown(); err != nil {
		logger.Sugar().Warnf("main: expiry worker shutdown: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
