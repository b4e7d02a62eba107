package routes

import (
	"net/http"
	"time"

	"carrental/handlers"
	"carrental/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/signup", hb.Auth.Signup)
		api.POST("/login", hb.Auth.Login)
		api.POST("/logout", hb.Auth.Logout)
		api.POST("/forgot-password", hb.Auth.ForgotPassword)
		api.POST("/reset-password/:token", hb.Auth.ResetPassword)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/get-profile", hb.Auth.GetProfile)
	}
}

// RegisterCarRoutes registers fleet endpoints. Reads are public; anything
// that modifies the fleet requires authentication.
func RegisterCarRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/car")
	{
		api.GET("/get-cars", hb.Car.GetAllCars)
		api.GET("/get-specific-car/:id", hb.Car.GetCarByID)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		protected.POST("/add-car", hb.Car.AddCar)
		protected.PUT("/update-car/:id", hb.Car.UpdateCar)
		protected.DELETE("/delete-car", hb.Car.DeleteCar)
		protected.POST("/change-status", hb.Car.ChangeStatus)
		protected.POST("/upload-image", hb.Storage.UploadCarImage)
	}
}

// RegisterBookingRoutes registers the booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/booking")
	{
		api.GET("/get-booking-by-car/:carId", hb.Booking.GetBookingsByCar)
		api.GET("/unavailable", hb.Booking.UnavailableCars)
		api.GET("/get-booking-by-id/:id", hb.Booking.GetBookingByID)
		api.POST("/get-multiple", hb.Booking.GetMultiple)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		protected.GET("/get-booking", hb.Booking.GetUserBookings)
		protected.POST("/create-booking/:carId", hb.Booking.CreateBooking)
		protected.POST("/cancel-booking/:id", hb.Booking.CancelBooking)
		protected.PATCH("/update-booking/:bookingId", hb.Booking.UpdateStatus)
		protected.POST("/update-booking/:id", hb.Booking.Reschedule)
		protected.DELETE("/delete-booking/:bookingId", hb.Booking.DeleteBooking)
	}
}

// RegisterAdminRoutes registers endpoints restricted to the admin role.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.Use(middleware.AdminOnlyMiddleware(hb.UserRepo))
		api.GET("/get-all-users", hb.Admin.GetAllUsers)
		api.GET("/get-bookings", hb.Admin.GetAllBookings)
		api.GET("/get-user", hb.Admin.GetProfile)
		api.POST("/update-profile", hb.Admin.UpdateProfile)
		api.POST("/confirm-booking", hb.Admin.ConfirmBooking)
		api.POST("/admin-cancel", hb.Admin.CancelBooking)
		api.POST("/pay-cash", hb.Admin.PayCash)
	}
}

// RegisterReviewRoutes registers the public review endpoints.
func RegisterReviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/review")
	{
		api.POST("/submit-review", hb.Review.AddReview)
		api.GET("/get-reviews", hb.Review.GetReviews)
	}
}

// RegisterPaymentRoutes registers the Stripe checkout endpoints and the
// webhook. The webhook sits outside the /api group and skips the auth
// middleware since Stripe authenticates with its own signature header.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/payment")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("/create-checkout-session", hb.Payment.CreateCheckoutSession)
		api.POST("/verify-payment", hb.Payment.VerifyPayment)
	}

	r.POST("/webhook", hb.Payment.Webhook)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "Stripe-Signature"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterAuthRoutes(r, hb)
	RegisterCarRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterReviewRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterHealthRoute(r)
}
