package handlers

import (
	userRepoPkg "carrental/database/repository/user"
)

// HandlerBundle groups all endpoint handlers into one struct so route
// registration takes a single dependency.
type HandlerBundle struct {
	// UserRepo backs the auth middleware's token cache fallback.
	UserRepo userRepoPkg.UserRepository

	Auth    *AuthHandler
	Car     *CarHandler
	Booking *BookingHandler
	Admin   *AdminHandler
	Review  *ReviewHandler
	Payment *PaymentHandler
	Storage *StorageHandler
}
