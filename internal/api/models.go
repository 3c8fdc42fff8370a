package api

import "solbooking/internal/entities"

// TestResponse answers the "test" action.
type TestResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// SimpleResponse answers actions that only succeed or fail.
type SimpleResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// UnknownActionResponse is returned for unrecognized action values.
type UnknownActionResponse struct {
	Success          bool     `json:"success"`
	Error            string   `json:"error"`
	AvailableActions []string `json:"availableActions"`
}

// BookingsResponse answers the "getBookings" action.
type BookingsResponse struct {
	Success  bool                     `json:"success"`
	Bookings []entities.BookingRecord `json:"bookings"`
	Count    int                      `json:"count"`
}

// LoginRequest is the admin login body.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the minted bearer token.
type LoginResponse struct {
	Token string `json:"token"`
}
