package api

import (
	"encoding/json"
	"net/http"

	errs "solbooking/internal/errors"
	"solbooking/internal/service"
)

// AdminHandler serves the authenticated back-office routes.
type AdminHandler struct {
	bookings *service.BookingService
}

func NewAdminHandler(bookings *service.BookingService) *AdminHandler {
	return &AdminHandler{bookings: bookings}
}

// ListBookings returns every stored booking, newest last, keyed by
// normalized column names.
func (h *AdminHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	records, err := h.bookings.ListBookings(r.Context())
	if err != nil {
		writeError(w, errs.NewHTTPError(http.StatusInternalServerError, "Error listing bookings"))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(BookingsResponse{Success: true, Bookings: records, Count: len(records)})
}
