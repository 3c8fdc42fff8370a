package api

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"solbooking/internal/entities"
	"solbooking/internal/service"
)

// availableActions is advertised to callers that send an action we do
// not recognize.
var availableActions = []string{"test", "initSheet", "saveBooking", "getBookings"}

// SheetHandler exposes the single action endpoint the booking widget
// talks to. One route, four actions, JSONP on request: the shape is
// dictated by script-tag clients that can only issue GETs and read the
// response by having it call them back.
type SheetHandler struct {
	bookings *service.BookingService
	notifier *service.NotificationService
}

func NewSheetHandler(bookings *service.BookingService, notifier *service.NotificationService) *SheetHandler {
	return &SheetHandler{bookings: bookings, notifier: notifier}
}

// Actions dispatches on the "action" parameter. Parameters arrive in
// the query string; a POST may also carry a JSON object whose fields
// override query values.
func (h *SheetHandler) Actions(w http.ResponseWriter, r *http.Request) {
	params := map[string]string{}
	for key, values := range r.URL.Query() {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}
	if r.Method == http.MethodPost && r.Body != nil {
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err == nil {
			for key, value := range body {
				params[key] = value
			}
		}
	}

	callback := params["callback"]
	action := params["action"]
	if action == "" {
		action = "test"
	}

	switch action {
	case "test":
		writeResult(w, callback, TestResponse{
			Success:   true,
			Message:   "Booking endpoint is working!",
			Timestamp: time.Now().Format("02/01/2006, 15:04:05"),
		})
	case "initSheet":
		if err := h.bookings.InitSheet(r.Context()); err != nil {
			log.Printf("initSheet failed: %v", err)
			writeResult(w, callback, SimpleResponse{Success: false, Error: err.Error()})
			return
		}
		writeResult(w, callback, SimpleResponse{Success: true, Message: "Sheet initialized"})
	case "saveBooking":
		data := bookingFromParams(params)
		result := h.bookings.SaveBooking(r.Context(), data)
		if result.Success {
			h.sendConfirmation(r, data, result.BookingID)
		}
		writeResult(w, callback, result)
	case "getBookings":
		records, err := h.bookings.ListBookings(r.Context())
		if err != nil {
			log.Printf("getBookings failed: %v", err)
			writeResult(w, callback, SimpleResponse{Success: false, Error: err.Error()})
			return
		}
		writeResult(w, callback, BookingsResponse{Success: true, Bookings: records, Count: len(records)})
	default:
		writeResult(w, callback, UnknownActionResponse{
			Success:          false,
			Error:            fmt.Sprintf("Unknown action: %s", action),
			AvailableActions: availableActions,
		})
	}
}

// sendConfirmation fires the notification for a saved booking. A
// notification failure is logged and forgotten; the row is already in
// the sheet.
func (h *SheetHandler) sendConfirmation(r *http.Request, data entities.BookingData, bookingID string) {
	if h.notifier == nil || data.Email == "" {
		return
	}
	price := data.Price
	if price != "" && !strings.HasPrefix(price, "£") {
		price = "£" + price
	}
	confirmation := entities.Confirmation{
		BookingID:       bookingID,
		ToName:          strings.TrimSpace(data.FirstName + " " + data.LastName),
		ToEmail:         data.Email,
		Phone:           data.Phone,
		ServiceName:     data.ServiceType,
		PackageDetails:  data.Persons,
		Price:           price,
		SolicitorName:   data.Solicitor,
		AppointmentDate: data.AppointmentDate,
		AppointmentTime: data.AppointmentTime,
		Lender:          data.Lender,
	}
	if err := h.notifier.SendBookingConfirmation(r.Context(), confirmation); err != nil {
		log.Printf("WARNING: booking %s saved, but the confirmation was not sent: %v", bookingID, err)
	}
}

func bookingFromParams(params map[string]string) entities.BookingData {
	return entities.BookingData{
		Timestamp:       params["timestamp"],
		BookingID:       params["bookingId"],
		ServiceType:     params["serviceType"],
		Persons:         params["persons"],
		Price:           params["price"],
		FirstName:       params["firstName"],
		LastName:        params["lastName"],
		Email:           params["email"],
		Phone:           params["phone"],
		Lender:          params["lender"],
		Solicitor:       params["solicitor"],
		AppointmentDate: params["appointmentDate"],
		AppointmentTime: params["appointmentTime"],
		Status:          params["status"],
	}
}

// writeResult renders v as JSON, or as a JSONP script invoking the
// named callback when one was supplied.
func writeResult(w http.ResponseWriter, callback string, v interface{}) {
	payload, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if callback != "" {
		w.Header().Set("Content-Type", "application/javascript")
		fmt.Fprintf(w, "%s(%s);", callback, payload)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(payload)
}
