// Package sheets is the client for the spreadsheet-backed booking
// store. It talks to the remote web app through an ordered chain of
// transports and switches itself into a self-contained demo mode when
// no endpoint is configured.
package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"solbooking/internal/entities"
)

// timestampFormat matches the en-GB locale string the store has always
// held in its first column.
const timestampFormat = "02/01/2006, 15:04:05"

const defaultCallbackTimeout = 30 * time.Second

// response is the generic object envelope returned by the endpoint.
type response struct {
	Success   bool   `json:"success"`
	Message   string `json:"message,omitempty"`
	Error     string `json:"error,omitempty"`
	BookingID string `json:"bookingId,omitempty"`
	Row       int64  `json:"row,omitempty"`
	Range     string `json:"range,omitempty"`
}

// Client talks to the remote booking store. All operations are safe to
// call from any goroutine; in-flight calls are independent of each
// other and no ordering between them is guaranteed.
type Client struct {
	webAppURL  string
	demo       bool
	transports []transport
	now        func() time.Time

	// Demo-mode artificial delays, shortened in tests.
	demoInitDelay time.Duration
	demoSaveDelay time.Duration
}

// NewClient builds a client for the given web app URL. An empty URL
// switches the client into demo mode: every operation fabricates a
// plausible successful response without touching the network.
func NewClient(webAppURL string) *Client {
	httpClient := &http.Client{}
	c := &Client{
		webAppURL: webAppURL,
		demo:      webAppURL == "",
		transports: []transport{
			&callbackTransport{client: httpClient, timeout: defaultCallbackTimeout},
			&fetchTransport{client: httpClient},
		},
		now:           time.Now,
		demoInitDelay: 100 * time.Millisecond,
		demoSaveDelay: time.Second,
	}
	log.Printf("sheets client initialized (endpoint set: %v, demo mode: %v)", webAppURL != "", c.demo)
	return c
}

// DemoMode reports whether the client fabricates responses instead of
// persisting anything.
func (c *Client) DemoMode() bool { return c.demo }

// Initialize issues the no-op "test" action against the endpoint.
// It never returns an error: false simply means the store is not
// reachable right now.
func (c *Client) Initialize(ctx context.Context) bool {
	if c.demo {
		c.sleep(ctx, c.demoInitDelay)
		log.Printf("sheets client running in demo mode; set the web app URL for real persistence")
		return true
	}
	if _, err := c.request(ctx, url.Values{"action": {"test"}}); err != nil {
		log.Printf("sheets connection test failed: %v", err)
		return false
	}
	return true
}

// CreateBookingSheet asks the endpoint to ensure headers exist. The
// action is idempotent on the remote side.
func (c *Client) CreateBookingSheet(ctx context.Context) bool {
	if c.demo {
		return true
	}
	if _, err := c.request(ctx, url.Values{"action": {"initSheet"}}); err != nil {
		log.Printf("sheet initialization failed: %v", err)
		return false
	}
	return true
}

// SaveBooking stamps the booking id, timestamp and Confirmed status
// onto the data and appends one record remotely. It never returns a Go
// error; a failed save comes back as {Success: false, Error: ...} and
// still carries the generated booking id.
func (c *Client) SaveBooking(ctx context.Context, data entities.BookingData) entities.SaveResult {
	data.BookingID = c.newBookingID()
	data.Timestamp = c.now().Format(timestampFormat)
	data.Status = "Confirmed"

	if c.demo {
		c.sleep(ctx, c.demoSaveDelay)
		log.Printf("demo mode: booking %s for %s %s would be saved to the sheet", data.BookingID, data.FirstName, data.LastName)
		return entities.SaveResult{
			Success:   true,
			BookingID: data.BookingID,
			Message:   "Demo mode - booking logged locally only",
		}
	}

	params := url.Values{
		"action":          {"saveBooking"},
		"timestamp":       {data.Timestamp},
		"bookingId":       {data.BookingID},
		"serviceType":     {data.ServiceType},
		"persons":         {data.Persons},
		"price":           {data.Price},
		"firstName":       {data.FirstName},
		"lastName":        {data.LastName},
		"email":           {data.Email},
		"phone":           {data.Phone},
		"lender":          {data.Lender},
		"solicitor":       {data.Solicitor},
		"appointmentDate": {data.AppointmentDate},
		"appointmentTime": {data.AppointmentTime},
		"status":          {data.Status},
	}

	payload, err := c.request(ctx, params)
	if err != nil {
		return entities.SaveResult{Success: false, BookingID: data.BookingID, Error: err.Error()}
	}

	var resp response
	if err := json.Unmarshal(payload, &resp); err != nil {
		return entities.SaveResult{Success: false, BookingID: data.BookingID, Error: fmt.Sprintf("decode response: %v", err)}
	}
	if !resp.Success {
		return entities.SaveResult{Success: false, BookingID: data.BookingID, Error: resp.Error}
	}
	log.Printf("booking %s saved to the sheet", data.BookingID)
	return entities.SaveResult{
		Success:   true,
		BookingID: data.BookingID,
		Row:       resp.Row,
		Range:     resp.Range,
		Message:   "Booking saved successfully",
	}
}

// GetBookings fetches the full record set. Keys are normalized
// lowercase snake case; any raw header slipping through the remote side
// is normalized again here. Total failure yields an empty list.
func (c *Client) GetBookings(ctx context.Context) []entities.BookingRecord {
	if c.demo {
		return []entities.BookingRecord{{
			"booking_id":      "BK-DEMO-001",
			"timestamp":       c.now().Format(timestampFormat),
			"service_type":    "Bridging Finance",
			"package_persons": "1 Person",
			"price":           "150.00",
			"first_name":      "Demo",
			"last_name":       "User",
			"email":           "demo@example.com",
			"phone":           "+44 1234 567890",
			"status":          "Confirmed",
		}}
	}

	payload, err := c.request(ctx, url.Values{"action": {"getBookings"}})
	if err != nil {
		log.Printf("failed to fetch bookings: %v", err)
		return nil
	}

	var envelope struct {
		Success  bool                `json:"success"`
		Bookings []map[string]string `json:"bookings"`
		Error    string              `json:"error"`
	}
	if err := json.Unmarshal(payload, &envelope); err != nil {
		log.Printf("failed to decode bookings: %v", err)
		return nil
	}
	if !envelope.Success {
		log.Printf("bookings fetch rejected: %s", envelope.Error)
		return nil
	}
	records := make([]entities.BookingRecord, 0, len(envelope.Bookings))
	for _, row := range envelope.Bookings {
		record := make(entities.BookingRecord, len(row))
		for k, v := range row {
			record[entities.NormalizeHeader(k)] = v
		}
		records = append(records, record)
	}
	return records
}

// request walks the transport chain: first success wins, and the final
// error aggregates every transport's reason.
func (c *Client) request(ctx context.Context, params url.Values) (json.RawMessage, error) {
	var reasons []string
	for _, t := range c.transports {
		payload, err := t.do(ctx, c.webAppURL, params)
		if err == nil {
			return payload, nil
		}
		reasons = append(reasons, fmt.Sprintf("%s (%v)", t.name(), err))
		log.Printf("%s transport failed for action %q: %v", t.name(), params.Get("action"), err)
	}
	return nil, fmt.Errorf("all transports failed: %s", strings.Join(reasons, "; "))
}

// newBookingID is time-based with a random suffix. Collisions are
// negligible but not formally ruled out; nothing downstream enforces
// uniqueness.
func (c *Client) newBookingID() string {
	random := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:5])
	return fmt.Sprintf("BK-%d-%s", c.now().UnixMilli(), random)
}

func (c *Client) sleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	select {
	case <-time.After(d):
	case <-ctx.Done():
	}
}
