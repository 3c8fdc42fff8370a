package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solbooking/internal/entities"
)

// newTestClient points a real client at a test server and shortens
// every delay so the suite stays fast.
func newTestClient(serverURL string) *Client {
	c := NewClient(serverURL)
	c.demoInitDelay = time.Millisecond
	c.demoSaveDelay = time.Millisecond
	for _, tr := range c.transports {
		if cb, ok := tr.(*callbackTransport); ok {
			cb.timeout = 200 * time.Millisecond
		}
	}
	return c
}

func sampleBooking() entities.BookingData {
	return entities.BookingData{
		ServiceType:     "Immigration",
		Persons:         "30 Mins",
		Price:           "60.00",
		FirstName:       "Ada",
		LastName:        "Lovelace",
		Email:           "ada@example.com",
		Phone:           "+44 7700 900123",
		Lender:          "HSBC",
		Solicitor:       "Kevin Ogle",
		AppointmentDate: "15. November 2025",
		AppointmentTime: "9:00 - 9:15",
	}
}

func TestDemoModeInitialize(t *testing.T) {
	c := newTestClient("")
	require.True(t, c.DemoMode())
	assert.True(t, c.Initialize(context.Background()))
}

func TestDemoModeSaveBooking(t *testing.T) {
	c := newTestClient("")

	result := c.SaveBooking(context.Background(), sampleBooking())
	assert.True(t, result.Success)
	assert.True(t, strings.HasPrefix(result.BookingID, "BK-"), "got %q", result.BookingID)
	assert.Contains(t, result.Message, "Demo mode")
}

func TestDemoModeGetBookings(t *testing.T) {
	c := newTestClient("")

	records := c.GetBookings(context.Background())
	require.Len(t, records, 1)
	assert.Equal(t, "BK-DEMO-001", records[0]["booking_id"])
	assert.Equal(t, "150.00", records[0]["price"])
}

func TestSaveBookingViaCallbackTransport(t *testing.T) {
	var gotCallback atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "saveBooking", q.Get("action"))
		assert.Equal(t, "Immigration", q.Get("serviceType"))
		assert.Equal(t, "60.00", q.Get("price"))
		assert.Equal(t, "Confirmed", q.Get("status"))
		assert.NotEmpty(t, q.Get("bookingId"))

		cb := q.Get("callback")
		gotCallback.Store(cb)
		w.Header().Set("Content-Type", "application/javascript")
		fmt.Fprintf(w, "%s(%s);", cb, `{"success":true,"row":7,"range":"Bookings!A7:O7"}`)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	result := c.SaveBooking(context.Background(), sampleBooking())

	require.True(t, result.Success, "error: %s", result.Error)
	assert.Equal(t, int64(7), result.Row)
	assert.Equal(t, "Bookings!A7:O7", result.Range)
	assert.True(t, strings.HasPrefix(gotCallback.Load().(string), "jsonp_callback_"))
	assert.Equal(t, 0, callbacks.size(), "registry must drain after success")
}

func TestSaveBookingFallsBackToFetch(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.URL.Query().Get("callback") != "" {
			// Break the callback path: a plain JSON body is not a
			// script invoking the callback.
			w.Write([]byte(`{"success":true}`))
			return
		}
		w.Write([]byte(`{"success":true,"row":3,"range":"Bookings!A3:O3"}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	result := c.SaveBooking(context.Background(), sampleBooking())

	require.True(t, result.Success, "error: %s", result.Error)
	assert.Equal(t, int64(3), result.Row)
	assert.Equal(t, int32(2), calls.Load(), "callback attempt then fetch fallback")
	assert.Equal(t, 0, callbacks.size(), "registry must drain after a failed callback attempt")
}

func TestSaveBookingAllTransportsFail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	result := c.SaveBooking(context.Background(), sampleBooking())

	assert.False(t, result.Success)
	assert.NotEmpty(t, result.BookingID, "failed saves still carry the generated id for retry")
	assert.Contains(t, result.Error, "all transports failed")
	assert.Contains(t, result.Error, "callback")
	assert.Contains(t, result.Error, "fetch")
	assert.Equal(t, 0, callbacks.size())
}

func TestSaveBookingRemoteRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cb := r.URL.Query().Get("callback")
		fmt.Fprintf(w, "%s(%s);", cb, `{"success":false,"error":"sheet is full"}`)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	result := c.SaveBooking(context.Background(), sampleBooking())

	assert.False(t, result.Success)
	assert.Equal(t, "sheet is full", result.Error)
	assert.NotEmpty(t, result.BookingID)
}

func TestSaveBookingStampsFields(t *testing.T) {
	var saved entities.BookingData
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		saved.BookingID = q.Get("bookingId")
		saved.Timestamp = q.Get("timestamp")
		saved.Status = q.Get("status")
		cb := q.Get("callback")
		fmt.Fprintf(w, "%s(%s);", cb, `{"success":true}`)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	c.now = func() time.Time { return time.Date(2025, time.November, 15, 9, 0, 5, 0, time.UTC) }

	result := c.SaveBooking(context.Background(), sampleBooking())
	require.True(t, result.Success)

	assert.Regexp(t, `^BK-\d+-[A-Z0-9]{5}$`, saved.BookingID)
	assert.Equal(t, "15/11/2025, 09:00:05", saved.Timestamp)
	assert.Equal(t, "Confirmed", saved.Status)
}

func TestInitializeAgainstServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test", r.URL.Query().Get("action"))
		cb := r.URL.Query().Get("callback")
		fmt.Fprintf(w, "%s(%s);", cb, `{"success":true,"message":"Booking endpoint is working!"}`)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	assert.False(t, c.DemoMode())
	assert.True(t, c.Initialize(context.Background()))
}

func TestInitializeUnreachableEndpointReturnsFalse(t *testing.T) {
	srv := httptest.NewServer(nil)
	srv.Close() // immediately, so every request fails

	c := newTestClient(srv.URL)
	assert.False(t, c.Initialize(context.Background()))
}

func TestGetBookingsNormalizesKeys(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "getBookings", r.URL.Query().Get("action"))
		cb := r.URL.Query().Get("callback")
		payload := map[string]any{
			"success": true,
			"bookings": []map[string]string{{
				"Booking ID":        "BK-1",
				"Price (£)":         "60.00",
				"Package (Persons)": "30 Mins",
			}},
		}
		raw, _ := json.Marshal(payload)
		fmt.Fprintf(w, "%s(%s);", cb, raw)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	records := c.GetBookings(context.Background())

	require.Len(t, records, 1)
	assert.Equal(t, "BK-1", records[0]["booking_id"])
	assert.Equal(t, "60.00", records[0]["price"])
	assert.Equal(t, "30 Mins", records[0]["package_persons"])
}

func TestCreateBookingSheet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "initSheet", r.URL.Query().Get("action"))
		cb := r.URL.Query().Get("callback")
		fmt.Fprintf(w, "%s(%s);", cb, `{"success":true,"message":"Sheet initialized"}`)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	assert.True(t, c.CreateBookingSheet(context.Background()))
}

func TestRegistryReleaseIsIdempotent(t *testing.T) {
	ch, release := callbacks.acquire("cb_test_1")
	assert.Equal(t, 1, callbacks.size())

	release()
	release()
	assert.Equal(t, 0, callbacks.size())

	// Delivery after release is dropped, not delivered.
	callbacks.deliver("cb_test_1", json.RawMessage(`{}`))
	select {
	case <-ch:
		t.Fatal("payload delivered after release")
	default:
	}
}

func TestRegistryConcurrentAcquire(t *testing.T) {
	const n = 50
	done := make(chan struct{}, n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer func() { done <- struct{}{} }()
			name := fmt.Sprintf("cb_conc_%d", i)
			ch, release := callbacks.acquire(name)
			callbacks.deliver(name, json.RawMessage(`{"success":true}`))
			<-ch
			release()
		}(i)
	}
	for i := 0; i < n; i++ {
		<-done
	}
	assert.Equal(t, 0, callbacks.size())
}
