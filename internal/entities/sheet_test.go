package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeHeader(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"Timestamp", "timestamp"},
		{"Booking ID", "booking_id"},
		{"Service Type", "service_type"},
		{"Package (Persons)", "package_persons"},
		{"Price (£)", "price"},
		{"Appointment Date", "appointment_date"},
		{"Notes", "notes"},
		{"  Extra   Spaces  ", "extra_spaces"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeHeader(tt.header), "header %q", tt.header)
	}
}

func TestNormalizedHeadersAreUnique(t *testing.T) {
	seen := map[string]string{}
	for _, h := range SheetHeaders {
		key := NormalizeHeader(h)
		prev, dup := seen[key]
		assert.False(t, dup, "headers %q and %q collide on %q", prev, h, key)
		seen[key] = h
	}
}

func TestRowMatchesHeaderOrder(t *testing.T) {
	data := BookingData{
		Timestamp:       "15/11/2025, 09:00:00",
		BookingID:       "BK-1",
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
		Status:          "Confirmed",
	}
	row := data.Row()
	assert.Len(t, row, len(SheetHeaders))

	record := RecordFromRow(SheetHeaders, row)
	assert.Equal(t, "BK-1", record["booking_id"])
	assert.Equal(t, "60.00", record["price"])
	assert.Equal(t, "30 Mins", record["package_persons"])
	assert.Equal(t, "15. November 2025", record["appointment_date"])
	assert.Equal(t, "", record["notes"])
}

func TestRecordFromRowShortRow(t *testing.T) {
	record := RecordFromRow(SheetHeaders, []string{"15/11/2025, 09:00:00", "BK-2"})
	assert.Equal(t, "BK-2", record["booking_id"])
	assert.Equal(t, "", record["status"])
	assert.Len(t, record, len(SheetHeaders))
}
