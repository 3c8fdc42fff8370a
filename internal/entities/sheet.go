package entities

import "strings"

// SheetName is the tab the bookings live on.
const SheetName = "Bookings"

// SheetHeaders is the fixed 15-column header row of the bookings sheet.
// Order matters: rows are appended in exactly this column order.
var SheetHeaders = []string{
	"Timestamp",
	"Booking ID",
	"Service Type",
	"Package (Persons)",
	"Price (£)",
	"First Name",
	"Last Name",
	"Email",
	"Phone",
	"Lender",
	"Solicitor",
	"Appointment Date",
	"Appointment Time",
	"Status",
	"Notes",
}

// NormalizeHeader maps a sheet header to its record key: parentheses and
// the currency symbol are stripped, whitespace runs collapse to a single
// underscore, and the result is lowercased. "Price (£)" becomes "price",
// "Package (Persons)" becomes "package_persons".
func NormalizeHeader(header string) string {
	stripped := strings.Map(func(r rune) rune {
		switch r {
		case '(', ')', '£':
			return -1
		}
		return r
	}, header)
	return strings.ToLower(strings.Join(strings.Fields(stripped), "_"))
}

// RecordFromRow pairs a data row with the (raw) header row, normalizing
// the keys. Short rows yield empty values for the missing columns.
func RecordFromRow(headers, row []string) BookingRecord {
	record := make(BookingRecord, len(headers))
	for i, h := range headers {
		value := ""
		if i < len(row) {
			value = row[i]
		}
		record[NormalizeHeader(h)] = value
	}
	return record
}

// Row lays the booking out in sheet column order. Notes is always empty;
// the column exists for manual annotations on the sheet itself.
func (b BookingData) Row() []string {
	return []string{
		b.Timestamp,
		b.BookingID,
		b.ServiceType,
		b.Persons,
		b.Price,
		b.FirstName,
		b.LastName,
		b.Email,
		b.Phone,
		b.Lender,
		b.Solicitor,
		b.AppointmentDate,
		b.AppointmentTime,
		b.Status,
		"",
	}
}
