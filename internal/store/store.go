// Package store holds the server-side bookings sheet: an append-only
// table with a fixed 15-column header, available over Google Sheets,
// Postgres or in memory.
package store

import "context"

// SheetStore is the append-only bookings sheet.
type SheetStore interface {
	// EnsureHeaders writes the header row if and only if it is missing.
	EnsureHeaders(ctx context.Context) error
	// Append adds one booking row and reports where it landed, as a
	// 1-based row number and/or an A1-style range.
	Append(ctx context.Context, row []string) (rowNum int64, cellRange string, err error)
	// Rows returns everything on the sheet, header row included when
	// present, in append order.
	Rows(ctx context.Context) ([][]string, error)
}

// BookingRef identifies one stored booking for the status sweep.
type BookingRef struct {
	ID              int64
	AppointmentDate string
	AppointmentTime string
}

// SweepStore is implemented by backends that can finalize bookings
// whose appointment has passed. The Google Sheets backend does not;
// the sweep simply stays off there.
type SweepStore interface {
	ConfirmedBookings(ctx context.Context) ([]BookingRef, error)
	MarkCompleted(ctx context.Context, ids []int64) (int64, error)
}

// Column indexes into a sheet row, matching entities.SheetHeaders.
const (
	colTimestamp = iota
	colBookingID
	colServiceType
	colPackage
	colPrice
	colFirstName
	colLastName
	colEmail
	colPhone
	colLender
	colSolicitor
	colAppointmentDate
	colAppointmentTime
	colStatus
	colNotes
	columnCount
)
