package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"solbooking/internal/entities"
)

// PostgresStore persists the bookings sheet in a single table mirroring
// the 15 spreadsheet columns, plus a serial id for append order.
type PostgresStore struct {
	DB *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{DB: db}
}

// EnsureHeaders bootstraps the schema. Creating the table is the
// Postgres equivalent of writing the header row, and just as idempotent.
func (s *PostgresStore) EnsureHeaders(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS bookings (
			id SERIAL PRIMARY KEY,
			timestamp_text TEXT NOT NULL,
			booking_id TEXT NOT NULL,
			service_type TEXT NOT NULL,
			package_persons TEXT NOT NULL,
			price TEXT NOT NULL,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT NOT NULL,
			lender TEXT NOT NULL,
			solicitor TEXT NOT NULL,
			appointment_date TEXT NOT NULL,
			appointment_time TEXT NOT NULL,
			status TEXT NOT NULL,
			notes TEXT NOT NULL DEFAULT ''
		)`
	if _, err := s.DB.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("error ensuring bookings table: %w", err)
	}
	return nil
}

func (s *PostgresStore) Append(ctx context.Context, row []string) (int64, string, error) {
	if len(row) != columnCount {
		return 0, "", fmt.Errorf("expected %d columns, got %d", columnCount, len(row))
	}
	query := `
		INSERT INTO bookings
		(timestamp_text, booking_id, service_type, package_persons, price, first_name, last_name, email, phone, lender, solicitor, appointment_date, appointment_time, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id`
	var id int64
	err := s.DB.QueryRowContext(ctx, query,
		row[colTimestamp], row[colBookingID], row[colServiceType], row[colPackage], row[colPrice],
		row[colFirstName], row[colLastName], row[colEmail], row[colPhone], row[colLender],
		row[colSolicitor], row[colAppointmentDate], row[colAppointmentTime], row[colStatus], row[colNotes],
	).Scan(&id)
	if err != nil {
		return 0, "", fmt.Errorf("error inserting booking: %w", err)
	}
	rowNum := id + 1 // sheet row 1 is the header
	return rowNum, fmt.Sprintf("%s!A%d:O%d", entities.SheetName, rowNum, rowNum), nil
}

func (s *PostgresStore) Rows(ctx context.Context) ([][]string, error) {
	query := `
		SELECT timestamp_text, booking_id, service_type, package_persons, price, first_name, last_name, email, phone, lender, solicitor, appointment_date, appointment_time, status, notes
		FROM bookings ORDER BY id`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying bookings: %w", err)
	}
	defer rows.Close()

	out := [][]string{append([]string(nil), entities.SheetHeaders...)}
	for rows.Next() {
		row := make([]string, columnCount)
		dest := make([]interface{}, columnCount)
		for i := range row {
			dest[i] = &row[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("error scanning booking row: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating booking rows: %w", err)
	}
	return out, nil
}

// ConfirmedBookings lists bookings still marked Confirmed so the sweep
// can decide, in Go, which appointments are in the past. Dates are the
// sheet's display strings, so parsing belongs to the caller.
func (s *PostgresStore) ConfirmedBookings(ctx context.Context) ([]BookingRef, error) {
	query := `SELECT id, appointment_date, appointment_time FROM bookings WHERE status = 'Confirmed'`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying confirmed bookings: %w", err)
	}
	defer rows.Close()

	var refs []BookingRef
	for rows.Next() {
		var ref BookingRef
		if err := rows.Scan(&ref.ID, &ref.AppointmentDate, &ref.AppointmentTime); err != nil {
			return nil, fmt.Errorf("error scanning booking ref: %w", err)
		}
		refs = append(refs, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating booking refs: %w", err)
	}
	return refs, nil
}

func (s *PostgresStore) MarkCompleted(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result, err := s.DB.ExecContext(ctx, `UPDATE bookings SET status = 'Completed' WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return 0, fmt.Errorf("error updating booking statuses: %w", err)
	}
	return result.RowsAffected()
}
