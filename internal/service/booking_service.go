package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"solbooking/internal/entities"
	"solbooking/internal/store"
)

// BookingService sits between the action endpoint and the sheet store.
type BookingService struct {
	Store store.SheetStore
}

func NewBookingService(st store.SheetStore) *BookingService {
	return &BookingService{Store: st}
}

// InitSheet makes sure the sheet exists with its header row. Safe to
// call any number of times.
func (s *BookingService) InitSheet(ctx context.Context) error {
	return s.Store.EnsureHeaders(ctx)
}

// SaveBooking fills the defaults a sparse request leaves open, appends
// one row, and reports the landing spot. Store failures come back as an
// unsuccessful result, never as a panic up the handler chain.
func (s *BookingService) SaveBooking(ctx context.Context, data entities.BookingData) entities.SaveResult {
	applyDefaults(&data, time.Now())

	rowNum, cellRange, err := s.Store.Append(ctx, data.Row())
	if err != nil {
		log.Printf("failed to append booking %s: %v", data.BookingID, err)
		return entities.SaveResult{Success: false, Error: err.Error()}
	}
	return entities.SaveResult{
		Success:   true,
		BookingID: data.BookingID,
		Row:       rowNum,
		Range:     cellRange,
		Message:   "Booking saved successfully",
	}
}

// ListBookings reads every row and maps it onto normalized keys in
// append order. An empty or header-only sheet yields an empty list.
func (s *BookingService) ListBookings(ctx context.Context) ([]entities.BookingRecord, error) {
	rows, err := s.Store.Rows(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	if len(rows) <= 1 {
		return []entities.BookingRecord{}, nil
	}
	headers := rows[0]
	records := make([]entities.BookingRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, entities.RecordFromRow(headers, row))
	}
	return records, nil
}

// applyDefaults mirrors the lenient parameter handling the endpoint has
// always had: missing fields get placeholders rather than rejections.
func applyDefaults(data *entities.BookingData, now time.Time) {
	if data.Timestamp == "" {
		data.Timestamp = now.Format("02/01/2006, 15:04:05")
	}
	if data.BookingID == "" {
		data.BookingID = fmt.Sprintf("BK-%d", now.UnixMilli())
	}
	if data.ServiceType == "" {
		data.ServiceType = "Unknown Service"
	}
	if data.Persons == "" {
		data.Persons = "1 Person"
	}
	if data.Price == "" {
		data.Price = "0.00"
	}
	if data.Status == "" {
		data.Status = "Confirmed"
	}
}
