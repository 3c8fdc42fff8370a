package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"solbooking/internal/store"
)

// SweepService periodically marks Confirmed bookings whose appointment
// has passed as Completed. It runs only against stores that support
// status updates.
type SweepService struct {
	Store store.SweepStore
	// Now is swappable in tests.
	Now func() time.Time
}

func NewSweepService(st store.SweepStore) *SweepService {
	return &SweepService{Store: st, Now: time.Now}
}

// CompletePastAppointments finds Confirmed bookings whose appointment
// slot has ended and marks them Completed.
func (s *SweepService) CompletePastAppointments(ctx context.Context) error {
	log.Println("Sweep: checking for appointments to mark as 'Completed'...")

	refs, err := s.Store.ConfirmedBookings(ctx)
	if err != nil {
		return fmt.Errorf("sweep: failed to list confirmed bookings: %w", err)
	}

	now := s.Now()
	var ids []int64
	for _, ref := range refs {
		end, err := appointmentEnd(ref.AppointmentDate, ref.AppointmentTime, now.Location())
		if err != nil {
			log.Printf("Sweep: skipping booking %d with unparseable appointment (%q %q): %v",
				ref.ID, ref.AppointmentDate, ref.AppointmentTime, err)
			continue
		}
		if end.Before(now) {
			ids = append(ids, ref.ID)
		}
	}

	if len(ids) == 0 {
		log.Println("Sweep: no confirmed bookings past their appointment time.")
		return nil
	}

	updated, err := s.Store.MarkCompleted(ctx, ids)
	if err != nil {
		return fmt.Errorf("sweep: failed to update booking statuses: %w", err)
	}
	log.Printf("Sweep: marked %d bookings as 'Completed'.", updated)
	return nil
}

// appointmentEnd combines the sheet's display strings, e.g.
// "15. November 2025" and "9:00 - 9:15", into the slot's end instant.
func appointmentEnd(date, slot string, loc *time.Location) (time.Time, error) {
	day, err := time.ParseInLocation("2. January 2006", date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date: %w", err)
	}
	parts := strings.Split(slot, " - ")
	end, err := time.Parse("15:04", strings.TrimSpace(parts[len(parts)-1]))
	if err != nil {
		return time.Time{}, fmt.Errorf("parse slot end: %w", err)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), end.Hour(), end.Minute(), 0, 0, loc), nil
}
