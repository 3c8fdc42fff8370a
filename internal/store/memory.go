package store

import (
	"context"
	"fmt"
	"sync"

	"solbooking/internal/entities"
)

// MemoryStore keeps the sheet in process memory. It backs tests and
// lets the server run without any persistence configured.
type MemoryStore struct {
	mu         sync.Mutex
	hasHeaders bool
	rows       [][]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) EnsureHeaders(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hasHeaders = true
	return nil
}

func (m *MemoryStore) Append(ctx context.Context, row []string) (int64, string, error) {
	if len(row) != columnCount {
		return 0, "", fmt.Errorf("expected %d columns, got %d", columnCount, len(row))
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows = append(m.rows, append([]string(nil), row...))
	rowNum := int64(len(m.rows)) + 1 // row 1 is the header
	return rowNum, fmt.Sprintf("%s!A%d:O%d", entities.SheetName, rowNum, rowNum), nil
}

func (m *MemoryStore) Rows(ctx context.Context) ([][]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.hasHeaders && len(m.rows) == 0 {
		return nil, nil
	}
	out := make([][]string, 0, len(m.rows)+1)
	out = append(out, append([]string(nil), entities.SheetHeaders...))
	for _, r := range m.rows {
		out = append(out, append([]string(nil), r...))
	}
	return out, nil
}

func (m *MemoryStore) ConfirmedBookings(ctx context.Context) ([]BookingRef, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var refs []BookingRef
	for i, r := range m.rows {
		if r[colStatus] == "Confirmed" {
			refs = append(refs, BookingRef{
				ID:              int64(i) + 1,
				AppointmentDate: r[colAppointmentDate],
				AppointmentTime: r[colAppointmentTime],
			})
		}
	}
	return refs, nil
}

func (m *MemoryStore) MarkCompleted(ctx context.Context, ids []int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var updated int64
	for _, id := range ids {
		idx := int(id) - 1
		if idx >= 0 && idx < len(m.rows) {
			m.rows[idx][colStatus] = "Completed"
			updated++
		}
	}
	return updated, nil
}
