package store

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"solbooking/internal/entities"
)

// GoogleSheetsStore keeps the bookings on an actual Google spreadsheet
// through the Sheets API, writing with USER_ENTERED semantics so the
// sheet renders values the way a person typing them would get.
type GoogleSheetsStore struct {
	svc           *sheets.Service
	spreadsheetID string
}

// NewGoogleSheetsStore builds the store from a service-account
// credentials file and the target spreadsheet id.
func NewGoogleSheetsStore(ctx context.Context, credentialsFile, spreadsheetID string) (*GoogleSheetsStore, error) {
	svc, err := sheets.NewService(ctx, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return &GoogleSheetsStore{svc: svc, spreadsheetID: spreadsheetID}, nil
}

func (s *GoogleSheetsStore) headerRange() string {
	return fmt.Sprintf("%s!A1:O1", entities.SheetName)
}

func (s *GoogleSheetsStore) dataRange() string {
	return fmt.Sprintf("%s!A:O", entities.SheetName)
}

// EnsureHeaders probes row 1 and writes the header row only when it is
// empty, so repeated initialization is harmless.
func (s *GoogleSheetsStore) EnsureHeaders(ctx context.Context) error {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, s.headerRange()).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("read header row: %w", err)
	}
	if len(resp.Values) > 0 && len(resp.Values[0]) > 0 {
		return nil
	}

	header := make([]interface{}, len(entities.SheetHeaders))
	for i, h := range entities.SheetHeaders {
		header[i] = h
	}
	_, err = s.svc.Spreadsheets.Values.
		Update(s.spreadsheetID, s.headerRange(), &sheets.ValueRange{Values: [][]interface{}{header}}).
		ValueInputOption("USER_ENTERED").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("write header row: %w", err)
	}
	return nil
}

func (s *GoogleSheetsStore) Append(ctx context.Context, row []string) (int64, string, error) {
	if len(row) != columnCount {
		return 0, "", fmt.Errorf("expected %d columns, got %d", columnCount, len(row))
	}
	values := make([]interface{}, len(row))
	for i, v := range row {
		values[i] = v
	}
	resp, err := s.svc.Spreadsheets.Values.
		Append(s.spreadsheetID, s.dataRange(), &sheets.ValueRange{Values: [][]interface{}{values}}).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return 0, "", fmt.Errorf("append booking row: %w", err)
	}
	cellRange := ""
	if resp.Updates != nil {
		cellRange = resp.Updates.UpdatedRange
	}
	return 0, cellRange, nil
}

func (s *GoogleSheetsStore) Rows(ctx context.Context) ([][]string, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, s.dataRange()).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read booking rows: %w", err)
	}
	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, len(raw))
		for i, cell := range raw {
			row[i] = fmt.Sprint(cell)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
