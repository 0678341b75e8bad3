package rowstore

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Sheets adalah Store di atas Google Sheets API v4.
type Sheets struct {
	svc           *sheets.Service
	spreadsheetID string
}

// NewSheets membuat client Google Sheets. credentialsFile boleh kosong,
// jatuh ke Application Default Credentials.
func NewSheets(ctx context.Context, spreadsheetID, credentialsFile string) (*Sheets, error) {
	opts := []option.ClientOption{option.WithScopes(sheets.SpreadsheetsScope)}
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("init google sheets: %w", err)
	}

	return &Sheets{svc: svc, spreadsheetID: spreadsheetID}, nil
}

func (s *Sheets) GetRows(ctx context.Context, sheet string) ([][]string, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, sheet).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("baca sheet %s: %w", sheet, err)
	}

	rows := make([][]string, len(resp.Values))
	for i, raw := range resp.Values {
		row := make([]string, len(raw))
		for j, cell := range raw {
			row[j] = cellString(cell)
		}
		rows[i] = row
	}
	return rows, nil
}

func (s *Sheets) AppendRow(ctx context.Context, sheet string, values []string) error {
	vr := &sheets.ValueRange{Values: [][]interface{}{toInterfaces(values)}}

	// RAW supaya SN panjang tidak diubah jadi angka/tanggal oleh Sheets.
	_, err := s.svc.Spreadsheets.Values.Append(s.spreadsheetID, sheet, vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("append ke sheet %s: %w", sheet, err)
	}
	return nil
}

func (s *Sheets) UpdateCell(ctx context.Context, sheet string, cell string, value string) error {
	vr := &sheets.ValueRange{Values: [][]interface{}{{value}}}

	_, err := s.svc.Spreadsheets.Values.Update(s.spreadsheetID, fmt.Sprintf("%s!%s", sheet, cell), vr).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("update sel %s!%s: %w", sheet, cell, err)
	}
	return nil
}

func cellString(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
