package rowstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/xuri/excelize/v2"
)

// Workbook adalah Store di atas file .xlsx lokal lewat excelize, untuk
// pemakaian tanpa akses Google Sheets (on-prem / uji coba).
type Workbook struct {
	mu   sync.Mutex
	path string
}

// NewWorkbook membuka file workbook sekali untuk memastikan path valid.
func NewWorkbook(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("buka workbook %s: %w", path, err)
	}
	f.Close()
	return &Workbook{path: path}, nil
}

func (w *Workbook) GetRows(_ context.Context, sheet string) ([][]string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	f, err := excelize.OpenFile(w.path)
	if err != nil {
		return nil, fmt.Errorf("buka workbook %s: %w", w.path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("baca sheet %s: %w", sheet, err)
	}
	return rows, nil
}

func (w *Workbook) AppendRow(_ context.Context, sheet string, values []string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	f, err := excelize.OpenFile(w.path)
	if err != nil {
		return fmt.Errorf("buka workbook %s: %w", w.path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("baca sheet %s: %w", sheet, err)
	}

	start, err := excelize.CoordinatesToCellName(1, len(rows)+1)
	if err != nil {
		return err
	}
	vals := toInterfaces(values)
	if err := f.SetSheetRow(sheet, start, &vals); err != nil {
		return fmt.Errorf("append ke sheet %s: %w", sheet, err)
	}
	return f.Save()
}

func (w *Workbook) UpdateCell(_ context.Context, sheet string, cell string, value string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	f, err := excelize.OpenFile(w.path)
	if err != nil {
		return fmt.Errorf("buka workbook %s: %w", w.path, err)
	}
	defer f.Close()

	if err := f.SetCellStr(sheet, cell, value); err != nil {
		return fmt.Errorf("update sel %s!%s: %w", sheet, cell, err)
	}
	return f.Save()
}
