package rowstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/xuri/excelize/v2"
)

// Memory adalah Store di dalam memori, dipakai di test sebagai
// pengganti backend sungguhan.
type Memory struct {
	mu     sync.Mutex
	sheets map[string][][]string
}

// NewMemory membuat Memory dengan isi awal per sheet. Isi awal disalin
// supaya caller tidak bisa mengubah state lewat slice yang sama.
func NewMemory(seed map[string][][]string) *Memory {
	m := &Memory{sheets: make(map[string][][]string)}
	for name, rows := range seed {
		m.sheets[name] = copyRows(rows)
	}
	return m
}

func (m *Memory) GetRows(_ context.Context, sheet string) ([][]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rows, ok := m.sheets[sheet]
	if !ok {
		return nil, fmt.Errorf("sheet %s tidak ditemukan", sheet)
	}
	return copyRows(rows), nil
}

func (m *Memory) AppendRow(_ context.Context, sheet string, values []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sheets[sheet]; !ok {
		return fmt.Errorf("sheet %s tidak ditemukan", sheet)
	}
	m.sheets[sheet] = append(m.sheets[sheet], append([]string(nil), values...))
	return nil
}

func (m *Memory) UpdateCell(_ context.Context, sheet string, cell string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rows, ok := m.sheets[sheet]
	if !ok {
		return fmt.Errorf("sheet %s tidak ditemukan", sheet)
	}

	col, rowNum, err := excelize.CellNameToCoordinates(cell)
	if err != nil {
		return fmt.Errorf("alamat sel %s tidak valid: %w", cell, err)
	}

	// Perluas grid kalau alamatnya di luar isi sekarang, meniru
	// perilaku spreadsheet.
	for len(rows) < rowNum {
		rows = append(rows, []string{})
	}
	row := rows[rowNum-1]
	for len(row) < col {
		row = append(row, "")
	}
	row[col-1] = value
	rows[rowNum-1] = row
	m.sheets[sheet] = rows
	return nil
}

func copyRows(rows [][]string) [][]string {
	out := make([][]string, len(rows))
	for i, r := range rows {
		out[i] = append([]string(nil), r...)
	}
	return out
}
