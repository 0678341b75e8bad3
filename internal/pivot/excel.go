package pivot

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "REKAP"

// BuildWorkbook menulis tabel pivot ke workbook xlsx, dengan struktur
// baris yang sama dengan laporan teks: daun per kombinasi, subtotal
// per sektor, lalu grand total.
func BuildWorkbook(t *Table) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, fmt.Errorf("siapkan sheet export: %w", err)
	}

	rowNum := 1
	writeRow := func(vals []interface{}) error {
		cell, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(exportSheet, cell, &vals); err != nil {
			return fmt.Errorf("tulis baris %d: %w", rowNum, err)
		}
		rowNum++
		return nil
	}

	if err := writeRow([]interface{}{"SEKTOR", "OWNER", "TYPE", "STOCK", "TECH", "TOTAL"}); err != nil {
		return nil, err
	}

	for _, sector := range t.Sectors {
		secStock, secTech := 0, 0
		for _, owner := range sector.Owners {
			for _, tc := range owner.Types {
				if err := writeRow([]interface{}{sector.Name, owner.Name, tc.Name, tc.Stock, tc.Technisian, tc.Total()}); err != nil {
					return nil, err
				}
				secStock += tc.Stock
				secTech += tc.Technisian
			}
		}
		if err := writeRow([]interface{}{sector.Name, "TOTAL", "", secStock, secTech, secStock + secTech}); err != nil {
			return nil, err
		}
	}

	stock, tech := t.Totals()
	if err := writeRow([]interface{}{"GRAND TOTAL", "", "", stock, tech, stock + tech}); err != nil {
		return nil, err
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	if err := f.SetRowStyle(exportSheet, 1, 1, style); err != nil {
		return nil, err
	}

	return f, nil
}
