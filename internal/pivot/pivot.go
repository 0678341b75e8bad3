package pivot

import (
	"errors"
	"fmt"
	"strings"

	"gudang-bot/internal/models"
)

// Nama kolom yang dicari di baris header sheet STOCK. Pencariannya
// berdasarkan teks header (trim + case-insensitive), bukan posisi.
// Kolom STATUS sengaja tidak ikut dicari: posisinya selalu index 7
// (models.StockColStatus), mengikuti layout sheet lama. Asimetri ini
// dipertahankan demi kompatibilitas data yang sudah jalan.
const (
	headerSektor = "SEKTOR"
	headerOwner  = "OWNER"
	headerType   = "TYPE"
)

// ErrNoData berarti sheet hanya berisi header tanpa baris data.
var ErrNoData = errors.New("data stok kosong")

// MissingColumnError berarti salah satu kolom wajib tidak ada di header.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("kolom %s tidak ditemukan di header", e.Column)
}

// Cell menampung hitungan satu kombinasi (sektor, owner, type).
type Cell struct {
	Stock      int
	Technisian int
}

// Total menjumlahkan stock dan technisian untuk satu sel.
func (c Cell) Total() int {
	return c.Stock + c.Technisian
}

// Table adalah hasil pivot tiga tingkat sektor → owner → type.
// Urutan kemunculan pertama dipertahankan di setiap tingkat supaya
// laporan deterministik untuk input yang sama.
type Table struct {
	Sectors []*Sector

	bySector map[string]*Sector
}

// Sector adalah satu grup sektor beserta owner-owner di dalamnya.
type Sector struct {
	Name   string
	Owners []*Owner

	byOwner map[string]*Owner
}

// Owner adalah satu grup owner beserta type-type di dalamnya.
type Owner struct {
	Name  string
	Types []*TypeCell

	byType map[string]*TypeCell
}

// TypeCell adalah daun pivot: satu type dengan hitungannya.
type TypeCell struct {
	Name string
	Cell
}

// Build menyusun tabel pivot dari baris mentah sheet STOCK. Baris
// pertama adalah header. Sheet tanpa baris data menghasilkan ErrNoData,
// bukan tabel kosong.
func Build(rows [][]string) (*Table, error) {
	if len(rows) <= 1 {
		return nil, ErrNoData
	}

	header := rows[0]
	idxSektor, err := findColumn(header, headerSektor)
	if err != nil {
		return nil, err
	}
	idxOwner, err := findColumn(header, headerOwner)
	if err != nil {
		return nil, err
	}
	idxType, err := findColumn(header, headerType)
	if err != nil {
		return nil, err
	}

	t := &Table{bySector: make(map[string]*Sector)}
	for _, row := range rows[1:] {
		sector := cellOrDash(row, idxSektor)
		owner := cellOrDash(row, idxOwner)
		typ := cellOrDash(row, idxType)
		status := strings.TrimSpace(models.CellAt(row, models.StockColStatus))

		cell := t.cell(sector, owner, typ)
		if strings.Contains(status, models.ReservationMarker) {
			cell.Technisian++
		} else {
			cell.Stock++
		}
	}
	return t, nil
}

// Totals menjumlahkan seluruh daun tabel.
func (t *Table) Totals() (stock, technisian int) {
	for _, s := range t.Sectors {
		for _, o := range s.Owners {
			for _, tc := range o.Types {
				stock += tc.Stock
				technisian += tc.Technisian
			}
		}
	}
	return stock, technisian
}

// cell mengambil sel untuk kombinasi (sektor, owner, type), membuat
// tingkat-tingkat di atasnya saat pertama kali muncul.
func (t *Table) cell(sector, owner, typ string) *TypeCell {
	s, ok := t.bySector[sector]
	if !ok {
		s = &Sector{Name: sector, byOwner: make(map[string]*Owner)}
		t.bySector[sector] = s
		t.Sectors = append(t.Sectors, s)
	}

	o, ok := s.byOwner[owner]
	if !ok {
		o = &Owner{Name: owner, byType: make(map[string]*TypeCell)}
		s.byOwner[owner] = o
		s.Owners = append(s.Owners, o)
	}

	c, ok := o.byType[typ]
	if !ok {
		c = &TypeCell{Name: typ}
		o.byType[typ] = c
		o.Types = append(o.Types, c)
	}
	return c
}

func findColumn(header []string, name string) (int, error) {
	for i, cell := range header {
		if strings.EqualFold(strings.TrimSpace(cell), name) {
			return i, nil
		}
	}
	return 0, &MissingColumnError{Column: name}
}

// cellOrDash: sel kosong atau di luar baris dibaca sebagai "-".
func cellOrDash(row []string, idx int) string {
	v := models.CellAt(row, idx)
	if v == "" {
		return "-"
	}
	return v
}
