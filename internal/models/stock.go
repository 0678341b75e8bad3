package models

// Layout kolom sheet STOCK (0-based). Baris pertama adalah header.
const (
	StockColSerialOnt = 0
	StockColSerialStb = 1
	StockColSerialAp  = 2
	StockColNik       = 3
	StockColOwner     = 4
	StockColType      = 5
	StockColSector    = 6
	StockColStatus    = 7 // selalu index 7, tidak ikut pencarian header
)

// ReservationMarker adalah penanda di kolom status bahwa SN sudah
// di-reserve oleh teknisi.
const ReservationMarker = "TECHNISIAN"

// StockRow adalah satu baris data di sheet STOCK.
type StockRow struct {
	SerialOnt string
	SerialStb string
	SerialAp  string
	Nik       string
	Owner     string
	Type      string
	Sector    string
	Status    string
}

// ParseStockRow membaca baris mentah menjadi StockRow.
// Baris yang lebih pendek dianggap kosong di kolom sisanya.
func ParseStockRow(row []string) StockRow {
	return StockRow{
		SerialOnt: CellAt(row, StockColSerialOnt),
		SerialStb: CellAt(row, StockColSerialStb),
		SerialAp:  CellAt(row, StockColSerialAp),
		Nik:       CellAt(row, StockColNik),
		Owner:     CellAt(row, StockColOwner),
		Type:      CellAt(row, StockColType),
		Sector:    CellAt(row, StockColSector),
		Status:    CellAt(row, StockColStatus),
	}
}

// Serials mengembalikan tiga kolom SN dengan urutan ONT, STB, AP.
func (r StockRow) Serials() [3]string {
	return [3]string{r.SerialOnt, r.SerialStb, r.SerialAp}
}

// CellAt mengambil sel pada index tertentu, aman untuk baris pendek.
func CellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
