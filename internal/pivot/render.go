package pivot

import (
	"fmt"
	"strings"
)

// Lebar kolom tabel teks. Header tabel string tetap supaya hasilnya
// byte-per-byte sama dengan laporan yang sudah dipakai di lapangan.
const (
	widthSektor = 10
	widthOwner  = 7
	widthType   = 5
	widthStock  = 5
	widthTech   = 4
	widthTotal  = 5
)

const (
	reportTitle = "REKAP STOK GUDANG"
	tableHeader = "SEKTOR     | OWNER  | TYPE | STOCK | TECH | TOTAL"
)

// Render menghasilkan laporan teks lebar-tetap dari tabel pivot:
// baris per kombinasi sektor/owner/type, subtotal per sektor, grand
// total, lalu blok ringkasan tiga baris.
func Render(t *Table) string {
	var b strings.Builder
	sep := strings.Repeat("-", len(tableHeader))

	b.WriteString(reportTitle + "\n")
	b.WriteString(tableHeader + "\n")
	b.WriteString(sep + "\n")

	grandStock, grandTech := 0, 0
	for _, sector := range t.Sectors {
		secStock, secTech := 0, 0
		for _, owner := range sector.Owners {
			for _, tc := range owner.Types {
				b.WriteString(leafRow(sector.Name, owner.Name, tc.Name, tc.Stock, tc.Technisian))
				secStock += tc.Stock
				secTech += tc.Technisian
			}
		}
		// Subtotal sektor: nama sektor tidak dipotong, hanya di-pad.
		b.WriteString(totalRow(sector.Name, "TOTAL", secStock, secTech))
		b.WriteString(sep + "\n")
		grandStock += secStock
		grandTech += secTech
	}

	b.WriteString(totalRow("GRAND TOTAL", "", grandStock, grandTech))

	b.WriteString("\n")
	fmt.Fprintf(&b, "Total Stock: %d\n", grandStock)
	fmt.Fprintf(&b, "Total Technisian: %d\n", grandTech)
	fmt.Fprintf(&b, "Grand Total: %d\n", grandStock+grandTech)

	return b.String()
}

func leafRow(sector, owner, typ string, stock, tech int) string {
	return fmt.Sprintf("%s | %s | %s | %s | %s | %s\n",
		clip(sector, widthSektor),
		clip(owner, widthOwner),
		clip(typ, widthType),
		padNum(stock, widthStock),
		padNum(tech, widthTech),
		padNum(stock+tech, widthTotal))
}

// totalRow dipakai untuk subtotal sektor (ownerCol = "TOTAL") dan grand
// total (ownerCol kosong). Label tidak pernah dipotong di sini.
func totalRow(label, ownerCol string, stock, tech int) string {
	return fmt.Sprintf("%s | %s | %s | %s | %s | %s\n",
		padRight(label, widthSektor),
		padRight(ownerCol, widthOwner),
		padRight("", widthType),
		padNum(stock, widthStock),
		padNum(tech, widthTech),
		padNum(stock+tech, widthTotal))
}

// clip memotong nilai yang melebihi lebar kolom: width-1 karakter
// pertama lalu tanda ".". Nilai pendek di-pad spasi ke kanan.
func clip(s string, width int) string {
	if len(s) > width {
		return s[:width-1] + "."
	}
	return padRight(s, width)
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func padNum(n, width int) string {
	return fmt.Sprintf("%*d", width, n)
}
