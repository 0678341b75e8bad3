package rowstore

import "context"

// Store adalah akses baris ke spreadsheet backend. Bot memakai tiga
// sheet logis: STOCK, MONITORING, dan USER.
//
// GetRows mengembalikan seluruh baris sheet termasuk header (baris 0)
// dalam urutan aslinya. AppendRow menambah satu baris setelah baris
// terakhir. UpdateCell menulis satu sel dengan alamat A1, contoh "H5".
type Store interface {
	GetRows(ctx context.Context, sheet string) ([][]string, error)
	AppendRow(ctx context.Context, sheet string, values []string) error
	UpdateCell(ctx context.Context, sheet string, cell string, value string) error
}

func toInterfaces(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
