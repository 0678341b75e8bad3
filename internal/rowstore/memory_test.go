package rowstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryGetRowsReturnsCopy(t *testing.T) {
	m := NewMemory(map[string][][]string{
		"STOCK": {{"SN ONT"}, {"ONT-1"}},
	})

	ctx := context.Background()
	rows, err := m.GetRows(ctx, "STOCK")
	require.NoError(t, err)

	rows[1][0] = "DIUBAH"

	again, err := m.GetRows(ctx, "STOCK")
	require.NoError(t, err)
	require.Equal(t, "ONT-1", again[1][0])
}

func TestMemoryAppendRow(t *testing.T) {
	m := NewMemory(map[string][][]string{"MONITORING": {{"TANGGAL"}}})

	ctx := context.Background()
	require.NoError(t, m.AppendRow(ctx, "MONITORING", []string{"2024-05-01 08:00:00", "@budi"}))

	rows, err := m.GetRows(ctx, "MONITORING")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "@budi", rows[1][1])
}

func TestMemoryUpdateCellExtendsGrid(t *testing.T) {
	m := NewMemory(map[string][][]string{"STOCK": {{"SN ONT"}, {"ONT-1"}}})

	ctx := context.Background()
	require.NoError(t, m.UpdateCell(ctx, "STOCK", "H2", "TECHNISIAN - @budi"))

	rows, err := m.GetRows(ctx, "STOCK")
	require.NoError(t, err)
	require.Len(t, rows[1], 8)
	require.Equal(t, "TECHNISIAN - @budi", rows[1][7])
}

func TestMemoryUnknownSheet(t *testing.T) {
	m := NewMemory(nil)

	ctx := context.Background()
	_, err := m.GetRows(ctx, "STOCK")
	require.Error(t, err)
	require.Error(t, m.AppendRow(ctx, "STOCK", []string{"x"}))
	require.Error(t, m.UpdateCell(ctx, "STOCK", "A1", "x"))
}
