package auth

import (
	"context"
	"testing"

	"gudang-bot/internal/rowstore"

	"github.com/stretchr/testify/require"
)

func userSheet(rows ...[]string) *rowstore.Memory {
	all := [][]string{{"NO", "USERNAME", "NAMA", "STATUS"}}
	all = append(all, rows...)
	return rowstore.NewMemory(map[string][][]string{"USER": all})
}

func TestIsAuthorized(t *testing.T) {
	store := userSheet(
		[]string{"1", "budi", "Budi Santoso", "AKTIF"},
		[]string{"2", "sari", "Sari Dewi", "NONAKTIF"},
		[]string{"3", "AGUS", "Agus", "AKTIF"},
	)
	svc := NewService(store, "USER")
	ctx := context.Background()

	cases := []struct {
		name     string
		username string
		want     bool
	}{
		{"user aktif", "budi", true},
		{"case-insensitive", "BUDI", true},
		{"case-insensitive dua arah", "agus", true},
		{"status bukan AKTIF", "sari", false},
		{"tidak terdaftar", "joko", false},
		{"username kosong", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, err := svc.IsAuthorized(ctx, tc.username)
			require.NoError(t, err)
			require.Equal(t, tc.want, ok)
		})
	}
}

// Status harus persis "AKTIF"; spasi atau huruf kecil tidak diterima.
func TestIsAuthorizedStatusExact(t *testing.T) {
	store := userSheet(
		[]string{"1", "budi", "Budi", "AKTIF "},
		[]string{"2", "sari", "Sari", "aktif"},
	)
	svc := NewService(store, "USER")
	ctx := context.Background()

	ok, err := svc.IsAuthorized(ctx, "budi")
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = svc.IsAuthorized(ctx, "sari")
	require.NoError(t, err)
	require.False(t, ok)
}

// Baris header tidak pernah dihitung sebagai user.
func TestIsAuthorizedSkipsHeader(t *testing.T) {
	store := rowstore.NewMemory(map[string][][]string{
		"USER": {{"NO", "USERNAME", "NAMA", "AKTIF"}},
	})
	svc := NewService(store, "USER")

	ok, err := svc.IsAuthorized(context.Background(), "USERNAME")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestIsAuthorizedStoreError(t *testing.T) {
	svc := NewService(rowstore.NewMemory(nil), "USER")

	_, err := svc.IsAuthorized(context.Background(), "budi")
	require.Error(t, err)
}

// Username kosong tidak menyentuh store sama sekali.
func TestIsAuthorizedEmptyUsernameShortCircuit(t *testing.T) {
	svc := NewService(rowstore.NewMemory(nil), "USER")

	ok, err := svc.IsAuthorized(context.Background(), "")
	require.NoError(t, err)
	require.False(t, ok)
}
