package auth

import (
	"context"
	"fmt"

	"gudang-bot/internal/models"
	"gudang-bot/internal/rowstore"
)

// Service mengecek otorisasi user lewat sheet USER. Tidak ada session
// atau token: sumber kebenaran satu-satunya adalah isi sheet saat
// pengecekan dilakukan.
type Service struct {
	store rowstore.Store
	sheet string
}

// NewService membuat Service yang membaca sheet USER bernama sheet.
func NewService(store rowstore.Store, sheet string) *Service {
	return &Service{store: store, sheet: sheet}
}

// IsAuthorized true kalau ada baris non-header dengan username cocok
// (case-insensitive) dan status persis "AKTIF". Error store
// dikembalikan apa adanya supaya caller bisa membedakan akses ditolak
// dengan gagal baca data.
func (s *Service) IsAuthorized(ctx context.Context, username string) (bool, error) {
	if username == "" {
		return false, nil
	}

	rows, err := s.store.GetRows(ctx, s.sheet)
	if err != nil {
		return false, fmt.Errorf("baca sheet user: %w", err)
	}

	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		u := models.ParseUserRow(row)
		if u.MatchesUsername(username) && u.IsActive() {
			return true, nil
		}
	}
	return false, nil
}
