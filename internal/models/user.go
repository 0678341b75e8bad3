package models

import "strings"

// Layout kolom sheet USER (0-based). Kolom 0 nomor urut, tidak dipakai.
const (
	UserColUsername = 1
	UserColName     = 2
	UserColStatus   = 3
)

// UserStatusActive adalah nilai kolom status untuk user yang boleh
// memakai bot. Perbandingannya exact, bukan case-insensitive.
const UserStatusActive = "AKTIF"

// User adalah satu baris di sheet USER.
type User struct {
	Username string
	Name     string
	Status   string
}

// ParseUserRow membaca baris mentah menjadi User.
func ParseUserRow(row []string) User {
	return User{
		Username: CellAt(row, UserColUsername),
		Name:     CellAt(row, UserColName),
		Status:   CellAt(row, UserColStatus),
	}
}

// MatchesUsername membandingkan username tanpa memperhatikan huruf besar/kecil.
func (u User) MatchesUsername(username string) bool {
	return username != "" && strings.EqualFold(u.Username, username)
}

// IsActive true kalau statusnya persis "AKTIF".
func (u User) IsActive() bool {
	return u.Status == UserStatusActive
}
