package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gudang-bot/internal/models"
	"gudang-bot/internal/rowstore"

	"github.com/rs/zerolog/log"
)

// OutcomeKind membedakan hasil pengecekan satu SN.
type OutcomeKind int

const (
	OutcomeNotFound OutcomeKind = iota
	OutcomeAlreadyUsed
	OutcomeReserved
	OutcomeFailed
)

// Outcome adalah hasil satu SN. Urutannya selalu sama dengan urutan
// SN di input.
type Outcome struct {
	Serial string // SN setelah trim + uppercase
	Kind   OutcomeKind
	UsedBy string // terisi untuk OutcomeAlreadyUsed
	UsedAt string // terisi untuk OutcomeAlreadyUsed
}

// Summary menghitung jumlah hasil per jenis, untuk notifikasi admin.
type Summary struct {
	Reserved    int
	AlreadyUsed int
	NotFound    int
	Failed      int
}

// Summarize merangkum daftar hasil menjadi hitungan per jenis.
func Summarize(outcomes []Outcome) Summary {
	var s Summary
	for _, o := range outcomes {
		switch o.Kind {
		case OutcomeReserved:
			s.Reserved++
		case OutcomeAlreadyUsed:
			s.AlreadyUsed++
		case OutcomeNotFound:
			s.NotFound++
		case OutcomeFailed:
			s.Failed++
		}
	}
	return s
}

// Service memproses reservasi SN terhadap sheet STOCK dan MONITORING.
type Service struct {
	store           rowstore.Store
	stockSheet      string
	monitoringSheet string
	now             func() time.Time
}

// NewService membuat Service reservasi di atas store.
func NewService(store rowstore.Store, stockSheet, monitoringSheet string) *Service {
	return &Service{
		store:           store,
		stockSheet:      stockSheet,
		monitoringSheet: monitoringSheet,
		now:             time.Now,
	}
}

// CheckSerials memproses daftar SN untuk satu peminta, dua fase:
// semua SN diputuskan dulu terhadap snapshot kedua sheet, baru mutasi
// (append monitoring + update status stock) diterapkan per SN yang
// di-reserve. SN yang sama dua kali dalam satu batch hanya di-reserve
// sekali; kemunculan berikutnya dilaporkan sudah digunakan.
//
// Dua request bersamaan untuk SN yang sama tetap bisa balapan:
// pengecekannya read-then-write tanpa lock di sisi store. Ini batasan
// yang diterima, bukan jaminan.
func (s *Service) CheckSerials(ctx context.Context, serials []string, username string) ([]Outcome, error) {
	stockRows, err := s.store.GetRows(ctx, s.stockSheet)
	if err != nil {
		return nil, fmt.Errorf("baca sheet stock: %w", err)
	}
	monRows, err := s.store.GetRows(ctx, s.monitoringSheet)
	if err != nil {
		return nil, fmt.Errorf("baca sheet monitoring: %w", err)
	}

	timestamp := s.now().Format(models.TimestampLayout)
	requester := "@" + username

	// Fase 1: tentukan hasil tiap SN dari snapshot.
	type reservation struct {
		outcomeIdx int
		rowIdx     int // index baris di stockRows, termasuk header
		row        models.StockRow
	}
	var outcomes []Outcome
	var reservations []reservation
	planned := make(map[string]bool)

	for _, raw := range serials {
		sn := strings.ToUpper(strings.TrimSpace(raw))
		if sn == "" {
			continue
		}

		rowIdx := findSerial(stockRows, sn)
		if rowIdx < 0 {
			outcomes = append(outcomes, Outcome{Serial: sn, Kind: OutcomeNotFound})
			continue
		}

		if usedBy, usedAt, used := findMonitoring(monRows, sn); used {
			outcomes = append(outcomes, Outcome{Serial: sn, Kind: OutcomeAlreadyUsed, UsedBy: usedBy, UsedAt: usedAt})
			continue
		}

		if planned[sn] {
			outcomes = append(outcomes, Outcome{Serial: sn, Kind: OutcomeAlreadyUsed, UsedBy: requester, UsedAt: timestamp})
			continue
		}
		planned[sn] = true

		outcomes = append(outcomes, Outcome{Serial: sn, Kind: OutcomeReserved})
		reservations = append(reservations, reservation{
			outcomeIdx: len(outcomes) - 1,
			rowIdx:     rowIdx,
			row:        models.ParseStockRow(stockRows[rowIdx]),
		})
	}

	// Fase 2: terapkan mutasi. Kalau satu SN gagal disimpan, hasilnya
	// diubah jadi OutcomeFailed dan SN berikutnya tetap diproses.
	marker := models.ReservationMarker + " - " + requester
	for _, r := range reservations {
		mon := models.MonitoringRow{
			Timestamp: timestamp,
			User:      requester,
			SerialOnt: r.row.SerialOnt,
			SerialStb: r.row.SerialStb,
			SerialAp:  r.row.SerialAp,
			Nik:       r.row.Nik,
			Owner:     r.row.Owner,
			Type:      r.row.Type,
			Sector:    r.row.Sector,
			Status:    marker,
		}
		if err := s.store.AppendRow(ctx, s.monitoringSheet, mon.Values()); err != nil {
			log.Error().Err(err).Str("sn", outcomes[r.outcomeIdx].Serial).Msg("append monitoring gagal")
			outcomes[r.outcomeIdx].Kind = OutcomeFailed
			continue
		}
		if err := s.store.UpdateCell(ctx, s.stockSheet, statusCell(r.rowIdx), marker); err != nil {
			log.Error().Err(err).Str("sn", outcomes[r.outcomeIdx].Serial).Msg("update status stock gagal")
			outcomes[r.outcomeIdx].Kind = OutcomeFailed
			continue
		}
	}

	return outcomes, nil
}

// findSerial mencari SN di tiga kolom serial sheet STOCK, melewati
// header. Mengembalikan index baris pertama yang cocok, atau -1.
func findSerial(rows [][]string, sn string) int {
	for i, row := range rows {
		if i == 0 {
			continue
		}
		for _, cand := range models.ParseStockRow(row).Serials() {
			if serialEqual(cand, sn) {
				return i
			}
		}
	}
	return -1
}

// findMonitoring mencari SN di tiga kolom serial sheet MONITORING dan
// mengembalikan siapa dan kapan SN itu dipakai.
func findMonitoring(rows [][]string, sn string) (usedBy, usedAt string, found bool) {
	for i, row := range rows {
		if i == 0 {
			continue
		}
		mr := models.ParseMonitoringRow(row)
		for _, cand := range mr.Serials() {
			if serialEqual(cand, sn) {
				return mr.User, mr.Timestamp, true
			}
		}
	}
	return "", "", false
}

// serialEqual membandingkan SN tanpa spasi pinggir dan tanpa melihat
// huruf besar/kecil. Sel kosong tidak pernah cocok.
func serialEqual(cell, sn string) bool {
	cell = strings.ToUpper(strings.TrimSpace(cell))
	return cell != "" && cell == sn
}

// statusCell adalah alamat A1 kolom status untuk baris stock ke-rowIdx
// (0-based termasuk header). Kolom status selalu H, sejalan dengan
// index tetap models.StockColStatus.
func statusCell(rowIdx int) string {
	return fmt.Sprintf("H%d", rowIdx+1)
}
