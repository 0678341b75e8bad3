package bot

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	"gudang-bot/internal/inventory"
	"gudang-bot/internal/pivot"
	"gudang-bot/internal/telegram"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// handleMyID membalas chat ID dan username pengirim. Tidak butuh
// otorisasi: dipakai justru untuk mendaftarkan user baru.
func (b *Bot) handleMyID(ctx context.Context, msg *telegram.Message) {
	username := "-"
	if msg.From.Username != "" {
		username = "@" + msg.From.Username
	}
	b.reply(ctx, msg.Chat.ID, fmt.Sprintf("ID chat kamu: %d\nUsername: %s", msg.Chat.ID, username), false)
}

// handlePivot membalas rekap stok per sektor/owner/type sebagai teks
// monospace.
func (b *Bot) handlePivot(ctx context.Context, msg *telegram.Message) {
	if !b.authorize(ctx, msg) {
		return
	}

	tbl, err := b.buildTable(ctx)
	if err != nil {
		b.replyDataError(ctx, msg.Chat.ID, err)
		return
	}
	b.reply(ctx, msg.Chat.ID, "<pre>"+html.EscapeString(pivot.Render(tbl))+"</pre>", true)
}

// handleExport mengirim rekap yang sama sebagai file xlsx.
func (b *Bot) handleExport(ctx context.Context, msg *telegram.Message) {
	if !b.authorize(ctx, msg) {
		return
	}

	tbl, err := b.buildTable(ctx)
	if err != nil {
		b.replyDataError(ctx, msg.Chat.ID, err)
		return
	}

	f, err := pivot.BuildWorkbook(tbl)
	if err != nil {
		log.Error().Err(err).Msg("susun workbook export gagal")
		b.reply(ctx, msg.Chat.ID, msgExportFailure, false)
		return
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		log.Error().Err(err).Msg("tulis workbook export gagal")
		b.reply(ctx, msg.Chat.ID, msgExportFailure, false)
		return
	}

	filename := fmt.Sprintf("rekap-stok-%s.xlsx", uuid.New().String()[:8])
	if err := b.sender.SendDocument(ctx, msg.Chat.ID, filename, buf.Bytes(), "Rekap stok per sektor"); err != nil {
		log.Error().Err(err).Int64("chat_id", msg.Chat.ID).Msg("kirim dokumen gagal")
	}
}

// handleSerials memproses teks bebas sebagai daftar SN, satu per baris.
func (b *Bot) handleSerials(ctx context.Context, msg *telegram.Message, text string) {
	ok, err := b.auth.IsAuthorized(ctx, msg.From.Username)
	if err != nil {
		log.Error().Err(err).Msg("cek otorisasi gagal")
		b.reply(ctx, msg.Chat.ID, msgStoreFailure, false)
		return
	}
	if !ok {
		log.Warn().
			Str("username", msg.From.Username).
			Int64("chat_id", msg.Chat.ID).
			Msg("akses ditolak")
		b.reply(ctx, msg.Chat.ID, msgAccessDenied, false)
		b.notifyDenied(ctx, msg, text)
		return
	}

	outcomes, err := b.inventory.CheckSerials(ctx, strings.Split(text, "\n"), msg.From.Username)
	if err != nil {
		log.Error().Err(err).Msg("cek SN gagal")
		b.reply(ctx, msg.Chat.ID, msgStoreFailure, false)
		return
	}
	if len(outcomes) == 0 {
		b.reply(ctx, msg.Chat.ID, msgEmptyPrompt, false)
		return
	}

	requester := "@" + msg.From.Username
	lines := make([]string, len(outcomes))
	for i, o := range outcomes {
		lines[i] = outcomeLine(o, requester)
	}
	b.reply(ctx, msg.Chat.ID, strings.Join(lines, "\n"), false)

	b.notifySummary(ctx, msg, inventory.Summarize(outcomes))
}

// buildTable membaca sheet stok dan mengagregasinya.
func (b *Bot) buildTable(ctx context.Context) (*pivot.Table, error) {
	rows, err := b.store.GetRows(ctx, b.stockSheet)
	if err != nil {
		return nil, fmt.Errorf("baca sheet stock: %w", err)
	}
	return pivot.Build(rows)
}

// replyDataError membalas kegagalan baca/agregasi data stok. Kondisi
// data (kosong, kolom hilang) dapat pesan spesifik, sisanya pesan umum.
// Teks error internal tidak pernah ikut terkirim ke chat.
func (b *Bot) replyDataError(ctx context.Context, chatID int64, err error) {
	var missing *pivot.MissingColumnError
	switch {
	case errors.Is(err, pivot.ErrNoData):
		log.Warn().Msg("sheet stok kosong")
		b.reply(ctx, chatID, msgNoData, false)
	case errors.As(err, &missing):
		log.Warn().Str("kolom", missing.Column).Msg("kolom header tidak ditemukan")
		b.reply(ctx, chatID, fmt.Sprintf("Kolom %s tidak ditemukan di sheet stok.", missing.Column), false)
	default:
		log.Error().Err(err).Msg("baca data stok gagal")
		b.reply(ctx, chatID, msgStoreFailure, false)
	}
}

// outcomeLine menyusun satu baris hasil untuk satu SN.
func outcomeLine(o inventory.Outcome, requester string) string {
	switch o.Kind {
	case inventory.OutcomeReserved:
		return fmt.Sprintf("SN %s berhasil direserve untuk %s.", o.Serial, requester)
	case inventory.OutcomeAlreadyUsed:
		return fmt.Sprintf("SN %s sudah digunakan oleh %s pada %s.", o.Serial, o.UsedBy, o.UsedAt)
	case inventory.OutcomeFailed:
		return fmt.Sprintf("SN %s gagal disimpan, coba lagi nanti.", o.Serial)
	default:
		return fmt.Sprintf("SN %s tidak ditemukan di data stock.", o.Serial)
	}
}
