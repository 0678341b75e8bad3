package bot

import (
	"context"
	"fmt"

	"gudang-bot/internal/inventory"
	"gudang-bot/internal/models"
	"gudang-bot/internal/telegram"

	"github.com/rs/zerolog/log"
)

// notifyDenied memberi tahu admin ada percobaan akses dari user yang
// tidak terdaftar, lengkap dengan input mentahnya.
func (b *Bot) notifyDenied(ctx context.Context, msg *telegram.Message, input string) {
	if b.adminChatID == 0 {
		return
	}

	username := "-"
	if msg.From.Username != "" {
		username = "@" + msg.From.Username
	}
	text := fmt.Sprintf(
		"Akses ditolak untuk user tanpa izin.\nUser: %s\nChat ID: %d\nInput: %s\nWaktu: %s",
		username, msg.Chat.ID, input, b.now().Format(models.TimestampLayout),
	)
	if err := b.sender.SendMessage(ctx, b.adminChatID, text, false); err != nil {
		log.Error().Err(err).Msg("notifikasi admin gagal")
	}
}

// notifySummary mengirim rekap hasil pengecekan SN ke admin.
func (b *Bot) notifySummary(ctx context.Context, msg *telegram.Message, s inventory.Summary) {
	if b.adminChatID == 0 {
		return
	}

	text := fmt.Sprintf(
		"Rekap pengecekan SN oleh @%s:\nReserve baru: %d\nSudah digunakan: %d\nTidak ditemukan: %d",
		msg.From.Username, s.Reserved, s.AlreadyUsed, s.NotFound,
	)
	if s.Failed > 0 {
		text += fmt.Sprintf("\nGagal disimpan: %d", s.Failed)
	}
	if err := b.sender.SendMessage(ctx, b.adminChatID, text, false); err != nil {
		log.Error().Err(err).Msg("notifikasi admin gagal")
	}
}
