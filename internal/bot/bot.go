package bot

import (
	"context"
	"strings"
	"sync"
	"time"

	"gudang-bot/internal/auth"
	"gudang-bot/internal/inventory"
	"gudang-bot/internal/rowstore"
	"gudang-bot/internal/telegram"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// Teks balasan untuk user. Bahasanya mengikuti isi sheet di lapangan.
const (
	msgEmptyPrompt    = "Silakan kirim serial number (satu per baris), atau gunakan /pivot untuk rekap stok."
	msgUnknownCommand = "Perintah tidak dikenal. Gunakan /pivot untuk rekap stok, atau kirim serial number langsung."
	msgAccessDenied   = "Akses ditolak. Kamu belum terdaftar sebagai user aktif."
	msgNoData         = "Data stok masih kosong."
	msgStoreFailure   = "Terjadi kesalahan saat mengakses data. Coba lagi nanti."
	msgExportFailure  = "Terjadi kesalahan saat menyusun file export."
)

// Batas waktu pemrosesan satu update, termasuk semua panggilan store
// dan Telegram di dalamnya.
const handleTimeout = 60 * time.Second

// Sender adalah bagian client Telegram yang dipakai bot untuk
// mengirim, dipisah sebagai interface supaya bisa diganti fake di test.
type Sender interface {
	SendMessage(ctx context.Context, chatID int64, text string, html bool) error
	SendDocument(ctx context.Context, chatID int64, filename string, data []byte, caption string) error
}

// UpdateSource adalah sumber update untuk mode polling.
type UpdateSource interface {
	GetUpdates(ctx context.Context, offset int64, timeout int) ([]telegram.Update, error)
}

// Bot merutekan update masuk ke handler perintah dan pengecekan SN.
// Tidak ada state antar update: setiap pesan dibaca dan diputuskan
// terhadap isi sheet saat itu.
type Bot struct {
	sender      Sender
	store       rowstore.Store
	auth        *auth.Service
	inventory   *inventory.Service
	stockSheet  string
	adminChatID int64
	now         func() time.Time

	// handleMu membuat pemrosesan update tetap berurutan juga di mode
	// webhook, di mana Telegram bisa mengirim beberapa update paralel.
	handleMu sync.Mutex
}

// Options adalah dependensi Bot; semuanya wajib kecuali AdminChatID
// (0 berarti notifikasi admin mati).
type Options struct {
	Sender      Sender
	Store       rowstore.Store
	Auth        *auth.Service
	Inventory   *inventory.Service
	StockSheet  string
	AdminChatID int64
}

// New membuat Bot dari dependensi yang sudah jadi.
func New(opts Options) *Bot {
	return &Bot{
		sender:      opts.Sender,
		store:       opts.Store,
		auth:        opts.Auth,
		inventory:   opts.Inventory,
		stockSheet:  opts.StockSheet,
		adminChatID: opts.AdminChatID,
		now:         time.Now,
	}
}

// HandleUpdate memproses satu update sampai tuntas. Semua kegagalan
// eksternal ditangani di dalam: dicatat di log dan dibalas sebagai
// pesan gagal, tidak pernah menjatuhkan proses.
func (b *Bot) HandleUpdate(u telegram.Update) {
	msg := u.Message
	if msg == nil || msg.From == nil {
		return // bukan pesan biasa (edit, channel post, dsb), abaikan
	}

	b.handleMu.Lock()
	defer b.handleMu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), handleTimeout)
	defer cancel()

	text := strings.TrimSpace(msg.Text)

	log.Info().
		Int64("update_id", u.UpdateID).
		Int64("chat_id", msg.Chat.ID).
		Str("username", msg.From.Username).
		Msg("update masuk")

	switch {
	case text == "":
		b.reply(ctx, msg.Chat.ID, msgEmptyPrompt, false)
	case strings.HasPrefix(text, "/"):
		b.handleCommand(ctx, msg, text)
	default:
		b.handleSerials(ctx, msg, text)
	}
}

func (b *Bot) handleCommand(ctx context.Context, msg *telegram.Message, text string) {
	cmd := strings.ToUpper(strings.Fields(text)[0])
	// Buang suffix @namabot pada perintah yang dikirim dari grup.
	if i := strings.Index(cmd, "@"); i >= 0 {
		cmd = cmd[:i]
	}

	switch cmd {
	case "/MYID":
		b.handleMyID(ctx, msg)
	case "/PIVOT":
		b.handlePivot(ctx, msg)
	case "/EXPORT":
		b.handleExport(ctx, msg)
	default:
		b.reply(ctx, msg.Chat.ID, msgUnknownCommand, false)
	}
}

// authorize mengecek user aktif di sheet USER dan membalas sendiri
// kalau ditolak atau pengecekan gagal.
func (b *Bot) authorize(ctx context.Context, msg *telegram.Message) bool {
	ok, err := b.auth.IsAuthorized(ctx, msg.From.Username)
	if err != nil {
		log.Error().Err(err).Msg("cek otorisasi gagal")
		b.reply(ctx, msg.Chat.ID, msgStoreFailure, false)
		return false
	}
	if !ok {
		log.Warn().
			Str("username", msg.From.Username).
			Int64("chat_id", msg.Chat.ID).
			Msg("akses ditolak")
		b.reply(ctx, msg.Chat.ID, msgAccessDenied, false)
		return false
	}
	return true
}

// reply mengirim balasan; kegagalan kirim hanya dicatat, tidak diulang.
func (b *Bot) reply(ctx context.Context, chatID int64, text string, html bool) {
	if err := b.sender.SendMessage(ctx, chatID, text, html); err != nil {
		log.Error().Err(err).Int64("chat_id", chatID).Msg("kirim pesan gagal")
	}
}

// WebhookHandler menerima update Telegram dalam mode webhook. secret
// dicocokkan dengan header X-Telegram-Bot-Api-Secret-Token kalau diisi.
func (b *Bot) WebhookHandler(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if secret != "" && c.Get("X-Telegram-Bot-Api-Secret-Token") != secret {
			return fiber.NewError(fiber.StatusUnauthorized, "secret token tidak cocok")
		}

		var update telegram.Update
		if err := c.BodyParser(&update); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "body update tidak valid")
		}

		b.HandleUpdate(update)
		return c.JSON(fiber.Map{"ok": true})
	}
}

// Poll menjalankan loop getUpdates sampai ctx selesai. Update diproses
// berurutan satu per satu, tidak ada paralelisme antar pesan.
func (b *Bot) Poll(ctx context.Context, src UpdateSource, timeout int) error {
	var offset int64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		updates, err := src.GetUpdates(ctx, offset, timeout)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			log.Error().Err(err).Msg("getUpdates gagal")
			// Jeda sebentar supaya tidak menghajar API saat error beruntun.
			select {
			case <-time.After(3 * time.Second):
			case <-ctx.Done():
				return ctx.Err()
			}
			continue
		}

		for _, u := range updates {
			if u.UpdateID >= offset {
				offset = u.UpdateID + 1
			}
			b.HandleUpdate(u)
		}
	}
}
