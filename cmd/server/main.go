package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gudang-bot/internal/auth"
	"gudang-bot/internal/bot"
	"gudang-bot/internal/config"
	"gudang-bot/internal/inventory"
	"gudang-bot/internal/rowstore"
	"gudang-bot/internal/telegram"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := newStore(ctx, cfg)
	client := telegram.NewClient(cfg.BotToken)

	b := bot.New(bot.Options{
		Sender:      client,
		Store:       store,
		Auth:        auth.NewService(store, cfg.UserSheet),
		Inventory:   inventory.NewService(store, cfg.StockSheet, cfg.MonitoringSheet),
		StockSheet:  cfg.StockSheet,
		AdminChatID: cfg.AdminChatID,
	})

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var e *fiber.Error
			if errors.As(err, &e) {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Error().Err(err).Msg("error tidak terduga")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Kesalahan server tidak terduga",
			})
		},
	})

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	webhookMode := cfg.WebhookURL != ""
	if webhookMode {
		app.Post("/telegram/webhook", b.WebhookHandler(cfg.WebhookSecret))
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("port", cfg.HTTPPort).Msg("HTTP server jalan")
		return app.Listen(":" + cfg.HTTPPort)
	})

	if webhookMode {
		g.Go(func() error {
			if err := client.SetWebhook(ctx, cfg.WebhookURL, cfg.WebhookSecret); err != nil {
				return fmt.Errorf("set webhook: %w", err)
			}
			log.Info().Str("url", cfg.WebhookURL).Msg("webhook terpasang")
			<-ctx.Done()
			return ctx.Err()
		})
	} else {
		g.Go(func() error {
			// Webhook lama dilepas dulu, getUpdates ditolak Telegram
			// selama webhook masih terpasang.
			if err := client.DeleteWebhook(ctx); err != nil {
				return fmt.Errorf("hapus webhook: %w", err)
			}
			log.Info().Int("timeout", cfg.PollTimeout).Msg("mode polling jalan")
			return b.Poll(ctx, client, cfg.PollTimeout)
		})
	}

	g.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("sinyal berhenti diterima, mematikan server")
		return app.ShutdownWithTimeout(10 * time.Second)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Msg("bot berhenti dengan error")
	}
	log.Info().Msg("bot berhenti")
}

// newStore memilih backend penyimpanan baris sesuai konfigurasi.
func newStore(ctx context.Context, cfg *config.Config) rowstore.Store {
	switch cfg.StoreBackend {
	case config.BackendWorkbook:
		store, err := rowstore.NewWorkbook(cfg.WorkbookPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.WorkbookPath).Msg("buka workbook gagal")
		}
		return store
	default:
		store, err := rowstore.NewSheets(ctx, cfg.SpreadsheetID, cfg.GoogleCredentials)
		if err != nil {
			log.Fatal().Err(err).Msg("koneksi Google Sheets gagal")
		}
		return store
	}
}
