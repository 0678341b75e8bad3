package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"
)

const defaultBaseURL = "https://api.telegram.org"

// Timeout http harus lebih panjang dari timeout long-poll getUpdates
// supaya koneksi poll tidak diputus di tengah jalan.
const httpTimeout = 50 * time.Second

// APIError adalah balasan ok=false dari Bot API.
type APIError struct {
	Code        int
	Description string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("telegram: %d %s", e.Code, e.Description)
}

// Client bicara ke Telegram Bot API lewat net/http biasa, tanpa
// library telegram eksternal.
type Client struct {
	token   string
	baseURL string
	http    *http.Client
}

// NewClient membuat Client untuk satu bot token.
func NewClient(token string) *Client {
	return &Client{
		token:   token,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: httpTimeout},
	}
}

// SendMessage mengirim teks ke satu chat. html true berarti pesan
// dirender sebagai HTML (dipakai untuk blok <pre> laporan pivot).
func (c *Client) SendMessage(ctx context.Context, chatID int64, text string, html bool) error {
	payload := map[string]interface{}{
		"chat_id": chatID,
		"text":    text,
	}
	if html {
		payload["parse_mode"] = "HTML"
	}
	return c.call(ctx, "sendMessage", payload, nil)
}

// SendDocument mengirim file sebagai lampiran dokumen (multipart).
func (c *Client) SendDocument(ctx context.Context, chatID int64, filename string, data []byte, caption string) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if err := w.WriteField("chat_id", strconv.FormatInt(chatID, 10)); err != nil {
		return err
	}
	if caption != "" {
		if err := w.WriteField("caption", caption); err != nil {
			return err
		}
	}
	part, err := w.CreateFormFile("document", filename)
	if err != nil {
		return err
	}
	if _, err := part.Write(data); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("sendDocument"), &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("panggil sendDocument: %w", err)
	}
	defer resp.Body.Close()

	return decodeResponse("sendDocument", resp.Body, nil)
}

// GetUpdates long-poll update berikutnya mulai dari offset. timeout
// dalam detik dan harus lebih kecil dari timeout http client.
func (c *Client) GetUpdates(ctx context.Context, offset int64, timeout int) ([]Update, error) {
	payload := map[string]interface{}{
		"offset":          offset,
		"timeout":         timeout,
		"allowed_updates": []string{"message"},
	}

	var updates []Update
	if err := c.call(ctx, "getUpdates", payload, &updates); err != nil {
		return nil, err
	}
	return updates, nil
}

// SetWebhook mendaftarkan URL webhook. secret boleh kosong; kalau
// diisi, Telegram mengirimkannya balik di header setiap request.
func (c *Client) SetWebhook(ctx context.Context, url, secret string) error {
	payload := map[string]interface{}{
		"url":             url,
		"allowed_updates": []string{"message"},
	}
	if secret != "" {
		payload["secret_token"] = secret
	}
	return c.call(ctx, "setWebhook", payload, nil)
}

// DeleteWebhook melepas webhook, dipakai saat pindah ke mode polling.
func (c *Client) DeleteWebhook(ctx context.Context) error {
	return c.call(ctx, "deleteWebhook", map[string]interface{}{}, nil)
}

func (c *Client) endpoint(method string) string {
	return fmt.Sprintf("%s/bot%s/%s", c.baseURL, c.token, method)
}

// call mengirim request JSON dan men-decode result ke out (boleh nil).
func (c *Client) call(ctx context.Context, method string, payload interface{}, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(method), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("panggil %s: %w", method, err)
	}
	defer resp.Body.Close()

	return decodeResponse(method, resp.Body, out)
}

func decodeResponse(method string, r io.Reader, out interface{}) error {
	var wrapper struct {
		Ok          bool            `json:"ok"`
		Result      json.RawMessage `json:"result"`
		ErrorCode   int             `json:"error_code"`
		Description string          `json:"description"`
	}
	if err := json.NewDecoder(r).Decode(&wrapper); err != nil {
		return fmt.Errorf("decode balasan %s: %w", method, err)
	}
	if !wrapper.Ok {
		return &APIError{Code: wrapper.ErrorCode, Description: wrapper.Description}
	}
	if out != nil {
		if err := json.Unmarshal(wrapper.Result, out); err != nil {
			return fmt.Errorf("decode result %s: %w", method, err)
		}
	}
	return nil
}
