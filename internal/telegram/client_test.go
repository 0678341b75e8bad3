package telegram

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	c := NewClient("TESTTOKEN")
	c.baseURL = srv.URL
	return c, srv
}

func TestSendMessage(t *testing.T) {
	var gotPath string
	var gotBody map[string]interface{}

	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		io.WriteString(w, `{"ok":true,"result":{}}`)
	})
	defer srv.Close()

	err := c.SendMessage(context.Background(), 12345, "halo", true)
	require.NoError(t, err)

	require.Equal(t, "/botTESTTOKEN/sendMessage", gotPath)
	require.Equal(t, float64(12345), gotBody["chat_id"])
	require.Equal(t, "halo", gotBody["text"])
	require.Equal(t, "HTML", gotBody["parse_mode"])
}

func TestSendMessagePlainHasNoParseMode(t *testing.T) {
	var gotBody map[string]interface{}

	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		io.WriteString(w, `{"ok":true,"result":{}}`)
	})
	defer srv.Close()

	require.NoError(t, c.SendMessage(context.Background(), 1, "halo", false))
	_, ok := gotBody["parse_mode"]
	require.False(t, ok)
}

func TestSendMessageAPIError(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"ok":false,"error_code":403,"description":"Forbidden: bot was blocked by the user"}`)
	})
	defer srv.Close()

	err := c.SendMessage(context.Background(), 1, "halo", false)
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, 403, apiErr.Code)
	require.Contains(t, apiErr.Description, "blocked")
}

func TestGetUpdates(t *testing.T) {
	var gotBody map[string]interface{}

	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/botTESTTOKEN/getUpdates", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		io.WriteString(w, `{"ok":true,"result":[
			{"update_id":7,"message":{"message_id":1,"from":{"id":55,"first_name":"Budi","username":"budi"},"chat":{"id":55,"type":"private"},"date":1714550400,"text":"/pivot"}},
			{"update_id":8,"message":{"message_id":2,"from":{"id":56,"username":"sari"},"chat":{"id":56,"type":"private"},"date":1714550401,"text":"ONT-1"}}
		]}`)
	})
	defer srv.Close()

	updates, err := c.GetUpdates(context.Background(), 7, 30)
	require.NoError(t, err)
	require.Len(t, updates, 2)

	require.Equal(t, float64(7), gotBody["offset"])
	require.Equal(t, float64(30), gotBody["timeout"])

	require.Equal(t, int64(7), updates[0].UpdateID)
	require.Equal(t, "/pivot", updates[0].Message.Text)
	require.Equal(t, "budi", updates[0].Message.From.Username)
	require.Equal(t, int64(55), updates[0].Message.Chat.ID)
	require.Equal(t, "ONT-1", updates[1].Message.Text)
}

func TestSendDocument(t *testing.T) {
	var gotChatID, gotFilename, gotContent, gotCaption string

	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotChatID = r.FormValue("chat_id")
		gotCaption = r.FormValue("caption")

		file, header, err := r.FormFile("document")
		require.NoError(t, err)
		defer file.Close()
		gotFilename = header.Filename

		data, err := io.ReadAll(file)
		require.NoError(t, err)
		gotContent = string(data)

		io.WriteString(w, `{"ok":true,"result":{}}`)
	})
	defer srv.Close()

	err := c.SendDocument(context.Background(), 99, "rekap.xlsx", []byte("isi-file"), "Rekap stok")
	require.NoError(t, err)

	require.Equal(t, "99", gotChatID)
	require.Equal(t, "rekap.xlsx", gotFilename)
	require.Equal(t, "isi-file", gotContent)
	require.Equal(t, "Rekap stok", gotCaption)
}

func TestSetWebhook(t *testing.T) {
	var gotBody map[string]interface{}

	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/botTESTTOKEN/setWebhook", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		io.WriteString(w, `{"ok":true,"result":true}`)
	})
	defer srv.Close()

	err := c.SetWebhook(context.Background(), "https://bot.example.com/telegram/webhook", "rahasia")
	require.NoError(t, err)

	require.Equal(t, "https://bot.example.com/telegram/webhook", gotBody["url"])
	require.Equal(t, "rahasia", gotBody["secret_token"])
}
