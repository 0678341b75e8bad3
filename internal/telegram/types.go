package telegram

// Tipe wire Bot API. Hanya field yang dipakai bot yang dipetakan.

// Update adalah satu kejadian masuk dari getUpdates atau webhook.
type Update struct {
	UpdateID int64    `json:"update_id"`
	Message  *Message `json:"message"`
}

// Message adalah pesan chat masuk.
type Message struct {
	MessageID int64  `json:"message_id"`
	From      *User  `json:"from"`
	Chat      Chat   `json:"chat"`
	Date      int64  `json:"date"`
	Text      string `json:"text"`
}

// User adalah pengirim pesan.
type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	Username  string `json:"username"`
}

// Chat adalah ruang percakapan tujuan balasan.
type Chat struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}
