package domain

import "time"

// User is consumed, not owned: identity comes from the auth provider,
// the core only needs display names for conflict messages. Email may be
// absent for guest-like anonymous accounts.
type User struct {
	ID             string    `json:"id"`
	DisplayName    string    `json:"display_name"`
	Email          *string   `json:"email,omitempty"`
	TelegramChatID *int64    `json:"telegram_chat_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type CreateUserInput struct {
	DisplayName    string
	Email          *string
	TelegramChatID *int64
}
