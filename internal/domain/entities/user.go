package entities

import "time"

// User is a learner talking to the bot.
type User struct {
	ID        int64 // Telegram user ID
	ChatID    int64 // chat the user practices in
	IsActive  bool
	CreatedAt time.Time
}

// NewUser creates an active user registered now.
func NewUser(id, chatID int64) *User {
	return &User{
		ID:        id,
		ChatID:    chatID,
		IsActive:  true,
		CreatedAt: time.Now(),
	}
}
