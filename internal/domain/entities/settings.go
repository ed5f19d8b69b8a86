package entities

import (
	"time"
)

// PromptMode selects what the bot shows when asking for a word.
type PromptMode string

const (
	PromptModeEnglish PromptMode = "english" // show the English gloss
	PromptModeArabic  PromptMode = "arabic"  // show the Arabic script
)

// IsValid reports whether m is a supported prompt mode.
func (m PromptMode) IsValid() bool {
	return m == PromptModeEnglish || m == PromptModeArabic
}

// UserSettings stores user-specific practice preferences.
type UserSettings struct {
	UserID     int64
	PromptMode PromptMode // what a practice prompt displays
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewUserSettings creates a new UserSettings instance with default values.
func NewUserSettings(userID int64) *UserSettings {
	now := time.Now()
	return &UserSettings{
		UserID:     userID,
		PromptMode: PromptModeEnglish,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
