package models

import "time"

// Conversation is a single user/companion exchange persisted for context
type Conversation struct {
	ID           int       `json:"id" db:"id"`
	UserID       int       `json:"user_id" db:"user_id"`
	UserMessage  string    `json:"user_message" db:"user_message"`
	GabeResponse string    `json:"gabe_response" db:"gabe_response"`
	Mood         string    `json:"mood" db:"mood"`
	IsCrisis     bool      `json:"is_crisis" db:"is_crisis"`
	IsPrayer     bool      `json:"is_prayer" db:"is_prayer"`
	Timestamp    time.Time `json:"timestamp" db:"timestamp"`
}

// ChatRequest is an incoming chat message
type ChatRequest struct {
	Message string `json:"message" validate:"required,min=1"`
	Mood    string `json:"mood"`
}

// ChatResponse is the companion's reply
type ChatResponse struct {
	Response string `json:"response"`
	Mood     string `json:"mood"`
	IsCrisis bool   `json:"is_crisis"`
	IsPrayer bool   `json:"is_prayer"`
}
