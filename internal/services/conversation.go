// internal/services/conversation.go
package services

import (
	"fmt"
	"time"

	"github.com/gabelabs/gabe-web/internal/database"
	"github.com/gabelabs/gabe-web/internal/models"
)

type ConversationService struct {
	db *database.DB
}

func NewConversationService(db *database.DB) *ConversationService {
	return &ConversationService{db: db}
}

// SaveExchange records a single user/companion exchange
func (s *ConversationService) SaveExchange(conv *models.Conversation) error {
	if conv.Timestamp.IsZero() {
		conv.Timestamp = time.Now()
	}

	query := `
		INSERT INTO conversations (user_id, user_message, gabe_response, mood, is_crisis, is_prayer, timestamp)
		VALUES (:user_id, :user_message, :gabe_response, :mood, :is_crisis, :is_prayer, :timestamp)
	`

	if _, err := s.db.NamedExec(query, conv); err != nil {
		return fmt.Errorf("failed to save conversation: %w", err)
	}
	return nil
}

// RecentExchanges returns the user's last n exchanges, oldest first,
// for use as conversation context.
func (s *ConversationService) RecentExchanges(userID, n int) ([]models.Conversation, error) {
	var convs []models.Conversation
	query := `SELECT id, user_id, user_message, gabe_response, mood, is_crisis, is_prayer, timestamp
			  FROM conversations WHERE user_id = ? ORDER BY timestamp DESC LIMIT ?`

	if err := s.db.Select(&convs, query, userID, n); err != nil {
		return nil, fmt.Errorf("failed to load conversations: %w", err)
	}

	// Reverse into chronological order
	for i, j := 0, len(convs)-1; i < j; i, j = i+1, j-1 {
		convs[i], convs[j] = convs[j], convs[i]
	}
	return convs, nil
}

// ClearHistory deletes all of a user's conversation history
func (s *ConversationService) ClearHistory(userID int) error {
	query := `DELETE FROM conversations WHERE user_id = ?`
	if _, err := s.db.Exec(query, userID); err != nil {
		return fmt.Errorf("failed to clear conversations: %w", err)
	}
	return nil
}
