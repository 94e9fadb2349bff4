// Package models contains data structures for the application's domain models.
package models

import "time"

// ChatMessage is a chat line scoped to a single swap request. Messages are
// ordered by server-assigned creation time ascending and are never edited or
// deleted individually; they go away only when their swap request does.
type ChatMessage struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	SwapRequestID uint      `gorm:"not null;index" json:"swap_request_id"`
	SenderID      uint      `gorm:"not null;index" json:"sender_id"`
	Content       string    `gorm:"type:text;not null" json:"content"`
	CreatedAt     time.Time `json:"created_at"`

	Sender *User `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
}

// TableName specifies the table name for GORM
func (ChatMessage) TableName() string {
	return "chat_messages"
}
