// Package models contains data structures for the application's domain models.
package models

import "time"

// Notification tells a user something happened while they were away. The core
// creates one per chat message, addressed to the message's recipient; it is
// marked read in bulk when the owner views their list.
type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Message   string    `gorm:"not null" json:"message"`
	Link      string    `json:"link,omitempty"`
	IsRead    bool      `gorm:"default:false;index" json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM
func (Notification) TableName() string {
	return "notifications"
}
