// Package models contains data structures for the application's domain models.
package models

import "time"

// Review is a rating left by one participant of a swap request. The unique
// index enforces at most one review per (swap request, reviewer) pair.
type Review struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	SwapRequestID uint      `gorm:"not null;uniqueIndex:idx_review_swap_reviewer" json:"swap_request_id"`
	ReviewerID    uint      `gorm:"not null;uniqueIndex:idx_review_swap_reviewer" json:"reviewer_id"`
	Rating        int       `gorm:"not null" json:"rating"`
	Comment       string    `gorm:"type:text" json:"comment"`
	CreatedAt     time.Time `json:"created_at"`

	Reviewer    *User        `gorm:"foreignKey:ReviewerID" json:"reviewer,omitempty"`
	SwapRequest *SwapRequest `gorm:"foreignKey:SwapRequestID" json:"swap_request,omitempty"`
}

// TableName specifies the table name for GORM
func (Review) TableName() string {
	return "reviews"
}
