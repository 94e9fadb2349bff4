// Package models contains data structures for the application's domain models.
package models

import "time"

// SwapStatus represents the status of a swap request.
type SwapStatus string

const (
	// SwapStatusPending indicates a swap request awaiting a decision.
	SwapStatusPending SwapStatus = "pending"
	// SwapStatusAccepted indicates an accepted swap request.
	SwapStatusAccepted SwapStatus = "accepted"
	// SwapStatusDeclined indicates a declined swap request.
	SwapStatusDeclined SwapStatus = "declined"
)

// SwapRequest is a directed proposal from one user to another to exchange
// instruction in one skill for another. The unique index over the full
// (from, to, offered, requested) tuple backs the duplicate pre-check so two
// concurrent identical sends cannot both insert.
type SwapRequest struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	FromUserID       uint       `gorm:"not null;uniqueIndex:idx_swap_request_tuple" json:"from_user_id"`
	ToUserID         uint       `gorm:"not null;uniqueIndex:idx_swap_request_tuple" json:"to_user_id"`
	OfferedSkillID   uint       `gorm:"not null;uniqueIndex:idx_swap_request_tuple" json:"offered_skill_id"`
	RequestedSkillID uint       `gorm:"not null;uniqueIndex:idx_swap_request_tuple" json:"requested_skill_id"`
	Status           SwapStatus `gorm:"type:varchar(20);default:'pending';index:idx_swap_requests_status" json:"status"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`

	// Relationships
	FromUser       *User         `gorm:"foreignKey:FromUserID" json:"from_user,omitempty"`
	ToUser         *User         `gorm:"foreignKey:ToUserID" json:"to_user,omitempty"`
	OfferedSkill   *Skill        `gorm:"foreignKey:OfferedSkillID" json:"offered_skill,omitempty"`
	RequestedSkill *Skill        `gorm:"foreignKey:RequestedSkillID" json:"requested_skill,omitempty"`
	Messages       []ChatMessage `gorm:"foreignKey:SwapRequestID;constraint:OnDelete:CASCADE" json:"messages,omitempty"`
	Reviews        []Review      `gorm:"foreignKey:SwapRequestID;constraint:OnDelete:CASCADE" json:"reviews,omitempty"`
}

// TableName specifies the table name for GORM
func (SwapRequest) TableName() string {
	return "swap_requests"
}

// IsParticipant reports whether the given user is either side of the swap.
func (r *SwapRequest) IsParticipant(userID uint) bool {
	return r.FromUserID == userID || r.ToUserID == userID
}

// Counterpart returns the participant who is not the given user.
func (r *SwapRequest) Counterpart(userID uint) uint {
	if r.FromUserID == userID {
		return r.ToUserID
	}
	return r.FromUserID
}
