// Package models contains data structures for the application's domain models.
package models

import "time"

// Skill is something a profile's owner can teach, wants to learn, or both.
// The two facets are independent and duplicates within a profile are allowed.
type Skill struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ProfileID   uint      `gorm:"not null;index" json:"profile_id"`
	Name        string    `gorm:"not null" json:"name"`
	Category    string    `json:"category"`
	CanTeach    bool      `gorm:"default:false" json:"can_teach"`
	WantToLearn bool      `gorm:"default:false" json:"want_to_learn"`
	CreatedAt   time.Time `json:"created_at"`

	Profile *Profile `gorm:"foreignKey:ProfileID" json:"profile,omitempty"`
}

// TableName specifies the table name for GORM
func (Skill) TableName() string {
	return "skills"
}
