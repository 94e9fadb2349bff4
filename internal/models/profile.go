// Package models contains data structures for the application's domain models.
package models

import "time"

// Profile holds the display attributes for a user. Exactly one profile exists
// per user; it is created in the same transaction as the user at signup.
type Profile struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	FullName       string    `json:"full_name"`
	Bio            string    `gorm:"type:text" json:"bio"`
	Location       string    `gorm:"default:'Not specified'" json:"location"`
	LookingToLearn string    `json:"looking_to_learn"`
	AvatarURL      string    `json:"avatar_url"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	User   *User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Skills []Skill `gorm:"foreignKey:ProfileID" json:"skills,omitempty"`
}

// TableName specifies the table name for GORM
func (Profile) TableName() string {
	return "profiles"
}
