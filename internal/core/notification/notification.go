// Package notification stores in-app notifications and fans events out to
// admin users.
package notification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Notification struct {
	ID       string `json:"id" gorm:"type:uuid;primaryKey"`
	UserID   string `json:"user_id" gorm:"type:uuid;not null;index"`
	Title    string `json:"title" gorm:"not null"`
	Message  string `json:"message"`
	Category string `json:"category" gorm:"index"`
	IsRead   bool   `json:"is_read" gorm:"default:false;index"`

	CreatedAt time.Time `json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	return nil
}
