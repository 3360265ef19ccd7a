package models

import "time"

// Reply is an admin answer to a message. Replies are append-only: never
// updated, removed only when the parent message is deleted.
type Reply struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	MessageID uint      `gorm:"index;not null" json:"-"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	CreatedAt time.Time `json:"created_at"`
}
