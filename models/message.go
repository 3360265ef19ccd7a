package models

import "time"

// Message is one public submission. The numeric ID is internal only; the
// Token is the public lookup key and the sole proof of read access.
type Message struct {
	ID            uint      `gorm:"primaryKey" json:"-"`
	Name          string    `gorm:"size:120;not null" json:"name"`
	Contact       string    `gorm:"size:200;not null" json:"contact"`
	Body          string    `gorm:"type:text;not null" json:"body"`
	Token         string    `gorm:"size:36;uniqueIndex;not null" json:"token"`
	AttachmentRef string    `gorm:"size:255" json:"attachment_ref,omitempty"`
	CreatedAt     time.Time `gorm:"index" json:"created_at"`

	Replies []Reply `gorm:"constraint:OnDelete:CASCADE" json:"replies"`
}

func (m *Message) HasReply() bool {
	return len(m.Replies) > 0
}
