package store

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"contactdesk/models"
	"contactdesk/pkg/backend"
)

// Replies persists admin answers. Append-only: no update, no individual
// delete.
type Replies struct {
	db *gorm.DB
}

func NewReplies(be *backend.Backend) *Replies {
	return &Replies{db: be.DB}
}

// Create attaches a reply to an existing message. Reports ErrNotFound when
// the message id is unknown so no orphan reply can appear; callers decide
// whether that is worth surfacing.
func (s *Replies) Create(messageID uint, body string) error {
	body = strings.TrimSpace(body)
	if body == "" {
		return fmt.Errorf("%w: reply body must not be empty", ErrValidation)
	}

	var parent models.Message
	err := s.db.Select("id").First(&parent, messageID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	return s.db.Create(&models.Reply{MessageID: messageID, Body: body}).Error
}

// ListFor returns the replies of one message in ascending creation order.
func (s *Replies) ListFor(messageID uint) ([]models.Reply, error) {
	var replies []models.Reply
	err := s.db.Where("message_id = ?", messageID).Order("created_at ASC, id ASC").Find(&replies).Error
	return replies, err
}
