package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"contactdesk/models"
	"contactdesk/pkg/backend"
)

var (
	// ErrValidation marks a rejected submission; nothing was written.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound marks an unknown token, id or attachment reference.
	ErrNotFound = errors.New("not found")
)

var validate = validator.New()

// NewMessage is the validated input of a public submission.
type NewMessage struct {
	Name    string `validate:"required,min=2"`
	Contact string `validate:"required,min=3"`
	Body    string `validate:"required,min=10"`
}

// ListFilter narrows the admin listing by reply state.
type ListFilter string

const (
	FilterAll       ListFilter = "all"
	FilterReplied   ListFilter = "replied"
	FilterUnreplied ListFilter = "unreplied"
)

// Messages persists submissions. All access to the messages table goes
// through here.
type Messages struct {
	db      *gorm.DB
	dialect backend.Dialect
}

func NewMessages(be *backend.Backend) *Messages {
	return &Messages{db: be.DB, dialect: be.Dialect}
}

// Create validates the submission, mints its capability token and persists
// the row. saveAttachment, when non-nil, is called with the fresh token and
// must return the stored attachment reference; it runs before the insert so
// a failed upload leaves no row behind. Returns the token, never the
// internal id.
func (s *Messages) Create(in NewMessage, saveAttachment func(token string) (string, error)) (string, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Contact = strings.TrimSpace(in.Contact)
	in.Body = strings.TrimSpace(in.Body)

	if err := validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return "", fmt.Errorf("%w: %s", ErrValidation, fieldMessage(verrs[0]))
		}
		return "", fmt.Errorf("%w: invalid submission", ErrValidation)
	}

	token := uuid.NewString()

	ref := ""
	if saveAttachment != nil {
		var err error
		if ref, err = saveAttachment(token); err != nil {
			return "", err
		}
	}

	msg := models.Message{
		Name:          in.Name,
		Contact:       in.Contact,
		Body:          in.Body,
		Token:         token,
		AttachmentRef: ref,
	}
	if err := s.db.Create(&msg).Error; err != nil {
		return "", err
	}
	return token, nil
}

// GetByToken is the public lookup; holding the token is the authorization.
// Replies come preloaded in ascending creation order.
func (s *Messages) GetByToken(token string) (*models.Message, error) {
	var msg models.Message
	err := s.db.Preload("Replies", replyOrder).Where("token = ?", token).First(&msg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// GetByAttachmentRef resolves the message owning a stored attachment.
func (s *Messages) GetByAttachmentRef(ref string) (*models.Message, error) {
	var msg models.Message
	err := s.db.Where("attachment_ref = ?", ref).First(&msg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// List returns messages newest-first for the admin view. A non-empty search
// restricts to rows whose name, contact or body contains it,
// case-insensitively. The replied/unreplied filter is applied after the
// fetch, on the preloaded reply sets.
func (s *Messages) List(search string, filter ListFilter) ([]models.Message, error) {
	q := s.db.Preload("Replies", replyOrder).Order("id DESC")
	if search != "" {
		needle := "%" + strings.ToLower(search) + "%"
		d := s.dialect
		cond := d.ContainsFold("name") + " OR " + d.ContainsFold("contact") + " OR " + d.ContainsFold("body")
		q = q.Where(cond, needle, needle, needle)
	}

	var msgs []models.Message
	if err := q.Find(&msgs).Error; err != nil {
		return nil, err
	}

	switch filter {
	case FilterReplied, FilterUnreplied:
		wantReplied := filter == FilterReplied
		kept := msgs[:0]
		for _, m := range msgs {
			if m.HasReply() == wantReplied {
				kept = append(kept, m)
			}
		}
		msgs = kept
	}
	return msgs, nil
}

// Delete removes a message and, through the backend cascade, all of its
// replies. Only administrative maintenance calls this; it is not exposed
// over HTTP.
func (s *Messages) Delete(id uint) error {
	res := s.db.Delete(&models.Message{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func replyOrder(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC, id ASC")
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "Name":
		return "name must be at least 2 characters"
	case "Contact":
		return "contact must be at least 3 characters"
	case "Body":
		return "message must be at least 10 characters"
	}
	return "invalid submission"
}
