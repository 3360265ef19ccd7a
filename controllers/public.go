package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"contactdesk/pkg/storage"
	"contactdesk/store"
)

// Index renders the public submission form.
func Index() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", gin.H{"name": "", "contact": "", "message": ""})
	}
}

// Submit handles a public submission. Validation failures re-render the form
// with the rejected values and write nothing; success redirects to the
// per-submission view keyed by the fresh token.
func Submit(msgs *store.Messages, files *storage.Attachments) gin.HandlerFunc {
	return func(c *gin.Context) {
		in := store.NewMessage{
			Name:    c.PostForm("name"),
			Contact: c.PostForm("contact"),
			Body:    c.PostForm("message"),
		}

		var saveAttachment func(token string) (string, error)
		if header, err := c.FormFile("attachment"); err == nil && header.Size > 0 {
			saveAttachment = func(token string) (string, error) {
				return files.Save(token, header)
			}
		}

		token, err := msgs.Create(in, saveAttachment)
		if errors.Is(err, store.ErrValidation) {
			c.HTML(http.StatusBadRequest, "index.html", gin.H{
				"error":   validationText(err),
				"name":    in.Name,
				"contact": in.Contact,
				"message": in.Body,
			})
			return
		}
		if err != nil {
			c.String(http.StatusInternalServerError, "server error")
			return
		}

		c.Redirect(http.StatusSeeOther, "/m/"+token+"?submitted=1")
	}
}

// ViewMessage renders one submission and its replies to whoever holds the
// token.
func ViewMessage(msgs *store.Messages) gin.HandlerFunc {
	return func(c *gin.Context) {
		msg, err := msgs.GetByToken(c.Param("token"))
		if errors.Is(err, store.ErrNotFound) {
			notFound(c)
			return
		}
		if err != nil {
			c.String(http.StatusInternalServerError, "server error")
			return
		}

		data := gin.H{
			"message":   msg,
			"submitted": c.Query("submitted") == "1",
		}
		if msg.AttachmentRef != "" {
			data["attachmentName"] = storage.DisplayName(msg.AttachmentRef)
			data["attachmentURL"] = "/uploads/" + msg.AttachmentRef + "?token=" + msg.Token
		}
		c.HTML(http.StatusOK, "view.html", data)
	}
}

// notFound is the single not-found shape; unknown token, unknown attachment
// and denied attachment access are indistinguishable on purpose.
func notFound(c *gin.Context) {
	c.String(http.StatusNotFound, "not found")
}

func validationText(err error) string {
	return strings.TrimPrefix(err.Error(), store.ErrValidation.Error()+": ")
}
