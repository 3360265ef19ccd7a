package controllers

import (
	"crypto/subtle"
	"os"

	"github.com/gin-gonic/gin"

	"contactdesk/middleware"
	"contactdesk/pkg/storage"
	"contactdesk/store"
)

// DownloadAttachment serves a stored upload to an admin session or to a
// caller presenting the owning message's token. Every denial and every
// unknown name answers with the same not-found shape so the response never
// confirms a file exists.
func DownloadAttachment(msgs *store.Messages, files *storage.Attachments) gin.HandlerFunc {
	return func(c *gin.Context) {
		ref := c.Param("name")

		path, err := files.Path(ref)
		if err != nil {
			notFound(c)
			return
		}

		msg, err := msgs.GetByAttachmentRef(ref)
		if err != nil {
			notFound(c)
			return
		}

		if !middleware.HasAdminSession(c) {
			token := c.Query("token")
			if token == "" || subtle.ConstantTimeCompare([]byte(token), []byte(msg.Token)) != 1 {
				notFound(c)
				return
			}
		}

		if _, err := os.Stat(path); err != nil {
			notFound(c)
			return
		}
		c.FileAttachment(path, storage.DisplayName(ref))
	}
}
