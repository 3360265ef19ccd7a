package uploads

import (
	"github.com/gin-gonic/gin"

	"contactdesk/controllers"
	"contactdesk/pkg/storage"
	"contactdesk/store"
)

// Uploads are not served statically; every download goes through the
// token-gated controller.
func Register(r *gin.Engine, msgs *store.Messages, files *storage.Attachments) {
	r.GET("/uploads/:name", controllers.DownloadAttachment(msgs, files))
}
