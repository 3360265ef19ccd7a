package public

import (
	"github.com/gin-gonic/gin"

	"contactdesk/controllers"
	"contactdesk/pkg/storage"
	"contactdesk/store"
)

func Register(r *gin.Engine, msgs *store.Messages, files *storage.Attachments) {
	r.GET("/", controllers.Index())
	r.POST("/", controllers.Submit(msgs, files))
	r.GET("/m/:token", controllers.ViewMessage(msgs))
}
