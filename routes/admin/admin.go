package admin

import (
	"github.com/gin-gonic/gin"

	"contactdesk/controllers"
	"contactdesk/middleware"
	"contactdesk/store"
)

func Register(r *gin.Engine, msgs *store.Messages, replies *store.Replies, analytics *store.Analytics) {
	r.GET("/login", controllers.LoginForm())
	r.POST("/login", controllers.Login())
	r.GET("/logout", controllers.Logout())

	pages := r.Group("/", middleware.AdminPage())
	pages.GET("/messages", controllers.ListMessages(msgs, analytics))
	pages.POST("/messages/:id/reply", controllers.CreateReply(replies))

	api := r.Group("/api", middleware.AdminAPI())
	api.GET("/stats", controllers.Stats(analytics))
}
