package routes

import (
	"github.com/gin-gonic/gin"

	"contactdesk/controllers"
	"contactdesk/pkg/backend"
	"contactdesk/pkg/storage"
	"contactdesk/store"

	adminRoutes "contactdesk/routes/admin"
	publicRoutes "contactdesk/routes/public"
	uploadsRoutes "contactdesk/routes/uploads"
)

func RegisterRoutes(r *gin.Engine, be *backend.Backend, files *storage.Attachments) {
	msgs := store.NewMessages(be)
	replies := store.NewReplies(be)
	analytics := store.NewAnalytics(be)

	r.GET("/healthz", controllers.Health(be, analytics))

	publicRoutes.Register(r, msgs, files)
	uploadsRoutes.Register(r, msgs, files)
	adminRoutes.Register(r, msgs, replies, analytics)
}
