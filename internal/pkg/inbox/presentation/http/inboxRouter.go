package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kharedevansh11/RichPanel-Assignment/internal/infrastructure/realtime"
	"github.com/kharedevansh11/RichPanel-Assignment/internal/pkg/auth/presentation/middleware"
	"github.com/kharedevansh11/RichPanel-Assignment/internal/pkg/auth/token"
	"github.com/kharedevansh11/RichPanel-Assignment/internal/pkg/inbox/application/usecase"
	"github.com/kharedevansh11/RichPanel-Assignment/internal/pkg/inbox/presentation/controller"
)

// Deps carries the wired use cases and collaborators the inbox routes need.
type Deps struct {
	Ingest            *usecase.IngestWebhookUseCase
	ListConversations *usecase.ListConversationsUseCase
	GetMessages       *usecase.GetMessagesUseCase
	SendReply         *usecase.SendReplyUseCase
	ConnectPage       *usecase.ConnectPageUseCase
	GetPageLink       *usecase.GetPageLinkUseCase
	DisconnectPage    *usecase.DisconnectPageUseCase

	Hub         *realtime.Hub
	Tokens      *token.Service
	VerifyToken string
	Timeout     time.Duration
	Log         *zap.Logger
}

// RegisterWebhookRoutes mounts the provider-facing webhook endpoint at the
// engine root, outside the versioned API and its auth guard.
func RegisterWebhookRoutes(r *gin.Engine, d Deps) {
	webhookCtl := controller.NewWebhookController(d.Ingest, d.VerifyToken, d.Log)

	// GET /webhook -> subscription verification handshake
	r.GET("/webhook", webhookCtl.HandleVerify())

	// POST /webhook -> inbound event batches
	r.POST("/webhook", webhookCtl.HandleReceive())
}

// RegisterRoutes mounts the operator-facing inbox endpoints under the given
// router group. Everything here requires a valid session token.
func RegisterRoutes(g *gin.RouterGroup, d Deps) {
	listCtl := controller.NewListConversationsController(d.ListConversations, d.Timeout)
	getMsgCtl := controller.NewGetMessagesController(d.GetMessages, d.Timeout)
	sendCtl := controller.NewSendMessageController(d.SendReply, d.Timeout)
	connectCtl := controller.NewConnectPageController(d.ConnectPage, d.Timeout)
	getPageCtl := controller.NewGetPageController(d.GetPageLink, d.Timeout)
	disconnectCtl := controller.NewDisconnectPageController(d.DisconnectPage, d.Timeout)
	socketCtl := controller.NewInboxSocketController(d.Hub, d.Log)

	authed := g.Group("", middleware.RequireAuth(d.Tokens))

	// GET /api/v1/conversations -> inbox list, newest activity first
	authed.GET("/conversations", listCtl.Handle())

	// GET /api/v1/conversations/:conversationId/messages -> message history
	authed.GET("/conversations/:conversationId/messages", getMsgCtl.Handle())

	// POST /api/v1/messages -> operator reply into a conversation
	authed.POST("/messages", sendCtl.Handle())

	// POST /api/v1/facebook/connect -> link a page to the account
	authed.POST("/facebook/connect", connectCtl.Handle())

	// GET /api/v1/facebook/connect -> current link status
	authed.GET("/facebook/connect", getPageCtl.Handle())

	// DELETE /api/v1/facebook/connect -> unlink the page
	authed.DELETE("/facebook/connect", disconnectCtl.Handle())

	// GET /api/v1/ws -> websocket pushing inbox updates
	authed.GET("/ws", socketCtl.Handle())
}
