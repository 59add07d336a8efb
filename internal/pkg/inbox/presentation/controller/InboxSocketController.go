package controller

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/kharedevansh11/RichPanel-Assignment/internal/infrastructure/realtime"
	"github.com/kharedevansh11/RichPanel-Assignment/internal/pkg/auth/presentation/middleware"
)

const defaultReadTimeout = 60 * time.Second

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins for now; plug a proper checker when the UI origin
		// is pinned down.
		return true
	},
}

// InboxSocketController handles the websocket endpoint pushing inbox updates.
// Traffic is one-way: the server pushes newMessage and conversationUpdate
// frames, the client only keeps the connection alive.
type InboxSocketController struct {
	hub *realtime.Hub
	log *zap.Logger
}

func NewInboxSocketController(hub *realtime.Hub, log *zap.Logger) *InboxSocketController {
	if log == nil {
		log = zap.NewNop()
	}
	return &InboxSocketController{hub: hub, log: log}
}

// Handle upgrades the HTTP connection and keeps the session attached until
// the client disconnects.
func (ctl *InboxSocketController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		accountID := middleware.AccountID(c)
		if accountID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing account"})
			return
		}

		ws, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			// Upgrade already wrote the response; just log and return.
			ctl.log.Debug("websocket upgrade failed", zap.Error(err))
			return
		}

		conn := realtime.NewConnection(accountID, ws)
		conn.Start()
		ctl.hub.Attach(accountID, conn.ID, conn)
		defer func() {
			ctl.hub.Detach(accountID, conn.ID)
			conn.Close(websocket.CloseNormalClosure, "session closed")
		}()

		ws.SetReadLimit(1 << 16)
		_ = ws.SetReadDeadline(time.Now().Add(defaultReadTimeout))
		ws.SetPongHandler(func(string) error {
			return ws.SetReadDeadline(time.Now().Add(defaultReadTimeout))
		})

		if payload, err := json.Marshal(realtime.Event{Type: "connected"}); err == nil {
			_ = conn.Send(payload)
		}

		// Drain inbound frames so control messages are processed; client data
		// frames carry nothing actionable.
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				return
			}
			_ = ws.SetReadDeadline(time.Now().Add(defaultReadTimeout))
		}
	}
}
