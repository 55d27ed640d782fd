package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/yoockh/mockview/internal/live"
	"github.com/yoockh/mockview/internal/services"
	"github.com/yoockh/mockview/internal/utils"
)

// WSHandler is the duplex variant of respond/end: client messages drive the
// orchestrator, and every hub event for the session is forwarded down the
// socket.
type WSHandler struct {
	interviews services.InterviewService
	hub        *live.Hub
	upgrader   websocket.Upgrader
	log        *logrus.Logger
}

func NewWSHandler(interviews services.InterviewService, hub *live.Hub, log *logrus.Logger) *WSHandler {
	return &WSHandler{
		interviews: interviews,
		hub:        hub,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true }, // TODO: restrict origin in prod
		},
		log: log,
	}
}

type wsClientMsg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

type wsConn struct {
	c  *websocket.Conn
	mu sync.Mutex
}

func (w *wsConn) writeText(b []byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.c.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return w.c.WriteMessage(websocket.TextMessage, b)
}

func (w *wsConn) writeError(code utils.Code, msg string) {
	b, _ := json.Marshal(gin.H{"type": "error", "code": code, "message": msg})
	_ = w.writeText(b)
}

func (h *WSHandler) InterviewWS(c *gin.Context) {
	sessionID := c.Param("session_id")
	if sessionID == "" {
		writeError(c, utils.E(utils.CodeInvalidArgument, "WSHandler.InterviewWS", "missing session_id", nil))
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// upgrade already wrote response in most cases
		return
	}
	defer conn.Close()

	wc := &wsConn{c: conn}

	sub := h.hub.Subscribe(sessionID)
	defer sub.Close()

	ctx := c.Request.Context()

	// reader: client messages -> orchestrator; replies come back via the hub
	readDone := make(chan struct{})
	go func() {
		defer close(readDone)

		for {
			_, data, rerr := conn.ReadMessage()
			if rerr != nil {
				return
			}

			var msg wsClientMsg
			if err := json.Unmarshal(data, &msg); err != nil {
				wc.writeError(utils.CodeInvalidArgument, "invalid json")
				continue
			}

			switch msg.Type {
			case "user_response":
				if _, err := h.interviews.ProcessTurn(ctx, sessionID, msg.Content); err != nil {
					var ae *utils.AppError
					code := utils.CodeInternal
					m := "failed to process response"
					if errors.As(err, &ae) {
						code, m = ae.Code, ae.Message
					}
					wc.writeError(code, m)
				}

			case "end_interview":
				if _, err := h.interviews.End(ctx, sessionID); err != nil {
					var ae *utils.AppError
					code := utils.CodeInternal
					m := "failed to end interview"
					if errors.As(err, &ae) {
						code, m = ae.Code, ae.Message
					}
					wc.writeError(code, m)
					continue
				}
				// the termination report reaches the client via the hub
				return

			default:
				wc.writeError(utils.CodeInvalidArgument, "unknown message type")
			}
		}
	}()

	// writer: hub events -> socket
	for {
		select {
		case <-readDone:
			return
		case <-ctx.Done():
			return
		case payload, ok := <-sub.C:
			if !ok {
				return
			}
			if werr := wc.writeText(payload); werr != nil {
				return
			}
		}
	}
}
