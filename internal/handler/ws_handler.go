package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/scholara/campus-backend/internal/middleware"
	"github.com/scholara/campus-backend/internal/service"
	ws "github.com/scholara/campus-backend/internal/websocket"
)

// statsPushInterval is how often the dashboard stream pushes a fresh
// snapshot without being asked.
const statsPushInterval = 15 * time.Second

// buildUpgrader creates a WebSocket upgrader with origin validation.
// An empty allowedOrigins slice permits all origins (development mode).
func buildUpgrader(allowedOrigins []string) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if len(allowedOrigins) == 0 {
				return true
			}
			origin := r.Header.Get("Origin")
			for _, allowed := range allowedOrigins {
				if strings.EqualFold(allowed, origin) {
					return true
				}
			}
			return false
		},
	}
}

// WSHandler streams dashboard aggregates over WebSocket.
type WSHandler struct {
	dashboardService *service.DashboardService
	log              zerolog.Logger
	upgrader         websocket.Upgrader
}

// NewWSHandler creates a new WSHandler.
func NewWSHandler(dashboardService *service.DashboardService, log zerolog.Logger, allowedOrigins []string) *WSHandler {
	return &WSHandler{
		dashboardService: dashboardService,
		log:              log.With().Str("component", "ws_handler").Logger(),
		upgrader:         buildUpgrader(allowedOrigins),
	}
}

// DashboardStream godoc
// WS /ws/v1/dashboard/stream?token=...
// Pushes a stats snapshot on connect, then every statsPushInterval.
// The client may send {"action":"refresh"} to force a push.
func (h *WSHandler) DashboardStream(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	defer conn.Close()

	wsLog := h.log.With().Int("admin_id", claims.AdminID).Logger()
	wsLog.Info().Msg("Admin connected to dashboard stream")

	// Reader goroutine: refresh/ping requests land on this channel,
	// read errors close it.
	requests := make(chan ws.Action)
	go func() {
		defer close(requests)
		for {
			var msg ws.RequestPayload
			if err := ws.ReadJSON(conn, &msg); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					wsLog.Warn().Err(err).Msg("Unexpected close")
				} else {
					wsLog.Debug().Msg("Connection closed")
				}
				return
			}
			requests <- msg.Action
		}
	}()

	ctx := c.Request.Context()
	h.pushStats(ctx, conn, wsLog)

	ticker := time.NewTicker(statsPushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			wsLog.Info().Msg("Admin disconnected from dashboard stream")
			return
		case <-ticker.C:
			h.pushStats(ctx, conn, wsLog)
		case action, ok := <-requests:
			if !ok {
				return
			}
			switch action {
			case ws.ActionRefresh:
				h.pushStats(ctx, conn, wsLog)
			case ws.ActionPing:
				ws.WriteTyped(conn, ws.PongResponse{Event: ws.EventPong})
			default:
				wsLog.Warn().Str("action", string(action)).Msg("Unknown action")
				ws.WriteError(conn, "unknown action: "+string(action))
			}
		}
	}
}

func (h *WSHandler) pushStats(ctx context.Context, conn *websocket.Conn, wsLog zerolog.Logger) {
	stats, err := h.dashboardService.Stats(ctx)
	if err != nil {
		wsLog.Error().Err(err).Msg("Dashboard stats fetch failed")
		ws.WriteError(conn, "stats unavailable")
		return
	}
	ws.WriteTyped(conn, ws.StatsResponse{Event: ws.EventStats, Data: stats})
}
