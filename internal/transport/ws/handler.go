package ws

import (
	"net/http"

	"github.com/gobwas/ws"
	broadcastDomain "github.com/muhammadchandra19/quotestream/internal/domain/broadcast"
	"github.com/muhammadchandra19/quotestream/pkg/config"
	"github.com/muhammadchandra19/quotestream/pkg/logger"
	"github.com/muhammadchandra19/quotestream/pkg/util"
	"github.com/oklog/ulid/v2"
)

// Path is where subscribers upgrade to a websocket.
const Path = "/ws/quotes"

// Handler upgrades requests to websockets and registers each connection with the hub.
type Handler struct {
	hub    broadcastDomain.Hub
	cfg    config.HubConfig
	logger logger.Interface
}

// NewHandler creates a new Handler.
func NewHandler(hub broadcastDomain.Hub, cfg config.HubConfig, log logger.Interface) *Handler {
	return &Handler{
		hub:    hub,
		cfg:    cfg,
		logger: log.With(logger.NewField("component", "ws")),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, _, _, err := ws.UpgradeHTTP(r, w)
	if err != nil {
		h.logger.Warn("websocket upgrade failed",
			logger.NewField("remoteAddr", r.RemoteAddr),
			logger.NewField("error", err.Error()),
		)
		return
	}

	// ids sort by connect time.
	id := ulid.Make().String()
	ctx := util.WithSubscriberID(r.Context(), id)

	sub := newSubscriber(id, conn, h.cfg.SendQueueSize, h.cfg.WriteTimeout, h.cfg.PingInterval, h.logger)
	h.hub.Register(sub)
	h.logger.DebugContext(ctx, "subscriber connected")

	go sub.writePump()
	go func() {
		sub.readPump()
		h.hub.Unregister(id)
		h.logger.DebugContext(ctx, "subscriber disconnected")
	}()
}
