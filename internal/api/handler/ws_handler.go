package handler

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/smarthealthcare/clinic-api/internal/ws"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Listeners are anonymous and read-only; any origin may connect.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WSHandler upgrades GET /ws requests and hands the connection to the hub.
type WSHandler struct {
	hub *ws.Hub
	log zerolog.Logger
}

func NewWSHandler(hub *ws.Hub, log zerolog.Logger) *WSHandler {
	return &WSHandler{hub: hub, log: log}
}

// Connect upgrades the request to a websocket connection. The hub sends a
// single welcome event to the new listener, after which it receives every
// broadcast until it disconnects.
func (h *WSHandler) Connect(c echo.Context) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgrade already wrote its error response.
		h.log.Warn().Err(err).Msg("websocket upgrade failed")
		return nil
	}

	ws.Serve(h.hub, conn, h.log)
	return nil
}
