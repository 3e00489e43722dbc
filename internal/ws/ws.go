package ws

import (
	"encoding/json"

	"backoffice/internal/env"

	githubws "github.com/fasthttp/websocket"
	"github.com/valyala/fasthttp"
)

// Upgrader upgrades HTTP connections to WebSocket connections.
var Upgrader = githubws.FastHTTPUpgrader{
	CheckOrigin: func(ctx *fasthttp.RequestCtx) bool {
		// In drain mode, reject new WebSocket connections with 503
		if env.DRAIN_MODE {
			ctx.SetStatusCode(503)
			ctx.SetBodyString(`{"error": "Service is draining - please reconnect to active instance"}`)
			return false
		}
		return true
	},
}

// WriteStatus sends a status message to the websocket client.
func WriteStatus(conn *githubws.Conn, status string, message string) error {
	payload, err := json.Marshal(map[string]string{
		"type":    status,
		"message": message,
	})
	if err != nil {
		return err
	}
	return conn.WriteMessage(githubws.TextMessage, payload)
}

// WriteSnapshot sends a full collection snapshot to the websocket client.
func WriteSnapshot(conn *githubws.Conn, docs any) error {
	payload, err := json.Marshal(map[string]any{
		"type": "snapshot",
		"docs": docs,
	})
	if err != nil {
		return err
	}
	return conn.WriteMessage(githubws.TextMessage, payload)
}
