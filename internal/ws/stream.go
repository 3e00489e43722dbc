package ws

import (
	"context"
	"errors"
	"sync"

	"github.com/fasthttp/websocket"
	"github.com/gofiber/fiber/v3"
	"github.com/valyala/fasthttp"
)

var errClientClosed = errors.New("websocket closed by client")

// SnapshotWriter sends collection snapshots over a WebSocket.
type SnapshotWriter struct {
	conn *websocket.Conn
}

func (w *SnapshotWriter) WriteSnapshot(docs any) error {
	if err := WriteSnapshot(w.conn, docs); err != nil {
		// Use a specific error to signal that the client has disconnected.
		return errClientClosed
	}
	return nil
}

func (w *SnapshotWriter) WriteStatus(level, message string) {
	_ = WriteStatus(w.conn, level, message)
}

// StreamWebSocket upgrades to WebSocket and streams using the provided streamer function.
func StreamWebSocket(c fiber.Ctx, streamer func(ctx context.Context, writer *SnapshotWriter) error) error {
	type requestCtxProvider interface {
		RequestCtx() *fasthttp.RequestCtx
	}

	provider, ok := any(c).(requestCtxProvider)
	if !ok {
		return fiber.ErrInternalServerError
	}

	return Upgrader.Upgrade(provider.RequestCtx(), func(conn *websocket.Conn) {
		defer conn.Close()

		closed := make(chan struct{})
		var once sync.Once
		go func() {
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					once.Do(func() { close(closed) })
					return
				}
			}
		}()

		wsWriter := &SnapshotWriter{conn: conn}

		// Cancel the stream when the client hangs up.
		streamCtx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() {
			<-closed
			cancel()
		}()

		err := streamer(streamCtx, wsWriter)
		if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, errClientClosed) {
			_ = WriteStatus(conn, "error", "snapshot stream failed")
		}

		_ = WriteStatus(conn, "info", "snapshot stream ended")
	})
}
