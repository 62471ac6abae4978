package server

import (
	"log"

	"userdir/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// WebsocketHandler returns a websocket handler that registers connections
// with the Hub. Clients receive the payload-less change signal after every
// successful mutation and are expected to re-fetch the directory.
func (s *Server) WebsocketHandler() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		middleware.ActiveWebSockets.Inc()
		defer middleware.ActiveWebSockets.Dec()

		if s.hub == nil {
			_ = conn.Close()
			return
		}

		client, err := s.hub.Register(conn)
		if err != nil {
			log.Printf("WebSocket: failed to register connection: %v", err)
			_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"error":"`+err.Error()+`"}`))
			_ = conn.Close()
			return
		}

		defer s.hub.UnregisterClient(client)

		// Start pumps. Write pump in a goroutine; read pump blocks in the
		// handler goroutine until the connection drops.
		go client.WritePump()
		client.ReadPump()
	})
}
