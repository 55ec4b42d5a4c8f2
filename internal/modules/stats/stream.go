package stats

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	pushInterval = 5 * time.Second
	writeWait    = 10 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Stream pushes dashboard snapshots to websocket subscribers on a fixed
// interval so the placement-cell dashboard updates without polling.
type Stream struct {
	service  *Service
	interval time.Duration
}

func NewStream(service *Service) *Stream {
	return &Stream{service: service, interval: pushInterval}
}

// Serve upgrades the request and streams snapshots until the client
// disconnects or a write fails.
func (s *Stream) Serve(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("stats stream upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	// Drain incoming frames so close messages are processed.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ctx := c.Request.Context()
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	if err := s.push(c, conn); err != nil {
		return
	}
	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.push(c, conn); err != nil {
				return
			}
		}
	}
}

func (s *Stream) push(c *gin.Context, conn *websocket.Conn) error {
	snapshot, err := s.service.Dashboard(c.Request.Context())
	if err != nil {
		log.Printf("stats stream snapshot failed: %v", err)
		return err
	}
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(snapshot)
}
