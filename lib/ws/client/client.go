package wsclient

import (
	"time"

	"github.com/gofiber/contrib/websocket"
	log "github.com/sirupsen/logrus"
)

const (
	// longer than two keepalive rounds, so one lost pong is tolerated
	pongWait     = 75 * time.Second
	maxFrameSize = 4096
)

// Conn is the read side of a websocket connection.
type Conn interface {
	ReadMessage() (messageType int, p []byte, err error)
	SetReadLimit(limit int64)
	SetReadDeadline(t time.Time) error
	SetPongHandler(h func(appData string) error)
}

func NewClient(userID string, c Conn) *WsClient {
	return &WsClient{
		conn:   c,
		userID: userID,
	}
}

// WsClient drains the socket of a subscriber. The API only pushes events,
// frames sent by the browser are dropped.
type WsClient struct {
	conn   Conn
	userID string
}

func isExpectedClose(err error) bool {
	return websocket.IsCloseError(err,
		websocket.CloseNormalClosure,
		websocket.CloseGoingAway,
		websocket.CloseNoStatusReceived,
	)
}

// Dispatch returns when the peer disconnects or stops answering pings.
func (c *WsClient) Dispatch() {
	if c.conn == nil {
		return
	}
	logger := log.WithField("user_id", c.userID)
	c.conn.SetReadLimit(maxFrameSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logger.WithError(err).Warn("ws read deadline not set")
		return
	}
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if isExpectedClose(err) {
				logger.Debug("ws client disconnected")
			} else {
				logger.WithError(err).Info("ws client read stopped")
			}
			return
		}
		logger.WithField("size", len(data)).Debug("ws frame ignored")
	}
}
