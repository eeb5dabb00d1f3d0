package wsclient

import (
	"testing"
	"time"

	fastws "github.com/fasthttp/websocket"
	"github.com/gofiber/contrib/websocket"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	frames    [][]byte
	closeErr  error
	limit     int64
	deadlines []time.Time
	onPong    func(string) error
}

func (f *fakeConn) ReadMessage() (int, []byte, error) {
	if len(f.frames) == 0 {
		return 0, nil, f.closeErr
	}
	frame := f.frames[0]
	f.frames = f.frames[1:]
	if f.onPong != nil {
		_ = f.onPong("")
	}
	return websocket.TextMessage, frame, nil
}

func (f *fakeConn) SetReadLimit(limit int64) {
	f.limit = limit
}

func (f *fakeConn) SetReadDeadline(t time.Time) error {
	f.deadlines = append(f.deadlines, t)
	return nil
}

func (f *fakeConn) SetPongHandler(h func(appData string) error) {
	f.onPong = h
}

func TestDispatch(t *testing.T) {
	t.Run(`drains frames until close`, func(t *testing.T) {
		conn := &fakeConn{
			frames:   [][]byte{[]byte("hello"), []byte("again")},
			closeErr: &fastws.CloseError{Code: websocket.CloseNormalClosure},
		}
		NewClient("user-1", conn).Dispatch()
		require.Empty(t, conn.frames)
		require.Equal(t, int64(maxFrameSize), conn.limit)
		// initial deadline plus one extension per pong
		require.Len(t, conn.deadlines, 3)
		require.True(t, conn.deadlines[0].After(time.Now().Add(pongWait-time.Minute)))
	})

	t.Run(`read error ends dispatch`, func(t *testing.T) {
		conn := &fakeConn{closeErr: errors.New("i/o timeout")}
		NewClient("user-1", conn).Dispatch()
		require.Len(t, conn.deadlines, 1)
	})

	t.Run(`nil conn`, func(t *testing.T) {
		NewClient("user-1", nil).Dispatch()
	})
}
