package connectionhub

import (
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
	log "github.com/sirupsen/logrus"
	wsmodels "smartjob-backend/models/ws"
)

type Provider interface {
	AddClient(userID string, conn Conn)
	DeleteClient(userID string, conn Conn)
	SendMessage(msg wsmodels.ServerMessage)
	IsConnected(userID string) bool
	Ping() (dropped int)
}

// Notifier is the part of the hub used by domain handlers.
type Notifier interface {
	Notify(userID string, code wsmodels.EventCode, entityID, msg string)
}

var Instance *Hub

const pingWait = 5 * time.Second

func Init() {
	Instance = NewHub()
}

// GetNotifier returns nil until Init is called.
func GetNotifier() Notifier {
	if Instance == nil {
		return nil
	}
	return Instance
}

func NewHub() *Hub {
	return &Hub{
		clients: map[string]clientSession{},
	}
}

type Hub struct {
	mu      sync.Mutex
	clients map[string]clientSession // map[userID]
}

func (i *Hub) DeleteClient(userID string, conn Conn) {
	i.mu.Lock()
	defer i.mu.Unlock()
	sess, ok := i.clients[userID]
	if !ok || sess.conn != conn {
		// already replaced by a newer connection
		return
	}
	delete(i.clients, userID)
	sess.stop()
}

func (i *Hub) AddClient(userID string, conn Conn) {
	i.mu.Lock()
	defer i.mu.Unlock()
	oldSess, ok := i.clients[userID]
	if ok {
		oldSess.stop()
	}
	i.clients[userID] = newSession(conn)
}

func (i *Hub) SendMessage(msg wsmodels.ServerMessage) {
	i.mu.Lock()
	defer i.mu.Unlock()
	sess, ok := i.clients[msg.ToUserID]
	if !ok {
		return
	}
	select {
	case sess.sendCh <- msg:
	default:
		log.WithField("user_id", msg.ToUserID).Warn("ws send buffer is full, event dropped")
	}
}

func (i *Hub) IsConnected(userID string) bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	_, ok := i.clients[userID]
	return ok
}

// Ping sends a ping frame to every client and drops the ones it can not reach.
func (i *Hub) Ping() (dropped int) {
	i.mu.Lock()
	clients := make(map[string]Conn, len(i.clients))
	for userID, sess := range i.clients {
		clients[userID] = sess.conn
	}
	i.mu.Unlock()

	for userID, conn := range clients {
		err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(pingWait))
		if err != nil {
			log.WithError(err).WithField("user_id", userID).Info("ws client unreachable, dropped")
			i.DeleteClient(userID, conn)
			dropped++
		}
	}
	return dropped
}

func (i *Hub) Notify(userID string, code wsmodels.EventCode, entityID, msg string) {
	if userID == "" {
		return
	}
	i.SendMessage(wsmodels.ServerMessage{
		ToUserID: userID,
		Time:     time.Now().Format(time.RFC3339),
		Code:     code,
		EntityID: entityID,
		Msg:      msg,
	})
}
