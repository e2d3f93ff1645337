package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"ai-notetaking-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	clusterChannel  = "eduai_session_events"
	broadcastTarget = "*"
)

// Envelope is the frame written to websocket clients.
type Envelope struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

type clusterMessage struct {
	TargetSessionID string          `json:"target_session_id"`
	Origin          string          `json:"origin"`
	Message         json.RawMessage `json:"message"`
}

type Hub struct {
	// Session id -> connections (several tabs may share a token)
	clients map[uuid.UUID][]*Client

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	// Redis fan-out so every instance reaches its own local clients; nil disables it
	rdb *redis.Client

	// lets an instance skip its own cluster messages
	instanceID string

	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[uuid.UUID][]*Client),
		rdb:        rdb,
		instanceID: uuid.NewString(),
		logger:     log,
	}
}

func (h *Hub) Run() {
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.SessionID] = append(h.clients[client.SessionID], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"session_id": client.SessionID})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.SessionID]; ok {
				for i, c := range clients {
					if c == client {
						h.clients[client.SessionID] = append(clients[:i], clients[i+1:]...)
						close(client.Send)
						break
					}
				}
				if len(h.clients[client.SessionID]) == 0 {
					delete(h.clients, client.SessionID)
					h.logger.Info("Hub", "Client completely unregistered", map[string]interface{}{"session_id": client.SessionID})
				}
			}
			h.mu.Unlock()
		}
	}
}

// Deliver sends a typed event to every connection of sessionID, here and on
// other instances.
func (h *Hub) Deliver(sessionID uuid.UUID, eventType string, data interface{}) {
	frame, err := json.Marshal(Envelope{Type: eventType, Data: data})
	if err != nil {
		h.logger.Error("Hub", "Failed to encode event", map[string]interface{}{"type": eventType, "error": err})
		return
	}

	h.sendLocal(sessionID, frame)
	h.publishCluster(sessionID.String(), frame)
}

// Broadcast sends a typed event to every connected session.
func (h *Hub) Broadcast(eventType string, data interface{}) {
	frame, err := json.Marshal(Envelope{Type: eventType, Data: data})
	if err != nil {
		h.logger.Error("Hub", "Failed to encode event", map[string]interface{}{"type": eventType, "error": err})
		return
	}

	h.broadcastLocal(frame)
	h.publishCluster(broadcastTarget, frame)
}

// ConnectedSessions reports how many sessions hold at least one local connection.
func (h *Hub) ConnectedSessions() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) sendLocal(sessionID uuid.UUID, frame []byte) {
	h.mu.RLock()
	clients := append([]*Client(nil), h.clients[sessionID]...)
	h.mu.RUnlock()

	for _, client := range clients {
		h.offer(client, frame)
	}
}

func (h *Hub) broadcastLocal(frame []byte) {
	h.mu.RLock()
	var all []*Client
	for _, clients := range h.clients {
		all = append(all, clients...)
	}
	h.mu.RUnlock()

	for _, client := range all {
		h.offer(client, frame)
	}
}

// offer never blocks; a client whose buffer is full is disconnected.
func (h *Hub) offer(client *Client, frame []byte) {
	defer func() {
		// Send may already be closed by a concurrent unregister
		_ = recover()
	}()

	select {
	case client.Send <- frame:
	default:
		h.logger.Warn("Hub", "Client Send buffer full, dropping connection", map[string]interface{}{"session_id": client.SessionID})
		go func() { h.unregister <- client }()
	}
}

func (h *Hub) publishCluster(target string, frame []byte) {
	if h.rdb == nil {
		return
	}
	payload, _ := json.Marshal(clusterMessage{
		TargetSessionID: target,
		Origin:          h.instanceID,
		Message:         frame,
	})
	if err := h.rdb.Publish(context.Background(), clusterChannel, payload).Err(); err != nil {
		h.logger.Warn("Hub", "Failed to publish cluster event", map[string]interface{}{"error": err.Error()})
	}
}

func (h *Hub) subscribeToRedis() {
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, clusterChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		var payload clusterMessage
		if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
			h.logger.Warn("Hub", "Redis message parse error", map[string]interface{}{"error": err.Error()})
			continue
		}
		if payload.Origin == h.instanceID {
			continue
		}

		if payload.TargetSessionID == broadcastTarget {
			h.broadcastLocal(payload.Message)
			continue
		}

		sessionID, err := uuid.Parse(payload.TargetSessionID)
		if err != nil {
			continue
		}
		h.sendLocal(sessionID, payload.Message)
	}
}
