// Package gateway is the real-time edge of the dispatch core. It owns every
// WebSocket session, the request rooms that pair a customer with a partner,
// and — exclusively — all mutations of the presence registry. Other
// components observe presence through the registry's read-only view.
package gateway

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/footmanhq/dispatch/internal/pkg/constants"
	"github.com/footmanhq/dispatch/internal/pkg/logger"
	"github.com/footmanhq/dispatch/internal/pkg/models"
	"github.com/footmanhq/dispatch/services/presence"
	"github.com/footmanhq/dispatch/services/request"
)

// client is one connected session. writeMu serializes writes because gorilla
// connections allow a single concurrent writer.
type client struct {
	models.WebSocketClient
	writeMu sync.Mutex
}

// Manager tracks connected clients and request rooms and dispatches inbound
// events. A client is keyed by user id: a reconnect replaces the previous
// session.
type Manager struct {
	cfg      *models.Config
	uc       request.RequestUC
	registry presence.Registry
	pairs    *PairCache

	mu      sync.RWMutex
	clients map[string]*client
	rooms   map[string]map[string]struct{}

	upgrader websocket.Upgrader

	// sendFn performs the actual write; tests substitute it to observe
	// outbound traffic without real connections.
	sendFn func(c *client, msg models.WSMessage) error
}

// NewManager creates the gateway manager.
func NewManager(cfg *models.Config, uc request.RequestUC, registry presence.Registry, pairs *PairCache) *Manager {
	m := &Manager{
		cfg:      cfg,
		uc:       uc,
		registry: registry,
		pairs:    pairs,
		clients:  make(map[string]*client),
		rooms:    make(map[string]map[string]struct{}),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
	m.sendFn = m.writeJSON
	return m
}

// HandleWebSocket upgrades the HTTP request and runs the session read loop.
// The first inbound event must be authenticate; everything else on an
// unauthenticated session is answered with auth_error and the session closed.
func (m *Manager) HandleWebSocket(c echo.Context) error {
	conn, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	var cl *client
	defer func() {
		if cl != nil {
			m.disconnect(cl)
		}
	}()

	for {
		var msg models.WSMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("websocket read failed", logger.Err(err))
			}
			return nil
		}

		if cl == nil {
			if msg.Event != constants.EventAuthenticate {
				m.sendRaw(conn, models.WSMessage{
					Event: constants.EventAuthError,
					Data:  mustMarshal(models.WSErrorMessage{Code: constants.ErrorUnauthorized, Message: "authenticate first"}),
				})
				return nil
			}
			cl = m.handleAuthenticate(conn, msg.Data)
			if cl == nil {
				return nil
			}
			continue
		}

		m.dispatch(cl, &msg)
	}
}

// register adds the client, displacing any previous session for the same
// user.
func (m *Manager) register(cl *client) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clients[cl.UserID] = cl
}

// lookup returns the connected client for a user id.
func (m *Manager) lookup(userID string) (*client, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	cl, ok := m.clients[userID]
	return cl, ok
}

// joinRoom places users into the shared room for one request.
func (m *Manager) joinRoom(requestID string, userIDs ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.rooms[requestID] == nil {
		m.rooms[requestID] = make(map[string]struct{})
	}
	for _, id := range userIDs {
		if id != "" {
			m.rooms[requestID][id] = struct{}{}
		}
	}
}

// closeRoom removes the room for a finished request.
func (m *Manager) closeRoom(requestID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rooms, requestID)
}

// roomMembers snapshots the membership of a request room.
func (m *Manager) roomMembers(requestID string) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	members := make([]string, 0, len(m.rooms[requestID]))
	for id := range m.rooms[requestID] {
		members = append(members, id)
	}
	return members
}

// send delivers an event to one user if connected. A disconnected recipient
// is not an error; real-time traffic is best-effort.
func (m *Manager) send(userID, event string, data interface{}) {
	cl, ok := m.lookup(userID)
	if !ok {
		return
	}
	m.sendTo(cl, event, data)
}

func (m *Manager) sendTo(cl *client, event string, data interface{}) {
	raw, err := json.Marshal(data)
	if err != nil {
		logger.Error("failed to marshal outbound event",
			logger.String("user_id", cl.UserID),
			logger.String("event", event),
			logger.Err(err))
		return
	}

	if err := m.sendFn(cl, models.WSMessage{Event: event, Data: raw}); err != nil {
		logger.Warn("failed to send event",
			logger.String("user_id", cl.UserID),
			logger.String("event", event),
			logger.Err(err))
	}
}

// sendError reports a failed operation to the client without closing the
// session.
func (m *Manager) sendError(cl *client, code, message string) {
	m.sendTo(cl, constants.EventError, models.WSErrorMessage{Code: code, Message: message})
}

// sendToRoom fans an event out to every connected room member except the
// excluded user.
func (m *Manager) sendToRoom(requestID, excludeUserID, event string, data interface{}) {
	for _, id := range m.roomMembers(requestID) {
		if id != excludeUserID {
			m.send(id, event, data)
		}
	}
}

func (m *Manager) writeJSON(cl *client, msg models.WSMessage) error {
	cl.writeMu.Lock()
	defer cl.writeMu.Unlock()
	return cl.Conn.WriteJSON(msg)
}

// sendRaw writes directly to a connection that has no registered client yet.
func (m *Manager) sendRaw(conn *websocket.Conn, msg models.WSMessage) {
	if conn == nil {
		return
	}
	if err := conn.WriteJSON(msg); err != nil {
		logger.Warn("failed to write to unauthenticated session", logger.Err(err))
	}
}

func newSessionID() string {
	return uuid.NewString()
}

func mustMarshal(v interface{}) json.RawMessage {
	raw, err := json.Marshal(v)
	if err != nil {
		return json.RawMessage(`{}`)
	}
	return raw
}
