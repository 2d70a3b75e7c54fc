package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/footmanhq/dispatch/internal/pkg/constants"
	"github.com/footmanhq/dispatch/internal/pkg/logger"
	"github.com/footmanhq/dispatch/internal/pkg/models"
	"github.com/footmanhq/dispatch/services/request"
)

// dispatch routes one inbound event. The event set is closed: anything not
// named here is answered with an invalid_format error and the session stays
// open.
func (m *Manager) dispatch(cl *client, msg *models.WSMessage) {
	switch msg.Event {
	case constants.EventAuthenticate:
		m.sendError(cl, constants.ErrorInvalidFormat, "session already authenticated")
	case constants.EventPartnerLocationUpdate:
		m.handlePartnerLocationUpdate(cl, msg.Data)
	case constants.EventCustomerLocationUpdate:
		m.handleCustomerLocationUpdate(cl, msg.Data)
	case constants.EventPartnerStatusUpdate:
		m.handlePartnerStatusUpdate(cl, msg.Data)
	case constants.EventRequestStatusUpdate:
		m.handleRequestStatusUpdate(cl, msg.Data)
	case constants.EventSetupTracking:
		m.handleSetupTracking(cl, msg.Data)
	case constants.EventPaymentUpdate:
		m.handlePaymentUpdate(cl, msg.Data)
	case constants.EventPaymentConfirmation:
		m.handlePaymentConfirmation(cl, msg.Data)
	default:
		m.sendError(cl, constants.ErrorInvalidFormat, "unknown event type: "+msg.Event)
	}
}

func placeholderID(id string) bool {
	switch strings.TrimSpace(id) {
	case "", "undefined", "null":
		return true
	}
	return false
}

// handleAuthenticate binds the session to a user id and role, seeds presence
// and, for customers, replays the current world state: a snapshot of nearby
// available partners and every request still in flight.
func (m *Manager) handleAuthenticate(conn *websocket.Conn, data json.RawMessage) *client {
	fail := func(message string) *client {
		m.sendRaw(conn, models.WSMessage{
			Event: constants.EventAuthError,
			Data:  mustMarshal(models.WSErrorMessage{Code: constants.ErrorUnauthorized, Message: message}),
		})
		return nil
	}

	var req models.AuthenticateRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return fail("malformed authenticate payload")
	}
	if placeholderID(req.UserID) {
		return fail("missing or placeholder user id")
	}
	switch req.UserType {
	case models.RoleCustomer, models.RolePartner, models.RoleAdmin:
	default:
		return fail("unknown user type: " + string(req.UserType))
	}

	cl := &client{
		WebSocketClient: models.WebSocketClient{
			UserID:    req.UserID,
			SessionID: newSessionID(),
			Role:      req.UserType,
			Conn:      conn,
		},
	}
	m.register(cl)

	p := models.Presence{
		UserID:    req.UserID,
		SessionID: cl.SessionID,
		Role:      req.UserType,
		UpdatedAt: time.Now(),
	}
	if req.UserType == models.RolePartner {
		p.Status = models.PresenceAvailable
	}
	if req.Latitude != nil && req.Longitude != nil {
		p.Latitude = *req.Latitude
		p.Longitude = *req.Longitude
	}
	m.registry.Set(p)

	m.sendTo(cl, constants.EventAuthenticated, models.AuthenticatedResponse{
		UserID:    req.UserID,
		UserType:  req.UserType,
		SessionID: cl.SessionID,
	})

	logger.Info("websocket session authenticated",
		logger.String("user_id", req.UserID),
		logger.String("role", string(req.UserType)))

	switch req.UserType {
	case models.RoleCustomer:
		if req.Latitude != nil && req.Longitude != nil {
			m.sendTo(cl, constants.EventInitialFootmen, m.nearbySnapshot(*req.Latitude, *req.Longitude))
		}
		m.replayActiveRequests(cl)
	case models.RolePartner:
		// A partner arriving with coordinates becomes visible immediately,
		// not on its first location report.
		if req.Latitude != nil && req.Longitude != nil {
			m.broadcastToNearbyCustomers(p, constants.EventPartnerLocation, models.PartnerLocationUpdate{
				PartnerID: req.UserID,
				Latitude:  *req.Latitude,
				Longitude: *req.Longitude,
				Status:    p.Status,
			})
		}
	}
	return cl
}

// replayActiveRequests brings a reconnecting customer back up to date with a
// request_update per in-flight request.
func (m *Manager) replayActiveRequests(cl *client) {
	active, err := m.uc.ActiveRequestsForCustomer(context.Background(), cl.UserID)
	if err != nil {
		logger.Warn("failed to replay active requests",
			logger.String("user_id", cl.UserID),
			logger.Err(err))
		return
	}

	for _, ar := range active {
		ev := models.RequestUpdateEvent{
			RequestID: ar.RequestID,
			Status:    ar.Status,
		}
		if ar.PartnerID != nil && !ar.Status.Searching() {
			ev.PartnerID = *ar.PartnerID
		}
		m.sendTo(cl, constants.EventRequestUpdate, ev)
	}
}

// handlePartnerLocationUpdate refreshes the partner's presence and fans the
// position out: a busy partner reports only into its request room, an
// available one is visible to every nearby customer.
func (m *Manager) handlePartnerLocationUpdate(cl *client, data json.RawMessage) {
	if cl.Role != models.RolePartner {
		m.sendError(cl, constants.ErrorUnauthorized, "partner_location_update requires a partner session")
		return
	}

	var upd models.PartnerLocationUpdate
	if err := json.Unmarshal(data, &upd); err != nil {
		m.sendError(cl, constants.ErrorInvalidFormat, "malformed location update")
		return
	}
	if upd.Latitude == 0 && upd.Longitude == 0 {
		m.sendError(cl, constants.ErrorInvalidLocation, "missing coordinates")
		return
	}

	p, _ := m.registry.Get(cl.UserID)
	p.UserID = cl.UserID
	p.SessionID = cl.SessionID
	p.Role = models.RolePartner
	p.Latitude = upd.Latitude
	p.Longitude = upd.Longitude
	p.Bearing = upd.Bearing
	p.Speed = upd.Speed
	p.UpdatedAt = time.Now()
	if upd.Status != "" {
		p.Status = upd.Status
	} else if p.Status == "" {
		p.Status = models.PresenceAvailable
	}
	m.registry.Set(p)

	payload := models.PartnerLocationUpdate{
		PartnerID: cl.UserID,
		Latitude:  upd.Latitude,
		Longitude: upd.Longitude,
		Bearing:   upd.Bearing,
		Speed:     upd.Speed,
		RequestID: upd.RequestID,
		Status:    p.Status,
	}

	// A busy partner's position belongs to its request room only. Without a
	// room to address, the position is tracked and nothing is sent; it must
	// never reach customers outside the pairing.
	if p.Status == models.PresenceBusy {
		if upd.RequestID != "" {
			m.sendToRoom(upd.RequestID, cl.UserID, constants.EventPartnerLocation, payload)
		}
		return
	}
	m.broadcastToNearbyCustomers(p, constants.EventPartnerLocation, payload)
}

// handleCustomerLocationUpdate refreshes the customer's presence and answers
// with a fresh snapshot of available partners around the new position.
func (m *Manager) handleCustomerLocationUpdate(cl *client, data json.RawMessage) {
	if cl.Role != models.RoleCustomer {
		m.sendError(cl, constants.ErrorUnauthorized, "customer_location_update requires a customer session")
		return
	}

	var upd models.CustomerLocationUpdate
	if err := json.Unmarshal(data, &upd); err != nil {
		m.sendError(cl, constants.ErrorInvalidFormat, "malformed location update")
		return
	}
	if upd.Latitude == 0 && upd.Longitude == 0 {
		m.sendError(cl, constants.ErrorInvalidLocation, "missing coordinates")
		return
	}

	p, _ := m.registry.Get(cl.UserID)
	p.UserID = cl.UserID
	p.SessionID = cl.SessionID
	p.Role = models.RoleCustomer
	p.Latitude = upd.Latitude
	p.Longitude = upd.Longitude
	p.UpdatedAt = time.Now()
	m.registry.Set(p)

	m.sendTo(cl, constants.EventNearbyFootmenUpdate, m.nearbySnapshot(upd.Latitude, upd.Longitude))
}

// handlePartnerStatusUpdate changes a partner's availability. Going offline
// is announced to nearby customers and removes the presence entry.
func (m *Manager) handlePartnerStatusUpdate(cl *client, data json.RawMessage) {
	if cl.Role != models.RolePartner {
		m.sendError(cl, constants.ErrorUnauthorized, "partner_status_update requires a partner session")
		return
	}

	var upd models.PartnerStatusUpdate
	if err := json.Unmarshal(data, &upd); err != nil {
		m.sendError(cl, constants.ErrorInvalidFormat, "malformed status update")
		return
	}
	switch upd.Status {
	case models.PresenceAvailable, models.PresenceBusy, models.PresenceOffline:
	default:
		m.sendError(cl, constants.ErrorInvalidFormat, "unknown status: "+string(upd.Status))
		return
	}

	p, ok := m.registry.Get(cl.UserID)
	if !ok {
		p = models.Presence{UserID: cl.UserID, SessionID: cl.SessionID, Role: models.RolePartner}
	}

	if upd.Status == models.PresenceOffline {
		m.announcePartnerOffline(p)
		m.registry.Delete(cl.UserID)
		return
	}

	p.Status = upd.Status
	p.UpdatedAt = time.Now()
	m.registry.Set(p)

	m.broadcastToNearbyCustomers(p, constants.EventPartnerStatusChanged, models.PartnerStatusUpdate{
		PartnerID: cl.UserID,
		Status:    upd.Status,
	})
}

// handleRequestStatusUpdate fans a lifecycle change out to the request's
// pair and applies the presence side effects tied to the transition.
func (m *Manager) handleRequestStatusUpdate(cl *client, data json.RawMessage) {
	var upd models.RequestStatusUpdate
	if err := json.Unmarshal(data, &upd); err != nil || upd.RequestID == "" {
		m.sendError(cl, constants.ErrorInvalidFormat, "malformed request status update")
		return
	}

	pair := &models.RequestPair{
		RequestID:  upd.RequestID,
		CustomerID: upd.CustomerID,
		PartnerID:  upd.PartnerID,
	}
	if pair.CustomerID == "" || pair.PartnerID == "" {
		resolved, err := m.pairs.Resolve(context.Background(), upd.RequestID)
		if err != nil {
			m.sendError(cl, constants.ErrorPairUnresolved, "cannot resolve request pair")
			return
		}
		if pair.CustomerID == "" {
			pair.CustomerID = resolved.CustomerID
		}
		if pair.PartnerID == "" {
			pair.PartnerID = resolved.PartnerID
		}
	}

	m.applyPresenceSideEffects(upd.Status, pair.PartnerID)

	ev := models.RequestUpdateEvent{
		RequestID: upd.RequestID,
		Status:    upd.Status,
	}
	// A request back in a searching state has no partner; never show a
	// stale one.
	if !upd.Status.Searching() {
		ev.PartnerID = pair.PartnerID
	}

	m.send(pair.CustomerID, constants.EventRequestUpdate, ev)
	if pair.PartnerID != "" {
		m.send(pair.PartnerID, constants.EventRequestUpdate, ev)
	}

	if upd.Status.Terminal() {
		m.pairs.Invalidate(context.Background(), upd.RequestID)
		m.closeRoom(upd.RequestID)
	}
}

// applyPresenceSideEffects keeps partner availability consistent with the
// lifecycle of the request assigned to it.
func (m *Manager) applyPresenceSideEffects(status models.RequestStatus, partnerID string) {
	if partnerID == "" {
		return
	}
	p, ok := m.registry.Get(partnerID)
	if !ok {
		return
	}

	switch {
	case status == models.RequestStatusAccepted || status == models.RequestStatusOngoing:
		p.Status = models.PresenceBusy
	case status.Terminal() || status.Searching():
		p.Status = models.PresenceAvailable
	default:
		return
	}
	p.UpdatedAt = time.Now()
	m.registry.Set(p)
}

// handleSetupTracking joins the pair into a shared request room.
func (m *Manager) handleSetupTracking(cl *client, data json.RawMessage) {
	var req models.SetupTrackingRequest
	if err := json.Unmarshal(data, &req); err != nil || req.RequestID == "" {
		m.sendError(cl, constants.ErrorInvalidFormat, "malformed tracking setup")
		return
	}

	if req.CustomerID == "" || req.PartnerID == "" {
		pair, err := m.pairs.Resolve(context.Background(), req.RequestID)
		if err != nil {
			m.sendError(cl, constants.ErrorPairUnresolved, "cannot resolve request pair")
			return
		}
		if req.CustomerID == "" {
			req.CustomerID = pair.CustomerID
		}
		if req.PartnerID == "" {
			req.PartnerID = pair.PartnerID
		}
	}

	m.joinRoom(req.RequestID, req.CustomerID, req.PartnerID)

	started := models.TrackingStartedEvent{RequestID: req.RequestID}
	m.send(req.CustomerID, constants.EventTrackingStarted, started)
	m.send(req.PartnerID, constants.EventTrackingStarted, started)
}

// handlePaymentUpdate drives payment method selection and relays the
// settlement progress to the counterpart.
func (m *Manager) handlePaymentUpdate(cl *client, data json.RawMessage) {
	var upd models.PaymentUpdate
	if err := json.Unmarshal(data, &upd); err != nil || upd.RequestID == "" {
		m.sendError(cl, constants.ErrorInvalidFormat, "malformed payment update")
		return
	}

	req, err := m.uc.SelectPayment(context.Background(), upd.RequestID, upd.Method)
	if err != nil {
		m.sendSettlementError(cl, err)
		return
	}

	relay := models.PaymentUpdate{
		RequestID: upd.RequestID,
		Status:    string(models.SettlementPaymentSelected),
		Method:    req.PaymentMethod,
		Timestamp: time.Now().Unix(),
	}
	m.relayToPair(cl, upd.RequestID, constants.EventPaymentUpdate, relay)
}

// handlePaymentConfirmation drives settlement to completion and closes the
// request's real-time surfaces.
func (m *Manager) handlePaymentConfirmation(cl *client, data json.RawMessage) {
	var upd models.PaymentUpdate
	if err := json.Unmarshal(data, &upd); err != nil || upd.RequestID == "" {
		m.sendError(cl, constants.ErrorInvalidFormat, "malformed payment confirmation")
		return
	}

	req, err := m.uc.ConfirmPayment(context.Background(), upd.RequestID)
	if err != nil {
		m.sendSettlementError(cl, err)
		return
	}

	confirm := models.PaymentUpdate{
		RequestID: upd.RequestID,
		Status:    string(models.SettlementFullyCompleted),
		Method:    req.PaymentMethod,
		Timestamp: time.Now().Unix(),
	}
	ev := models.RequestUpdateEvent{
		RequestID: upd.RequestID,
		Status:    req.Status,
	}
	if req.PartnerID != nil {
		ev.PartnerID = *req.PartnerID
	}

	m.send(req.CustomerID, constants.EventPaymentConfirmation, confirm)
	m.send(req.CustomerID, constants.EventRequestUpdate, ev)
	if req.PartnerID != nil {
		m.send(*req.PartnerID, constants.EventPaymentConfirmation, confirm)
		m.send(*req.PartnerID, constants.EventRequestUpdate, ev)
		m.applyPresenceSideEffects(req.Status, *req.PartnerID)
	}

	m.pairs.Invalidate(context.Background(), upd.RequestID)
	m.closeRoom(upd.RequestID)
}

// relayToPair sends the event to the request pair, preferring the resolved
// pairing over room membership so a relay works before setup_tracking.
func (m *Manager) relayToPair(from *client, requestID, event string, data interface{}) {
	pair, err := m.pairs.Resolve(context.Background(), requestID)
	if err != nil {
		m.sendError(from, constants.ErrorPairUnresolved, "cannot resolve request pair")
		return
	}
	for _, id := range []string{pair.CustomerID, pair.PartnerID} {
		if id != "" && id != from.UserID {
			m.send(id, event, data)
		}
	}
}

func (m *Manager) sendSettlementError(cl *client, err error) {
	switch {
	case errors.Is(err, request.ErrInvalidTransition), errors.Is(err, request.ErrSettlementLocked):
		m.sendError(cl, constants.ErrorInvalidTransition, err.Error())
	case errors.Is(err, request.ErrNotFound):
		m.sendError(cl, constants.ErrorPairUnresolved, err.Error())
	default:
		m.sendError(cl, constants.ErrorInternalError, "settlement operation failed")
	}
}

// disconnect tears a session down. A partner's disappearance is announced to
// the customers that could currently see it.
func (m *Manager) disconnect(cl *client) {
	m.mu.Lock()
	// A reconnect may have displaced this session already; only the
	// current registration is removed.
	if current, ok := m.clients[cl.UserID]; ok && current == cl {
		delete(m.clients, cl.UserID)
	} else {
		m.mu.Unlock()
		return
	}
	m.mu.Unlock()

	if cl.Role == models.RolePartner {
		if p, ok := m.registry.Get(cl.UserID); ok {
			m.announcePartnerOffline(p)
		}
	}
	m.registry.Delete(cl.UserID)

	logger.Info("websocket session closed",
		logger.String("user_id", cl.UserID),
		logger.String("role", string(cl.Role)))
}
