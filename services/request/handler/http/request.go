// Package http exposes the request lifecycle over REST. The real-time
// gateway carries live updates; these endpoints are the command surface that
// clients and back-office tools drive transitions through.
package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/footmanhq/dispatch/internal/pkg/logger"
	"github.com/footmanhq/dispatch/internal/utils"
	"github.com/footmanhq/dispatch/services/matching"
	"github.com/footmanhq/dispatch/services/pricing"
	"github.com/footmanhq/dispatch/services/request"
)

// RequestHandler handles HTTP requests for request lifecycle operations.
type RequestHandler struct {
	requestUC request.RequestUC
}

// NewRequestHandler creates a new request handler.
func NewRequestHandler(requestUC request.RequestUC) *RequestHandler {
	return &RequestHandler{requestUC: requestUC}
}

// RegisterRoutes registers the request endpoints on the router.
func (h *RequestHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/requests", h.CreateRequest)
	e.GET("/requests/:id", h.GetRequest)
	e.POST("/requests/:id/accept", h.AcceptRequest)
	e.POST("/requests/:id/reject", h.RejectRequest)
	e.POST("/requests/:id/start", h.StartWork)
	e.POST("/requests/:id/done", h.MarkWorkDone)
	e.POST("/requests/:id/cancel", h.CancelRequest)
	e.POST("/requests/:id/payment", h.SelectPayment)
	e.POST("/requests/:id/payment/confirm", h.ConfirmPayment)
	e.GET("/customers/:id/requests/active", h.ActiveRequests)
}

type createRequestPayload struct {
	CustomerID string  `json:"customer_id"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
}

type partnerPayload struct {
	PartnerID string `json:"partner_id"`
	Reason    string `json:"reason,omitempty"`
	Note      string `json:"note,omitempty"`
}

type customerPayload struct {
	CustomerID string `json:"customer_id"`
}

type paymentPayload struct {
	Method string `json:"method"`
}

// CreateRequest creates a request for the customer at the given location.
func (h *RequestHandler) CreateRequest(c echo.Context) error {
	var payload createRequestPayload
	if err := c.Bind(&payload); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	req, candidates, err := h.requestUC.CreateRequest(c.Request().Context(), payload.CustomerID, payload.Latitude, payload.Longitude)
	if err != nil {
		return h.mapError(c, err, "Failed to create request")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Request created", map[string]interface{}{
		"request":    req,
		"candidates": candidates,
	})
}

// GetRequest returns one request by id.
func (h *RequestHandler) GetRequest(c echo.Context) error {
	req, err := h.requestUC.GetRequest(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.mapError(c, err, "Failed to retrieve request")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Request retrieved", req)
}

// AcceptRequest claims the request for a partner.
func (h *RequestHandler) AcceptRequest(c echo.Context) error {
	var payload partnerPayload
	if err := c.Bind(&payload); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	req, err := h.requestUC.AcceptRequest(c.Request().Context(), c.Param("id"), payload.PartnerID)
	if err != nil {
		return h.mapError(c, err, "Failed to accept request")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Request accepted", req)
}

// RejectRequest records a partner's rejection.
func (h *RequestHandler) RejectRequest(c echo.Context) error {
	var payload partnerPayload
	if err := c.Bind(&payload); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	err := h.requestUC.RejectRequest(c.Request().Context(), c.Param("id"), payload.PartnerID, payload.Reason, payload.Note)
	if err != nil {
		return h.mapError(c, err, "Failed to reject request")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Rejection recorded", nil)
}

// StartWork moves an accepted request to ongoing.
func (h *RequestHandler) StartWork(c echo.Context) error {
	var payload partnerPayload
	if err := c.Bind(&payload); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	req, err := h.requestUC.StartWork(c.Request().Context(), c.Param("id"), payload.PartnerID)
	if err != nil {
		return h.mapError(c, err, "Failed to start work")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Work started", req)
}

// MarkWorkDone reports completion and opens settlement.
func (h *RequestHandler) MarkWorkDone(c echo.Context) error {
	var payload partnerPayload
	if err := c.Bind(&payload); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	req, err := h.requestUC.MarkWorkDone(c.Request().Context(), c.Param("id"), payload.PartnerID)
	if err != nil {
		return h.mapError(c, err, "Failed to mark work done")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Settlement opened", req)
}

// CancelRequest cancels the customer's own request.
func (h *RequestHandler) CancelRequest(c echo.Context) error {
	var payload customerPayload
	if err := c.Bind(&payload); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	req, err := h.requestUC.CancelRequest(c.Request().Context(), c.Param("id"), payload.CustomerID)
	if err != nil {
		return h.mapError(c, err, "Failed to cancel request")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Request cancelled", req)
}

// SelectPayment advances settlement with the chosen method.
func (h *RequestHandler) SelectPayment(c echo.Context) error {
	var payload paymentPayload
	if err := c.Bind(&payload); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	req, err := h.requestUC.SelectPayment(c.Request().Context(), c.Param("id"), payload.Method)
	if err != nil {
		return h.mapError(c, err, "Failed to select payment")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Payment method selected", req)
}

// ConfirmPayment drives settlement to completion.
func (h *RequestHandler) ConfirmPayment(c echo.Context) error {
	req, err := h.requestUC.ConfirmPayment(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.mapError(c, err, "Failed to confirm payment")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Payment confirmed", req)
}

// ActiveRequests lists a customer's non-terminal requests.
func (h *RequestHandler) ActiveRequests(c echo.Context) error {
	active, err := h.requestUC.ActiveRequestsForCustomer(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.mapError(c, err, "Failed to list active requests")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Active requests retrieved", active)
}

// mapError translates domain sentinels into HTTP statuses. Unknown errors
// are logged and reported as 500 without leaking internals.
func (h *RequestHandler) mapError(c echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, request.ErrNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, request.ErrMalformedInput):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, request.ErrAlreadyAccepted),
		errors.Is(err, request.ErrSettlementLocked):
		return utils.ConflictResponse(c, err.Error())
	case errors.Is(err, request.ErrInvalidTransition),
		errors.Is(err, request.ErrPartnerOutOfRange),
		errors.Is(err, matching.ErrNoPartnerAvailable),
		errors.Is(err, matching.ErrDistanceExceeded),
		errors.Is(err, matching.ErrMissingCoordinates),
		errors.Is(err, pricing.ErrDistanceExceeded):
		return utils.UnprocessableResponse(c, err.Error())
	}

	logger.Error(fallback,
		logger.String("path", c.Path()),
		logger.Err(err))
	return utils.InternalServerErrorResponse(c, fallback)
}
