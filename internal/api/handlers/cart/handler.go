package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/ekorolev/cart-recovery/internal/api/dto"
	"github.com/ekorolev/cart-recovery/internal/api/respond"
	"github.com/ekorolev/cart-recovery/internal/config"
	"github.com/ekorolev/cart-recovery/internal/model"
	"github.com/ekorolev/cart-recovery/internal/rabbitmq/queue"
	"github.com/ekorolev/cart-recovery/internal/recovery"
	cartrepo "github.com/ekorolev/cart-recovery/internal/repository/cart"
	cartsvc "github.com/ekorolev/cart-recovery/internal/service/cart"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/cart/mock.go -package=mocks

// SessionCookie identifies the visitor's live cart session.
const SessionCookie = "cart_session"

type cartService interface {
	Capture(ctx context.Context, in cartsvc.CaptureInput) error
	Redeem(ctx context.Context, strategy retry.Strategy, id int64, key, sessionID string) (string, error)
	ListCarts(ctx context.Context) ([]model.CartRecord, error)
}

type orderPublisher interface {
	Publish(event queue.OrderEvent, strategy retry.Strategy) error
}

type Handler struct {
	service   cartService
	orders    orderPublisher
	validator *validator.Validate
	cfg       *config.Config
}

func NewHandler(
	s cartService,
	orders orderPublisher,
	v *validator.Validate,
	cfg *config.Config,
) *Handler {
	return &Handler{service: s, orders: orders, validator: v, cfg: cfg}
}

// Capture tracks a checkout-in-progress cart. Tracking must never block the
// checkout flow, so precondition and storage failures are swallowed and the
// endpoint responds 202 either way; only an unreadable body is a client error.
func (h *Handler) Capture(c *ginext.Context) {
	var req dto.CaptureRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	// A malformed email does not fail the capture; it degrades to the
	// user-id identity, matching the silent no-op contract.
	if req.Email != "" {
		if err := h.validator.Var(req.Email, "email"); err != nil {
			zlog.Logger.Warn().Str("email", req.Email).Msg("dropping malformed capture email")
			req.Email = ""
		}
	}

	items := make([]model.CartItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, model.CartItem{
			ProductID:    item.ProductID,
			Name:         item.Name,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
			LineSubtotal: item.LineSubtotal,
			VariationID:  item.VariationID,
			Variation:    item.Variation,
		})
	}

	in := cartsvc.CaptureInput{
		UserID:       req.UserID,
		Email:        req.Email,
		CustomerName: req.CustomerName,
		Snapshot:     model.CartSnapshot{Items: items},
		CartTotal:    req.CartTotal,
	}

	if err := h.service.Capture(c.Request.Context(), in); err != nil {
		zlog.Logger.Error().Err(err).Str("email", req.Email).Msg("failed to capture cart")
	}

	respond.Accepted(c.Writer, "ok")
}

// Recover handles recovery-link visits. Any verification or lookup failure
// falls through to the storefront with no cart mutation and no explanation.
func (h *Handler) Recover(c *ginext.Context) {
	fallback := h.cfg.Recovery.SiteURL

	if c.Query(recovery.ParamMarker) == "" {
		c.Redirect(http.StatusFound, fallback)
		return
	}

	id, err := strconv.ParseInt(c.Query(recovery.ParamCartID), 10, 64)
	if err != nil || id <= 0 {
		c.Redirect(http.StatusFound, fallback)
		return
	}

	key := c.Query(recovery.ParamKey)
	if key == "" {
		c.Redirect(http.StatusFound, fallback)
		return
	}

	sessionID := h.sessionID(c)

	checkoutURL, err := h.service.Redeem(c.Request.Context(), h.cfg.Retry, id, key, sessionID)
	if err != nil {
		if !errors.Is(err, cartsvc.ErrLinkRejected) {
			zlog.Logger.Error().Err(err).Int64("id", id).Msg("failed to redeem recovery link")
		}

		c.Redirect(http.StatusFound, fallback)
		return
	}

	c.Redirect(http.StatusFound, checkoutURL)
}

// OrderEvent accepts an order lifecycle notification and queues it for
// reconciliation.
func (h *Handler) OrderEvent(c *ginext.Context) {
	var req dto.OrderEventRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	event := queue.OrderEvent{
		OrderID: req.OrderID,
		Email:   req.Email,
		Status:  req.Status,
	}

	if err := h.orders.Publish(event, h.cfg.Retry); err != nil {
		zlog.Logger.Error().Err(err).Int64("order_id", req.OrderID).Msg("failed to publish order event")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Accepted(c.Writer, "ok")
}

// List returns all tracked carts, newest first.
func (h *Handler) List(c *ginext.Context) {
	carts, err := h.service.ListCarts(c.Request.Context())
	if err != nil {
		if errors.Is(err, cartrepo.ErrNoCartsFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("no carts found"))
			return
		}

		zlog.Logger.Error().Err(err).Msg("failed to list carts")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, carts)
}

// sessionID reads the visitor's session cookie, minting one when absent so
// the restored cart has a session to land in.
func (h *Handler) sessionID(c *ginext.Context) string {
	if sessionID, err := c.Cookie(SessionCookie); err == nil && sessionID != "" {
		return sessionID
	}

	sessionID := uuid.NewString()
	c.SetCookie(SessionCookie, sessionID, 0, "/", "", false, true)

	return sessionID
}
