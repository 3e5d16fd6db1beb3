package order

import (
	"context"

	"github.com/wb-go/wbf/zlog"

	"github.com/ekorolev/cart-recovery/internal/config"
	"github.com/ekorolev/cart-recovery/internal/rabbitmq/queue"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/rabbitmq/handlers/order/mock.go -package=mocks

type cartService interface {
	ClearForEmail(ctx context.Context, email string) (int64, error)
}

// Handler reconciles tracked carts against order lifecycle events.
type Handler struct {
	service cartService
	policy  string
}

func NewHandler(svc cartService, policy string) *Handler {
	return &Handler{
		service: svc,
		policy:  policy,
	}
}

// HandleEvent clears tracking records for the event's email when the event
// satisfies the active reconciliation policy. Events that do not are dropped:
// an unpaid order under the conservative policy is still an abandonable cart.
func (h *Handler) HandleEvent(ctx context.Context, event queue.OrderEvent) {
	if event.Email == "" {
		zlog.Logger.Warn().Int64("order_id", event.OrderID).Msg("order event without email, skipping")
		return
	}

	if !h.shouldClear(event) {
		zlog.Logger.Debug().
			Int64("order_id", event.OrderID).
			Str("status", event.Status).
			Msg("order event does not satisfy reconcile policy, skipping")
		return
	}

	deleted, err := h.service.ClearForEmail(ctx, event.Email)
	if err != nil {
		zlog.Logger.Error().Err(err).Int64("order_id", event.OrderID).Msg("failed to clear carts for order")
		return
	}

	zlog.Logger.Info().
		Int64("order_id", event.OrderID).
		Str("status", event.Status).
		Int64("deleted", deleted).
		Msg("order event reconciled")
}

func (h *Handler) shouldClear(event queue.OrderEvent) bool {
	if h.policy == config.PolicyOrderCreated {
		return true
	}

	return event.Paid()
}
