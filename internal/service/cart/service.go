package cart

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/ekorolev/cart-recovery/internal/config"
	"github.com/ekorolev/cart-recovery/internal/mailer"
	"github.com/ekorolev/cart-recovery/internal/model"
	"github.com/ekorolev/cart-recovery/internal/recovery"
	cartrepo "github.com/ekorolev/cart-recovery/internal/repository/cart"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/cart/mock.go -package=mocks

// ErrLinkRejected marks a recovery link that failed lookup or signature
// verification. Callers fall through without disclosing the reason.
var ErrLinkRejected = errors.New("recovery link rejected")

type cartRepository interface {
	CreateCart(context.Context, model.CartRecord) (int64, error)
	RefreshCart(ctx context.Context, id int64, cart model.CartRecord) error
	GetOpenCartIDByEmail(ctx context.Context, email string) (int64, error)
	GetOpenCartIDByUserID(ctx context.Context, userID int64) (int64, error)
	GetCartByID(ctx context.Context, id int64) (model.CartRecord, error)
	SelectAbandoned(ctx context.Context, cutoff time.Time) ([]model.CartRecord, error)
	GetAllCarts(ctx context.Context) ([]model.CartRecord, error)
	MarkEmailSent(ctx context.Context, id int64) error
	DeleteCart(ctx context.Context, id int64) error
	DeleteCartsByEmail(ctx context.Context, email string) (int64, error)
}

type mailSender interface {
	Send(to, subject, htmlBody string) error
}

type liveCartStore interface {
	Replace(ctx context.Context, strategy retry.Strategy, sessionID string, snapshot model.CartSnapshot) error
}

// Service implements the abandoned-cart lifecycle: capture, sweep, redeem,
// reconcile.
type Service struct {
	repo   cartRepository
	mailer mailSender
	carts  liveCartStore
	signer *recovery.Signer
	cfg    *config.Config
	now    func() time.Time
}

func NewService(
	repo cartRepository,
	mailer mailSender,
	carts liveCartStore,
	signer *recovery.Signer,
	cfg *config.Config,
) *Service {
	return &Service{
		repo:   repo,
		mailer: mailer,
		carts:  carts,
		signer: signer,
		cfg:    cfg,
		now:    time.Now,
	}
}

// CaptureInput is a checkout-in-progress cart to track.
type CaptureInput struct {
	UserID       int64
	Email        string
	CustomerName string
	Snapshot     model.CartSnapshot
	CartTotal    float64
}

// Capture persists or refreshes the single open record for the input's
// identity. Precondition failures (feature disabled, empty cart, no identity)
// are silent no-ops.
func (s *Service) Capture(ctx context.Context, in CaptureInput) error {
	if !s.cfg.Recovery.Enabled {
		return nil
	}

	if in.Snapshot.IsEmpty() {
		return nil
	}

	if in.Email == "" && in.UserID == 0 {
		return nil
	}

	record := model.CartRecord{
		UserID:       in.UserID,
		Email:        in.Email,
		CustomerName: in.CustomerName,
		Snapshot:     in.Snapshot,
		CartTotal:    in.CartTotal,
		CreatedAt:    s.now().UTC().Truncate(time.Second),
	}

	var (
		openID int64
		err    error
	)

	// Email identifies the cart when present; the user id only carries
	// captures from logged-in customers who have not typed an email yet.
	if in.Email != "" {
		openID, err = s.repo.GetOpenCartIDByEmail(ctx, in.Email)
	} else {
		openID, err = s.repo.GetOpenCartIDByUserID(ctx, in.UserID)
	}

	if errors.Is(err, cartrepo.ErrNoOpenCart) {
		id, err := s.repo.CreateCart(ctx, record)
		if err != nil {
			return fmt.Errorf("capture cart: %w", err)
		}

		zlog.Logger.Debug().Int64("id", id).Str("email", in.Email).Msg("cart captured")
		return nil
	}
	if err != nil {
		return fmt.Errorf("find open cart: %w", err)
	}

	if err := s.repo.RefreshCart(ctx, openID, record); err != nil {
		return fmt.Errorf("refresh cart: %w", err)
	}

	zlog.Logger.Debug().Int64("id", openID).Str("email", in.Email).Msg("cart refreshed")
	return nil
}

// ProcessAbandoned runs one sweep: it emails every open record older than the
// abandonment threshold and marks each sent only after confirmed dispatch.
// A failed send leaves its record unsent for the next sweep and does not stop
// the batch. Returns the number of emails dispatched.
func (s *Service) ProcessAbandoned(ctx context.Context) (int, error) {
	if !s.cfg.Recovery.Enabled {
		return 0, nil
	}

	cutoff := s.now().UTC().Add(-s.cfg.Recovery.Threshold())

	carts, err := s.repo.SelectAbandoned(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("select abandoned carts: %w", err)
	}

	sent := 0
	for _, cart := range carts {
		if err := s.sendRecoveryEmail(cart); err != nil {
			zlog.Logger.Warn().Err(err).Int64("id", cart.ID).Msg("failed to send recovery email")
			continue
		}

		if err := s.repo.MarkEmailSent(ctx, cart.ID); err != nil {
			zlog.Logger.Error().Err(err).Int64("id", cart.ID).Msg("failed to mark cart emailed")
			continue
		}

		sent++
	}

	return sent, nil
}

func (s *Service) sendRecoveryEmail(cart model.CartRecord) error {
	if cart.Email == "" {
		return errors.New("cart has no email")
	}

	subjectTemplate := s.cfg.Recovery.SubjectTemplate
	bodyTemplate := s.cfg.Recovery.BodyTemplate
	if subjectTemplate == "" || bodyTemplate == "" {
		return errors.New("email templates are not configured")
	}

	link, err := s.signer.URL(s.cfg.Recovery.CheckoutURL, cart.ID, cart.Email, cart.CreatedAt)
	if err != nil {
		return fmt.Errorf("build recovery link: %w", err)
	}

	symbol := s.cfg.Recovery.CurrencySymbol
	data := mailer.TemplateData{
		CustomerName:  cart.CustomerName,
		CartItemsHTML: mailer.ItemsHTML(cart.Snapshot.Items, symbol),
		CartTotal:     mailer.FormatPrice(cart.CartTotal, symbol),
		CheckoutURL:   link,
		SiteName:      s.cfg.Recovery.SiteName,
	}

	subject := mailer.Render(subjectTemplate, data)
	body := mailer.Render(bodyTemplate, data)

	if err := s.mailer.Send(cart.Email, subject, body); err != nil {
		return fmt.Errorf("send recovery email: %w", err)
	}

	return nil
}

// Redeem validates a recovery link, restores the snapshot into the visitor's
// session cart and deletes the tracking record. It returns the checkout URL
// to redirect to. Lookup misses and signature mismatches yield ErrLinkRejected
// with no side effects.
func (s *Service) Redeem(ctx context.Context, strategy retry.Strategy, id int64, key, sessionID string) (string, error) {
	cart, err := s.repo.GetCartByID(ctx, id)
	if err != nil {
		if errors.Is(err, cartrepo.ErrCartNotFound) {
			return "", ErrLinkRejected
		}

		return "", fmt.Errorf("get cart: %w", err)
	}

	if !s.signer.Verify(cart.ID, cart.Email, cart.CreatedAt, key) {
		return "", ErrLinkRejected
	}

	restored := model.CartSnapshot{}
	for _, item := range cart.Snapshot.Items {
		if item.ProductID <= 0 {
			continue
		}

		restored.Items = append(restored.Items, item)
	}

	if err := s.carts.Replace(ctx, strategy, sessionID, restored); err != nil {
		return "", fmt.Errorf("restore session cart: %w", err)
	}

	// The customer is back at checkout; the record is no longer abandoned.
	// If the delete fails the order-completion trigger clears it later.
	if err := s.repo.DeleteCart(ctx, cart.ID); err != nil {
		zlog.Logger.Error().Err(err).Int64("id", cart.ID).Msg("failed to delete recovered cart")
	}

	zlog.Logger.Info().Int64("id", cart.ID).Msg("cart recovered")
	return s.cfg.Recovery.CheckoutURL, nil
}

// ClearForEmail removes every tracking record for an email once a real order
// exists for it.
func (s *Service) ClearForEmail(ctx context.Context, email string) (int64, error) {
	if email == "" {
		return 0, nil
	}

	deleted, err := s.repo.DeleteCartsByEmail(ctx, email)
	if err != nil {
		return 0, fmt.Errorf("clear carts for email: %w", err)
	}

	if deleted > 0 {
		zlog.Logger.Info().Str("email", email).Int64("deleted", deleted).Msg("cleared tracked carts after order")
	}

	return deleted, nil
}

// ListCarts returns all tracking records, newest first.
func (s *Service) ListCarts(ctx context.Context) ([]model.CartRecord, error) {
	carts, err := s.repo.GetAllCarts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list carts: %w", err)
	}

	return carts, nil
}
