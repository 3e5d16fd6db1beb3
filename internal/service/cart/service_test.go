package cart

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"

	"github.com/ekorolev/cart-recovery/internal/config"
	mocks "github.com/ekorolev/cart-recovery/internal/mocks/service/cart"
	"github.com/ekorolev/cart-recovery/internal/model"
	"github.com/ekorolev/cart-recovery/internal/recovery"
	cartrepo "github.com/ekorolev/cart-recovery/internal/repository/cart"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Recovery = config.Recovery{
		Enabled:         true,
		AbandonMinutes:  60,
		Secret:          "test-secret",
		CheckoutURL:     "https://shop.example.com/checkout",
		SiteURL:         "https://shop.example.com",
		SiteName:        "Example Shop",
		CurrencySymbol:  "$",
		SubjectTemplate: "We saved your cart at {site_name}",
		BodyTemplate:    "<p>Hi {customer_name},</p><p>{cart_items}</p><p>Total: {cart_total}</p><p><a href=\"{checkout_url}\">resume</a></p>",
	}
	return cfg
}

func newTestService(t *testing.T) (*Service, *mocks.MockcartRepository, *mocks.MockmailSender, *mocks.MockliveCartStore) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repoMock := mocks.NewMockcartRepository(ctrl)
	mailerMock := mocks.NewMockmailSender(ctrl)
	storeMock := mocks.NewMockliveCartStore(ctrl)

	signer := recovery.NewSigner("test-secret")
	svc := NewService(repoMock, mailerMock, storeMock, signer, testConfig())

	return svc, repoMock, mailerMock, storeMock
}

func fixedNow() time.Time {
	return time.Date(2025, 3, 1, 12, 0, 0, 500000000, time.UTC)
}

func twoItemSnapshot() model.CartSnapshot {
	return model.CartSnapshot{Items: []model.CartItem{
		{ProductID: 11, Name: "Mug", Quantity: 1, UnitPrice: 10, LineSubtotal: 10},
		{ProductID: 12, Name: "Plate", Quantity: 2, UnitPrice: 25, LineSubtotal: 50},
	}}
}

func TestService_Capture_CreatesNewRecord(t *testing.T) {
	svc, repoMock, _, _ := newTestService(t)
	svc.now = fixedNow

	in := CaptureInput{
		Email:        "a@x.com",
		CustomerName: "Alice",
		Snapshot:     twoItemSnapshot(),
		CartTotal:    60,
	}

	repoMock.EXPECT().
		GetOpenCartIDByEmail(gomock.Any(), "a@x.com").
		Return(int64(0), cartrepo.ErrNoOpenCart)

	repoMock.EXPECT().
		CreateCart(gomock.Any(), gomock.AssignableToTypeOf(model.CartRecord{})).
		DoAndReturn(func(_ context.Context, rec model.CartRecord) (int64, error) {
			assert.Equal(t, "a@x.com", rec.Email)
			assert.Equal(t, "Alice", rec.CustomerName)
			assert.Equal(t, 60.0, rec.CartTotal)
			assert.Len(t, rec.Snapshot.Items, 2)
			assert.Equal(t, fixedNow().Truncate(time.Second), rec.CreatedAt, "created_at truncated to seconds")
			assert.False(t, rec.EmailSent)
			assert.False(t, rec.Recovered)
			return 7, nil
		})

	err := svc.Capture(context.Background(), in)
	assert.NoError(t, err)
}

func TestService_Capture_RefreshesExistingRecord(t *testing.T) {
	svc, repoMock, _, _ := newTestService(t)
	svc.now = fixedNow

	in := CaptureInput{Email: "a@x.com", Snapshot: twoItemSnapshot(), CartTotal: 60}

	repoMock.EXPECT().
		GetOpenCartIDByEmail(gomock.Any(), "a@x.com").
		Return(int64(7), nil)

	repoMock.EXPECT().
		RefreshCart(gomock.Any(), int64(7), gomock.AssignableToTypeOf(model.CartRecord{})).
		Return(nil)

	err := svc.Capture(context.Background(), in)
	assert.NoError(t, err)
}

func TestService_Capture_FallsBackToUserID(t *testing.T) {
	svc, repoMock, _, _ := newTestService(t)

	in := CaptureInput{UserID: 3, Snapshot: twoItemSnapshot(), CartTotal: 60}

	repoMock.EXPECT().
		GetOpenCartIDByUserID(gomock.Any(), int64(3)).
		Return(int64(9), nil)

	repoMock.EXPECT().
		RefreshCart(gomock.Any(), int64(9), gomock.Any()).
		Return(nil)

	err := svc.Capture(context.Background(), in)
	assert.NoError(t, err)
}

func TestService_Capture_SilentNoOps(t *testing.T) {
	// No repository expectations: preconditions short-circuit before storage.
	t.Run("disabled", func(t *testing.T) {
		svc, _, _, _ := newTestService(t)
		svc.cfg.Recovery.Enabled = false

		err := svc.Capture(context.Background(), CaptureInput{Email: "a@x.com", Snapshot: twoItemSnapshot()})
		assert.NoError(t, err)
	})

	t.Run("empty cart", func(t *testing.T) {
		svc, _, _, _ := newTestService(t)

		err := svc.Capture(context.Background(), CaptureInput{Email: "a@x.com"})
		assert.NoError(t, err)
	})

	t.Run("no identity", func(t *testing.T) {
		svc, _, _, _ := newTestService(t)

		err := svc.Capture(context.Background(), CaptureInput{Snapshot: twoItemSnapshot()})
		assert.NoError(t, err)
	})
}

func TestService_Capture_RepoError(t *testing.T) {
	svc, repoMock, _, _ := newTestService(t)

	repoMock.EXPECT().
		GetOpenCartIDByEmail(gomock.Any(), "a@x.com").
		Return(int64(0), errors.New("db down"))

	err := svc.Capture(context.Background(), CaptureInput{Email: "a@x.com", Snapshot: twoItemSnapshot()})
	assert.Error(t, err)
}

func TestService_ProcessAbandoned_SendsAndMarks(t *testing.T) {
	svc, repoMock, mailerMock, _ := newTestService(t)
	svc.now = fixedNow

	createdAt := fixedNow().Add(-61 * time.Minute).Truncate(time.Second)
	record := model.CartRecord{
		ID:           7,
		Email:        "a@x.com",
		CustomerName: "Alice",
		Snapshot:     twoItemSnapshot(),
		CartTotal:    60,
		CreatedAt:    createdAt,
	}

	expectedCutoff := fixedNow().UTC().Add(-60 * time.Minute)

	repoMock.EXPECT().
		SelectAbandoned(gomock.Any(), expectedCutoff).
		Return([]model.CartRecord{record}, nil)

	signer := recovery.NewSigner("test-secret")
	expectedLink, err := signer.URL("https://shop.example.com/checkout", 7, "a@x.com", createdAt)
	require.NoError(t, err)

	mailerMock.EXPECT().
		Send("a@x.com", "We saved your cart at Example Shop", gomock.Any()).
		DoAndReturn(func(_, _, body string) error {
			assert.Contains(t, body, "Hi Alice,")
			assert.Contains(t, body, "Mug &times; 1 - $10.00")
			assert.Contains(t, body, "Plate &times; 2 - $50.00")
			assert.Contains(t, body, "Total: $60.00")
			assert.Contains(t, body, expectedLink)
			return nil
		})

	repoMock.EXPECT().MarkEmailSent(gomock.Any(), int64(7)).Return(nil)

	sent, err := svc.ProcessAbandoned(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, sent)
}

func TestService_ProcessAbandoned_Disabled(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	svc.cfg.Recovery.Enabled = false

	sent, err := svc.ProcessAbandoned(context.Background())
	assert.NoError(t, err)
	assert.Zero(t, sent)
}

func TestService_ProcessAbandoned_ThresholdFloor(t *testing.T) {
	svc, repoMock, _, _ := newTestService(t)
	svc.now = fixedNow
	svc.cfg.Recovery.AbandonMinutes = 0

	// A non-positive threshold falls back to 60 minutes.
	expectedCutoff := fixedNow().UTC().Add(-60 * time.Minute)

	repoMock.EXPECT().
		SelectAbandoned(gomock.Any(), expectedCutoff).
		Return(nil, nil)

	sent, err := svc.ProcessAbandoned(context.Background())
	assert.NoError(t, err)
	assert.Zero(t, sent)
}

func TestService_ProcessAbandoned_PartialFailureContinuesBatch(t *testing.T) {
	svc, repoMock, mailerMock, _ := newTestService(t)
	svc.now = fixedNow

	createdAt := fixedNow().Add(-2 * time.Hour).Truncate(time.Second)
	first := model.CartRecord{ID: 7, Email: "a@x.com", Snapshot: twoItemSnapshot(), CartTotal: 60, CreatedAt: createdAt}
	second := model.CartRecord{ID: 8, Email: "b@y.com", Snapshot: twoItemSnapshot(), CartTotal: 25.5, CreatedAt: createdAt}

	repoMock.EXPECT().
		SelectAbandoned(gomock.Any(), gomock.Any()).
		Return([]model.CartRecord{first, second}, nil)

	mailerMock.EXPECT().
		Send("a@x.com", gomock.Any(), gomock.Any()).
		Return(errors.New("smtp timeout"))

	// The failed record is not marked sent and stays eligible for the next
	// sweep; the batch moves on.
	mailerMock.EXPECT().
		Send("b@y.com", gomock.Any(), gomock.Any()).
		Return(nil)

	repoMock.EXPECT().MarkEmailSent(gomock.Any(), int64(8)).Return(nil)

	sent, err := svc.ProcessAbandoned(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, sent)
}

func TestService_ProcessAbandoned_SelectError(t *testing.T) {
	svc, repoMock, _, _ := newTestService(t)

	repoMock.EXPECT().
		SelectAbandoned(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("db down"))

	_, err := svc.ProcessAbandoned(context.Background())
	assert.Error(t, err)
}

func TestService_Redeem_RestoresCartAndDeletesRecord(t *testing.T) {
	svc, repoMock, _, storeMock := newTestService(t)

	createdAt := time.Date(2025, 3, 1, 11, 0, 0, 0, time.UTC)
	snapshot := model.CartSnapshot{Items: []model.CartItem{
		{ProductID: 11, Name: "Mug", Quantity: 1},
		{ProductID: 0, Name: "Ghost", Quantity: 1},
		{ProductID: 12, Name: "Plate", Quantity: 2},
	}}
	record := model.CartRecord{ID: 7, Email: "a@x.com", Snapshot: snapshot, CreatedAt: createdAt}

	key := recovery.NewSigner("test-secret").Sign(7, "a@x.com", createdAt)
	strategy := retry.Strategy{Attempts: 1}

	repoMock.EXPECT().GetCartByID(gomock.Any(), int64(7)).Return(record, nil)

	storeMock.EXPECT().
		Replace(gomock.Any(), strategy, "session-1", gomock.AssignableToTypeOf(model.CartSnapshot{})).
		DoAndReturn(func(_ context.Context, _ retry.Strategy, _ string, restored model.CartSnapshot) error {
			// Items without a positive product reference are skipped.
			require.Len(t, restored.Items, 2)
			assert.Equal(t, int64(11), restored.Items[0].ProductID)
			assert.Equal(t, int64(12), restored.Items[1].ProductID)
			return nil
		})

	repoMock.EXPECT().DeleteCart(gomock.Any(), int64(7)).Return(nil)

	redirect, err := svc.Redeem(context.Background(), strategy, 7, key, "session-1")
	assert.NoError(t, err)
	assert.Equal(t, "https://shop.example.com/checkout", redirect)
}

func TestService_Redeem_RejectsBadSignature(t *testing.T) {
	svc, repoMock, _, _ := newTestService(t)

	createdAt := time.Date(2025, 3, 1, 11, 0, 0, 0, time.UTC)
	record := model.CartRecord{ID: 7, Email: "a@x.com", Snapshot: twoItemSnapshot(), CreatedAt: createdAt}

	repoMock.EXPECT().GetCartByID(gomock.Any(), int64(7)).Return(record, nil)

	_, err := svc.Redeem(context.Background(), retry.Strategy{}, 7, "not-the-signature", "session-1")
	assert.ErrorIs(t, err, ErrLinkRejected)
}

func TestService_Redeem_RejectsStaleLinkAfterRecapture(t *testing.T) {
	svc, repoMock, _, _ := newTestService(t)

	issuedAt := time.Date(2025, 3, 1, 11, 0, 0, 0, time.UTC)
	key := recovery.NewSigner("test-secret").Sign(7, "a@x.com", issuedAt)

	// A later capture refreshed created_at; the old link must die.
	record := model.CartRecord{ID: 7, Email: "a@x.com", Snapshot: twoItemSnapshot(), CreatedAt: issuedAt.Add(10 * time.Minute)}

	repoMock.EXPECT().GetCartByID(gomock.Any(), int64(7)).Return(record, nil)

	_, err := svc.Redeem(context.Background(), retry.Strategy{}, 7, key, "session-1")
	assert.ErrorIs(t, err, ErrLinkRejected)
}

func TestService_Redeem_RejectsUnknownRecord(t *testing.T) {
	svc, repoMock, _, _ := newTestService(t)

	repoMock.EXPECT().
		GetCartByID(gomock.Any(), int64(404)).
		Return(model.CartRecord{}, cartrepo.ErrCartNotFound)

	_, err := svc.Redeem(context.Background(), retry.Strategy{}, 404, "whatever", "session-1")
	assert.ErrorIs(t, err, ErrLinkRejected)
}

func TestService_ClearForEmail(t *testing.T) {
	svc, repoMock, _, _ := newTestService(t)

	repoMock.EXPECT().
		DeleteCartsByEmail(gomock.Any(), "b@y.com").
		Return(int64(2), nil)

	deleted, err := svc.ClearForEmail(context.Background(), "b@y.com")
	assert.NoError(t, err)
	assert.Equal(t, int64(2), deleted)
}

func TestService_ClearForEmail_EmptyEmail(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	deleted, err := svc.ClearForEmail(context.Background(), "")
	assert.NoError(t, err)
	assert.Zero(t, deleted)
}

func TestService_ListCarts(t *testing.T) {
	svc, repoMock, _, _ := newTestService(t)

	carts := []model.CartRecord{{ID: 7}, {ID: 8}}

	repoMock.EXPECT().GetAllCarts(gomock.Any()).Return(carts, nil)

	got, err := svc.ListCarts(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, carts, got)
}
