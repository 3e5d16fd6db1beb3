package cartstore

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/go-redis/redis/v8"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/ekorolev/cart-recovery/internal/mocks/cartstore"
	"github.com/ekorolev/cart-recovery/internal/model"
)

func TestStore_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cacheMock := mocks.NewMockcache(ctrl)
	store := New(cacheMock)
	strategy := retry.Strategy{Attempts: 1}

	snapshot := model.CartSnapshot{Items: []model.CartItem{
		{ProductID: 11, Name: "Mug", Quantity: 2},
	}}
	raw, err := json.Marshal(snapshot)
	require.NoError(t, err)

	cacheMock.EXPECT().
		GetWithRetry(gomock.Any(), strategy, "cart:session:sess-1").
		Return(string(raw), nil)

	got, err := store.Get(context.Background(), strategy, "sess-1")
	assert.NoError(t, err)
	assert.Equal(t, snapshot, got)
}

func TestStore_Get_MissYieldsEmptySnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cacheMock := mocks.NewMockcache(ctrl)
	store := New(cacheMock)

	cacheMock.EXPECT().
		GetWithRetry(gomock.Any(), gomock.Any(), "cart:session:sess-1").
		Return("", redis.Nil)

	got, err := store.Get(context.Background(), retry.Strategy{}, "sess-1")
	assert.NoError(t, err)
	assert.True(t, got.IsEmpty())
}

func TestStore_Get_CacheError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cacheMock := mocks.NewMockcache(ctrl)
	store := New(cacheMock)

	cacheMock.EXPECT().
		GetWithRetry(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", errors.New("redis down"))

	_, err := store.Get(context.Background(), retry.Strategy{}, "sess-1")
	assert.Error(t, err)
}

func TestStore_Replace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cacheMock := mocks.NewMockcache(ctrl)
	store := New(cacheMock)
	strategy := retry.Strategy{Attempts: 1}

	snapshot := model.CartSnapshot{Items: []model.CartItem{
		{ProductID: 11, Name: "Mug", Quantity: 2},
	}}
	raw, err := json.Marshal(snapshot)
	require.NoError(t, err)

	cacheMock.EXPECT().
		SetWithRetry(gomock.Any(), strategy, "cart:session:sess-1", string(raw)).
		Return(nil)

	err = store.Replace(context.Background(), strategy, "sess-1", snapshot)
	assert.NoError(t, err)
}

func TestStore_Replace_CacheError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cacheMock := mocks.NewMockcache(ctrl)
	store := New(cacheMock)

	cacheMock.EXPECT().
		SetWithRetry(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("redis down"))

	err := store.Replace(context.Background(), retry.Strategy{}, "sess-1", model.CartSnapshot{})
	assert.Error(t, err)
}
