package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"recharge-gateway/internal/core/domain"
	"recharge-gateway/internal/core/ports"
	"recharge-gateway/internal/core/ports/mocks"
	"recharge-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type notifierTestDeps struct {
	notifier   *CallbackNotifierImpl
	orderRepo  *mocks.MockOrderRepository
	transactor *mocks.MockDBTransactor
	directory  *mocks.MockMerchantDirectory
	scheduler  *mocks.MockJobScheduler
	codec      *SignatureCodecImpl
	ctrl       *gomock.Controller
}

func setupNotifier(t *testing.T, cfg NotifierConfig) *notifierTestDeps {
	ctrl := gomock.NewController(t)
	d := &notifierTestDeps{
		orderRepo:  mocks.NewMockOrderRepository(ctrl),
		transactor: mocks.NewMockDBTransactor(ctrl),
		directory:  mocks.NewMockMerchantDirectory(ctrl),
		scheduler:  mocks.NewMockJobScheduler(ctrl),
		codec:      NewSignatureCodec(),
		ctrl:       ctrl,
	}
	d.notifier = NewCallbackNotifier(d.orderRepo, d.transactor, d.directory, d.codec, d.scheduler, cfg, zerolog.Nop())
	return d
}

func defaultNotifierConfig() NotifierConfig {
	return NotifierConfig{
		MaxAttempts: 4,
		RetryDelays: []time.Duration{time.Minute, 5 * time.Minute, 15 * time.Minute},
		Timeout:     2 * time.Second,
	}
}

func completedExternalOrder(callbackURL string) *domain.PaymentOrder {
	extID := "PH-889"
	paidAt := time.Now().UTC().Add(-time.Minute)
	return &domain.PaymentOrder{
		ID:              uuid.New(),
		ExternalOrderID: &extID,
		SourceType:      domain.SourceExternal,
		Channel:         "payhub",
		Status:          domain.OrderStatusCompleted,
		CompletedAt:     &paidAt,
		Details: domain.OrderDetails{
			Requested: domain.MoneySnapshot{Amount: decimal.RequireFromString("10.00"), Currency: "USD"},
			Settled:   domain.SettledSnapshot{Amount: decimal.RequireFromString("72.00"), Currency: "CNY", Rate: decimal.RequireFromString("7.2")},
			Package:   domain.PackageSnapshot{ID: "pkg_10", Label: "Starter 1100", TotalCredit: 1100},
			Merchant: &domain.MerchantContext{
				MerchantID:      "m-001",
				BusinessOrderID: "bo-42",
				CallbackURL:     callbackURL,
				CallbackStatus:  domain.CallbackPending,
			},
		},
		CreatedAt: time.Now().UTC().Add(-2 * time.Minute),
	}
}

func TestCallbackNotifier_Notify_DeliversSignedConfirmation(t *testing.T) {
	codec := NewSignatureCodec()

	var gotForm map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotForm = map[string]string{}
		for k := range r.PostForm {
			gotForm[k] = r.PostForm.Get(k)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	d := setupNotifier(t, defaultNotifierConfig())
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	order := completedExternalOrder(srv.URL)

	d.orderRepo.EXPECT().GetByID(ctx, order.ID).Return(order, nil)
	d.directory.EXPECT().Lookup(ctx, "m-001").Return(merchantCfg(), nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.orderRepo.EXPECT().GetByIDForUpdate(ctx, tx, order.ID).Return(order, nil)
	d.orderRepo.EXPECT().Update(ctx, tx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ pgx.Tx, o *domain.PaymentOrder) error {
			mc := o.Details.Merchant
			assert.Equal(t, domain.CallbackSuccess, mc.CallbackStatus)
			assert.Equal(t, 1, mc.CallbackAttempts)
			assert.Nil(t, mc.LastCallbackError)
			require.NotNil(t, mc.LastCallbackAt)
			return nil
		})

	require.NoError(t, d.notifier.Notify(ctx, order.ID))

	require.NotNil(t, gotForm)
	assert.Equal(t, order.ID.String(), gotForm["payment_order_id"])
	assert.Equal(t, "bo-42", gotForm["business_order_id"])
	assert.Equal(t, "10", gotForm["amount"])
	assert.Equal(t, "USD", gotForm["currency"])
	assert.Equal(t, "72", gotForm["settled_amount"])
	assert.Equal(t, "success", gotForm["status"])
	assert.Equal(t, "1100", gotForm["product_credit"])

	sign := gotForm["sign"]
	require.NotEmpty(t, sign)
	assert.True(t, codec.VerifyHMAC(merchantSecret, gotForm, sign))
}

func TestCallbackNotifier_Notify_FailureSchedulesRetry(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	d := setupNotifier(t, defaultNotifierConfig())
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	order := completedExternalOrder(srv.URL)

	d.orderRepo.EXPECT().GetByID(ctx, order.ID).Return(order, nil)
	d.directory.EXPECT().Lookup(ctx, "m-001").Return(merchantCfg(), nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.orderRepo.EXPECT().GetByIDForUpdate(ctx, tx, order.ID).Return(order, nil)
	d.orderRepo.EXPECT().Update(ctx, tx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ pgx.Tx, o *domain.PaymentOrder) error {
			mc := o.Details.Merchant
			assert.Equal(t, domain.CallbackPending, mc.CallbackStatus)
			assert.Equal(t, 1, mc.CallbackAttempts)
			require.NotNil(t, mc.LastCallbackError)
			return nil
		})
	d.scheduler.EXPECT().
		Schedule(ctx, ports.CallbackJobID(order.ID.String(), 2), ports.TaskCallbackRetry, gomock.Any(), time.Minute).
		Return(nil)

	// A failed attempt with budget left is not an error for the caller.
	require.NoError(t, d.notifier.Notify(ctx, order.ID))
}

func TestCallbackNotifier_Notify_ExhaustionFailsCallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	d := setupNotifier(t, defaultNotifierConfig())
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	order := completedExternalOrder(srv.URL)
	order.Details.Merchant.CallbackAttempts = 3 // one attempt left

	d.orderRepo.EXPECT().GetByID(ctx, order.ID).Return(order, nil)
	d.directory.EXPECT().Lookup(ctx, "m-001").Return(merchantCfg(), nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.orderRepo.EXPECT().GetByIDForUpdate(ctx, tx, order.ID).Return(order, nil)
	d.orderRepo.EXPECT().Update(ctx, tx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ pgx.Tx, o *domain.PaymentOrder) error {
			mc := o.Details.Merchant
			assert.Equal(t, domain.CallbackFailed, mc.CallbackStatus)
			assert.Equal(t, 4, mc.CallbackAttempts)
			return nil
		})
	// No reschedule once the budget is spent.

	err := d.notifier.Notify(ctx, order.ID)
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "CB_001", appErr.Code)
}

func TestCallbackNotifier_Notify_NoOpWhenAlreadyConfirmed(t *testing.T) {
	d := setupNotifier(t, defaultNotifierConfig())
	defer d.ctrl.Finish()

	ctx := context.Background()
	order := completedExternalOrder("http://unused.invalid")
	order.Details.Merchant.CallbackStatus = domain.CallbackSuccess

	d.orderRepo.EXPECT().GetByID(ctx, order.ID).Return(order, nil)

	require.NoError(t, d.notifier.Notify(ctx, order.ID))
}

func TestCallbackNotifier_Notify_NoOpWhenNotCompleted(t *testing.T) {
	d := setupNotifier(t, defaultNotifierConfig())
	defer d.ctrl.Finish()

	ctx := context.Background()
	order := completedExternalOrder("http://unused.invalid")
	order.Status = domain.OrderStatusPending
	order.CompletedAt = nil

	d.orderRepo.EXPECT().GetByID(ctx, order.ID).Return(order, nil)

	require.NoError(t, d.notifier.Notify(ctx, order.ID))
}

func TestCallbackNotifier_Notify_MissingMerchantCountsAsFailure(t *testing.T) {
	d := setupNotifier(t, defaultNotifierConfig())
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	order := completedExternalOrder("http://unused.invalid")

	d.orderRepo.EXPECT().GetByID(ctx, order.ID).Return(order, nil)
	d.directory.EXPECT().Lookup(ctx, "m-001").Return(nil, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.orderRepo.EXPECT().GetByIDForUpdate(ctx, tx, order.ID).Return(order, nil)
	d.orderRepo.EXPECT().Update(ctx, tx, gomock.Any()).Return(nil)
	d.scheduler.EXPECT().
		Schedule(ctx, ports.CallbackJobID(order.ID.String(), 2), ports.TaskCallbackRetry, gomock.Any(), time.Minute).
		Return(nil)

	require.NoError(t, d.notifier.Notify(ctx, order.ID))
}

func TestCallbackNotifier_CanRetry(t *testing.T) {
	d := setupNotifier(t, defaultNotifierConfig())
	defer d.ctrl.Finish()

	order := completedExternalOrder("http://unused.invalid")
	assert.True(t, d.notifier.CanRetry(order))

	order.Details.Merchant.CallbackAttempts = 4
	assert.False(t, d.notifier.CanRetry(order))

	order.Details.Merchant.CallbackAttempts = 1
	order.Details.Merchant.CallbackStatus = domain.CallbackSuccess
	assert.False(t, d.notifier.CanRetry(order))

	order.Details.Merchant = nil
	assert.False(t, d.notifier.CanRetry(order))
}

func TestCallbackNotifier_DelayAfterClampsToLastEntry(t *testing.T) {
	d := setupNotifier(t, defaultNotifierConfig())
	defer d.ctrl.Finish()

	assert.Equal(t, time.Minute, d.notifier.delayAfter(1))
	assert.Equal(t, 5*time.Minute, d.notifier.delayAfter(2))
	assert.Equal(t, 15*time.Minute, d.notifier.delayAfter(3))
	assert.Equal(t, 15*time.Minute, d.notifier.delayAfter(10))
}
