package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"recharge-gateway/internal/core/domain"
	"recharge-gateway/internal/core/ports"
	"recharge-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// NotifierConfig holds the delivery policy for merchant confirmations.
type NotifierConfig struct {
	MaxAttempts int
	RetryDelays []time.Duration // indexed by failed-attempt count, last entry repeats
	Timeout     time.Duration
}

// CallbackNotifierImpl implements ports.CallbackNotifier. It delivers signed
// order confirmations to merchant callback URLs and records every attempt on
// the order's merchant context.
type CallbackNotifierImpl struct {
	orderRepo  ports.OrderRepository
	transactor ports.DBTransactor
	directory  ports.MerchantDirectory
	codec      ports.SignatureCodec
	scheduler  ports.JobScheduler
	client     *http.Client
	cfg        NotifierConfig
	log        zerolog.Logger
}

// NewCallbackNotifier creates a new CallbackNotifierImpl.
func NewCallbackNotifier(
	orderRepo ports.OrderRepository,
	transactor ports.DBTransactor,
	directory ports.MerchantDirectory,
	codec ports.SignatureCodec,
	scheduler ports.JobScheduler,
	cfg NotifierConfig,
	log zerolog.Logger,
) *CallbackNotifierImpl {
	return &CallbackNotifierImpl{
		orderRepo:  orderRepo,
		transactor: transactor,
		directory:  directory,
		codec:      codec,
		scheduler:  scheduler,
		client:     &http.Client{Timeout: cfg.Timeout},
		cfg:        cfg,
		log:        log,
	}
}

// CanRetry reports whether automatic delivery attempts remain.
func (n *CallbackNotifierImpl) CanRetry(o *domain.PaymentOrder) bool {
	mc := o.Details.Merchant
	if mc == nil || mc.CallbackStatus == domain.CallbackSuccess {
		return false
	}
	return mc.CallbackAttempts < n.cfg.MaxAttempts
}

// Notify performs one delivery attempt for the order's merchant confirmation.
// It re-reads the order fresh, so a stale job against an already-confirmed
// order is a no-op. Exhausting the attempt budget returns CB_001; a manual
// retry after exhaustion still delivers but never reschedules.
func (n *CallbackNotifierImpl) Notify(ctx context.Context, orderID uuid.UUID) error {
	order, err := n.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("load order: %w", err))
	}
	if order == nil {
		return apperror.ErrOrderNotFound()
	}
	mc := order.Details.Merchant
	if order.SourceType != domain.SourceExternal || mc == nil {
		return nil
	}
	if order.Status != domain.OrderStatusCompleted {
		return nil
	}
	if mc.CallbackStatus == domain.CallbackSuccess {
		return nil
	}

	merchant, err := n.directory.Lookup(ctx, mc.MerchantID)
	if err != nil {
		return err
	}

	var deliveryErr error
	if merchant == nil {
		deliveryErr = fmt.Errorf("merchant %q no longer configured", mc.MerchantID)
	} else {
		deliveryErr = n.deliver(ctx, order, mc, merchant.Secret)
	}

	return n.recordAttempt(ctx, orderID, deliveryErr)
}

// deliver sends the signed form-encoded confirmation and interprets the
// response. Any 2xx status counts as delivered.
func (n *CallbackNotifierImpl) deliver(ctx context.Context, order *domain.PaymentOrder, mc *domain.MerchantContext, secret string) error {
	fields := n.payload(order, mc)
	fields["sign"] = n.codec.SignHMAC(secret, fields)

	form := url.Values{}
	for k, v := range fields {
		form.Set(k, v)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, mc.CallbackURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("post callback: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, 4096)) //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("merchant answered %d", resp.StatusCode)
	}
	return nil
}

// payload flattens the confirmation into signable string fields. Amounts are
// the originals frozen at order creation, never re-derived.
func (n *CallbackNotifierImpl) payload(order *domain.PaymentOrder, mc *domain.MerchantContext) map[string]string {
	snap := order.Details.Package
	fields := map[string]string{
		"payment_order_id":  order.ID.String(),
		"business_order_id": mc.BusinessOrderID,
		"merchant_id":       mc.MerchantID,
		"amount":            order.Details.Requested.Amount.String(),
		"currency":          order.Details.Requested.Currency,
		"settled_amount":    order.Details.Settled.Amount.String(),
		"settled_currency":  order.Details.Settled.Currency,
		"status":            "success",
		"product_id":        snap.ID,
		"product_label":     snap.Label,
		"product_credit":    strconv.FormatInt(snap.TotalCredit, 10),
		"timestamp":         strconv.FormatInt(time.Now().UTC().Unix(), 10),
	}
	if order.CompletedAt != nil {
		fields["paid_at"] = strconv.FormatInt(order.CompletedAt.Unix(), 10)
	}
	return fields
}

// recordAttempt persists the outcome of one delivery attempt under a row lock
// and, on failure, schedules the next attempt if budget remains.
func (n *CallbackNotifierImpl) recordAttempt(ctx context.Context, orderID uuid.UUID, deliveryErr error) error {
	tx, err := n.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	order, err := n.orderRepo.GetByIDForUpdate(ctx, tx, orderID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock order: %w", err))
	}
	if order == nil {
		return apperror.ErrOrderNotFound()
	}
	mc := order.Details.Merchant
	if mc == nil || mc.CallbackStatus == domain.CallbackSuccess {
		return nil
	}

	now := time.Now().UTC()
	mc.CallbackAttempts++
	mc.LastCallbackAt = &now

	exhausted := false
	if deliveryErr == nil {
		mc.CallbackStatus = domain.CallbackSuccess
		mc.LastCallbackError = nil
	} else {
		msg := deliveryErr.Error()
		mc.LastCallbackError = &msg
		if mc.CallbackAttempts >= n.cfg.MaxAttempts {
			mc.CallbackStatus = domain.CallbackFailed
			exhausted = true
		} else {
			mc.CallbackStatus = domain.CallbackPending
		}
	}
	attempts := mc.CallbackAttempts

	if err := n.orderRepo.Update(ctx, tx, order); err != nil {
		return apperror.InternalError(fmt.Errorf("record attempt: %w", err))
	}
	if err := tx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit attempt: %w", err))
	}

	switch {
	case deliveryErr == nil:
		n.log.Info().
			Str("order_id", orderID.String()).
			Int("attempt", attempts).
			Msg("merchant callback delivered")
		return nil
	case exhausted:
		n.log.Warn().
			Err(deliveryErr).
			Str("order_id", orderID.String()).
			Int("attempts", attempts).
			Msg("merchant callback exhausted")
		return apperror.ErrCallbackExhausted(attempts)
	default:
		delay := n.delayAfter(attempts)
		n.scheduleRetry(ctx, orderID, attempts+1, delay)
		n.log.Warn().
			Err(deliveryErr).
			Str("order_id", orderID.String()).
			Int("attempt", attempts).
			Dur("next_in", delay).
			Msg("merchant callback failed, retry scheduled")
		return nil
	}
}

// delayAfter returns the wait before the attempt following `failed` failures.
// Past the end of the table the last delay repeats.
func (n *CallbackNotifierImpl) delayAfter(failed int) time.Duration {
	idx := failed - 1
	if idx >= len(n.cfg.RetryDelays) {
		idx = len(n.cfg.RetryDelays) - 1
	}
	if idx < 0 {
		idx = 0
	}
	return n.cfg.RetryDelays[idx]
}

func (n *CallbackNotifierImpl) scheduleRetry(ctx context.Context, orderID uuid.UUID, attempt int, delay time.Duration) {
	payload, err := json.Marshal(ports.CallbackJob{OrderID: orderID.String(), Attempt: attempt})
	if err != nil {
		n.log.Error().Err(err).Str("order_id", orderID.String()).Msg("failed to marshal callback job")
		return
	}
	jobID := ports.CallbackJobID(orderID.String(), attempt)
	if err := n.scheduler.Schedule(ctx, jobID, ports.TaskCallbackRetry, payload, delay); err != nil {
		n.log.Error().Err(err).Str("job_id", jobID).Msg("failed to schedule callback retry")
	}
}
