package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"recharge-gateway/internal/core/domain"
	"recharge-gateway/internal/core/ports"
	"recharge-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// OrderLifecycleConfig holds the timing knobs of the lifecycle manager.
type OrderLifecycleConfig struct {
	MerchantSkew time.Duration // signed merchant request timestamp window
	WebhookSkew  time.Duration // inbound gateway callback timestamp window
	NonceTTL     time.Duration // replay-nonce retention
}

// OrderServiceImpl implements ports.OrderService.
type OrderServiceImpl struct {
	orderRepo  ports.OrderRepository
	pkgRepo    ports.PackageRepository
	wallet     ports.WalletCreditor
	transactor ports.DBTransactor
	settings   ports.SettingsResolver
	directory  ports.MerchantDirectory
	registry   ports.ProviderRegistry
	codec      ports.SignatureCodec
	replay     ports.ReplayGuard
	scheduler  ports.JobScheduler
	publisher  ports.EventPublisher
	cfg        OrderLifecycleConfig
	log        zerolog.Logger
}

// NewOrderService creates a new OrderServiceImpl.
func NewOrderService(
	orderRepo ports.OrderRepository,
	pkgRepo ports.PackageRepository,
	wallet ports.WalletCreditor,
	transactor ports.DBTransactor,
	settings ports.SettingsResolver,
	directory ports.MerchantDirectory,
	registry ports.ProviderRegistry,
	codec ports.SignatureCodec,
	replay ports.ReplayGuard,
	scheduler ports.JobScheduler,
	publisher ports.EventPublisher,
	cfg OrderLifecycleConfig,
	log zerolog.Logger,
) *OrderServiceImpl {
	return &OrderServiceImpl{
		orderRepo:  orderRepo,
		pkgRepo:    pkgRepo,
		wallet:     wallet,
		transactor: transactor,
		settings:   settings,
		directory:  directory,
		registry:   registry,
		codec:      codec,
		replay:     replay,
		scheduler:  scheduler,
		publisher:  publisher,
		cfg:        cfg,
		log:        log,
	}
}

// CreateOrder creates a platform-user order and initiates payment on the
// active channel.
func (s *OrderServiceImpl) CreateOrder(ctx context.Context, req ports.CreateOrderRequest) (*ports.OrderProjection, error) {
	amount, err := s.parseAmount(ctx, req.Amount, req.Currency)
	if err != nil {
		return nil, err
	}

	pkg, err := s.resolvePackage(ctx, req.PackageID, amount, req.Currency)
	if err != nil {
		return nil, err
	}

	channel, provider, err := s.activeProvider(ctx)
	if err != nil {
		return nil, err
	}

	settled, err := s.resolveSettlement(ctx, channel, amount, req.Currency)
	if err != nil {
		return nil, err
	}

	userID := req.UserID
	order := &domain.PaymentOrder{
		ID:         uuid.New(),
		SourceType: domain.SourceInternal,
		UserID:     &userID,
		Channel:    channel,
		Status:     domain.OrderStatusPending,
		Details: domain.OrderDetails{
			Requested: domain.MoneySnapshot{Amount: amount, Currency: req.Currency},
			Settled:   settled,
			Package:   pkg.Snapshot(),
		},
		CreatedAt: time.Now().UTC(),
	}

	if err := s.persistNew(ctx, order); err != nil {
		return nil, err
	}

	return s.initiatePayment(ctx, order, provider)
}

// CreateExternalOrder creates an order on behalf of a signed merchant
// request. Money always comes from the resolved package, never the caller.
func (s *OrderServiceImpl) CreateExternalOrder(ctx context.Context, req ports.ExternalOrderRequest) (*ports.OrderProjection, error) {
	merchant, err := s.verifyMerchant(ctx, req.MerchantID, req.Timestamp, req.Sign, map[string]string{
		"merchant_id":       req.MerchantID,
		"business_order_id": req.BusinessOrderID,
		"ret_url":           req.RetURL,
		"extra_data":        req.ExtraData,
		"timestamp":         strconv.FormatInt(req.Timestamp, 10),
	})
	if err != nil {
		return nil, err
	}

	// Idempotency: (merchantId, businessOrderId) identifies at most one order.
	existing, err := s.orderRepo.GetByMerchantRef(ctx, req.MerchantID, req.BusinessOrderID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("idempotency lookup: %w", err))
	}
	if existing != nil {
		if existing.IsTerminal() {
			return nil, apperror.ErrDuplicateOrder(req.BusinessOrderID)
		}
		return s.projection(existing), nil
	}

	pkg, err := s.pkgRepo.GetByID(ctx, req.PackageID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load package: %w", err))
	}
	if pkg == nil || !pkg.IsActive() {
		return nil, apperror.ErrPackageMismatch(fmt.Sprintf("package %q not available", req.PackageID))
	}

	channel, provider, err := s.activeProvider(ctx)
	if err != nil {
		return nil, err
	}

	settled, err := s.resolveSettlement(ctx, channel, pkg.Price, pkg.Currency)
	if err != nil {
		return nil, err
	}

	order := &domain.PaymentOrder{
		ID:         uuid.New(),
		SourceType: domain.SourceExternal,
		Channel:    channel,
		Status:     domain.OrderStatusPending,
		Details: domain.OrderDetails{
			Requested: domain.MoneySnapshot{Amount: pkg.Price, Currency: pkg.Currency},
			Settled:   settled,
			Package:   pkg.Snapshot(),
			Merchant: &domain.MerchantContext{
				MerchantID:       merchant.MerchantID,
				BusinessOrderID:  req.BusinessOrderID,
				CallbackURL:      merchant.CallbackURL,
				ReturnURL:        req.RetURL,
				ExpectedAmount:   pkg.Price,
				ExpectedCurrency: pkg.Currency,
				SignatureAudit:   req.Sign,
				CallbackStatus:   domain.CallbackPending,
			},
		},
		CreatedAt: time.Now().UTC(),
	}

	if err := s.persistNew(ctx, order); err != nil {
		if errors.Is(err, ports.ErrConflict) {
			// Lost the insert race: re-read and return the winner unchanged.
			winner, rerr := s.orderRepo.GetByMerchantRef(ctx, req.MerchantID, req.BusinessOrderID)
			if rerr != nil || winner == nil {
				return nil, apperror.InternalError(fmt.Errorf("conflict re-read: %w", rerr))
			}
			if winner.IsTerminal() {
				return nil, apperror.ErrDuplicateOrder(req.BusinessOrderID)
			}
			return s.projection(winner), nil
		}
		return nil, err
	}

	return s.initiatePayment(ctx, order, provider)
}

// QueryExternalOrder answers a signed merchant status query.
func (s *OrderServiceImpl) QueryExternalOrder(ctx context.Context, req ports.ExternalQueryRequest) (*ports.ExternalQueryResult, error) {
	if _, err := s.verifyMerchant(ctx, req.MerchantID, req.Timestamp, req.Sign, map[string]string{
		"merchant_id":       req.MerchantID,
		"business_order_id": req.BusinessOrderID,
		"timestamp":         strconv.FormatInt(req.Timestamp, 10),
	}); err != nil {
		return nil, err
	}

	order, err := s.orderRepo.GetByMerchantRef(ctx, req.MerchantID, req.BusinessOrderID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("query order: %w", err))
	}
	if order == nil {
		return nil, apperror.ErrOrderNotFound()
	}

	switch order.Status {
	case domain.OrderStatusPending:
		return &ports.ExternalQueryResult{Status: ports.ExternalStatusPending}, nil
	case domain.OrderStatusCompleted:
		snap := order.Details.Package
		return &ports.ExternalQueryResult{
			Status:      ports.ExternalStatusSuccess,
			ProductInfo: &snap,
			PaidAt:      order.CompletedAt,
		}, nil
	default:
		return &ports.ExternalQueryResult{Status: ports.ExternalStatusFailed}, nil
	}
}

// ApplyCallback processes one inbound gateway callback. It never returns an
// error: the CallbackResult tells the transport layer whether to acknowledge.
func (s *OrderServiceImpl) ApplyCallback(ctx context.Context, channel string, raw []byte) ports.CallbackResult {
	reject := func(reason string) ports.CallbackResult {
		return ports.CallbackResult{Accepted: false, Acknowledged: false, Reason: reason}
	}

	// rejectRetryable frees the claimed nonce before rejecting, so the
	// gateway's redelivery of the same message is not dropped as a replay.
	// Only used for internal failures; deterministic rejects keep the claim.
	rejectRetryable := func(nonceKey, reason string) ports.CallbackResult {
		if err := s.replay.Release(ctx, nonceKey); err != nil {
			s.log.Error().Err(err).Str("channel", channel).Msg("replay nonce release failed")
		}
		return reject(reason)
	}

	provider, ok := s.registry.Get(channel)
	if !ok {
		return reject("unknown channel " + channel)
	}

	upd, err := provider.HandleCallback(ctx, raw)
	if err != nil {
		s.log.Warn().Err(err).Str("channel", channel).Msg("callback verification failed")
		return reject("verification failed")
	}

	// Replay defenses, in order: timestamp window, then nonce dedup.
	now := time.Now().UTC()
	if !s.codec.WithinSkew(upd.Timestamp, now, s.cfg.WebhookSkew) {
		return reject("timestamp outside window")
	}
	ref := upd.OrderID
	if ref == "" {
		ref = upd.ExternalOrderID
	}
	nonceKey := fmt.Sprintf("cb:%s:%d:%s", ref, upd.Timestamp, upd.Signature)
	fresh, err := s.replay.CheckAndSet(ctx, nonceKey, s.cfg.NonceTTL)
	if err != nil {
		s.log.Error().Err(err).Str("channel", channel).Msg("replay guard unavailable")
		return reject("replay guard unavailable")
	}
	if !fresh {
		return reject("replayed callback")
	}

	order, err := s.resolveCallbackOrder(ctx, upd)
	if err != nil {
		s.log.Error().Err(err).Str("channel", channel).Msg("callback order lookup failed")
		return rejectRetryable(nonceKey, "order lookup failed")
	}
	if order == nil {
		return reject("order not found")
	}

	if order.IsTerminal() {
		// Idempotent hit: the gateway double-sent a callback we already applied.
		return ports.CallbackResult{Accepted: true, Acknowledged: true, Reason: "already terminal"}
	}

	settled := order.Details.Settled
	if !upd.Amount.Equal(settled.Amount) || upd.Currency != settled.Currency {
		// Retrying cannot fix mismatched data: fail the order and ack.
		if _, err := s.markFailed(ctx, order.ID, upd.Raw); err != nil {
			s.log.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to mark amount-mismatch order")
			return rejectRetryable(nonceKey, "persist failed")
		}
		s.log.Warn().
			Str("order_id", order.ID.String()).
			Str("reported", upd.Amount.String()+" "+upd.Currency).
			Str("settled", settled.Amount.String()+" "+settled.Currency).
			Msg("callback amount mismatch")
		return ports.CallbackResult{Accepted: false, Acknowledged: true, Reason: "amount mismatch"}
	}

	switch upd.Status {
	case domain.OrderStatusCompleted:
		if _, err := s.complete(ctx, order.ID, optional(upd.ExternalOrderID), upd.Raw, now); err != nil {
			s.log.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to complete order from callback")
			return rejectRetryable(nonceKey, "persist failed")
		}
		return ports.CallbackResult{Accepted: true, Acknowledged: true, Reason: "completed"}
	case domain.OrderStatusFailed:
		if _, err := s.markFailed(ctx, order.ID, upd.Raw); err != nil {
			s.log.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to fail order from callback")
			return rejectRetryable(nonceKey, "persist failed")
		}
		return ports.CallbackResult{Accepted: true, Acknowledged: true, Reason: "failed"}
	default:
		// Non-terminal report: nothing to apply.
		return ports.CallbackResult{Accepted: true, Acknowledged: true, Reason: "no state change"}
	}
}

// --- internals ---

func (s *OrderServiceImpl) parseAmount(ctx context.Context, raw, currency string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, apperror.ErrInvalidAmount("not a decimal")
	}
	if !amount.IsPositive() {
		return decimal.Zero, apperror.ErrInvalidAmount("must be positive")
	}
	refCurrency, err := s.settings.ReferenceCurrency(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	if currency == refCurrency && amount.Exponent() < -2 {
		return decimal.Zero, apperror.ErrInvalidAmount("at most 2 decimal places")
	}
	return amount, nil
}

func (s *OrderServiceImpl) resolvePackage(ctx context.Context, packageID string, amount decimal.Decimal, currency string) (*domain.RechargePackage, error) {
	if packageID != "" {
		pkg, err := s.pkgRepo.GetByID(ctx, packageID)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("load package: %w", err))
		}
		if pkg == nil || !pkg.IsActive() {
			return nil, apperror.ErrPackageMismatch(fmt.Sprintf("package %q not available", packageID))
		}
		if pkg.Currency != currency {
			return nil, apperror.ErrPackageMismatch("currency does not match package")
		}
		if !pkg.Price.Equal(amount) {
			return nil, apperror.ErrPackageMismatch("amount does not match package price")
		}
		return pkg, nil
	}

	pkg, err := s.pkgRepo.FindActiveByPrice(ctx, amount, currency)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("find package by price: %w", err))
	}
	if pkg == nil {
		return nil, apperror.ErrPackageMismatch("no active package matches amount and currency")
	}
	return pkg, nil
}

func (s *OrderServiceImpl) activeProvider(ctx context.Context) (string, ports.GatewayProvider, error) {
	channel, err := s.settings.ActiveChannel(ctx)
	if err != nil {
		return "", nil, err
	}
	provider, ok := s.registry.Get(channel)
	if !ok {
		return "", nil, apperror.ErrUnknownChannel(channel)
	}
	return channel, provider, nil
}

// resolveSettlement converts the requested amount into the channel's
// settlement currency. The rate actually used is stored for audit.
func (s *OrderServiceImpl) resolveSettlement(ctx context.Context, channel string, amount decimal.Decimal, currency string) (domain.SettledSnapshot, error) {
	creds, err := s.settings.ChannelCredentials(ctx, channel)
	if err != nil {
		return domain.SettledSnapshot{}, err
	}
	settleCurrency := creds.SettlementCurrency
	if settleCurrency == "" || settleCurrency == currency {
		return domain.SettledSnapshot{Amount: amount, Currency: currency, Rate: decimal.NewFromInt(1)}, nil
	}
	rate, err := s.settings.ExchangeRate(ctx)
	if err != nil {
		return domain.SettledSnapshot{}, err
	}
	return domain.SettledSnapshot{
		Amount:   amount.Mul(rate).Round(2),
		Currency: settleCurrency,
		Rate:     rate,
	}, nil
}

func (s *OrderServiceImpl) verifyMerchant(ctx context.Context, merchantID string, timestamp int64, sign string, fields map[string]string) (*domain.MerchantConfig, error) {
	merchant, err := s.directory.Lookup(ctx, merchantID)
	if err != nil {
		return nil, err
	}
	if merchant == nil {
		return nil, apperror.ErrUnknownMerchant(merchantID)
	}
	if !s.codec.WithinSkew(timestamp, time.Now().UTC(), s.cfg.MerchantSkew) {
		return nil, apperror.ErrTimestampExpired()
	}
	if !s.codec.VerifyHMAC(merchant.Secret, fields, sign) {
		return nil, apperror.ErrInvalidSignature()
	}
	return merchant, nil
}

func (s *OrderServiceImpl) persistNew(ctx context.Context, order *domain.PaymentOrder) error {
	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := s.orderRepo.Create(ctx, tx, order); err != nil {
		if errors.Is(err, ports.ErrConflict) {
			return err
		}
		return apperror.InternalError(fmt.Errorf("create order: %w", err))
	}
	if err := tx.Commit(ctx); err != nil {
		if errors.Is(err, ports.ErrConflict) {
			return err
		}
		return apperror.InternalError(fmt.Errorf("commit order: %w", err))
	}

	s.log.Info().
		Str("order_id", order.ID.String()).
		Str("source", string(order.SourceType)).
		Str("channel", order.Channel).
		Str("amount", order.Details.Requested.Amount.String()).
		Str("currency", order.Details.Requested.Currency).
		Msg("order created")
	return nil
}

// initiatePayment calls the gateway synchronously and merges the result.
func (s *OrderServiceImpl) initiatePayment(ctx context.Context, order *domain.PaymentOrder, provider ports.GatewayProvider) (*ports.OrderProjection, error) {
	res, err := provider.CreatePayment(ctx, order)
	if err != nil {
		if _, ferr := s.markFailed(ctx, order.ID, ""); ferr != nil {
			s.log.Error().Err(ferr).Str("order_id", order.ID.String()).Msg("failed to mark order after gateway error")
		}
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, apperror.ErrGatewayUnavailable(order.Channel, err)
	}

	switch res.Status {
	case domain.OrderStatusCompleted:
		completed, err := s.complete(ctx, order.ID, res.ExternalOrderID, "", time.Now().UTC())
		if err != nil {
			return nil, err
		}
		return s.projection(completed), nil
	default:
		order.ExternalOrderID = res.ExternalOrderID
		if res.PayURL != nil {
			order.Details.Display.PayURL = *res.PayURL
		}
		if err := s.updateOrder(ctx, order); err != nil {
			return nil, err
		}
		return s.projection(order), nil
	}
}

// complete runs the first-and-only transition to COMPLETED plus settlement
// side-effects inside one transaction. Safe to call on an already-terminal
// order: the fresh re-read short-circuits.
func (s *OrderServiceImpl) complete(ctx context.Context, orderID uuid.UUID, externalID *string, rawPayload string, now time.Time) (*domain.PaymentOrder, error) {
	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	order, err := s.orderRepo.GetByIDForUpdate(ctx, tx, orderID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock order: %w", err))
	}
	if order == nil {
		return nil, apperror.ErrOrderNotFound()
	}
	if order.IsTerminal() {
		return order, nil
	}

	order.Status = domain.OrderStatusCompleted
	order.CompletedAt = &now
	if externalID != nil && *externalID != "" {
		order.ExternalOrderID = externalID
	}
	if rawPayload != "" {
		order.Details.RawCallback = rawPayload
	}

	if order.SourceType == domain.SourceInternal && order.UserID != nil {
		snap := order.Details.Package
		if err := s.wallet.Credit(ctx, tx, *order.UserID, snap.TotalCredit); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("credit wallet: %w", err))
		}
		if err := s.wallet.FlagGuestConversion(ctx, tx, *order.UserID); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("flag guest conversion: %w", err))
		}
		if snap.Membership != nil {
			if err := s.wallet.GrantMembership(ctx, tx, *order.UserID, snap.Membership.Plan, snap.Membership.Days); err != nil {
				return nil, apperror.InternalError(fmt.Errorf("grant membership: %w", err))
			}
		}
	}

	if err := s.orderRepo.Update(ctx, tx, order); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update order: %w", err))
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit completion: %w", err))
	}

	// Post-commit only: an event must never fire for a rolled-back transaction.
	s.publishCompleted(ctx, order)

	if order.SourceType == domain.SourceExternal {
		s.scheduleMerchantCallback(ctx, order.ID, 1, 0)
	}

	s.log.Info().
		Str("order_id", order.ID.String()).
		Str("source", string(order.SourceType)).
		Msg("order completed")
	return order, nil
}

// markFailed transitions a non-terminal order to FAILED, persisting the raw
// callback payload when one triggered the failure.
func (s *OrderServiceImpl) markFailed(ctx context.Context, orderID uuid.UUID, rawPayload string) (*domain.PaymentOrder, error) {
	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	order, err := s.orderRepo.GetByIDForUpdate(ctx, tx, orderID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock order: %w", err))
	}
	if order == nil {
		return nil, apperror.ErrOrderNotFound()
	}
	if order.IsTerminal() {
		return order, nil
	}

	order.Status = domain.OrderStatusFailed
	if rawPayload != "" {
		order.Details.RawCallback = rawPayload
	}
	if err := s.orderRepo.Update(ctx, tx, order); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update order: %w", err))
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit failure: %w", err))
	}
	return order, nil
}

func (s *OrderServiceImpl) updateOrder(ctx context.Context, order *domain.PaymentOrder) error {
	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := s.orderRepo.Update(ctx, tx, order); err != nil {
		return apperror.InternalError(fmt.Errorf("update order: %w", err))
	}
	if err := tx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit update: %w", err))
	}
	return nil
}

func (s *OrderServiceImpl) resolveCallbackOrder(ctx context.Context, upd *ports.CallbackUpdate) (*domain.PaymentOrder, error) {
	if upd.ExternalOrderID != "" {
		order, err := s.orderRepo.GetByExternalID(ctx, upd.ExternalOrderID)
		if err != nil {
			return nil, err
		}
		if order != nil {
			return order, nil
		}
	}
	if upd.OrderID != "" {
		id, err := uuid.Parse(upd.OrderID)
		if err != nil {
			return nil, nil
		}
		return s.orderRepo.GetByID(ctx, id)
	}
	return nil, nil
}

func (s *OrderServiceImpl) publishCompleted(ctx context.Context, order *domain.PaymentOrder) {
	ev := domain.OrderCompletedEvent{
		OrderID:     order.ID,
		SourceType:  order.SourceType,
		Channel:     order.Channel,
		UserID:      order.UserID,
		Amount:      order.Details.Requested.Amount,
		Currency:    order.Details.Requested.Currency,
		TotalCredit: order.Details.Package.TotalCredit,
		CompletedAt: *order.CompletedAt,
	}
	if mc := order.Details.Merchant; mc != nil {
		ev.MerchantID = mc.MerchantID
	}
	if err := s.publisher.PublishOrderCompleted(ctx, ev); err != nil {
		s.log.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to publish order.completed")
	}
}

func (s *OrderServiceImpl) scheduleMerchantCallback(ctx context.Context, orderID uuid.UUID, attempt int, delay time.Duration) {
	payload, err := json.Marshal(ports.CallbackJob{OrderID: orderID.String(), Attempt: attempt})
	if err != nil {
		s.log.Error().Err(err).Str("order_id", orderID.String()).Msg("failed to marshal callback job")
		return
	}
	jobID := ports.CallbackJobID(orderID.String(), attempt)
	if err := s.scheduler.Schedule(ctx, jobID, ports.TaskCallbackRetry, payload, delay); err != nil {
		s.log.Error().Err(err).Str("job_id", jobID).Msg("failed to schedule merchant callback")
	}
}

func (s *OrderServiceImpl) projection(order *domain.PaymentOrder) *ports.OrderProjection {
	p := &ports.OrderProjection{
		ID:              order.ID.String(),
		Status:          order.Status,
		Amount:          order.Details.Requested.Amount,
		Currency:        order.Details.Requested.Currency,
		SettledAmount:   order.Details.Settled.Amount,
		SettledCurrency: order.Details.Settled.Currency,
		Channel:         order.Channel,
		ExternalOrderID: order.ExternalOrderID,
		CreatedAt:       order.CreatedAt,
		CompletedAt:     order.CompletedAt,
	}
	if order.Details.Display.PayURL != "" {
		u := order.Details.Display.PayURL
		p.PayURL = &u
	}
	snap := order.Details.Package
	p.ProductInfo = &snap
	if mc := order.Details.Merchant; mc != nil {
		p.BusinessOrderID = mc.BusinessOrderID
	}
	return p
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
