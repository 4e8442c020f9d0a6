package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
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

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Payhub state codes carried in create responses and callbacks.
const (
	payhubStatePending   = 0
	payhubStateCompleted = 1
	payhubStateFailed    = 2
)

// PayhubProvider integrates the payhub aggregator channel. Requests and
// callbacks are signed with the legacy uppercase-MD5 keyed digest. Credentials
// are resolved per call so configuration changes apply without restart.
type PayhubProvider struct {
	settings  ports.SettingsResolver
	codec     ports.SignatureCodec
	notifyURL string // absolute URL payhub posts callbacks to
	client    *http.Client
	log       zerolog.Logger
}

// NewPayhubProvider creates a new PayhubProvider.
func NewPayhubProvider(settings ports.SettingsResolver, codec ports.SignatureCodec, notifyURL string, timeout time.Duration, log zerolog.Logger) *PayhubProvider {
	return &PayhubProvider{
		settings:  settings,
		codec:     codec,
		notifyURL: notifyURL,
		client:    &http.Client{Timeout: timeout},
		log:       log,
	}
}

func (p *PayhubProvider) Channel() string { return ChannelPayhub }

type payhubCreateResponse struct {
	Code    int    `json:"code"`
	Msg     string `json:"msg"`
	OrderID string `json:"order_id"`
	PayURL  string `json:"pay_url"`
	State   int    `json:"state"`
}

// CreatePayment registers the order with payhub. The settled amount is what
// the channel sees; the requested amount never leaves the platform.
func (p *PayhubProvider) CreatePayment(ctx context.Context, order *domain.PaymentOrder) (*ports.InitResult, error) {
	creds, err := p.settings.ChannelCredentials(ctx, ChannelPayhub)
	if err != nil {
		return nil, err
	}

	fields := map[string]string{
		"account_id":   creds.AccountID,
		"out_order_id": order.ID.String(),
		"amount":       order.Details.Settled.Amount.String(),
		"currency":     order.Details.Settled.Currency,
		"notify_url":   p.notifyURL,
	}
	if mc := order.Details.Merchant; mc != nil && mc.ReturnURL != "" {
		fields["return_url"] = mc.ReturnURL
	}
	fields["sign"] = p.codec.SignMD5(creds.Secret, fields)

	req, err := p.buildCreateRequest(ctx, creds, fields)
	if err != nil {
		return nil, apperror.ErrGatewayUnavailable(ChannelPayhub, err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, apperror.ErrGatewayUnavailable(ChannelPayhub, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return nil, apperror.ErrGatewayUnavailable(ChannelPayhub, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apperror.ErrGatewayUnavailable(ChannelPayhub, fmt.Errorf("status %d", resp.StatusCode))
	}

	var out payhubCreateResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, apperror.ErrGatewayUnavailable(ChannelPayhub, fmt.Errorf("decode response: %w", err))
	}
	if out.Code != 0 {
		return nil, apperror.ErrGatewayRejected(ChannelPayhub, fmt.Errorf("code %d: %s", out.Code, out.Msg))
	}

	res := &ports.InitResult{Status: domain.OrderStatusPending}
	if out.OrderID != "" {
		res.ExternalOrderID = &out.OrderID
	}
	if out.State == payhubStateCompleted {
		res.Status = domain.OrderStatusCompleted
	} else if out.PayURL != "" {
		res.PayURL = &out.PayURL
	}
	return res, nil
}

func (p *PayhubProvider) buildCreateRequest(ctx context.Context, creds *domain.ChannelCredentials, fields map[string]string) (*http.Request, error) {
	if creds.Encoding == "form" {
		form := url.Values{}
		for k, v := range fields {
			form.Set(k, v)
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, creds.Endpoint, strings.NewReader(form.Encode()))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		return req, nil
	}

	body, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, creds.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// HandleCallback verifies a payhub callback and normalizes it. Payloads come
// either JSON- or form-encoded depending on the channel account.
func (p *PayhubProvider) HandleCallback(ctx context.Context, raw []byte) (*ports.CallbackUpdate, error) {
	creds, err := p.settings.ChannelCredentials(ctx, ChannelPayhub)
	if err != nil {
		return nil, err
	}

	fields, err := parseCallbackFields(raw)
	if err != nil {
		return nil, apperror.ErrInvalidSignature()
	}

	if fields["account_id"] != creds.AccountID {
		return nil, apperror.ErrInvalidSignature()
	}
	sign := fields["sign"]
	if sign == "" || !p.codec.VerifyMD5(creds.Secret, fields, sign) {
		return nil, apperror.ErrInvalidSignature()
	}

	status, err := payhubStatus(fields)
	if err != nil {
		return nil, apperror.ErrInvalidSignature()
	}

	amountRaw := fields["pay_amount"]
	if amountRaw == "" {
		amountRaw = fields["amount"]
	}
	amount, err := decimal.NewFromString(amountRaw)
	if err != nil {
		return nil, apperror.ErrInvalidSignature()
	}

	timestamp, err := strconv.ParseInt(fields["timestamp"], 10, 64)
	if err != nil {
		return nil, apperror.ErrInvalidSignature()
	}

	return &ports.CallbackUpdate{
		OrderID:         fields["out_order_id"],
		ExternalOrderID: fields["order_id"],
		Status:          status,
		Amount:          amount,
		Currency:        fields["currency"],
		Timestamp:       timestamp,
		Signature:       sign,
		Raw:             string(raw),
	}, nil
}

// payhubStatus maps channel state to an order status. The numeric state code
// wins over the textual status when both are present and disagree.
func payhubStatus(fields map[string]string) (domain.OrderStatus, error) {
	if raw, ok := fields["state"]; ok && raw != "" {
		state, err := strconv.Atoi(raw)
		if err != nil {
			return "", fmt.Errorf("bad state %q", raw)
		}
		switch state {
		case payhubStateCompleted:
			return domain.OrderStatusCompleted, nil
		case payhubStateFailed:
			return domain.OrderStatusFailed, nil
		case payhubStatePending:
			return domain.OrderStatusPending, nil
		default:
			return "", fmt.Errorf("unknown state %d", state)
		}
	}
	switch strings.ToLower(fields["status"]) {
	case "success", "paid":
		return domain.OrderStatusCompleted, nil
	case "failed", "fail":
		return domain.OrderStatusFailed, nil
	case "pending":
		return domain.OrderStatusPending, nil
	}
	return "", errors.New("no state in payload")
}

// parseCallbackFields decodes a JSON object or a form-encoded body into flat
// string fields. Scalar JSON values are stringified; numbers keep their
// original text so signatures still verify.
func parseCallbackFields(raw []byte) (map[string]string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, errors.New("empty payload")
	}

	if trimmed[0] == '{' {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &obj); err != nil {
			return nil, err
		}
		fields := make(map[string]string, len(obj))
		for k, v := range obj {
			var s string
			if err := json.Unmarshal(v, &s); err == nil {
				fields[k] = s
				continue
			}
			fields[k] = string(bytes.Trim(v, `"`))
		}
		return fields, nil
	}

	values, err := url.ParseQuery(string(trimmed))
	if err != nil {
		return nil, err
	}
	fields := make(map[string]string, len(values))
	for k := range values {
		fields[k] = values.Get(k)
	}
	return fields, nil
}
