package domain

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStatus_Terminal(t *testing.T) {
	assert.False(t, OrderStatusPending.Terminal())
	assert.True(t, OrderStatusCompleted.Terminal())
	assert.True(t, OrderStatusFailed.Terminal())
	assert.True(t, OrderStatusCancelled.Terminal())
	assert.True(t, OrderStatusExpired.Terminal())
}

func TestOrderDetails_PreservesUnknownKeys(t *testing.T) {
	// A blob written by an older/newer deployment with keys this version does
	// not model must survive a read-modify-write cycle untouched.
	raw := []byte(`{
		"requested": {"amount": "10.00", "currency": "USD"},
		"settled": {"amount": "72.00", "currency": "CNY", "rate": "7.2"},
		"package": {"id": "pkg_10", "label": "Starter", "price": "10.00", "currency": "USD", "base_credit": 1000, "bonus_percent": 10, "total_credit": 1100},
		"risk_score": 0.42,
		"legacy_flags": ["a", "b"]
	}`)

	var details OrderDetails
	require.NoError(t, json.Unmarshal(raw, &details))

	assert.True(t, details.Requested.Amount.Equal(decimal.RequireFromString("10.00")))
	require.Contains(t, details.Extra, "risk_score")
	require.Contains(t, details.Extra, "legacy_flags")

	details.RawCallback = `{"state":"1"}`

	out, err := json.Marshal(details)
	require.NoError(t, err)

	var roundTrip map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(out, &roundTrip))
	assert.JSONEq(t, `0.42`, string(roundTrip["risk_score"]))
	assert.JSONEq(t, `["a","b"]`, string(roundTrip["legacy_flags"]))
	assert.Contains(t, roundTrip, "raw_callback")
}

func TestOrderDetails_NoExtraStaysClean(t *testing.T) {
	details := OrderDetails{
		Requested: MoneySnapshot{Amount: decimal.RequireFromString("5.00"), Currency: "USD"},
		Settled:   SettledSnapshot{Amount: decimal.RequireFromString("5.00"), Currency: "USD", Rate: decimal.NewFromInt(1)},
	}

	out, err := json.Marshal(details)
	require.NoError(t, err)

	var decoded OrderDetails
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Empty(t, decoded.Extra)
	assert.True(t, decoded.Requested.Amount.Equal(details.Requested.Amount))
}

func TestPaymentOrder_MerchantRef(t *testing.T) {
	order := &PaymentOrder{ID: uuid.New(), SourceType: SourceInternal}
	_, _, ok := order.MerchantRef()
	assert.False(t, ok)

	order.SourceType = SourceExternal
	_, _, ok = order.MerchantRef()
	assert.False(t, ok, "external order without merchant context")

	order.Details.Merchant = &MerchantContext{MerchantID: "m-001", BusinessOrderID: "bo-42"}
	mid, boid, ok := order.MerchantRef()
	assert.True(t, ok)
	assert.Equal(t, "m-001", mid)
	assert.Equal(t, "bo-42", boid)
}
