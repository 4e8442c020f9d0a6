package service

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSignatureCodec_Canonical_SortsAndSkips(t *testing.T) {
	codec := NewSignatureCodec()

	fields := map[string]string{
		"merchant_id":       "m-001",
		"business_order_id": "bo-42",
		"timestamp":         "1700000000",
		"extra_data":        "",
		"sign":              "should-be-ignored",
		"amount":            "10.00",
	}

	got := codec.Canonical(fields)
	assert.Equal(t, "amount=10.00&business_order_id=bo-42&merchant_id=m-001&timestamp=1700000000", got)
}

func TestSignatureCodec_HMAC_RoundTrip(t *testing.T) {
	codec := NewSignatureCodec()
	fields := map[string]string{"a": "1", "b": "2"}

	sig := codec.SignHMAC("secret", fields)
	assert.Len(t, sig, 64) // sha256 hex

	assert.True(t, codec.VerifyHMAC("secret", fields, sig))
	assert.False(t, codec.VerifyHMAC("other-secret", fields, sig))

	fields["a"] = "tampered"
	assert.False(t, codec.VerifyHMAC("secret", fields, sig))
}

func TestSignatureCodec_HMAC_IgnoresSignField(t *testing.T) {
	codec := NewSignatureCodec()
	fields := map[string]string{"a": "1"}
	sig := codec.SignHMAC("secret", fields)

	// Verification over a map that carries the signature itself must still pass.
	withSign := map[string]string{"a": "1", "sign": sig}
	assert.True(t, codec.VerifyHMAC("secret", withSign, sig))
}

func TestSignatureCodec_MD5_UppercaseAndCaseInsensitive(t *testing.T) {
	codec := NewSignatureCodec()
	fields := map[string]string{"account_id": "acc-1", "amount": "12.34"}

	sig := codec.SignMD5("key123", fields)
	assert.Len(t, sig, 32)
	assert.Equal(t, strings.ToUpper(sig), sig, "digest must be uppercase hex")

	assert.True(t, codec.VerifyMD5("key123", fields, sig))
	// Lowercase presentation of the same digest verifies too.
	lower := make([]byte, len(sig))
	for i := 0; i < len(sig); i++ {
		c := sig[i]
		if c >= 'A' && c <= 'F' {
			c += 'a' - 'A'
		}
		lower[i] = c
	}
	assert.True(t, codec.VerifyMD5("key123", fields, string(lower)))
	assert.False(t, codec.VerifyMD5("wrong", fields, sig))
}

func TestSignatureCodec_WithinSkew(t *testing.T) {
	codec := NewSignatureCodec()
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	assert.True(t, codec.WithinSkew(now.Unix(), now, 5*time.Minute))
	assert.True(t, codec.WithinSkew(now.Add(-5*time.Minute).Unix(), now, 5*time.Minute))
	assert.True(t, codec.WithinSkew(now.Add(4*time.Minute).Unix(), now, 5*time.Minute))
	assert.False(t, codec.WithinSkew(now.Add(-6*time.Minute).Unix(), now, 5*time.Minute))
	assert.False(t, codec.WithinSkew(now.Add(6*time.Minute).Unix(), now, 5*time.Minute))
}

func TestSignatureCodec_WithinSkew_AbsurdTimestampsRejected(t *testing.T) {
	codec := NewSignatureCodec()
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	// Offsets this large overflow a nanosecond Duration; they must still fall
	// outside the window.
	assert.False(t, codec.WithinSkew(now.Unix()-10_000_000_000, now, 5*time.Minute))
	assert.False(t, codec.WithinSkew(now.Unix()+10_000_000_000, now, 5*time.Minute))
	assert.False(t, codec.WithinSkew(math.MaxInt64, now, 5*time.Minute))
	assert.False(t, codec.WithinSkew(math.MinInt64, now, 5*time.Minute))
}
