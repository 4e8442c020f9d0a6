package service

import (
	"crypto/hmac"
	"crypto/md5"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"sort"
	"strings"
	"time"
)

// SignatureCodecImpl implements ports.SignatureCodec.
//
// Canonical form: all non-empty fields except "sign", keys sorted
// byte-lexicographically, joined as key=value pairs with '&'. The same form
// is used for merchant-facing HMAC-SHA256 signatures and for the legacy
// uppercase-MD5 digest aggregator channels expect.
type SignatureCodecImpl struct{}

// NewSignatureCodec creates a new SignatureCodecImpl.
func NewSignatureCodec() *SignatureCodecImpl {
	return &SignatureCodecImpl{}
}

// Canonical builds the canonical signing string from fields.
func (c *SignatureCodecImpl) Canonical(fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	for k, v := range fields {
		if k == "sign" || v == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(fields[k])
	}
	return b.String()
}

// SignHMAC computes HMAC-SHA256 over the canonical string.
// Returns lowercase hex.
func (c *SignatureCodecImpl) SignHMAC(secret string, fields map[string]string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(c.Canonical(fields)))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyHMAC checks an HMAC-SHA256 signature in constant time.
func (c *SignatureCodecImpl) VerifyHMAC(secret string, fields map[string]string, signature string) bool {
	expected := c.SignHMAC(secret, fields)
	return hmac.Equal([]byte(expected), []byte(signature))
}

// SignMD5 computes the legacy keyed digest: uppercase hex MD5 over
// canonical + "&key=" + secret.
func (c *SignatureCodecImpl) SignMD5(secret string, fields map[string]string) string {
	sum := md5.Sum([]byte(c.Canonical(fields) + "&key=" + secret))
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}

// VerifyMD5 checks a legacy keyed digest in constant time. Comparison is
// case-insensitive because gateways disagree on hex casing.
func (c *SignatureCodecImpl) VerifyMD5(secret string, fields map[string]string, signature string) bool {
	expected := c.SignMD5(secret, fields)
	provided := strings.ToUpper(signature)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(provided)) == 1
}

// WithinSkew reports whether a unix-seconds timestamp is within the allowed
// window of now, in either direction.
func (c *SignatureCodecImpl) WithinSkew(timestamp int64, now time.Time, window time.Duration) bool {
	diff := now.Unix() - timestamp
	if diff < 0 {
		diff = -diff
	}
	// Integer seconds on both sides: converting diff to a Duration overflows
	// for absurd timestamps and could wrongly admit them.
	return diff <= int64(window/time.Second)
}
