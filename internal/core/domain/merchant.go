package domain

// MerchantConfig is the directory entry for an external merchant allowed to
// create orders via the signed API.
type MerchantConfig struct {
	MerchantID  string `json:"merchant_id"`
	Name        string `json:"name"`
	Secret      string `json:"secret"`
	CallbackURL string `json:"callback_url"`
	Enabled     bool   `json:"enabled"`
}

// ChannelCredentials holds per-channel gateway credentials resolved from the
// settings store.
type ChannelCredentials struct {
	AccountID          string `json:"account_id"`
	Secret             string `json:"secret"`
	Endpoint           string `json:"endpoint"`
	Encoding           string `json:"encoding"` // "json" or "form"
	SettlementCurrency string `json:"settlement_currency"`
}
