package dto

// CreateOrderRequest is the platform-user order creation payload.
type CreateOrderRequest struct {
	UserID    string `json:"user_id" binding:"required,uuid"`
	Amount    string `json:"amount" binding:"required"`
	Currency  string `json:"currency" binding:"required,len=3"`
	PackageID string `json:"package_id"`
}

// ExternalOrderRequest is the signed merchant order creation payload.
type ExternalOrderRequest struct {
	MerchantID      string `json:"merchant_id" binding:"required"`
	BusinessOrderID string `json:"business_order_id" binding:"required,max=128"`
	PackageID       string `json:"package_id" binding:"required"`
	RetURL          string `json:"ret_url" binding:"omitempty,url"`
	ExtraData       string `json:"extra_data"`
	Timestamp       int64  `json:"timestamp" binding:"required"`
	Sign            string `json:"sign" binding:"required"`
}

// OrderResponse is the platform-facing order view.
type OrderResponse struct {
	ID              string           `json:"id"`
	Status          string           `json:"status"`
	Amount          string           `json:"amount"`
	Currency        string           `json:"currency"`
	SettledAmount   string           `json:"settled_amount"`
	SettledCurrency string           `json:"settled_currency"`
	Channel         string           `json:"channel"`
	PayURL          *string          `json:"pay_url,omitempty"`
	Product         *ProductResponse `json:"product,omitempty"`
	CreatedAt       string           `json:"created_at"`
	CompletedAt     *string          `json:"completed_at,omitempty"`
}

// ExternalOrderResponse is the merchant-facing order view. Gateway-internal
// identifiers and settlement figures are not exposed here.
type ExternalOrderResponse struct {
	OrderID         string           `json:"order_id"`
	BusinessOrderID string           `json:"business_order_id"`
	Status          string           `json:"status"`
	Amount          string           `json:"amount"`
	Currency        string           `json:"currency"`
	Channel         string           `json:"channel"`
	PayURL          *string          `json:"pay_url,omitempty"`
	Product         *ProductResponse `json:"product,omitempty"`
	CreatedAt       string           `json:"created_at"`
	CompletedAt     *string          `json:"completed_at,omitempty"`
}

// ExternalOrderStatusResponse answers a merchant status query.
type ExternalOrderStatusResponse struct {
	Status  string           `json:"status"`
	Product *ProductResponse `json:"product,omitempty"`
	PaidAt  *string          `json:"paid_at,omitempty"`
}

// ProductResponse is the package view embedded in order responses.
type ProductResponse struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Price       string `json:"price"`
	Currency    string `json:"currency"`
	TotalCredit int64  `json:"total_credit"`
}

// PackageResponse is one catalog entry.
type PackageResponse struct {
	ID           string `json:"id"`
	Label        string `json:"label"`
	Price        string `json:"price"`
	Currency     string `json:"currency"`
	BaseCredit   int64  `json:"base_credit"`
	BonusPercent int64  `json:"bonus_percent"`
	TotalCredit  int64  `json:"total_credit"`
}

// RetryCallbackResponse reports the outcome of a manual delivery retry.
type RetryCallbackResponse struct {
	OrderID        string `json:"order_id"`
	CallbackStatus string `json:"callback_status"`
	Attempts       int    `json:"attempts"`
}
