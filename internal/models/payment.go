package models

// Wire-format statuses understood by the payment sheet.
const (
	TransactionStatusEstimated = "ESTIMATED"
	TransactionStatusFinal     = "FINAL"
)

// Display item types.
const (
	DisplayItemSubtotal = "SUBTOTAL"
	DisplayItemLineItem = "LINE_ITEM"
)

// Status codes reported by the SDK when the sheet closes without payment.
const (
	SheetStatusCanceled       = "CANCELED"
	SheetStatusDeveloperError = "DEVELOPER_ERROR"
)

// Authorization outcomes reported back to the SDK.
const (
	AuthResultSuccess = "SUCCESS"
	AuthResultFailure = "FAILURE"
)

// DisplayItem is a single line of the price breakdown shown in the sheet.
type DisplayItem struct {
	Label  string `json:"label"`
	Type   string `json:"type"`
	Price  string `json:"price"`
	Status string `json:"status"`
}

// TransactionInfo is the price summary handed to the payment sheet.
// Prices travel as fixed two-decimal strings, matching the SDK wire format.
type TransactionInfo struct {
	DisplayItems     []DisplayItem `json:"displayItems"`
	CountryCode      string        `json:"countryCode"`
	CurrencyCode     string        `json:"currencyCode"`
	TotalPriceStatus string        `json:"totalPriceStatus"`
	TotalPrice       string        `json:"totalPrice"`
	TotalPriceLabel  string        `json:"totalPriceLabel"`
}

// MerchantInfo identifies the merchant to the payment sheet.
type MerchantInfo struct {
	MerchantID   string `json:"merchantId"`
	MerchantName string `json:"merchantName"`
}

// PaymentMethod is an allowed payment method descriptor.
type PaymentMethod struct {
	Type                      string `json:"type"`
	Parameters                JSON   `json:"parameters"`
	TokenizationSpecification JSON   `json:"tokenizationSpecification,omitempty"`
}

// ReadyToPayRequest asks the SDK whether the device can complete a payment.
type ReadyToPayRequest struct {
	APIVersion            int             `json:"apiVersion"`
	APIVersionMinor       int             `json:"apiVersionMinor"`
	AllowedPaymentMethods []PaymentMethod `json:"allowedPaymentMethods"`
}

// SelectableShippingOption is the shipping choice as rendered in the sheet.
type SelectableShippingOption struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// ShippingOptionParameters configures the shipping selector in the sheet.
type ShippingOptionParameters struct {
	DefaultSelectedOptionID string                     `json:"defaultSelectedOptionId"`
	ShippingOptions         []SelectableShippingOption `json:"shippingOptions"`
}

// PaymentDataRequest is the full payload handed to the SDK when the sheet opens.
type PaymentDataRequest struct {
	APIVersion               int                      `json:"apiVersion"`
	APIVersionMinor          int                      `json:"apiVersionMinor"`
	AllowedPaymentMethods    []PaymentMethod          `json:"allowedPaymentMethods"`
	MerchantInfo             MerchantInfo             `json:"merchantInfo"`
	TransactionInfo          TransactionInfo          `json:"transactionInfo"`
	ShippingOptionRequired   bool                     `json:"shippingOptionRequired"`
	ShippingOptionParameters ShippingOptionParameters `json:"shippingOptionParameters"`
	CallbackIntents          []string                 `json:"callbackIntents"`
}

// PaymentData is what the SDK returns after the user authorizes payment.
type PaymentData struct {
	// Token is the opaque payment token produced by the SDK's tokenization.
	Token                    string `json:"token"`
	SelectedShippingOptionID string `json:"selected_shipping_option_id"`
}

// PaymentDataError tells the sheet why an update was rejected.
type PaymentDataError struct {
	Reason  string `json:"reason"`
	Message string `json:"message"`
	Intent  string `json:"intent"`
}

// PaymentDataRequestUpdate is the response to a shipping-option-changed event.
type PaymentDataRequestUpdate struct {
	NewTransactionInfo *TransactionInfo  `json:"newTransactionInfo,omitempty"`
	Error              *PaymentDataError `json:"error,omitempty"`
}

// AuthorizationResult acknowledges an authorization event.
type AuthorizationResult struct {
	TransactionState string `json:"transactionState"` // SUCCESS or FAILURE
}
