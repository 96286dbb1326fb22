package checkout

import (
	"time"

	"swagshop/internal/models"
)

// DefaultSessionTTL bounds how long an abandoned session stays in the store.
const DefaultSessionTTL = 30 * time.Minute

// Config holds the coordinator configuration.
type Config struct {
	MerchantID   string
	MerchantName string
	// GatewayMerchantID is the id registered with the SDK's payment gateway.
	GatewayMerchantID string
	// DefaultShippingOptionID is preselected when the sheet opens.
	DefaultShippingOptionID string
	AllowedCardNetworks     []string
	AllowedAuthMethods      []string
	SessionTTL              time.Duration
}

func (c *Config) applyDefaults() {
	if c.SessionTTL == 0 {
		c.SessionTTL = DefaultSessionTTL
	}
	if len(c.AllowedCardNetworks) == 0 {
		c.AllowedCardNetworks = []string{"VISA", "MASTERCARD"}
	}
	if len(c.AllowedAuthMethods) == 0 {
		c.AllowedAuthMethods = []string{"PAN_ONLY", "CRYPTOGRAM_3DS"}
	}
	if c.MerchantName == "" {
		c.MerchantName = "Swag Shop"
	}
}

// Event is an inbound occurrence routed through the session state machine.
// All state changes go through the single dispatch point in session.go.
type Event interface {
	eventName() string
}

// EventReadinessCheck starts the readiness query.
type EventReadinessCheck struct{}

// EventReadinessResult carries the SDK's answer to the readiness query.
type EventReadinessResult struct {
	Ready bool
}

// EventButtonClicked is the user-initiated click on the call-to-action.
type EventButtonClicked struct{}

// EventShippingChanged is a shipping-option-changed callback from the sheet.
type EventShippingChanged struct {
	OptionID string
}

// EventSheetClosed reports a sheet closed without payment.
type EventSheetClosed struct {
	StatusCode string // CANCELED or DEVELOPER_ERROR
}

// EventAuthorized reports a successful authorization from the sheet.
type EventAuthorized struct {
	Data models.PaymentData
}

// EventCaptureResult reports the outcome of the processor capture.
type EventCaptureResult struct {
	Succeeded bool
}

func (EventReadinessCheck) eventName() string  { return "readiness_check" }
func (EventReadinessResult) eventName() string { return "readiness_result" }
func (EventButtonClicked) eventName() string   { return "button_clicked" }
func (EventShippingChanged) eventName() string { return "shipping_changed" }
func (EventSheetClosed) eventName() string     { return "sheet_closed" }
func (EventAuthorized) eventName() string      { return "authorized" }
func (EventCaptureResult) eventName() string   { return "capture_result" }
