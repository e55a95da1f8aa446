package entity

import (
	"github.com/shopspring/decimal"
)

// Mode tells the caller how the invoice request was satisfied.
type Mode string

const (
	// ModeLive means a real invoice exists on the accounting service.
	ModeLive Mode = "live"
	// ModeDemo means no credentials are configured; the placeholder link
	// was returned without any network call.
	ModeDemo Mode = "demo"
	// ModeFallback means the workflow failed; the placeholder link was
	// returned together with the captured error.
	ModeFallback Mode = "fallback"
)

// DemoPaymentURL is the static placeholder payment link used in demo and
// fallback modes.
const DemoPaymentURL = "https://pay.waveapps.com/demo/studio-deposit"

// InvoiceStatus values mirror the accounting service's invoice lifecycle.
type InvoiceStatus string

const (
	InvoiceStatusDraft    InvoiceStatus = "DRAFT"
	InvoiceStatusApproved InvoiceStatus = "APPROVED"
	InvoiceStatusSent     InvoiceStatus = "SENT"
)

// Customer is the reference returned after creating a customer record.
// Customers are created fresh on every invoice request; nothing is persisted
// or deduplicated locally.
type Customer struct {
	ID    string
	Name  string
	Email string
}

// Invoice is the reference to a created invoice. ViewURL is the public
// payment page when the service exposes one.
type Invoice struct {
	ID      string
	Status  InvoiceStatus
	ViewURL string
}

// InvoiceDraft describes one draft deposit invoice with a single line item.
// UnitPrice is a decimal string in currency units.
type InvoiceDraft struct {
	CustomerID  string
	ProductID   string
	UnitPrice   string
	Memo        string
	InvoiceDate string
	DueDate     string
}

// InvoiceRequest is the validated input to the deposit-invoice workflow.
type InvoiceRequest struct {
	ClientName  string
	ClientEmail string
	ContractID  string
	PackageKey  PackageKey
}

// InvoiceOutcome is what the invoice endpoint reports. The workflow absorbs
// business-level failures, so there is always an outcome with a payment URL,
// even if it is the placeholder.
type InvoiceOutcome struct {
	Mode         Mode
	PaymentURL   string
	InvoiceID    string
	Deposit      decimal.Decimal
	Note         string
	Err          string
	ErrorDetails []InputError
}
