package cuentica

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Dates travel as "YYYY-MM-DD" strings on the Cuentica wire; the SDK passes
// them through without parsing.

// Payment methods accepted by the API.
const (
	PaymentMethodCash          = "cash"
	PaymentMethodReceipt       = "receipt"
	PaymentMethodWireTransfer  = "wire_transfer"
	PaymentMethodCreditCard    = "credit_card"
	PaymentMethodPromissory    = "promissory_note"
	PaymentMethodOther         = "other"
	PaymentMethodNotRegistered = "not_registered"
)

// Business types for customers and providers.
const (
	BusinessTypeCompany    = "company"
	BusinessTypeIndividual = "individual"
	BusinessTypeFreelancer = "freelancer"
)

// Attachment is a file embedded inline in a document, expense, or invoice
// body. Content is base64-encoded on the wire (encoding/json does this for
// []byte); files are never streamed or uploaded as multipart.
type Attachment struct {
	Filename string `json:"filename"            yaml:"filename"`
	Content  []byte `json:"content"             yaml:"content"`
	MimeType string `json:"mime_type,omitempty" yaml:"mime_type,omitempty"`
}

// Validate checks that the attachment can be sent to the API.
func (a Attachment) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Filename, validation.Required, validation.Length(1, 255)),
		validation.Field(&a.Content, validation.Required),
	)
}

// Payment records money moving against an expense or invoice.
type Payment struct {
	Date          string  `json:"date"                     yaml:"date"`
	Amount        float64 `json:"amount"                   yaml:"amount"`
	PaymentMethod string  `json:"payment_method"           yaml:"payment_method"`
	OriginAccount int     `json:"origin_account,omitempty" yaml:"origin_account,omitempty"`
	Paid          bool    `json:"paid"                     yaml:"paid"`
}
