package cuentica

// Document represents a standalone document stored in the account (delivery
// notes, contracts, bank statements...). The file itself travels inline as an
// Attachment.
type Document struct {
	ID           int         `json:"id"                      yaml:"id"`
	Date         string      `json:"date"                    yaml:"date"`
	Provider     int         `json:"provider,omitempty"      yaml:"provider,omitempty"`
	DocumentType string      `json:"document_type,omitempty" yaml:"document_type,omitempty"`
	Description  string      `json:"description,omitempty"   yaml:"description,omitempty"`
	Attachment   *Attachment `json:"attachment,omitempty"    yaml:"attachment,omitempty"`
	Tags         []string    `json:"tags,omitempty"          yaml:"tags,omitempty"`
}

// DocumentRequest is the payload for creating or updating a document. The
// attachment is validated client-side before the request is sent.
type DocumentRequest struct {
	Date         string      `json:"date"                    yaml:"date"`
	Provider     int         `json:"provider,omitempty"      yaml:"provider,omitempty"`
	DocumentType string      `json:"document_type,omitempty" yaml:"document_type,omitempty"`
	Description  string      `json:"description,omitempty"   yaml:"description,omitempty"`
	Attachment   *Attachment `json:"attachment,omitempty"    yaml:"attachment,omitempty"`
	Tags         []string    `json:"tags,omitempty"          yaml:"tags,omitempty"`
}

// DocumentListOptions filters document listings. Every set field is passed
// through verbatim as a query parameter, in declaration order.
type DocumentListOptions struct {
	DateFrom     string
	DateTo       string
	Provider     int
	DocumentType string
	Page         int
	PageSize     int
}
