package cuentica

// InvoiceLine is a single concept billed on an invoice. Discount, Tax, and
// Retention are percentages.
type InvoiceLine struct {
	Concept   string  `json:"concept"             yaml:"concept"`
	Quantity  float64 `json:"quantity"            yaml:"quantity"`
	Amount    float64 `json:"amount"              yaml:"amount"`
	Discount  float64 `json:"discount,omitempty"  yaml:"discount,omitempty"`
	Tax       float64 `json:"tax"                 yaml:"tax"`
	Retention float64 `json:"retention,omitempty" yaml:"retention,omitempty"`
}

// Invoice represents an issued invoice.
type Invoice struct {
	ID            int           `json:"id"                       yaml:"id"`
	IssueDate     string        `json:"issue_date"               yaml:"issue_date"`
	Serie         string        `json:"serie,omitempty"          yaml:"serie,omitempty"`
	Number        int           `json:"number,omitempty"         yaml:"number,omitempty"`
	InvoiceNumber string        `json:"invoice_number,omitempty" yaml:"invoice_number,omitempty"`
	Customer      int           `json:"customer"                 yaml:"customer"`
	InvoiceLines  []InvoiceLine `json:"invoice_lines"            yaml:"invoice_lines"`
	Charges       []Payment     `json:"charges,omitempty"        yaml:"charges,omitempty"`
	Proforma      bool          `json:"proforma,omitempty"       yaml:"proforma,omitempty"`
	Comments      string        `json:"comments,omitempty"       yaml:"comments,omitempty"`
	Tags          []string      `json:"tags,omitempty"           yaml:"tags,omitempty"`
}

// InvoiceRequest is the payload for creating or updating an invoice.
type InvoiceRequest struct {
	IssueDate    string        `json:"issue_date"         yaml:"issue_date"`
	Serie        string        `json:"serie,omitempty"    yaml:"serie,omitempty"`
	Customer     int           `json:"customer"           yaml:"customer"`
	InvoiceLines []InvoiceLine `json:"invoice_lines"      yaml:"invoice_lines"`
	Charges      []Payment     `json:"charges,omitempty"  yaml:"charges,omitempty"`
	Proforma     bool          `json:"proforma,omitempty" yaml:"proforma,omitempty"`
	Comments     string        `json:"comments,omitempty" yaml:"comments,omitempty"`
	Tags         []string      `json:"tags,omitempty"     yaml:"tags,omitempty"`
}

// InvoiceListOptions filters invoice listings. Tags are comma-joined into a
// single parameter: a nil slice omits the parameter, an empty non-nil slice
// sends it explicitly empty ("tags="). All other fields are omitted when zero.
type InvoiceListOptions struct {
	Tags       []string
	IssuedFrom string
	IssuedTo   string
	Customer   int
	Serie      string
	Page       int
	PageSize   int
}
