package cuentica

// ExpenseLine is a single line of an expense. Tax and Retention are
// percentages applied over Base; the expense type is Cuentica's accounting
// category code.
type ExpenseLine struct {
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	Base        float64 `json:"base"                  yaml:"base"`
	Tax         float64 `json:"tax"                   yaml:"tax"`
	Retention   float64 `json:"retention,omitempty"   yaml:"retention,omitempty"`
	ExpenseType string  `json:"expense_type,omitempty" yaml:"expense_type,omitempty"`
}

// Expense represents a purchase registered against a provider.
type Expense struct {
	ID             int           `json:"id"                        yaml:"id"`
	Date           string        `json:"date"                      yaml:"date"`
	Provider       int           `json:"provider"                  yaml:"provider"`
	DocumentType   string        `json:"document_type,omitempty"   yaml:"document_type,omitempty"`
	DocumentNumber string        `json:"document_number,omitempty" yaml:"document_number,omitempty"`
	ExpenseLines   []ExpenseLine `json:"expense_lines"             yaml:"expense_lines"`
	Payments       []Payment     `json:"payments,omitempty"        yaml:"payments,omitempty"`
	Attachment     *Attachment   `json:"attachment,omitempty"      yaml:"attachment,omitempty"`
	Tags           []string      `json:"tags,omitempty"            yaml:"tags,omitempty"`
}

// ExpenseRequest is the payload for creating or updating an expense.
type ExpenseRequest struct {
	Date           string        `json:"date"                      yaml:"date"`
	Provider       int           `json:"provider"                  yaml:"provider"`
	DocumentType   string        `json:"document_type,omitempty"   yaml:"document_type,omitempty"`
	DocumentNumber string        `json:"document_number,omitempty" yaml:"document_number,omitempty"`
	ExpenseLines   []ExpenseLine `json:"expense_lines"             yaml:"expense_lines"`
	Payments       []Payment     `json:"payments,omitempty"        yaml:"payments,omitempty"`
	Attachment     *Attachment   `json:"attachment,omitempty"      yaml:"attachment,omitempty"`
	Tags           []string      `json:"tags,omitempty"            yaml:"tags,omitempty"`
}

// ExpenseListOptions filters expense listings. Tag semantics match
// InvoiceListOptions.
type ExpenseListOptions struct {
	Tags     []string
	DateFrom string
	DateTo   string
	Provider int
	Page     int
	PageSize int
}
