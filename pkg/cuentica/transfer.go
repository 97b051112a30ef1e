package cuentica

// Transfer represents money moved between two of the company's accounts.
type Transfer struct {
	ID                 int     `json:"id"                  yaml:"id"`
	Date               string  `json:"date"                yaml:"date"`
	Amount             float64 `json:"amount"              yaml:"amount"`
	Concept            string  `json:"concept,omitempty"   yaml:"concept,omitempty"`
	OriginAccount      int     `json:"origin_account"      yaml:"origin_account"`
	DestinationAccount int     `json:"destination_account" yaml:"destination_account"`
}

// TransferRequest is the payload for creating or updating a transfer.
type TransferRequest struct {
	Date               string  `json:"date"                yaml:"date"`
	Amount             float64 `json:"amount"              yaml:"amount"`
	Concept            string  `json:"concept,omitempty"   yaml:"concept,omitempty"`
	OriginAccount      int     `json:"origin_account"      yaml:"origin_account"`
	DestinationAccount int     `json:"destination_account" yaml:"destination_account"`
}

// TransferListOptions filters transfer listings. Every set field is passed
// through verbatim as a query parameter, in declaration order.
type TransferListOptions struct {
	DateFrom           string
	DateTo             string
	OriginAccount      int
	DestinationAccount int
	Page               int
	PageSize           int
}
