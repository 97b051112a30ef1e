package cuentica

// Provider represents a provider the company buys from.
type Provider struct {
	ID                   int      `json:"id"                               yaml:"id"`
	CIF                  string   `json:"cif"                              yaml:"cif"`
	TradeName            string   `json:"tradename,omitempty"              yaml:"tradename,omitempty"`
	BusinessType         string   `json:"business_type"                    yaml:"business_type"`
	Name                 string   `json:"name,omitempty"                   yaml:"name,omitempty"`
	Surname1             string   `json:"surname_1,omitempty"              yaml:"surname_1,omitempty"`
	Surname2             string   `json:"surname_2,omitempty"              yaml:"surname_2,omitempty"`
	BusinessName         string   `json:"business_name,omitempty"          yaml:"business_name,omitempty"`
	Address              string   `json:"address,omitempty"                yaml:"address,omitempty"`
	PostalCode           string   `json:"postal_code,omitempty"            yaml:"postal_code,omitempty"`
	Town                 string   `json:"town,omitempty"                   yaml:"town,omitempty"`
	Province             string   `json:"province,omitempty"               yaml:"province,omitempty"`
	CountryCode          string   `json:"country_code,omitempty"           yaml:"country_code,omitempty"`
	Email                string   `json:"email,omitempty"                  yaml:"email,omitempty"`
	Phone                string   `json:"phone,omitempty"                  yaml:"phone,omitempty"`
	Web                  string   `json:"web,omitempty"                    yaml:"web,omitempty"`
	DefaultPaymentMethod string   `json:"default_payment_method,omitempty" yaml:"default_payment_method,omitempty"`
	Tags                 []string `json:"tags,omitempty"                   yaml:"tags,omitempty"`
}

// ProviderRequest is the payload for creating or updating a provider.
type ProviderRequest struct {
	CIF                  string   `json:"cif"                              yaml:"cif"`
	TradeName            string   `json:"tradename,omitempty"              yaml:"tradename,omitempty"`
	BusinessType         string   `json:"business_type"                    yaml:"business_type"`
	Name                 string   `json:"name,omitempty"                   yaml:"name,omitempty"`
	Surname1             string   `json:"surname_1,omitempty"              yaml:"surname_1,omitempty"`
	Surname2             string   `json:"surname_2,omitempty"              yaml:"surname_2,omitempty"`
	BusinessName         string   `json:"business_name,omitempty"          yaml:"business_name,omitempty"`
	Address              string   `json:"address,omitempty"                yaml:"address,omitempty"`
	PostalCode           string   `json:"postal_code,omitempty"            yaml:"postal_code,omitempty"`
	Town                 string   `json:"town,omitempty"                   yaml:"town,omitempty"`
	Province             string   `json:"province,omitempty"               yaml:"province,omitempty"`
	CountryCode          string   `json:"country_code,omitempty"           yaml:"country_code,omitempty"`
	Email                string   `json:"email,omitempty"                  yaml:"email,omitempty"`
	Phone                string   `json:"phone,omitempty"                  yaml:"phone,omitempty"`
	Web                  string   `json:"web,omitempty"                    yaml:"web,omitempty"`
	DefaultPaymentMethod string   `json:"default_payment_method,omitempty" yaml:"default_payment_method,omitempty"`
	Tags                 []string `json:"tags,omitempty"                   yaml:"tags,omitempty"`
}

// ProviderListOptions filters provider listings. Same defaults as customers:
// page 1, page size 100, optional free-text search.
type ProviderListOptions struct {
	Q        string
	Page     int
	PageSize int
}
