package cuentica

// Company is the account's own company profile. It is read-only through the
// API; changes are made from the Cuentica web application.
type Company struct {
	ID           int    `json:"id"                      yaml:"id"`
	Name         string `json:"name"                    yaml:"name"`
	BusinessName string `json:"business_name,omitempty" yaml:"business_name,omitempty"`
	TradeName    string `json:"tradename,omitempty"     yaml:"tradename,omitempty"`
	CIF          string `json:"cif,omitempty"           yaml:"cif,omitempty"`
	Email        string `json:"email,omitempty"         yaml:"email,omitempty"`
	Phone        string `json:"phone,omitempty"         yaml:"phone,omitempty"`
	Address      string `json:"address,omitempty"       yaml:"address,omitempty"`
	PostalCode   string `json:"postal_code,omitempty"   yaml:"postal_code,omitempty"`
	Town         string `json:"town,omitempty"          yaml:"town,omitempty"`
	Province     string `json:"province,omitempty"      yaml:"province,omitempty"`
	CountryCode  string `json:"country_code,omitempty"  yaml:"country_code,omitempty"`
}
