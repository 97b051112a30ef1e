package cuentica

import (
	"net/url"
	"strconv"
	"strings"
)

// Params is an ordered collection of query parameters. Unlike url.Values it
// preserves insertion order when encoding, which the Cuentica API tests rely
// on. A parameter that was never added is omitted entirely; a parameter added
// with an empty value is emitted as "key=".
type Params struct {
	pairs []pair
}

type pair struct {
	key   string
	value string
}

// NewParams creates an empty parameter list.
func NewParams() *Params {
	return &Params{}
}

// Add appends a string parameter. Returns the receiver for chaining.
func (p *Params) Add(key, value string) *Params {
	p.pairs = append(p.pairs, pair{key: key, value: value})

	return p
}

// AddInt appends an integer parameter.
func (p *Params) AddInt(key string, value int) *Params {
	return p.Add(key, strconv.Itoa(value))
}

// AddBool appends a boolean parameter ("true"/"false").
func (p *Params) AddBool(key string, value bool) *Params {
	return p.Add(key, strconv.FormatBool(value))
}

// Len returns the number of parameters.
func (p *Params) Len() int {
	if p == nil {
		return 0
	}

	return len(p.pairs)
}

// Get returns the first value added for key, and whether it was present.
func (p *Params) Get(key string) (string, bool) {
	if p == nil {
		return "", false
	}

	for _, kv := range p.pairs {
		if kv.key == key {
			return kv.value, true
		}
	}

	return "", false
}

// Encode serializes the parameters as a URL-encoded query string, in
// insertion order.
func (p *Params) Encode() string {
	if p == nil || len(p.pairs) == 0 {
		return ""
	}

	var builder strings.Builder

	for i, kv := range p.pairs {
		if i > 0 {
			builder.WriteByte('&')
		}

		builder.WriteString(url.QueryEscape(kv.key))
		builder.WriteByte('=')
		builder.WriteString(url.QueryEscape(kv.value))
	}

	return builder.String()
}
