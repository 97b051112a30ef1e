// Package cuentica provides types, interfaces, and helpers for working with
// the Cuentica accounting API.
//
// # Overview
//
// The cuentica package defines the domain types (Company, Customer, Provider,
// Invoice, Expense, Document, Transfer) and the interfaces for
// resource-oriented clients (CustomersClient, InvoicesClient, ...). A concrete
// implementation of these clients is provided by the cuenticaclient package,
// which wires configuration, token resolution, and the HTTP transport. Most
// consumers should import cuenticaclient to construct a client and then
// interact with the resource client interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/magarcia/cuentica-sdk/pkg/cuentica"
//	  "github.com/magarcia/cuentica-sdk/pkg/cuenticaclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := cuenticaclient.New(&cuentica.Config{Token: "your-token"})
//	  if err != nil { log.Fatal(err) }
//
//	  invoices, err := cli.Invoices().List(ctx, &cuentica.InvoiceListOptions{
//	    Tags: []string{"web", "hosting"},
//	  })
//	  if err != nil { log.Fatal(err) }
//	  _ = invoices
//	}
//
// # Queries and pagination
//
// List operations take per-resource option structs that are serialized into
// query parameters in a stable, supplied order (see Params). The API paginates
// with page/page_size; the SDK never auto-traverses pages — request the next
// page explicitly.
//
// # Rate limits
//
// Cuentica allows 600 requests per 5 minutes and 7200 per day. The SDK does
// not pace or retry requests. When the API answers 429, operations fail with
// *RateLimitError carrying the window reset time; callers decide when to
// retry.
//
// # Errors
//
// Non-2xx responses are surfaced as *RequestError (message "HTTP <status>:
// <body>") or *RateLimitError. Helpers such as IsNotFound, IsUnauthorized,
// and IsRateLimited make it easy to branch on common cases. Network and JSON
// decoding failures are wrapped with %w and never translated.
package cuentica
