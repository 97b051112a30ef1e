// Package cuenticaclient provides the primary entry point for constructing a
// Cuentica API client that implements the cuentica.Client interface.
//
// It layers configuration and the HTTP transport on top of the resource
// interfaces and types defined in the cuentica package. Most applications
// should import cuenticaclient to build a client, then use the returned
// cuentica.Client to access resource-specific clients, for example
// Customers(), Invoices(), Expenses(), etc.
//
// Quick start
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
//
//	  // With an explicit API token:
//	  cli, err := cuenticaclient.New(&cuentica.Config{Token: "your-api-token"})
//	  if err != nil { log.Fatal(err) }
//
//	  // Or let the token come from the CUENTICA_API_TOKEN environment
//	  // variable:
//	  cli, err = cuenticaclient.New(&cuentica.Config{})
//	  if err != nil { log.Fatal(err) }
//
//	  // Use resource clients via the cuentica.Client interface
//	  invoices, err := cli.Invoices().List(ctx, nil)
//	  if err != nil { log.Fatal(err) }
//	  _ = invoices
//	}
//
// Construction never touches the network: a missing token fails immediately
// with cuentica.ErrTokenRequired, and an invalid token surfaces as an
// unauthorized error on the first call.
//
// # Helpers
//
// The package also provides convenience constructors NewWithToken and
// NewFromEnv that wrap New with the appropriate configuration.
package cuenticaclient
