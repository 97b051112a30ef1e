package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/magarcia/cuentica-sdk/pkg/cuentica"
)

// NewInvoicesCommand creates the invoices command group.
func NewInvoicesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "invoices",
		Aliases: []string{"invoice"},
		Short:   "Manage invoices",
		Long:    "List, inspect, download, and delete issued invoices",
	}

	cmd.AddCommand(newInvoicesListCommand())
	cmd.AddCommand(newInvoicesGetCommand())
	cmd.AddCommand(newInvoicesPDFCommand())
	cmd.AddCommand(newInvoicesDeleteCommand())

	return cmd
}

func newInvoicesListCommand() *cobra.Command {
	var (
		tags       []string
		issuedFrom string
		issuedTo   string
		customer   int
		serie      string
		page       int
		pageSize   int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List invoices",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			opts := &cuentica.InvoiceListOptions{
				IssuedFrom: issuedFrom,
				IssuedTo:   issuedTo,
				Customer:   customer,
				Serie:      serie,
				Page:       page,
				PageSize:   pageSize,
			}
			if cmd.Flags().Changed("tag") {
				opts.Tags = tags
			}

			invoices, err := client.Invoices().List(context.Background(), opts)
			if err != nil {
				return fmt.Errorf("failed to list invoices: %w", err)
			}

			return outputInvoices(invoices)
		},
	}

	cmd.Flags().StringSliceVar(&tags, "tag", nil, "filter by tag (repeatable)")
	cmd.Flags().StringVar(&issuedFrom, "from", "", "issued on or after (YYYY-MM-DD)")
	cmd.Flags().StringVar(&issuedTo, "to", "", "issued on or before (YYYY-MM-DD)")
	cmd.Flags().IntVar(&customer, "customer", 0, "filter by customer id")
	cmd.Flags().StringVar(&serie, "serie", "", "filter by invoice serie")
	cmd.Flags().IntVar(&page, "page", 0, "page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "results per page")

	return cmd
}

func outputInvoices(invoices []cuentica.Invoice) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return StandardJSONRenderer(invoices)
	case OutputFormatYAML:
		return StandardYAMLRenderer(invoices)
	default:
		if len(invoices) == 0 {
			fmt.Println("No invoices found")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("ID", "Number", "Date", "Customer", "Total", "Tags")

		for _, invoice := range invoices {
			_ = table.Append(
				fmt.Sprintf("%d", invoice.ID),
				invoice.InvoiceNumber,
				invoice.IssueDate,
				fmt.Sprintf("%d", invoice.Customer),
				invoice.Total().StringFixed(2),
				strings.Join(invoice.Tags, ", "),
			)
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}

func newInvoicesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get INVOICE_ID",
		Short: "Get an invoice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := ParseID(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			invoice, err := client.Invoices().Get(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to get invoice: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatYAML:
				return StandardYAMLRenderer(invoice)
			default:
				return StandardJSONRenderer(invoice)
			}
		},
	}
}

func newInvoicesPDFCommand() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "pdf INVOICE_ID",
		Short: "Download an invoice PDF",
		Long:  "Download the rendered invoice document and write it to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := ParseID(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			pdf, err := client.Invoices().GetPDF(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to download invoice pdf: %w", err)
			}

			path := outputPath
			if path == "" {
				path = fmt.Sprintf("invoice-%d.pdf", id)
			}

			if err := os.WriteFile(path, pdf, 0o600); err != nil {
				return fmt.Errorf("writing pdf: %w", err)
			}

			fmt.Printf("Invoice %d written to %s (%d bytes)\n", id, path, len(pdf))

			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "file", "f", "", "output file (default invoice-<id>.pdf)")

	return cmd
}

func newInvoicesDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete INVOICE_ID",
		Short: "Delete an invoice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := ParseID(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			if err := client.Invoices().Delete(context.Background(), id); err != nil {
				return fmt.Errorf("failed to delete invoice: %w", err)
			}

			fmt.Printf("Invoice %d deleted\n", id)

			return nil
		},
	}
}
