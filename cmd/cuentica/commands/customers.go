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

// NewCustomersCommand creates the customers command group.
func NewCustomersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "customers",
		Aliases: []string{"customer"},
		Short:   "Manage customers",
		Long:    "List, inspect, create, and delete customers",
	}

	cmd.AddCommand(newCustomersListCommand())
	cmd.AddCommand(newCustomersGetCommand())
	cmd.AddCommand(newCustomersCreateCommand())
	cmd.AddCommand(newCustomersDeleteCommand())

	return cmd
}

func newCustomersListCommand() *cobra.Command {
	var (
		query    string
		page     int
		pageSize int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List customers",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			customers, err := client.Customers().List(context.Background(), &cuentica.CustomerListOptions{
				Q:        query,
				Page:     page,
				PageSize: pageSize,
			})
			if err != nil {
				return fmt.Errorf("failed to list customers: %w", err)
			}

			return outputCustomers(customers)
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "free-text search term")
	cmd.Flags().IntVar(&page, "page", 0, "page number (default 1)")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "results per page (default 100)")

	return cmd
}

func outputCustomers(customers []cuentica.Customer) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return StandardJSONRenderer(customers)
	case OutputFormatYAML:
		return StandardYAMLRenderer(customers)
	default:
		if len(customers) == 0 {
			fmt.Println("No customers found")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("ID", "CIF", "Name", "Email", "Tags")

		for _, customer := range customers {
			_ = table.Append(
				fmt.Sprintf("%d", customer.ID),
				customer.CIF,
				customerDisplayName(customer),
				customer.Email,
				strings.Join(customer.Tags, ", "),
			)
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}

// customerDisplayName picks the most specific name available.
func customerDisplayName(customer cuentica.Customer) string {
	if customer.TradeName != "" {
		return customer.TradeName
	}

	if customer.BusinessName != "" {
		return customer.BusinessName
	}

	return strings.TrimSpace(customer.Name + " " + customer.Surname1)
}

func newCustomersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get CUSTOMER_ID",
		Short: "Get a customer",
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

			customer, err := client.Customers().Get(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to get customer: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatYAML:
				return StandardYAMLRenderer(customer)
			default:
				return StandardJSONRenderer(customer)
			}
		},
	}
}

func newCustomersCreateCommand() *cobra.Command {
	var (
		cif          string
		businessType string
		businessName string
		tradeName    string
		email        string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a customer",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			customer, err := client.Customers().Create(context.Background(), &cuentica.CustomerRequest{
				CIF:          cif,
				BusinessType: businessType,
				BusinessName: businessName,
				TradeName:    tradeName,
				Email:        email,
			})
			if err != nil {
				return fmt.Errorf("failed to create customer: %w", err)
			}

			fmt.Printf("Customer %d created\n", customer.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&cif, "cif", "", "tax identifier (required)")
	cmd.Flags().StringVar(&businessType, "business-type", cuentica.BusinessTypeCompany, "business type (company, individual, freelancer)")
	cmd.Flags().StringVar(&businessName, "business-name", "", "registered business name")
	cmd.Flags().StringVar(&tradeName, "trade-name", "", "trade name")
	cmd.Flags().StringVar(&email, "email", "", "contact email")
	_ = cmd.MarkFlagRequired("cif")

	return cmd
}

func newCustomersDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete CUSTOMER_ID",
		Short: "Delete a customer",
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

			if err := client.Customers().Delete(context.Background(), id); err != nil {
				return fmt.Errorf("failed to delete customer: %w", err)
			}

			fmt.Printf("Customer %d deleted\n", id)

			return nil
		},
	}
}
