package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewCompanyCommand creates the company command group.
func NewCompanyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "company",
		Short: "Show the company profile",
		Long:  "Read the company profile associated with the API token",
	}

	cmd.AddCommand(newCompanyGetCommand())

	return cmd
}

func newCompanyGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Get the company profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			company, err := client.Company().Get(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get company: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return StandardJSONRenderer(company)
			case OutputFormatYAML:
				return StandardYAMLRenderer(company)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("ID", fmt.Sprintf("%d", company.ID))
				_ = table.Append("Business Name", company.BusinessName)
				_ = table.Append("Trade Name", company.TradeName)
				_ = table.Append("CIF", company.CIF)
				_ = table.Append("Email", company.Email)
				_ = table.Append("Phone", company.Phone)
				_ = table.Append("Address", company.Address)
				_ = table.Append("Town", company.Town)
				_ = table.Append("Province", company.Province)

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			}
		},
	}
}
